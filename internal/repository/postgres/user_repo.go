package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type userRepo struct {
	db Querier
}

func NewUserRepository(db Querier) domain.UserRepository {
	return &userRepo{db: db}
}

const userColumns = `id, email, password, first_name, last_name, phone_number, image_url, user_type, is_confirmed, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Email, &u.Password, &u.FirstName, &u.LastName,
		&u.PhoneNumber, &u.ImageURL, &u.UserType, &u.IsConfirmed,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *userRepo) Update(ctx context.Context, in *domain.UpdateUserInput) error {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIndex := 1

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if in.FirstName != nil {
		appendSet("first_name", *in.FirstName)
	}
	if in.LastName != nil {
		appendSet("last_name", *in.LastName)
	}
	if in.PhoneNumber != nil {
		appendSet("phone_number", *in.PhoneNumber)
	}
	if in.ImageURL != nil {
		appendSet("image_url", *in.ImageURL)
	}
	if in.Password != nil {
		appendSet("password", *in.Password)
	}
	if len(sets) == 1 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`,
		strings.Join(sets, ", "), argIndex)
	args = append(args, in.UserID)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) Confirm(ctx context.Context, userID int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET is_confirmed = TRUE, updated_at = NOW() WHERE id = $1`, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
