package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"go-jobboard-backend/internal/domain"
)

type applicantRepo struct {
	db Querier
}

func NewApplicantRepository(db Querier) domain.ApplicantRepository {
	return &applicantRepo{db: db}
}

// Create inserts the shared users row and the applicant extension row. Both
// inserts must run inside one unit of work so a duplicate email leaves no
// orphan user behind.
func (r *applicantRepo) Create(ctx context.Context, in *domain.RegisterApplicantInput) (int64, error) {
	var userID int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password, first_name, last_name, phone_number, image_url, user_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		in.Email, in.Password, in.FirstName, in.LastName,
		in.PhoneNumber, in.ImageURL, domain.UserTypeApplicant,
	).Scan(&userID)
	if err != nil {
		return 0, translateError(err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO applicants (user_id, gender, description, address, education, birth_date)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		userID, in.Gender, in.Description, in.Address, in.Education, in.BirthDate,
	)
	if err != nil {
		return 0, translateError(err)
	}
	return userID, nil
}

const applicantColumns = `
	a.user_id, a.gender, a.description, a.address, a.education, a.birth_date,
	u.is_confirmed, u.email, u.first_name, u.last_name, u.phone_number, u.image_url`

func (r *applicantRepo) GetByID(ctx context.Context, userID int64) (*domain.Applicant, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM applicants a
		JOIN users u ON u.id = a.user_id
		WHERE a.user_id = $1`, applicantColumns)

	var a domain.Applicant
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&a.UserID, &a.Gender, &a.Description, &a.Address, &a.Education, &a.BirthDate,
		&a.IsConfirmed, &a.Email, &a.FirstName, &a.LastName, &a.PhoneNumber, &a.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *applicantRepo) Update(ctx context.Context, in *domain.UpdateApplicantInput) error {
	sets := []string{}
	args := []interface{}{}
	argIndex := 1

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if in.Gender != nil {
		appendSet("gender", *in.Gender)
	}
	if in.Description != nil {
		appendSet("description", *in.Description)
	}
	if in.Address != nil {
		appendSet("address", *in.Address)
	}
	if in.Education != nil {
		appendSet("education", *in.Education)
	}
	if in.BirthDate != nil {
		appendSet("birth_date", *in.BirthDate)
	}
	if len(sets) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE applicants SET %s WHERE user_id = $%d`,
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
