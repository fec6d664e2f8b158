package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"go-jobboard-backend/internal/domain"
)

type companyRepo struct {
	db Querier
}

func NewCompanyRepository(db Querier) domain.CompanyRepository {
	return &companyRepo{db: db}
}

func (r *companyRepo) Create(ctx context.Context, in *domain.RegisterCompanyInput) (int64, error) {
	var userID int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (email, password, first_name, last_name, phone_number, image_url, user_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		in.Email, in.Password, in.FirstName, in.LastName,
		in.PhoneNumber, in.ImageURL, domain.UserTypeCompany,
	).Scan(&userID)
	if err != nil {
		return 0, translateError(err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO companies (user_id, company_name, description, address)
		VALUES ($1, $2, $3, $4)`,
		userID, in.CompanyName, in.Description, in.Address,
	)
	if err != nil {
		return 0, translateError(err)
	}
	return userID, nil
}

const companyColumns = `
	c.user_id, c.company_name, c.description, c.address,
	u.is_confirmed, u.email, u.first_name, u.last_name, u.phone_number, u.image_url`

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.UserID, &c.CompanyName, &c.Description, &c.Address,
		&c.IsConfirmed, &c.Email, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.ImageURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *companyRepo) GetByID(ctx context.Context, userID int64) (*domain.Company, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM companies c
		JOIN users u ON u.id = c.user_id
		WHERE c.user_id = $1`, companyColumns)
	return scanCompany(r.db.QueryRow(ctx, query, userID))
}

func (r *companyRepo) Update(ctx context.Context, in *domain.UpdateCompanyInput) error {
	sets := []string{}
	args := []interface{}{}
	argIndex := 1

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if in.CompanyName != nil {
		appendSet("company_name", *in.CompanyName)
	}
	if in.Description != nil {
		appendSet("description", *in.Description)
	}
	if in.Address != nil {
		appendSet("address", *in.Address)
	}
	if len(sets) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE companies SET %s WHERE user_id = $%d`,
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

func (r *companyRepo) Search(ctx context.Context, filter domain.CompanySearchFilter) ([]domain.Company, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIndex := 1

	if filter.Name != nil {
		conditions = append(conditions, fmt.Sprintf("c.company_name LIKE $%d", argIndex))
		args = append(args, "%"+*filter.Name+"%")
		argIndex++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 25
	}
	if limit > 100 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM companies c
		JOIN users u ON u.id = c.user_id
		WHERE %s
		ORDER BY c.company_name
		LIMIT $%d OFFSET $%d`,
		companyColumns, strings.Join(conditions, " AND "), argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		var c domain.Company
		err := rows.Scan(
			&c.UserID, &c.CompanyName, &c.Description, &c.Address,
			&c.IsConfirmed, &c.Email, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.ImageURL,
		)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}
