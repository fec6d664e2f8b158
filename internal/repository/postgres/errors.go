package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"go-jobboard-backend/pkg/apperror"
)

// PostgreSQL error codes
const (
	pgUniqueViolation  = "23505"
	pgForeignKeyViol   = "23503"
	pgNotNullViolation = "23502"
)

// constraintMessages maps named constraints to the client-facing message for
// a duplicate or missing reference on that constraint.
var constraintMessages = map[string]string{
	"users_email_key":      "User with this email already exists",
	"uq_vacancy_resume":    "A response for this vacancy and resume already exists",
	"uq_applicant_vacancy": "Vacancy is already in favorites",
}

// translateError converts low-level pgx errors into apperror values.
// Unique violations become 409, broken references 404, missing required
// references 422; anything else is wrapped as 500.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperror.Internal(err)
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if msg, ok := constraintMessages[pgErr.ConstraintName]; ok {
			return apperror.Conflict(msg)
		}
		return apperror.Conflict("Resource already exists")
	case pgForeignKeyViol:
		return apperror.NotFound("Referenced resource not found")
	case pgNotNullViolation:
		if pgErr.ColumnName == "vacancy_type_id" {
			return apperror.UnprocessableEntity("Vacancy type not found")
		}
		return apperror.UnprocessableEntity("Required reference is missing")
	}
	return apperror.Internal(err)
}
