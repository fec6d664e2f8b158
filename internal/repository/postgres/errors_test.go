package postgres

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"go-jobboard-backend/pkg/apperror"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "Duplicate email maps the users constraint",
			err:         &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"},
			wantCode:    http.StatusConflict,
			wantMessage: "User with this email already exists",
		},
		{
			name:        "Duplicate response maps the vacancy-resume constraint",
			err:         &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_vacancy_resume"},
			wantCode:    http.StatusConflict,
			wantMessage: "A response for this vacancy and resume already exists",
		},
		{
			name:        "Duplicate like maps the favorites constraint",
			err:         &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "uq_applicant_vacancy"},
			wantCode:    http.StatusConflict,
			wantMessage: "Vacancy is already in favorites",
		},
		{
			name:        "Unknown unique constraint still conflicts",
			err:         &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "something_else"},
			wantCode:    http.StatusConflict,
			wantMessage: "Resource already exists",
		},
		{
			name:        "Broken foreign key reads as missing resource",
			err:         &pgconn.PgError{Code: pgForeignKeyViol},
			wantCode:    http.StatusNotFound,
			wantMessage: "Referenced resource not found",
		},
		{
			name:        "Missing vacancy type reads as unprocessable",
			err:         &pgconn.PgError{Code: pgNotNullViolation, ColumnName: "vacancy_type_id"},
			wantCode:    http.StatusUnprocessableEntity,
			wantMessage: "Vacancy type not found",
		},
		{
			name:     "Anything else is wrapped as internal",
			err:      errors.New("connection reset"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError(tt.err)

			var appErr *apperror.AppError
			assert.True(t, errors.As(got, &appErr))
			assert.Equal(t, tt.wantCode, appErr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, appErr.Message)
			}
		})
	}

	t.Run("Wrapped pg errors are still recognized", func(t *testing.T) {
		wrapped := errors.Join(errors.New("exec failed"),
			&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"})

		var appErr *apperror.AppError
		assert.True(t, errors.As(translateError(wrapped), &appErr))
		assert.Equal(t, http.StatusConflict, appErr.Code)
	})
}
