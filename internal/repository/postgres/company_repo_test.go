package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"go-jobboard-backend/internal/domain"
)

// capturingQuerier records the SQL and arguments handed to it and fails the
// call, so query construction can be checked without a database.
type capturingQuerier struct {
	query string
	args  []interface{}
}

var errCaptured = errors.New("captured")

func (q *capturingQuerier) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	q.query = sql
	q.args = args
	return pgconn.CommandTag{}, errCaptured
}

func (q *capturingQuerier) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	q.query = sql
	q.args = args
	return nil, errCaptured
}

func (q *capturingQuerier) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	q.query = sql
	q.args = args
	return nil
}

func TestCompanySearchQuery(t *testing.T) {
	t.Run("Name filter is a case-sensitive contains match", func(t *testing.T) {
		q := &capturingQuerier{}
		repo := NewCompanyRepository(q)

		name := "Acme"
		_, err := repo.Search(context.Background(), domain.CompanySearchFilter{Name: &name})

		assert.Error(t, err)
		assert.Contains(t, q.query, "c.company_name LIKE $1")
		assert.NotContains(t, q.query, "ILIKE")
		assert.Equal(t, "%Acme%", q.args[0])
	})

	t.Run("Paging defaults are applied", func(t *testing.T) {
		q := &capturingQuerier{}
		repo := NewCompanyRepository(q)

		_, err := repo.Search(context.Background(), domain.CompanySearchFilter{Limit: 0, Offset: -5})

		assert.Error(t, err)
		assert.Contains(t, q.args, 25)
		assert.Contains(t, q.args, 0)
	})
}
