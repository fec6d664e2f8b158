package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-jobboard-backend/internal/domain"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx, so every
// repository works both standalone and inside a unit of work.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txManager struct {
	db *pgxpool.Pool
}

func NewTxManager(db *pgxpool.Pool) domain.TxManager {
	return &txManager{db: db}
}

func (m *txManager) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &unitOfWork{tx: tx}, nil
}

type unitOfWork struct {
	tx pgx.Tx
}

func (u *unitOfWork) Users() domain.UserRepository {
	return &userRepo{db: u.tx}
}

func (u *unitOfWork) Applicants() domain.ApplicantRepository {
	return &applicantRepo{db: u.tx}
}

func (u *unitOfWork) Companies() domain.CompanyRepository {
	return &companyRepo{db: u.tx}
}

func (u *unitOfWork) Resumes() domain.ResumeRepository {
	return &resumeRepo{db: u.tx}
}

func (u *unitOfWork) WorkExperiences() domain.WorkExperienceRepository {
	return &workExperienceRepo{db: u.tx}
}

func (u *unitOfWork) Vacancies() domain.VacancyRepository {
	return &vacancyRepo{db: u.tx}
}

func (u *unitOfWork) Responses() domain.ResponseRepository {
	return &responseRepo{db: u.tx}
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	return u.tx.Commit(ctx)
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	err := u.tx.Rollback(ctx)
	if err == pgx.ErrTxClosed {
		return nil
	}
	return err
}
