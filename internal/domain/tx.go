package domain

import "context"

// UnitOfWork exposes repositories bound to a single database transaction.
// Either Commit or Rollback must be called exactly once; Rollback after a
// successful Commit is a no-op, so it is safe to defer.
type UnitOfWork interface {
	Users() UserRepository
	Applicants() ApplicantRepository
	Companies() CompanyRepository
	Resumes() ResumeRepository
	WorkExperiences() WorkExperienceRepository
	Vacancies() VacancyRepository
	Responses() ResponseRepository

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type TxManager interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
