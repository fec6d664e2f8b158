package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type resumeUsecase struct {
	txManager  domain.TxManager
	resumeRepo domain.ResumeRepository
	validate   *validator.Validate
}

func NewResumeUsecase(
	txManager domain.TxManager,
	resumeRepo domain.ResumeRepository,
	validate *validator.Validate,
) domain.ResumeUsecase {
	return &resumeUsecase{
		txManager:  txManager,
		resumeRepo: resumeRepo,
		validate:   validate,
	}
}

func (u *resumeUsecase) Create(ctx context.Context, in *domain.CreateResumeInput) (*domain.Resume, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || ctxUserID == 0 {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	in.ApplicantID = ctxUserID

	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	return u.resumeRepo.Create(ctx, in)
}

func (u *resumeUsecase) GetByID(ctx context.Context, resumeID int64) (*domain.ResumeDetail, error) {
	detail, err := u.resumeRepo.GetByID(ctx, resumeID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Resume not found")
		}
		return nil, err
	}
	return detail, nil
}

func (u *resumeUsecase) Update(ctx context.Context, in *domain.UpdateResumeInput) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || ctxUserID == 0 {
		return apperror.Unauthorized("User not authenticated")
	}
	in.ApplicantID = ctxUserID

	if err := u.resumeRepo.Update(ctx, in); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Resume not found")
		}
		return err
	}
	return nil
}

func (u *resumeUsecase) Delete(ctx context.Context, resumeID, applicantID int64) error {
	if err := u.resumeRepo.Delete(ctx, resumeID, applicantID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Resume not found")
		}
		return err
	}
	return nil
}

// Search runs inside a unit of work that is always rolled back, so the whole
// multi-join read observes one snapshot.
func (u *resumeUsecase) Search(ctx context.Context, filter domain.ResumeSearchFilter) ([]domain.ResumeSearchResult, error) {
	uow, err := u.txManager.Begin(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback(ctx)

	return uow.Resumes().Search(ctx, filter)
}
