package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type workExperienceUsecase struct {
	expRepo  domain.WorkExperienceRepository
	validate *validator.Validate
}

func NewWorkExperienceUsecase(
	expRepo domain.WorkExperienceRepository,
	validate *validator.Validate,
) domain.WorkExperienceUsecase {
	return &workExperienceUsecase{
		expRepo:  expRepo,
		validate: validate,
	}
}

func (u *workExperienceUsecase) Create(ctx context.Context, in *domain.CreateWorkExperienceInput) (*domain.WorkExperience, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || ctxUserID == 0 {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	in.ApplicantID = ctxUserID

	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	return u.expRepo.Create(ctx, in)
}

func (u *workExperienceUsecase) GetByID(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	exp, err := u.expRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Work experience not found")
		}
		return nil, err
	}
	return exp, nil
}

func (u *workExperienceUsecase) Update(ctx context.Context, in *domain.UpdateWorkExperienceInput) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || ctxUserID == 0 {
		return apperror.Unauthorized("User not authenticated")
	}
	in.ApplicantID = ctxUserID

	if err := u.expRepo.Update(ctx, in); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Work experience not found")
		}
		return err
	}
	return nil
}

func (u *workExperienceUsecase) Delete(ctx context.Context, id, resumeID, applicantID int64) error {
	if err := u.expRepo.Delete(ctx, id, resumeID, applicantID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Work experience not found")
		}
		return err
	}
	return nil
}
