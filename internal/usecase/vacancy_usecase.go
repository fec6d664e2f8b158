package usecase

import (
	"context"
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type vacancyUsecase struct {
	txManager   domain.TxManager
	vacancyRepo domain.VacancyRepository
	validate    *validator.Validate
	now         func() time.Time
}

func NewVacancyUsecase(
	txManager domain.TxManager,
	vacancyRepo domain.VacancyRepository,
	validate *validator.Validate,
) domain.VacancyUsecase {
	return &vacancyUsecase{
		txManager:   txManager,
		vacancyRepo: vacancyRepo,
		validate:    validate,
		now:         time.Now,
	}
}

// Create inserts the vacancy and its access window atomically; a failure on
// either insert leaves no partial vacancy behind.
func (u *vacancyUsecase) Create(ctx context.Context, in *domain.CreateVacancyInput) (*domain.VacancyDetail, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || ctxUserID == 0 {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	in.CompanyID = ctxUserID

	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	uow, err := u.txManager.Begin(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback(ctx)

	id, err := uow.Vacancies().Create(ctx, in)
	if err != nil {
		return nil, err
	}
	detail, err := uow.Vacancies().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	return detail, nil
}

func (u *vacancyUsecase) GetByID(ctx context.Context, id int64) (*domain.VacancyDetail, error) {
	detail, err := u.vacancyRepo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, err
	}
	return detail, nil
}

func (u *vacancyUsecase) Update(ctx context.Context, in *domain.UpdateVacancyInput) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || ctxUserID == 0 {
		return apperror.Unauthorized("User not authenticated")
	}
	in.CompanyID = ctxUserID

	if err := u.vacancyRepo.Update(ctx, in); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Vacancy not found")
		}
		return err
	}
	return nil
}

func (u *vacancyUsecase) Delete(ctx context.Context, id, companyID int64) error {
	if err := u.vacancyRepo.Delete(ctx, id, companyID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Vacancy not found")
		}
		return err
	}
	return nil
}

func (u *vacancyUsecase) SetPublished(ctx context.Context, id, companyID int64, published bool) error {
	if err := u.vacancyRepo.SetPublished(ctx, id, companyID, published); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Vacancy not found")
		}
		return err
	}
	return nil
}

func (u *vacancyUsecase) Search(ctx context.Context, f *domain.VacancySearchFilter) ([]*domain.VacancyDetail, error) {
	return u.vacancyRepo.Search(ctx, f)
}

// raiseOutcome applies the per-tier cooldown to a vacancy's last update. An
// unknown tier falls back to the free cooldown. Remaining time is reported
// in hours with two decimals.
func raiseOutcome(title, tier string, updatedAt, now time.Time) (*domain.RaiseResult, error) {
	cooldownHours, ok := domain.VacancyTierCooldowns[tier]
	if !ok {
		cooldownHours = domain.VacancyTierCooldowns["free"]
	}
	cooldown := time.Duration(cooldownHours) * time.Hour

	if elapsed := now.Sub(updatedAt); elapsed < cooldown {
		left := math.Round((cooldown-elapsed).Hours()*100) / 100
		return nil, apperror.TooManyRequests(
			"Vacancy was raised recently",
			&domain.RaiseCooldownError{VacancyTitle: title, HoursLeft: left},
		)
	}
	return &domain.RaiseResult{
		VacancyTitle:      title,
		NextUpdateInHours: cooldownHours,
		NextUpdateAt:      now.Add(cooldown),
	}, nil
}

// RaiseInSearch bumps the vacancy's updated_at so it sorts first in search,
// at most once per tier cooldown.
func (u *vacancyUsecase) RaiseInSearch(ctx context.Context, id, companyID int64) (*domain.RaiseResult, error) {
	uow, err := u.txManager.Begin(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback(ctx)

	title, tier, updatedAt, err := uow.Vacancies().GetForRaise(ctx, id, companyID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Vacancy not found")
		}
		return nil, err
	}

	now := u.now()
	result, err := raiseOutcome(title, tier, updatedAt, now)
	if err != nil {
		return nil, err
	}
	if err := uow.Vacancies().Touch(ctx, id, now); err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, apperror.Internal(err)
	}
	return result, nil
}

func (u *vacancyUsecase) Like(ctx context.Context, applicantID, vacancyID int64) error {
	return u.vacancyRepo.Like(ctx, applicantID, vacancyID)
}

func (u *vacancyUsecase) Unlike(ctx context.Context, applicantID, vacancyID int64) error {
	if err := u.vacancyRepo.Unlike(ctx, applicantID, vacancyID); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Vacancy is not in favorites")
		}
		return err
	}
	return nil
}

func (u *vacancyUsecase) ListLiked(ctx context.Context, applicantID int64, offset, limit int) ([]*domain.LikedVacancy, error) {
	return u.vacancyRepo.ListLiked(ctx, applicantID, offset, limit)
}
