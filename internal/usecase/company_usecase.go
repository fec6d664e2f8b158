package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
)

type companyUsecase struct {
	txManager   domain.TxManager
	companyRepo domain.CompanyRepository
	hasher      PasswordHasher
	tokenStore  ConfirmTokenStore
	notifier    domain.Notifier
	validate    *validator.Validate
	frontendURL string
}

func NewCompanyUsecase(
	txManager domain.TxManager,
	companyRepo domain.CompanyRepository,
	hasher PasswordHasher,
	tokenStore ConfirmTokenStore,
	notifier domain.Notifier,
	validate *validator.Validate,
	frontendURL string,
) domain.CompanyUsecase {
	return &companyUsecase{
		txManager:   txManager,
		companyRepo: companyRepo,
		hasher:      hasher,
		tokenStore:  tokenStore,
		notifier:    notifier,
		validate:    validate,
		frontendURL: frontendURL,
	}
}

func (u *companyUsecase) Register(ctx context.Context, in *domain.RegisterCompanyInput) (*domain.Company, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	in.Password = hashed

	uow, err := u.txManager.Begin(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback(ctx)

	userID, err := uow.Companies().Create(ctx, in)
	if err != nil {
		return nil, err
	}
	company, err := uow.Companies().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, apperror.Internal(err)
	}

	confirmToken := uuid.NewString()
	if err := u.tokenStore.Put(ctx, confirmToken, userID); err != nil {
		logger.Log.Error("failed to store confirmation token",
			"user_id", userID, "error", err.Error())
	} else {
		u.notifier.Notify(in.Email, email.TemplateConfirmEmail, map[string]string{
			"confirm_url": fmt.Sprintf("%s/confirm?token=%s", u.frontendURL, confirmToken),
		})
	}
	return company, nil
}

func (u *companyUsecase) GetProfile(ctx context.Context, userID int64) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Company not found")
		}
		return nil, err
	}
	return company, nil
}

func (u *companyUsecase) UpdateProfile(ctx context.Context, in *domain.UpdateCompanyInput) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(int64)
	if !ok || ctxUserID == 0 {
		return apperror.Unauthorized("User not authenticated")
	}
	in.UserID = ctxUserID

	uow, err := u.txManager.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer uow.Rollback(ctx)

	if err := uow.Companies().Update(ctx, in); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Company not found")
		}
		return err
	}
	return uow.Commit(ctx)
}

func (u *companyUsecase) Search(ctx context.Context, filter domain.CompanySearchFilter) ([]domain.Company, error) {
	return u.companyRepo.Search(ctx, filter)
}
