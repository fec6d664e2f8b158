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

type applicantUsecase struct {
	txManager   domain.TxManager
	hasher      PasswordHasher
	tokenStore  ConfirmTokenStore
	notifier    domain.Notifier
	validate    *validator.Validate
	frontendURL string
}

func NewApplicantUsecase(
	txManager domain.TxManager,
	hasher PasswordHasher,
	tokenStore ConfirmTokenStore,
	notifier domain.Notifier,
	validate *validator.Validate,
	frontendURL string,
) domain.ApplicantUsecase {
	return &applicantUsecase{
		txManager:   txManager,
		hasher:      hasher,
		tokenStore:  tokenStore,
		notifier:    notifier,
		validate:    validate,
		frontendURL: frontendURL,
	}
}

// Register creates the users row and applicant row in one transaction; a
// duplicate email rolls both back. The confirmation email is dispatched only
// after the commit succeeds.
func (u *applicantUsecase) Register(ctx context.Context, in *domain.RegisterApplicantInput) (*domain.Applicant, error) {
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

	userID, err := uow.Applicants().Create(ctx, in)
	if err != nil {
		return nil, err
	}
	applicant, err := uow.Applicants().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, apperror.Internal(err)
	}

	u.sendConfirmation(ctx, userID, in.Email)
	return applicant, nil
}

func (u *applicantUsecase) sendConfirmation(ctx context.Context, userID int64, to string) {
	confirmToken := uuid.NewString()
	if err := u.tokenStore.Put(ctx, confirmToken, userID); err != nil {
		logger.Log.Error("failed to store confirmation token",
			"user_id", userID, "error", err.Error())
		return
	}
	u.notifier.Notify(to, email.TemplateConfirmEmail, map[string]string{
		"confirm_url": fmt.Sprintf("%s/confirm?token=%s", u.frontendURL, confirmToken),
	})
}

func (u *applicantUsecase) GetProfile(ctx context.Context, userID int64) (*domain.Applicant, error) {
	uow, err := u.txManager.Begin(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback(ctx)

	applicant, err := uow.Applicants().GetByID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Applicant not found")
		}
		return nil, err
	}
	return applicant, nil
}

func (u *applicantUsecase) UpdateProfile(ctx context.Context, in *domain.UpdateApplicantInput) error {
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

	if err := uow.Applicants().Update(ctx, in); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Applicant not found")
		}
		return err
	}
	return uow.Commit(ctx)
}
