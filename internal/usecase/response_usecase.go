package usecase

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/email"
)

type responseUsecase struct {
	txManager domain.TxManager
	notifier  domain.Notifier
	validate  *validator.Validate
}

func NewResponseUsecase(
	txManager domain.TxManager,
	notifier domain.Notifier,
	validate *validator.Validate,
) domain.ResponseUsecase {
	return &responseUsecase{
		txManager: txManager,
		notifier:  notifier,
		validate:  validate,
	}
}

// Create opens a response thread: the guarded response insert, its chat, and
// the optional opening message all commit together. The counterparty email
// is dispatched only after the commit; a failed notification never unwinds
// the stored response.
func (u *responseUsecase) Create(ctx context.Context, in *domain.CreateResponseInput) (*domain.Response, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	uow, err := u.txManager.Begin(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback(ctx)

	responses := uow.Responses()

	var responseID int64
	switch in.ActorType {
	case domain.ActorApplicant:
		responseID, err = responses.CreateAsApplicant(ctx, in.VacancyID, in.ResumeID, in.ActorUserID)
	case domain.ActorCompany:
		responseID, err = responses.CreateAsCompany(ctx, in.VacancyID, in.ResumeID, in.ActorUserID)
	default:
		return nil, apperror.Forbidden("Unknown actor type")
	}
	if err != nil {
		return nil, err
	}

	chatID, err := responses.CreateChat(ctx, responseID, domain.ChatTypeResponse)
	if err != nil {
		return nil, err
	}
	if in.Message != nil && *in.Message != "" {
		if _, err := responses.AddMessage(ctx, chatID, in.ActorType, *in.Message); err != nil {
			return nil, err
		}
	}

	contacts, err := responses.GetContacts(ctx, responseID)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, apperror.Internal(err)
	}

	destination := contacts.CompanyEmail
	if in.ActorType == domain.ActorCompany {
		destination = contacts.ApplicantEmail
	}
	u.notifier.Notify(destination, email.TemplateResponseCreated, map[string]string{
		"vacancy_title": contacts.VacancyTitle,
		"resume_title":  contacts.ResumeTitle,
	})

	return &domain.Response{
		ID:            responseID,
		VacancyID:     in.VacancyID,
		ResumeID:      in.ResumeID,
		ResponderType: in.ActorType,
		Status:        domain.StatusSent,
	}, nil
}

// ChangeStatus flips the status under the opposite-side rule, appends an
// audit message to the thread, and notifies the side that opened the
// response after the commit.
func (u *responseUsecase) ChangeStatus(ctx context.Context, in *domain.ChangeResponseStatusInput) error {
	if err := u.validate.Struct(in); err != nil {
		return apperror.BadRequest(err.Error())
	}
	if !domain.ValidStatuses[in.Status] {
		return apperror.BadRequest("Unknown response status")
	}

	uow, err := u.txManager.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer uow.Rollback(ctx)

	responses := uow.Responses()
	if err := responses.ChangeStatus(ctx, in); err != nil {
		return err
	}

	chat, err := responses.GetChatByResponse(ctx, in.ResponseID)
	if err == nil {
		audit := fmt.Sprintf("Status changed to %s", in.Status)
		if _, err := responses.AddMessage(ctx, chat.ID, in.ActorType, audit); err != nil {
			return err
		}
	} else if err != domain.ErrNotFound {
		return err
	}

	contacts, err := responses.GetContacts(ctx, in.ResponseID)
	if err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}

	// The side changing the status is the receiver, so the notification goes
	// to the other one.
	destination := contacts.ApplicantEmail
	if in.ActorType == domain.ActorApplicant {
		destination = contacts.CompanyEmail
	}
	u.notifier.Notify(destination, email.TemplateStatusChanged, map[string]string{
		"vacancy_title": contacts.VacancyTitle,
		"resume_title":  contacts.ResumeTitle,
		"status":        in.Status,
	})
	return nil
}

func (u *responseUsecase) ListForApplicant(ctx context.Context, applicantID int64, offset, limit int) ([]*domain.ResponseDetail, error) {
	uow, err := u.txManager.Begin(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback(ctx)

	return uow.Responses().ListForApplicant(ctx, applicantID, offset, limit)
}

func (u *responseUsecase) ListForCompany(ctx context.Context, companyID int64, offset, limit int) ([]*domain.ResponseDetail, error) {
	uow, err := u.txManager.Begin(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer uow.Rollback(ctx)

	return uow.Responses().ListForCompany(ctx, companyID, offset, limit)
}
