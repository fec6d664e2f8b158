package domain

import (
	"context"
	"time"
)

type Response struct {
	ID        int64     `json:"id"`
	VacancyID int64     `json:"vacancy_id"`
	ResumeID  int64     `json:"resume_id"`
	// ResponderType records which side opened the response: APPLICANT when an
	// applicant responded to a vacancy, COMPANY when a company responded to a
	// resume.
	ResponderType string    `json:"responder_type"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Chat struct {
	ID         int64     `json:"id"`
	ResponseID int64     `json:"response_id"`
	ChatType   string    `json:"chat_type"`
	CreatedAt  time.Time `json:"created_at"`
}

type Message struct {
	ID         int64     `json:"id"`
	ChatID     int64     `json:"chat_id"`
	SenderType string    `json:"sender_type"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// ResponseDetail is a response with its chat, messages and the titles of the
// two sides, for listing.
type ResponseDetail struct {
	Response
	VacancyTitle string     `json:"vacancy_title"`
	ResumeTitle  string     `json:"resume_title"`
	Chat         *Chat      `json:"chat"`
	Messages     []*Message `json:"messages"`
}

type CreateResponseInput struct {
	VacancyID int64 `json:"vacancy_id" validate:"required"`
	ResumeID  int64 `json:"resume_id" validate:"required"`
	// ActorUserID and ActorType come from the authenticated session, never
	// from the request body.
	ActorUserID int64   `json:"-"`
	ActorType   string  `json:"-"`
	Message     *string `json:"message"`
}

type ChangeResponseStatusInput struct {
	ResponseID  int64  `json:"-" validate:"required"`
	Status      string `json:"status" validate:"required"`
	ActorUserID int64  `json:"-"`
	ActorType   string `json:"-"`
}

// ResponseContacts carries the addresses needed to notify both sides of a
// response after it is created or its status changes.
type ResponseContacts struct {
	VacancyTitle   string
	ResumeTitle    string
	ApplicantEmail string
	CompanyEmail   string
}

type ResponseRepository interface {
	// CreateAsApplicant inserts the response only if the resume belongs to
	// the acting applicant; CreateAsCompany only if the vacancy belongs to
	// the acting company.
	CreateAsApplicant(ctx context.Context, vacancyID, resumeID, applicantUserID int64) (int64, error)
	CreateAsCompany(ctx context.Context, vacancyID, resumeID, companyUserID int64) (int64, error)
	CreateChat(ctx context.Context, responseID int64, chatType string) (int64, error)
	GetChatByResponse(ctx context.Context, responseID int64) (*Chat, error)
	AddMessage(ctx context.Context, chatID int64, senderType, body string) (int64, error)
	GetContacts(ctx context.Context, responseID int64) (*ResponseContacts, error)
	// ChangeStatus updates the status only when the acting user is on the
	// side that did not open the response.
	ChangeStatus(ctx context.Context, in *ChangeResponseStatusInput) error
	ListForApplicant(ctx context.Context, applicantID int64, offset, limit int) ([]*ResponseDetail, error)
	ListForCompany(ctx context.Context, companyID int64, offset, limit int) ([]*ResponseDetail, error)
}

type ResponseUsecase interface {
	Create(ctx context.Context, in *CreateResponseInput) (*Response, error)
	ChangeStatus(ctx context.Context, in *ChangeResponseStatusInput) error
	ListForApplicant(ctx context.Context, applicantID int64, offset, limit int) ([]*ResponseDetail, error)
	ListForCompany(ctx context.Context, companyID int64, offset, limit int) ([]*ResponseDetail, error)
}

// Notifier delivers a templated notification without blocking the caller.
type Notifier interface {
	Notify(destination, template string, data map[string]string)
}
