package domain

import (
	"context"
	"time"
)

// Applicant is the job-seeker specialization of User. The row shares its
// primary key with the users row it extends.
type Applicant struct {
	UserID      int64      `json:"user_id"`
	Gender      string     `json:"gender"`
	Description *string    `json:"description"`
	Address     *string    `json:"address"`
	Education   string     `json:"education"`
	BirthDate   *time.Time `json:"birth_date"`
	IsConfirmed bool       `json:"is_confirmed"`

	// Public profile fields joined from the users row.
	Email       string  `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	ImageURL    *string `json:"image_url"`
}

type RegisterApplicantInput struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	PhoneNumber *string `json:"phone_number"`
	ImageURL    *string `json:"image_url"`
	Gender      string  `json:"gender" validate:"required,oneof=male female"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Education   string  `json:"education" validate:"required"`
	BirthDate   *time.Time `json:"birth_date"`
}

// UpdateApplicantInput applies only its non-nil fields.
type UpdateApplicantInput struct {
	UserID      int64      `json:"-"`
	Gender      *string    `json:"gender"`
	Description *string    `json:"description"`
	Address     *string    `json:"address"`
	Education   *string    `json:"education"`
	BirthDate   *time.Time `json:"birth_date"`
}

type ApplicantRepository interface {
	Create(ctx context.Context, in *RegisterApplicantInput) (int64, error)
	GetByID(ctx context.Context, userID int64) (*Applicant, error)
	Update(ctx context.Context, in *UpdateApplicantInput) error
}

type ApplicantUsecase interface {
	Register(ctx context.Context, in *RegisterApplicantInput) (*Applicant, error)
	GetProfile(ctx context.Context, userID int64) (*Applicant, error)
	UpdateProfile(ctx context.Context, in *UpdateApplicantInput) error
}
