package domain

import "context"

// Company is the employer specialization of User.
type Company struct {
	UserID      int64   `json:"user_id"`
	CompanyName string  `json:"company_name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	IsConfirmed bool    `json:"is_confirmed"`

	Email       string  `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	ImageURL    *string `json:"image_url"`
}

type RegisterCompanyInput struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=8"`
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	PhoneNumber *string `json:"phone_number"`
	ImageURL    *string `json:"image_url"`
	CompanyName string  `json:"company_name" validate:"required"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
}

// UpdateCompanyInput applies only its non-nil fields.
type UpdateCompanyInput struct {
	UserID      int64   `json:"-"`
	CompanyName *string `json:"company_name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
}

// CompanySearchFilter has no required fields; a zero filter lists every
// company alphabetically.
type CompanySearchFilter struct {
	Name   *string
	Offset int
	Limit  int
}

type CompanyRepository interface {
	Create(ctx context.Context, in *RegisterCompanyInput) (int64, error)
	GetByID(ctx context.Context, userID int64) (*Company, error)
	Update(ctx context.Context, in *UpdateCompanyInput) error
	Search(ctx context.Context, filter CompanySearchFilter) ([]Company, error)
}

type CompanyUsecase interface {
	Register(ctx context.Context, in *RegisterCompanyInput) (*Company, error)
	GetProfile(ctx context.Context, userID int64) (*Company, error)
	UpdateProfile(ctx context.Context, in *UpdateCompanyInput) error
	Search(ctx context.Context, filter CompanySearchFilter) ([]Company, error)
}
