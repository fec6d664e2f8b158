package domain

import "context"

// WorkExperience dates travel as YYYY-MM-DD strings; a nil EndDate means the
// position is ongoing and counts up to today in the experience aggregate.
type WorkExperience struct {
	ID          int64   `json:"id"`
	ResumeID    int64   `json:"resume_id"`
	CompanyName string  `json:"company_name"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description *string `json:"description"`
}

type CreateWorkExperienceInput struct {
	ResumeID    int64   `json:"-"`
	ApplicantID int64   `json:"-"`
	CompanyName string  `json:"company_name" validate:"required"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     *string `json:"end_date"`
	Description *string `json:"description"`
}

// UpdateWorkExperienceInput applies only its non-nil fields.
type UpdateWorkExperienceInput struct {
	ID          int64   `json:"-"`
	ResumeID    int64   `json:"-"`
	ApplicantID int64   `json:"-"`
	CompanyName *string `json:"company_name"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description *string `json:"description"`
}

type WorkExperienceRepository interface {
	Create(ctx context.Context, in *CreateWorkExperienceInput) (*WorkExperience, error)
	GetByID(ctx context.Context, id int64) (*WorkExperience, error)
	Update(ctx context.Context, in *UpdateWorkExperienceInput) error
	Delete(ctx context.Context, id, resumeID, applicantID int64) error
}

type WorkExperienceUsecase interface {
	Create(ctx context.Context, in *CreateWorkExperienceInput) (*WorkExperience, error)
	GetByID(ctx context.Context, id int64) (*WorkExperience, error)
	Update(ctx context.Context, in *UpdateWorkExperienceInput) error
	Delete(ctx context.Context, id, resumeID, applicantID int64) error
}
