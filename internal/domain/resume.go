package domain

import (
	"context"
	"time"
)

type Resume struct {
	ID              int64     `json:"id"`
	ApplicantID     int64     `json:"applicant_id"`
	Title           string    `json:"title"`
	Profession      string    `json:"profession"`
	KeySkills       *string   `json:"key_skills"`
	SalaryMin       *float64  `json:"salary_min"`
	SalaryMax       *float64  `json:"salary_max"`
	SalaryCurrency  *string   `json:"salary_currency"`
	Location        *string   `json:"location"`
	IsPublished     bool      `json:"is_published"`
	EmploymentTypes []string  `json:"employment_types"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ResumeDetail is a resume with its applicant profile and work history
// eagerly attached.
type ResumeDetail struct {
	Resume
	Applicant       Applicant        `json:"applicant"`
	WorkExperiences []WorkExperience `json:"work_experiences"`
}

// ResumeSearchResult additionally carries the derived total of work-history
// months; resumes without any work history have zero.
type ResumeSearchResult struct {
	ResumeDetail
	TotalMonths int `json:"total_months"`
}

type CreateResumeInput struct {
	ApplicantID     int64    `json:"-"`
	Title           string   `json:"title" validate:"required"`
	Profession      string   `json:"profession" validate:"required"`
	KeySkills       *string  `json:"key_skills"`
	SalaryMin       *float64 `json:"salary_min"`
	SalaryMax       *float64 `json:"salary_max"`
	SalaryCurrency  *string  `json:"salary_currency"`
	Location        *string  `json:"location"`
	EmploymentTypes []string `json:"employment_types"`
}

// UpdateResumeInput applies only its non-nil fields. The applicant id scopes
// the update to rows the caller owns.
type UpdateResumeInput struct {
	ResumeID        int64    `json:"-"`
	ApplicantID     int64    `json:"-"`
	Title           *string  `json:"title"`
	Profession      *string  `json:"profession"`
	KeySkills       *string  `json:"key_skills"`
	SalaryMin       *float64 `json:"salary_min"`
	SalaryMax       *float64 `json:"salary_max"`
	SalaryCurrency  *string  `json:"salary_currency"`
	Location        *string  `json:"location"`
	IsPublished     *bool    `json:"is_published"`
	EmploymentTypes []string `json:"employment_types"`
}

// ResumeSearchFilter: every field is optional and filters are AND-combined.
// Substring matches are case-sensitive "contains". EmploymentTypes requires
// the resume's tag set to contain every requested tag. Experience bounds are
// whole years; reversed bounds are swapped before use.
type ResumeSearchFilter struct {
	Name                 *string
	Location             *string
	Profession           *string
	Gender               *string
	EmploymentTypes      []string
	SalaryMin            *float64
	SalaryMax            *float64
	SalaryCurrency       *string
	MinAge               *int
	MaxAge               *int
	StartExperienceYears *int
	EndExperienceYears   *int
	Offset               int
	Limit                int
}

type ResumeRepository interface {
	Create(ctx context.Context, in *CreateResumeInput) (*Resume, error)
	GetByID(ctx context.Context, resumeID int64) (*ResumeDetail, error)
	Update(ctx context.Context, in *UpdateResumeInput) error
	Delete(ctx context.Context, resumeID, applicantID int64) error
	Search(ctx context.Context, filter ResumeSearchFilter) ([]ResumeSearchResult, error)
}

type ResumeUsecase interface {
	Create(ctx context.Context, in *CreateResumeInput) (*Resume, error)
	GetByID(ctx context.Context, resumeID int64) (*ResumeDetail, error)
	Update(ctx context.Context, in *UpdateResumeInput) error
	Delete(ctx context.Context, resumeID, applicantID int64) error
	Search(ctx context.Context, filter ResumeSearchFilter) ([]ResumeSearchResult, error)
}
