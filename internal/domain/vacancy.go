package domain

import (
	"context"
	"fmt"
	"time"
)

type Vacancy struct {
	ID              int64     `json:"id"`
	CompanyID       int64     `json:"company_id"`
	Title           string    `json:"title"`
	Profession      string    `json:"profession"`
	Description     *string   `json:"description"`
	KeySkills       *string   `json:"key_skills"`
	SalaryMin       *float64  `json:"salary_min"`
	SalaryMax       *float64  `json:"salary_max"`
	SalaryCurrency  *string   `json:"salary_currency"`
	Location        *string   `json:"location"`
	ExperienceStart *int      `json:"experience_start"`
	ExperienceEnd   *int      `json:"experience_end"`
	EmploymentTypes []string  `json:"employment_types"`
	WorkSchedules   []string  `json:"work_schedules"`
	IsPublished     bool      `json:"is_published"`
	IsConfirmed     bool      `json:"is_confirmed"`
	VacancyTypeName string    `json:"vacancy_type"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// VacancyDetail includes the publishing company's public contact fields.
type VacancyDetail struct {
	Vacancy
	CompanyName  *string `json:"company_name"`
	CompanyEmail string  `json:"company_email"`
	CompanyPhone *string `json:"company_phone"`
}

type VacancyType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type VacancyAccess struct {
	ID        int64     `json:"id"`
	VacancyID int64     `json:"vacancy_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type CreateVacancyInput struct {
	CompanyID       int64    `json:"-"`
	Title           string   `json:"title" validate:"required"`
	Profession      string   `json:"profession" validate:"required"`
	Description     *string  `json:"description"`
	KeySkills       *string  `json:"key_skills"`
	SalaryMin       *float64 `json:"salary_min"`
	SalaryMax       *float64 `json:"salary_max"`
	SalaryCurrency  *string  `json:"salary_currency"`
	Location        *string  `json:"location"`
	ExperienceStart *int     `json:"experience_start"`
	ExperienceEnd   *int     `json:"experience_end"`
	EmploymentTypes []string `json:"employment_types"`
	WorkSchedules   []string `json:"work_schedules"`
	VacancyType     string   `json:"vacancy_type" validate:"required,oneof=free paid premium"`
	AccessDuration  string   `json:"access_duration" validate:"required,oneof=7 14 30 90 180"`
}

// UpdateVacancyInput applies only its non-nil fields. CompanyID scopes the
// update to vacancies the caller owns.
type UpdateVacancyInput struct {
	ID              int64    `json:"-"`
	CompanyID       int64    `json:"-"`
	Title           *string  `json:"title"`
	Profession      *string  `json:"profession"`
	Description     *string  `json:"description"`
	KeySkills       *string  `json:"key_skills"`
	SalaryMin       *float64 `json:"salary_min"`
	SalaryMax       *float64 `json:"salary_max"`
	SalaryCurrency  *string  `json:"salary_currency"`
	Location        *string  `json:"location"`
	ExperienceStart *int     `json:"experience_start"`
	ExperienceEnd   *int     `json:"experience_end"`
	EmploymentTypes []string `json:"employment_types"`
	WorkSchedules   []string `json:"work_schedules"`
}

type VacancySearchFilter struct {
	Title           *string
	Profession      *string
	Location        *string
	SalaryMin       *float64
	SalaryMax       *float64
	SalaryCurrency  *string
	EmploymentTypes []string
	WorkSchedules   []string
	CompanyID       *int64
	Offset          int
	Limit           int
}

// VacancyTierCooldowns is the single source for how long a vacancy of each
// tier must wait between raises in search, in hours.
var VacancyTierCooldowns = map[string]int{
	"free":    8,
	"paid":    6,
	"premium": 3,
}

// RaiseCooldownError is returned when a vacancy is raised again before its
// tier cooldown has elapsed.
type RaiseCooldownError struct {
	VacancyTitle string  `json:"vacancy_title"`
	HoursLeft    float64 `json:"hours_left"`
}

func (e *RaiseCooldownError) Error() string {
	return fmt.Sprintf("vacancy %q can be raised again in %.2f hours", e.VacancyTitle, e.HoursLeft)
}

type RaiseResult struct {
	VacancyTitle      string    `json:"vacancy_title"`
	NextUpdateInHours int       `json:"next_update_in_hours"`
	NextUpdateAt      time.Time `json:"next_update_at"`
}

type LikedVacancy struct {
	VacancyID  int64     `json:"vacancy_id"`
	Title      string    `json:"title"`
	Profession string    `json:"profession"`
	LikedAt    time.Time `json:"liked_at"`
}

type VacancyRepository interface {
	Create(ctx context.Context, in *CreateVacancyInput) (int64, error)
	GetByID(ctx context.Context, id int64) (*VacancyDetail, error)
	GetForRaise(ctx context.Context, id, companyID int64) (title, tier string, updatedAt time.Time, err error)
	Touch(ctx context.Context, id int64, now time.Time) error
	Update(ctx context.Context, in *UpdateVacancyInput) error
	Delete(ctx context.Context, id, companyID int64) error
	SetPublished(ctx context.Context, id, companyID int64, published bool) error
	Search(ctx context.Context, f *VacancySearchFilter) ([]*VacancyDetail, error)
	Like(ctx context.Context, applicantID, vacancyID int64) error
	Unlike(ctx context.Context, applicantID, vacancyID int64) error
	ListLiked(ctx context.Context, applicantID int64, offset, limit int) ([]*LikedVacancy, error)
}

type VacancyUsecase interface {
	Create(ctx context.Context, in *CreateVacancyInput) (*VacancyDetail, error)
	GetByID(ctx context.Context, id int64) (*VacancyDetail, error)
	Update(ctx context.Context, in *UpdateVacancyInput) error
	Delete(ctx context.Context, id, companyID int64) error
	SetPublished(ctx context.Context, id, companyID int64, published bool) error
	Search(ctx context.Context, f *VacancySearchFilter) ([]*VacancyDetail, error)
	RaiseInSearch(ctx context.Context, id, companyID int64) (*RaiseResult, error)
	Like(ctx context.Context, applicantID, vacancyID int64) error
	Unlike(ctx context.Context, applicantID, vacancyID int64) error
	ListLiked(ctx context.Context, applicantID int64, offset, limit int) ([]*LikedVacancy, error)
}
