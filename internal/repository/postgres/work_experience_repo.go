package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type workExperienceRepo struct {
	db Querier
}

func NewWorkExperienceRepository(db Querier) domain.WorkExperienceRepository {
	return &workExperienceRepo{db: db}
}

// Create inserts only when the target resume belongs to the acting
// applicant; the ownership check and the insert are one statement.
func (r *workExperienceRepo) Create(ctx context.Context, in *domain.CreateWorkExperienceInput) (*domain.WorkExperience, error) {
	query := `
		INSERT INTO work_experiences (resume_id, company_name, start_date, end_date, description)
		SELECT id, $1, $2::date, $3::date, $4
		FROM resumes
		WHERE id = $5 AND applicant_id = $6
		RETURNING id`

	exp := &domain.WorkExperience{
		ResumeID:    in.ResumeID,
		CompanyName: in.CompanyName,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
	}
	err := r.db.QueryRow(ctx, query,
		in.CompanyName, in.StartDate, in.EndDate, in.Description,
		in.ResumeID, in.ApplicantID,
	).Scan(&exp.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.Forbidden("Resume does not belong to the current applicant")
		}
		return nil, translateError(err)
	}
	return exp, nil
}

func (r *workExperienceRepo) GetByID(ctx context.Context, id int64) (*domain.WorkExperience, error) {
	query := `
		SELECT id, resume_id, company_name,
			to_char(start_date, 'YYYY-MM-DD'),
			to_char(end_date, 'YYYY-MM-DD'),
			description
		FROM work_experiences
		WHERE id = $1`

	var exp domain.WorkExperience
	err := r.db.QueryRow(ctx, query, id).Scan(
		&exp.ID, &exp.ResumeID, &exp.CompanyName,
		&exp.StartDate, &exp.EndDate, &exp.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &exp, nil
}

func (r *workExperienceRepo) Update(ctx context.Context, in *domain.UpdateWorkExperienceInput) error {
	sets := []string{}
	args := []interface{}{}
	argIndex := 1

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if in.CompanyName != nil {
		appendSet("company_name", *in.CompanyName)
	}
	if in.StartDate != nil {
		appendSet("start_date", *in.StartDate)
	}
	if in.EndDate != nil {
		appendSet("end_date", *in.EndDate)
	}
	if in.Description != nil {
		appendSet("description", *in.Description)
	}
	if len(sets) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		UPDATE work_experiences SET %s
		WHERE id = $%d AND resume_id = (
			SELECT id FROM resumes WHERE id = $%d AND applicant_id = $%d
		)`,
		strings.Join(sets, ", "), argIndex, argIndex+1, argIndex+2)
	args = append(args, in.ID, in.ResumeID, in.ApplicantID)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *workExperienceRepo) Delete(ctx context.Context, id, resumeID, applicantID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM work_experiences
		WHERE id = $1 AND resume_id = (
			SELECT id FROM resumes WHERE id = $2 AND applicant_id = $3
		)`, id, resumeID, applicantID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
