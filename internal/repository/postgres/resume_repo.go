package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"go-jobboard-backend/internal/domain"
)

type resumeRepo struct {
	db Querier
}

func NewResumeRepository(db Querier) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, in *domain.CreateResumeInput) (*domain.Resume, error) {
	query := `
		INSERT INTO resumes (applicant_id, title, profession, key_skills,
			salary_min, salary_max, salary_currency, location, employment_types)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, is_published, updated_at`

	res := &domain.Resume{
		ApplicantID:     in.ApplicantID,
		Title:           in.Title,
		Profession:      in.Profession,
		KeySkills:       in.KeySkills,
		SalaryMin:       in.SalaryMin,
		SalaryMax:       in.SalaryMax,
		SalaryCurrency:  in.SalaryCurrency,
		Location:        in.Location,
		EmploymentTypes: in.EmploymentTypes,
	}
	err := r.db.QueryRow(ctx, query,
		in.ApplicantID, in.Title, in.Profession, in.KeySkills,
		in.SalaryMin, in.SalaryMax, in.SalaryCurrency, in.Location,
		pq.Array(in.EmploymentTypes),
	).Scan(&res.ID, &res.IsPublished, &res.UpdatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return res, nil
}

// workExpsJSON is the shape produced by the json_agg subquery below.
type workExpJSON struct {
	ID          int64   `json:"id"`
	CompanyName string  `json:"company_name"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description *string `json:"description"`
}

const resumeDetailColumns = `
	r.id, r.applicant_id, r.title, r.profession, r.key_skills,
	r.salary_min, r.salary_max, r.salary_currency, r.location,
	r.is_published, r.employment_types, r.updated_at,
	a.gender, a.description, a.address, a.education, a.birth_date,
	u.is_confirmed, u.email, u.first_name, u.last_name, u.phone_number, u.image_url,
	(
		SELECT COALESCE(json_agg(json_build_object(
			'id', we.id,
			'company_name', we.company_name,
			'start_date', to_char(we.start_date, 'YYYY-MM-DD'),
			'end_date', to_char(we.end_date, 'YYYY-MM-DD'),
			'description', we.description
		) ORDER BY we.start_date), '[]')
		FROM work_experiences we
		WHERE we.resume_id = r.id
	) AS work_experiences`

func scanResumeDetail(row pgx.Row, d *domain.ResumeDetail, extra ...any) error {
	var expJSON []byte
	dest := []any{
		&d.ID, &d.ApplicantID, &d.Title, &d.Profession, &d.KeySkills,
		&d.SalaryMin, &d.SalaryMax, &d.SalaryCurrency, &d.Location,
		&d.IsPublished, &d.EmploymentTypes, &d.UpdatedAt,
		&d.Applicant.Gender, &d.Applicant.Description, &d.Applicant.Address,
		&d.Applicant.Education, &d.Applicant.BirthDate,
		&d.Applicant.IsConfirmed, &d.Applicant.Email, &d.Applicant.FirstName,
		&d.Applicant.LastName, &d.Applicant.PhoneNumber, &d.Applicant.ImageURL,
		&expJSON,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	d.Applicant.UserID = d.ApplicantID

	var exps []workExpJSON
	if err := json.Unmarshal(expJSON, &exps); err != nil {
		return fmt.Errorf("decode work experiences: %w", err)
	}
	d.WorkExperiences = make([]domain.WorkExperience, 0, len(exps))
	for _, e := range exps {
		d.WorkExperiences = append(d.WorkExperiences, domain.WorkExperience{
			ID:          e.ID,
			ResumeID:    d.ID,
			CompanyName: e.CompanyName,
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Description: e.Description,
		})
	}
	return nil
}

func (r *resumeRepo) GetByID(ctx context.Context, resumeID int64) (*domain.ResumeDetail, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM resumes r
		JOIN applicants a ON a.user_id = r.applicant_id
		JOIN users u ON u.id = r.applicant_id
		WHERE r.id = $1`, resumeDetailColumns)

	var d domain.ResumeDetail
	err := scanResumeDetail(r.db.QueryRow(ctx, query, resumeID), &d)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *resumeRepo) Update(ctx context.Context, in *domain.UpdateResumeInput) error {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIndex := 1

	appendSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if in.Title != nil {
		appendSet("title", *in.Title)
	}
	if in.Profession != nil {
		appendSet("profession", *in.Profession)
	}
	if in.KeySkills != nil {
		appendSet("key_skills", *in.KeySkills)
	}
	if in.SalaryMin != nil {
		appendSet("salary_min", *in.SalaryMin)
	}
	if in.SalaryMax != nil {
		appendSet("salary_max", *in.SalaryMax)
	}
	if in.SalaryCurrency != nil {
		appendSet("salary_currency", *in.SalaryCurrency)
	}
	if in.Location != nil {
		appendSet("location", *in.Location)
	}
	if in.IsPublished != nil {
		appendSet("is_published", *in.IsPublished)
	}
	if in.EmploymentTypes != nil {
		appendSet("employment_types", pq.Array(in.EmploymentTypes))
	}
	if len(sets) == 1 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE resumes SET %s WHERE id = $%d AND applicant_id = $%d`,
		strings.Join(sets, ", "), argIndex, argIndex+1)
	args = append(args, in.ResumeID, in.ApplicantID)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) Delete(ctx context.Context, resumeID, applicantID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND applicant_id = $2`, resumeID, applicantID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// buildResumeSearchWhere turns the filter into a WHERE clause over the
// aliases r (resumes), a (applicants) and exp (the per-resume work-months
// aggregate). Returns the clause, its arguments and the next free
// placeholder index.
func buildResumeSearchWhere(filter domain.ResumeSearchFilter, now time.Time) (string, []interface{}, int) {
	conditions := []string{"r.is_published = TRUE"}
	args := []interface{}{}
	argIndex := 1

	appendCond := func(format string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(format, argIndex))
		args = append(args, value)
		argIndex++
	}

	if filter.Name != nil {
		appendCond("r.title LIKE $%d", "%"+*filter.Name+"%")
	}
	if filter.Location != nil {
		appendCond("r.location LIKE $%d", "%"+*filter.Location+"%")
	}
	if filter.Profession != nil {
		appendCond("r.profession LIKE $%d", "%"+*filter.Profession+"%")
	}
	if filter.Gender != nil {
		appendCond("a.gender = $%d", *filter.Gender)
	}
	if len(filter.EmploymentTypes) > 0 {
		appendCond("r.employment_types @> $%d", pq.Array(filter.EmploymentTypes))
	}

	// Salary window overlap: a resume bound left NULL is unbounded on that
	// side.
	if filter.SalaryMin != nil {
		appendCond("(r.salary_max IS NULL OR r.salary_max >= $%d)", *filter.SalaryMin)
	}
	if filter.SalaryMax != nil {
		appendCond("(r.salary_min IS NULL OR r.salary_min <= $%d)", *filter.SalaryMax)
	}
	if filter.SalaryCurrency != nil {
		appendCond("r.salary_currency = $%d", *filter.SalaryCurrency)
	}

	// Age bounds translate to a birth-date window; rows without a birth date
	// never match an age filter.
	if filter.MinAge != nil || filter.MaxAge != nil {
		conditions = append(conditions, "a.birth_date IS NOT NULL")
	}
	if filter.MinAge != nil {
		appendCond("a.birth_date <= $%d", now.AddDate(-*filter.MinAge, 0, 0))
	}
	if filter.MaxAge != nil {
		appendCond("a.birth_date >= $%d", now.AddDate(-*filter.MaxAge, 0, 0))
	}

	if filter.StartExperienceYears != nil || filter.EndExperienceYears != nil {
		lo, hi := filter.StartExperienceYears, filter.EndExperienceYears
		if lo != nil && hi != nil && *lo > *hi {
			lo, hi = hi, lo
		}
		if lo != nil {
			appendCond("COALESCE(exp.total_months, 0) >= $%d", *lo*12)
		}
		if hi != nil {
			appendCond("COALESCE(exp.total_months, 0) <= $%d", *hi*12)
		}
	}

	return strings.Join(conditions, " AND "), args, argIndex
}

// Search runs the whole search, work-history aggregate included, as a single
// round trip so pagination is applied to resumes and not to joined rows.
func (r *resumeRepo) Search(ctx context.Context, filter domain.ResumeSearchFilter) ([]domain.ResumeSearchResult, error) {
	whereClause, args, argIndex := buildResumeSearchWhere(filter, time.Now())

	limit := filter.Limit
	if limit <= 0 {
		limit = 25
	}
	if limit > 100 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`
		SELECT %s,
			COALESCE(exp.total_months, 0) AS total_months
		FROM resumes r
		JOIN applicants a ON a.user_id = r.applicant_id
		JOIN users u ON u.id = r.applicant_id
		LEFT JOIN (
			SELECT resume_id,
				SUM(
					(EXTRACT(YEAR FROM COALESCE(end_date, CURRENT_DATE)) - EXTRACT(YEAR FROM start_date)) * 12 +
					(EXTRACT(MONTH FROM COALESCE(end_date, CURRENT_DATE)) - EXTRACT(MONTH FROM start_date))
				)::INT AS total_months
			FROM work_experiences
			GROUP BY resume_id
		) exp ON exp.resume_id = r.id
		WHERE %s
		ORDER BY r.title ASC
		LIMIT $%d OFFSET $%d`,
		resumeDetailColumns, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("resume search query failed: %w", err)
	}
	defer rows.Close()

	results := []domain.ResumeSearchResult{}
	for rows.Next() {
		var res domain.ResumeSearchResult
		if err := scanResumeDetail(rows, &res.ResumeDetail, &res.TotalMonths); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
