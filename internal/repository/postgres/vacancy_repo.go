package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type vacancyRepo struct {
	db Querier
}

func NewVacancyRepository(db Querier) domain.VacancyRepository {
	return &vacancyRepo{db: db}
}

// Create inserts the vacancy and its paid-access window. The tier name is
// resolved to an id inline; an unknown tier trips the NOT NULL constraint on
// vacancy_type_id and surfaces as 422.
func (r *vacancyRepo) Create(ctx context.Context, in *domain.CreateVacancyInput) (int64, error) {
	days, ok := domain.VacancyDurationDays[in.AccessDuration]
	if !ok {
		return 0, apperror.UnprocessableEntity("Unknown access duration")
	}

	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO vacancies (company_id, title, profession, description, key_skills,
			salary_min, salary_max, salary_currency, location,
			experience_start, experience_end,
			employment_types, work_schedules, vacancy_type_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			(SELECT id FROM vacancy_types WHERE name = $14))
		RETURNING id`,
		in.CompanyID, in.Title, in.Profession, in.Description, in.KeySkills,
		in.SalaryMin, in.SalaryMax, in.SalaryCurrency, in.Location,
		in.ExperienceStart, in.ExperienceEnd,
		pq.Array(in.EmploymentTypes), pq.Array(in.WorkSchedules), in.VacancyType,
	).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO vacancy_access (vacancy_id, start_date, end_date)
		VALUES ($1, NOW(), NOW() + make_interval(days => $2))`,
		id, days)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

const vacancyDetailColumns = `
	v.id, v.company_id, v.title, v.profession, v.description, v.key_skills,
	v.salary_min, v.salary_max, v.salary_currency, v.location,
	v.experience_start, v.experience_end,
	v.employment_types, v.work_schedules, v.is_published, v.is_confirmed,
	vt.name, v.created_at, v.updated_at,
	c.company_name, u.email, u.phone_number`

func scanVacancyDetail(row pgx.Row) (*domain.VacancyDetail, error) {
	var d domain.VacancyDetail
	err := row.Scan(
		&d.ID, &d.CompanyID, &d.Title, &d.Profession, &d.Description, &d.KeySkills,
		&d.SalaryMin, &d.SalaryMax, &d.SalaryCurrency, &d.Location,
		&d.ExperienceStart, &d.ExperienceEnd,
		&d.EmploymentTypes, &d.WorkSchedules, &d.IsPublished, &d.IsConfirmed,
		&d.VacancyTypeName, &d.CreatedAt, &d.UpdatedAt,
		&d.CompanyName, &d.CompanyEmail, &d.CompanyPhone,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *vacancyRepo) GetByID(ctx context.Context, id int64) (*domain.VacancyDetail, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM vacancies v
		JOIN vacancy_types vt ON vt.id = v.vacancy_type_id
		JOIN companies c ON c.user_id = v.company_id
		JOIN users u ON u.id = v.company_id
		WHERE v.id = $1`, vacancyDetailColumns)
	return scanVacancyDetail(r.db.QueryRow(ctx, query, id))
}

func (r *vacancyRepo) GetForRaise(ctx context.Context, id, companyID int64) (string, string, time.Time, error) {
	var (
		title     string
		tier      string
		updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT v.title, vt.name, v.updated_at
		FROM vacancies v
		JOIN vacancy_types vt ON vt.id = v.vacancy_type_id
		WHERE v.id = $1 AND v.company_id = $2`,
		id, companyID,
	).Scan(&title, &tier, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", "", time.Time{}, domain.ErrNotFound
		}
		return "", "", time.Time{}, err
	}
	return title, tier, updatedAt, nil
}

func (r *vacancyRepo) Touch(ctx context.Context, id int64, now time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE vacancies SET updated_at = $2 WHERE id = $1`, id, now)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vacancyRepo) Update(ctx context.Context, in *domain.UpdateVacancyInput) error {
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
	if in.Description != nil {
		appendSet("description", *in.Description)
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
	if in.ExperienceStart != nil {
		appendSet("experience_start", *in.ExperienceStart)
	}
	if in.ExperienceEnd != nil {
		appendSet("experience_end", *in.ExperienceEnd)
	}
	if in.EmploymentTypes != nil {
		appendSet("employment_types", pq.Array(in.EmploymentTypes))
	}
	if in.WorkSchedules != nil {
		appendSet("work_schedules", pq.Array(in.WorkSchedules))
	}
	if len(sets) == 1 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE vacancies SET %s WHERE id = $%d AND company_id = $%d`,
		strings.Join(sets, ", "), argIndex, argIndex+1)
	args = append(args, in.ID, in.CompanyID)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vacancyRepo) Delete(ctx context.Context, id, companyID int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM vacancies WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vacancyRepo) SetPublished(ctx context.Context, id, companyID int64, published bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE vacancies SET is_published = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2`,
		id, companyID, published)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// buildVacancySearchWhere builds the WHERE clause over aliases v (vacancies)
// and va (vacancy_access). Only published vacancies inside an active access
// window are visible unless the filter pins a company.
func buildVacancySearchWhere(filter *domain.VacancySearchFilter) (string, []interface{}, int) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	appendCond := func(format string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(format, argIndex))
		args = append(args, value)
		argIndex++
	}

	if filter.CompanyID != nil {
		appendCond("v.company_id = $%d", *filter.CompanyID)
	} else {
		conditions = append(conditions,
			"v.is_published = TRUE",
			`EXISTS (
				SELECT 1 FROM vacancy_access va
				WHERE va.vacancy_id = v.id AND NOW() BETWEEN va.start_date AND va.end_date
			)`)
	}

	if filter.Title != nil {
		appendCond("v.title LIKE $%d", "%"+*filter.Title+"%")
	}
	if filter.Profession != nil {
		appendCond("v.profession LIKE $%d", "%"+*filter.Profession+"%")
	}
	if filter.Location != nil {
		appendCond("v.location LIKE $%d", "%"+*filter.Location+"%")
	}
	if filter.SalaryMin != nil {
		appendCond("(v.salary_max IS NULL OR v.salary_max >= $%d)", *filter.SalaryMin)
	}
	if filter.SalaryMax != nil {
		appendCond("(v.salary_min IS NULL OR v.salary_min <= $%d)", *filter.SalaryMax)
	}
	if filter.SalaryCurrency != nil {
		appendCond("v.salary_currency = $%d", *filter.SalaryCurrency)
	}
	if len(filter.EmploymentTypes) > 0 {
		appendCond("v.employment_types @> $%d", pq.Array(filter.EmploymentTypes))
	}
	if len(filter.WorkSchedules) > 0 {
		appendCond("v.work_schedules @> $%d", pq.Array(filter.WorkSchedules))
	}
	if len(conditions) == 0 {
		conditions = append(conditions, "TRUE")
	}

	return strings.Join(conditions, " AND "), args, argIndex
}

func (r *vacancyRepo) Search(ctx context.Context, filter *domain.VacancySearchFilter) ([]*domain.VacancyDetail, error) {
	whereClause, args, argIndex := buildVacancySearchWhere(filter)

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
		SELECT %s
		FROM vacancies v
		JOIN vacancy_types vt ON vt.id = v.vacancy_type_id
		JOIN companies c ON c.user_id = v.company_id
		JOIN users u ON u.id = v.company_id
		WHERE %s
		ORDER BY v.updated_at DESC
		LIMIT $%d OFFSET $%d`,
		vacancyDetailColumns, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("vacancy search query failed: %w", err)
	}
	defer rows.Close()

	vacancies := []*domain.VacancyDetail{}
	for rows.Next() {
		d, err := scanVacancyDetail(rows)
		if err != nil {
			return nil, err
		}
		vacancies = append(vacancies, d)
	}
	return vacancies, rows.Err()
}

func (r *vacancyRepo) Like(ctx context.Context, applicantID, vacancyID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO liked_vacancies (applicant_id, vacancy_id)
		VALUES ($1, $2)`,
		applicantID, vacancyID)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *vacancyRepo) Unlike(ctx context.Context, applicantID, vacancyID int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM liked_vacancies WHERE applicant_id = $1 AND vacancy_id = $2`,
		applicantID, vacancyID)
	if err != nil {
		return translateError(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vacancyRepo) ListLiked(ctx context.Context, applicantID int64, offset, limit int) ([]*domain.LikedVacancy, error) {
	if limit <= 0 {
		limit = 25
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, `
		SELECT lv.vacancy_id, v.title, v.profession, lv.created_at
		FROM liked_vacancies lv
		JOIN vacancies v ON v.id = lv.vacancy_id
		WHERE lv.applicant_id = $1
		ORDER BY lv.created_at DESC
		LIMIT $2 OFFSET $3`,
		applicantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	liked := []*domain.LikedVacancy{}
	for rows.Next() {
		var lv domain.LikedVacancy
		if err := rows.Scan(&lv.VacancyID, &lv.Title, &lv.Profession, &lv.LikedAt); err != nil {
			return nil, err
		}
		liked = append(liked, &lv)
	}
	return liked, rows.Err()
}
