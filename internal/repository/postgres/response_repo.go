package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type responseRepo struct {
	db Querier
}

func NewResponseRepository(db Querier) domain.ResponseRepository {
	return &responseRepo{db: db}
}

// CreateAsApplicant inserts a response only when the resume belongs to the
// acting applicant. The ownership guard rides in the INSERT ... SELECT, so a
// foreign resume yields zero rows rather than a separate lookup.
func (r *responseRepo) CreateAsApplicant(ctx context.Context, vacancyID, resumeID, applicantUserID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO responses (vacancy_id, resume_id, responder_type, status)
		SELECT $1, id, $3, $4
		FROM resumes
		WHERE id = $2 AND applicant_id = $5
		RETURNING id`,
		vacancyID, resumeID, domain.ActorApplicant, domain.StatusSent, applicantUserID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.Forbidden("Resume does not belong to the current applicant")
		}
		return 0, translateError(err)
	}
	return id, nil
}

// CreateAsCompany mirrors CreateAsApplicant with the guard on vacancy
// ownership.
func (r *responseRepo) CreateAsCompany(ctx context.Context, vacancyID, resumeID, companyUserID int64) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO responses (vacancy_id, resume_id, responder_type, status)
		SELECT id, $2, $3, $4
		FROM vacancies
		WHERE id = $1 AND company_id = $5
		RETURNING id`,
		vacancyID, resumeID, domain.ActorCompany, domain.StatusSent, companyUserID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperror.Forbidden("Vacancy does not belong to the current company")
		}
		return 0, translateError(err)
	}
	return id, nil
}

func (r *responseRepo) CreateChat(ctx context.Context, responseID int64, chatType string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO chats (response_id, chat_type)
		VALUES ($1, $2)
		RETURNING id`,
		responseID, chatType,
	).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

func (r *responseRepo) GetChatByResponse(ctx context.Context, responseID int64) (*domain.Chat, error) {
	var c domain.Chat
	err := r.db.QueryRow(ctx, `
		SELECT id, response_id, chat_type, created_at
		FROM chats WHERE response_id = $1`,
		responseID,
	).Scan(&c.ID, &c.ResponseID, &c.ChatType, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *responseRepo) AddMessage(ctx context.Context, chatID int64, senderType, body string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO messages (chat_id, sender_type, body)
		VALUES ($1, $2, $3)
		RETURNING id`,
		chatID, senderType, body,
	).Scan(&id)
	if err != nil {
		return 0, translateError(err)
	}
	return id, nil
}

func (r *responseRepo) GetContacts(ctx context.Context, responseID int64) (*domain.ResponseContacts, error) {
	var c domain.ResponseContacts
	err := r.db.QueryRow(ctx, `
		SELECT v.title, res.title, ua.email, uc.email
		FROM responses rsp
		JOIN vacancies v ON v.id = rsp.vacancy_id
		JOIN resumes res ON res.id = rsp.resume_id
		JOIN users ua ON ua.id = res.applicant_id
		JOIN users uc ON uc.id = v.company_id
		WHERE rsp.id = $1`,
		responseID,
	).Scan(&c.VacancyTitle, &c.ResumeTitle, &c.ApplicantEmail, &c.CompanyEmail)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// ChangeStatus updates the row only when the acting user sits on the side
// that did not open the response. The whole permission check happens in the
// WHERE clause of a single UPDATE.
func (r *responseRepo) ChangeStatus(ctx context.Context, in *domain.ChangeResponseStatusInput) error {
	var id int64
	err := r.db.QueryRow(ctx, `
		UPDATE responses SET status = $2, updated_at = NOW()
		WHERE id = (
			SELECT rsp.id
			FROM responses rsp
			JOIN vacancies v ON v.id = rsp.vacancy_id
			JOIN resumes res ON res.id = rsp.resume_id
			WHERE rsp.id = $1
			  AND rsp.responder_type != $3
			  AND CASE WHEN $3 = 'COMPANY' THEN v.company_id = $4
			           ELSE res.applicant_id = $4 END
		)
		RETURNING id`,
		in.ResponseID, in.Status, in.ActorType, in.ActorUserID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.Forbidden("Only the receiving side can change the response status")
		}
		return translateError(err)
	}
	return nil
}

type messageJSON struct {
	ID         int64     `json:"id"`
	SenderType string    `json:"sender_type"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

const responseDetailQuery = `
	SELECT rsp.id, rsp.vacancy_id, rsp.resume_id, rsp.responder_type, rsp.status,
		rsp.created_at, rsp.updated_at,
		v.title, res.title,
		ch.id, ch.chat_type, ch.created_at,
		(
			SELECT COALESCE(json_agg(json_build_object(
				'id', m.id,
				'sender_type', m.sender_type,
				'body', m.body,
				'created_at', m.created_at
			) ORDER BY m.created_at), '[]')
			FROM messages m
			WHERE m.chat_id = ch.id
		) AS messages
	FROM responses rsp
	JOIN vacancies v ON v.id = rsp.vacancy_id
	JOIN resumes res ON res.id = rsp.resume_id
	LEFT JOIN chats ch ON ch.response_id = rsp.id
	WHERE %s
	ORDER BY rsp.created_at DESC
	LIMIT $2 OFFSET $3`

func (r *responseRepo) listDetails(ctx context.Context, condition string, ownerID int64, offset, limit int) ([]*domain.ResponseDetail, error) {
	if limit <= 0 {
		limit = 25
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(responseDetailQuery, condition)
	rows, err := r.db.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("response list query failed: %w", err)
	}
	defer rows.Close()

	details := []*domain.ResponseDetail{}
	for rows.Next() {
		var (
			d        domain.ResponseDetail
			chatID   *int64
			chatType *string
			chatAt   *time.Time
			msgJSON  []byte
		)
		err := rows.Scan(
			&d.ID, &d.VacancyID, &d.ResumeID, &d.ResponderType, &d.Status,
			&d.CreatedAt, &d.UpdatedAt,
			&d.VacancyTitle, &d.ResumeTitle,
			&chatID, &chatType, &chatAt,
			&msgJSON,
		)
		if err != nil {
			return nil, err
		}

		d.Messages = []*domain.Message{}
		if chatID != nil {
			d.Chat = &domain.Chat{
				ID:         *chatID,
				ResponseID: d.ID,
				ChatType:   *chatType,
				CreatedAt:  *chatAt,
			}
			var msgs []messageJSON
			if err := json.Unmarshal(msgJSON, &msgs); err != nil {
				return nil, fmt.Errorf("decode messages: %w", err)
			}
			for _, m := range msgs {
				d.Messages = append(d.Messages, &domain.Message{
					ID:         m.ID,
					ChatID:     *chatID,
					SenderType: m.SenderType,
					Body:       m.Body,
					CreatedAt:  m.CreatedAt,
				})
			}
		}
		details = append(details, &d)
	}
	return details, rows.Err()
}

func (r *responseRepo) ListForApplicant(ctx context.Context, applicantID int64, offset, limit int) ([]*domain.ResponseDetail, error) {
	return r.listDetails(ctx, "res.applicant_id = $1", applicantID, offset, limit)
}

func (r *responseRepo) ListForCompany(ctx context.Context, companyID int64, offset, limit int) ([]*domain.ResponseDetail, error) {
	return r.listDetails(ctx, "v.company_id = $1", companyID, offset, limit)
}
