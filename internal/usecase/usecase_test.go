package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/token"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, in *domain.UpdateUserInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *MockUserRepo) Confirm(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type MockVacancyRepo struct {
	mock.Mock
}

func (m *MockVacancyRepo) Create(ctx context.Context, in *domain.CreateVacancyInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVacancyRepo) GetByID(ctx context.Context, id int64) (*domain.VacancyDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VacancyDetail), args.Error(1)
}

func (m *MockVacancyRepo) GetForRaise(ctx context.Context, id, companyID int64) (string, string, time.Time, error) {
	args := m.Called(ctx, id, companyID)
	return args.String(0), args.String(1), args.Get(2).(time.Time), args.Error(3)
}

func (m *MockVacancyRepo) Touch(ctx context.Context, id int64, now time.Time) error {
	return m.Called(ctx, id, now).Error(0)
}

func (m *MockVacancyRepo) Update(ctx context.Context, in *domain.UpdateVacancyInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *MockVacancyRepo) Delete(ctx context.Context, id, companyID int64) error {
	return m.Called(ctx, id, companyID).Error(0)
}

func (m *MockVacancyRepo) SetPublished(ctx context.Context, id, companyID int64, published bool) error {
	return m.Called(ctx, id, companyID, published).Error(0)
}

func (m *MockVacancyRepo) Search(ctx context.Context, f *domain.VacancySearchFilter) ([]*domain.VacancyDetail, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.VacancyDetail), args.Error(1)
}

func (m *MockVacancyRepo) Like(ctx context.Context, applicantID, vacancyID int64) error {
	return m.Called(ctx, applicantID, vacancyID).Error(0)
}

func (m *MockVacancyRepo) Unlike(ctx context.Context, applicantID, vacancyID int64) error {
	return m.Called(ctx, applicantID, vacancyID).Error(0)
}

func (m *MockVacancyRepo) ListLiked(ctx context.Context, applicantID int64, offset, limit int) ([]*domain.LikedVacancy, error) {
	args := m.Called(ctx, applicantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LikedVacancy), args.Error(1)
}

type MockResponseRepo struct {
	mock.Mock
}

func (m *MockResponseRepo) CreateAsApplicant(ctx context.Context, vacancyID, resumeID, applicantUserID int64) (int64, error) {
	args := m.Called(ctx, vacancyID, resumeID, applicantUserID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResponseRepo) CreateAsCompany(ctx context.Context, vacancyID, resumeID, companyUserID int64) (int64, error) {
	args := m.Called(ctx, vacancyID, resumeID, companyUserID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResponseRepo) CreateChat(ctx context.Context, responseID int64, chatType string) (int64, error) {
	args := m.Called(ctx, responseID, chatType)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResponseRepo) GetChatByResponse(ctx context.Context, responseID int64) (*domain.Chat, error) {
	args := m.Called(ctx, responseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chat), args.Error(1)
}

func (m *MockResponseRepo) AddMessage(ctx context.Context, chatID int64, senderType, body string) (int64, error) {
	args := m.Called(ctx, chatID, senderType, body)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResponseRepo) GetContacts(ctx context.Context, responseID int64) (*domain.ResponseContacts, error) {
	args := m.Called(ctx, responseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResponseContacts), args.Error(1)
}

func (m *MockResponseRepo) ChangeStatus(ctx context.Context, in *domain.ChangeResponseStatusInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *MockResponseRepo) ListForApplicant(ctx context.Context, applicantID int64, offset, limit int) ([]*domain.ResponseDetail, error) {
	args := m.Called(ctx, applicantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ResponseDetail), args.Error(1)
}

func (m *MockResponseRepo) ListForCompany(ctx context.Context, companyID int64, offset, limit int) ([]*domain.ResponseDetail, error) {
	args := m.Called(ctx, companyID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ResponseDetail), args.Error(1)
}

// Transaction plumbing fakes

type fakeUnitOfWork struct {
	users     domain.UserRepository
	vacancies domain.VacancyRepository
	responses domain.ResponseRepository

	committed  bool
	rolledBack bool
	commitErr  error
	onCommit   func()
}

func (u *fakeUnitOfWork) Users() domain.UserRepository           { return u.users }
func (u *fakeUnitOfWork) Applicants() domain.ApplicantRepository { return nil }
func (u *fakeUnitOfWork) Companies() domain.CompanyRepository    { return nil }
func (u *fakeUnitOfWork) Resumes() domain.ResumeRepository       { return nil }
func (u *fakeUnitOfWork) WorkExperiences() domain.WorkExperienceRepository {
	return nil
}
func (u *fakeUnitOfWork) Vacancies() domain.VacancyRepository { return u.vacancies }
func (u *fakeUnitOfWork) Responses() domain.ResponseRepository {
	return u.responses
}

func (u *fakeUnitOfWork) Commit(ctx context.Context) error {
	if u.commitErr != nil {
		return u.commitErr
	}
	u.committed = true
	if u.onCommit != nil {
		u.onCommit()
	}
	return nil
}

func (u *fakeUnitOfWork) Rollback(ctx context.Context) error {
	if !u.committed {
		u.rolledBack = true
	}
	return nil
}

type fakeTxManager struct {
	uow   *fakeUnitOfWork
	begun bool
}

func (m *fakeTxManager) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	m.begun = true
	return m.uow, nil
}

type notifyCall struct {
	destination string
	template    string
	data        map[string]string
}

type recordingNotifier struct {
	calls    []notifyCall
	onNotify func()
}

func (n *recordingNotifier) Notify(destination, template string, data map[string]string) {
	n.calls = append(n.calls, notifyCall{destination, template, data})
	if n.onNotify != nil {
		n.onNotify()
	}
}

type fakeHasher struct {
	compareErr error
}

func (f *fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (f *fakeHasher) Compare(hash, password string) error  { return f.compareErr }

type fakeTokenIssuer struct {
	lastClaims token.Claims
}

func (f *fakeTokenIssuer) Issue(c token.Claims) (string, error) {
	f.lastClaims = c
	return "signed-token", nil
}

func TestAuthLogin(t *testing.T) {
	validate := validator.New()

	t.Run("Should not reveal whether email or password was wrong", func(t *testing.T) {
		unknownEmail := new(MockUserRepo)
		unknownEmail.On("GetByEmail", mock.Anything, "ghost@example.com").
			Return(nil, domain.ErrNotFound)
		uc := usecase.NewAuthUsecase(unknownEmail, &fakeHasher{}, &fakeTokenIssuer{}, validate)
		_, emailErr := uc.Login(context.Background(), &domain.LoginInput{
			Email: "ghost@example.com", Password: "secret",
		})

		knownEmail := new(MockUserRepo)
		knownEmail.On("GetByEmail", mock.Anything, "ivan@example.com").
			Return(&domain.User{ID: 1, Email: "ivan@example.com"}, nil)
		uc = usecase.NewAuthUsecase(knownEmail, &fakeHasher{compareErr: errors.New("mismatch")}, &fakeTokenIssuer{}, validate)
		_, passErr := uc.Login(context.Background(), &domain.LoginInput{
			Email: "ivan@example.com", Password: "wrong",
		})

		assert.Error(t, emailErr)
		assert.Error(t, passErr)
		assert.Equal(t, emailErr.Error(), passErr.Error())
	})

	t.Run("Should issue a token carrying the user's actor side", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByEmail", mock.Anything, "acme@example.com").
			Return(&domain.User{ID: 42, Email: "acme@example.com", UserType: domain.UserTypeCompany}, nil)

		issuer := &fakeTokenIssuer{}
		uc := usecase.NewAuthUsecase(repo, &fakeHasher{}, issuer, validate)

		result, err := uc.Login(context.Background(), &domain.LoginInput{
			Email: "acme@example.com", Password: "secret",
		})

		assert.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, int64(42), issuer.lastClaims.UserID)
		assert.Equal(t, domain.ActorCompany, issuer.lastClaims.ActorType)
	})

	t.Run("Should reject a malformed email before touching the repository", func(t *testing.T) {
		repo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(repo, &fakeHasher{}, &fakeTokenIssuer{}, validate)

		_, err := uc.Login(context.Background(), &domain.LoginInput{
			Email: "not-an-email", Password: "secret",
		})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "GetByEmail")
	})
}

func TestResponseCreate(t *testing.T) {
	validate := validator.New()
	contacts := &domain.ResponseContacts{
		VacancyTitle:   "Go Developer",
		ResumeTitle:    "Backend Engineer",
		ApplicantEmail: "ivan@example.com",
		CompanyEmail:   "hr@acme.com",
	}

	t.Run("Should notify the company only after the commit", func(t *testing.T) {
		repo := new(MockResponseRepo)
		repo.On("CreateAsApplicant", mock.Anything, int64(10), int64(20), int64(5)).Return(int64(77), nil)
		repo.On("CreateChat", mock.Anything, int64(77), domain.ChatTypeResponse).Return(int64(88), nil)
		repo.On("AddMessage", mock.Anything, int64(88), domain.ActorApplicant, "Hello!").Return(int64(1), nil)
		repo.On("GetContacts", mock.Anything, int64(77)).Return(contacts, nil)

		var events []string
		uow := &fakeUnitOfWork{responses: repo, onCommit: func() { events = append(events, "commit") }}
		notifier := &recordingNotifier{onNotify: func() { events = append(events, "notify") }}
		uc := usecase.NewResponseUsecase(&fakeTxManager{uow: uow}, notifier, validate)

		msg := "Hello!"
		resp, err := uc.Create(context.Background(), &domain.CreateResponseInput{
			VacancyID:   10,
			ResumeID:    20,
			ActorUserID: 5,
			ActorType:   domain.ActorApplicant,
			Message:     &msg,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(77), resp.ID)
		assert.Equal(t, domain.StatusSent, resp.Status)
		assert.Equal(t, []string{"commit", "notify"}, events)
		assert.Equal(t, "hr@acme.com", notifier.calls[0].destination)
		assert.Equal(t, "Go Developer", notifier.calls[0].data["vacancy_title"])
		repo.AssertExpectations(t)
	})

	t.Run("Should notify the applicant when the company responded", func(t *testing.T) {
		repo := new(MockResponseRepo)
		repo.On("CreateAsCompany", mock.Anything, int64(10), int64(20), int64(3)).Return(int64(78), nil)
		repo.On("CreateChat", mock.Anything, int64(78), domain.ChatTypeResponse).Return(int64(89), nil)
		repo.On("GetContacts", mock.Anything, int64(78)).Return(contacts, nil)

		notifier := &recordingNotifier{}
		uow := &fakeUnitOfWork{responses: repo}
		uc := usecase.NewResponseUsecase(&fakeTxManager{uow: uow}, notifier, validate)

		_, err := uc.Create(context.Background(), &domain.CreateResponseInput{
			VacancyID:   10,
			ResumeID:    20,
			ActorUserID: 3,
			ActorType:   domain.ActorCompany,
		})

		assert.NoError(t, err)
		assert.Equal(t, "ivan@example.com", notifier.calls[0].destination)
		// No opening message was supplied.
		repo.AssertNotCalled(t, "AddMessage")
	})

	t.Run("Should roll back and stay silent when the insert is rejected", func(t *testing.T) {
		repo := new(MockResponseRepo)
		repo.On("CreateAsApplicant", mock.Anything, int64(10), int64(20), int64(5)).
			Return(int64(0), apperror.Forbidden("Resume does not belong to you"))

		notifier := &recordingNotifier{}
		uow := &fakeUnitOfWork{responses: repo}
		uc := usecase.NewResponseUsecase(&fakeTxManager{uow: uow}, notifier, validate)

		_, err := uc.Create(context.Background(), &domain.CreateResponseInput{
			VacancyID:   10,
			ResumeID:    20,
			ActorUserID: 5,
			ActorType:   domain.ActorApplicant,
		})

		assert.Error(t, err)
		assert.False(t, uow.committed)
		assert.True(t, uow.rolledBack)
		assert.Empty(t, notifier.calls)
	})
}

func TestResponseChangeStatus(t *testing.T) {
	validate := validator.New()
	contacts := &domain.ResponseContacts{
		VacancyTitle:   "Go Developer",
		ResumeTitle:    "Backend Engineer",
		ApplicantEmail: "ivan@example.com",
		CompanyEmail:   "hr@acme.com",
	}

	t.Run("Should reject an unknown status before opening a transaction", func(t *testing.T) {
		tx := &fakeTxManager{uow: &fakeUnitOfWork{}}
		uc := usecase.NewResponseUsecase(tx, &recordingNotifier{}, validate)

		err := uc.ChangeStatus(context.Background(), &domain.ChangeResponseStatusInput{
			ResponseID: 77,
			Status:     "SENT",
			ActorType:  domain.ActorCompany,
		})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.False(t, tx.begun)
	})

	t.Run("Should append an audit message and notify the opener", func(t *testing.T) {
		repo := new(MockResponseRepo)
		repo.On("ChangeStatus", mock.Anything, mock.AnythingOfType("*domain.ChangeResponseStatusInput")).Return(nil)
		repo.On("GetChatByResponse", mock.Anything, int64(77)).Return(&domain.Chat{ID: 88}, nil)
		repo.On("AddMessage", mock.Anything, int64(88), domain.ActorCompany, "Status changed to ACCEPTED").Return(int64(2), nil)
		repo.On("GetContacts", mock.Anything, int64(77)).Return(contacts, nil)

		notifier := &recordingNotifier{}
		uow := &fakeUnitOfWork{responses: repo}
		uc := usecase.NewResponseUsecase(&fakeTxManager{uow: uow}, notifier, validate)

		err := uc.ChangeStatus(context.Background(), &domain.ChangeResponseStatusInput{
			ResponseID:  77,
			Status:      domain.StatusAccepted,
			ActorUserID: 3,
			ActorType:   domain.ActorCompany,
		})

		assert.NoError(t, err)
		assert.True(t, uow.committed)
		// The company is the one changing the status, so the applicant who
		// opened the response gets the notification.
		assert.Equal(t, "ivan@example.com", notifier.calls[0].destination)
		assert.Equal(t, domain.StatusAccepted, notifier.calls[0].data["status"])
		repo.AssertExpectations(t)
	})

	t.Run("Should tolerate a response without a chat", func(t *testing.T) {
		repo := new(MockResponseRepo)
		repo.On("ChangeStatus", mock.Anything, mock.Anything).Return(nil)
		repo.On("GetChatByResponse", mock.Anything, int64(77)).Return(nil, domain.ErrNotFound)
		repo.On("GetContacts", mock.Anything, int64(77)).Return(contacts, nil)

		uow := &fakeUnitOfWork{responses: repo}
		uc := usecase.NewResponseUsecase(&fakeTxManager{uow: uow}, &recordingNotifier{}, validate)

		err := uc.ChangeStatus(context.Background(), &domain.ChangeResponseStatusInput{
			ResponseID: 77,
			Status:     domain.StatusDeclined,
			ActorType:  domain.ActorApplicant,
		})

		assert.NoError(t, err)
		assert.True(t, uow.committed)
		repo.AssertNotCalled(t, "AddMessage")
	})
}

func TestVacancyRaiseInSearch(t *testing.T) {
	validate := validator.New()

	t.Run("Should touch the vacancy when the cooldown has passed", func(t *testing.T) {
		repo := new(MockVacancyRepo)
		repo.On("GetForRaise", mock.Anything, int64(9), int64(3)).
			Return("Go Developer", "free", time.Now().Add(-100*time.Hour), nil)
		repo.On("Touch", mock.Anything, int64(9), mock.AnythingOfType("time.Time")).Return(nil)

		uow := &fakeUnitOfWork{vacancies: repo}
		uc := usecase.NewVacancyUsecase(&fakeTxManager{uow: uow}, repo, validate)

		result, err := uc.RaiseInSearch(context.Background(), 9, 3)

		assert.NoError(t, err)
		assert.True(t, uow.committed)
		assert.Equal(t, "Go Developer", result.VacancyTitle)
		assert.Equal(t, 8, result.NextUpdateInHours)
		repo.AssertExpectations(t)
	})

	t.Run("Should not touch the vacancy while it is cooling down", func(t *testing.T) {
		repo := new(MockVacancyRepo)
		repo.On("GetForRaise", mock.Anything, int64(9), int64(3)).
			Return("Go Developer", "premium", time.Now().Add(-time.Hour), nil)

		uow := &fakeUnitOfWork{vacancies: repo}
		uc := usecase.NewVacancyUsecase(&fakeTxManager{uow: uow}, repo, validate)

		_, err := uc.RaiseInSearch(context.Background(), 9, 3)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusTooManyRequests, appErr.Code)
		assert.False(t, uow.committed)
		repo.AssertNotCalled(t, "Touch")
	})

	t.Run("Should map a missing vacancy to not found", func(t *testing.T) {
		repo := new(MockVacancyRepo)
		repo.On("GetForRaise", mock.Anything, int64(9), int64(3)).
			Return("", "", time.Time{}, domain.ErrNotFound)

		uow := &fakeUnitOfWork{vacancies: repo}
		uc := usecase.NewVacancyUsecase(&fakeTxManager{uow: uow}, repo, validate)

		_, err := uc.RaiseInSearch(context.Background(), 9, 3)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})
}

func TestVacancyCreateAuth(t *testing.T) {
	validate := validator.New()

	t.Run("Should fail safely when the context carries no user", func(t *testing.T) {
		repo := new(MockVacancyRepo)
		uow := &fakeUnitOfWork{vacancies: repo}
		uc := usecase.NewVacancyUsecase(&fakeTxManager{uow: uow}, repo, validate)

		_, err := uc.Create(context.Background(), &domain.CreateVacancyInput{
			Title:          "Go Developer",
			Profession:     "developer",
			VacancyType:    "free",
			AccessDuration: "30",
		})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Should force the company id from the context", func(t *testing.T) {
		repo := new(MockVacancyRepo)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.CreateVacancyInput")).
			Return(int64(15), nil).
			Run(func(args mock.Arguments) {
				in := args.Get(1).(*domain.CreateVacancyInput)
				assert.Equal(t, int64(3), in.CompanyID)
			})
		repo.On("GetByID", mock.Anything, int64(15)).
			Return(&domain.VacancyDetail{Vacancy: domain.Vacancy{ID: 15}}, nil)

		uow := &fakeUnitOfWork{vacancies: repo}
		uc := usecase.NewVacancyUsecase(&fakeTxManager{uow: uow}, repo, validate)

		ctx := context.WithValue(context.Background(), domain.KeyUserID, int64(3))
		detail, err := uc.Create(ctx, &domain.CreateVacancyInput{
			CompanyID:      999, // must be overwritten
			Title:          "Go Developer",
			Profession:     "developer",
			VacancyType:    "free",
			AccessDuration: "30",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(15), detail.ID)
		assert.True(t, uow.committed)
	})
}
