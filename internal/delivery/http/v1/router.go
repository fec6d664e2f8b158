package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/token"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	UserUC      domain.UserUsecase
	ApplicantUC domain.ApplicantUsecase
	CompanyUC   domain.CompanyUsecase
	ResumeUC    domain.ResumeUsecase
	ExpUC       domain.WorkExperienceUsecase
	VacancyUC   domain.VacancyUsecase
	ResponseUC  domain.ResponseUsecase
	Tokens      *token.Manager
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes
	NewAuthHandler(v1, deps.AuthUC, deps.ApplicantUC, deps.CompanyUC, deps.UserUC)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	NewApplicantHandler(protected, deps.ApplicantUC)
	NewCompanyHandler(v1, protected, deps.CompanyUC)
	NewResumeHandler(v1, protected, deps.ResumeUC, deps.ExpUC)
	NewVacancyHandler(v1, protected, deps.VacancyUC)
	NewResponseHandler(protected, deps.ResponseUC)

	return r
}
