package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type AuthHandler struct {
	authUC      domain.AuthUsecase
	applicantUC domain.ApplicantUsecase
	companyUC   domain.CompanyUsecase
	userUC      domain.UserUsecase
}

func NewAuthHandler(
	public *gin.RouterGroup,
	authUC domain.AuthUsecase,
	applicantUC domain.ApplicantUsecase,
	companyUC domain.CompanyUsecase,
	userUC domain.UserUsecase,
) {
	handler := &AuthHandler{
		authUC:      authUC,
		applicantUC: applicantUC,
		companyUC:   companyUC,
		userUC:      userUC,
	}

	auth := public.Group("/auth")
	{
		auth.POST("/register/applicant", handler.RegisterApplicant)
		auth.POST("/register/company", handler.RegisterCompany)
		auth.POST("/login", handler.Login)
		auth.GET("/confirm", handler.ConfirmEmail)
	}
}

func (h *AuthHandler) RegisterApplicant(c *gin.Context) {
	var in domain.RegisterApplicantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	applicant, err := h.applicantUC.Register(c.Request.Context(), &in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Applicant registered", applicant)
}

func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var in domain.RegisterCompanyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	company, err := h.companyUC.Register(c.Request.Context(), &in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Company registered", company)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in domain.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), &in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Logged in", result)
}

func (h *AuthHandler) ConfirmEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.Error(apperror.BadRequest("Confirmation token is required"))
		return
	}

	if err := h.userUC.ConfirmEmail(c.Request.Context(), token); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Email confirmed", nil)
}
