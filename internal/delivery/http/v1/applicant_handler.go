package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type ApplicantHandler struct {
	applicantUC domain.ApplicantUsecase
}

func NewApplicantHandler(protected *gin.RouterGroup, applicantUC domain.ApplicantUsecase) {
	handler := &ApplicantHandler{applicantUC: applicantUC}

	applicants := protected.Group("/applicants")
	{
		applicants.GET("/me", handler.GetMyProfile)
		applicants.PATCH("/me", handler.UpdateMyProfile)
		applicants.GET("/:id", handler.GetProfile)
	}
}

func (h *ApplicantHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.applicantUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicant profile", profile)
}

func (h *ApplicantHandler) GetProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid applicant id"))
		return
	}

	profile, err := h.applicantUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicant profile", profile)
}

func (h *ApplicantHandler) UpdateMyProfile(c *gin.Context) {
	var in domain.UpdateApplicantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.applicantUC.UpdateProfile(c.Request.Context(), &in); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", nil)
}
