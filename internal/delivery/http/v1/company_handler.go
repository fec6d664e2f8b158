package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public, protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	public.GET("/companies", handler.Search)
	public.GET("/companies/:id", handler.GetProfile)

	companies := protected.Group("/companies")
	{
		companies.GET("/me", handler.GetMyProfile)
		companies.PATCH("/me", handler.UpdateMyProfile)
	}
}

func (h *CompanyHandler) Search(c *gin.Context) {
	filter := domain.CompanySearchFilter{
		Name:   queryStr(c, "name"),
		Offset: queryIntDefault(c, "offset", 0),
		Limit:  queryIntDefault(c, "limit", 0),
	}

	companies, err := h.companyUC.Search(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Companies", companies)
}

func (h *CompanyHandler) GetProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid company id"))
		return
	}

	profile, err := h.companyUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile", profile)
}

func (h *CompanyHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	profile, err := h.companyUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile", profile)
}

func (h *CompanyHandler) UpdateMyProfile(c *gin.Context) {
	var in domain.UpdateCompanyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	if err := h.companyUC.UpdateProfile(c.Request.Context(), &in); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", nil)
}
