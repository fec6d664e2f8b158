package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
}

func NewVacancyHandler(public, protected *gin.RouterGroup, vacancyUC domain.VacancyUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	public.GET("/vacancies", handler.Search)
	public.GET("/vacancies/:id", handler.GetByID)

	company := protected.Group("/vacancies")
	company.Use(middleware.RequireActor(domain.ActorCompany))
	{
		company.POST("", handler.Create)
		company.PATCH("/:id", handler.Update)
		company.DELETE("/:id", handler.Delete)
		company.PATCH("/:id/visibility", handler.SetVisibility)
		company.POST("/:id/raise", handler.RaiseInSearch)
	}

	applicant := protected.Group("")
	applicant.Use(middleware.RequireActor(domain.ActorApplicant))
	{
		applicant.POST("/vacancies/:id/like", handler.Like)
		applicant.DELETE("/vacancies/:id/like", handler.Unlike)
		applicant.GET("/liked-vacancies", handler.ListLiked)
	}
}

func (h *VacancyHandler) Search(c *gin.Context) {
	filter := &domain.VacancySearchFilter{
		Title:           queryStr(c, "title"),
		Profession:      queryStr(c, "profession"),
		Location:        queryStr(c, "location"),
		SalaryMin:       queryFloat(c, "salary_min"),
		SalaryMax:       queryFloat(c, "salary_max"),
		SalaryCurrency:  queryStr(c, "salary_currency"),
		EmploymentTypes: c.QueryArray("employment_type"),
		WorkSchedules:   c.QueryArray("work_schedule"),
		Offset:          queryIntDefault(c, "offset", 0),
		Limit:           queryIntDefault(c, "limit", 0),
	}

	vacancies, err := h.vacancyUC.Search(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancies", vacancies)
}

func (h *VacancyHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid vacancy id"))
		return
	}

	detail, err := h.vacancyUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy", detail)
}

func (h *VacancyHandler) Create(c *gin.Context) {
	var in domain.CreateVacancyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	detail, err := h.vacancyUC.Create(c.Request.Context(), &in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Vacancy created", detail)
}

func (h *VacancyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid vacancy id"))
		return
	}

	var in domain.UpdateVacancyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	in.ID = id

	if err := h.vacancyUC.Update(c.Request.Context(), &in); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy updated", nil)
}

func (h *VacancyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid vacancy id"))
		return
	}
	userID := c.GetInt64(string(domain.KeyUserID))

	if err := h.vacancyUC.Delete(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy deleted", nil)
}

func (h *VacancyHandler) SetVisibility(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid vacancy id"))
		return
	}

	var body struct {
		IsPublished *bool `json:"is_published" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.BadRequest("is_published is required"))
		return
	}
	userID := c.GetInt64(string(domain.KeyUserID))

	if err := h.vacancyUC.SetPublished(c.Request.Context(), id, userID, *body.IsPublished); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy visibility updated", nil)
}

func (h *VacancyHandler) RaiseInSearch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid vacancy id"))
		return
	}
	userID := c.GetInt64(string(domain.KeyUserID))

	result, err := h.vacancyUC.RaiseInSearch(c.Request.Context(), id, userID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy raised in search", result)
}

func (h *VacancyHandler) Like(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid vacancy id"))
		return
	}
	userID := c.GetInt64(string(domain.KeyUserID))

	if err := h.vacancyUC.Like(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Vacancy added to favorites", nil)
}

func (h *VacancyHandler) Unlike(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid vacancy id"))
		return
	}
	userID := c.GetInt64(string(domain.KeyUserID))

	if err := h.vacancyUC.Unlike(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Vacancy removed from favorites", nil)
}

func (h *VacancyHandler) ListLiked(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))

	liked, err := h.vacancyUC.ListLiked(c.Request.Context(), userID,
		queryIntDefault(c, "offset", 0), queryIntDefault(c, "limit", 0))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Liked vacancies", liked)
}
