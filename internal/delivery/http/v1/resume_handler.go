package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
	expUC    domain.WorkExperienceUsecase
}

func NewResumeHandler(
	public, protected *gin.RouterGroup,
	resumeUC domain.ResumeUsecase,
	expUC domain.WorkExperienceUsecase,
) {
	handler := &ResumeHandler{resumeUC: resumeUC, expUC: expUC}

	public.GET("/resumes", handler.Search)
	public.GET("/resumes/:id", handler.GetByID)

	resumes := protected.Group("/resumes")
	{
		resumes.POST("", handler.Create)
		resumes.PATCH("/:id", handler.Update)
		resumes.DELETE("/:id", handler.Delete)

		resumes.POST("/:id/experiences", handler.CreateExperience)
		resumes.PATCH("/:id/experiences/:expID", handler.UpdateExperience)
		resumes.DELETE("/:id/experiences/:expID", handler.DeleteExperience)
	}
}

func (h *ResumeHandler) Search(c *gin.Context) {
	filter := domain.ResumeSearchFilter{
		Name:                 queryStr(c, "name"),
		Location:             queryStr(c, "location"),
		Profession:           queryStr(c, "profession"),
		Gender:               queryStr(c, "gender"),
		EmploymentTypes:      c.QueryArray("employment_type"),
		SalaryMin:            queryFloat(c, "salary_min"),
		SalaryMax:            queryFloat(c, "salary_max"),
		SalaryCurrency:       queryStr(c, "salary_currency"),
		MinAge:               queryInt(c, "min_age"),
		MaxAge:               queryInt(c, "max_age"),
		StartExperienceYears: queryInt(c, "start_experience_years"),
		EndExperienceYears:   queryInt(c, "end_experience_years"),
		Offset:               queryIntDefault(c, "offset", 0),
		Limit:                queryIntDefault(c, "limit", 0),
	}

	results, err := h.resumeUC.Search(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resumes", results)
}

func (h *ResumeHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid resume id"))
		return
	}

	detail, err := h.resumeUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume", detail)
}

func (h *ResumeHandler) Create(c *gin.Context) {
	var in domain.CreateResumeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	resume, err := h.resumeUC.Create(c.Request.Context(), &in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Resume created", resume)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid resume id"))
		return
	}

	var in domain.UpdateResumeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	in.ResumeID = id

	if err := h.resumeUC.Update(c.Request.Context(), &in); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume updated", nil)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid resume id"))
		return
	}
	userID := c.GetInt64(string(domain.KeyUserID))

	if err := h.resumeUC.Delete(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Resume deleted", nil)
}

func (h *ResumeHandler) CreateExperience(c *gin.Context) {
	resumeID, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid resume id"))
		return
	}

	var in domain.CreateWorkExperienceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	in.ResumeID = resumeID

	exp, err := h.expUC.Create(c.Request.Context(), &in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Work experience added", exp)
}

func (h *ResumeHandler) UpdateExperience(c *gin.Context) {
	resumeID, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid resume id"))
		return
	}
	expID, ok := pathID(c, "expID")
	if !ok {
		c.Error(apperror.BadRequest("Invalid work experience id"))
		return
	}

	var in domain.UpdateWorkExperienceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	in.ID = expID
	in.ResumeID = resumeID

	if err := h.expUC.Update(c.Request.Context(), &in); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work experience updated", nil)
}

func (h *ResumeHandler) DeleteExperience(c *gin.Context) {
	resumeID, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid resume id"))
		return
	}
	expID, ok := pathID(c, "expID")
	if !ok {
		c.Error(apperror.BadRequest("Invalid work experience id"))
		return
	}
	userID := c.GetInt64(string(domain.KeyUserID))

	if err := h.expUC.Delete(c.Request.Context(), expID, resumeID, userID); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work experience deleted", nil)
}
