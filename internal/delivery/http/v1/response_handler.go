package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

type ResponseHandler struct {
	responseUC domain.ResponseUsecase
}

func NewResponseHandler(protected *gin.RouterGroup, responseUC domain.ResponseUsecase) {
	handler := &ResponseHandler{responseUC: responseUC}

	responses := protected.Group("/responses")
	{
		responses.POST("", handler.Create)
		responses.PATCH("/:id/status", handler.ChangeStatus)
		responses.GET("", handler.List)
	}
}

func (h *ResponseHandler) Create(c *gin.Context) {
	var in domain.CreateResponseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}
	in.ActorUserID = c.GetInt64(string(domain.KeyUserID))
	in.ActorType = c.GetString(string(domain.KeyActorType))

	resp, err := h.responseUC.Create(c.Request.Context(), &in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Response created", resp)
}

func (h *ResponseHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		c.Error(apperror.BadRequest("Invalid response id"))
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.BadRequest("status is required"))
		return
	}

	in := &domain.ChangeResponseStatusInput{
		ResponseID:  id,
		Status:      body.Status,
		ActorUserID: c.GetInt64(string(domain.KeyUserID)),
		ActorType:   c.GetString(string(domain.KeyActorType)),
	}
	if err := h.responseUC.ChangeStatus(c.Request.Context(), in); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Response status updated", nil)
}

// List returns the current side's response threads, messages included.
func (h *ResponseHandler) List(c *gin.Context) {
	userID := c.GetInt64(string(domain.KeyUserID))
	offset := queryIntDefault(c, "offset", 0)
	limit := queryIntDefault(c, "limit", 0)

	var (
		details []*domain.ResponseDetail
		err     error
	)
	if c.GetString(string(domain.KeyActorType)) == domain.ActorCompany {
		details, err = h.responseUC.ListForCompany(c.Request.Context(), userID, offset, limit)
	} else {
		details, err = h.responseUC.ListForApplicant(c.Request.Context(), userID, offset, limit)
	}
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Responses", details)
}
