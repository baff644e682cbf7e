package analytics

import (
	"net/http"

	"github.com/simeongugl4-design/workforce-hub-png/internal/role"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Dashboard(c *gin.Context) {
	primary := role.Role(c.GetString("primary_role"))

	resp, err := h.service.Dashboard(c.Request.Context(), primary)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Executive(c *gin.Context) {
	primary := role.Role(c.GetString("primary_role"))

	resp, err := h.service.Executive(c.Request.Context(), primary)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
