package contract

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

func (h *Handler) Create(c *gin.Context) {
	var req CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid request body", details)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Deactivate(c *gin.Context) {
	resp, err := h.service.Deactivate(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Get(c *gin.Context) {
	actingID := c.GetString("user_id")
	primary := role.Role(c.GetString("primary_role"))

	resp, err := h.service.Get(c.Request.Context(), actingID, primary, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListForWorker(c *gin.Context) {
	actingID := c.GetString("user_id")
	primary := role.Role(c.GetString("primary_role"))

	resp, err := h.service.ListForWorker(c.Request.Context(), actingID, primary, c.Param("workerId"))
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
