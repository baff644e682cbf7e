package finance

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

func (h *Handler) Record(c *gin.Context) {
	var req RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid request body", details)
		return
	}

	actingID := c.GetString("user_id")
	primary := role.Role(c.GetString("primary_role"))

	resp, err := h.service.Record(c.Request.Context(), actingID, primary, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Get(c *gin.Context) {
	primary := role.Role(c.GetString("primary_role"))

	resp, err := h.service.Get(c.Request.Context(), primary, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	var q ListTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		details := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid query parameters", details)
		return
	}

	primary := role.Role(c.GetString("primary_role"))

	rows, total, err := h.service.List(c.Request.Context(), primary, q)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, q.Page, q.PageSize)
	response.Success(c, http.StatusOK, rows, &meta)
}

func (h *Handler) Summary(c *gin.Context) {
	var q SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		details := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid query parameters", details)
		return
	}

	primary := role.Role(c.GetString("primary_role"))

	resp, err := h.service.Summary(c.Request.Context(), primary, q)
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
