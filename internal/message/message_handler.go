package message

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

func (h *Handler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid request body", details)
		return
	}

	resp, err := h.service.Send(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Broadcast(c *gin.Context) {
	var req BroadcastMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid request body", details)
		return
	}

	resp, err := h.service.Broadcast(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Get(c *gin.Context) {
	roles := contextRoles(c)

	resp, err := h.service.Get(c.Request.Context(), c.GetString("user_id"), roles, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	var q ListMessagesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		details := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid query parameters", details)
		return
	}

	resp, total, err := h.service.List(c.Request.Context(), c.GetString("user_id"), contextRoles(c), q)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, q.Page, q.PageSize)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) MarkRead(c *gin.Context) {
	resp, err := h.service.MarkRead(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func contextRoles(c *gin.Context) []role.Role {
	labels := c.GetStringSlice("roles")
	roles, err := role.ParseAll(labels)
	if err != nil {
		return nil
	}
	return roles
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
