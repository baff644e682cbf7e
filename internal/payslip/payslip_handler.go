package payslip

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/simeongugl4-design/workforce-hub-png/internal/role"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/apperror"
	"github.com/simeongugl4-design/workforce-hub-png/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, rdb: rdb}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Generate is idempotency-aware: a replayed Idempotency-Key serves the
// cached slip instead of re-running the computation.
func (h *Handler) Generate(c *gin.Context) {
	lockKey, _ := c.Get("idempotency_lock_key")
	cacheKey, _ := c.Get("idempotency_cache_key")

	if h.rdb != nil {
		if lk, ok := lockKey.(string); ok && lk != "" {
			defer h.rdb.Del(c.Request.Context(), lk)
		}
	}

	var req GeneratePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		details := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid request body", details)
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if h.rdb != nil {
		if ck, ok := cacheKey.(string); ok && ck != "" {
			if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
				_ = h.rdb.Set(c.Request.Context(), ck, payload, 24*time.Hour).Err()
			}
		}
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Get(c *gin.Context) {
	actingID := c.GetString("user_id")
	primary := role.Role(c.GetString("primary_role"))

	resp, err := h.service.Get(c.Request.Context(), actingID, primary, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	var q ListPayslipsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		details := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "invalid query parameters", details)
		return
	}

	actingID := c.GetString("user_id")
	primary := role.Role(c.GetString("primary_role"))

	rows, total, err := h.service.List(c.Request.Context(), actingID, primary, q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, q.Page, q.PageSize)
	response.Success(c, http.StatusOK, rows, &meta)
}

func (h *Handler) MarkPaid(c *gin.Context) {
	actingID := c.GetString("user_id")
	primary := role.Role(c.GetString("primary_role"))

	resp, err := h.service.MarkPaid(c.Request.Context(), actingID, primary, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadPDF(c *gin.Context) {
	actingID := c.GetString("user_id")
	primary := role.Role(c.GetString("primary_role"))

	pdf, err := h.service.RenderPDF(c.Request.Context(), actingID, primary, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="payslip_`+c.Param("id")+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
