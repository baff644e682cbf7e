package payslip

import (
	"github.com/simeongugl4-design/workforce-hub-png/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer, rdb *redis.Client) {
	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	{
		payslips.GET("", middleware.Authorize(enforcer, "payslip", "read"), h.List)
		payslips.GET("/:id", middleware.Authorize(enforcer, "payslip", "read"), h.Get)
		payslips.GET("/:id/pdf", middleware.Authorize(enforcer, "payslip", "read"), h.DownloadPDF)

		payslips.POST("",
			middleware.Authorize(enforcer, "payslip", "generate"),
			middleware.Idempotency(rdb),
			h.Generate)
		payslips.POST("/:id/pay",
			middleware.Authorize(enforcer, "payslip", "pay"),
			h.MarkPaid)
	}
}
