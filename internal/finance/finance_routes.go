package finance

import (
	"github.com/simeongugl4-design/workforce-hub-png/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	finance := r.Group("/finance")
	finance.Use(middleware.AuthMiddleware())
	{
		finance.GET("/transactions", middleware.Authorize(enforcer, "finance", "read"), h.List)
		finance.GET("/transactions/:id", middleware.Authorize(enforcer, "finance", "read"), h.Get)
		finance.POST("/transactions", middleware.Authorize(enforcer, "finance", "write"), h.Record)
		finance.GET("/summary", middleware.Authorize(enforcer, "finance", "read"), h.Summary)
	}
}
