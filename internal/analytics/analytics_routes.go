package analytics

import (
	"github.com/simeongugl4-design/workforce-hub-png/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	group := r.Group("/analytics")
	group.Use(middleware.AuthMiddleware())
	{
		group.GET("/dashboard", middleware.Authorize(enforcer, "analytics", "read"), h.Dashboard)
		group.GET("/executive", middleware.Authorize(enforcer, "analytics", "executive"), h.Executive)
	}
}
