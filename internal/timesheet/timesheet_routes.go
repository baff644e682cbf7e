package timesheet

import (
	"github.com/simeongugl4-design/workforce-hub-png/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	timesheets := r.Group("/timesheets")
	timesheets.Use(middleware.AuthMiddleware())
	{
		timesheets.GET("", middleware.Authorize(enforcer, "timesheet", "read"), h.List)
		timesheets.GET("/:id", middleware.Authorize(enforcer, "timesheet", "read"), h.Get)
		timesheets.POST("", middleware.Authorize(enforcer, "timesheet", "write"), h.Create)
		timesheets.POST("/:id/review", middleware.Authorize(enforcer, "timesheet", "approve"), h.Review)
	}
}
