package worksummary

import (
	"github.com/simeongugl4-design/workforce-hub-png/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	summaries := r.Group("/work-summaries")
	summaries.Use(middleware.AuthMiddleware())
	{
		summaries.GET("", middleware.Authorize(enforcer, "worksummary", "read"), h.List)
		summaries.GET("/:id", middleware.Authorize(enforcer, "worksummary", "read"), h.Get)

		summaries.POST("", middleware.Authorize(enforcer, "worksummary", "write"), h.Submit)
		summaries.POST("/:id/review", middleware.Authorize(enforcer, "worksummary", "review"), h.Review)
	}
}
