package profile

import (
	"github.com/simeongugl4-design/workforce-hub-png/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	profiles := r.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware())
	{
		profiles.GET("/me", h.GetMe)
		profiles.PATCH("/me", h.UpdateMe)

		profiles.GET("", middleware.Authorize(enforcer, "worker", "read"), h.List)
		profiles.GET("/:id", h.Get)

		profiles.PATCH("/:id/employment",
			middleware.Authorize(enforcer, "account", "approve"), h.UpdateEmployment)
		profiles.POST("/:id/account-decision",
			middleware.Authorize(enforcer, "account", "approve"), h.DecideAccount)
	}
}
