package message

import (
	"time"

	"github.com/simeongugl4-design/workforce-hub-png/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	messages := r.Group("/messages")
	messages.Use(middleware.AuthMiddleware())
	{
		messages.GET("", middleware.Authorize(enforcer, "message", "read"), h.List)
		messages.GET("/:id", middleware.Authorize(enforcer, "message", "read"), h.Get)

		// Per-user throttle keeps one account from flooding inboxes.
		messages.POST("",
			middleware.Authorize(enforcer, "message", "write"),
			middleware.RateLimitByUser(rate.Every(2*time.Second), 10),
			h.Send)
		messages.POST("/broadcast",
			middleware.Authorize(enforcer, "message", "broadcast"),
			middleware.RateLimitByUser(rate.Every(30*time.Second), 3),
			h.Broadcast)
		messages.POST("/:id/read", middleware.Authorize(enforcer, "message", "write"), h.MarkRead)
	}
}
