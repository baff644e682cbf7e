package auth

import (
	"time"

	"github.com/simeongugl4-design/workforce-hub-png/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	authGroup := r.Group("/auth")
	{
		// Credential endpoints get a tighter per-IP limit.
		authGroup.POST("/signup", middleware.RateLimitByIP(rate.Every(12*time.Second), 5), h.Signup)
		authGroup.POST("/login", middleware.RateLimitByIP(rate.Every(6*time.Second), 10), h.Login)
		authGroup.POST("/refresh", h.Refresh)
		authGroup.POST("/logout", h.Logout)

		authGroup.GET("/me", middleware.AuthMiddleware(), h.Me)
	}
}
