package userrole

import (
	"github.com/simeongugl4-design/workforce-hub-png/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	roles := r.Group("/roles")
	roles.Use(middleware.AuthMiddleware())
	{
		roles.GET("/me", h.GetMine)
		roles.GET("/users/:userId", middleware.Authorize(enforcer, "roleassignment", "write"), h.GetForUser)
		roles.POST("/assign", middleware.Authorize(enforcer, "roleassignment", "write"), h.Assign)
		roles.POST("/revoke", middleware.Authorize(enforcer, "roleassignment", "write"), h.Revoke)
	}
}
