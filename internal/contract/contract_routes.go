package contract

import (
	"github.com/simeongugl4-design/workforce-hub-png/internal/middleware"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer *casbin.Enforcer) {
	contracts := r.Group("/contracts")
	contracts.Use(middleware.AuthMiddleware())
	{
		contracts.GET("/:id", middleware.Authorize(enforcer, "contract", "read"), h.Get)
		contracts.GET("/workers/:workerId", middleware.Authorize(enforcer, "contract", "read"), h.ListForWorker)

		contracts.POST("", middleware.Authorize(enforcer, "contract", "write"), h.Create)
		contracts.POST("/:id/approve", middleware.Authorize(enforcer, "contract", "write"), h.Approve)
		contracts.POST("/:id/deactivate", middleware.Authorize(enforcer, "contract", "write"), h.Deactivate)
	}
}
