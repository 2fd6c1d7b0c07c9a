package employee

import (
	"github.com/SaiAryan1784/HRMS-Lite/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	employees := r.Group("/employees")
	{
		employees.GET("", h.GetAll)
		employees.GET("/:id", h.GetByID)
		employees.POST("", middleware.Idempotency(rdb), h.Create)
		employees.DELETE("/:id", h.Delete)
	}
}
