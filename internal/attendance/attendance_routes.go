package attendance

import (
	"github.com/SaiAryan1784/HRMS-Lite/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	attendances := r.Group("/attendance")
	{
		attendances.GET("", h.List)
		attendances.POST("", middleware.Idempotency(rdb), h.Mark)
		attendances.PUT("/:id", h.UpdateStatus)
	}
}
