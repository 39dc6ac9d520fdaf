package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1. Переданные middleware
// применяются ко всем маршрутам, кроме health-check
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, middleware ...gin.HandlerFunc) {
	// Маршрут Health-check доступен без аутентификации
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", middleware...)

	// Прием координат и принудительная оценка
	protected.POST("/positions", h.ingestPosition)
	protected.POST("/evaluate", h.evaluateNow)

	// Управление потоком мониторинга
	monitoring := protected.Group("/monitoring")
	{
		monitoring.POST("/start", h.startMonitoring)
		monitoring.POST("/stop", h.stopMonitoring)
		monitoring.GET("/status", h.monitoringStatus)
	}

	// Зоны исключения (CRUD)
	exclusions := protected.Group("/exclusions")
	{
		exclusions.POST("", h.createExclusion)
		exclusions.GET("", h.listExclusions)
		exclusions.DELETE("/:id", h.deleteExclusion)
	}

	// Журнал отправленных уведомлений
	protected.GET("/prompts", h.listPrompts)
}
