package v1

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	reservationLimiter := NewIPRateLimiter(rate.Limit(h.cfg.ReservationRatePerSec), h.cfg.ReservationBurst)

	// Публичные маршруты для пациентов
	hospitals := api.Group("/hospitals")
	{
		hospitals.GET("/available", h.searchAvailable)
		hospitals.GET("/:id", h.getHospital)
		hospitals.GET("/:id/trip", h.estimateTrip)
		hospitals.POST("/:id/reservations", RateLimitMiddleware(reservationLimiter), h.reserveBed)
	}
	api.GET("/facilities", h.listFacilities)

	// Маршруты администраторов больниц
	admin := api.Group("/admin")
	admin.Use(APIKeyAuthMiddleware(h.cfg, h.logger), AdminIdentityMiddleware(h.logger))
	{
		admin.POST("/hospitals", h.createHospital)
		admin.GET("/hospitals/me", h.getOwnHospital)
		admin.PATCH("/hospitals/:id", h.updateHospital)
		admin.PUT("/hospitals/:id/beds", h.updateBeds)
		admin.DELETE("/hospitals/:id", h.deleteHospital)
		admin.GET("/reservations/stats", h.getStats)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
