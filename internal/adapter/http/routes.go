package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the API routes. metrics may be nil to leave
// /metrics unregistered.
func RegisterRoutes(e *echo.Echo, h *FlightHandler, metrics http.Handler) {
	e.GET("/health", h.Health)
	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	api := e.Group("/api/v1")

	searches := api.Group("/searchFlights")
	searches.POST("/:search_id", h.SearchFlights)
	searches.GET("/:search_id", h.GetSearch)

	api.POST("/dates/expand", h.ExpandDates)
}
