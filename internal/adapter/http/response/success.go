package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`

	// Lookup is the name of the configured flight lookup
	Lookup string `json:"lookup,omitempty"`

	// Breaker is the lookup circuit breaker state, if one is configured
	Breaker string `json:"breaker,omitempty"`

	// InFlight is the number of date fetches currently running
	InFlight int `json:"in_flight"`
}

// Health writes a health check response.
func Health(c echo.Context, status HealthResponse) error {
	if status.Status == "" {
		status.Status = "ok"
	}
	return c.JSON(http.StatusOK, &status)
}

// SearchResults writes a 200 OK response with search results.
func SearchResults(c echo.Context, results interface{}) error {
	return c.JSON(http.StatusOK, results)
}
