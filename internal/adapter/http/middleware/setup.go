package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in order:
//  1. RequestID, so every later log line carries the id
//  2. Metrics, when obs is non-nil
//  3. RequestLogger
//  4. Recover, innermost so it wraps the handlers
//
// Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, obs HTTPObserver) {
	SetupWithConfig(e, log, obs, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, obs HTTPObserver, recoveryConfig RecoveryConfig) {
	e.Use(Chain(log, obs, recoveryConfig)...)
}

// Chain returns the middleware as a slice for use with route groups.
func Chain(log zerolog.Logger, obs HTTPObserver, recoveryConfig RecoveryConfig) []echo.MiddlewareFunc {
	chain := []echo.MiddlewareFunc{RequestID()}
	if obs != nil {
		chain = append(chain, Metrics(obs))
	}
	return append(chain, RequestLogger(log), RecoverWithConfig(log, recoveryConfig))
}
