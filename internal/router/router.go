package router // package router defines how HTTP routes are registered

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/line-echo-relay/internal/handler"
)

// RegisterRoutes registers every route of the relay on e.  statusCache
// wraps only the status page; the webhook and the status API are never
// cached.
func RegisterRoutes(e *echo.Echo, cb *handler.CallbackHandler, st *handler.StatusHandler, statusCache echo.MiddlewareFunc) {
	// liveness probe for load balancers and monitoring
	e.GET("/healthz", handler.Health)

	// LINE platform webhook
	e.POST("/callback", cb.Callback)

	e.GET("/api/status", st.APIStatus)
	e.GET("/", st.Index, statusCache)
}
