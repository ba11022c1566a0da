package handler // handlers for the status API and the status page

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/line-echo-relay/internal/status"
	"github.com/iliyamo/line-echo-relay/internal/view"
)

// Status strings reported by GET /api/status.
const (
	StatusRunning       = "運行中"
	StatusDatabaseError = "資料庫錯誤"
	StatusAPIError      = "外部 API 錯誤"
)

// Messages returned by the status page when the status API cannot be used.
const (
	msgStatusUnavailable = "無法從 API 取得狀態"
	msgStatusMalformed   = "API 回應格式錯誤"
)

// StatusFetcher returns the current service status string.
type StatusFetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// StatusHandler serves the status API and the page that displays it.
type StatusHandler struct {
	fetcher StatusFetcher
}

// NewStatusHandler constructs a StatusHandler and panics if fetcher is nil.
func NewStatusHandler(fetcher StatusFetcher) *StatusHandler {
	if fetcher == nil {
		panic("nil status fetcher passed to NewStatusHandler")
	}
	return &StatusHandler{fetcher: fetcher}
}

// APIStatus reports the bot status as JSON.  The error query parameter
// simulates failures: "database" answers 500, "api" answers 503.
func (h *StatusHandler) APIStatus(c echo.Context) error {
	switch c.QueryParam("error") {
	case "database":
		return c.JSON(http.StatusInternalServerError, echo.Map{"status": StatusDatabaseError})
	case "api":
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": StatusAPIError})
	default:
		return c.JSON(http.StatusOK, echo.Map{"status": StatusRunning})
	}
}

// Index renders the status page from the status API's answer.
func (h *StatusHandler) Index(c echo.Context) error {
	s, err := h.fetcher.Fetch(c.Request().Context())
	switch {
	case errors.Is(err, status.ErrMalformed):
		c.Logger().Errorf("Error parsing API response: %v", err)
		return c.String(http.StatusInternalServerError, msgStatusMalformed)
	case err != nil:
		c.Logger().Errorf("Error fetching status from API: %v", err)
		return c.String(http.StatusInternalServerError, msgStatusUnavailable)
	}
	return c.Render(http.StatusOK, "index.html", view.IndexData{Status: s})
}

// Health is a liveness probe for load balancers.  It returns a plain text
// "ok" with a 200 status and touches nothing else.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
