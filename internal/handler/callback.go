package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/line-echo-relay/internal/config"
	"github.com/iliyamo/line-echo-relay/internal/line"
	"github.com/iliyamo/line-echo-relay/internal/relay"
)

// maxCallbackBody caps the webhook body read from the platform.
const maxCallbackBody = 1 << 20

// CallbackHandler terminates LINE webhook calls.  It owns the table that
// routes each verified event to its handler.
type CallbackHandler struct {
	secret string
	table  relay.Table
}

// NewCallbackHandler builds the webhook endpoint from the immutable config
// and the dispatch table.
func NewCallbackHandler(cfg config.Config, table relay.Table) *CallbackHandler {
	if table == nil {
		panic("nil dispatch table passed to NewCallbackHandler")
	}
	return &CallbackHandler{secret: cfg.ChannelSecret, table: table}
}

// Callback handles POST /callback.  The body is verified, decoded and
// dispatched event by event before the response is written.  Error bodies
// never describe the failure.
func (h *CallbackHandler) Callback(c echo.Context) error {
	req := c.Request()
	body, err := io.ReadAll(io.LimitReader(req.Body, maxCallbackBody))
	if err != nil {
		c.Logger().Errorf("callback: read body: %v", err)
		return c.String(http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
	}
	c.Logger().Infof("request body: %s", body)

	events, err := line.ParseEvents(h.secret, req.Header.Get(line.SignatureHeader), body)
	switch {
	case errors.Is(err, line.ErrInvalidSignature):
		c.Logger().Info("invalid signature; check the channel access token/channel secret")
		return c.String(http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
	case err != nil:
		c.Logger().Errorf("callback: %v; body: %s", err, body)
		return c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}

	if err := h.table.Dispatch(req.Context(), events); err != nil {
		c.Logger().Errorf("callback: dispatch: %v; body: %s", err, body)
		return c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
	return c.String(http.StatusOK, "OK")
}
