// Package relay holds the per-event handlers behind the webhook endpoint and
// the table that routes events to them.
package relay

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/line-echo-relay/internal/line"
	"github.com/iliyamo/line-echo-relay/internal/model"
)

// ErrTransport is returned when the outbound reply call fails.  Handlers
// should translate this into an HTTP 500 response.
var ErrTransport = errors.New("reply transport failed")

// EventHandler handles one verified inbound event.
type EventHandler interface {
	Handle(ctx context.Context, ev model.InboundEvent) error
}

// EventHandlerFunc adapts a function to EventHandler.
type EventHandlerFunc func(ctx context.Context, ev model.InboundEvent) error

func (f EventHandlerFunc) Handle(ctx context.Context, ev model.InboundEvent) error {
	return f(ctx, ev)
}

// Echo replies to a text message with the same text.
type Echo struct {
	replier line.Replier
}

// NewEcho constructs an Echo and panics if replier is nil.
func NewEcho(replier line.Replier) *Echo {
	if replier == nil {
		panic("nil replier passed to NewEcho")
	}
	return &Echo{replier: replier}
}

// Handle sends exactly one reply for a Message event and does nothing for
// any other kind.  A failed reply is not retried.
func (h *Echo) Handle(ctx context.Context, ev model.InboundEvent) error {
	if ev.Kind != model.EventKindMessage {
		return nil
	}
	if err := h.replier.Reply(ctx, model.NewTextReply(ev.ReplyToken, ev.Text)); err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return nil
}

// Table maps an event kind to its handler.  It is built once at startup and
// only read afterwards.
type Table map[model.EventKind]EventHandler

// Dispatch runs events through their handlers one after another, in order.
// Kinds without a handler are skipped.  The first error stops the batch.
func (t Table) Dispatch(ctx context.Context, events []model.InboundEvent) error {
	for i, ev := range events {
		h, ok := t[ev.Kind]
		if !ok {
			continue
		}
		if err := h.Handle(ctx, ev); err != nil {
			return fmt.Errorf("event %d (%s): %w", i, ev.Kind, err)
		}
	}
	return nil
}
