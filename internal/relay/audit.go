package relay

import (
	"context"
	"log"
	"time"
	"unicode/utf8"

	"github.com/iliyamo/line-echo-relay/internal/model"
	"github.com/iliyamo/line-echo-relay/internal/queue"
)

// ReplyPublisher receives an event for every reply that was sent.
type ReplyPublisher interface {
	PublishReplySent(ctx context.Context, event queue.ReplySentEvent) error
}

// WithAudit wraps next so that every successfully handled Message event is
// reported to pub.  Publishing errors are logged and never change the
// result of next.
func WithAudit(next EventHandler, pub ReplyPublisher) EventHandler {
	return EventHandlerFunc(func(ctx context.Context, ev model.InboundEvent) error {
		if err := next.Handle(ctx, ev); err != nil {
			return err
		}
		if ev.Kind != model.EventKindMessage {
			return nil
		}
		event := queue.ReplySentEvent{
			ReplyToken:   ev.ReplyToken,
			MessageCount: 1,
			TextLength:   utf8.RuneCountInString(ev.Text),
			SentAt:       time.Now().UTC().Format(time.RFC3339),
		}
		if err := pub.PublishReplySent(ctx, event); err != nil {
			log.Printf("relay: audit publish failed for reply %s: %v", ev.ReplyToken, err)
		}
		return nil
	})
}
