package line

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"github.com/iliyamo/line-echo-relay/internal/model"
)

// Replier sends one reply to the messaging platform.
type Replier interface {
	Reply(ctx context.Context, reply model.OutboundReply) error
}

// MessagingConfig holds what a Messaging API session needs.
type MessagingConfig struct {
	AccessToken string        // channel access token
	Endpoint    string        // API base URL; empty means the SDK default
	Timeout     time.Duration // per reply call; zero means no client timeout
}

// MessagingReplier sends replies through the LINE Messaging API.  Every call
// opens its own HTTP transport and client and closes the transport's idle
// connections before returning, so no session outlives a reply.
type MessagingReplier struct {
	cfg MessagingConfig
}

// NewMessagingReplier returns a replier bound to cfg.
func NewMessagingReplier(cfg MessagingConfig) *MessagingReplier {
	return &MessagingReplier{cfg: cfg}
}

// Reply sends reply exactly once.  Failures are returned as is; there is no
// retry.
func (m *MessagingReplier) Reply(ctx context.Context, reply model.OutboundReply) error {
	if len(reply.Messages) == 0 {
		return errors.New("reply has no messages")
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	defer tr.CloseIdleConnections()

	client := &http.Client{
		Transport: contextTransport{ctx: ctx, base: tr},
		Timeout:   m.cfg.Timeout,
	}
	api, err := m.open(client)
	if err != nil {
		return fmt.Errorf("open messaging api: %w", err)
	}

	msgs := make([]messaging_api.MessageInterface, 0, len(reply.Messages))
	for _, msg := range reply.Messages {
		msgs = append(msgs, messaging_api.TextMessage{Text: msg.Text})
	}

	if _, err := api.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: reply.ReplyToken,
		Messages:   msgs,
	}); err != nil {
		return fmt.Errorf("reply message: %w", err)
	}
	return nil
}

func (m *MessagingReplier) open(client *http.Client) (*messaging_api.MessagingApiAPI, error) {
	if m.cfg.Endpoint == "" {
		return messaging_api.NewMessagingApiAPI(m.cfg.AccessToken, messaging_api.WithHTTPClient(client))
	}
	return messaging_api.NewMessagingApiAPI(
		m.cfg.AccessToken,
		messaging_api.WithHTTPClient(client),
		messaging_api.WithEndpoint(m.cfg.Endpoint),
	)
}

// contextTransport binds outgoing requests to the inbound request's context
// so a cancelled webhook call also cancels its reply.
type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t contextTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(r.WithContext(t.ctx))
}
