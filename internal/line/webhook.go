// Package line adapts the LINE platform SDK to the relay's own event and
// reply types.  Nothing outside this package imports the SDK.
package line

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"

	"github.com/iliyamo/line-echo-relay/internal/model"
)

// SignatureHeader carries base64(HMAC-SHA256(channel secret, body)).
const SignatureHeader = "X-Line-Signature"

// ErrInvalidSignature is returned when the signature header is missing or
// does not match the body.  Handlers should translate this into an HTTP 400
// response without further detail.
var ErrInvalidSignature = errors.New("invalid signature")

// ErrParse is returned when a correctly signed body cannot be decoded into a
// webhook event batch.
var ErrParse = errors.New("malformed webhook payload")

// ParseEvents verifies body against signature and decodes every event of the
// batch, in order.  Either the whole batch is returned or none of it.
func ParseEvents(channelSecret, signature string, body []byte) ([]model.InboundEvent, error) {
	if signature == "" || !webhook.ValidateSignature(channelSecret, signature, body) {
		return nil, ErrInvalidSignature
	}

	var cb webhook.CallbackRequest
	if err := json.Unmarshal(body, &cb); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	events := make([]model.InboundEvent, 0, len(cb.Events))
	for _, ev := range cb.Events {
		events = append(events, toInbound(ev))
	}
	return events, nil
}

// toInbound keeps only what the relay acts on.  A message event is a
// Message only when its content is text.
func toInbound(ev webhook.EventInterface) model.InboundEvent {
	e, ok := ev.(webhook.MessageEvent)
	if !ok {
		return model.InboundEvent{Kind: model.EventKindOther}
	}
	text, ok := e.Message.(webhook.TextMessageContent)
	if !ok {
		return model.InboundEvent{ReplyToken: e.ReplyToken, Kind: model.EventKindOther}
	}
	return model.InboundEvent{
		ReplyToken: e.ReplyToken,
		Text:       text.Text,
		Kind:       model.EventKindMessage,
	}
}
