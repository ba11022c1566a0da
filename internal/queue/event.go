// Package queue defines message payloads exchanged over the message broker.
package queue

// ReplySentQueue is the durable queue receiving ReplySentEvent messages.
const ReplySentQueue = "line.reply.sent"

// ReplySentEvent is published after an echo reply was accepted by the
// messaging platform.  It deliberately carries no message text.
type ReplySentEvent struct {
	ReplyToken   string `json:"reply_token"`
	MessageCount int    `json:"message_count"`
	TextLength   int    `json:"text_length"` // total runes over all messages
	SentAt       string `json:"sent_at"`     // RFC 3339, UTC
}
