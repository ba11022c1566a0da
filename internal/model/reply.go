package model

// TextMessage is a plain text message sent back to a chat.
type TextMessage struct {
	Text string
}

// OutboundReply answers a single inbound event.  It is sent once and then
// dropped.
type OutboundReply struct {
	ReplyToken string
	Messages   []TextMessage
}

// NewTextReply builds a reply holding one text message per entry of texts.
func NewTextReply(replyToken string, texts ...string) OutboundReply {
	msgs := make([]TextMessage, 0, len(texts))
	for _, t := range texts {
		msgs = append(msgs, TextMessage{Text: t})
	}
	return OutboundReply{ReplyToken: replyToken, Messages: msgs}
}
