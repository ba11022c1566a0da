package model

// EventKind classifies an inbound webhook event for dispatch.
type EventKind int

const (
	// EventKindOther covers every event the relay does not act on
	// (follow, postback, non-text messages, ...).
	EventKindOther EventKind = iota
	// EventKindMessage is a message event carrying text content.
	EventKindMessage
)

func (k EventKind) String() string {
	switch k {
	case EventKindMessage:
		return "message"
	default:
		return "other"
	}
}

// InboundEvent is one verified event taken from a webhook batch.
type InboundEvent struct {
	ReplyToken string    // single-use token needed to answer this event
	Text       string    // message text; empty unless Kind is EventKindMessage
	Kind       EventKind // dispatch key
}
