//go:generate go run go.uber.org/mock/mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks

package rendezvous

import (
	"context"
	"time"
)

// Sink delivers a text announcement to a channel. Failures are the implementation's concern.
type Sink interface {
	Deliver(channelID, text string)
}

// Reason tells why a session was dispatched.
type Reason string

const (
	ReasonDeadline Reason = "deadline"
	ReasonTrigger  Reason = "trigger"
)

// Dispatch describes one session that went through its countdown.
type Dispatch struct {
	ID           string
	ChannelID    string
	Originator   string
	Participants []string
	Regulars     []string
	Roster       []string
	Reason       Reason
	CallToAction string
	Completed    bool
	OpenedAt     time.Time
	DispatchedAt time.Time
}

// DispatchListener is notified once a countdown broadcast has finished.
type DispatchListener interface {
	OnDispatch(ctx context.Context, d Dispatch)
}
