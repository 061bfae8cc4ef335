package webhook

import (
	"context"
	"time"
)

// DispatchPayload is the JSON body posted for every finished countdown.
type DispatchPayload struct {
	Event        string    `json:"event"`
	DispatchID   string    `json:"dispatch_id"`
	ChannelID    string    `json:"channel_id"`
	Originator   string    `json:"originator"`
	Participants []string  `json:"participants"`
	Roster       []string  `json:"roster"`
	Reason       string    `json:"reason"`
	CallToAction string    `json:"call_to_action,omitempty"`
	Completed    bool      `json:"completed"`
	OpenedAt     time.Time `json:"opened_at"`
	DispatchedAt time.Time `json:"dispatched_at"`
}

const EventSyncDispatched = "sync.dispatched"

type Sender interface {
	SendDispatch(ctx context.Context, payload DispatchPayload) error
}
