package repository

import (
	"context"
	"errors"
	"time"
)

// DefaultHistoryLimit is how many dispatches the history command lists.
const DefaultHistoryLimit = 5

var ErrInvalidLimit = errors.New("limit must be positive")

type InsertDispatchInput struct {
	ID           string
	ChannelID    string
	Originator   string
	Participants []string
	Roster       []string
	Reason       string
	CallToAction string
	Completed    bool
	OpenedAt     time.Time
	DispatchedAt time.Time
}

type DispatchRepository interface {
	InsertDispatch(ctx context.Context, input InsertDispatchInput) error
	// ListRecentDispatchesByChannel returns at most limit records, newest first.
	ListRecentDispatchesByChannel(ctx context.Context, channelID string, limit int) ([]DispatchRecord, error)
}

type Repository interface {
	DispatchRepository
}
