package repository

import (
	"context"
	"slices"
	"sync"
	"time"
)

// DefaultMemoryCapacity bounds how many records a channel keeps in memory.
const DefaultMemoryCapacity = 100

// MemoryRepository keeps the most recent dispatches of each channel in process memory.
type MemoryRepository struct {
	mu       sync.Mutex
	capacity int
	channels map[string][]DispatchRecord
	now      func() time.Time
}

func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryRepository{
		capacity: capacity,
		channels: make(map[string][]DispatchRecord),
		now:      time.Now,
	}
}

func (r *MemoryRepository) InsertDispatch(ctx context.Context, input InsertDispatchInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec := DispatchRecord{
		ID:           input.ID,
		ChannelID:    input.ChannelID,
		Originator:   input.Originator,
		Participants: slices.Clone(input.Participants),
		Roster:       slices.Clone(input.Roster),
		Reason:       input.Reason,
		CallToAction: input.CallToAction,
		Completed:    input.Completed,
		OpenedAt:     input.OpenedAt,
		DispatchedAt: input.DispatchedAt,
		CreatedAt:    r.now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	list := append(r.channels[input.ChannelID], rec)
	if over := len(list) - r.capacity; over > 0 {
		list = slices.Clone(list[over:])
	}
	r.channels[input.ChannelID] = list
	return nil
}

func (r *MemoryRepository) ListRecentDispatchesByChannel(ctx context.Context, channelID string, limit int) ([]DispatchRecord, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.channels[channelID]
	n := min(limit, len(list))
	out := make([]DispatchRecord, 0, n)
	for i := len(list) - 1; i >= len(list)-n; i-- {
		out = append(out, list[i])
	}
	return out, nil
}
