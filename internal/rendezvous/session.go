package rendezvous

import (
	"slices"
	"time"

	"github.com/foxseedlab/syncbot/internal/timer"
	"github.com/samber/lo"
)

// Phase of a session. A dispatching session has already left the store, so Snapshot only
// ever reports PhaseOpen; PhaseDispatching names the countdown that follows.
type Phase int

const (
	PhaseOpen Phase = iota
	PhaseDispatching
)

func (p Phase) String() string {
	if p == PhaseDispatching {
		return "dispatching"
	}
	return "open"
}

type session struct {
	id           string
	participants []string
	timers       []timer.Handle
	openedAt     time.Time
}

func (s *session) hasParticipant(nick string) bool {
	return lo.Contains(s.participants, nick)
}

// addParticipant appends nick unless already present and reports whether it was appended.
func (s *session) addParticipant(nick string) bool {
	if s.hasParticipant(nick) {
		return false
	}
	s.participants = append(s.participants, nick)
	return true
}

func (s *session) stopTimers() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}

// Snapshot is a copy of a channel's session taken under its lock.
type Snapshot struct {
	ID           string
	Participants []string
	Phase        Phase
	Timers       int
	OpenedAt     time.Time
}

func (s *session) snapshot() Snapshot {
	return Snapshot{
		ID:           s.id,
		Participants: slices.Clone(s.participants),
		Phase:        PhaseOpen,
		Timers:       len(s.timers),
		OpenedAt:     s.openedAt,
	}
}

// roster merges participants and regulars, participants first, each nick once.
func roster(participants, regulars []string) []string {
	merged := make([]string, 0, len(participants)+len(regulars))
	merged = append(merged, participants...)
	merged = append(merged, regulars...)
	return lo.Uniq(merged)
}
