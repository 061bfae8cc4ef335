package rendezvous

import "sync"

// channelState is everything the coordinator knows about one channel. mu guards both fields.
type channelState struct {
	mu       sync.Mutex
	session  *session
	regulars regularsSet
}

// isMember reports whether nick is a participant of the open session or a regular. Caller holds mu.
func (cs *channelState) isMember(nick string) bool {
	if cs.regulars.contains(nick) {
		return true
	}
	return cs.session != nil && cs.session.hasParticipant(nick)
}

// store maps channel ids to their state. Its own lock only protects the map, never a channel.
type store struct {
	mu       sync.Mutex
	channels map[string]*channelState
}

func newStore() *store {
	return &store{channels: make(map[string]*channelState)}
}

func (s *store) channel(channelID string) *channelState {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.channels[channelID]
	if !ok {
		cs = &channelState{}
		s.channels[channelID] = cs
	}
	return cs
}

func (s *store) lookup(channelID string) (*channelState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cs, ok := s.channels[channelID]
	return cs, ok
}

func (s *store) all() []*channelState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*channelState, 0, len(s.channels))
	for _, cs := range s.channels {
		out = append(out, cs)
	}
	return out
}
