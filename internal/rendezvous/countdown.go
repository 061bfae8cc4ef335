package rendezvous

import (
	"context"
	"log/slog"
	"slices"
	"time"
)

const listenerTimeout = 10 * time.Second

// Countdown dispatches the channel's current session the way its deadline does.
// It returns immediately when the channel has no session.
func (c *Coordinator) Countdown(channelID string) {
	c.countdown(channelID, "", ReasonDeadline)
}

// countdown dispatches sessionID only. A callback that outlived its session finds another
// session, or none, and does nothing. An empty sessionID matches any session.
func (c *Coordinator) countdown(channelID, sessionID string, reason Reason) {
	defer c.recoverCallback("countdown", channelID)

	d, ok := c.takeSession(channelID, sessionID, reason)
	if !ok {
		slog.Debug("countdown found no session", "channel_id", channelID, "session_id", sessionID, "reason", reason)
		return
	}
	slog.Info("sync dispatched", "channel_id", channelID, "session_id", d.ID, "reason", reason, "roster_size", len(d.Roster))
	c.metrics.RecordDispatch(c.ctx, string(reason), len(d.Roster))

	d.Completed = c.broadcast(&d)
	c.notifyListeners(d)
}

// takeSession removes the channel's session and stops its timers, returning what the broadcast needs.
func (c *Coordinator) takeSession(channelID, sessionID string, reason Reason) (Dispatch, bool) {
	if c.closed.Load() {
		return Dispatch{}, false
	}
	cs, ok := c.store.lookup(channelID)
	if !ok {
		return Dispatch{}, false
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()

	s := cs.session
	if s == nil || (sessionID != "" && s.id != sessionID) {
		return Dispatch{}, false
	}
	cs.session = nil
	s.stopTimers()

	regulars := cs.regulars.list()
	return Dispatch{
		ID:           s.id,
		ChannelID:    channelID,
		Originator:   s.participants[0],
		Participants: slices.Clone(s.participants),
		Regulars:     regulars,
		Roster:       roster(s.participants, regulars),
		Reason:       reason,
		OpenedAt:     s.openedAt,
		DispatchedAt: c.now(),
	}, true
}

// broadcast runs without any channel lock. It reports false when Close interrupted it.
func (c *Coordinator) broadcast(d *Dispatch) bool {
	c.sink.Deliver(d.ChannelID, rosterAnnouncement(d.Roster, c.settings.AnnounceLead))
	if !c.sleep(c.ctx, c.settings.AnnounceLead) {
		return false
	}
	for _, n := range countdownNumbers {
		c.sink.Deliver(d.ChannelID, n)
		if !c.sleep(c.ctx, c.settings.CountInterval) {
			return false
		}
	}
	d.CallToAction = c.pick(CallsToAction)
	c.sink.Deliver(d.ChannelID, d.CallToAction)
	return true
}

func (c *Coordinator) notifyListeners(d Dispatch) {
	if len(c.listeners) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), listenerTimeout)
	defer cancel()
	for _, l := range c.listeners {
		l.OnDispatch(ctx, d)
	}
}
