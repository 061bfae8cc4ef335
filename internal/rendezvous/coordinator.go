package rendezvous

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/foxseedlab/syncbot/internal/telemetry"
	"github.com/foxseedlab/syncbot/internal/timer"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	DefaultDeadline      = 5 * time.Minute
	DefaultNotifyDelay   = 500 * time.Millisecond
	DefaultTriggerDelay  = 0
	DefaultAnnounceLead  = 5 * time.Second
	DefaultCountInterval = 1500 * time.Millisecond
	DefaultBotName       = "ladybot"
)

// Settings are the tunable delays and policies of a Coordinator.
type Settings struct {
	BotName       string
	Deadline      time.Duration
	NotifyDelay   time.Duration
	TriggerDelay  time.Duration
	AnnounceLead  time.Duration
	CountInterval time.Duration
	TriggerPolicy TriggerPolicy
}

func DefaultSettings() Settings {
	return Settings{
		BotName:       DefaultBotName,
		Deadline:      DefaultDeadline,
		NotifyDelay:   DefaultNotifyDelay,
		TriggerDelay:  DefaultTriggerDelay,
		AnnounceLead:  DefaultAnnounceLead,
		CountInterval: DefaultCountInterval,
		TriggerPolicy: TriggerPolicyMembers,
	}
}

// Coordinator owns every channel's session and regulars for the life of the process.
type Coordinator struct {
	settings  Settings
	sink      Sink
	scheduler timer.Scheduler
	store     *store

	metrics   *telemetry.SyncMetrics
	listeners []DispatchListener
	pick      func(pool []string) string
	now       func() time.Time
	sleep     func(ctx context.Context, d time.Duration) bool

	ctx    context.Context
	cancel context.CancelFunc
	closed atomic.Bool
}

// Option is a function that configures the coordinator
type Option func(*Coordinator)

// WithMetrics sets the sync metrics for the coordinator
func WithMetrics(metrics *telemetry.SyncMetrics) Option {
	return func(c *Coordinator) {
		c.metrics = metrics
	}
}

// WithDispatchListeners registers listeners notified after every countdown.
func WithDispatchListeners(listeners ...DispatchListener) Option {
	return func(c *Coordinator) {
		c.listeners = append(c.listeners, listeners...)
	}
}

// WithCallToActionPicker replaces the uniform random choice of the final countdown line.
func WithCallToActionPicker(pick func(pool []string) string) Option {
	return func(c *Coordinator) {
		c.pick = pick
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

func New(sink Sink, scheduler timer.Scheduler, settings Settings, opts ...Option) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Coordinator{
		settings:  settings,
		sink:      sink,
		scheduler: scheduler,
		store:     newStore(),
		pick:      lo.Sample[string],
		now:       time.Now,
		sleep:     sleepContext,
		ctx:       ctx,
		cancel:    cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestStart opens a session, or triggers the open one when nick already belongs to it.
// An empty reply means nothing should be said.
func (c *Coordinator) RequestStart(channelID, nick string) string {
	if c.closed.Load() {
		return ""
	}
	cs := c.store.channel(channelID)
	cs.mu.Lock()
	defer cs.mu.Unlock()

	switch {
	case cs.session == nil:
		c.openSession(cs, channelID, nick)
		return startedReply(nick, c.settings.Deadline)
	case cs.isMember(nick):
		c.scheduleTrigger(cs, channelID, nick)
		return ""
	default:
		return alreadyRunningReply(nick)
	}
}

// RequestJoin adds nick to the open session. It never opens a session itself.
func (c *Coordinator) RequestJoin(channelID, nick string) string {
	if c.closed.Load() {
		return ""
	}
	cs := c.store.channel(channelID)
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.session == nil {
		return noSessionReply(nick, c.settings.BotName)
	}
	if cs.isMember(nick) {
		return alreadyJoinedReply(nick)
	}
	cs.session.addParticipant(nick)
	c.metrics.RecordParticipantJoined(c.ctx)
	slog.Debug("participant joined sync", "channel_id", channelID, "nick", nick, "session_id", cs.session.id, "participants", len(cs.session.participants))
	return joinedReply(nick)
}

// RequestTrigger dispatches the open session early. It is a no-op without a session, and,
// under TriggerPolicyMembers, when nick is neither a participant nor a regular.
func (c *Coordinator) RequestTrigger(channelID, nick string) {
	if c.closed.Load() {
		return
	}
	cs, ok := c.store.lookup(channelID)
	if !ok {
		c.metrics.RecordTrigger(c.ctx, telemetry.TriggerOutcomeNoSession)
		return
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.session == nil {
		c.metrics.RecordTrigger(c.ctx, telemetry.TriggerOutcomeNoSession)
		return
	}
	if c.settings.TriggerPolicy == TriggerPolicyMembers && !cs.isMember(nick) {
		c.metrics.RecordTrigger(c.ctx, telemetry.TriggerOutcomeIgnored)
		slog.Debug("ignoring trigger from non-member", "channel_id", channelID, "nick", nick, "policy", c.settings.TriggerPolicy.String())
		return
	}
	c.scheduleTrigger(cs, channelID, nick)
}

func (c *Coordinator) AddRegular(channelID, nick string) string {
	cs := c.store.channel(channelID)
	cs.mu.Lock()
	already := cs.regulars.add(nick)
	cs.mu.Unlock()

	if already {
		return regularAlreadyReply(nick, c.settings.BotName)
	}
	slog.Info("regular added", "channel_id", channelID, "nick", nick)
	return regularAddedReply(nick, c.settings.BotName)
}

func (c *Coordinator) RemoveRegular(channelID, nick string) string {
	cs := c.store.channel(channelID)
	cs.mu.Lock()
	removed := cs.regulars.remove(nick)
	cs.mu.Unlock()

	if !removed {
		return notRegularReply(nick, c.settings.BotName)
	}
	slog.Info("regular removed", "channel_id", channelID, "nick", nick)
	return regularRemovedReply(nick)
}

// Notify tells the channel's regulars, except excluding, that a session started.
// Nothing is delivered when no regular is left after the exclusion.
func (c *Coordinator) Notify(channelID, excluding string) {
	c.notify(channelID, "", excluding)
}

// notify delivers only while sessionID is still the channel's session. An empty sessionID skips the check.
func (c *Coordinator) notify(channelID, sessionID, excluding string) {
	cs, ok := c.store.lookup(channelID)
	if !ok {
		return
	}
	cs.mu.Lock()
	if sessionID != "" && (cs.session == nil || cs.session.id != sessionID) {
		cs.mu.Unlock()
		return
	}
	recipients := notifyRecipients(cs.regulars.nicks, excluding)
	cs.mu.Unlock()

	if len(recipients) == 0 {
		return
	}
	c.sink.Deliver(channelID, regularsNotice(recipients))
}

// Snapshot returns a copy of the channel's session, if one exists.
func (c *Coordinator) Snapshot(channelID string) (Snapshot, bool) {
	cs, ok := c.store.lookup(channelID)
	if !ok {
		return Snapshot{}, false
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.session == nil {
		return Snapshot{}, false
	}
	return cs.session.snapshot(), true
}

// Regulars returns a copy of the channel's regulars.
func (c *Coordinator) Regulars(channelID string) []string {
	cs, ok := c.store.lookup(channelID)
	if !ok {
		return nil
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.regulars.list()
}

// Close drops every open session, stops their timers and interrupts countdowns in flight.
// Afterwards session actions do nothing.
func (c *Coordinator) Close() {
	if !c.closed.CompareAndSwap(false, true) {
		return
	}
	c.cancel()
	dropped := 0
	for _, cs := range c.store.all() {
		cs.mu.Lock()
		if cs.session != nil {
			cs.session.stopTimers()
			cs.session = nil
			dropped++
		}
		cs.mu.Unlock()
	}
	slog.Info("sync coordinator closed", "dropped_sessions", dropped)
}

// openSession arms the deadline together with the session. Caller holds cs.mu.
func (c *Coordinator) openSession(cs *channelState, channelID, nick string) {
	s := &session{
		id:           uuid.NewString(),
		participants: []string{nick},
		openedAt:     c.now(),
	}
	s.timers = append(s.timers, c.scheduler.Schedule(c.settings.Deadline, func() {
		c.countdown(channelID, s.id, ReasonDeadline)
	}))
	if !cs.regulars.empty() {
		s.timers = append(s.timers, c.scheduler.Schedule(c.settings.NotifyDelay, func() {
			defer c.recoverCallback("notify", channelID)
			c.notify(channelID, s.id, nick)
		}))
	}
	cs.session = s
	c.metrics.RecordSessionOpened(c.ctx)
	slog.Info("sync session opened", "channel_id", channelID, "nick", nick, "session_id", s.id, "deadline", c.settings.Deadline)
}

// scheduleTrigger arms a near-immediate countdown. Caller holds cs.mu and cs.session is set.
func (c *Coordinator) scheduleTrigger(cs *channelState, channelID, nick string) {
	sessionID := cs.session.id
	h := c.scheduler.Schedule(c.settings.TriggerDelay, func() {
		c.countdown(channelID, sessionID, ReasonTrigger)
	})
	cs.session.timers = append(cs.session.timers, h)
	c.metrics.RecordTrigger(c.ctx, telemetry.TriggerOutcomeScheduled)
	slog.Debug("sync trigger scheduled", "channel_id", channelID, "nick", nick, "session_id", cs.session.id, "timers", len(cs.session.timers))
}

func (c *Coordinator) recoverCallback(name, channelID string) {
	if r := recover(); r != nil {
		slog.Error("timer callback panicked", "callback", name, "channel_id", channelID, "panic", r)
	}
}

func sleepContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
