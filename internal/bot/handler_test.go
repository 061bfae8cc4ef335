package bot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/foxseedlab/syncbot/internal/discord"
	"github.com/foxseedlab/syncbot/internal/rendezvous"
	"github.com/foxseedlab/syncbot/internal/repository"
	"github.com/foxseedlab/syncbot/internal/timer/timertest"
	"github.com/foxseedlab/syncbot/internal/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coordinatorCall struct {
	method    string
	channelID string
	nick      string
}

type fakeCoordinator struct {
	calls []coordinatorCall
	reply string
}

func (f *fakeCoordinator) record(method, channelID, nick string) string {
	f.calls = append(f.calls, coordinatorCall{method: method, channelID: channelID, nick: nick})
	return f.reply
}

func (f *fakeCoordinator) RequestStart(channelID, nick string) string {
	return f.record("start", channelID, nick)
}

func (f *fakeCoordinator) RequestJoin(channelID, nick string) string {
	return f.record("join", channelID, nick)
}

func (f *fakeCoordinator) RequestTrigger(channelID, nick string) {
	f.record("trigger", channelID, nick)
}

func (f *fakeCoordinator) AddRegular(channelID, nick string) string {
	return f.record("add", channelID, nick)
}

func (f *fakeCoordinator) RemoveRegular(channelID, nick string) string {
	return f.record("remove", channelID, nick)
}

type replies struct {
	mu   sync.Mutex
	list []string
}

func (r *replies) event(content string) discord.MessageEvent {
	return discord.MessageEvent{
		GuildID:    "guild-1",
		ChannelID:  "ch-1",
		AuthorID:   "user-1",
		AuthorName: "scrooge",
		Content:    content,
		Reply: func(text string) error {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.list = append(r.list, text)
			return nil
		},
	}
}

func (r *replies) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.list...)
}

func defaultHandlerConfig() HandlerConfig {
	return HandlerConfig{BotName: "ladybot", Version: "v1.0.0"}
}

func TestHandleMessage_RoutesActions(t *testing.T) {
	fc := &fakeCoordinator{reply: "ok"}
	h := NewHandler(defaultHandlerConfig(), fc, repository.NewMemoryRepository(0))
	r := &replies{}

	for _, text := range []string{"sync", "rdy", "go", "ladybot: sync add me", "ladybot: sync remove me", "hello there"} {
		h.HandleMessage(r.event(text))
	}

	require.Len(t, fc.calls, 5)
	assert.Equal(t, []string{"start", "join", "trigger", "add", "remove"}, []string{
		fc.calls[0].method, fc.calls[1].method, fc.calls[2].method, fc.calls[3].method, fc.calls[4].method,
	})
	assert.Equal(t, coordinatorCall{method: "start", channelID: "ch-1", nick: "scrooge"}, fc.calls[0])
	assert.Len(t, r.all(), 4, "trigger never replies")
}

func TestHandleMessage_MentionNick(t *testing.T) {
	fc := &fakeCoordinator{}
	cfg := defaultHandlerConfig()
	cfg.MentionParticipants = true
	h := NewHandler(cfg, fc, repository.NewMemoryRepository(0))

	h.HandleMessage((&replies{}).event("sync"))

	require.Len(t, fc.calls, 1)
	assert.Equal(t, "<@user-1>", fc.calls[0].nick)
}

func TestHandleMessage_IgnoresBotsAndOtherGuilds(t *testing.T) {
	fc := &fakeCoordinator{}
	cfg := defaultHandlerConfig()
	cfg.GuildID = "guild-1"
	h := NewHandler(cfg, fc, repository.NewMemoryRepository(0))
	r := &replies{}

	ev := r.event("sync")
	ev.AuthorIsBot = true
	h.HandleMessage(ev)

	ev = r.event("sync")
	ev.GuildID = "guild-2"
	h.HandleMessage(ev)

	assert.Empty(t, fc.calls)
	assert.Empty(t, r.all())
}

func TestHandleMessage_MentionAddressing(t *testing.T) {
	fc := &fakeCoordinator{}
	h := NewHandler(defaultHandlerConfig(), fc, repository.NewMemoryRepository(0))

	h.HandleMessage((&replies{}).event("<@bot-1> add me"))
	assert.Empty(t, fc.calls, "mention is unknown before the bot id is set")

	h.SetBotUserID("bot-1")
	h.HandleMessage((&replies{}).event("<@bot-1> add me"))
	require.Len(t, fc.calls, 1)
	assert.Equal(t, "add", fc.calls[0].method)
}

func TestHandleMessage_Version(t *testing.T) {
	h := NewHandler(defaultHandlerConfig(), &fakeCoordinator{}, repository.NewMemoryRepository(0))
	r := &replies{}

	h.HandleMessage(r.event("ladybot: version"))

	assert.Equal(t, []string{"ladybot version v1.0.0"}, r.all())
}

func TestHandleMessage_EmptyReplyIsNotSent(t *testing.T) {
	h := NewHandler(defaultHandlerConfig(), &fakeCoordinator{reply: ""}, repository.NewMemoryRepository(0))
	r := &replies{}

	h.HandleMessage(r.event("sync"))

	assert.Empty(t, r.all())
}

func TestHandleMessage_ReplyFailureIsSwallowed(t *testing.T) {
	h := NewHandler(defaultHandlerConfig(), &fakeCoordinator{reply: "ok"}, repository.NewMemoryRepository(0))
	ev := (&replies{}).event("sync")
	ev.Reply = func(string) error { return errors.New("missing permissions") }

	assert.NotPanics(t, func() { h.HandleMessage(ev) })
}

type failingHistory struct{}

func (failingHistory) InsertDispatch(context.Context, repository.InsertDispatchInput) error {
	return errors.New("db down")
}

func (failingHistory) ListRecentDispatchesByChannel(context.Context, string, int) ([]repository.DispatchRecord, error) {
	return nil, errors.New("db down")
}

func TestHandleMessage_HistoryUnavailable(t *testing.T) {
	h := NewHandler(defaultHandlerConfig(), &fakeCoordinator{}, failingHistory{})
	r := &replies{}

	h.HandleMessage(r.event("ladybot: sync history"))

	assert.Equal(t, []string{historyUnavailableReply}, r.all())
}

type recordingSink struct {
	mu    sync.Mutex
	lines []string
}

func (s *recordingSink) Deliver(_, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, text)
}

type recordingSender struct {
	mu       sync.Mutex
	payloads []webhook.DispatchPayload
}

func (s *recordingSender) SendDispatch(_ context.Context, p webhook.DispatchPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payloads = append(s.payloads, p)
	return nil
}

func TestHandler_EndToEndWithHistory(t *testing.T) {
	repo := repository.NewMemoryRepository(0)
	sender := &recordingSender{}
	sched := timertest.New()
	settings := rendezvous.DefaultSettings()
	settings.AnnounceLead = 0
	settings.CountInterval = 0
	coordinator := rendezvous.New(&recordingSink{}, sched, settings,
		rendezvous.WithDispatchListeners(NewHistoryRecorder(repo), NewWebhookNotifier(sender)),
	)
	t.Cleanup(coordinator.Close)

	h := NewHandler(defaultHandlerConfig(), coordinator, repo)
	r := &replies{}

	h.HandleMessage(r.event("ladybot: sync history"))
	h.HandleMessage(r.event("sync"))
	donald := r.event("ready")
	donald.AuthorName = "donald"
	h.HandleMessage(donald)
	h.HandleMessage(r.event("go"))
	sched.FireUpTo(0)
	h.HandleMessage(r.event("ladybot: sync history"))

	got := r.all()
	require.Len(t, got, 4)
	assert.Equal(t, noHistoryReply, got[0])
	assert.Contains(t, got[1], "scrooge has started a sync!")
	assert.Contains(t, got[2], "donald, you've been added to the sync!")
	assert.True(t, strings.HasPrefix(got[3], "Recent syncs in this channel:"))
	assert.Contains(t, got[3], "scrooge, donald (trigger)")

	require.Len(t, sender.payloads, 1)
	assert.Equal(t, "trigger", sender.payloads[0].Reason)
	assert.Equal(t, []string{"scrooge", "donald"}, sender.payloads[0].Roster)
	assert.True(t, sender.payloads[0].Completed)
}

func TestHistoryReply(t *testing.T) {
	at := time.Date(2024, 5, 4, 18, 30, 0, 0, time.UTC)
	got := historyReply([]repository.DispatchRecord{
		{Roster: []string{"huey", "dewey"}, Reason: "deadline", Completed: true, DispatchedAt: at},
		{Roster: []string{"louie"}, Reason: "trigger", DispatchedAt: at.Add(-time.Hour)},
	})
	assert.Equal(t, "Recent syncs in this channel:\n- May 4 18:30 UTC: huey, dewey (deadline)\n- May 4 17:30 UTC: louie (trigger, interrupted)", got)
}
