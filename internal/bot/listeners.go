package bot

import (
	"context"
	"log/slog"

	"github.com/foxseedlab/syncbot/internal/rendezvous"
	"github.com/foxseedlab/syncbot/internal/repository"
	"github.com/foxseedlab/syncbot/internal/webhook"
)

// HistoryRecorder stores every dispatch in the history repository.
type HistoryRecorder struct {
	repo repository.DispatchRepository
}

func NewHistoryRecorder(repo repository.DispatchRepository) *HistoryRecorder {
	return &HistoryRecorder{repo: repo}
}

func (r *HistoryRecorder) OnDispatch(ctx context.Context, d rendezvous.Dispatch) {
	err := r.repo.InsertDispatch(ctx, repository.InsertDispatchInput{
		ID:           d.ID,
		ChannelID:    d.ChannelID,
		Originator:   d.Originator,
		Participants: d.Participants,
		Roster:       d.Roster,
		Reason:       string(d.Reason),
		CallToAction: d.CallToAction,
		Completed:    d.Completed,
		OpenedAt:     d.OpenedAt,
		DispatchedAt: d.DispatchedAt,
	})
	if err != nil {
		slog.Error("failed to record sync dispatch", "channel_id", d.ChannelID, "session_id", d.ID, "error", err)
	}
}

// WebhookNotifier posts every dispatch to the configured webhook.
type WebhookNotifier struct {
	sender webhook.Sender
}

func NewWebhookNotifier(sender webhook.Sender) *WebhookNotifier {
	return &WebhookNotifier{sender: sender}
}

func (n *WebhookNotifier) OnDispatch(ctx context.Context, d rendezvous.Dispatch) {
	err := n.sender.SendDispatch(ctx, webhook.DispatchPayload{
		Event:        webhook.EventSyncDispatched,
		DispatchID:   d.ID,
		ChannelID:    d.ChannelID,
		Originator:   d.Originator,
		Participants: d.Participants,
		Roster:       d.Roster,
		Reason:       string(d.Reason),
		CallToAction: d.CallToAction,
		Completed:    d.Completed,
		OpenedAt:     d.OpenedAt,
		DispatchedAt: d.DispatchedAt,
	})
	if err != nil {
		slog.Warn("failed to send sync webhook", "channel_id", d.ChannelID, "session_id", d.ID, "error", err)
	}
}
