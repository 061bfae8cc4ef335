// Package telemetry provides OpenTelemetry instruments for sync sessions.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SyncMetricsMeterName is the name used for the sync session meter
const SyncMetricsMeterName = "github.com/foxseedlab/syncbot/rendezvous"

const (
	TriggerOutcomeScheduled = "scheduled"
	TriggerOutcomeIgnored   = "ignored"
	TriggerOutcomeNoSession = "no_session"
)

// SyncMetrics holds the instruments recorded by the coordinator.
// A nil *SyncMetrics is valid and records nothing.
type SyncMetrics struct {
	sessionsOpened     metric.Int64Counter
	sessionsDispatched metric.Int64Counter
	participantsJoined metric.Int64Counter
	triggers           metric.Int64Counter
	rosterSize         metric.Int64Histogram
}

// NewSyncMetrics creates the sync instruments. If provider is nil, it returns nil (no-op metrics).
func NewSyncMetrics(provider metric.MeterProvider) (*SyncMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(SyncMetricsMeterName)

	sessionsOpened, err := meter.Int64Counter(
		"syncbot_sessions_opened_total",
		metric.WithDescription("Number of sync sessions opened"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, err
	}
	sessionsDispatched, err := meter.Int64Counter(
		"syncbot_sessions_dispatched_total",
		metric.WithDescription("Number of sync sessions dispatched, by reason"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, err
	}
	participantsJoined, err := meter.Int64Counter(
		"syncbot_participants_joined_total",
		metric.WithDescription("Number of nicks that joined an open session"),
		metric.WithUnit("{participant}"),
	)
	if err != nil {
		return nil, err
	}
	triggers, err := meter.Int64Counter(
		"syncbot_triggers_total",
		metric.WithDescription("Number of early trigger requests, by outcome"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}
	rosterSize, err := meter.Int64Histogram(
		"syncbot_roster_size",
		metric.WithDescription("Number of nicks addressed by a countdown"),
		metric.WithUnit("{nick}"),
		metric.WithExplicitBucketBoundaries(1, 2, 3, 5, 8, 13, 21),
	)
	if err != nil {
		return nil, err
	}

	return &SyncMetrics{
		sessionsOpened:     sessionsOpened,
		sessionsDispatched: sessionsDispatched,
		participantsJoined: participantsJoined,
		triggers:           triggers,
		rosterSize:         rosterSize,
	}, nil
}

func (m *SyncMetrics) RecordSessionOpened(ctx context.Context) {
	if m == nil || m.sessionsOpened == nil {
		return
	}
	m.sessionsOpened.Add(ctx, 1)
}

func (m *SyncMetrics) RecordParticipantJoined(ctx context.Context) {
	if m == nil || m.participantsJoined == nil {
		return
	}
	m.participantsJoined.Add(ctx, 1)
}

func (m *SyncMetrics) RecordTrigger(ctx context.Context, outcome string) {
	if m == nil || m.triggers == nil {
		return
	}
	m.triggers.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordDispatch records a dispatched session and the size of its roster
func (m *SyncMetrics) RecordDispatch(ctx context.Context, reason string, rosterSize int) {
	if m == nil || m.sessionsDispatched == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("reason", reason))
	m.sessionsDispatched.Add(ctx, 1, attrs)
	m.rosterSize.Record(ctx, int64(rosterSize), attrs)
}
