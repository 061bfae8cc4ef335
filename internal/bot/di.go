package bot

import (
	"github.com/foxseedlab/syncbot/internal/config"
	"github.com/foxseedlab/syncbot/internal/rendezvous"
	"github.com/foxseedlab/syncbot/internal/repository"
	"github.com/foxseedlab/syncbot/internal/telemetry"
	"github.com/foxseedlab/syncbot/internal/timer"
	"github.com/foxseedlab/syncbot/internal/webhook"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*rendezvous.Coordinator, error) {
		cfg := do.MustInvoke[*config.Config](i)
		settings, err := cfg.SyncSettings()
		if err != nil {
			return nil, err
		}
		sink := do.MustInvoke[rendezvous.Sink](i)
		repo := do.MustInvoke[repository.Repository](i)
		wh := do.MustInvoke[webhook.Sender](i)
		metrics := do.MustInvoke[*telemetry.SyncMetrics](i)
		return rendezvous.New(sink, timer.NewScheduler(), settings,
			rendezvous.WithMetrics(metrics),
			rendezvous.WithDispatchListeners(NewHistoryRecorder(repo), NewWebhookNotifier(wh)),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		coordinator := do.MustInvoke[*rendezvous.Coordinator](i)
		repo := do.MustInvoke[repository.Repository](i)
		return NewHandler(HandlerConfig{
			GuildID:             cfg.DiscordGuildID,
			BotName:             cfg.BotName,
			Version:             cfg.Version,
			MentionParticipants: cfg.SyncMentionParticipants,
		}, coordinator, repo), nil
	})
}
