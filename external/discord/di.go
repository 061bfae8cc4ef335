package discord

import (
	"github.com/foxseedlab/syncbot/internal/config"
	discordpkg "github.com/foxseedlab/syncbot/internal/discord"
	"github.com/foxseedlab/syncbot/internal/rendezvous"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (discordpkg.Client, error) {
		c := do.MustInvoke[*config.Config](i)
		return NewClient(c.DiscordToken), nil
	})
	do.Provide(injector, func(i do.Injector) (rendezvous.Sink, error) {
		return NewMessageSink(do.MustInvoke[discordpkg.Client](i)), nil
	})
}
