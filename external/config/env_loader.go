package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	internalconfig "github.com/foxseedlab/syncbot/internal/config"
	"github.com/joho/godotenv"
)

type envConfig struct {
	Env                     string        `env:"ENV" envDefault:"production"`
	DiscordToken            string        `env:"DISCORD_TOKEN,required"`
	DiscordGuildID          string        `env:"DISCORD_GUILD_ID"`
	BotName                 string        `env:"BOT_NAME" envDefault:"ladybot"`
	SyncDeadline            time.Duration `env:"SYNC_DEADLINE" envDefault:"5m"`
	SyncNotifyDelay         time.Duration `env:"SYNC_NOTIFY_DELAY" envDefault:"500ms"`
	SyncTriggerDelay        time.Duration `env:"SYNC_TRIGGER_DELAY" envDefault:"0s"`
	SyncAnnounceLead        time.Duration `env:"SYNC_ANNOUNCE_LEAD" envDefault:"5s"`
	SyncCountInterval       time.Duration `env:"SYNC_COUNT_INTERVAL" envDefault:"1.5s"`
	SyncTriggerPolicy       string        `env:"SYNC_TRIGGER_POLICY" envDefault:"members"`
	SyncMentionParticipants bool          `env:"SYNC_MENTION_PARTICIPANTS" envDefault:"true"`
	DatabaseURL             string        `env:"DATABASE_URL"`
	WebhookURL              string        `env:"SYNC_WEBHOOK_URL"`
	MetricsAddr             string        `env:"METRICS_ADDR"`
}

// Load reads an optional .env file, then the process environment.
func Load(version string) (*internalconfig.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}
	return parse(env.Options{}, version)
}

func parse(opts env.Options, version string) (*internalconfig.Config, error) {
	var raw envConfig
	if err := env.ParseWithOptions(&raw, opts); err != nil {
		return nil, fmt.Errorf("environment variables are invalid or missing: %w", err)
	}

	cfg := &internalconfig.Config{
		Env:                     raw.Env,
		Version:                 version,
		DiscordToken:            raw.DiscordToken,
		DiscordGuildID:          raw.DiscordGuildID,
		BotName:                 raw.BotName,
		SyncDeadline:            raw.SyncDeadline,
		SyncNotifyDelay:         raw.SyncNotifyDelay,
		SyncTriggerDelay:        raw.SyncTriggerDelay,
		SyncAnnounceLead:        raw.SyncAnnounceLead,
		SyncCountInterval:       raw.SyncCountInterval,
		SyncTriggerPolicy:       raw.SyncTriggerPolicy,
		SyncMentionParticipants: raw.SyncMentionParticipants,
		DatabaseURL:             raw.DatabaseURL,
		WebhookURL:              raw.WebhookURL,
		MetricsAddr:             raw.MetricsAddr,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
