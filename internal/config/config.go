package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/foxseedlab/syncbot/internal/rendezvous"
)

type Config struct {
	Env                     string
	Version                 string
	DiscordToken            string
	DiscordGuildID          string
	BotName                 string
	SyncDeadline            time.Duration
	SyncNotifyDelay         time.Duration
	SyncTriggerDelay        time.Duration
	SyncAnnounceLead        time.Duration
	SyncCountInterval       time.Duration
	SyncTriggerPolicy       string
	SyncMentionParticipants bool
	DatabaseURL             string
	WebhookURL              string
	MetricsAddr             string
}

func (c *Config) Validate() error {
	for _, req := range c.requiredFieldChecks() {
		if req.value == "" {
			return fmt.Errorf("%s is required", req.name)
		}
	}
	if strings.ContainsAny(c.BotName, " \t\r\n") {
		return fmt.Errorf("BOT_NAME must not contain whitespace, got %q", c.BotName)
	}
	for _, d := range c.positiveDurationChecks() {
		if d.value <= 0 {
			return fmt.Errorf("%s must be positive, got %s", d.name, d.value)
		}
	}
	if c.SyncTriggerDelay < 0 {
		return fmt.Errorf("SYNC_TRIGGER_DELAY must not be negative, got %s", c.SyncTriggerDelay)
	}
	if c.SyncDeadline <= c.SyncNotifyDelay {
		return fmt.Errorf("SYNC_DEADLINE (%s) must be longer than SYNC_NOTIFY_DELAY (%s)", c.SyncDeadline, c.SyncNotifyDelay)
	}
	if _, err := rendezvous.ParseTriggerPolicy(c.SyncTriggerPolicy); err != nil {
		return fmt.Errorf("SYNC_TRIGGER_POLICY is invalid: %w", err)
	}
	return nil
}

// SyncSettings converts the validated configuration into coordinator settings.
func (c *Config) SyncSettings() (rendezvous.Settings, error) {
	policy, err := rendezvous.ParseTriggerPolicy(c.SyncTriggerPolicy)
	if err != nil {
		return rendezvous.Settings{}, err
	}
	return rendezvous.Settings{
		BotName:       c.BotName,
		Deadline:      c.SyncDeadline,
		NotifyDelay:   c.SyncNotifyDelay,
		TriggerDelay:  c.SyncTriggerDelay,
		AnnounceLead:  c.SyncAnnounceLead,
		CountInterval: c.SyncCountInterval,
		TriggerPolicy: policy,
	}, nil
}

type requiredEnvField struct {
	name  string
	value string
}

func (c *Config) requiredFieldChecks() []requiredEnvField {
	return []requiredEnvField{
		{name: "DISCORD_TOKEN", value: c.DiscordToken},
		{name: "BOT_NAME", value: c.BotName},
	}
}

type durationEnvField struct {
	name  string
	value time.Duration
}

func (c *Config) positiveDurationChecks() []durationEnvField {
	return []durationEnvField{
		{name: "SYNC_DEADLINE", value: c.SyncDeadline},
		{name: "SYNC_NOTIFY_DELAY", value: c.SyncNotifyDelay},
		{name: "SYNC_ANNOUNCE_LEAD", value: c.SyncAnnounceLead},
		{name: "SYNC_COUNT_INTERVAL", value: c.SyncCountInterval},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) MetricsEnabled() bool {
	return c.MetricsAddr != ""
}
