package config

import (
	"testing"
	"time"

	"github.com/foxseedlab/syncbot/internal/rendezvous"
)

func validConfig() *Config {
	return &Config{
		Env:               "development",
		DiscordToken:      "token",
		BotName:           "ladybot",
		SyncDeadline:      5 * time.Minute,
		SyncNotifyDelay:   500 * time.Millisecond,
		SyncAnnounceLead:  5 * time.Second,
		SyncCountInterval: 1500 * time.Millisecond,
		SyncTriggerPolicy: "members",
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_MissingRequired(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when required fields are missing")
	}
}

func TestValidate_Invalid(t *testing.T) {
	cases := map[string]func(*Config){
		"bot name with space":     func(c *Config) { c.BotName = "lady bot" },
		"zero deadline":           func(c *Config) { c.SyncDeadline = 0 },
		"zero count interval":     func(c *Config) { c.SyncCountInterval = 0 },
		"negative trigger delay":  func(c *Config) { c.SyncTriggerDelay = -time.Second },
		"notify after deadline":   func(c *Config) { c.SyncNotifyDelay = 10 * time.Minute },
		"unknown trigger policy":  func(c *Config) { c.SyncTriggerPolicy = "everyone" },
		"missing discord token":   func(c *Config) { c.DiscordToken = "" },
		"deadline equals notify":  func(c *Config) { c.SyncDeadline = c.SyncNotifyDelay },
		"zero announce lead time": func(c *Config) { c.SyncAnnounceLead = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := validConfig()
			mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestValidate_ZeroTriggerDelayAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.SyncTriggerDelay = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestSyncSettings(t *testing.T) {
	cfg := validConfig()
	cfg.SyncTriggerPolicy = "anyone"
	s, err := cfg.SyncSettings()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.TriggerPolicy != rendezvous.TriggerPolicyAnyone {
		t.Fatalf("unexpected policy: %v", s.TriggerPolicy)
	}
	if s.Deadline != 5*time.Minute || s.BotName != "ladybot" || s.CountInterval != 1500*time.Millisecond {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestIsDevelopment(t *testing.T) {
	cfg := &Config{Env: "development"}
	if !cfg.IsDevelopment() {
		t.Fatal("expected development mode")
	}
	cfg.Env = "production"
	if cfg.IsDevelopment() {
		t.Fatal("expected non-development mode")
	}
}

func TestMetricsEnabled(t *testing.T) {
	cfg := &Config{}
	if cfg.MetricsEnabled() {
		t.Fatal("expected metrics disabled without address")
	}
	cfg.MetricsAddr = ":9090"
	if !cfg.MetricsEnabled() {
		t.Fatal("expected metrics enabled")
	}
}
