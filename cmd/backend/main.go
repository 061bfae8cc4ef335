package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	configloader "github.com/foxseedlab/syncbot/external/config"
	"github.com/foxseedlab/syncbot/external/discord"
	repositoryimpl "github.com/foxseedlab/syncbot/external/repository"
	telemetryimpl "github.com/foxseedlab/syncbot/external/telemetry"
	webhookimpl "github.com/foxseedlab/syncbot/external/webhook"
	"github.com/foxseedlab/syncbot/internal/bot"
	"github.com/foxseedlab/syncbot/internal/config"
	discordpkg "github.com/foxseedlab/syncbot/internal/discord"
	"github.com/foxseedlab/syncbot/internal/rendezvous"
	"github.com/samber/do/v2"
)

const (
	discordConnectTimeout = 20 * time.Second
	shutdownTimeout       = 10 * time.Second
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	slog.Info("startup: loading configuration")
	cfg := mustLoadConfig()
	initLogger(cfg)
	slog.Info("startup: configuration loaded", "env", cfg.Env, "version", cfg.Version, "trigger_policy", cfg.SyncTriggerPolicy)

	slog.Info("startup: building dependency graph")
	injector := setupDI(cfg)
	defer shutdownDI(injector)

	if cfg.MetricsEnabled() {
		startMetricsServer(cfg, injector)
	}

	slog.Info("startup: launching discord bot")
	runBot(injector)
}

func mustLoadConfig() *config.Config {
	cfg, err := configloader.Load(version)
	if err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

func initLogger(cfg *config.Config) {
	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))
}

func setupDI(cfg *config.Config) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	repositoryimpl.RegisterDI(injector)
	telemetryimpl.RegisterDI(injector)
	discord.RegisterDI(injector)
	webhookimpl.RegisterDI(injector)
	bot.RegisterDI(injector)

	return injector
}

func shutdownDI(injector do.Injector) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if report := injector.ShutdownWithContext(ctx); report != nil && !report.Succeed {
		slog.Error("dependency shutdown failed", "error", report.Error())
	}
}

func startMetricsServer(cfg *config.Config, injector do.Injector) {
	exp, err := do.Invoke[*telemetryimpl.Exporter](injector)
	if err != nil {
		slog.Error("failed to resolve metrics exporter", "error", err)
		os.Exit(1)
	}
	if err := exp.Serve(cfg.MetricsAddr); err != nil {
		slog.Error("failed to start metrics server", "error", err)
		os.Exit(1)
	}
}

func runBot(injector do.Injector) {
	dc, err := do.Invoke[discordpkg.Client](injector)
	if err != nil {
		slog.Error("failed to resolve discord client", "error", err)
		os.Exit(1)
	}
	coordinator, err := do.Invoke[*rendezvous.Coordinator](injector)
	if err != nil {
		slog.Error("failed to resolve sync coordinator", "error", err)
		os.Exit(1)
	}
	handler, err := do.Invoke[*bot.Handler](injector)
	if err != nil {
		slog.Error("failed to resolve message handler", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), discordConnectTimeout)
	defer cancel()

	slog.Info("startup: connecting to discord gateway")
	if err := dc.Connect(ctx); err != nil {
		slog.Error("discord connect failed", "error", err)
		os.Exit(1)
	}
	slog.Info("startup: discord connected")

	botUserID, err := dc.GetBotUserID()
	if err != nil {
		slog.Error("failed to resolve bot user id", "error", err)
		os.Exit(1)
	}
	handler.SetBotUserID(botUserID)

	dc.RegisterMessageHandler(handler.HandleMessage)
	slog.Info("discord handlers registered", "bot_user_id", botUserID)
	defer closeBot(coordinator, dc)

	done := make(chan struct{})
	go func() {
		slog.Info("startup: entering discord run loop")
		if err := dc.Run(); err != nil {
			slog.Error("discord run failed", "error", err)
		}
		close(done)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
		slog.Info("shutting down")
	case <-done:
	}
}

type coordinatorCloser interface {
	Close()
}

type gatewayCloser interface {
	Close() error
}

// closeBot stops countdowns before the gateway so no broadcast posts through a closed client.
func closeBot(coordinator coordinatorCloser, dc gatewayCloser) {
	coordinator.Close()
	if err := dc.Close(); err != nil {
		slog.Error("discord close failed", "error", err)
	}
}
