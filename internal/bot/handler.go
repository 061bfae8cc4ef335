package bot

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/foxseedlab/syncbot/internal/command"
	"github.com/foxseedlab/syncbot/internal/discord"
	"github.com/foxseedlab/syncbot/internal/repository"
)

const historyQueryTimeout = 5 * time.Second

type syncCoordinator interface {
	RequestStart(channelID, nick string) string
	RequestJoin(channelID, nick string) string
	RequestTrigger(channelID, nick string)
	AddRegular(channelID, nick string) string
	RemoveRegular(channelID, nick string) string
}

type HandlerConfig struct {
	GuildID             string
	BotName             string
	Version             string
	MentionParticipants bool
}

// Handler routes chat messages to the sync coordinator and answers on the same channel.
type Handler struct {
	cfg         HandlerConfig
	coordinator syncCoordinator
	history     repository.DispatchRepository
	parser      atomic.Pointer[command.Parser]
}

func NewHandler(cfg HandlerConfig, coordinator syncCoordinator, history repository.DispatchRepository) *Handler {
	h := &Handler{
		cfg:         cfg,
		coordinator: coordinator,
		history:     history,
	}
	h.parser.Store(command.NewParser(cfg.BotName, ""))
	return h
}

// SetBotUserID lets messages that mention the bot address it.
func (h *Handler) SetBotUserID(userID string) {
	h.parser.Store(command.NewParser(h.cfg.BotName, userID))
}

func (h *Handler) HandleMessage(ev discord.MessageEvent) {
	if ev.AuthorIsBot {
		return
	}
	if h.cfg.GuildID != "" && ev.GuildID != h.cfg.GuildID {
		return
	}

	cmd, err := h.parser.Load().Parse(ev.ChannelID, h.nick(ev), ev.Content)
	if err != nil {
		if !errors.Is(err, command.ErrNotACommand) {
			slog.Warn("dropping malformed command", "channel_id", ev.ChannelID, "author_id", ev.AuthorID, "error", err)
		}
		return
	}
	slog.Debug("command received", "channel_id", cmd.ChannelID, "nick", cmd.Nick, "action", cmd.Action.String())

	h.reply(ev, cmd, h.execute(cmd))
}

func (h *Handler) execute(cmd command.Command) string {
	switch cmd.Action {
	case command.ActionStart:
		return h.coordinator.RequestStart(cmd.ChannelID, cmd.Nick)
	case command.ActionJoin:
		return h.coordinator.RequestJoin(cmd.ChannelID, cmd.Nick)
	case command.ActionTrigger:
		h.coordinator.RequestTrigger(cmd.ChannelID, cmd.Nick)
		return ""
	case command.ActionAddRegular:
		return h.coordinator.AddRegular(cmd.ChannelID, cmd.Nick)
	case command.ActionRemoveRegular:
		return h.coordinator.RemoveRegular(cmd.ChannelID, cmd.Nick)
	case command.ActionVersion:
		return versionReply(h.cfg.BotName, h.cfg.Version)
	case command.ActionHistory:
		return h.historyReply(cmd.ChannelID)
	default:
		return ""
	}
}

func (h *Handler) historyReply(channelID string) string {
	ctx, cancel := context.WithTimeout(context.Background(), historyQueryTimeout)
	defer cancel()
	records, err := h.history.ListRecentDispatchesByChannel(ctx, channelID, repository.DefaultHistoryLimit)
	if err != nil {
		slog.Error("failed to list sync history", "channel_id", channelID, "error", err)
		return historyUnavailableReply
	}
	return historyReply(records)
}

func (h *Handler) nick(ev discord.MessageEvent) string {
	if h.cfg.MentionParticipants {
		return discord.Mention(ev.AuthorID)
	}
	return ev.AuthorName
}

func (h *Handler) reply(ev discord.MessageEvent, cmd command.Command, text string) {
	if text == "" || ev.Reply == nil {
		return
	}
	if err := ev.Reply(text); err != nil {
		slog.Warn("failed to reply", "channel_id", ev.ChannelID, "action", cmd.Action.String(), "error", err)
	}
}
