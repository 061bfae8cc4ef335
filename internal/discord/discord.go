package discord

import "context"

// MessageEvent is a text message posted in a guild channel the bot can read.
type MessageEvent struct {
	GuildID     string
	ChannelID   string
	MessageID   string
	AuthorID    string
	AuthorName  string
	AuthorIsBot bool
	Content     string
	Reply       func(content string) error
}

type Client interface {
	Connect(ctx context.Context) error
	Close() error
	SendChannelMessage(channelID, content string) error
	RegisterMessageHandler(handler func(MessageEvent))
	GetBotUserID() (string, error)
	Run() error
}

// Mention formats a user id the way Discord renders a ping.
func Mention(userID string) string {
	return "<@" + userID + ">"
}
