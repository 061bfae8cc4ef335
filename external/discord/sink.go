package discord

import "log/slog"

type channelMessageSender interface {
	SendChannelMessage(channelID, content string) error
}

// MessageSink posts countdown lines to a channel. Failures are logged and dropped.
type MessageSink struct {
	client channelMessageSender
}

func NewMessageSink(client channelMessageSender) *MessageSink {
	return &MessageSink{client: client}
}

func (s *MessageSink) Deliver(channelID, text string) {
	if err := s.client.SendChannelMessage(channelID, text); err != nil {
		slog.Warn("failed to deliver sync message", "channel_id", channelID, "error", err)
	}
}
