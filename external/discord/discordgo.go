package discord

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bwmarrin/discordgo"
	discordpkg "github.com/foxseedlab/syncbot/internal/discord"
)

type Client struct {
	session   *discordgo.Session
	token     string
	botUserID string

	closeOnce sync.Once
	done      chan struct{}
}

func NewClient(token string) *Client {
	return &Client{
		token: token,
		done:  make(chan struct{}),
	}
}

func (c *Client) Connect(ctx context.Context) error {
	s, err := discordgo.New("Bot " + c.token)
	if err != nil {
		return err
	}
	c.session = s
	s.Identify.Intents = discordgo.MakeIntent(discordgo.IntentGuildMessages | discordgo.IntentMessageContent)

	opened := make(chan error, 1)
	go func() { opened <- s.Open() }()
	select {
	case err := <-opened:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		_ = s.Close()
		return fmt.Errorf("discord gateway open: %w", ctx.Err())
	}

	userID, err := c.GetBotUserID()
	if err != nil {
		return err
	}
	c.botUserID = userID
	return nil
}

func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		if c.session != nil {
			err = c.session.Close()
		}
	})
	return err
}

func (c *Client) SendChannelMessage(channelID, content string) error {
	_, err := c.session.ChannelMessageSend(channelID, content)
	return err
}

func (c *Client) RegisterMessageHandler(handler func(discordpkg.MessageEvent)) {
	c.session.AddHandler(func(s *discordgo.Session, mc *discordgo.MessageCreate) {
		if mc == nil || mc.Message == nil {
			return
		}
		ev, ok := toMessageEvent(mc.Message)
		if !ok {
			return
		}
		ref := mc.Reference()
		ev.Reply = func(content string) error {
			_, err := s.ChannelMessageSendReply(mc.ChannelID, content, ref)
			return err
		}
		handler(ev)
	})
}

// toMessageEvent drops direct messages and messages without an author.
func toMessageEvent(m *discordgo.Message) (discordpkg.MessageEvent, bool) {
	if m.GuildID == "" || m.Author == nil || m.Author.ID == "" {
		return discordpkg.MessageEvent{}, false
	}
	name := preferredDiscordName(m.Author.GlobalName, m.Author.Username, m.Author.ID)
	if m.Member != nil && m.Member.Nick != "" {
		name = m.Member.Nick
	}
	return discordpkg.MessageEvent{
		GuildID:     m.GuildID,
		ChannelID:   m.ChannelID,
		MessageID:   m.ID,
		AuthorID:    m.Author.ID,
		AuthorName:  name,
		AuthorIsBot: m.Author.Bot,
		Content:     m.Content,
	}, true
}

func (c *Client) GetBotUserID() (string, error) {
	if c.botUserID != "" {
		return c.botUserID, nil
	}
	if c.session == nil {
		return "", fmt.Errorf("discord session is not initialized")
	}
	if c.session.State != nil && c.session.State.User != nil && c.session.State.User.ID != "" {
		c.botUserID = c.session.State.User.ID
		return c.botUserID, nil
	}
	u, err := c.session.User("@me")
	if err != nil {
		return "", err
	}
	c.botUserID = u.ID
	return c.botUserID, nil
}

func preferredDiscordName(globalName, username, fallback string) string {
	if globalName != "" {
		return globalName
	}
	if username != "" {
		return username
	}
	return fallback
}

// Run blocks until Close is called.
func (c *Client) Run() error {
	<-c.done
	slog.Debug("discord run loop finished")
	return nil
}
