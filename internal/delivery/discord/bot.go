package discord

import (
	"context"
	"fmt"

	"hotsbot/internal/application"
	"hotsbot/internal/delivery/commands"

	"github.com/bwmarrin/discordgo"
)

// Bot answers prefixed chat commands in guild channels and DMs.
type Bot struct {
	session *discordgo.Session
	router  *commands.Router
	logger  application.Logger

	ctx context.Context
}

func NewBot(token string, router *commands.Router, logger application.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	return &Bot{
		session: s,
		router:  router,
		logger:  logger,
		ctx:     context.Background(),
	}, nil
}

func (b *Bot) Init() error {
	b.session.AddHandler(b.onMessage)
	return nil
}

func (b *Bot) Run(ctx context.Context) {
	b.ctx = ctx
	if err := b.session.Open(); err != nil {
		b.logger.Error("failed to open discord session", "error", err)
		return
	}
	b.logger.Info("Discord Bot Started")
}

func (b *Bot) Stop() {
	b.session.Close()
}

func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	if s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	resp := &responder{
		sender:    &sessionSender{s},
		channelID: m.ChannelID,
		author:    m.Author,
	}
	b.router.Dispatch(b.ctx, transportName, m.Author.Username, m.Content, resp)
}
