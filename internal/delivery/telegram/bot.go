package telegram

import (
	"context"
	"fmt"

	"hotsbot/internal/application"
	"hotsbot/internal/delivery/commands"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const transportName = "telegram"

type Bot struct {
	bot    *tgbotapi.BotAPI
	token  string
	router *commands.Router
	logger application.Logger
}

func NewBot(token string, router *commands.Router, logger application.Logger) *Bot {
	return &Bot{
		token:  token,
		router: router,
		logger: logger,
	}
}

func (b *Bot) Init() error {
	bot, err := tgbotapi.NewBotAPI(b.token)
	if err != nil {
		return fmt.Errorf("failed to create telegram bot: %w", err)
	}
	b.bot = bot
	b.logger.Info("Telegram bot authorized", "account", bot.Self.UserName)
	return nil
}

func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) Stop() {
	if b.bot != nil {
		b.bot.StopReceivingUpdates()
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.From.IsBot {
		return
	}

	resp := &responder{
		api:       b.bot,
		chatID:    msg.Chat.ID,
		messageID: msg.MessageID,
		userID:    msg.From.ID,
		handle:    senderHandle(msg.From),
	}
	b.router.Dispatch(ctx, transportName, resp.handle, msg.Text, resp)
}
