package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// responder answers one message. Private messages go to the sender's own
// chat, which only works once they have started a conversation with the bot.
type responder struct {
	api       messageSender
	chatID    int64
	messageID int
	userID    int64
	handle    string
}

func (r *responder) Say(text string) error {
	return r.send(tgbotapi.NewMessage(r.chatID, text))
}

func (r *responder) Reply(text string) error {
	msg := tgbotapi.NewMessage(r.chatID, text)
	msg.ReplyToMessageID = r.messageID
	return r.send(msg)
}

func (r *responder) Msg(nick, text string) error {
	if nick != r.handle {
		return fmt.Errorf("cannot message %s privately", nick)
	}
	return r.send(tgbotapi.NewMessage(r.userID, text))
}

func (r *responder) Underline(text string) string {
	return text
}

func (r *responder) send(msg tgbotapi.MessageConfig) error {
	if msg.Text == "" {
		return nil
	}
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	_, err := r.api.Send(msg)
	return err
}

func senderHandle(u *tgbotapi.User) string {
	if u.UserName != "" {
		return u.UserName
	}
	return u.FirstName
}
