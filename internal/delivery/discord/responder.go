package discord

import (
	"fmt"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
)

type messageSender interface {
	ChannelMessageSend(channelID, content string) error
	DirectChannel(userID string) (string, error)
}

type sessionSender struct {
	s *discordgo.Session
}

func (s *sessionSender) ChannelMessageSend(channelID, content string) error {
	_, err := s.s.ChannelMessageSend(channelID, content)
	return err
}

func (s *sessionSender) DirectChannel(userID string) (string, error) {
	ch, err := s.s.UserChannelCreate(userID)
	if err != nil {
		return "", err
	}
	return ch.ID, nil
}

// responder answers one message. Only the author can be messaged privately.
type responder struct {
	sender    messageSender
	channelID string
	author    *discordgo.User
}

func (r *responder) Say(text string) error {
	return r.sender.ChannelMessageSend(r.channelID, truncate(text))
}

func (r *responder) Reply(text string) error {
	return r.sender.ChannelMessageSend(r.channelID, truncate(r.author.Mention()+" "+text))
}

func (r *responder) Msg(nick, text string) error {
	if nick != r.author.Username {
		return fmt.Errorf("cannot message %s privately", nick)
	}
	channelID, err := r.sender.DirectChannel(r.author.ID)
	if err != nil {
		return fmt.Errorf("failed to open DM with %s: %w", nick, err)
	}
	return r.sender.ChannelMessageSend(channelID, truncate(text))
}

func (r *responder) Underline(text string) string {
	return "__" + text + "__"
}

func truncate(msg string) string {
	if len(msg) > maxMessageLength {
		cut := maxMessageTruncation
		for cut > 0 && !utf8.RuneStart(msg[cut]) {
			cut--
		}
		return msg[:cut] + "..."
	}
	return msg
}
