package irc

import (
	"strings"

	"gopkg.in/irc.v4"
)

const underline = "\x1f"

type messageWriter interface {
	WriteMessage(m *irc.Message) error
}

// responder answers one PRIVMSG. target is the channel it arrived on, or the
// sender's nick for a private query.
type responder struct {
	w      messageWriter
	target string
	sender string
}

func (r *responder) Say(text string) error {
	return r.privmsg(r.target, text)
}

func (r *responder) Reply(text string) error {
	return r.privmsg(r.target, r.sender+": "+text)
}

func (r *responder) Msg(nick, text string) error {
	return r.privmsg(nick, text)
}

func (r *responder) Underline(text string) string {
	return underline + text + underline
}

func (r *responder) privmsg(target, text string) error {
	return r.w.WriteMessage(&irc.Message{
		Command: "PRIVMSG",
		Params:  []string{target, stripLineBreaks(text)},
	})
}

// stripLineBreaks keeps user-supplied text from starting a new protocol line.
func stripLineBreaks(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}
