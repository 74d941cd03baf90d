// Package commands turns chat lines into bot commands and runs them.
package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotsbot/internal/application"
	"hotsbot/pkg/metrics"
	"hotsbot/pkg/sentry"
)

// Responder is the set of replies a chat transport offers a command.
type Responder interface {
	// Say sends text to the channel the command came from.
	Say(text string) error
	// Reply sends text to the channel, addressed to the sender.
	Reply(text string) error
	// Msg sends text privately to nick.
	Msg(nick, text string) error
	// Underline formats text for the transport.
	Underline(text string) string
}

type Request struct {
	Sender    string
	Command   string
	Args      string
	Transport string
}

type HandlerFunc func(ctx context.Context, req *Request, resp Responder) error

type Command struct {
	Name        string
	Aliases     []string
	Args        string
	Description string
	Handler     HandlerFunc
}

// Router maps command names and aliases to commands. Names are case-sensitive.
type Router struct {
	prefix   string
	commands []*Command
	byName   map[string]*Command
	logger   application.Logger
}

func NewRouter(prefix string, logger application.Logger) *Router {
	return &Router{
		prefix: prefix,
		byName: make(map[string]*Command),
		logger: logger,
	}
}

func (r *Router) Prefix() string {
	return r.prefix
}

func (r *Router) Register(cmds ...*Command) {
	for _, cmd := range cmds {
		r.commands = append(r.commands, cmd)
		r.byName[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			r.byName[alias] = cmd
		}
	}
}

// Lookup returns the command registered under name, or nil.
func (r *Router) Lookup(name string) *Command {
	return r.byName[name]
}

// Commands returns registered commands in registration order.
func (r *Router) Commands() []*Command {
	return r.commands
}

// Parse splits "!rating Wobbley#2327" into "rating" and "Wobbley#2327".
// ok is false when text does not start with the command prefix.
func (r *Router) Parse(text string) (name, args string, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, r.prefix) {
		return "", "", false
	}
	text = strings.TrimPrefix(text, r.prefix)

	name, args, _ = strings.Cut(text, " ")
	if name == "" {
		return "", "", false
	}
	return name, strings.TrimSpace(args), true
}

// Dispatch runs the command in text, if any, and reports whether one ran.
// Errors and panics from the command are logged and answered with an
// apology; they never reach the caller.
func (r *Router) Dispatch(ctx context.Context, transport, sender, text string, resp Responder) bool {
	name, args, ok := r.Parse(text)
	if !ok {
		return false
	}
	cmd := r.Lookup(name)
	if cmd == nil {
		return false
	}

	req := &Request{
		Sender:    sender,
		Command:   name,
		Args:      args,
		Transport: transport,
	}

	started := time.Now()
	err := r.execute(ctx, cmd, req, resp)
	metrics.ObserveCommand(cmd.Name, started, err)

	if err != nil {
		r.logger.Error("command failed",
			"command", cmd.Name, "sender", sender, "transport", transport, "error", err)
		sentry.CaptureError(cmd.Name, err, map[string]any{
			"sender":    sender,
			"args":      args,
			"transport": transport,
		})
		if sendErr := resp.Reply(fmt.Sprintf(msgCommandFailed, r.prefix+name)); sendErr != nil {
			r.logger.Error("failed to send apology", "command", cmd.Name, "error", sendErr)
		}
		return true
	}

	r.logger.Debug("command handled", "command", cmd.Name, "sender", sender, "transport", transport)
	return true
}

func (r *Router) execute(ctx context.Context, cmd *Command, req *Request, resp Responder) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic in %s: %v", cmd.Name, p)
		}
	}()
	return cmd.Handler(ctx, req, resp)
}
