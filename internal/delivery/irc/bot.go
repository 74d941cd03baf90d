package irc

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"hotsbot/internal/application"
	"hotsbot/internal/delivery/commands"

	"github.com/cenkalti/backoff/v4"
	"gopkg.in/irc.v4"
)

const (
	transportName    = "irc"
	dialTimeout      = 30 * time.Second
	retryInterval    = 5 * time.Second
	maxRetryInterval = 5 * time.Minute
)

type Config struct {
	Server   string   `env:"SERVER"`
	TLS      bool     `env:"TLS" envDefault:"false"`
	Nick     string   `env:"NICK"`
	User     string   `env:"USER"`
	Name     string   `env:"NAME"`
	Password string   `env:"PASSWORD"`
	Channels []string `env:"CHANNELS" envSeparator:","`
}

type Bot struct {
	cfg    Config
	router *commands.Router
	logger application.Logger

	dial          func(ctx context.Context) (net.Conn, error)
	retryInterval time.Duration

	mu   sync.Mutex
	conn net.Conn
}

func NewBot(cfg *Config, router *commands.Router, logger application.Logger) *Bot {
	b := &Bot{
		cfg:           *cfg,
		router:        router,
		logger:        logger,
		retryInterval: retryInterval,
	}
	b.dial = b.dialServer
	return b
}

func (b *Bot) Init() error {
	conn, err := b.dial(context.Background())
	if err != nil {
		return err
	}

	b.setConn(conn)
	return nil
}

func (b *Bot) dialServer(ctx context.Context) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: dialTimeout}

	var (
		conn net.Conn
		err  error
	)
	if b.cfg.TLS {
		host, _, _ := net.SplitHostPort(b.cfg.Server)
		td := &tls.Dialer{NetDialer: dialer, Config: &tls.Config{ServerName: host}}
		conn, err = td.DialContext(ctx, "tcp", b.cfg.Server)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", b.cfg.Server)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", b.cfg.Server, err)
	}
	return conn, nil
}

// Run serves the current connection and redials with exponential backoff
// whenever it drops, until ctx is done.
func (b *Bot) Run(ctx context.Context) {
	for {
		conn := b.currentConn()
		if conn != nil {
			b.logger.Info("IRC bot connecting", "server", b.cfg.Server, "nick", b.cfg.Nick)
			err := b.serve(ctx, conn)
			conn.Close()
			if ctx.Err() != nil {
				return
			}
			b.logger.Error("IRC connection lost", "server", b.cfg.Server, "error", err)
		}

		conn, err := b.reconnect(ctx)
		if err != nil {
			return
		}
		b.setConn(conn)
	}
}

func (b *Bot) serve(ctx context.Context, conn net.Conn) error {
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	user := b.cfg.User
	if user == "" {
		user = b.cfg.Nick
	}
	name := b.cfg.Name
	if name == "" {
		name = b.cfg.Nick
	}

	client := irc.NewClient(conn, irc.ClientConfig{
		Nick: b.cfg.Nick,
		Pass: b.cfg.Password,
		User: user,
		Name: name,
		Handler: irc.HandlerFunc(func(c *irc.Client, m *irc.Message) {
			b.handle(ctx, c, m)
		}),
	})
	return client.RunContext(ctx)
}

func (b *Bot) reconnect(ctx context.Context) (net.Conn, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = b.retryInterval
	policy.MaxInterval = maxRetryInterval
	policy.MaxElapsedTime = 0

	var conn net.Conn
	err := backoff.RetryNotify(func() error {
		c, err := b.dial(ctx)
		if err != nil {
			return err
		}
		conn = c
		return nil
	}, backoff.WithContext(policy, ctx), func(err error, next time.Duration) {
		b.logger.Warn("IRC reconnect failed", "server", b.cfg.Server, "error", err, "retry_in", next)
	})
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (b *Bot) currentConn() net.Conn {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.conn
}

func (b *Bot) setConn(conn net.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.conn = conn
}

func (b *Bot) Stop() {
	if conn := b.currentConn(); conn != nil {
		conn.Close()
	}
}

func (b *Bot) handle(ctx context.Context, c *irc.Client, m *irc.Message) {
	switch m.Command {
	case "001":
		for _, ch := range b.cfg.Channels {
			ch = strings.TrimSpace(ch)
			if ch == "" {
				continue
			}
			if err := c.WriteMessage(&irc.Message{Command: "JOIN", Params: []string{ch}}); err != nil {
				b.logger.Error("failed to join channel", "channel", ch, "error", err)
				continue
			}
			b.logger.Info("joined channel", "channel", ch)
		}
	case "PRIVMSG":
		if m.Prefix == nil || len(m.Params) < 2 {
			return
		}

		sender := m.Prefix.Name
		target := m.Params[0]
		if !c.FromChannel(m) {
			target = sender
		}

		resp := &responder{w: c, target: target, sender: sender}
		b.router.Dispatch(ctx, transportName, sender, m.Trailing(), resp)
	}
}
