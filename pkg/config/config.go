package config

import (
	"errors"

	"hotsbot/internal/delivery/irc"
	"hotsbot/internal/repository"
	"hotsbot/internal/scraper"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Repo    repository.Config `envPrefix:"REPO_"`
	Scraper scraper.Config    `envPrefix:"SCRAPER_"`
	IRC     irc.Config        `envPrefix:"IRC_"`

	DiscordToken  string `env:"DISCORD_TOKEN" envDefault:""`
	TelegramToken string `env:"TELEGRAM_TOKEN" envDefault:""`
	CommandPrefix string `env:"COMMAND_PREFIX" envDefault:"!"`

	LogLevel    string `env:"LOGGER_LEVEL" envDefault:"debug"`
	LogFormat   string `env:"LOGGER_FORMAT" envDefault:"json"`
	MetricsAddr string `env:"METRICS_ADDR" envDefault:""`
	SentryDSN   string `env:"SENTRY_DSN" envDefault:""`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
}

func ReadEnvConfig(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return err
	}
	if cfg.Repo.Driver == repository.DriverSQLite && cfg.Repo.Path == "" {
		cfg.Repo.Path = repository.DefaultSQLitePath()
	}
	return cfg.Validate()
}

func (c *Config) Validate() error {
	if c.IRC.Server == "" && c.DiscordToken == "" && c.TelegramToken == "" {
		return errors.New("no chat transport configured: set IRC_SERVER, DISCORD_TOKEN or TELEGRAM_TOKEN")
	}
	if c.IRC.Server != "" && c.IRC.Nick == "" {
		return errors.New("IRC_NICK is required when IRC_SERVER is set")
	}
	if c.CommandPrefix == "" {
		return errors.New("COMMAND_PREFIX cannot be empty")
	}
	return nil
}
