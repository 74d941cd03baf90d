package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReadEnvConfigDefaults(t *testing.T) {
	t.Setenv("IRC_SERVER", "irc.quakenet.org:6667")
	t.Setenv("IRC_NICK", "hotsbot")
	t.Setenv("IRC_CHANNELS", "#hots,#heroes")

	var cfg Config
	require.NoError(t, ReadEnvConfig(&cfg))

	require.Equal(t, "!", cfg.CommandPrefix)
	require.Equal(t, "sqlite", cfg.Repo.Driver)
	require.NotEmpty(t, cfg.Repo.Path)
	require.Equal(t, "https://www.hotslogs.com", cfg.Scraper.HotsLogsURL)
	require.Equal(t, "http://www.heroesfire.com", cfg.Scraper.HeroesFireURL)
	require.Equal(t, 30*time.Second, cfg.Scraper.Timeout)
	require.Equal(t, []string{"#hots", "#heroes"}, cfg.IRC.Channels)
}

func TestReadEnvConfigPath(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("REPO_DB_PATH", "/var/lib/hotsbot/bot.db")
	t.Setenv("COMMAND_PREFIX", ".")

	var cfg Config
	require.NoError(t, ReadEnvConfig(&cfg))
	require.Equal(t, "/var/lib/hotsbot/bot.db", cfg.Repo.Path)
	require.Equal(t, ".", cfg.CommandPrefix)
}

func TestValidate(t *testing.T) {
	require.Error(t, (&Config{CommandPrefix: "!"}).Validate())

	cfg := &Config{CommandPrefix: "!"}
	cfg.IRC.Server = "irc.example.org:6697"
	require.Error(t, cfg.Validate())

	cfg.IRC.Nick = "hotsbot"
	require.NoError(t, cfg.Validate())

	cfg.CommandPrefix = ""
	require.Error(t, cfg.Validate())
}
