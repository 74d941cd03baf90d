package main

import (
	"context"
	"os"

	"hotsbot/internal/application"
	"hotsbot/internal/delivery/commands"
	"hotsbot/internal/delivery/discord"
	"hotsbot/internal/delivery/irc"
	"hotsbot/internal/delivery/telegram"
	"hotsbot/internal/repository"
	"hotsbot/internal/scraper"
	"hotsbot/pkg/config"
	"hotsbot/pkg/logger"
	"hotsbot/pkg/metrics"
	"hotsbot/pkg/sentry"
	service "hotsbot/pkg/services"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	_ = godotenv.Load()

	cfg := config.Config{}
	if err := config.ReadEnvConfig(&cfg); err != nil {
		panic(err)
	}

	log := logger.NewLogger(&logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if ok, err := sentry.Init(cfg.SentryDSN, cfg.Environment); err != nil {
		log.Error("failed to init sentry", "error", err)
	} else if ok {
		defer sentry.Flush()
	}

	db, err := repository.NewDB(&cfg.Repo)
	if err != nil {
		log.Error("failed to init db", "driver", cfg.Repo.Driver, "error", err)
		return 1
	}
	defer db.Close()

	log.Info("Running migrations...")
	if err := repository.RunMigrations(db, cfg.Repo.Driver); err != nil {
		log.Error("failed to run migrations", "error", err)
		return 1
	}
	log.Info("Migrations applied successfully")

	repos := repository.NewRepository(db)
	services := application.NewService(repos, scraper.NewClient(&cfg.Scraper), log)

	router := commands.NewRouter(cfg.CommandPrefix, log)
	commands.Register(router, services)

	manager := service.NewManager(log)

	if cfg.MetricsAddr != "" {
		metrics.Register()
		manager.AddService(metrics.NewServer(cfg.MetricsAddr, log))
	}
	if cfg.IRC.Server != "" {
		manager.AddService(irc.NewBot(&cfg.IRC, router, log.With("transport", "irc")))
	}
	if cfg.DiscordToken != "" {
		bot, err := discord.NewBot(cfg.DiscordToken, router, log.With("transport", "discord"))
		if err != nil {
			log.Error("failed to init discord bot", "error", err)
			return 1
		}
		manager.AddService(bot)
	}
	if cfg.TelegramToken != "" {
		manager.AddService(telegram.NewBot(cfg.TelegramToken, router, log.With("transport", "telegram")))
	}

	if err := manager.Run(context.Background()); err != nil {
		log.Error("failed to start services", "error", err)
		return 1
	}

	log.Info("Bot Stopped")
	return 0
}
