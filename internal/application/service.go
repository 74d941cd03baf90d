package application

import (
	"context"

	"hotsbot/internal/models"
	"hotsbot/internal/repository"
)

type Logger interface {
	Error(msg string, v ...interface{})
	Warn(msg string, v ...interface{})
	Info(msg string, v ...interface{})
	Debug(msg string, v ...interface{})
}

// PageScraper fetches and extracts the HotsLogs and HeroesFire pages.
type PageScraper interface {
	FetchPlayerSearch(ctx context.Context, name string) ([]models.PlayerRating, error)
	FetchFreeRotation(ctx context.Context) ([]models.Hero, error)
}

type BattleTagService interface {
	Register(ctx context.Context, handle, tag string) (bool, error)
	Lookup(ctx context.Context, handle string) (*models.BattleTag, error)
	Remove(ctx context.Context, handle string) error
}

type StatsService interface {
	Ratings(ctx context.Context, player string) ([]models.PlayerRating, error)
	FreeRotation(ctx context.Context) ([]models.Hero, error)
}

type Service struct {
	BattleTags BattleTagService
	Stats      StatsService
}

func NewService(repos *repository.Repository, scraper PageScraper, logger Logger) *Service {
	return &Service{
		BattleTags: NewBattleTagServiceImpl(repos.BattleTag, logger),
		Stats:      NewStatsServiceImpl(scraper, logger),
	}
}
