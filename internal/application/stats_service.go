package application

import (
	"context"
	"fmt"

	"hotsbot/internal/models"
)

type StatsServiceImpl struct {
	scraper PageScraper
	logger  Logger
}

func NewStatsServiceImpl(scraper PageScraper, logger Logger) *StatsServiceImpl {
	return &StatsServiceImpl{
		scraper: scraper,
		logger:  logger,
	}
}

func (s *StatsServiceImpl) Ratings(ctx context.Context, player string) ([]models.PlayerRating, error) {
	ratings, err := s.scraper.FetchPlayerSearch(ctx, player)
	if err != nil {
		return nil, fmt.Errorf("failed to get ratings for %s: %w", player, err)
	}
	s.logger.Debug("player search scraped", "player", player, "results", len(ratings))
	return ratings, nil
}

func (s *StatsServiceImpl) FreeRotation(ctx context.Context) ([]models.Hero, error) {
	heroes, err := s.scraper.FetchFreeRotation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get free rotation: %w", err)
	}
	if len(heroes) == 0 {
		s.logger.Warn("free rotation page had no heroes")
	}
	return heroes, nil
}
