package application

import (
	"context"
	"fmt"

	"hotsbot/internal/models"
	"hotsbot/internal/repository"
)

type BattleTagServiceImpl struct {
	repo   repository.BattleTag
	logger Logger
}

func NewBattleTagServiceImpl(repo repository.BattleTag, logger Logger) *BattleTagServiceImpl {
	return &BattleTagServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// Register links tag to handle. It returns false when the handle, compared
// without case, already has a battle tag; the existing one is kept.
func (s *BattleTagServiceImpl) Register(ctx context.Context, handle, tag string) (bool, error) {
	created, err := s.repo.Create(ctx, handle, tag)
	if err != nil {
		return false, fmt.Errorf("failed to register battle tag for %s: %w", handle, err)
	}

	if created {
		s.logger.Info("battle tag registered", "handle", handle, "battle_tag", tag)
	} else {
		s.logger.Debug("battle tag already registered", "handle", handle)
	}
	return created, nil
}

func (s *BattleTagServiceImpl) Lookup(ctx context.Context, handle string) (*models.BattleTag, error) {
	bt, err := s.repo.Get(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("failed to look up battle tag for %s: %w", handle, err)
	}
	return bt, nil
}

func (s *BattleTagServiceImpl) Remove(ctx context.Context, handle string) error {
	if err := s.repo.Delete(ctx, handle); err != nil {
		return fmt.Errorf("failed to remove battle tag for %s: %w", handle, err)
	}
	s.logger.Info("battle tag removed", "handle", handle)
	return nil
}
