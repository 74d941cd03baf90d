package repository

import (
	"context"
	"database/sql"

	"hotsbot/internal/models"
)

type BattleTag interface {
	// Create stores tag for handle unless any handle equal to it ignoring case
	// already has one. It reports whether a row was inserted.
	Create(ctx context.Context, handle, tag string) (bool, error)
	// Get returns the first record whose handle matches ignoring case, or nil.
	Get(ctx context.Context, handle string) (*models.BattleTag, error)
	// Delete removes every record with exactly this handle.
	Delete(ctx context.Context, handle string) error
}

type Repository struct {
	BattleTag
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		BattleTag: NewBattleTagSQL(db),
		db:        db,
	}
}
