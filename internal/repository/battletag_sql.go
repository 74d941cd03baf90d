package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"hotsbot/internal/models"
)

// BattleTagSQL stores battle tags with queries that run unchanged on
// both sqlite and postgres. Handles are compared through handle_key, which
// is folded in Go because sqlite's LOWER only folds ASCII.
type BattleTagSQL struct {
	db *sql.DB
}

func NewBattleTagSQL(db *sql.DB) *BattleTagSQL {
	return &BattleTagSQL{db: db}
}

func handleKey(handle string) string {
	return strings.ToLower(handle)
}

// Create relies on the unique index over handle_key, so concurrent
// registrations for the same handle insert at most one row.
func (r *BattleTagSQL) Create(ctx context.Context, handle, tag string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO battle_tags (handle, handle_key, battle_tag) VALUES ($1, $2, $3)
		ON CONFLICT (handle_key) DO NOTHING
	`, handle, handleKey(handle), tag)
	if err != nil {
		return false, storageErr("insert battle tag", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, storageErr("insert battle tag", err)
	}
	return rows > 0, nil
}

func (r *BattleTagSQL) Get(ctx context.Context, handle string) (*models.BattleTag, error) {
	var bt models.BattleTag
	err := r.db.QueryRowContext(ctx,
		`SELECT handle, battle_tag FROM battle_tags WHERE handle_key = $1 LIMIT 1`, handleKey(handle),
	).Scan(&bt.Handle, &bt.Tag)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get battle tag", err)
	}
	return &bt, nil
}

func (r *BattleTagSQL) Delete(ctx context.Context, handle string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM battle_tags WHERE handle = $1`, handle)
	if err != nil {
		return storageErr("delete battle tag", err)
	}
	return nil
}
