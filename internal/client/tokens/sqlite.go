package tokens

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/workforce/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/workforce/internal/common"
	"github.com/dmitrijs2005/workforce/internal/dbx"
)

// SQLiteStore keeps the token in the local metadata table so it survives
// restarts of the client.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

// Set writes the token and the time it was saved in one transaction.
func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	savedAt := strconv.FormatInt(s.now().Unix(), 10)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.TokenStorageKey, token); err != nil {
			return err
		}
		return repo.Set(ctx, common.TokenSavedAtKey, savedAt)
	})
	if err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context) (string, bool, error) {
	token, ok, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.TokenStorageKey)
	if err != nil {
		return "", false, fmt.Errorf("load token: %w", err)
	}
	return token, ok, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if err := metadata.NewSQLiteRepository(s.db).Delete(ctx, common.TokenStorageKey, common.TokenSavedAtKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// SavedAt reports when the current token was stored.
func (s *SQLiteStore) SavedAt(ctx context.Context) (time.Time, bool, error) {
	raw, ok, err := metadata.NewSQLiteRepository(s.db).Get(ctx, common.TokenSavedAtKey)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse %s: %w", common.TokenSavedAtKey, err)
	}
	return time.Unix(sec, 0), true, nil
}
