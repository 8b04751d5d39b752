package storage

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

// PostgresStore keeps storefront state in a single key/value table, for
// deployments where Redis is not available.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) (*PostgresStore, error) {
	store := &PostgresStore{DB: db}
	if err := store.ensureSchema(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *PostgresStore) ensureSchema() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS storefront_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return errors.Wrap(err, "ensure storefront_state schema")
}

func (s *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRowContext(ctx,
		"SELECT value FROM storefront_state WHERE key = $1", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "get state value")
	}
	return value, true, nil
}

func (s *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO storefront_state (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()`,
		key, value)
	return errors.Wrap(err, "set state value")
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	_, err := s.DB.ExecContext(ctx,
		"DELETE FROM storefront_state WHERE key = $1", key)
	return errors.Wrap(err, "delete state value")
}

var _ KeyValueStore = (*PostgresStore)(nil)
