package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

type Config struct {
	Path string // database file; ":memory:" keeps everything in-process
}

const schema = `
CREATE TABLE IF NOT EXISTS batches (
	id         TEXT PRIMARY KEY,
	image_dir  TEXT NOT NULL,
	created_at TEXT NOT NULL,
	scanned    INTEGER NOT NULL DEFAULT 0,
	matched    INTEGER NOT NULL DEFAULT 0,
	succeeded  INTEGER NOT NULL DEFAULT 0,
	failed     INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS records (
	batch_id         TEXT NOT NULL REFERENCES batches(id),
	position         INTEGER NOT NULL,
	source_file      TEXT NOT NULL,
	buyer_name       TEXT NOT NULL,
	seller_name      TEXT NOT NULL,
	property_address TEXT NOT NULL,
	key_dates        TEXT NOT NULL,
	offer_price      TEXT NOT NULL,
	status           TEXT NOT NULL,
	PRIMARY KEY (batch_id, position)
);
`

// Open connects to the sqlite store and ensures the schema exists.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Path == "" {
		return nil, fmt.Errorf("db path is required")
	}
	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// a single connection keeps writes serialized and makes ":memory:" see
	// one database instead of one per pooled conn
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	logger.Debug("database ready", "path", cfg.Path)
	return db, nil
}
