package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/propscan/propscan/constants"
	"github.com/propscan/propscan/internal/extract"
)

var ErrNoBatches = errors.New("no batches recorded")

type BatchStats struct {
	Scanned   uint32
	Matched   uint32
	Succeeded uint32
	Failed    uint32
}

// BatchRepository persists extraction batches and their records so past runs
// can be re-exported without re-running OCR.
type BatchRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewBatchRepository(db *sql.DB, logger *slog.Logger) *BatchRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &BatchRepository{db: db, logger: logger}
}

func (r *BatchRepository) CreateBatch(ctx context.Context, imageDir string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO batches (id, image_dir, created_at) VALUES (?, ?, ?)`,
		id.String(), imageDir, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert batch: %w", err)
	}
	return id, nil
}

// AddRecords stores the batch's records in input order. Positions restart at
// zero per batch.
func (r *BatchRepository) AddRecords(ctx context.Context, batchID uuid.UUID, records []extract.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records
		(batch_id, position, source_file, buyer_name, seller_name, property_address, key_dates, offer_price, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, rec := range records {
		if _, err := stmt.ExecContext(ctx,
			batchID.String(), i, rec.SourceFile,
			rec.BuyerName, rec.SellerName, rec.PropertyAddress, rec.KeyDates, rec.OfferPrice,
			string(constants.DocStatusExtracted),
		); err != nil {
			return fmt.Errorf("insert record %s: %w", rec.SourceFile, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *BatchRepository) FinishBatch(ctx context.Context, batchID uuid.UUID, stats BatchStats) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE batches SET scanned = ?, matched = ?, succeeded = ?, failed = ? WHERE id = ?`,
		stats.Scanned, stats.Matched, stats.Succeeded, stats.Failed, batchID.String(),
	)
	if err != nil {
		return fmt.Errorf("update batch stats: %w", err)
	}
	return nil
}

// ListRecords returns a batch's records in their original input order.
func (r *BatchRepository) ListRecords(ctx context.Context, batchID uuid.UUID) ([]extract.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT source_file, buyer_name, seller_name, property_address, key_dates, offer_price
		FROM records WHERE batch_id = ? ORDER BY position`,
		batchID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []extract.Record
	for rows.Next() {
		var rec extract.Record
		if err := rows.Scan(
			&rec.SourceFile,
			&rec.BuyerName, &rec.SellerName, &rec.PropertyAddress, &rec.KeyDates, &rec.OfferPrice,
		); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// LatestBatch returns the most recently created batch id.
func (r *BatchRepository) LatestBatch(ctx context.Context) (uuid.UUID, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM batches ORDER BY created_at DESC, rowid DESC LIMIT 1`,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.Nil, ErrNoBatches
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("query latest batch: %w", err)
	}
	return uuid.Parse(raw)
}
