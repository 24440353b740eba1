package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jask/jaskfx/internal/currency"
	"github.com/jask/jaskfx/internal/database"
)

// CurrencyRepo keeps the last catalog fetched from the remote API.
type CurrencyRepo struct {
	db *sql.DB
}

func NewCurrencyRepo(db *sql.DB) *CurrencyRepo {
	return &CurrencyRepo{db: db}
}

// SaveAll replaces the stored catalog with list in one transaction.
// Rows keep list order via position and share a fresh snapshot id.
func (r *CurrencyRepo) SaveAll(ctx context.Context, list []currency.Currency) error {
	snapshot := uuid.NewString()
	savedAt := database.Now()
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM currencies`); err != nil {
			return fmt.Errorf("clear currencies: %w", err)
		}
		stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO currencies(code, display_name, full_name, quote, position, snapshot_id, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(code) DO NOTHING;
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for i, c := range list {
			if _, err := stmt.ExecContext(ctx, c.Code, c.DisplayName, c.FullName, c.Quote.String(), i, snapshot, savedAt); err != nil {
				return fmt.Errorf("insert currency %s: %w", c.Code, err)
			}
		}
		return nil
	})
}

// List returns the stored catalog in saved order. Empty when nothing was saved.
func (r *CurrencyRepo) List(ctx context.Context) ([]currency.Currency, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT code, display_name, full_name, quote FROM currencies ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []currency.Currency
	for rows.Next() {
		var (
			c     currency.Currency
			quote string
		)
		if err := rows.Scan(&c.Code, &c.DisplayName, &c.FullName, &quote); err != nil {
			return nil, err
		}
		if c.Quote, err = decimal.NewFromString(quote); err != nil {
			return nil, fmt.Errorf("currency %s quote %q: %w", c.Code, quote, err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Snapshot describes the stored catalog.
func (r *CurrencyRepo) Snapshot(ctx context.Context) (*Snapshot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT snapshot_id, saved_at, COUNT(*) FROM currencies GROUP BY snapshot_id, saved_at ORDER BY saved_at DESC LIMIT 1`)
	var s Snapshot
	if err := row.Scan(&s.ID, &s.SavedAt, &s.Count); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
