package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/jaskfx/internal/database"
)

// MaintenanceService houses destructive ops actions exposed on the CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset drops the saved catalog. The schema stays so the app keeps working;
// the next successful fetch repopulates it.
func (s *MaintenanceService) Reset(ctx context.Context) (int64, error) {
	if s.DB == nil {
		return 0, fmt.Errorf("maintenance: db not configured")
	}
	var removed int64
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM currencies")
		if err != nil {
			return fmt.Errorf("reset currencies: %w", err)
		}
		removed, err = res.RowsAffected()
		return err
	}); err != nil {
		return 0, err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return removed, nil
}
