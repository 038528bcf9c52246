package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
)

// SeedDefaults creates the configured starter lanes on a fresh database.
// It is idempotent and safe to run on every startup: any existing lane
// means the user has a board and we leave it alone. Lane ids are derived
// from the name so repeated seeding cannot mint duplicates.
func SeedDefaults(ctx context.Context, db *sql.DB, laneNames []string) error {
	var existing int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lanes`).Scan(&existing); err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}
	return WithTx(db, func(tx *sql.Tx) error {
		for i, raw := range laneNames {
			name := strings.TrimSpace(raw)
			if name == "" {
				continue
			}
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("lane:"+name)).String()
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO lanes(id, name, position) VALUES(?, ?, ?)`,
				id, name, i); err != nil {
				return err
			}
		}
		return nil
	})
}
