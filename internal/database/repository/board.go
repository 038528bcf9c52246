// Package repository is the persistence bridge: it serializes board
// snapshots to sqlite and hydrates them on startup. The board core never
// sees this package; the composition root subscribes it to settled
// updates.
package repository

import (
	"context"
	"database/sql"

	"github.com/jask/kanba/internal/board"
)

// BoardRepo handles snapshot load/save.
type BoardRepo struct {
	db *sql.DB
}

func NewBoardRepo(db *sql.DB) *BoardRepo { return &BoardRepo{db: db} }

// Load hydrates a full board snapshot. Note and lane order come from the
// persisted positions, so store-internal order survives a restart. The
// editing flag is presentation state and always loads as viewing.
func (r *BoardRepo) Load(ctx context.Context) (board.Snapshot, error) {
	var snap board.Snapshot

	rows, err := r.db.QueryContext(ctx, `SELECT id, task FROM notes ORDER BY position ASC`)
	if err != nil {
		return snap, err
	}
	defer rows.Close()
	for rows.Next() {
		var n board.Note
		if err := rows.Scan(&n.ID, &n.Task); err != nil {
			return snap, err
		}
		snap.Notes = append(snap.Notes, n)
	}
	if err := rows.Err(); err != nil {
		return snap, err
	}

	laneRows, err := r.db.QueryContext(ctx, `SELECT id, name FROM lanes ORDER BY position ASC`)
	if err != nil {
		return snap, err
	}
	defer laneRows.Close()
	for laneRows.Next() {
		var l board.Lane
		if err := laneRows.Scan(&l.ID, &l.Name); err != nil {
			return snap, err
		}
		l.NoteIDs = []string{}
		snap.Lanes = append(snap.Lanes, l)
	}
	if err := laneRows.Err(); err != nil {
		return snap, err
	}

	relRows, err := r.db.QueryContext(ctx, `SELECT lane_id, note_id FROM lane_notes ORDER BY lane_id, position ASC`)
	if err != nil {
		return snap, err
	}
	defer relRows.Close()
	byLane := make(map[string][]string)
	for relRows.Next() {
		var laneID, noteID string
		if err := relRows.Scan(&laneID, &noteID); err != nil {
			return snap, err
		}
		byLane[laneID] = append(byLane[laneID], noteID)
	}
	if err := relRows.Err(); err != nil {
		return snap, err
	}
	for i := range snap.Lanes {
		if ids, ok := byLane[snap.Lanes[i].ID]; ok {
			snap.Lanes[i].NoteIDs = ids
		}
	}
	return snap, nil
}

// Save persists the snapshot as a full rewrite in one transaction. The
// board is small enough that diffing would buy nothing, and a rewrite
// keeps the stored state trivially consistent with the in-memory one.
func (r *BoardRepo) Save(ctx context.Context, snap board.Snapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := saveTx(ctx, tx, snap); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func saveTx(ctx context.Context, tx *sql.Tx, snap board.Snapshot) error {
	for _, stmt := range []string{
		`DELETE FROM lane_notes`,
		`DELETE FROM lanes`,
		`DELETE FROM notes`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	for i, n := range snap.Notes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO notes(id, task, position) VALUES(?, ?, ?)`,
			n.ID, n.Task, i); err != nil {
			return err
		}
	}
	for i, l := range snap.Lanes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO lanes(id, name, position) VALUES(?, ?, ?)`,
			l.ID, l.Name, i); err != nil {
			return err
		}
		for j, noteID := range l.NoteIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO lane_notes(lane_id, note_id, position) VALUES(?, ?, ?)`,
				l.ID, noteID, j); err != nil {
				return err
			}
		}
	}
	return nil
}

// CountLanes reports how many lanes are persisted. Used by seeding to
// detect a fresh database.
func (r *BoardRepo) CountLanes(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM lanes`).Scan(&n)
	return n, err
}
