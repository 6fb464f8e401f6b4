package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"su_herramienta/internal/domain/entities"
	"time"
)

// applyStatusChanges updates each equipment status and appends its history
// row inside tx. Entries that no longer exist are skipped and get no history.
// The caller owns commit and rollback.
//
// The connection must report matched rows (ClientFoundRows), otherwise an
// unchanged status would look like a missing entry.
func applyStatusChanges(ctx context.Context, tx *sql.Tx, s Schema, changes []entities.StatusChange, now time.Time) ([]entities.StatusHistoryEntry, error) {
	updateQuery := `UPDATE ` + s.EquipmentOrder + ` SET her_estado = ? WHERE uid_herramienta_orden = ?`
	insertQuery := `INSERT INTO ` + s.StatusLog + ` (uid_herramienta_orden, estado, changed_at) VALUES (?, ?, ?)`

	entries := make([]entities.StatusHistoryEntry, 0, len(changes))
	for _, c := range changes {
		res, err := tx.ExecContext(ctx, updateQuery, string(c.Status), c.EquipmentID)
		if err != nil {
			return nil, fmt.Errorf("update equipment %s status: %w", c.EquipmentID, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("update equipment %s status: %w", c.EquipmentID, err)
		}
		if n == 0 {
			log.Printf("[db][status] equipment missing, status change skipped equipment_id=%s status=%s", c.EquipmentID, c.Status)
			continue
		}

		res, err = tx.ExecContext(ctx, insertQuery, c.EquipmentID, string(c.Status), now)
		if err != nil {
			return nil, fmt.Errorf("append equipment %s history: %w", c.EquipmentID, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("append equipment %s history: %w", c.EquipmentID, err)
		}
		entries = append(entries, entities.StatusHistoryEntry{
			ID:          id,
			EquipmentID: c.EquipmentID,
			Status:      c.Status,
			ChangedAt:   now,
		})
	}
	return entries, nil
}
