package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"su_herramienta/internal/domain/entities"
	"su_herramienta/internal/usecase/interfaces"
	"time"
)

// PendingAuthorizationMySQLRepository stores one active authorization per
// WhatsApp phone (UNIQUE wa_phone).
type PendingAuthorizationMySQLRepository struct {
	db     *sql.DB
	schema Schema
	now    func() time.Time
}

var _ interfaces.IPendingAuthorizationRepository = (*PendingAuthorizationMySQLRepository)(nil)

func NewPendingAuthorizationMySQLRepository(db *sql.DB, schema Schema) *PendingAuthorizationMySQLRepository {
	return &PendingAuthorizationMySQLRepository{
		db:     db,
		schema: schema,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Upsert replaces any previous conversation of the phone, including the
// equipment list shown in it.
func (r *PendingAuthorizationMySQLRepository) Upsert(ctx context.Context, p entities.PendingAuthorization) error {
	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now()
	}
	query := `INSERT INTO ` + r.schema.PendingAuth + ` (uid_orden, wa_phone, estado, equipos_mostrados, created_at)
VALUES (?, ?, ?, NULL, ?)
ON DUPLICATE KEY UPDATE uid_orden = VALUES(uid_orden), estado = VALUES(estado), equipos_mostrados = NULL, created_at = VALUES(created_at)`

	if _, err := r.db.ExecContext(ctx, query, p.OrderID, p.Phone, string(p.State), createdAt); err != nil {
		return fmt.Errorf("upsert pending authorization %s: %w", p.Phone, err)
	}
	return nil
}

func (r *PendingAuthorizationMySQLRepository) GetByPhone(ctx context.Context, phone string) (entities.PendingAuthorization, error) {
	query := `SELECT uid_autorizacion, uid_orden, wa_phone, estado, equipos_mostrados, created_at
FROM ` + r.schema.PendingAuth + ` WHERE wa_phone = ? LIMIT 1`

	p, err := scanPending(r.db.QueryRowContext(ctx, query, phone))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.PendingAuthorization{}, nil
	}
	if err != nil {
		return entities.PendingAuthorization{}, fmt.Errorf("get pending authorization %s: %w", phone, err)
	}
	return p, nil
}

func scanPending(row rowScanner) (entities.PendingAuthorization, error) {
	var (
		p     entities.PendingAuthorization
		state string
		shown sql.NullString
	)
	if err := row.Scan(&p.ID, &p.OrderID, &p.Phone, &state, &shown, &p.CreatedAt); err != nil {
		return entities.PendingAuthorization{}, err
	}
	p.State = entities.AuthorizationState(state)
	if shown.Valid && shown.String != "" {
		if err := json.Unmarshal([]byte(shown.String), &p.EquipmentIDs); err != nil {
			return entities.PendingAuthorization{}, fmt.Errorf("decode equipos_mostrados: %w", err)
		}
	}
	return p, nil
}

func (r *PendingAuthorizationMySQLRepository) AwaitEquipmentSelection(ctx context.Context, p entities.PendingAuthorization, equipmentIDs []string) error {
	if equipmentIDs == nil {
		equipmentIDs = []string{}
	}
	shown, err := json.Marshal(equipmentIDs)
	if err != nil {
		return err
	}
	query := `UPDATE ` + r.schema.PendingAuth + ` SET estado = ?, equipos_mostrados = ?
WHERE uid_autorizacion = ? AND uid_orden = ? AND estado = ?`

	res, err := r.db.ExecContext(ctx, query,
		string(entities.AuthorizationStateAwaitingEquipmentSelection), string(shown),
		p.ID, p.OrderID, string(p.State))
	if err != nil {
		return fmt.Errorf("await equipment selection %s: %w", p.Phone, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return interfaces.ErrPendingAuthorizationGone
	}
	return nil
}

// Resolve locks the phone's row, checks it is still the conversation the
// caller read, applies the equipment changes and deletes the row.
func (r *PendingAuthorizationMySQLRepository) Resolve(ctx context.Context, p entities.PendingAuthorization, changes []entities.StatusChange) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	lockQuery := `SELECT uid_autorizacion, uid_orden, wa_phone, estado, equipos_mostrados, created_at
FROM ` + r.schema.PendingAuth + ` WHERE wa_phone = ? FOR UPDATE`
	current, err := scanPending(tx.QueryRowContext(ctx, lockQuery, p.Phone))
	if errors.Is(err, sql.ErrNoRows) {
		return interfaces.ErrPendingAuthorizationGone
	}
	if err != nil {
		return fmt.Errorf("lock pending authorization %s: %w", p.Phone, err)
	}
	if current.ID != p.ID || current.OrderID != p.OrderID || current.State != p.State {
		return interfaces.ErrPendingAuthorizationGone
	}

	if _, err := applyStatusChanges(ctx, tx, r.schema, changes, r.now()); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM `+r.schema.PendingAuth+` WHERE uid_autorizacion = ?`, p.ID); err != nil {
		return fmt.Errorf("delete pending authorization %d: %w", p.ID, err)
	}
	return tx.Commit()
}

func (r *PendingAuthorizationMySQLRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM `+r.schema.PendingAuth+` WHERE created_at < ?`, before)
	if err != nil {
		return 0, fmt.Errorf("delete expired authorizations: %w", err)
	}
	return res.RowsAffected()
}
