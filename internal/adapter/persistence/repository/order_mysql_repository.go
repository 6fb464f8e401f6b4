package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"su_herramienta/internal/domain/entities"
	"su_herramienta/internal/usecase/interfaces"
	"time"

	"github.com/shopspring/decimal"
)

// OrderMySQLRepository reads orders, equipment and quotes from the shop's
// MySQL database and writes equipment status changes.
//
// The order, client and tool tables are owned by the intake application;
// ids are compared as strings so numeric and varchar keys both work.
type OrderMySQLRepository struct {
	db     *sql.DB
	schema Schema
	now    func() time.Time
}

var _ interfaces.IOrderRepository = (*OrderMySQLRepository)(nil)

func NewOrderMySQLRepository(db *sql.DB, schema Schema) *OrderMySQLRepository {
	return &OrderMySQLRepository{
		db:     db,
		schema: schema,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// GetOrder resolves orderID as the internal id first and then as the display sequence.
func (r *OrderMySQLRepository) GetOrder(ctx context.Context, orderID string) (entities.Order, error) {
	base := `SELECT o.uid_orden, COALESCE(o.ord_consecutivo, ''), COALESCE(o.ord_estado, ''),
  COALESCE(c.cli_razon_social, ''), COALESCE(c.cli_telefono, '')
FROM ` + r.schema.Orders + ` o
LEFT JOIN ` + r.schema.Clients + ` c ON c.uid_cliente = o.uid_cliente
WHERE `
	for _, where := range []string{"o.uid_orden = ? LIMIT 1", "o.ord_consecutivo = ? LIMIT 1"} {
		var o entities.Order
		err := r.db.QueryRowContext(ctx, base+where, orderID).Scan(&o.ID, &o.Sequence, &o.Status, &o.ClientName, &o.ClientPhone)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			return entities.Order{}, fmt.Errorf("get order %s: %w", orderID, err)
		}
		return o, nil
	}
	return entities.Order{}, nil
}

func (r *OrderMySQLRepository) GetQuoteHeader(ctx context.Context, orderID string) (entities.QuoteHeader, error) {
	query := `SELECT uid_orden, subtotal, iva, total, COALESCE(mensaje_whatsapp, ''), whatsapp_enviado, whatsapp_enviado_at
FROM ` + r.schema.QuoteOrder + ` WHERE uid_orden = ?`

	var (
		h      entities.QuoteHeader
		sentAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(&h.OrderID, &h.Subtotal, &h.Tax, &h.Total, &h.Message, &h.Sent, &sentAt)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.QuoteHeader{}, nil
	}
	if err != nil {
		return entities.QuoteHeader{}, fmt.Errorf("get quote %s: %w", orderID, err)
	}
	if sentAt.Valid {
		t := sentAt.Time
		h.SentAt = &t
	}
	return h, nil
}

func (r *OrderMySQLRepository) MarkQuoteSent(ctx context.Context, orderID string) error {
	query := `UPDATE ` + r.schema.QuoteOrder + ` SET whatsapp_enviado = 1, whatsapp_enviado_at = ? WHERE uid_orden = ?`
	if _, err := r.db.ExecContext(ctx, query, r.now(), orderID); err != nil {
		return fmt.Errorf("mark quote %s sent: %w", orderID, err)
	}
	return nil
}

func (r *OrderMySQLRepository) equipmentQuery(where string) string {
	return `SELECT ho.uid_herramienta_orden, ho.uid_orden, COALESCE(h.her_nombre, ''), COALESCE(h.her_marca, ''),
  COALESCE(h.her_serial, ''), COALESCE(ho.her_estado, ''), cm.subtotal
FROM ` + r.schema.EquipmentOrder + ` ho
JOIN ` + r.schema.Tools + ` h ON h.uid_herramienta = ho.uid_herramienta
LEFT JOIN ` + r.schema.QuoteMachine + ` cm ON cm.uid_orden = ho.uid_orden AND cm.uid_herramienta_orden = ho.uid_herramienta_orden
WHERE ` + where
}

func (r *OrderMySQLRepository) ListEquipment(ctx context.Context, orderID string) ([]entities.EquipmentEntry, error) {
	return r.listEquipment(ctx, r.equipmentQuery(`ho.uid_orden = ? ORDER BY ho.uid_herramienta_orden`), orderID)
}

func (r *OrderMySQLRepository) ListEquipmentByStatus(ctx context.Context, orderID string, status entities.EquipmentStatus) ([]entities.EquipmentEntry, error) {
	return r.listEquipment(ctx, r.equipmentQuery(`ho.uid_orden = ? AND ho.her_estado = ? ORDER BY ho.uid_herramienta_orden`), orderID, string(status))
}

func (r *OrderMySQLRepository) listEquipment(ctx context.Context, query string, args ...any) ([]entities.EquipmentEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	out := []entities.EquipmentEntry{}
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEquipment(row rowScanner) (entities.EquipmentEntry, error) {
	var (
		e        entities.EquipmentEntry
		status   string
		subtotal decimal.NullDecimal
	)
	if err := row.Scan(&e.ID, &e.OrderID, &e.Name, &e.Brand, &e.Serial, &status, &subtotal); err != nil {
		return entities.EquipmentEntry{}, err
	}
	e.Status = entities.EquipmentStatus(status)
	e.Subtotal = subtotal
	return e, nil
}

func (r *OrderMySQLRepository) GetEquipment(ctx context.Context, equipmentID string) (entities.EquipmentEntry, error) {
	row := r.db.QueryRowContext(ctx, r.equipmentQuery(`ho.uid_herramienta_orden = ? LIMIT 1`), equipmentID)
	e, err := scanEquipment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.EquipmentEntry{}, nil
	}
	if err != nil {
		return entities.EquipmentEntry{}, fmt.Errorf("get equipment %s: %w", equipmentID, err)
	}
	return e, nil
}

func (r *OrderMySQLRepository) ListQuoteItems(ctx context.Context, orderID string) ([]entities.QuoteItem, error) {
	query := `SELECT uid_herramienta_orden, nombre, cantidad, precio FROM ` + r.schema.QuoteItem + ` WHERE uid_orden = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list quote items %s: %w", orderID, err)
	}
	defer rows.Close()

	out := []entities.QuoteItem{}
	for rows.Next() {
		var it entities.QuoteItem
		if err := rows.Scan(&it.EquipmentID, &it.Name, &it.Quantity, &it.Price); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// UpdateEquipmentStatus returns a zero entry when the equipment no longer exists.
func (r *OrderMySQLRepository) UpdateEquipmentStatus(ctx context.Context, change entities.StatusChange) (entities.StatusHistoryEntry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.StatusHistoryEntry{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	entries, err := applyStatusChanges(ctx, tx, r.schema, []entities.StatusChange{change}, r.now())
	if err != nil {
		return entities.StatusHistoryEntry{}, err
	}
	if len(entries) == 0 {
		return entities.StatusHistoryEntry{}, nil
	}
	if err := tx.Commit(); err != nil {
		return entities.StatusHistoryEntry{}, err
	}
	return entries[0], nil
}

// ListStatusHistory returns the history of one equipment entry, most recent first.
func (r *OrderMySQLRepository) ListStatusHistory(ctx context.Context, equipmentID string) ([]entities.StatusHistoryEntry, error) {
	query := `SELECT id, uid_herramienta_orden, estado, changed_at FROM ` + r.schema.StatusLog + `
WHERE uid_herramienta_orden = ? ORDER BY changed_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("list status history %s: %w", equipmentID, err)
	}
	defer rows.Close()

	out := []entities.StatusHistoryEntry{}
	for rows.Next() {
		var (
			h      entities.StatusHistoryEntry
			status string
		)
		if err := rows.Scan(&h.ID, &h.EquipmentID, &status, &h.ChangedAt); err != nil {
			return nil, err
		}
		h.Status = entities.EquipmentStatus(status)
		out = append(out, h)
	}
	return out, rows.Err()
}
