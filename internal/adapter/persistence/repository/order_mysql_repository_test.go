package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"su_herramienta/internal/domain/entities"

	"github.com/DATA-DOG/go-sqlmock"
)

var fixedNow = time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)

func newOrderRepo(t *testing.T) (*OrderMySQLRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	repo := NewOrderMySQLRepository(db, DefaultSchema())
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

var orderColumns = []string{"uid_orden", "ord_consecutivo", "ord_estado", "cli_razon_social", "cli_telefono"}

func TestOrderMySQLRepository_GetOrder(t *testing.T) {
	byUID := regexp.QuoteMeta("WHERE o.uid_orden = ?")
	bySequence := regexp.QuoteMeta("WHERE o.ord_consecutivo = ?")

	t.Run("found by uid", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectQuery(byUID).WithArgs("ord-1").
			WillReturnRows(sqlmock.NewRows(orderColumns).AddRow("ord-1", "1050", "abierta", "Ferretería Norte", "3001234567"))

		o, err := repo.GetOrder(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "ord-1" || o.Sequence != "1050" || o.ClientPhone != "3001234567" {
			t.Fatalf("unexpected order: %+v", o)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("falls back to sequence", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectQuery(byUID).WithArgs("1050").WillReturnRows(sqlmock.NewRows(orderColumns))
		mock.ExpectQuery(bySequence).WithArgs("1050").
			WillReturnRows(sqlmock.NewRows(orderColumns).AddRow("ord-1", "1050", "abierta", "", ""))

		o, err := repo.GetOrder(context.Background(), "1050")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "ord-1" {
			t.Fatalf("expected ord-1, got %+v", o)
		}
	})

	t.Run("not found returns zero value", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectQuery(byUID).WithArgs("x").WillReturnRows(sqlmock.NewRows(orderColumns))
		mock.ExpectQuery(bySequence).WithArgs("x").WillReturnRows(sqlmock.NewRows(orderColumns))

		o, err := repo.GetOrder(context.Background(), "x")
		if err != nil || o.ID != "" {
			t.Fatalf("expected zero value, got %+v err=%v", o, err)
		}
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectQuery(byUID).WithArgs("ord-1").WillReturnError(errors.New("boom"))

		if _, err := repo.GetOrder(context.Background(), "ord-1"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestOrderMySQLRepository_GetQuoteHeader(t *testing.T) {
	cols := []string{"uid_orden", "subtotal", "iva", "total", "mensaje_whatsapp", "whatsapp_enviado", "whatsapp_enviado_at"}
	query := regexp.QuoteMeta("FROM b2c_cotizacion_orden WHERE uid_orden = ?")

	t.Run("found", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectQuery(query).WithArgs("ord-1").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("ord-1", "100000.00", "19000.00", "119000.00", "Cotización lista", int64(1), fixedNow))

		h, err := repo.GetQuoteHeader(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.Message != "Cotización lista" || !h.Sent || h.SentAt == nil || !h.SentAt.Equal(fixedNow) {
			t.Fatalf("unexpected header: %+v", h)
		}
		if h.Total.String() != "119000" {
			t.Fatalf("unexpected total %s", h.Total)
		}
	})

	t.Run("never sent", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectQuery(query).WithArgs("ord-1").
			WillReturnRows(sqlmock.NewRows(cols).AddRow("ord-1", "0", "0", "0", "", int64(0), nil))

		h, err := repo.GetQuoteHeader(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if h.Sent || h.SentAt != nil {
			t.Fatalf("expected unsent header, got %+v", h)
		}
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectQuery(query).WithArgs("ord-9").WillReturnRows(sqlmock.NewRows(cols))

		h, err := repo.GetQuoteHeader(context.Background(), "ord-9")
		if err != nil || h.OrderID != "" {
			t.Fatalf("expected zero value, got %+v err=%v", h, err)
		}
	})
}

func TestOrderMySQLRepository_MarkQuoteSent(t *testing.T) {
	repo, mock := newOrderRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE b2c_cotizacion_orden SET whatsapp_enviado = 1, whatsapp_enviado_at = ? WHERE uid_orden = ?")).
		WithArgs(fixedNow, "ord-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.MarkQuoteSent(context.Background(), "ord-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

var equipmentColumns = []string{"uid_herramienta_orden", "uid_orden", "her_nombre", "her_marca", "her_serial", "her_estado", "subtotal"}

func TestOrderMySQLRepository_ListEquipment(t *testing.T) {
	t.Run("all equipment with optional subtotal", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE ho.uid_orden = ? ORDER BY ho.uid_herramienta_orden")).
			WithArgs("ord-1").
			WillReturnRows(sqlmock.NewRows(equipmentColumns).
				AddRow("11", "ord-1", "Taladro", "Bosch", "SN1", "cotizada", "150000.00").
				AddRow("12", "ord-1", "Sierra", "Makita", "", "cotizada", nil))

		list, err := repo.ListEquipment(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(list))
		}
		if !list[0].Subtotal.Valid || list[0].Subtotal.Decimal.String() != "150000" {
			t.Fatalf("unexpected subtotal %+v", list[0].Subtotal)
		}
		if list[1].Subtotal.Valid {
			t.Fatalf("expected null subtotal, got %+v", list[1].Subtotal)
		}
		if list[1].Status != entities.EquipmentStatusQuoted {
			t.Fatalf("unexpected status %q", list[1].Status)
		}
	})

	t.Run("by status", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("AND ho.her_estado = ?")).
			WithArgs("ord-1", "autorizada").
			WillReturnRows(sqlmock.NewRows(equipmentColumns))

		list, err := repo.ListEquipmentByStatus(context.Background(), "ord-1", entities.EquipmentStatusAuthorized)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list == nil || len(list) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", list)
		}
	})
}

func TestOrderMySQLRepository_GetEquipment(t *testing.T) {
	query := regexp.QuoteMeta("WHERE ho.uid_herramienta_orden = ?")

	t.Run("found", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectQuery(query).WithArgs("11").
			WillReturnRows(sqlmock.NewRows(equipmentColumns).AddRow("11", "ord-1", "Taladro", "Bosch", "SN1", "revisada", nil))

		e, err := repo.GetEquipment(context.Background(), "11")
		if err != nil || e.ID != "11" || e.Status != entities.EquipmentStatusReviewed {
			t.Fatalf("unexpected result %+v err=%v", e, err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectQuery(query).WithArgs("99").WillReturnRows(sqlmock.NewRows(equipmentColumns))

		e, err := repo.GetEquipment(context.Background(), "99")
		if err != nil || e.ID != "" {
			t.Fatalf("expected zero value, got %+v err=%v", e, err)
		}
	})
}

func TestOrderMySQLRepository_ListQuoteItems(t *testing.T) {
	repo, mock := newOrderRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM b2c_cotizacion_item WHERE uid_orden = ? ORDER BY id")).
		WithArgs("ord-1").
		WillReturnRows(sqlmock.NewRows([]string{"uid_herramienta_orden", "nombre", "cantidad", "precio"}).
			AddRow("11", "Carbones", int64(2), "12000.00").
			AddRow("11", "Rodamiento", int64(1), "8000.00"))

	items, err := repo.ListQuoteItems(context.Background(), "ord-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Carbones" || items[0].Quantity != 2 {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestOrderMySQLRepository_UpdateEquipmentStatus(t *testing.T) {
	update := regexp.QuoteMeta("UPDATE b2c_herramienta_orden SET her_estado = ? WHERE uid_herramienta_orden = ?")
	insert := regexp.QuoteMeta("INSERT INTO b2c_herramienta_status_log (uid_herramienta_orden, estado, changed_at) VALUES (?, ?, ?)")
	change := entities.StatusChange{EquipmentID: "11", Status: entities.EquipmentStatusRepaired}

	t.Run("commits status and history", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(update).WithArgs("reparada", "11").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insert).WithArgs("11", "reparada", fixedNow).WillReturnResult(sqlmock.NewResult(42, 1))
		mock.ExpectCommit()

		entry, err := repo.UpdateEquipmentStatus(context.Background(), change)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.ID != 42 || entry.Status != entities.EquipmentStatusRepaired || !entry.ChangedAt.Equal(fixedNow) {
			t.Fatalf("unexpected entry %+v", entry)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("rolls back when history insert fails", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(update).WithArgs("reparada", "11").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insert).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		if _, err := repo.UpdateEquipmentStatus(context.Background(), change); err == nil {
			t.Fatal("expected error")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("missing equipment gets no history", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(update).WithArgs("reparada", "11").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		entry, err := repo.UpdateEquipmentStatus(context.Background(), change)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.EquipmentID != "" {
			t.Fatalf("expected zero entry, got %+v", entry)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("history id error rolls back", func(t *testing.T) {
		repo, mock := newOrderRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(update).WithArgs("reparada", "11").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insert).WillReturnResult(sqlmock.NewErrorResult(errors.New("no insert id")))
		mock.ExpectRollback()

		if _, err := repo.UpdateEquipmentStatus(context.Background(), change); err == nil {
			t.Fatal("expected error")
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatal(err)
		}
	})
}

func TestOrderMySQLRepository_ListStatusHistory(t *testing.T) {
	repo, mock := newOrderRepo(t)
	earlier := fixedNow.Add(-time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY changed_at DESC, id DESC")).
		WithArgs("11").
		WillReturnRows(sqlmock.NewRows([]string{"id", "uid_herramienta_orden", "estado", "changed_at"}).
			AddRow(int64(2), "11", "autorizada", fixedNow).
			AddRow(int64(1), "11", "cotizada", earlier))

	history, err := repo.ListStatusHistory(context.Background(), "11")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 2 || history[0].Status != entities.EquipmentStatusAuthorized || history[1].ID != 1 {
		t.Fatalf("unexpected history %+v", history)
	}
}
