package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"testing"
	"time"

	"su_herramienta/internal/adapter/http/handlers/mocks"
	"su_herramienta/internal/domain/entities"
	"su_herramienta/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newEquipmentRouter(t *testing.T) (*gin.Engine, *mocks.MockIEquipmentUseCase) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEquipmentUseCase(ctrl)
	h := NewEquipmentHandler(uc)

	r := gin.New()
	r.PATCH("/v1/equipment-order/:equipmentOrderId/status", h.UpdateStatus)
	r.GET("/v1/equipment-order/:equipmentOrderId/history", h.ListHistory)
	return r, uc
}

func TestEquipmentHandler_UpdateStatus(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newEquipmentRouter(t)
		w := serve(r, http.MethodPatch, "/v1/equipment-order/11/status", bytes.NewBufferString("{"), "application/json")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		r, _ := newEquipmentRouter(t)
		w := serve(r, http.MethodPatch, "/v1/equipment-order/11/status", bytes.NewBufferString(`{"status":"lista"}`), "application/json")
		if w.Code != http.StatusBadRequest || errorCode(t, w) != "INVALID_STATUS" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		r, uc := newEquipmentRouter(t)
		uc.EXPECT().UpdateStatus(gomock.Any(), "99", entities.EquipmentStatusRepaired).Return(entities.StatusHistoryEntry{}, usecase.ErrEquipmentNotFound)

		w := serve(r, http.MethodPatch, "/v1/equipment-order/99/status", bytes.NewBufferString(`{"status":"reparada"}`), "application/json")

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newEquipmentRouter(t)
		changed := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
		uc.EXPECT().UpdateStatus(gomock.Any(), "11", entities.EquipmentStatusDelivered).Return(entities.StatusHistoryEntry{
			ID: 5, EquipmentID: "11", Status: entities.EquipmentStatusDelivered, ChangedAt: changed,
		}, nil)

		w := serve(r, http.MethodPatch, "/v1/equipment-order/11/status", bytes.NewBufferString(`{"status":"delivered"}`), "application/json")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		want := `{"id":5,"equipment_order_id":"11","status":"entregada","changed_at":"2026-03-10T15:00:00Z"}`
		if w.Body.String() != want {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})
}

func TestEquipmentHandler_ListHistory(t *testing.T) {
	t.Run("internal error", func(t *testing.T) {
		r, uc := newEquipmentRouter(t)
		uc.EXPECT().ListHistory(gomock.Any(), "11").Return(nil, errors.New("db down"))

		w := serve(r, http.MethodGet, "/v1/equipment-order/11/history", nil, "")

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("empty history is a list", func(t *testing.T) {
		r, uc := newEquipmentRouter(t)
		uc.EXPECT().ListHistory(gomock.Any(), "11").Return([]entities.StatusHistoryEntry{}, nil)

		w := serve(r, http.MethodGet, "/v1/equipment-order/11/history", nil, "")

		if w.Code != http.StatusOK || w.Body.String() != `[]` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
