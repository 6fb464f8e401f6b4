package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"su_herramienta/internal/domain/entities"
)

func TestFromPendingAuthorization(t *testing.T) {
	created := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	got := FromPendingAuthorization(entities.PendingAuthorization{
		ID:        7,
		OrderID:   "ord-1",
		Phone:     "573001234567",
		State:     entities.AuthorizationStateAwaitingChoice,
		CreatedAt: created,
	})

	b, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":7,"order_id":"ord-1","phone":"573001234567","state":"esperando_opcion","equipment_ids":[],"created_at":"2026-03-10T15:00:00Z"}`
	if string(b) != want {
		t.Fatalf("unexpected json\n got: %s\nwant: %s", b, want)
	}
}

func TestFromConversation(t *testing.T) {
	got := FromConversation("573001234567", []entities.ConversationMessage{
		{ID: "a", Direction: entities.MessageDirectionOut, OrderID: "ord-1", Body: "Cotización"},
		{ID: "b", Direction: entities.MessageDirectionIn, Body: "1"},
	})
	if len(got.Messages) != 2 || got.Messages[1].Direction != "in" {
		t.Fatalf("unexpected conversation %+v", got)
	}

	b, _ := json.Marshal(got.Messages[1])
	if strings.Contains(string(b), "order_id") {
		t.Fatalf("empty order_id should be omitted: %s", b)
	}

	empty, _ := json.Marshal(FromConversation("573001234567", nil))
	if !strings.Contains(string(empty), `"messages":[]`) {
		t.Fatalf("expected empty list, got %s", empty)
	}
}

func TestFromStatusHistory(t *testing.T) {
	got := FromStatusHistory([]entities.StatusHistoryEntry{
		{ID: 2, EquipmentID: "11", Status: entities.EquipmentStatusRepaired},
		{ID: 1, EquipmentID: "11", Status: entities.EquipmentStatusAuthorized},
	})
	if len(got) != 2 || got[0].Status != "reparada" || got[1].ID != 1 {
		t.Fatalf("unexpected history %+v", got)
	}
	if FromStatusHistory(nil) == nil {
		t.Fatal("expected non-nil slice")
	}
}
