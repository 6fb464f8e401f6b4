package entities

import (
	"testing"
	"time"
)

func TestEquipmentStatus_Valid(t *testing.T) {
	for _, s := range EquipmentStatuses() {
		if !s.Valid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if EquipmentStatus("authorized").Valid() {
		t.Fatalf("english spelling must not be accepted")
	}
	if EquipmentStatus("").Valid() {
		t.Fatalf("empty status must not be valid")
	}
}

func TestEquipmentEntry_DisplayName(t *testing.T) {
	cases := map[string]EquipmentEntry{
		"Taladro Bosch": {Name: "Taladro", Brand: "Bosch"},
		"Taladro":       {Name: "Taladro", Brand: "  "},
		"Bosch":         {Brand: "Bosch"},
		"":              {},
	}
	for want, e := range cases {
		if got := e.DisplayName(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestOrder_DisplayNumber(t *testing.T) {
	if got := (Order{ID: "ord-1", Sequence: "1042"}).DisplayNumber(); got != "1042" {
		t.Fatalf("expected sequence, got %q", got)
	}
	if got := (Order{ID: "ord-1"}).DisplayNumber(); got != "ord-1" {
		t.Fatalf("expected id fallback, got %q", got)
	}
}

func TestPendingAuthorization_Expired(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	p := PendingAuthorization{CreatedAt: now.Add(-2 * time.Hour)}

	if p.Expired(0, now) {
		t.Fatalf("zero ttl never expires")
	}
	if p.Expired(3*time.Hour, now) {
		t.Fatalf("expected fresh record")
	}
	if !p.Expired(time.Hour, now) {
		t.Fatalf("expected expired record")
	}
	if (PendingAuthorization{}).Expired(time.Hour, now) {
		t.Fatalf("record without timestamp never expires")
	}
}
