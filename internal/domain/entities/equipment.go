package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EquipmentStatus is the repair lifecycle of a single tool inside an order.
//
// Values are persisted as-is in the equipment table (her_estado column), so they
// keep the shop's Spanish spelling.
type EquipmentStatus string

const (
	EquipmentStatusPendingReview EquipmentStatus = "pendiente_revision"
	EquipmentStatusReviewed      EquipmentStatus = "revisada"
	EquipmentStatusQuoted        EquipmentStatus = "cotizada"
	EquipmentStatusAuthorized    EquipmentStatus = "autorizada"
	EquipmentStatusNotAuthorized EquipmentStatus = "no_autorizada"
	EquipmentStatusRepaired      EquipmentStatus = "reparada"
	EquipmentStatusDelivered     EquipmentStatus = "entregada"
)

var equipmentStatuses = []EquipmentStatus{
	EquipmentStatusPendingReview,
	EquipmentStatusReviewed,
	EquipmentStatusQuoted,
	EquipmentStatusAuthorized,
	EquipmentStatusNotAuthorized,
	EquipmentStatusRepaired,
	EquipmentStatusDelivered,
}

// EquipmentStatuses returns every valid status in lifecycle order.
func EquipmentStatuses() []EquipmentStatus {
	out := make([]EquipmentStatus, len(equipmentStatuses))
	copy(out, equipmentStatuses)
	return out
}

func (s EquipmentStatus) Valid() bool {
	for _, v := range equipmentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// EquipmentEntry is one physical tool received within an order.
//
// Subtotal is the quoted price for the tool when a quote line exists.
type EquipmentEntry struct {
	ID       string
	OrderID  string
	Name     string
	Brand    string
	Serial   string
	Status   EquipmentStatus
	Subtotal decimal.NullDecimal
}

// DisplayName joins name and brand, skipping the empty ones.
func (e EquipmentEntry) DisplayName() string {
	parts := make([]string, 0, 2)
	for _, p := range []string{e.Name, e.Brand} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// StatusChange is a requested status mutation for one equipment entry.
type StatusChange struct {
	EquipmentID string
	Status      EquipmentStatus
}

// StatusHistoryEntry is an immutable row of the equipment status log.
type StatusHistoryEntry struct {
	ID          int64
	EquipmentID string
	Status      EquipmentStatus
	ChangedAt   time.Time
}
