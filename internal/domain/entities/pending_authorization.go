package entities

import "time"

// AuthorizationState is the conversation sub-state of a pending authorization.
type AuthorizationState string

const (
	AuthorizationStateAwaitingChoice             AuthorizationState = "esperando_opcion"
	AuthorizationStateAwaitingEquipmentSelection AuthorizationState = "esperando_maquinas"
)

// PendingAuthorization records an order awaiting the client's decision.
//
// Storage model (MySQL):
//   - PK: id (auto increment)
//   - UNIQUE: phone, so there is at most one active conversation per phone
//
// EquipmentIDs is the ordered list of equipment shown to the client in the
// numbered list. It is only set in the equipment selection state.
type PendingAuthorization struct {
	ID           int64
	OrderID      string
	Phone        string
	State        AuthorizationState
	EquipmentIDs []string
	CreatedAt    time.Time
}

// Expired reports whether the record is older than ttl. A non-positive ttl
// never expires.
func (p PendingAuthorization) Expired(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 || p.CreatedAt.IsZero() {
		return false
	}
	return now.Sub(p.CreatedAt) > ttl
}
