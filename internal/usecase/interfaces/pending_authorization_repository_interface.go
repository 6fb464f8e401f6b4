package interfaces

import (
	"context"
	"errors"
	"su_herramienta/internal/domain/entities"
	"time"
)

// ErrPendingAuthorizationGone is returned when a pending authorization was
// deleted or changed by a concurrent handler before the caller could commit.
var ErrPendingAuthorizationGone = errors.New("pending authorization no longer active")

// IPendingAuthorizationRepository abstracts the per-phone authorization store.
type IPendingAuthorizationRepository interface {
	// Upsert inserts or overwrites the pending authorization of p.Phone.
	Upsert(ctx context.Context, p entities.PendingAuthorization) error
	// GetByPhone returns a zero value when the phone has no active record.
	GetByPhone(ctx context.Context, phone string) (entities.PendingAuthorization, error)
	// AwaitEquipmentSelection moves the record to the equipment selection state
	// storing the ids shown to the client. The record must still match p.
	AwaitEquipmentSelection(ctx context.Context, p entities.PendingAuthorization, equipmentIDs []string) error
	// Resolve applies the status changes, appends their history and deletes the
	// record in a single transaction. The record is locked and must still match p.
	Resolve(ctx context.Context, p entities.PendingAuthorization, changes []entities.StatusChange) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
