package interfaces

import (
	"context"
	"su_herramienta/internal/domain/entities"
)

// IOrderRepository abstracts the MySQL tables owned by the order intake
// (orders, clients, equipment, quotes and the equipment status log).
//
// Lookups that find nothing return a zero value and a nil error.
type IOrderRepository interface {
	GetOrder(ctx context.Context, orderID string) (entities.Order, error)
	GetQuoteHeader(ctx context.Context, orderID string) (entities.QuoteHeader, error)
	MarkQuoteSent(ctx context.Context, orderID string) error
	// ListEquipment returns the equipment of the order ordered by id, with the quoted subtotal.
	ListEquipment(ctx context.Context, orderID string) ([]entities.EquipmentEntry, error)
	ListEquipmentByStatus(ctx context.Context, orderID string, status entities.EquipmentStatus) ([]entities.EquipmentEntry, error)
	ListQuoteItems(ctx context.Context, orderID string) ([]entities.QuoteItem, error)
	GetEquipment(ctx context.Context, equipmentID string) (entities.EquipmentEntry, error)
	// UpdateEquipmentStatus sets the status and appends a history row in one transaction.
	UpdateEquipmentStatus(ctx context.Context, change entities.StatusChange) (entities.StatusHistoryEntry, error)
	ListStatusHistory(ctx context.Context, equipmentID string) ([]entities.StatusHistoryEntry, error)
}
