package response

import (
	"su_herramienta/internal/domain/entities"
	"time"
)

type StatusHistoryResponse struct {
	ID          int64     `json:"id"`
	EquipmentID string    `json:"equipment_order_id"`
	Status      string    `json:"status"`
	ChangedAt   time.Time `json:"changed_at"`
}

func FromStatusHistoryEntry(h entities.StatusHistoryEntry) StatusHistoryResponse {
	return StatusHistoryResponse{
		ID:          h.ID,
		EquipmentID: h.EquipmentID,
		Status:      string(h.Status),
		ChangedAt:   h.ChangedAt,
	}
}

func FromStatusHistory(entries []entities.StatusHistoryEntry) []StatusHistoryResponse {
	out := make([]StatusHistoryResponse, 0, len(entries))
	for _, h := range entries {
		out = append(out, FromStatusHistoryEntry(h))
	}
	return out
}
