package request

import (
	"errors"
	"strings"
	"su_herramienta/internal/domain/entities"
)

var ErrInvalidEquipmentStatus = errors.New("invalid equipment status")

// statusAliases accepts the English names next to the stored Spanish values.
var statusAliases = map[string]entities.EquipmentStatus{
	"pending_review": entities.EquipmentStatusPendingReview,
	"reviewed":       entities.EquipmentStatusReviewed,
	"quoted":         entities.EquipmentStatusQuoted,
	"authorized":     entities.EquipmentStatusAuthorized,
	"not_authorized": entities.EquipmentStatusNotAuthorized,
	"repaired":       entities.EquipmentStatusRepaired,
	"delivered":      entities.EquipmentStatusDelivered,
}

type UpdateEquipmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateEquipmentStatusRequest) ResolveStatus() (entities.EquipmentStatus, error) {
	return ParseEquipmentStatus(r.Status)
}

// ParseEquipmentStatus accepts a stored value or its English alias, case insensitive.
func ParseEquipmentStatus(raw string) (entities.EquipmentStatus, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if s, ok := statusAliases[v]; ok {
		return s, nil
	}
	s := entities.EquipmentStatus(v)
	if !s.Valid() {
		return "", ErrInvalidEquipmentStatus
	}
	return s, nil
}
