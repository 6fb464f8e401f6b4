package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"su_herramienta/internal/domain/entities"
	"su_herramienta/internal/usecase/interfaces"
)

var (
	ErrInvalidEquipmentID = errors.New("invalid equipment id")
	ErrInvalidStatus      = errors.New("invalid equipment status")
	ErrEquipmentNotFound  = errors.New("equipment not found")
)

// IEquipmentUseCase exposes manual status changes made by the shop staff.
type IEquipmentUseCase interface {
	UpdateStatus(ctx context.Context, equipmentID string, status entities.EquipmentStatus) (entities.StatusHistoryEntry, error)
	ListHistory(ctx context.Context, equipmentID string) ([]entities.StatusHistoryEntry, error)
}

type EquipmentUseCase struct {
	orders interfaces.IOrderRepository
}

var _ IEquipmentUseCase = (*EquipmentUseCase)(nil)

func NewEquipmentUseCase(orders interfaces.IOrderRepository) *EquipmentUseCase {
	return &EquipmentUseCase{orders: orders}
}

func (u *EquipmentUseCase) UpdateStatus(ctx context.Context, equipmentID string, status entities.EquipmentStatus) (entities.StatusHistoryEntry, error) {
	equipmentID = strings.TrimSpace(equipmentID)
	if equipmentID == "" {
		return entities.StatusHistoryEntry{}, ErrInvalidEquipmentID
	}
	if !status.Valid() {
		return entities.StatusHistoryEntry{}, ErrInvalidStatus
	}

	e, err := u.orders.GetEquipment(ctx, equipmentID)
	if err != nil {
		return entities.StatusHistoryEntry{}, err
	}
	if e.ID == "" {
		return entities.StatusHistoryEntry{}, ErrEquipmentNotFound
	}

	entry, err := u.orders.UpdateEquipmentStatus(ctx, entities.StatusChange{EquipmentID: e.ID, Status: status})
	if err != nil {
		return entities.StatusHistoryEntry{}, err
	}
	if entry.EquipmentID == "" {
		return entities.StatusHistoryEntry{}, ErrEquipmentNotFound
	}
	log.Printf("[equipment][usecase] status changed equipment_id=%s from=%s to=%s", e.ID, e.Status, status)
	return entry, nil
}

func (u *EquipmentUseCase) ListHistory(ctx context.Context, equipmentID string) ([]entities.StatusHistoryEntry, error) {
	equipmentID = strings.TrimSpace(equipmentID)
	if equipmentID == "" {
		return nil, ErrInvalidEquipmentID
	}
	e, err := u.orders.GetEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	if e.ID == "" {
		return nil, ErrEquipmentNotFound
	}
	return u.orders.ListStatusHistory(ctx, e.ID)
}
