package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"su_herramienta/internal/domain/entities"
	"su_herramienta/internal/domain/phone"
	"su_herramienta/internal/usecase/interfaces"
	"time"
)

var (
	ErrInvalidOrderID           = errors.New("invalid order id")
	ErrOrderNotFound            = errors.New("order not found")
	ErrNoEquipmentForNotice     = errors.New("no equipment in the requested status")
	ErrNoValidDestination       = errors.New("client has no valid mobile number")
	ErrPartsNumberNotConfigured = errors.New("parts whatsapp number not configured")
	ErrEmptyMessage             = errors.New("message is empty")
	ErrInvalidDocument          = errors.New("invalid document")

	// ErrTransportNotReady aliases the transport sentinel so callers only need this package.
	ErrTransportNotReady = interfaces.ErrTransportNotReady
)

// INotificationUseCase exposes the outbound notifications of an order.
//
//   - parts department: consolidated list of authorized equipment and their parts
//   - client: ready for pickup, delivered, free text and documents (quote PDF)
type INotificationUseCase interface {
	IsTransportReady() bool
	ComposeEquipmentNotice(ctx context.Context, orderID string, status entities.EquipmentStatus) (string, int, error)
	NotifyParts(ctx context.Context, orderID string) (int, error)
	NotifyReady(ctx context.Context, orderID string) (NoticeResult, error)
	NotifyDelivered(ctx context.Context, orderID string) (NoticeResult, error)
	SendToClient(ctx context.Context, orderID, text string) (int, error)
	SendDocumentToClient(ctx context.Context, orderID string, doc entities.Document) (int, error)
}

// NoticeResult counts what a client notice covered.
type NoticeResult struct {
	Equipment    int
	Destinations int
}

type NotificationConfig struct {
	// PartsNumber is the parts department number, already normalized (57XXXXXXXXXX).
	PartsNumber string
	SendTimeout time.Duration
}

type NotificationUseCase struct {
	orders      interfaces.IOrderRepository
	transport   interfaces.IMessagingTransport
	out         outbound
	partsNumber string
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

// NewNotificationUseCase builds the use case. messageLog may be nil to disable auditing.
func NewNotificationUseCase(
	orders interfaces.IOrderRepository,
	transport interfaces.IMessagingTransport,
	messageLog interfaces.IMessageLogRepository,
	cfg NotificationConfig,
) *NotificationUseCase {
	return &NotificationUseCase{
		orders:      orders,
		transport:   transport,
		out:         outbound{transport: transport, messageLog: messageLog, timeout: cfg.SendTimeout},
		partsNumber: cfg.PartsNumber,
	}
}

func (u *NotificationUseCase) IsTransportReady() bool {
	return u.transport.IsReady()
}

// ComposeEquipmentNotice builds the parts notice for the equipment of the order
// currently in status. It never returns an empty notice: when nothing matches
// it fails with ErrNoEquipmentForNotice. The int result is the equipment count.
func (u *NotificationUseCase) ComposeEquipmentNotice(ctx context.Context, orderID string, status entities.EquipmentStatus) (string, int, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return "", 0, err
	}
	return u.composeParts(ctx, order, status)
}

func (u *NotificationUseCase) composeParts(ctx context.Context, order entities.Order, status entities.EquipmentStatus) (string, int, error) {
	equipment, err := u.orders.ListEquipmentByStatus(ctx, order.ID, status)
	if err != nil {
		return "", 0, err
	}
	if len(equipment) == 0 {
		return "", 0, ErrNoEquipmentForNotice
	}

	items, err := u.orders.ListQuoteItems(ctx, order.ID)
	if err != nil {
		return "", 0, err
	}
	byEquipment := make(map[string][]entities.QuoteItem, len(equipment))
	for _, it := range items {
		byEquipment[it.EquipmentID] = append(byEquipment[it.EquipmentID], it)
	}
	return buildPartsNotice(order, equipment, byEquipment), len(equipment), nil
}

// NotifyParts sends the authorized equipment and their parts to the parts department.
func (u *NotificationUseCase) NotifyParts(ctx context.Context, orderID string) (int, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if u.partsNumber == "" {
		return 0, ErrPartsNumberNotConfigured
	}
	if !u.transport.IsReady() {
		return 0, ErrTransportNotReady
	}

	text, count, err := u.composeParts(ctx, order, entities.EquipmentStatusAuthorized)
	if err != nil {
		return 0, err
	}
	if err := u.out.sendText(ctx, phone.ToJID(u.partsNumber), order.ID, text); err != nil {
		return 0, err
	}
	log.Printf("[notify][usecase] parts notice sent order_id=%s equipment=%d", order.ID, count)
	return count, nil
}

func (u *NotificationUseCase) NotifyReady(ctx context.Context, orderID string) (NoticeResult, error) {
	return u.notifyClient(ctx, orderID, entities.EquipmentStatusRepaired, buildReadyNotice)
}

func (u *NotificationUseCase) NotifyDelivered(ctx context.Context, orderID string) (NoticeResult, error) {
	return u.notifyClient(ctx, orderID, entities.EquipmentStatusDelivered, buildDeliveredNotice)
}

func (u *NotificationUseCase) notifyClient(
	ctx context.Context,
	orderID string,
	status entities.EquipmentStatus,
	build func(clientName string, equipment []entities.EquipmentEntry) string,
) (NoticeResult, error) {
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return NoticeResult{}, err
	}
	if !u.transport.IsReady() {
		return NoticeResult{}, ErrTransportNotReady
	}

	equipment, err := u.orders.ListEquipmentByStatus(ctx, order.ID, status)
	if err != nil {
		return NoticeResult{}, err
	}
	if len(equipment) == 0 {
		return NoticeResult{}, ErrNoEquipmentForNotice
	}

	destinations := phone.ParseColombianPhones(order.ClientPhone)
	if len(destinations) == 0 {
		return NoticeResult{}, ErrNoValidDestination
	}

	text := build(order.ClientName, equipment)
	for _, d := range destinations {
		if err := u.out.sendText(ctx, d, order.ID, text); err != nil {
			return NoticeResult{}, err
		}
	}
	log.Printf("[notify][usecase] client notice sent order_id=%s status=%s destinations=%d", order.ID, status, len(destinations))
	return NoticeResult{Equipment: len(equipment), Destinations: len(destinations)}, nil
}

// SendToClient sends free text to every mobile number of the order's client.
func (u *NotificationUseCase) SendToClient(ctx context.Context, orderID, text string) (int, error) {
	if strings.TrimSpace(text) == "" {
		return 0, ErrEmptyMessage
	}
	if !u.transport.IsReady() {
		return 0, ErrTransportNotReady
	}
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return 0, err
	}
	destinations := phone.ParseColombianPhones(order.ClientPhone)
	if len(destinations) == 0 {
		return 0, ErrNoValidDestination
	}
	for _, d := range destinations {
		if err := u.out.sendText(ctx, d, order.ID, text); err != nil {
			return 0, err
		}
	}
	return len(destinations), nil
}

func (u *NotificationUseCase) SendDocumentToClient(ctx context.Context, orderID string, doc entities.Document) (int, error) {
	if len(doc.Data) == 0 || strings.TrimSpace(doc.FileName) == "" {
		return 0, ErrInvalidDocument
	}
	if !u.transport.IsReady() {
		return 0, ErrTransportNotReady
	}
	order, err := u.loadOrder(ctx, orderID)
	if err != nil {
		return 0, err
	}
	destinations := phone.ParseColombianPhones(order.ClientPhone)
	if len(destinations) == 0 {
		return 0, ErrNoValidDestination
	}
	for _, d := range destinations {
		if err := u.out.sendDocument(ctx, d, order.ID, doc); err != nil {
			return 0, err
		}
	}
	return len(destinations), nil
}

func (u *NotificationUseCase) loadOrder(ctx context.Context, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	order, err := u.orders.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}
