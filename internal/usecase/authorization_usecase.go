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
	ErrQuoteMessageMissing          = errors.New("quote message not generated")
	ErrInvalidPhone                 = errors.New("invalid phone")
	ErrPendingAuthorizationNotFound = errors.New("pending authorization not found")
	ErrMessageLogDisabled           = errors.New("message log disabled")
)

// IAuthorizationUseCase drives the WhatsApp quote authorization dialogue.
//
// Dialogue per phone:
//   - RequestAuthorization sends the quote and leaves the phone awaiting a choice (1-4)
//   - HandleInbound consumes the client's replies until the order is resolved
type IAuthorizationUseCase interface {
	RequestAuthorization(ctx context.Context, orderID string) (int, error)
	HandleInbound(ctx context.Context, msg entities.InboundMessage) error
	GetPending(ctx context.Context, rawPhone string) (entities.PendingAuthorization, error)
	ListConversation(ctx context.Context, rawPhone string, limit int32) ([]entities.ConversationMessage, error)
	SweepExpired(ctx context.Context) (int64, error)
}

// partsNotifier is the slice of INotificationUseCase used after an authorization.
type partsNotifier interface {
	NotifyParts(ctx context.Context, orderID string) (int, error)
}

type AuthorizationConfig struct {
	// AdvisorNumber is shown to clients who ask for an advisor (option 4).
	AdvisorNumber string
	SendTimeout   time.Duration
	// PendingTTL expires pending authorizations; zero keeps them until resolved.
	PendingTTL time.Duration
}

type AuthorizationUseCase struct {
	orders     interfaces.IOrderRepository
	pending    interfaces.IPendingAuthorizationRepository
	transport  interfaces.IMessagingTransport
	messageLog interfaces.IMessageLogRepository
	parts      partsNotifier
	out        outbound
	cfg        AuthorizationConfig
	locks      *phoneLocks
	now        func() time.Time
}

var _ IAuthorizationUseCase = (*AuthorizationUseCase)(nil)

// NewAuthorizationUseCase builds the use case. messageLog may be nil to disable auditing.
func NewAuthorizationUseCase(
	orders interfaces.IOrderRepository,
	pending interfaces.IPendingAuthorizationRepository,
	transport interfaces.IMessagingTransport,
	messageLog interfaces.IMessageLogRepository,
	parts partsNotifier,
	cfg AuthorizationConfig,
) *AuthorizationUseCase {
	return &AuthorizationUseCase{
		orders:     orders,
		pending:    pending,
		transport:  transport,
		messageLog: messageLog,
		parts:      parts,
		out:        outbound{transport: transport, messageLog: messageLog, timeout: cfg.SendTimeout},
		cfg:        cfg,
		locks:      newPhoneLocks(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// RequestAuthorization sends the stored quote message (plus the reply options)
// to every mobile number of the client and leaves each phone awaiting a choice.
// A phone already in a dialogue for another order is taken over by this one.
// It returns the number of destinations.
func (u *AuthorizationUseCase) RequestAuthorization(ctx context.Context, orderID string) (int, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return 0, ErrInvalidOrderID
	}
	if !u.transport.IsReady() {
		return 0, ErrTransportNotReady
	}

	order, err := u.orders.GetOrder(ctx, orderID)
	if err != nil {
		return 0, err
	}
	if order.ID == "" {
		return 0, ErrOrderNotFound
	}

	quote, err := u.orders.GetQuoteHeader(ctx, order.ID)
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(quote.Message) == "" {
		return 0, ErrQuoteMessageMissing
	}

	destinations := phone.ParseColombianPhones(order.ClientPhone)
	if len(destinations) == 0 {
		return 0, ErrNoValidDestination
	}

	text := buildQuoteMessage(quote.Message)
	for _, d := range destinations {
		if err := u.requestOne(ctx, order.ID, d, text); err != nil {
			return 0, err
		}
	}

	if err := u.orders.MarkQuoteSent(ctx, order.ID); err != nil {
		return 0, err
	}
	log.Printf("[auth][usecase] quote sent order_id=%s destinations=%d", order.ID, len(destinations))
	return len(destinations), nil
}

// requestOne holds the phone lock across send and upsert so a fast reply is
// handled against the new record.
func (u *AuthorizationUseCase) requestOne(ctx context.Context, orderID, destination, text string) error {
	ph := phone.FromJID(destination)
	unlock := u.locks.Lock(ph)
	defer unlock()

	if err := u.out.sendText(ctx, destination, orderID, text); err != nil {
		return err
	}
	return u.pending.Upsert(ctx, entities.PendingAuthorization{
		OrderID:   orderID,
		Phone:     ph,
		State:     entities.AuthorizationStateAwaitingChoice,
		CreatedAt: u.now(),
	})
}

// HandleInbound applies one client reply. Messages from phones without an
// active dialogue are ignored. Storage errors are returned and nothing is
// committed; reply send failures are only logged.
func (u *AuthorizationUseCase) HandleInbound(ctx context.Context, msg entities.InboundMessage) error {
	if phone.IsGroupJID(msg.SenderID) {
		return nil
	}
	body := strings.TrimSpace(msg.Body)
	if body == "" {
		return nil
	}
	ph := msg.Phone
	if ph == "" {
		ph = phone.Normalize(msg.SenderID)
	}
	if ph == "" {
		log.Printf("[auth][usecase] ignoring message without phone sender=%s", msg.SenderID)
		return nil
	}

	unlock := u.locks.Lock(ph)
	defer unlock()

	p, err := u.pending.GetByPhone(ctx, ph)
	if err != nil {
		return err
	}
	if p.OrderID == "" {
		return nil
	}
	if p.Expired(u.cfg.PendingTTL, u.now()) {
		log.Printf("[auth][usecase] ignoring expired pending authorization phone=%s order_id=%s", ph, p.OrderID)
		return nil
	}

	u.out.record(ctx, ph, p.OrderID, entities.MessageDirectionIn, body)

	replyTo := msg.SenderID
	if replyTo == "" {
		replyTo = phone.ToJID(ph)
	}

	switch p.State {
	case entities.AuthorizationStateAwaitingChoice:
		return u.handleChoice(ctx, p, body, replyTo)
	case entities.AuthorizationStateAwaitingEquipmentSelection:
		return u.handleSelection(ctx, p, body, replyTo)
	default:
		log.Printf("[auth][usecase] unknown pending state phone=%s state=%s", ph, p.State)
		return nil
	}
}

func (u *AuthorizationUseCase) handleChoice(ctx context.Context, p entities.PendingAuthorization, body, replyTo string) error {
	switch body {
	case "1":
		equipment, err := u.orders.ListEquipment(ctx, p.OrderID)
		if err != nil {
			return err
		}
		committed, err := u.resolve(ctx, p, allTo(equipment, entities.EquipmentStatusAuthorized))
		if err != nil || !committed {
			return err
		}
		u.notifyParts(ctx, p.OrderID)
		u.reply(ctx, replyTo, p.OrderID, msgFullAuthorization)

	case "2":
		equipment, err := u.orders.ListEquipment(ctx, p.OrderID)
		if err != nil {
			return err
		}
		committed, err := u.resolve(ctx, p, allTo(equipment, entities.EquipmentStatusNotAuthorized))
		if err != nil || !committed {
			return err
		}
		u.reply(ctx, replyTo, p.OrderID, msgRejection)

	case "3":
		equipment, err := u.orders.ListEquipment(ctx, p.OrderID)
		if err != nil {
			return err
		}
		return u.offerSelection(ctx, p, equipment, replyTo)

	case "4":
		committed, err := u.resolve(ctx, p, nil)
		if err != nil || !committed {
			return err
		}
		u.reply(ctx, replyTo, p.OrderID, buildAdvisorReply(u.cfg.AdvisorNumber))

	default:
		u.reply(ctx, replyTo, p.OrderID, msgInvalidOption)
	}
	return nil
}

// offerSelection sends the numbered list and stores the ids in the order shown.
// The state only advances once the list reached the client.
func (u *AuthorizationUseCase) offerSelection(ctx context.Context, p entities.PendingAuthorization, equipment []entities.EquipmentEntry, replyTo string) error {
	if len(equipment) == 0 {
		u.reply(ctx, replyTo, p.OrderID, msgNoEquipmentToPick)
		return nil
	}
	if !u.reply(ctx, replyTo, p.OrderID, buildSelectionList(equipment)) {
		return nil
	}
	ids := make([]string, 0, len(equipment))
	for _, e := range equipment {
		ids = append(ids, e.ID)
	}
	err := u.pending.AwaitEquipmentSelection(ctx, p, ids)
	if errors.Is(err, interfaces.ErrPendingAuthorizationGone) {
		log.Printf("[auth][usecase] pending authorization changed concurrently phone=%s order_id=%s", p.Phone, p.OrderID)
		return nil
	}
	return err
}

// handleSelection resolves the numbers against the list shown to the client.
// Equipment removed since then is skipped; equipment added since then is left untouched.
func (u *AuthorizationUseCase) handleSelection(ctx context.Context, p entities.PendingAuthorization, body, replyTo string) error {
	current, err := u.orders.ListEquipment(ctx, p.OrderID)
	if err != nil {
		return err
	}
	byID := make(map[string]entities.EquipmentEntry, len(current))
	for _, e := range current {
		byID[e.ID] = e
	}

	shown := p.EquipmentIDs
	if len(shown) == 0 {
		shown = make([]string, 0, len(current))
		for _, e := range current {
			shown = append(shown, e.ID)
		}
	}

	stillListed := 0
	for _, id := range shown {
		if _, ok := byID[id]; ok {
			stillListed++
		}
	}
	if stillListed == 0 {
		log.Printf("[auth][usecase] every listed equipment was removed, sending a fresh list phone=%s order_id=%s", p.Phone, p.OrderID)
		return u.offerSelection(ctx, p, current, replyTo)
	}

	picked := parseSelection(body, len(shown))
	authorized := make([]string, 0, len(picked))
	for _, n := range picked {
		if e, ok := byID[shown[n-1]]; ok {
			authorized = append(authorized, e.DisplayName())
		}
	}
	// Picks that only point at removed equipment count as no selection.
	if len(authorized) == 0 {
		u.reply(ctx, replyTo, p.OrderID, buildInvalidSelection(len(shown)))
		return nil
	}
	selected := make(map[int]bool, len(picked))
	for _, n := range picked {
		selected[n] = true
	}

	changes := make([]entities.StatusChange, 0, len(shown))
	notAuthorized := []string{}
	inList := make(map[string]bool, len(shown))
	for i, id := range shown {
		inList[id] = true
		e, ok := byID[id]
		if !ok {
			log.Printf("[auth][usecase] equipment removed after list was sent order_id=%s equipment_id=%s", p.OrderID, id)
			continue
		}
		status := entities.EquipmentStatusNotAuthorized
		if selected[i+1] {
			status = entities.EquipmentStatusAuthorized
		} else {
			notAuthorized = append(notAuthorized, e.DisplayName())
		}
		changes = append(changes, entities.StatusChange{EquipmentID: id, Status: status})
	}
	for _, e := range current {
		if !inList[e.ID] {
			log.Printf("[auth][usecase] equipment added after list was sent, left untouched order_id=%s equipment_id=%s", p.OrderID, e.ID)
		}
	}

	committed, err := u.resolve(ctx, p, changes)
	if err != nil || !committed {
		return err
	}
	u.notifyParts(ctx, p.OrderID)
	u.reply(ctx, replyTo, p.OrderID, buildPartialConfirmation(authorized, notAuthorized))
	return nil
}

// resolve commits the changes and removes the pending record. It reports
// false when the record was already consumed, which callers treat as a
// duplicate delivery.
func (u *AuthorizationUseCase) resolve(ctx context.Context, p entities.PendingAuthorization, changes []entities.StatusChange) (bool, error) {
	err := u.pending.Resolve(ctx, p, changes)
	if errors.Is(err, interfaces.ErrPendingAuthorizationGone) {
		log.Printf("[auth][usecase] pending authorization already resolved phone=%s order_id=%s", p.Phone, p.OrderID)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	log.Printf("[auth][usecase] authorization resolved phone=%s order_id=%s changes=%d", p.Phone, p.OrderID, len(changes))
	return true, nil
}

func (u *AuthorizationUseCase) notifyParts(ctx context.Context, orderID string) {
	if u.parts == nil {
		return
	}
	if _, err := u.parts.NotifyParts(ctx, orderID); err != nil {
		log.Printf("[auth][usecase] parts notice skipped order_id=%s err=%v", orderID, err)
	}
}

// reply sends a reactive message to the client; failures are logged and reported as false.
func (u *AuthorizationUseCase) reply(ctx context.Context, to, orderID, text string) bool {
	if !u.transport.IsReady() {
		log.Printf("[auth][usecase] reply dropped, transport not ready to=%s order_id=%s", to, orderID)
		return false
	}
	if err := u.out.sendText(ctx, to, orderID, text); err != nil {
		log.Printf("[auth][usecase] reply failed to=%s order_id=%s err=%v", to, orderID, err)
		return false
	}
	return true
}

func (u *AuthorizationUseCase) GetPending(ctx context.Context, rawPhone string) (entities.PendingAuthorization, error) {
	ph := phone.Normalize(rawPhone)
	if ph == "" {
		return entities.PendingAuthorization{}, ErrInvalidPhone
	}
	p, err := u.pending.GetByPhone(ctx, ph)
	if err != nil {
		return entities.PendingAuthorization{}, err
	}
	if p.OrderID == "" || p.Expired(u.cfg.PendingTTL, u.now()) {
		return entities.PendingAuthorization{}, ErrPendingAuthorizationNotFound
	}
	return p, nil
}

func (u *AuthorizationUseCase) ListConversation(ctx context.Context, rawPhone string, limit int32) ([]entities.ConversationMessage, error) {
	if u.messageLog == nil {
		return nil, ErrMessageLogDisabled
	}
	ph := phone.Normalize(rawPhone)
	if ph == "" {
		return nil, ErrInvalidPhone
	}
	return u.messageLog.ListByPhone(ctx, ph, limit)
}

// SweepExpired deletes pending authorizations older than the configured TTL.
func (u *AuthorizationUseCase) SweepExpired(ctx context.Context) (int64, error) {
	if u.cfg.PendingTTL <= 0 {
		return 0, nil
	}
	n, err := u.pending.DeleteExpired(ctx, u.now().Add(-u.cfg.PendingTTL))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		log.Printf("[auth][usecase] expired pending authorizations removed count=%d", n)
	}
	return n, nil
}

func allTo(equipment []entities.EquipmentEntry, status entities.EquipmentStatus) []entities.StatusChange {
	changes := make([]entities.StatusChange, 0, len(equipment))
	for _, e := range equipment {
		changes = append(changes, entities.StatusChange{EquipmentID: e.ID, Status: status})
	}
	return changes
}
