package usecase

import (
	"context"
	"log"
	"su_herramienta/internal/domain/entities"
	"su_herramienta/internal/domain/phone"
	"su_herramienta/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
)

// outbound wraps the transport with the send timeout and the optional
// conversation audit log. Both use cases send through it.
type outbound struct {
	transport  interfaces.IMessagingTransport
	messageLog interfaces.IMessageLogRepository
	timeout    time.Duration
}

func (o outbound) sendText(ctx context.Context, destination, orderID, text string) error {
	sendCtx, cancel := o.withTimeout(ctx)
	defer cancel()
	if err := o.transport.SendText(sendCtx, destination, text); err != nil {
		return err
	}
	o.record(ctx, destination, orderID, entities.MessageDirectionOut, text)
	return nil
}

func (o outbound) sendDocument(ctx context.Context, destination, orderID string, doc entities.Document) error {
	sendCtx, cancel := o.withTimeout(ctx)
	defer cancel()
	if err := o.transport.SendDocument(sendCtx, destination, doc); err != nil {
		return err
	}
	o.record(ctx, destination, orderID, entities.MessageDirectionOut, "[documento] "+doc.FileName)
	return nil
}

func (o outbound) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if o.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, o.timeout)
}

// record appends to the audit log when it is enabled. Failures are only logged.
func (o outbound) record(ctx context.Context, destination, orderID string, dir entities.MessageDirection, body string) {
	if o.messageLog == nil {
		return
	}
	m := entities.ConversationMessage{
		ID:        uuid.NewString(),
		Phone:     phone.FromJID(destination),
		Direction: dir,
		OrderID:   orderID,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := o.messageLog.Create(ctx, m); err != nil {
		log.Printf("[wa][audit] failed to record message phone=%s direction=%s err=%v", m.Phone, dir, err)
	}
}
