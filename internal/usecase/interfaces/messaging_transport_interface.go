package interfaces

import (
	"context"
	"errors"
	"su_herramienta/internal/domain/entities"
)

var (
	ErrTransportNotReady       = errors.New("messaging transport not ready")
	ErrUnresolvableDestination = errors.New("destination is not a messaging account")
)

// IMessagingTransport abstracts the WhatsApp session.
//
// Destinations are phone numbers (57XXXXXXXXXX) or chat ids; resolving them to a
// deliverable account is the implementation's job.
type IMessagingTransport interface {
	IsReady() bool
	SendText(ctx context.Context, destination, text string) error
	SendDocument(ctx context.Context, destination string, doc entities.Document) error
	// Messages delivers inbound messages from individual contacts only.
	Messages() <-chan entities.InboundMessage
}
