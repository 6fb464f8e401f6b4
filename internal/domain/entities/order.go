package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a service intake. The authorization flow only reads it.
//
// ClientPhone is the raw phone field of the client record; it may hold several
// numbers separated by arbitrary text.
type Order struct {
	ID          string
	Sequence    string
	Status      string
	ClientName  string
	ClientPhone string
}

// DisplayNumber is the number shown to people: the sequence when present,
// otherwise the internal id.
func (o Order) DisplayNumber() string {
	if o.Sequence != "" {
		return o.Sequence
	}
	return o.ID
}

// QuoteHeader is the per-order quote summary.
type QuoteHeader struct {
	OrderID  string
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	Message  string
	Sent     bool
	SentAt   *time.Time
}

// QuoteItem is a spare part line quoted for one equipment entry.
type QuoteItem struct {
	EquipmentID string
	Name        string
	Quantity    int
	Price       decimal.Decimal
}
