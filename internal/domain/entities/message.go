package entities

import "time"

// InboundMessage is a chat message received from an individual contact.
//
// SenderID is the chat identifier to reply to; Phone is the sender's number
// without suffix (57XXXXXXXXXX) when it could be resolved.
type InboundMessage struct {
	SenderID   string
	Phone      string
	Body       string
	ReceivedAt time.Time
}

// Document is a media attachment sent as a WhatsApp document.
type Document struct {
	FileName string
	MimeType string
	Caption  string
	Data     []byte
}

type MessageDirection string

const (
	MessageDirectionIn  MessageDirection = "in"
	MessageDirectionOut MessageDirection = "out"
)

// ConversationMessage is an audit entry of the authorization dialogue.
//
// Storage model (DynamoDB):
//   - PK: phone
//   - SK: sk (created_at#id)
type ConversationMessage struct {
	ID        string
	Phone     string
	Direction MessageDirection
	OrderID   string
	Body      string
	CreatedAt time.Time
}
