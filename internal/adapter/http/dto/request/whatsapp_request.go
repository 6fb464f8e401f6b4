package request

import (
	"errors"
	"strings"
)

var (
	ErrMissingOrderID = errors.New("order_id is required")
	ErrMissingMessage = errors.New("message is required")
)

// SendMessageRequest is the payload of POST /whatsapp/send.
type SendMessageRequest struct {
	OrderID string `json:"order_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (r SendMessageRequest) Validate() (orderID, message string, err error) {
	orderID = strings.TrimSpace(r.OrderID)
	if orderID == "" {
		return "", "", ErrMissingOrderID
	}
	message = strings.TrimSpace(r.Message)
	if message == "" {
		return "", "", ErrMissingMessage
	}
	return orderID, message, nil
}
