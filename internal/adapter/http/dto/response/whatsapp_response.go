package response

import (
	"su_herramienta/internal/domain/entities"
	"time"
)

type SendResultResponse struct {
	Success bool `json:"success"`
	Sent    int  `json:"sent"`
}

type TransportStatusResponse struct {
	Ready bool `json:"ready"`
}

type NoticeResponse struct {
	Success      bool `json:"success"`
	Equipment    int  `json:"equipment"`
	Destinations int  `json:"destinations"`
}

type NoticePreviewResponse struct {
	Status    string `json:"status"`
	Equipment int    `json:"equipment"`
	Message   string `json:"message"`
}

type PendingAuthorizationResponse struct {
	ID           int64     `json:"id"`
	OrderID      string    `json:"order_id"`
	Phone        string    `json:"phone"`
	State        string    `json:"state"`
	EquipmentIDs []string  `json:"equipment_ids"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromPendingAuthorization(p entities.PendingAuthorization) PendingAuthorizationResponse {
	ids := p.EquipmentIDs
	if ids == nil {
		ids = []string{}
	}
	return PendingAuthorizationResponse{
		ID:           p.ID,
		OrderID:      p.OrderID,
		Phone:        p.Phone,
		State:        string(p.State),
		EquipmentIDs: ids,
		CreatedAt:    p.CreatedAt,
	}
}

type ConversationMessageResponse struct {
	ID        string    `json:"id"`
	Direction string    `json:"direction"`
	OrderID   string    `json:"order_id,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type ConversationResponse struct {
	Phone    string                        `json:"phone"`
	Messages []ConversationMessageResponse `json:"messages"`
}

func FromConversation(phone string, msgs []entities.ConversationMessage) ConversationResponse {
	out := ConversationResponse{Phone: phone, Messages: make([]ConversationMessageResponse, 0, len(msgs))}
	for _, m := range msgs {
		out.Messages = append(out.Messages, ConversationMessageResponse{
			ID:        m.ID,
			Direction: string(m.Direction),
			OrderID:   m.OrderID,
			Body:      m.Body,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}
