package interfaces

import (
	"context"
	"su_herramienta/internal/domain/entities"
)

// IMessageLogRepository abstracts DynamoDB persistence for the conversation audit log.

type IMessageLogRepository interface {
	Create(ctx context.Context, msg entities.ConversationMessage) (entities.ConversationMessage, error)
	ListByPhone(ctx context.Context, phone string, limit int32) ([]entities.ConversationMessage, error)
}
