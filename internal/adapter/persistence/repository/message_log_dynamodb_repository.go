package repository

import (
	"context"
	"time"

	"su_herramienta/internal/domain/entities"
	"su_herramienta/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMessageLogTableName = "wa_conversation_log"
	defaultConversationLimit   = 50

	// sortKeyLayout keeps a fixed width so keys sort in time order.
	sortKeyLayout = "2006-01-02T15:04:05.000000000Z"
)

type conversationMessageItem struct {
	Phone     string `dynamodbav:"phone"`
	SK        string `dynamodbav:"sk"`
	ID        string `dynamodbav:"id"`
	Direction string `dynamodbav:"direction"`
	OrderID   string `dynamodbav:"order_id,omitempty"`
	Body      string `dynamodbav:"body"`
	CreatedAt string `dynamodbav:"created_at"`
}

// MessageLogDynamoRepository persists the authorization dialogue in DynamoDB.
//
// Table requirements:
//   - PK: phone (string)
//   - SK: sk (string, created_at#id)
//
// A reverse Query on the partition returns the most recent messages first.
type MessageLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMessageLogRepository = (*MessageLogDynamoRepository)(nil)

func NewMessageLogDynamoRepository(ddb *dynamodb.Client) *MessageLogDynamoRepository {
	return &MessageLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MESSAGE_LOG_TABLE", defaultMessageLogTableName),
	}
}

func (r *MessageLogDynamoRepository) Create(ctx context.Context, m entities.ConversationMessage) (entities.ConversationMessage, error) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	av, err := attributevalue.MarshalMap(toConversationMessageItem(m))
	if err != nil {
		return entities.ConversationMessage{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "sk",
		},
	})
	if err != nil {
		return entities.ConversationMessage{}, err
	}
	return m, nil
}

func (r *MessageLogDynamoRepository) ListByPhone(ctx context.Context, phone string, limit int32) ([]entities.ConversationMessage, error) {
	if limit <= 0 {
		limit = defaultConversationLimit
	}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#phone = :phone"),
		ExpressionAttributeNames: map[string]string{
			"#phone": "phone",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phone": &types.AttributeValueMemberS{Value: phone},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(limit),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ConversationMessage, 0, len(out.Items))
	for _, raw := range out.Items {
		var it conversationMessageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromConversationMessageItem(it))
	}
	return items, nil
}

func toConversationMessageItem(m entities.ConversationMessage) conversationMessageItem {
	createdAt := m.CreatedAt.UTC()
	return conversationMessageItem{
		Phone:     m.Phone,
		SK:        createdAt.Format(sortKeyLayout) + "#" + m.ID,
		ID:        m.ID,
		Direction: string(m.Direction),
		OrderID:   m.OrderID,
		Body:      m.Body,
		CreatedAt: createdAt.Format(time.RFC3339Nano),
	}
}

func fromConversationMessageItem(it conversationMessageItem) entities.ConversationMessage {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ConversationMessage{
		ID:        it.ID,
		Phone:     it.Phone,
		Direction: entities.MessageDirection(it.Direction),
		OrderID:   it.OrderID,
		Body:      it.Body,
		CreatedAt: createdAt,
	}
}
