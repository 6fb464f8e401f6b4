package repository

import (
	"testing"
	"time"

	"su_herramienta/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestConversationMessageItem(t *testing.T) {
	created := time.Date(2026, 3, 10, 10, 0, 0, 123000000, time.FixedZone("COT", -5*3600))
	m := entities.ConversationMessage{
		ID:        "b5c1",
		Phone:     "573001234567",
		Direction: entities.MessageDirectionIn,
		OrderID:   "ord-1",
		Body:      "1",
		CreatedAt: created,
	}

	it := toConversationMessageItem(m)
	if it.SK != "2026-03-10T15:00:00.123000000Z#b5c1" {
		t.Fatalf("unexpected sort key %q", it.SK)
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if pk, ok := av["phone"].(*types.AttributeValueMemberS); !ok || pk.Value != "573001234567" {
		t.Fatalf("unexpected partition key %#v", av["phone"])
	}

	got := fromConversationMessageItem(it)
	if !got.CreatedAt.Equal(created) || got.Direction != entities.MessageDirectionIn || got.OrderID != "ord-1" {
		t.Fatalf("unexpected message %+v", got)
	}
}

func TestConversationMessageItem_OmitsEmptyOrder(t *testing.T) {
	it := toConversationMessageItem(entities.ConversationMessage{ID: "x", Phone: "573001234567", CreatedAt: time.Now()})
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, ok := av["order_id"]; ok {
		t.Fatal("order_id should be omitted when empty")
	}
}

func TestConversationMessageItem_SortKeysFollowTime(t *testing.T) {
	base := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	earlier := toConversationMessageItem(entities.ConversationMessage{ID: "a", CreatedAt: base.Add(100 * time.Millisecond)})
	later := toConversationMessageItem(entities.ConversationMessage{ID: "b", CreatedAt: base.Add(120 * time.Millisecond)})
	if earlier.SK >= later.SK {
		t.Fatalf("expected %q < %q", earlier.SK, later.SK)
	}
}
