package whatsapp

import (
	"context"
	"errors"
	"testing"
	"time"

	"su_herramienta/internal/domain/entities"
	"su_herramienta/internal/usecase/interfaces"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	"golang.org/x/time/rate"
	"google.golang.org/protobuf/proto"
)

func TestParseDestination(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantJID string
		digits  string
		wantErr bool
	}{
		{name: "user jid is verified", in: "573001234567@s.whatsapp.net", digits: "573001234567"},
		{name: "plain number", in: " +57 300 123 4567 ", digits: "573001234567"},
		{name: "lid chat is used directly", in: "12345678901234@lid", wantJID: "12345678901234@lid"},
		{name: "device part is dropped", in: "12345678901234:3@lid", wantJID: "12345678901234@lid"},
		{name: "empty", in: "  ", wantErr: true},
		{name: "no digits", in: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jid, digits, err := parseDestination(tt.in)
			if tt.wantErr {
				if !errors.Is(err, interfaces.ErrUnresolvableDestination) {
					t.Fatalf("expected ErrUnresolvableDestination, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if digits != tt.digits {
				t.Fatalf("digits = %q, want %q", digits, tt.digits)
			}
			if tt.wantJID != "" && jid.String() != tt.wantJID {
				t.Fatalf("jid = %q, want %q", jid.String(), tt.wantJID)
			}
		})
	}
}

func TestWithRetry(t *testing.T) {
	to := types.NewJID("573001234567", types.DefaultUserServer)

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		fn := withRetry(3, time.Millisecond, func(context.Context, types.JID, *waE2E.Message) error {
			calls++
			if calls < 3 {
				return errors.New("socket closed")
			}
			return nil
		})
		if err := fn(context.Background(), to, &waE2E.Message{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 3 {
			t.Fatalf("expected 3 calls, got %d", calls)
		}
	})

	t.Run("returns last error", func(t *testing.T) {
		calls := 0
		fn := withRetry(2, time.Millisecond, func(context.Context, types.JID, *waE2E.Message) error {
			calls++
			return errors.New("server error")
		})
		if err := fn(context.Background(), to, &waE2E.Message{}); err == nil {
			t.Fatal("expected error")
		}
		if calls != 2 {
			t.Fatalf("expected 2 calls, got %d", calls)
		}
	})

	t.Run("context errors are not retried", func(t *testing.T) {
		calls := 0
		fn := withRetry(5, time.Millisecond, func(context.Context, types.JID, *waE2E.Message) error {
			calls++
			return context.DeadlineExceeded
		})
		if err := fn(context.Background(), to, &waE2E.Message{}); !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline error, got %v", err)
		}
		if calls != 1 {
			t.Fatalf("expected 1 call, got %d", calls)
		}
	})
}

func TestWithRateLimit(t *testing.T) {
	to := types.NewJID("573001234567", types.DefaultUserServer)
	lim := rate.NewLimiter(rate.Every(time.Hour), 1)
	calls := 0
	fn := withRateLimit(lim, func(context.Context, types.JID, *waE2E.Message) error {
		calls++
		return nil
	})

	if err := fn(context.Background(), to, &waE2E.Message{}); err != nil {
		t.Fatalf("first send should use the burst: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if err := fn(ctx, to, &waE2E.Message{}); err == nil {
		t.Fatal("second send should wait past the deadline")
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestDocumentMessage(t *testing.T) {
	up := whatsmeow.UploadResponse{URL: "https://mmg.whatsapp.net/x", DirectPath: "/v/x", FileLength: 2048}

	msg := documentMessage(entities.Document{FileName: "cotizacion-1050.pdf", Caption: "Su cotización"}, up)
	d := msg.GetDocumentMessage()
	if d == nil {
		t.Fatal("expected a document message")
	}
	if d.GetFileName() != "cotizacion-1050.pdf" || d.GetMimetype() != "application/pdf" {
		t.Fatalf("unexpected document %v", d)
	}
	if d.GetCaption() != "Su cotización" || d.GetFileLength() != 2048 || d.GetURL() != up.URL {
		t.Fatalf("unexpected document %v", d)
	}

	noCaption := documentMessage(entities.Document{FileName: "a.png", MimeType: "image/png"}, up).GetDocumentMessage()
	if noCaption.Caption != nil || noCaption.GetMimetype() != "image/png" {
		t.Fatalf("unexpected document %v", noCaption)
	}
}

func textEvent(sender, chat types.JID, text string) *events.Message {
	return &events.Message{
		Info: types.MessageInfo{
			MessageSource: types.MessageSource{Chat: chat, Sender: sender},
			ID:            "3EB0",
			Timestamp:     time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
		},
		Message: &waE2E.Message{Conversation: proto.String(text)},
	}
}

func TestInboundFromEvent(t *testing.T) {
	user := types.NewJID("573001234567", types.DefaultUserServer)
	lid := types.NewJID("98765432109876", types.HiddenUserServer)

	t.Run("plain contact", func(t *testing.T) {
		msg, ok := inboundFromEvent(textEvent(user, user, " 1 "), nil)
		if !ok {
			t.Fatal("expected message")
		}
		if msg.Phone != "573001234567" || msg.Body != "1" || msg.SenderID != "573001234567@s.whatsapp.net" {
			t.Fatalf("unexpected message %+v", msg)
		}
	})

	t.Run("extended text", func(t *testing.T) {
		evt := textEvent(user, user, "")
		evt.Message = &waE2E.Message{ExtendedTextMessage: &waE2E.ExtendedTextMessage{Text: proto.String("1, 3")}}
		msg, ok := inboundFromEvent(evt, nil)
		if !ok || msg.Body != "1, 3" {
			t.Fatalf("unexpected result %+v ok=%v", msg, ok)
		}
	})

	t.Run("lid sender with alt phone", func(t *testing.T) {
		evt := textEvent(lid, lid, "2")
		evt.Info.SenderAlt = user
		msg, ok := inboundFromEvent(evt, func(types.JID) types.JID {
			t.Fatal("lookup should not be needed")
			return types.EmptyJID
		})
		if !ok || msg.Phone != "573001234567" || msg.SenderID != "98765432109876@lid" {
			t.Fatalf("unexpected result %+v ok=%v", msg, ok)
		}
	})

	t.Run("lid sender resolved through store", func(t *testing.T) {
		msg, ok := inboundFromEvent(textEvent(lid, lid, "2"), func(types.JID) types.JID { return user })
		if !ok || msg.Phone != "573001234567" {
			t.Fatalf("unexpected result %+v ok=%v", msg, ok)
		}
	})

	t.Run("unresolved lid keeps empty phone", func(t *testing.T) {
		msg, ok := inboundFromEvent(textEvent(lid, lid, "2"), func(types.JID) types.JID { return types.EmptyJID })
		if !ok || msg.Phone != "" {
			t.Fatalf("unexpected result %+v ok=%v", msg, ok)
		}
	})

	t.Run("ignored messages", func(t *testing.T) {
		own := textEvent(user, user, "hola")
		own.Info.IsFromMe = true

		group := textEvent(user, types.NewJID("120363000000000000", types.GroupServer), "1")
		group.Info.IsGroup = true

		broadcast := textEvent(user, types.StatusBroadcastJID, "1")

		media := textEvent(user, user, "")
		media.Message = &waE2E.Message{ImageMessage: &waE2E.ImageMessage{}}

		for name, evt := range map[string]*events.Message{"own": own, "group": group, "broadcast": broadcast, "media": media} {
			if _, ok := inboundFromEvent(evt, nil); ok {
				t.Fatalf("%s message should be ignored", name)
			}
		}
	})
}
