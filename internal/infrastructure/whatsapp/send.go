package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"su_herramienta/internal/domain/entities"
	"su_herramienta/internal/usecase/interfaces"
	"time"

	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/proto/waE2E"
	"go.mau.fi/whatsmeow/types"
	"golang.org/x/time/rate"
	"google.golang.org/protobuf/proto"
)

type sendFunc func(ctx context.Context, to types.JID, msg *waE2E.Message) error

func withRateLimit(lim *rate.Limiter, next sendFunc) sendFunc {
	return func(ctx context.Context, to types.JID, msg *waE2E.Message) error {
		if err := lim.Wait(ctx); err != nil {
			return err
		}
		return next(ctx, to, msg)
	}
}

// withRetry retries failed sends with a doubling delay capped at 5s.
// Context errors are returned immediately.
func withRetry(attempts int, delay time.Duration, next sendFunc) sendFunc {
	if attempts < 1 {
		attempts = 1
	}
	return func(ctx context.Context, to types.JID, msg *waE2E.Message) error {
		var err error
		d := delay
		for i := 0; i < attempts; i++ {
			if err = next(ctx, to, msg); err == nil {
				return nil
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			if i == attempts-1 {
				break
			}
			log.Printf("[wa][transport] send failed, retrying to=%s attempt=%d err=%v", to, i+1, err)
			select {
			case <-time.After(d):
			case <-ctx.Done():
				return ctx.Err()
			}
			if d < 5*time.Second {
				d *= 2
			}
		}
		return err
	}
}

func (c *Client) sendMessage(ctx context.Context, to types.JID, msg *waE2E.Message) error {
	resp, err := c.wa.SendMessage(ctx, to, msg)
	if err != nil {
		return err
	}
	log.Printf("[wa][transport] sent to=%s id=%s", to, resp.ID)
	return nil
}

func (c *Client) SendText(ctx context.Context, destination, text string) error {
	if !c.IsReady() {
		return interfaces.ErrTransportNotReady
	}
	to, err := c.resolve(ctx, destination)
	if err != nil {
		return err
	}
	return c.send(ctx, to, &waE2E.Message{Conversation: proto.String(text)})
}

func (c *Client) SendDocument(ctx context.Context, destination string, doc entities.Document) error {
	if !c.IsReady() {
		return interfaces.ErrTransportNotReady
	}
	to, err := c.resolve(ctx, destination)
	if err != nil {
		return err
	}
	up, err := c.wa.Upload(ctx, doc.Data, whatsmeow.MediaDocument)
	if err != nil {
		return fmt.Errorf("upload %s: %w", doc.FileName, err)
	}
	return c.send(ctx, to, documentMessage(doc, up))
}

func documentMessage(doc entities.Document, up whatsmeow.UploadResponse) *waE2E.Message {
	mime := doc.MimeType
	if mime == "" {
		mime = "application/pdf"
	}
	d := &waE2E.DocumentMessage{
		Title:         proto.String(doc.FileName),
		FileName:      proto.String(doc.FileName),
		Mimetype:      proto.String(mime),
		URL:           proto.String(up.URL),
		DirectPath:    proto.String(up.DirectPath),
		MediaKey:      up.MediaKey,
		FileEncSHA256: up.FileEncSHA256,
		FileSHA256:    up.FileSHA256,
		FileLength:    proto.Uint64(up.FileLength),
	}
	if doc.Caption != "" {
		d.Caption = proto.String(doc.Caption)
	}
	return &waE2E.Message{DocumentMessage: d}
}

var nonDigits = regexp.MustCompile(`\D+`)

// parseDestination returns the chat to send to directly, or the phone digits
// that must first be checked against WhatsApp.
func parseDestination(destination string) (types.JID, string, error) {
	destination = strings.TrimSpace(destination)
	if strings.Contains(destination, "@") {
		jid, err := types.ParseJID(destination)
		if err != nil {
			return types.EmptyJID, "", fmt.Errorf("%w: %s", interfaces.ErrUnresolvableDestination, destination)
		}
		if jid.Server != types.DefaultUserServer {
			return jid.ToNonAD(), "", nil
		}
		destination = jid.User
	}
	digits := nonDigits.ReplaceAllString(destination, "")
	if digits == "" {
		return types.EmptyJID, "", fmt.Errorf("%w: %q", interfaces.ErrUnresolvableDestination, destination)
	}
	return types.EmptyJID, digits, nil
}

// resolve maps a destination to the account WhatsApp reports for it. Phone
// numbers are verified once and cached for the life of the session.
func (c *Client) resolve(ctx context.Context, destination string) (types.JID, error) {
	jid, digits, err := parseDestination(destination)
	if err != nil || digits == "" {
		return jid, err
	}
	if cached, ok := c.numbers.Load(digits); ok {
		return cached.(types.JID), nil
	}

	resp, err := c.wa.IsOnWhatsApp(ctx, []string{"+" + digits})
	if err != nil {
		log.Printf("[wa][transport] number lookup failed, sending to plain jid number=%s err=%v", digits, err)
		return types.NewJID(digits, types.DefaultUserServer), nil
	}
	if len(resp) == 0 || !resp[0].IsIn {
		return types.EmptyJID, fmt.Errorf("%w: %s", interfaces.ErrUnresolvableDestination, digits)
	}
	c.numbers.Store(digits, resp[0].JID)
	return resp[0].JID, nil
}
