package whatsapp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"su_herramienta/internal/domain/entities"
	"su_herramienta/internal/usecase/interfaces"
	"sync"
	"sync/atomic"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/mdp/qrterminal"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"
	"golang.org/x/term"
	"golang.org/x/time/rate"
)

// Config describes the WhatsApp session.
type Config struct {
	// SessionDBPath is the SQLite file holding the linked device keys.
	SessionDBPath     string
	SendRatePerSecond float64
	SendBurst         int
	SendAttempts      int
	RetryDelay        time.Duration
	InboundBuffer     int
	LogLevel          string
}

func DefaultConfig() Config {
	return Config{
		SessionDBPath:     "data/whatsapp-session.db",
		SendRatePerSecond: 1,
		SendBurst:         3,
		SendAttempts:      3,
		RetryDelay:        250 * time.Millisecond,
		InboundBuffer:     64,
		LogLevel:          "INFO",
	}
}

// Client is the whatsmeow backed messaging transport.
//
// It is ready only while the linked session is connected; sends made while
// not ready fail with interfaces.ErrTransportNotReady.
type Client struct {
	cfg       Config
	wa        *whatsmeow.Client
	container *sqlstore.Container
	limiter   *rate.Limiter
	ready     atomic.Bool
	inbound   chan entities.InboundMessage
	send      sendFunc
	numbers   sync.Map // digits -> types.JID

	closeOnce sync.Once
	done      chan struct{}
}

var _ interfaces.IMessagingTransport = (*Client)(nil)

// NewClient opens (or creates) the session store and builds the client. It
// does not connect; call Start.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.SessionDBPath == "" {
		return nil, errors.New("whatsapp session db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.SessionDBPath), 0o755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	color := term.IsTerminal(int(os.Stdout.Fd()))
	dbLog := waLog.Stdout("Database", cfg.LogLevel, color)
	container, err := sqlstore.New(ctx, "sqlite3", "file:"+cfg.SessionDBPath+"?_foreign_keys=on", dbLog)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	device, err := container.GetFirstDevice(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		device = container.NewDevice()
	} else if err != nil {
		return nil, fmt.Errorf("load device: %w", err)
	}

	c := &Client{
		cfg:       cfg,
		wa:        whatsmeow.NewClient(device, waLog.Stdout("Client", cfg.LogLevel, color)),
		container: container,
		limiter:   rate.NewLimiter(rate.Limit(cfg.SendRatePerSecond), max(cfg.SendBurst, 1)),
		inbound:   make(chan entities.InboundMessage, max(cfg.InboundBuffer, 1)),
		done:      make(chan struct{}),
	}
	c.send = withRetry(cfg.SendAttempts, cfg.RetryDelay, withRateLimit(c.limiter, c.sendMessage))
	c.wa.AddEventHandler(c.handleEvent)
	return c, nil
}

// Start connects the session. When the device is not linked yet the login QR
// codes are rendered on stdout until the phone scans one; Start returns as
// soon as the connection attempt is under way.
func (c *Client) Start(ctx context.Context) error {
	if c.wa.Store.ID != nil {
		if err := c.wa.Connect(); err != nil {
			return fmt.Errorf("connect whatsapp: %w", err)
		}
		log.Printf("[wa][transport] connecting linked device jid=%s", c.wa.Store.ID.String())
		return nil
	}

	qrChan, err := c.wa.GetQRChannel(ctx)
	if err != nil {
		return fmt.Errorf("qr channel: %w", err)
	}
	if err := c.wa.Connect(); err != nil {
		return fmt.Errorf("connect whatsapp: %w", err)
	}
	go func() {
		for evt := range qrChan {
			switch evt.Event {
			case "code":
				log.Printf("[wa][transport] scan the QR code to link the shop account")
				qrterminal.GenerateHalfBlock(evt.Code, qrterminal.L, os.Stdout)
			case "success":
				log.Printf("[wa][transport] device linked")
				return
			default:
				log.Printf("[wa][transport] qr login event=%s", evt.Event)
			}
		}
	}()
	return nil
}

// Close disconnects the session. The inbound channel is left open; consumers
// stop through their own context.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.ready.Store(false)
		close(c.done)
		c.wa.Disconnect()
	})
	return c.container.Close()
}

func (c *Client) IsReady() bool {
	return c.ready.Load()
}

func (c *Client) Messages() <-chan entities.InboundMessage {
	return c.inbound
}

func (c *Client) handleEvent(evt interface{}) {
	switch v := evt.(type) {
	case *events.Connected:
		c.ready.Store(true)
		log.Printf("[wa][transport] connected")
	case *events.Disconnected:
		c.ready.Store(false)
		log.Printf("[wa][transport] disconnected, waiting for auto reconnect")
	case *events.LoggedOut:
		c.ready.Store(false)
		log.Printf("[wa][transport] logged out reason=%v, restart to link the device again", v.Reason)
	case *events.StreamReplaced:
		c.ready.Store(false)
		log.Printf("[wa][transport] session opened elsewhere, transport disabled")
	case *events.Message:
		msg, ok := inboundFromEvent(v, c.lookupPhoneForLID)
		if !ok {
			return
		}
		select {
		case c.inbound <- msg:
		case <-c.done:
		}
	}
}

func (c *Client) lookupPhoneForLID(lid types.JID) types.JID {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pn, err := c.wa.Store.LIDs.GetPNForLID(ctx, lid)
	if err != nil {
		log.Printf("[wa][transport] lid lookup failed lid=%s err=%v", lid, err)
		return types.EmptyJID
	}
	return pn
}
