package messaging

import (
	"context"
	"log"
	"su_herramienta/internal/domain/entities"
	"sync"
	"time"
)

// InboundHandler processes one client message.
type InboundHandler interface {
	HandleInbound(ctx context.Context, msg entities.InboundMessage) error
}

// queueSize bounds the backlog per sender; messages beyond it are dropped.
const queueSize = 16

// InboundConsumer feeds transport messages to the handler. Messages of the
// same sender are handled one at a time in arrival order; different senders
// are handled concurrently.
type InboundConsumer struct {
	handler InboundHandler
	timeout time.Duration

	mu     sync.Mutex
	queues map[string]chan entities.InboundMessage
	wg     sync.WaitGroup
}

func NewInboundConsumer(handler InboundHandler, timeout time.Duration) *InboundConsumer {
	return &InboundConsumer{
		handler: handler,
		timeout: timeout,
		queues:  map[string]chan entities.InboundMessage{},
	}
}

// Run blocks until ctx is done or messages is closed, then waits for the
// in-flight handlers.
func (c *InboundConsumer) Run(ctx context.Context, messages <-chan entities.InboundMessage) {
	log.Printf("[wa][consumer] started")
	defer func() {
		c.wg.Wait()
		log.Printf("[wa][consumer] stopped")
	}()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			c.dispatch(ctx, msg)
		}
	}
}

func (c *InboundConsumer) dispatch(ctx context.Context, msg entities.InboundMessage) {
	key := msg.Phone
	if key == "" {
		key = msg.SenderID
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.queues[key]
	if !ok {
		q = make(chan entities.InboundMessage, queueSize)
		c.queues[key] = q
		c.wg.Add(1)
		go c.drain(ctx, key, q)
	}
	// Never block here: a flooding sender must not hold up the others.
	select {
	case q <- msg:
	default:
		log.Printf("[wa][consumer] sender queue full, message dropped sender=%s phone=%s", msg.SenderID, msg.Phone)
	}
}

// drain exits once its queue is empty; dispatch only enqueues under mu, so
// the check and the delete cannot race with a new message.
func (c *InboundConsumer) drain(ctx context.Context, key string, q chan entities.InboundMessage) {
	defer c.wg.Done()
	for {
		select {
		case msg := <-q:
			c.handle(ctx, msg)
			continue
		default:
		}

		c.mu.Lock()
		if len(q) == 0 {
			delete(c.queues, key)
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()
	}
}

func (c *InboundConsumer) handle(ctx context.Context, msg entities.InboundMessage) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[wa][consumer] handler panic sender=%s panic=%v", msg.SenderID, r)
		}
	}()

	hctx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		hctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := c.handler.HandleInbound(hctx, msg); err != nil {
		log.Printf("[wa][consumer] failed to handle message sender=%s phone=%s err=%v", msg.SenderID, msg.Phone, err)
	}
}
