package bus

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"logpanel/internal/app/errors"
	"logpanel/internal/app/message"
	"logpanel/internal/config/logger"
)

// Bus is the in-process queue between log producers and the panel pipeline
type Bus interface {
	Subscribe(ctx context.Context) <-chan message.Message
	Publish(msg message.Message) error
	Dropped() uint64
	Close()
}

// subscriber is one delivery channel; done closes before ch so blocked publishers can leave
type subscriber struct {
	ch       chan message.Message
	done     chan struct{}
	inflight sync.WaitGroup
	once     sync.Once
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	subscribers []*subscriber
	bufferSize  int
	dropped     atomic.Uint64
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a Bus whose subscriber channels hold bufferSize messages
func New(bufferSize int, log logger.Logger) Bus {
	return &bus{
		subscribers: make([]*subscriber, 0),
		bufferSize:  bufferSize,
		log:         log,
	}
}

// Subscribe creates a subscription channel that closes when ctx is done or the bus is closed
func (b *bus) Subscribe(ctx context.Context) <-chan message.Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscriber{
		ch:   make(chan message.Message, b.bufferSize),
		done: make(chan struct{}),
	}

	if b.closed {
		close(sub.ch)
		return sub.ch
	}

	b.subscribers = append(b.subscribers, sub)

	go func() {
		select {
		case <-ctx.Done():
			b.unsubscribe(sub)
		case <-sub.done:
		}
	}()

	return sub.ch
}

// Publish delivers msg to every subscriber, waiting while a subscriber is full.
// It fails with ErrStreamClosed when a subscription ends before the message is delivered.
func (b *bus) Publish(msg message.Message) error {
	b.mu.RLock()

	if b.closed {
		b.mu.RUnlock()
		return errors.ErrStreamClosed
	}

	subs := make([]*subscriber, len(b.subscribers))
	copy(subs, b.subscribers)

	for _, sub := range subs {
		sub.inflight.Add(1)
	}

	b.mu.RUnlock()

	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	if b.log != nil {
		b.log.Debug().Str("severity", msg.Level.String()).Msg(msg.Text)
	}

	var err error

	for _, sub := range subs {
		if !sub.deliver(msg) {
			b.dropped.Add(1)
			err = errors.ErrStreamClosed
		}
	}

	return err
}

// Dropped returns how many deliveries were abandoned because their subscription ended first
func (b *bus) Dropped() uint64 {
	return b.dropped.Load()
}

// Close ends all subscriptions; later publishes fail
func (b *bus) Close() {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()
		return
	}

	b.closed = true
	subs := b.subscribers
	b.subscribers = nil

	b.mu.Unlock()

	for _, sub := range subs {
		sub.close()
	}
}

func (b *bus) unsubscribe(sub *subscriber) {
	b.mu.Lock()

	for i, s := range b.subscribers {
		if s == sub {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			break
		}
	}

	b.mu.Unlock()

	sub.close()
}

func (s *subscriber) deliver(msg message.Message) bool {
	defer s.inflight.Done()

	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.ch <- msg:
		return true
	case <-s.done:
		return false
	}
}

// close releases blocked publishers, then closes the channel once none can send on it
func (s *subscriber) close() {
	s.once.Do(func() {
		close(s.done)
		s.inflight.Wait()
		close(s.ch)
	})
}
