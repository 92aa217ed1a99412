package notification

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"

	"github.com/Henry-Iheonu/Events/internal/domain"
)

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Dispatcher decouples email delivery from the registration request: the
// write path enqueues and returns, a worker drains the queue with retries.
type Dispatcher struct {
	sender      Sender
	queue       chan Message
	sendTimeout time.Duration
	strategy    retry.Strategy
	logger      logger.Logger
}

func NewDispatcher(sender Sender, queueSize int, sendTimeout time.Duration, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		sender:      sender,
		queue:       make(chan Message, queueSize),
		sendTimeout: sendTimeout,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		logger: log,
	}
}

// RegistrationCreated enqueues the proof-of-registration email. It never
// blocks: when the queue is full the message is dropped and reported,
// because delivery failure must not fail the committed registration.
func (d *Dispatcher) RegistrationCreated(_ context.Context, reg *domain.Registration, event *domain.Event) {
	msg := NewMessage(reg, event)

	select {
	case d.queue <- msg:
	default:
		d.logger.Error("notification queue full, dropping message",
			logger.String("registration_id", msg.RegistrationID),
			logger.String("event_id", msg.EventID),
		)
	}
}

func (d *Dispatcher) Start(ctx context.Context) {
	d.logger.Info("notification dispatcher started",
		logger.Int("queue_size", cap(d.queue)),
		logger.Duration("send_timeout", d.sendTimeout),
	)

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("notification dispatcher stopped")
			return
		case msg := <-d.queue:
			d.deliver(ctx, msg)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, msg Message) {
	var err error
	delay := d.strategy.Delay

	for attempt := 1; attempt <= d.strategy.Attempts; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, d.sendTimeout)
		err = d.sender.Send(sendCtx, msg)
		cancel()

		if err == nil {
			if attempt > 1 {
				d.logger.Info("registration email delivered after retry",
					logger.String("registration_id", msg.RegistrationID),
					logger.Int("attempt", attempt),
				)
			}
			return
		}

		if ctx.Err() != nil {
			return
		}

		if attempt < d.strategy.Attempts {
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			delay = time.Duration(float64(delay) * float64(d.strategy.Backoff))
		}
	}

	d.logger.Error("failed to deliver registration email",
		logger.String("registration_id", msg.RegistrationID),
		logger.String("event_id", msg.EventID),
		logger.String("error", err.Error()),
	)
}
