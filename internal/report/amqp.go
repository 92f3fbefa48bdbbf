package report

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const DefaultQueue = "ticketing.outcomes"

// AMQPReporter publishes outcomes as persistent JSON messages to a durable
// queue. Publishing is best effort: errors are logged, never returned.
type AMQPReporter struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	ch      *amqp.Channel
	queue   string
	timeout time.Duration
	logger  logger.Logger
}

func NewAMQPReporter(url, queue string, timeout time.Duration, log logger.Logger) (*AMQPReporter, error) {
	if queue == "" {
		queue = DefaultQueue
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	// durable so outcomes survive broker restarts
	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	return &AMQPReporter{
		conn:    conn,
		ch:      ch,
		queue:   queue,
		timeout: timeout,
		logger:  log,
	}, nil
}

func (r *AMQPReporter) Report(ctx context.Context, outcome domain.Outcome) {
	body, err := json.Marshal(outcome)
	if err != nil {
		r.logger.Error("failed to marshal outcome",
			logger.String("code", string(outcome.Code)),
			logger.String("error", err.Error()),
		)
		return
	}

	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)
	defer cancel()

	r.mu.Lock()
	defer r.mu.Unlock()

	err = r.ch.PublishWithContext(pubCtx, "", r.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    outcome.At,
		Type:         string(outcome.Code),
		Body:         body,
	})
	if err != nil {
		r.logger.Error("failed to publish outcome",
			logger.String("code", string(outcome.Code)),
			logger.String("queue", r.queue),
			logger.String("error", err.Error()),
		)
	}
}

func (r *AMQPReporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ch.Close(); err != nil {
		_ = r.conn.Close()
		return fmt.Errorf("close channel: %w", err)
	}
	if err := r.conn.Close(); err != nil {
		return fmt.Errorf("close connection: %w", err)
	}
	return nil
}
