package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/giggentheapp/giggen-connect-hub-4f4e5184-sub001/internal/domain"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const publishTimeout = 5 * time.Second

// RabbitPublisher forwards booking events to a topic exchange with the
// routing key "booking.<type>".
type RabbitPublisher struct {
	conn     *amqp.Connection
	mu       sync.Mutex
	channel  *amqp.Channel
	exchange string
	log      logger.Logger
}

func NewRabbitPublisher(url, exchange string, log logger.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	log.Info("rabbitmq publisher initialized", logger.String("exchange", exchange))

	return &RabbitPublisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		log:      log,
	}, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, e domain.BookingEvent) {
	body, err := json.Marshal(e)
	if err != nil {
		p.log.Error("failed to encode booking event", logger.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		RoutingKey(e.Type),
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.New().String(),
			Timestamp:    e.At,
			Body:         body,
		},
	)
	p.mu.Unlock()

	if err != nil {
		p.log.Error("failed to publish booking event",
			logger.String("booking_id", e.BookingID),
			logger.String("type", string(e.Type)),
			logger.String("error", err.Error()),
		)
		return
	}
	p.log.Debug("booking event published",
		logger.String("booking_id", e.BookingID),
		logger.String("type", string(e.Type)),
	)
}

func (p *RabbitPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		_ = p.conn.Close()
		return fmt.Errorf("close channel: %w", err)
	}
	return p.conn.Close()
}

func RoutingKey(t domain.BookingEventType) string {
	return "booking." + string(t)
}
