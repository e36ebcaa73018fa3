package orderqueue

import (
	"clinicare-service/internal/app/contracts"
	"clinicare-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	StandardQueueName   = "order_events_queue"
	DeadLetterQueueName = "order_events_dlq"
)

// Service manages the durable RabbitMQ queues carrying order-placed events.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

// NewService declares the durable queues, sets QoS, and enables publisher
// confirms on a dedicated channel.
func NewService(conn *amqp.Connection, log *zap.Logger, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		StandardQueueName, // name
		true,              // durable
		false,             // autoDelete
		false,             // exclusive
		false,             // noWait
		nil,               // args
	)
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		DeadLetterQueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	svc := &Service{
		ch:       ch,
		log:      log,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}

	return svc, nil
}

func (s *Service) PublishOrderPlaced(ctx context.Context, event *contracts.OrderEvent) error {
	return s.publish(ctx, StandardQueueName, event)
}

func (s *Service) SendToDLQ(ctx context.Context, event *contracts.OrderEvent) error {
	return s.publish(ctx, DeadLetterQueueName, event)
}

// Reenqueue puts a failed event back at the tail of the standard queue with
// its failed count already incremented by the caller.
func (s *Service) Reenqueue(ctx context.Context, event *contracts.OrderEvent) error {
	return s.publish(ctx, StandardQueueName, event)
}

func (s *Service) publish(ctx context.Context, queueName string, event *contracts.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.ch.PublishWithContext(ctx,
		"",        // exchange
		queueName, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	select {
	case confirmation := <-s.confirms:
		if !confirmation.Ack {
			return exceptions.ErrQueuePublish(nil)
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublish(ctx.Err())
	case <-time.After(5 * time.Second):
		return exceptions.ErrQueuePublish(nil)
	}

	return nil
}

// FetchN pulls at most max messages without waiting for more to arrive.
// Messages stay unacked until the worker acks or routes them elsewhere.
func (s *Service) FetchN(ctx context.Context, max int) ([]*contracts.QueuedOrderEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var events []*contracts.QueuedOrderEvent
	for i := 0; i < max; i++ {
		if ctx.Err() != nil {
			break
		}

		delivery, ok, err := s.ch.Get(StandardQueueName, false)
		if err != nil {
			return events, exceptions.ErrQueueConsume(err)
		}
		if !ok {
			break
		}

		var event contracts.OrderEvent
		if err := json.Unmarshal(delivery.Body, &event); err != nil {
			s.log.Warn("orderqueue.FetchN dropping undecodable message",
				zap.Uint64("delivery_tag", delivery.DeliveryTag),
				zap.Error(err),
			)
			_ = s.ch.Ack(delivery.DeliveryTag, false)
			continue
		}

		events = append(events, &contracts.QueuedOrderEvent{
			Event:       &event,
			DeliveryTag: delivery.DeliveryTag,
		})
	}

	return events, nil
}

func (s *Service) Ack(deliveryTag uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ch.Ack(deliveryTag, false)
}
