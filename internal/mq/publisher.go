package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// MessageType — тип сообщения.
type MessageType string

// Типы сообщений.
const (
	MessageTypeTaskFinished MessageType = "task.finished"
	MessageTypeRunFinished  MessageType = "run.finished"
)

// Message — сообщение для публикации.
type Message struct {
	// ID — уникальный идентификатор сообщения.
	ID string `json:"id"`

	// Type — тип сообщения.
	Type MessageType `json:"type"`

	// Payload — полезная нагрузка.
	Payload any `json:"payload"`

	// Timestamp — время создания.
	Timestamp time.Time `json:"timestamp"`
}

// TaskFinishedPayload — payload события о завершении task.
type TaskFinishedPayload struct {
	TaskID     uuid.UUID `json:"task_id"`
	RunID      uuid.UUID `json:"run_id"`
	Task       string    `json:"task"`
	Status     string    `json:"status"` // DONE, SKIPPED или FAILED
	Error      string    `json:"error,omitempty"`
	DurationMs int64     `json:"duration_ms"`
}

// RunFinishedPayload — payload события о завершении run.
type RunFinishedPayload struct {
	RunID     uuid.UUID `json:"run_id"`
	Main      string    `json:"main"`
	Succeeded bool      `json:"succeeded"`
	Done      int       `json:"done"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
}

// Publisher публикует сообщения в RabbitMQ.
type Publisher struct {
	channels ChannelProvider
	logger   *slog.Logger
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(channels ChannelProvider, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		channels: channels,
		logger:   logger,
	}
}

// Publish публикует сообщение в exchange с routing key.
func (p *Publisher) Publish(ctx context.Context, exchange Exchange, routingKey RoutingKey, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	return p.channels.WithChannel(ctx, func(ch Channel) error {
		err := ch.PublishWithContext(
			ctx,
			string(exchange),   // exchange
			string(routingKey), // routing key
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				MessageId:    msg.ID,
				Timestamp:    msg.Timestamp,
				Type:         string(msg.Type),
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish to %s/%s: %w", exchange, routingKey, err)
		}

		p.logger.Debug("published message",
			"exchange", exchange,
			"routing_key", routingKey,
			"message_id", msg.ID,
			"type", msg.Type,
		)

		return nil
	})
}

// PublishTaskFinished публикует событие о завершении task.
func (p *Publisher) PublishTaskFinished(ctx context.Context, payload TaskFinishedPayload) error {
	return p.Publish(ctx, ExchangeEvents, RoutingKeyTaskFinished, newMessage(MessageTypeTaskFinished, payload))
}

// PublishRunFinished публикует событие о завершении run.
func (p *Publisher) PublishRunFinished(ctx context.Context, payload RunFinishedPayload) error {
	return p.Publish(ctx, ExchangeEvents, RoutingKeyRunFinished, newMessage(MessageTypeRunFinished, payload))
}

func newMessage(msgType MessageType, payload any) *Message {
	return &Message{
		ID:        uuid.New().String(),
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}
