package mq

import (
	"context"
	"fmt"
)

// Exchange — тип для имени обменника.
type Exchange string

// RoutingKey — тип для ключа маршрутизации.
type RoutingKey string

// ExchangeEvents — обменник событий pipeline.
const ExchangeEvents Exchange = "roster.events"

// Routing keys.
const (
	RoutingKeyTaskFinished RoutingKey = "task.finished"
	RoutingKeyRunFinished  RoutingKey = "run.finished"
)

// SetupTopology объявляет exchange событий.
//
// Очереди создают потребители: pipeline только публикует.
func SetupTopology(ctx context.Context, p ChannelProvider) error {
	return p.WithChannel(ctx, func(ch Channel) error {
		err := ch.ExchangeDeclare(
			string(ExchangeEvents), // name
			"topic",                // type
			true,                   // durable
			false,                  // auto-deleted
			false,                  // internal
			false,                  // no-wait
			nil,                    // arguments
		)
		if err != nil {
			return fmt.Errorf("declare exchange %s: %w", ExchangeEvents, err)
		}
		return nil
	})
}
