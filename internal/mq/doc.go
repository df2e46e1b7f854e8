// Package mq публикует события pipeline в RabbitMQ.
//
// Включает:
//   - connection.go — AMQP соединение и канал
//   - topology.go   — объявление exchange
//   - publisher.go  — публикация сообщений
//   - notifier.go   — адаптер pipeline.Notifier поверх Publisher
//
// Все события идут в topic exchange roster.events с ключами
// task.finished и run.finished.
package mq
