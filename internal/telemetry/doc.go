// Package telemetry обеспечивает наблюдаемость pipeline.
//
// Включает:
//   - logging.go — structured logging через slog
//   - metrics.go — Prometheus метрики и отправка в Pushgateway
//
// Логи пишутся в stderr, чтобы отчёт tasks в stdout оставался читаемым.
package telemetry
