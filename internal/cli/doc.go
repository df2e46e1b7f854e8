// Package cli реализует команды roster.
//
// # Обзор
//
// Без аргументов roster загружает таблицу, проверяет её, пишет step1.csv
// и затем выполняет pipeline FetchDataFromOrigin → CheckResultOfFetch.
//
// # Команды
//
//   - fetch    — только загрузка, проверка и запись файла
//   - check    — только pipeline (fetch пропускается, если файл уже есть)
//   - schedule — pipeline по cron-расписанию ROSTER_SCHEDULE
//   - load     — загрузка step1.csv в Postgres (DB_URL)
//
// Флагов нет: все настройки читаются из окружения (см. config.Load).
//
// # Интеграции
//
// RabbitMQ (RABBITMQ_URL) и Pushgateway (PUSHGATEWAY_URL) необязательны.
// Если брокер недоступен, pipeline работает без событий.
package cli
