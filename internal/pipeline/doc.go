// Package pipeline выполняет tasks в порядке зависимостей.
//
// # Обзор
//
// Pipeline состоит из tasks, связанных через Requires. Runner строит
// DAG (engine.BuildDAG), выбирает транзитивные зависимости главного task
// и выполняет их последовательно в топологическом порядке.
//
// Task, который уже complete, не запускается повторно. Для task с файловым
// output это означает, что файл уже существует.
//
// # Tasks
//
//   - FetchDataFromOrigin — загружает таблицу из API и пишет CSV
//   - CheckResultOfFetch  — перечитывает CSV и печатает колонки и число строк
//
// CheckResultOfFetch отмечает завершение флагом в памяти, поэтому каждый
// новый процесс выполняет его заново.
//
// # Hooks
//
// Runner принимает необязательные Notifier (события task/run) и
// telemetry.Metrics. Ошибки Notifier логируются и не прерывают run.
package pipeline
