// Package scheduler запускает pipeline по cron-расписанию.
//
// Расписание задаётся стандартным cron-выражением из пяти полей
// (минута, час, день месяца, месяц, день недели). Запуски не
// перекрываются: если предыдущий ещё идёт, следующий пропускается.
package scheduler
