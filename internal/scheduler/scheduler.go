package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job — работа, выполняемая по расписанию.
type Job func(ctx context.Context) error

// Scheduler выполняет Job по cron-выражению до отмены контекста.
type Scheduler struct {
	cronExpr string
	job      Job
	logger   *slog.Logger
}

// New создаёт Scheduler. Выражение проверяется сразу.
func New(cronExpr string, job Job, logger *slog.Logger) (*Scheduler, error) {
	if err := ValidateCronExpr(cronExpr); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cronExpr: cronExpr,
		job:      job,
		logger:   logger,
	}, nil
}

// Run запускает расписание и блокируется до отмены ctx.
// Ошибки Job логируются, расписание продолжает работать.
func (s *Scheduler) Run(ctx context.Context) error {
	c := cron.New(
		cron.WithParser(cronParser),
		cron.WithLogger(cronLogger{s.logger}),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{s.logger})),
	)

	_, err := c.AddFunc(s.cronExpr, func() {
		s.runJob(ctx)
	})
	if err != nil {
		return err
	}

	c.Start()
	if next, err := NextRun(s.cronExpr, time.Now()); err == nil {
		s.logger.Info("scheduler started", "cron", s.cronExpr, "next_run", next)
	}

	<-ctx.Done()

	// Ждём завершения текущего запуска
	<-c.Stop().Done()
	s.logger.Info("scheduler stopped")
	return nil
}

// runJob выполняет Job и логирует результат.
func (s *Scheduler) runJob(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	s.logger.Info("scheduled run started")
	if err := s.job(ctx); err != nil {
		s.logger.Error("scheduled run failed", "error", err, "duration", time.Since(start))
		return
	}
	s.logger.Info("scheduled run finished", "duration", time.Since(start))
}

// cronLogger адаптирует slog к cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

// Info логирует служебные события cron на уровне DEBUG.
func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

// Error логирует ошибки cron.
func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}
