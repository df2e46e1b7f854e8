package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shaiso/Roster/internal/config"
	"github.com/shaiso/Roster/internal/mq"
	"github.com/shaiso/Roster/internal/pipeline"
	"github.com/shaiso/Roster/internal/repo"
	"github.com/shaiso/Roster/internal/roster"
	"github.com/shaiso/Roster/internal/scheduler"
	"github.com/shaiso/Roster/internal/telemetry"
)

// App связывает конфигурацию, загрузчик, pipeline и интеграции.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	out     *Output
	fetcher *roster.Fetcher
	metrics *telemetry.Metrics
}

// NewApp создаёт App.
func NewApp(cfg *config.Config, logger *slog.Logger, out *Output) *App {
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = NewOutput()
	}
	return &App{
		cfg:     cfg,
		logger:  logger,
		out:     out,
		fetcher: roster.NewFetcher(cfg.HTTPTimeout),
		metrics: telemetry.NewMetrics(),
	}
}

// RunDefault загружает и проверяет таблицу, пишет файл и выполняет pipeline.
func (a *App) RunDefault(ctx context.Context) error {
	if _, err := a.Fetch(ctx); err != nil {
		return err
	}
	_, err := a.RunPipeline(ctx)
	return err
}

// Fetch загружает таблицу, проверяет её и пишет CSV.
func (a *App) Fetch(ctx context.Context) (*roster.Table, error) {
	ctx = telemetry.WithLogger(ctx, a.logger)

	table, err := roster.CreateFile(ctx, a.fetcher, roster.CreateFileOptions{
		SourceURL:    a.cfg.SourceURL,
		Dir:          a.cfg.OutputDir,
		FileName:     a.cfg.OutputFile,
		PerformCheck: true,
	})
	if err != nil {
		return nil, err
	}
	a.metrics.SetRows(table.Len())

	a.out.Success(fmt.Sprintf("\n***\n*** House Members table is correct! (%d rows)\n***", table.Len()))
	return table, nil
}

// RunPipeline выполняет FetchDataFromOrigin → CheckResultOfFetch.
func (a *App) RunPipeline(ctx context.Context) (*pipeline.Summary, error) {
	notifier, closeNotifier := a.openNotifier(ctx)
	defer closeNotifier()

	flow := pipeline.NewFlow(a.fetcher, pipeline.FlowOptions{
		SourceURL: a.cfg.SourceURL,
		Dir:       a.cfg.OutputDir,
		FileName:  a.cfg.OutputFile,
		Out:       a.out.Writer(),
		Metrics:   a.metrics,
	})

	runner, err := pipeline.NewRunner(pipeline.Config{
		Tasks:    flow.Tasks(),
		Notifier: notifier,
		Metrics:  a.metrics,
		Logger:   a.logger,
	})
	if err != nil {
		return nil, err
	}

	summary, err := runner.Run(ctx, flow.Main())
	if summary != nil {
		a.out.Summary(summary)
	}
	a.pushMetrics(ctx)

	return summary, err
}

// Load читает CSV и заменяет таблицу членов Палаты в Postgres.
func (a *App) Load(ctx context.Context) (int64, error) {
	table, err := roster.ReadFile(a.cfg.OutputPath())
	if err != nil {
		return 0, err
	}

	pool, err := repo.NewPool(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return 0, fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	members := repo.NewMemberRepo(pool)
	if err := members.EnsureSchema(ctx); err != nil {
		return 0, err
	}

	n, err := members.ReplaceAll(ctx, table.Rows)
	if err != nil {
		return 0, err
	}

	a.logger.Info("house members loaded", "rows", n, "path", a.cfg.OutputPath())
	a.out.Success(fmt.Sprintf("Loaded %d rows into house_members", n))
	return n, nil
}

// Schedule выполняет RunDefault по расписанию до отмены ctx.
func (a *App) Schedule(ctx context.Context) error {
	s, err := scheduler.New(a.cfg.Schedule, a.RunDefault, a.logger)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

// openNotifier подключается к RabbitMQ, если он настроен.
// При недоступном брокере pipeline работает без событий.
func (a *App) openNotifier(ctx context.Context) (pipeline.Notifier, func()) {
	noop := func() {}
	if a.cfg.RabbitMQURL == "" {
		return nil, noop
	}

	conn, err := mq.NewConnection(a.cfg.RabbitMQURL, a.logger)
	if err != nil {
		a.logger.Warn("RabbitMQ not available, running without events", "error", err)
		return nil, noop
	}

	if err := mq.SetupTopology(ctx, conn); err != nil {
		a.logger.Warn("failed to setup topology", "error", err)
		conn.Close()
		return nil, noop
	}

	notifier := mq.NewNotifier(mq.NewPublisher(conn, a.logger))
	return notifier, func() { conn.Close() }
}

// pushMetrics отправляет метрики в Pushgateway, если он настроен.
func (a *App) pushMetrics(ctx context.Context) {
	if a.cfg.PushgatewayURL == "" {
		return
	}
	if err := a.metrics.Push(ctx, a.cfg.PushgatewayURL); err != nil {
		a.logger.Warn("failed to push metrics", "error", err)
	}
}
