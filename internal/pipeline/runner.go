package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shaiso/Roster/internal/domain"
	"github.com/shaiso/Roster/internal/engine"
	"github.com/shaiso/Roster/internal/telemetry"
)

// Notifier получает события о выполнении pipeline.
type Notifier interface {
	// TaskFinished вызывается после завершения каждого task (DONE, SKIPPED, FAILED).
	TaskFinished(ctx context.Context, task *domain.Task) error

	// RunFinished вызывается после завершения run.
	RunFinished(ctx context.Context, summary *Summary) error
}

// Summary — итог выполнения run.
type Summary struct {
	// RunID — идентификатор run.
	RunID uuid.UUID `json:"run_id"`

	// Main — имя главного task.
	Main string `json:"main"`

	// Tasks — записи о tasks в порядке выполнения.
	Tasks []*domain.Task `json:"tasks"`

	// Счётчики по статусам.
	Done    int `json:"done"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`

	// StartedAt, FinishedAt — границы run.
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Succeeded возвращает true, если ни один task не упал.
func (s *Summary) Succeeded() bool {
	return s.Failed == 0
}

// Runner выполняет tasks последовательно в порядке зависимостей.
type Runner struct {
	tasks    map[string]Task
	dag      *engine.DAG
	notifier Notifier
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// Config — конфигурация Runner.
type Config struct {
	// Tasks — все tasks pipeline.
	Tasks []Task

	// Notifier — необязательный получатель событий.
	Notifier Notifier

	// Metrics — необязательные метрики.
	Metrics *telemetry.Metrics

	// Logger
	Logger *slog.Logger
}

// NewRunner создаёт Runner и проверяет граф зависимостей.
func NewRunner(cfg Config) (*Runner, error) {
	if len(cfg.Tasks) == 0 {
		return nil, ErrNoTasks
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	tasks := make(map[string]Task, len(cfg.Tasks))
	defs := make([]engine.TaskDef, 0, len(cfg.Tasks))
	for _, t := range cfg.Tasks {
		tasks[t.Name()] = t
		defs = append(defs, engine.TaskDef{ID: t.Name(), Requires: t.Requires()})
	}

	dag, err := engine.BuildDAG(defs)
	if err != nil {
		return nil, fmt.Errorf("build task graph: %w", err)
	}

	return &Runner{
		tasks:    tasks,
		dag:      dag,
		notifier: cfg.Notifier,
		metrics:  cfg.Metrics,
		logger:   logger,
	}, nil
}

// Run выполняет main и все его зависимости.
//
// Выполнение останавливается на первом упавшем task, Summary при этом
// возвращается вместе с ошибкой.
func (r *Runner) Run(ctx context.Context, main string) (*Summary, error) {
	nodes, err := r.dag.Upstream(main)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		RunID:     uuid.New(),
		Main:      main,
		Tasks:     make([]*domain.Task, 0, len(nodes)),
		StartedAt: time.Now(),
	}
	logger := telemetry.WithRunID(r.logger, summary.RunID.String())
	logger.Info("run started", "main", main, "tasks", len(nodes))

	var runErr error
	for _, node := range nodes {
		if err := ctx.Err(); err != nil {
			runErr = fmt.Errorf("run cancelled: %w", err)
			break
		}

		record, err := r.runTask(ctx, logger, summary.RunID, r.tasks[node.ID])
		summary.Tasks = append(summary.Tasks, record)
		switch record.Status {
		case domain.TaskStatusDone:
			summary.Done++
		case domain.TaskStatusSkipped:
			summary.Skipped++
		case domain.TaskStatusFailed:
			summary.Failed++
		}
		r.notifyTask(ctx, logger, record)

		if err != nil {
			runErr = err
			break
		}
	}

	if runErr == nil && !r.tasks[main].Complete() {
		runErr = &TaskError{Task: main, Err: ErrIncomplete}
	}

	summary.FinishedAt = time.Now()
	if runErr != nil {
		logger.Error("run failed", "main", main, "error", runErr)
	} else {
		if r.metrics != nil {
			r.metrics.MarkSuccess(summary.FinishedAt)
		}
		logger.Info("run finished",
			"main", main,
			"done", summary.Done,
			"skipped", summary.Skipped,
			"duration", summary.FinishedAt.Sub(summary.StartedAt),
		)
	}
	r.notifyRun(ctx, logger, summary)

	return summary, runErr
}

// runTask выполняет один task и возвращает запись о нём.
func (r *Runner) runTask(ctx context.Context, logger *slog.Logger, runID uuid.UUID, task Task) (*domain.Task, error) {
	record := domain.NewTask(runID, task.Name())
	logger = telemetry.WithTask(logger, record.ID.String(), record.Name)

	if task.Complete() {
		record.MarkSkipped()
		r.observe(record)
		logger.Info("task already complete, skipping")
		return record, nil
	}

	inputs, err := r.collectInputs(task)
	if err != nil {
		record.MarkFailed(err.Error())
		r.observe(record)
		return record, &TaskError{Task: task.Name(), Err: err}
	}

	record.MarkRunning()
	logger.Info("task started")

	err = task.Run(telemetry.WithLogger(ctx, logger), inputs)
	if err == nil {
		err = verifyComplete(task)
	}
	if err != nil {
		record.MarkFailed(err.Error())
		r.observe(record)
		logger.Error("task failed", "error", err, "duration", record.Duration())
		return record, &TaskError{Task: task.Name(), Err: err}
	}

	record.MarkDone()
	r.observe(record)
	logger.Info("task done", "duration", record.Duration())
	return record, nil
}

// collectInputs собирает outputs зависимостей task.
func (r *Runner) collectInputs(task Task) ([]Target, error) {
	inputs := make([]Target, 0, len(task.Requires()))
	for _, name := range task.Requires() {
		out := r.tasks[name].Output()
		if out == nil {
			continue
		}
		if !out.Exists() {
			return nil, fmt.Errorf("%w: %s output %s", ErrMissingInput, name, out.Path())
		}
		inputs = append(inputs, out)
	}
	return inputs, nil
}

// verifyComplete проверяет состояние task после Run.
func verifyComplete(task Task) error {
	if out := task.Output(); out != nil && !out.Exists() {
		return fmt.Errorf("%w: %s", ErrMissingOutput, out.Path())
	}
	if !task.Complete() {
		return ErrIncomplete
	}
	return nil
}

func (r *Runner) observe(record *domain.Task) {
	if r.metrics != nil {
		r.metrics.ObserveTask(record.Name, record.Status.String(), record.Duration())
	}
}

func (r *Runner) notifyTask(ctx context.Context, logger *slog.Logger, record *domain.Task) {
	if r.notifier == nil {
		return
	}
	if err := r.notifier.TaskFinished(ctx, record); err != nil {
		logger.Warn("failed to publish task event", "task", record.Name, "error", err)
	}
}

func (r *Runner) notifyRun(ctx context.Context, logger *slog.Logger, summary *Summary) {
	if r.notifier == nil {
		return
	}
	if err := r.notifier.RunFinished(ctx, summary); err != nil {
		logger.Warn("failed to publish run event", "error", err)
	}
}
