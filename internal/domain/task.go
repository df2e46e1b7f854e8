package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task — запись о выполнении одного task в рамках run pipeline.
//
// Хранится только в памяти: состояние не переживает процесс.
type Task struct {
	// ID — уникальный идентификатор выполнения.
	ID uuid.UUID `json:"id"`

	// RunID — ссылка на run, в рамках которого выполнялся task.
	RunID uuid.UUID `json:"run_id"`

	// Name — имя task (например, "FetchDataFromOrigin").
	Name string `json:"name"`

	// Status — текущий статус.
	Status TaskStatus `json:"status"`

	// StartedAt — время начала выполнения.
	StartedAt *time.Time `json:"started_at,omitempty"`

	// FinishedAt — время завершения.
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	// Error — текст ошибки при неудаче.
	Error string `json:"error,omitempty"`
}

// NewTask создаёт запись о task в статусе PENDING.
func NewTask(runID uuid.UUID, name string) *Task {
	return &Task{
		ID:     uuid.New(),
		RunID:  runID,
		Name:   name,
		Status: TaskStatusPending,
	}
}

// Duration возвращает продолжительность выполнения.
func (t *Task) Duration() time.Duration {
	if t.StartedAt == nil || t.FinishedAt == nil {
		return 0
	}
	return t.FinishedAt.Sub(*t.StartedAt)
}

// IsFinished возвращает true, если task завершён.
func (t *Task) IsFinished() bool {
	return t.Status.IsTerminal()
}

// MarkRunning переводит task в статус RUNNING.
func (t *Task) MarkRunning() {
	now := time.Now()
	t.Status = TaskStatusRunning
	t.StartedAt = &now
}

// MarkDone переводит task в статус DONE.
func (t *Task) MarkDone() {
	now := time.Now()
	t.Status = TaskStatusDone
	t.FinishedAt = &now
}

// MarkSkipped переводит task в статус SKIPPED.
func (t *Task) MarkSkipped() {
	now := time.Now()
	t.Status = TaskStatusSkipped
	t.FinishedAt = &now
}

// MarkFailed переводит task в статус FAILED с ошибкой.
func (t *Task) MarkFailed(err string) {
	now := time.Now()
	t.Status = TaskStatusFailed
	t.FinishedAt = &now
	t.Error = err
}
