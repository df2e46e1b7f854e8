package pipeline

import (
	"errors"
	"fmt"
)

// Ошибки pipeline.
var (
	// ErrNoTasks — runner создан без tasks.
	ErrNoTasks = errors.New("no tasks registered")

	// ErrMissingInput — output зависимости отсутствует.
	ErrMissingInput = errors.New("unfulfilled dependency")

	// ErrIncomplete — task завершился, но не стал complete.
	ErrIncomplete = errors.New("task is not complete after run")

	// ErrMissingOutput — task с файловым output не создал файл.
	ErrMissingOutput = errors.New("task output is missing after run")
)

// TaskError — ошибка выполнения task.
type TaskError struct {
	Task string // имя task
	Err  error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *TaskError) Error() string {
	return fmt.Sprintf("task %s: %v", e.Task, e.Err)
}

// Unwrap возвращает базовую ошибку.
func (e *TaskError) Unwrap() error {
	return e.Err
}
