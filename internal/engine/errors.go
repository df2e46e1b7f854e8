package engine

import "errors"

// Ошибки валидации графа.
var (
	// ErrEmptyTasks — граф не содержит tasks.
	ErrEmptyTasks = errors.New("pipeline has no tasks")

	// ErrEmptyTaskID — task не имеет ID.
	ErrEmptyTaskID = errors.New("task has empty ID")

	// ErrDuplicateTaskID — несколько tasks с одинаковым ID.
	ErrDuplicateTaskID = errors.New("duplicate task ID")

	// ErrMissingDependency — task зависит от несуществующего task.
	ErrMissingDependency = errors.New("task depends on unknown task")

	// ErrCyclicDependency — обнаружен цикл в зависимостях.
	ErrCyclicDependency = errors.New("cyclic dependency detected")

	// ErrSelfDependency — task зависит от самого себя.
	ErrSelfDependency = errors.New("task depends on itself")

	// ErrUnknownTask — запрошен task, которого нет в графе.
	ErrUnknownTask = errors.New("unknown task")
)

// ValidationError — ошибка валидации с контекстом.
type ValidationError struct {
	TaskID  string // ID task, где произошла ошибка
	Message string // описание ошибки
	Err     error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *ValidationError) Error() string {
	if e.TaskID != "" {
		return "task " + e.TaskID + ": " + e.Message
	}
	return e.Message
}

// Unwrap возвращает базовую ошибку.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError создаёт новую ошибку валидации.
func NewValidationError(taskID, message string, err error) *ValidationError {
	return &ValidationError{
		TaskID:  taskID,
		Message: message,
		Err:     err,
	}
}
