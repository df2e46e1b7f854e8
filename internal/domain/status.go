package domain

// TaskStatus — статус выполнения task в pipeline.
//
// Жизненный цикл:
//
//	PENDING → RUNNING → DONE
//	                  ↘ FAILED
//	PENDING → SKIPPED (task уже был complete до запуска)
type TaskStatus string

const (
	// TaskStatusPending — task ещё не выполнялся.
	TaskStatusPending TaskStatus = "PENDING"

	// TaskStatusRunning — task выполняется.
	TaskStatusRunning TaskStatus = "RUNNING"

	// TaskStatusDone — task успешно завершён.
	TaskStatusDone TaskStatus = "DONE"

	// TaskStatusSkipped — task не запускался, так как уже complete.
	TaskStatusSkipped TaskStatus = "SKIPPED"

	// TaskStatusFailed — task завершился с ошибкой.
	TaskStatusFailed TaskStatus = "FAILED"
)

// IsTerminal возвращает true, если статус финальный.
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskStatusDone, TaskStatusSkipped, TaskStatusFailed:
		return true
	default:
		return false
	}
}

// String возвращает строковое представление TaskStatus.
func (s TaskStatus) String() string {
	return string(s)
}
