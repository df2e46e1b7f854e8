package pipeline

import "context"

// Task — единица работы в pipeline.
type Task interface {
	// Name возвращает уникальное имя task.
	Name() string

	// Requires возвращает имена tasks, которые должны выполниться раньше.
	Requires() []string

	// Output возвращает результат task или nil, если его нет.
	Output() Target

	// Complete возвращает true, если task уже выполнен.
	Complete() bool

	// Run выполняет task. inputs — outputs зависимостей в порядке Requires.
	Run(ctx context.Context, inputs []Target) error
}
