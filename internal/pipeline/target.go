package pipeline

import "os"

// Target — результат task, который могут читать другие tasks.
type Target interface {
	// Path возвращает путь к результату.
	Path() string

	// Exists возвращает true, если результат уже создан.
	Exists() bool
}

// LocalTarget — файл на локальном диске.
type LocalTarget struct {
	path string
}

// NewLocalTarget создаёт LocalTarget для path.
func NewLocalTarget(path string) *LocalTarget {
	return &LocalTarget{path: path}
}

// Path возвращает путь к файлу.
func (t *LocalTarget) Path() string {
	return t.path
}

// Exists возвращает true, если файл существует и это не директория.
func (t *LocalTarget) Exists() bool {
	info, err := os.Stat(t.path)
	return err == nil && !info.IsDir()
}
