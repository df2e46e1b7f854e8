package roster

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/shaiso/Roster/internal/telemetry"
)

// CreateFileOptions — параметры CreateFile.
type CreateFileOptions struct {
	// SourceURL — адрес API.
	SourceURL string

	// Dir — директория для файла.
	Dir string

	// FileName — имя файла. Пустое имя отключает запись.
	FileName string

	// PerformCheck — выполнить самопроверку перед записью.
	PerformCheck bool
}

// CreateFile загружает таблицу, при необходимости проверяет её и пишет в файл.
func CreateFile(ctx context.Context, f *Fetcher, opts CreateFileOptions) (*Table, error) {
	logger := telemetry.FromContext(ctx)

	table, err := f.Fetch(ctx, opts.SourceURL)
	if err != nil {
		return nil, fmt.Errorf("fetch house members: %w", err)
	}

	if opts.PerformCheck {
		if err := Check(table); err != nil {
			return nil, err
		}
		logger.Info("house members table is correct", "rows", table.Len())
	}

	if opts.FileName != "" {
		path := filepath.Join(opts.Dir, opts.FileName)
		if err := WriteFile(path, table); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info("house members file written", "path", path, "rows", table.Len())
	}

	return table, nil
}
