package repo

import "errors"

// Общие ошибки репозиториев.
var (
	// ErrNotConfigured — база данных не настроена.
	ErrNotConfigured = errors.New("database is not configured")
)
