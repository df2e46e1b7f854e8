// Roster — загрузка списка членов Палаты представителей.
//
// Без аргументов:
//   - Загружает список из GovTrack API
//   - Проверяет таблицу на известных данных
//   - Пишет step1.csv в текущую директорию
//   - Выполняет pipeline FetchDataFromOrigin → CheckResultOfFetch
//
// Использование:
//
//	roster [fetch|check|schedule|load]
//
// Настройки читаются из переменных окружения (ROSTER_*, DB_URL,
// RABBITMQ_URL, PUSHGATEWAY_URL, LOG_LEVEL, LOG_FORMAT).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shaiso/Roster/internal/cli"
	"github.com/shaiso/Roster/internal/config"
	"github.com/shaiso/Roster/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	// Инициализируем structured logging
	logger := telemetry.SetupLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := cli.NewApp(cfg, logger, cli.NewOutput())

	if err := cli.NewRootCmd(app, version).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(1)
	}
}
