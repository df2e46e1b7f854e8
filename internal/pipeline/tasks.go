package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shaiso/Roster/internal/roster"
	"github.com/shaiso/Roster/internal/telemetry"
)

// Имена tasks.
const (
	TaskFetchDataFromOrigin = "FetchDataFromOrigin"
	TaskCheckResultOfFetch  = "CheckResultOfFetch"
)

// FetchDataFromOrigin загружает таблицу членов Палаты и пишет её в CSV.
//
// Зависимостей нет. Task complete, когда файл уже существует.
type FetchDataFromOrigin struct {
	fetcher *roster.Fetcher
	opts    roster.CreateFileOptions
	metrics *telemetry.Metrics
	output  *LocalTarget
}

// NewFetchDataFromOrigin создаёт task. Самопроверка включается всегда.
func NewFetchDataFromOrigin(fetcher *roster.Fetcher, opts roster.CreateFileOptions, metrics *telemetry.Metrics) *FetchDataFromOrigin {
	opts.PerformCheck = true
	return &FetchDataFromOrigin{
		fetcher: fetcher,
		opts:    opts,
		metrics: metrics,
		output:  NewLocalTarget(filepath.Join(opts.Dir, opts.FileName)),
	}
}

// Name возвращает имя task.
func (t *FetchDataFromOrigin) Name() string {
	return TaskFetchDataFromOrigin
}

// Requires возвращает пустой список.
func (t *FetchDataFromOrigin) Requires() []string {
	return nil
}

// Output возвращает CSV файл.
func (t *FetchDataFromOrigin) Output() Target {
	return t.output
}

// Complete возвращает true, если CSV файл уже существует.
func (t *FetchDataFromOrigin) Complete() bool {
	return t.output.Exists()
}

// Run загружает, проверяет и записывает таблицу.
func (t *FetchDataFromOrigin) Run(ctx context.Context, _ []Target) error {
	table, err := roster.CreateFile(ctx, t.fetcher, t.opts)
	if err != nil {
		return err
	}
	if t.metrics != nil {
		t.metrics.SetRows(table.Len())
	}
	return nil
}

// CheckResultOfFetch перечитывает CSV и печатает колонки и число строк.
//
// Завершение отмечается флагом в памяти и не сохраняется между процессами.
type CheckResultOfFetch struct {
	out      io.Writer
	complete bool

	columns  []string
	rowCount int
}

// NewCheckResultOfFetch создаёт task, печатающий отчёт в out.
// Если out == nil, используется stdout.
func NewCheckResultOfFetch(out io.Writer) *CheckResultOfFetch {
	if out == nil {
		out = os.Stdout
	}
	return &CheckResultOfFetch{out: out}
}

// Name возвращает имя task.
func (t *CheckResultOfFetch) Name() string {
	return TaskCheckResultOfFetch
}

// Requires возвращает FetchDataFromOrigin.
func (t *CheckResultOfFetch) Requires() []string {
	return []string{TaskFetchDataFromOrigin}
}

// Output возвращает nil: task ничего не пишет на диск.
func (t *CheckResultOfFetch) Output() Target {
	return nil
}

// Complete возвращает флаг завершения.
func (t *CheckResultOfFetch) Complete() bool {
	return t.complete
}

// Columns возвращает колонки, прочитанные при последнем Run.
func (t *CheckResultOfFetch) Columns() []string {
	return t.columns
}

// RowCount возвращает число строк, прочитанных при последнем Run.
func (t *CheckResultOfFetch) RowCount() int {
	return t.rowCount
}

// Run читает файл зависимости и печатает отчёт.
func (t *CheckResultOfFetch) Run(ctx context.Context, inputs []Target) error {
	if len(inputs) == 0 {
		return fmt.Errorf("%w: %s has no input", ErrMissingInput, t.Name())
	}
	path := inputs[0].Path()

	fmt.Fprintf(t.out, "*\n* In %s.run()\n*\n", t.Name())
	fmt.Fprintf(t.out, " > Reading file %s into a table...\n", path)

	table, err := roster.ReadFile(path)
	if err != nil {
		return err
	}

	t.columns = table.Columns
	t.rowCount = table.Len()

	fmt.Fprintf(t.out, " > Column names: %s\n", formatList(t.columns))
	fmt.Fprintf(t.out, " > Data row count: %d\n", t.rowCount)

	telemetry.FromContext(ctx).Info("result of fetch checked",
		"path", path,
		"columns", len(t.columns),
		"rows", t.rowCount,
	)

	t.complete = true
	return nil
}

// formatList печатает имена в виде ['a', 'b'].
func formatList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = "'" + s + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
