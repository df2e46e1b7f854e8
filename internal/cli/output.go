package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shaiso/Roster/internal/pipeline"
)

// Output управляет выводом CLI.
type Output struct {
	w    io.Writer // stdout для данных
	errW io.Writer // stderr для сообщений
}

// NewOutput создаёт Output поверх stdout и stderr.
func NewOutput() *Output {
	return &Output{
		w:    os.Stdout,
		errW: os.Stderr,
	}
}

// Writer возвращает writer для данных.
func (o *Output) Writer() io.Writer {
	return o.w
}

// Table выводит данные в виде таблицы через tabwriter.
func (o *Output) Table(headers []string, rows [][]string) {
	tw := tabwriter.NewWriter(o.w, 0, 0, 2, ' ', 0)

	// Заголовки
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	// Разделитель
	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))

	// Строки данных
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	tw.Flush()
}

// Summary выводит итог run pipeline.
func (o *Output) Summary(s *pipeline.Summary) {
	fmt.Fprintf(o.w, "\n===== Pipeline summary (run %s) =====\n", s.RunID)

	rows := make([][]string, len(s.Tasks))
	for i, t := range s.Tasks {
		rows[i] = []string{t.Name, t.Status.String(), t.Duration().Round(time.Millisecond).String(), t.Error}
	}
	o.Table([]string{"TASK", "STATUS", "DURATION", "ERROR"}, rows)
}

// Success выводит сообщение об успехе в stderr.
func (o *Output) Success(msg string) {
	fmt.Fprintln(o.errW, msg)
}

// Error выводит сообщение об ошибке в stderr.
func (o *Output) Error(msg string) {
	fmt.Fprintln(o.errW, "Error: "+msg)
}
