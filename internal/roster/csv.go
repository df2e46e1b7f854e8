package roster

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/shaiso/Roster/internal/domain"
)

// WriteCSV пишет таблицу в w: строка заголовка и по строке на запись.
// Колонки индекса нет, nil пишется пустым полем.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(domain.Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(domain.Columns))
	for i, row := range t.Rows {
		for j, v := range row.Values() {
			record[j] = domain.StringValue(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV читает таблицу, записанную WriteCSV.
//
// Пустые поля читаются как nil. Колонки сопоставляются по имени заголовка,
// неизвестные колонки игнорируются.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header", ErrMalformedCSV)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}

	// Позиция каждой стандартной колонки в файле, -1 если её нет.
	positions := make([]int, len(domain.Columns))
	for i, name := range domain.Columns {
		positions[i] = slices.Index(header, name)
	}

	table := &Table{Columns: header}
	values := make([]*string, len(domain.Columns))
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
		}

		for i, pos := range positions {
			values[i] = nil
			if pos >= 0 && record[pos] != "" {
				values[i] = domain.StringPtr(record[pos])
			}
		}
		table.Append(domain.MemberRecordFromValues(values))
	}

	return table, nil
}

// WriteFile атомарно записывает таблицу в path.
//
// Данные пишутся во временный файл в той же директории и переименовываются.
func WriteFile(path string, t *Table) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := WriteCSV(bw, t); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	committed = true
	return nil
}

// ReadFile читает таблицу из CSV файла.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	table, err := ReadCSV(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return table, nil
}
