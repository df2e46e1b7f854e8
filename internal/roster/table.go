package roster

import (
	"slices"

	"github.com/shaiso/Roster/internal/domain"
)

// Table — упорядоченная таблица записей.
//
// Columns после Fetch всегда равны domain.Columns. После ReadCSV
// содержат заголовок файла как есть.
type Table struct {
	Columns []string
	Rows    []domain.MemberRecord
}

// NewTable создаёт пустую таблицу со стандартными колонками.
func NewTable(capacity int) *Table {
	return &Table{
		Columns: slices.Clone(domain.Columns),
		Rows:    make([]domain.MemberRecord, 0, capacity),
	}
}

// Append добавляет запись в конец таблицы.
func (t *Table) Append(rec domain.MemberRecord) {
	t.Rows = append(t.Rows, rec)
}

// Len возвращает количество строк.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Column возвращает значения колонки по всем строкам.
// Для неизвестной колонки возвращает nil.
func (t *Table) Column(name string) []*string {
	if !slices.Contains(domain.Columns, name) {
		return nil
	}
	values := make([]*string, len(t.Rows))
	for i, row := range t.Rows {
		values[i], _ = row.Get(name)
	}
	return values
}

// Find возвращает строки, в которых колонка column равна value.
func (t *Table) Find(column, value string) []domain.MemberRecord {
	var found []domain.MemberRecord
	for _, row := range t.Rows {
		v, ok := row.Get(column)
		if ok && v != nil && *v == value {
			found = append(found, row)
		}
	}
	return found
}
