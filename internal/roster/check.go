package roster

import (
	"slices"

	"github.com/shaiso/Roster/internal/domain"
)

// Известные данные для самопроверки.
const (
	knownPhone    = "202-225-3265"
	knownLastName = "Cohen"
	knownSortName = "Cohen, Steve (Rep.) [D-TN9]"
	minRows       = 430
)

// Check проверяет таблицу на известных данных живого API.
//
// Проверки выполняются по порядку: колонки, известная строка, количество строк.
// Первая неудачная возвращает *CheckError.
func Check(t *Table) error {
	if !slices.Equal(t.Columns, domain.Columns) {
		return newCheckError(ErrColumnsMismatch, "column names do not match: got %v", t.Columns)
	}

	rows := t.Find(domain.ColumnPhone, knownPhone)
	if len(rows) == 0 {
		return newCheckError(ErrKnownRowMismatch, "no row with phone %s for sortname %q", knownPhone, knownSortName)
	}
	if got := domain.StringValue(rows[0].LastName); got != knownLastName {
		return newCheckError(ErrKnownRowMismatch, "data row is incorrect for sortname %q: lastname %q", knownSortName, got)
	}

	if t.Len() <= minRows {
		return newCheckError(ErrTooFewRows, "too few data rows: %d", t.Len())
	}

	return nil
}
