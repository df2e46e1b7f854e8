package roster

import (
	"errors"
	"fmt"
)

// Ошибки загрузки.
var (
	// ErrHTTPRequest — HTTP-запрос не удалось выполнить.
	ErrHTTPRequest = errors.New("http request failed")

	// ErrHTTPStatus — API вернул неуспешный статус.
	ErrHTTPStatus = errors.New("unexpected http status")

	// ErrDecode — тело ответа не является валидным JSON.
	ErrDecode = errors.New("decode response")
)

// Ошибки CSV.
var (
	// ErrMalformedCSV — файл не удаётся прочитать как таблицу.
	ErrMalformedCSV = errors.New("malformed csv")
)

// Ошибки самопроверки.
var (
	// ErrColumnsMismatch — колонки не совпадают с ожидаемыми.
	ErrColumnsMismatch = errors.New("column names do not match")

	// ErrKnownRowMismatch — известная запись отсутствует или неверна.
	ErrKnownRowMismatch = errors.New("known row is incorrect")

	// ErrTooFewRows — строк меньше ожидаемого.
	ErrTooFewRows = errors.New("too few data rows")
)

// HTTPError — неуспешный ответ API.
type HTTPError struct {
	URL        string
	StatusCode int
	Status     string
	Body       string
}

// Error реализует интерфейс error.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("GET %s: HTTP %d: %s", e.URL, e.StatusCode, e.Body)
}

// Unwrap возвращает ErrHTTPStatus.
func (e *HTTPError) Unwrap() error {
	return ErrHTTPStatus
}

// CheckError — ошибка самопроверки таблицы.
type CheckError struct {
	Message string // описание ошибки
	Err     error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *CheckError) Error() string {
	return "check failed: " + e.Message
}

// Unwrap возвращает базовую ошибку.
func (e *CheckError) Unwrap() error {
	return e.Err
}

// newCheckError создаёт CheckError.
func newCheckError(err error, format string, args ...any) *CheckError {
	return &CheckError{
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}
