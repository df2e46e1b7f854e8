package roster

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shaiso/Roster/internal/telemetry"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	maxResponseBody    = 50 * 1024 * 1024 // 50 MB
	maxErrorBody       = 200
)

// Fetcher выполняет запрос к API и возвращает плоскую таблицу.
//
// Повторных попыток нет: любая ошибка сразу возвращается вызывающему.
type Fetcher struct {
	client *http.Client
}

// NewFetcher создаёт Fetcher с таймаутом запроса.
// Если timeout <= 0, используется таймаут по умолчанию.
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// NewFetcherWithClient создаёт Fetcher поверх готового клиента.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch выполняет GET url и разворачивает список objects в таблицу.
//
// Статус вне диапазона 2xx возвращает *HTTPError.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Table, error) {
	logger := telemetry.FromContext(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrHTTPRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTTPRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &HTTPError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	table, err := Parse(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, err
	}

	logger.Info("roster fetched",
		"url", url,
		"status_code", resp.StatusCode,
		"rows", table.Len(),
		"duration", time.Since(start),
	)

	return table, nil
}
