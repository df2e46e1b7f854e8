package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// jobName — имя job в Pushgateway.
const jobName = "roster_pipeline"

// Metrics — метрики pipeline.
//
// Метрики регистрируются в собственном реестре, а не в глобальном:
// процесс короткоживущий, и метрики отправляются в Pushgateway в конце run.
type Metrics struct {
	registry *prometheus.Registry

	tasksTotal   *prometheus.CounterVec
	taskDuration *prometheus.HistogramVec
	rowsFetched  prometheus.Gauge
	lastSuccess  prometheus.Gauge
}

// NewMetrics создаёт и регистрирует метрики pipeline.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		tasksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "roster_pipeline_tasks_total",
			Help: "Pipeline tasks by name and final status",
		}, []string{"task", "status"}),
		taskDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roster_pipeline_task_duration_seconds",
			Help:    "Duration of pipeline task runs",
			Buckets: prometheus.DefBuckets,
		}, []string{"task"}),
		rowsFetched: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_members_rows",
			Help: "Rows in the last fetched members table",
		}),
		lastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roster_pipeline_last_success_timestamp_seconds",
			Help: "Unix time of the last successful pipeline run",
		}),
	}

	m.registry.MustRegister(m.tasksTotal, m.taskDuration, m.rowsFetched, m.lastSuccess)
	return m
}

// Registry возвращает реестр метрик.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveTask учитывает завершение task.
func (m *Metrics) ObserveTask(task, status string, d time.Duration) {
	m.tasksTotal.WithLabelValues(task, status).Inc()
	if d > 0 {
		m.taskDuration.WithLabelValues(task).Observe(d.Seconds())
	}
}

// SetRows сохраняет количество строк таблицы.
func (m *Metrics) SetRows(n int) {
	m.rowsFetched.Set(float64(n))
}

// MarkSuccess отмечает успешное завершение run.
func (m *Metrics) MarkSuccess(at time.Time) {
	m.lastSuccess.Set(float64(at.Unix()))
}

// Push отправляет метрики в Pushgateway.
func (m *Metrics) Push(ctx context.Context, url string) error {
	err := push.New(url, jobName).
		Gatherer(m.registry).
		PushContext(ctx)
	if err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}
	return nil
}
