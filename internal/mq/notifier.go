package mq

import (
	"context"

	"github.com/shaiso/Roster/internal/domain"
	"github.com/shaiso/Roster/internal/pipeline"
)

// Notifier публикует события pipeline через Publisher.
type Notifier struct {
	publisher *Publisher
}

var _ pipeline.Notifier = (*Notifier)(nil)

// NewNotifier создаёт Notifier.
func NewNotifier(publisher *Publisher) *Notifier {
	return &Notifier{publisher: publisher}
}

// TaskFinished публикует task.finished.
func (n *Notifier) TaskFinished(ctx context.Context, task *domain.Task) error {
	return n.publisher.PublishTaskFinished(ctx, TaskFinishedPayload{
		TaskID:     task.ID,
		RunID:      task.RunID,
		Task:       task.Name,
		Status:     task.Status.String(),
		Error:      task.Error,
		DurationMs: task.Duration().Milliseconds(),
	})
}

// RunFinished публикует run.finished.
func (n *Notifier) RunFinished(ctx context.Context, summary *pipeline.Summary) error {
	return n.publisher.PublishRunFinished(ctx, RunFinishedPayload{
		RunID:     summary.RunID,
		Main:      summary.Main,
		Succeeded: summary.Succeeded(),
		Done:      summary.Done,
		Skipped:   summary.Skipped,
		Failed:    summary.Failed,
	})
}
