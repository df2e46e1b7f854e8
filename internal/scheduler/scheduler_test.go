package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestValidateCronExpr(t *testing.T) {
	tests := []struct {
		expr  string
		valid bool
	}{
		{"0 6 * * *", true},
		{"*/5 * * * *", true},
		{"0 6 * * MON-FRI", true},
		{"", false},
		{"* * *", false},
		{"0 0 6 * * *", false}, // секунды не поддерживаются
		{"bogus", false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			err := ValidateCronExpr(tt.expr)
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNextRun(t *testing.T) {
	from := time.Date(2026, 10, 14, 7, 30, 0, 0, time.UTC)

	next, err := NextRun("0 6 * * *", from)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 10, 15, 6, 0, 0, 0, time.UTC)
	if !next.Equal(want) {
		t.Errorf("expected %v, got %v", want, next)
	}

	if _, err := NextRun("bad", from); err == nil {
		t.Error("expected error for invalid expression")
	}
}

func TestNew_InvalidExpr(t *testing.T) {
	_, err := New("nope", func(context.Context) error { return nil }, nil)
	if err == nil {
		t.Error("expected error for invalid expression")
	}
}

func TestScheduler_RunStopsOnCancel(t *testing.T) {
	s, err := New("0 6 * * *", func(context.Context) error { return nil }, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}

func TestScheduler_RunJob(t *testing.T) {
	var calls int
	s, _ := New("* * * * *", func(context.Context) error {
		calls++
		return errors.New("boom")
	}, nil)

	s.runJob(context.Background())
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.runJob(ctx)
	if calls != 1 {
		t.Error("job should not run after cancel")
	}
}
