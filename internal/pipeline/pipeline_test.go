package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shaiso/Roster/internal/domain"
	"github.com/shaiso/Roster/internal/roster"
)

// fakeTask — task с управляемым поведением.
type fakeTask struct {
	name     string
	requires []string
	output   Target
	complete bool
	err      error

	runs   int
	inputs []Target
	log    *[]string
}

func (t *fakeTask) Name() string       { return t.name }
func (t *fakeTask) Requires() []string { return t.requires }
func (t *fakeTask) Output() Target     { return t.output }
func (t *fakeTask) Complete() bool     { return t.complete }

func (t *fakeTask) Run(_ context.Context, inputs []Target) error {
	t.runs++
	t.inputs = inputs
	if t.log != nil {
		*t.log = append(*t.log, t.name)
	}
	if t.err != nil {
		return t.err
	}
	t.complete = true
	return nil
}

// recordingNotifier запоминает события.
type recordingNotifier struct {
	tasks []string
	runs  int
	err   error
}

func (n *recordingNotifier) TaskFinished(_ context.Context, task *domain.Task) error {
	n.tasks = append(n.tasks, task.Name+":"+task.Status.String())
	return n.err
}

func (n *recordingNotifier) RunFinished(_ context.Context, _ *Summary) error {
	n.runs++
	return n.err
}

// --- Runner Tests ---

func TestRunner_DependencyOrder(t *testing.T) {
	var log []string
	a := &fakeTask{name: "a", log: &log}
	b := &fakeTask{name: "b", requires: []string{"a"}, log: &log}
	c := &fakeTask{name: "c", requires: []string{"b"}, log: &log}
	other := &fakeTask{name: "other", log: &log}

	runner, err := NewRunner(Config{Tasks: []Task{c, other, b, a}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := runner.Run(context.Background(), "c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Join(log, ",") != "a,b,c" {
		t.Errorf("expected a,b,c, got %v", log)
	}
	if other.runs != 0 {
		t.Error("unrelated task should not run")
	}
	if summary.Done != 3 || summary.Skipped != 0 || !summary.Succeeded() {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if len(summary.Tasks) != 3 {
		t.Errorf("expected 3 task records, got %d", len(summary.Tasks))
	}
}

func TestRunner_SkipsCompleteTasks(t *testing.T) {
	out := NewLocalTarget(filepath.Join(t.TempDir(), "step1.csv"))
	if err := os.WriteFile(out.Path(), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	fetch := &fakeTask{name: "fetch", output: out, complete: true}
	check := &fakeTask{name: "check", requires: []string{"fetch"}}

	runner, _ := NewRunner(Config{Tasks: []Task{fetch, check}})
	summary, err := runner.Run(context.Background(), "check")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetch.runs != 0 {
		t.Error("complete task should be skipped")
	}
	if check.runs != 1 {
		t.Errorf("check should run once, got %d", check.runs)
	}
	if len(check.inputs) != 1 || check.inputs[0].Path() != out.Path() {
		t.Errorf("check should receive fetch output, got %v", check.inputs)
	}
	if summary.Skipped != 1 || summary.Done != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.Tasks[0].Status != domain.TaskStatusSkipped {
		t.Errorf("expected SKIPPED, got %s", summary.Tasks[0].Status)
	}
}

func TestRunner_StopsOnFailure(t *testing.T) {
	boom := errors.New("boom")
	fetch := &fakeTask{name: "fetch", err: boom}
	check := &fakeTask{name: "check", requires: []string{"fetch"}}
	notifier := &recordingNotifier{}

	runner, _ := NewRunner(Config{Tasks: []Task{fetch, check}, Notifier: notifier})
	summary, err := runner.Run(context.Background(), "check")

	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	var taskErr *TaskError
	if !errors.As(err, &taskErr) || taskErr.Task != "fetch" {
		t.Errorf("expected TaskError for fetch, got %v", err)
	}
	if check.runs != 0 {
		t.Error("check should not run after failure")
	}
	if summary.Failed != 1 || summary.Succeeded() {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.Tasks[0].Error != "boom" {
		t.Errorf("expected error text, got %q", summary.Tasks[0].Error)
	}
	if strings.Join(notifier.tasks, ",") != "fetch:FAILED" || notifier.runs != 1 {
		t.Errorf("unexpected notifications: %v, runs=%d", notifier.tasks, notifier.runs)
	}
}

func TestRunner_MissingOutputFails(t *testing.T) {
	out := NewLocalTarget(filepath.Join(t.TempDir(), "never.csv"))
	fetch := &fakeTask{name: "fetch", output: out}
	check := &fakeTask{name: "check", requires: []string{"fetch"}}

	runner, _ := NewRunner(Config{Tasks: []Task{fetch, check}})
	_, err := runner.Run(context.Background(), "check")

	if !errors.Is(err, ErrMissingOutput) {
		t.Errorf("expected ErrMissingOutput, got %v", err)
	}
	if check.runs != 0 {
		t.Error("check should not run without input")
	}
}

func TestRunner_CompleteWithoutFileFails(t *testing.T) {
	// Task считает себя complete, но файла нет
	out := NewLocalTarget(filepath.Join(t.TempDir(), "gone.csv"))
	fetch := &fakeTask{name: "fetch", output: out, complete: true}
	check := &fakeTask{name: "check", requires: []string{"fetch"}}

	runner, _ := NewRunner(Config{Tasks: []Task{fetch, check}})
	_, err := runner.Run(context.Background(), "check")

	if !errors.Is(err, ErrMissingInput) {
		t.Errorf("expected ErrMissingInput, got %v", err)
	}
}

func TestRunner_NotifierErrorsIgnored(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("broker down")}
	runner, _ := NewRunner(Config{Tasks: []Task{&fakeTask{name: "a"}}, Notifier: notifier})

	if _, err := runner.Run(context.Background(), "a"); err != nil {
		t.Fatalf("notifier errors should not fail the run: %v", err)
	}
	if len(notifier.tasks) != 1 || notifier.runs != 1 {
		t.Errorf("unexpected notifications: %v", notifier.tasks)
	}
}

func TestRunner_Errors(t *testing.T) {
	if _, err := NewRunner(Config{}); !errors.Is(err, ErrNoTasks) {
		t.Errorf("expected ErrNoTasks, got %v", err)
	}

	_, err := NewRunner(Config{Tasks: []Task{&fakeTask{name: "a", requires: []string{"missing"}}}})
	if err == nil {
		t.Error("expected error for unknown dependency")
	}

	runner, _ := NewRunner(Config{Tasks: []Task{&fakeTask{name: "a"}}})
	if _, err := runner.Run(context.Background(), "nope"); err == nil {
		t.Error("expected error for unknown main task")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := runner.Run(ctx, "a"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

// --- Flow Tests ---

// rosterServer отдаёт n записей, первая из которых — Cohen.
func rosterServer(t *testing.T, n int, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	objects := []any{map[string]any{
		"phone":  "202-225-3265",
		"party":  "Democrat",
		"extra":  map[string]any{"address": "2268 Rayburn HOB"},
		"person": map[string]any{"sortname": "Cohen, Steve (Rep.) [D-TN9]", "lastname": "Cohen"},
	}}
	for i := 1; i < n; i++ {
		objects = append(objects, map[string]any{
			"phone":  fmt.Sprintf("202-225-%04d", i),
			"person": map[string]any{"lastname": fmt.Sprintf("Member%d", i)},
		})
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"objects": objects})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFlow_FetchThenCheck(t *testing.T) {
	var hits atomic.Int32
	server := rosterServer(t, 438, &hits)
	dir := t.TempDir()
	var out bytes.Buffer

	flow := NewFlow(roster.NewFetcher(0), FlowOptions{
		SourceURL: server.URL,
		Dir:       dir,
		FileName:  "step1.csv",
		Out:       &out,
	})

	runner, err := NewRunner(Config{Tasks: flow.Tasks()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary, err := runner.Run(context.Background(), flow.Main())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Done != 2 {
		t.Errorf("expected 2 done tasks, got %+v", summary)
	}
	if hits.Load() != 1 {
		t.Errorf("expected 1 API call, got %d", hits.Load())
	}

	if !flow.Check.Complete() {
		t.Error("check should be complete")
	}
	if flow.Check.RowCount() != 438 {
		t.Errorf("expected 438 rows, got %d", flow.Check.RowCount())
	}
	if strings.Join(flow.Check.Columns(), ",") != strings.Join(domain.Columns, ",") {
		t.Errorf("unexpected columns: %v", flow.Check.Columns())
	}

	report := out.String()
	for _, want := range []string{
		"* In CheckResultOfFetch.run()",
		" > Reading file " + filepath.Join(dir, "step1.csv"),
		" > Column names: ['sortname', 'name', 'firstname',",
		" > Data row count: 438",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report should contain %q, got:\n%s", want, report)
		}
	}

	// Повторный run в новом pipeline: fetch пропускается, check выполняется снова
	again := NewFlow(roster.NewFetcher(0), FlowOptions{
		SourceURL: server.URL,
		Dir:       dir,
		FileName:  "step1.csv",
		Out:       &bytes.Buffer{},
	})
	runner, _ = NewRunner(Config{Tasks: again.Tasks()})
	summary, err = runner.Run(context.Background(), again.Main())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Skipped != 1 || summary.Done != 1 {
		t.Errorf("expected fetch skipped and check done, got %+v", summary)
	}
	if hits.Load() != 1 {
		t.Errorf("fetch should not call API again, got %d calls", hits.Load())
	}
}

func TestFlow_CheckFailureStopsPipeline(t *testing.T) {
	server := rosterServer(t, 20, nil)
	dir := t.TempDir()

	flow := NewFlow(roster.NewFetcher(0), FlowOptions{
		SourceURL: server.URL,
		Dir:       dir,
		FileName:  "step1.csv",
		Out:       &bytes.Buffer{},
	})
	runner, _ := NewRunner(Config{Tasks: flow.Tasks()})

	_, err := runner.Run(context.Background(), flow.Main())
	if !errors.Is(err, roster.ErrTooFewRows) {
		t.Fatalf("expected ErrTooFewRows, got %v", err)
	}
	if flow.Check.Complete() {
		t.Error("check should not complete")
	}
	if flow.Fetch.Complete() {
		t.Error("no file should be written")
	}
}

func TestFormatList(t *testing.T) {
	if got := formatList([]string{"a", "b"}); got != "['a', 'b']" {
		t.Errorf("unexpected format: %s", got)
	}
	if got := formatList(nil); got != "[]" {
		t.Errorf("unexpected format: %s", got)
	}
}
