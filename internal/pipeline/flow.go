package pipeline

import (
	"io"

	"github.com/shaiso/Roster/internal/roster"
	"github.com/shaiso/Roster/internal/telemetry"
)

// Flow — стандартный pipeline из двух tasks: fetch, затем check.
type Flow struct {
	Fetch *FetchDataFromOrigin
	Check *CheckResultOfFetch
}

// FlowOptions — параметры стандартного pipeline.
type FlowOptions struct {
	SourceURL string
	Dir       string
	FileName  string
	Out       io.Writer
	Metrics   *telemetry.Metrics
}

// NewFlow создаёт стандартный pipeline.
func NewFlow(fetcher *roster.Fetcher, opts FlowOptions) *Flow {
	return &Flow{
		Fetch: NewFetchDataFromOrigin(fetcher, roster.CreateFileOptions{
			SourceURL: opts.SourceURL,
			Dir:       opts.Dir,
			FileName:  opts.FileName,
		}, opts.Metrics),
		Check: NewCheckResultOfFetch(opts.Out),
	}
}

// Tasks возвращает tasks pipeline.
func (f *Flow) Tasks() []Task {
	return []Task{f.Fetch, f.Check}
}

// Main возвращает имя главного task.
func (f *Flow) Main() string {
	return TaskCheckResultOfFetch
}
