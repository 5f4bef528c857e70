package build

import (
	"time"

	"github.com/seanlgirgis/folio/pkg/errors"
)

// Result describes one output of one target.
type Result struct {
	Target   string
	Format   string
	Path     string
	Status   Status
	Reason   string
	Err      error
	Duration time.Duration
}

// TargetReport groups the results of one target.
type TargetReport struct {
	Name      string
	Results   []Result
	Status    TargetStatus
	Written   int
	Skipped   int
	Failed    int
	StartTime time.Time
	EndTime   time.Time
}

// Report is the outcome of a build.
type Report struct {
	Targets []*TargetReport
}

func newTargetReport(name string, start time.Time) *TargetReport {
	return &TargetReport{Name: name, Status: TargetSkipped, StartTime: start}
}

func (t *TargetReport) add(r Result) {
	t.Results = append(t.Results, r)
	switch r.Status {
	case StatusReady:
		t.Written++
	case StatusSkipped:
		t.Skipped++
	case StatusError:
		t.Failed++
	}
	t.updateStatus()
}

func (t *TargetReport) updateStatus() {
	attempted := t.Written + t.Failed
	switch {
	case attempted == 0:
		t.Status = TargetSkipped
	case t.Failed == attempted:
		t.Status = TargetError
	case t.Failed > 0:
		t.Status = TargetPartial
	default:
		t.Status = TargetSuccess
	}
}

// Results returns every result in target then format order.
func (r *Report) Results() []Result {
	var all []Result
	for _, t := range r.Targets {
		all = append(all, t.Results...)
	}
	return all
}

// Failed returns the results that ended in error.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results() {
		if res.Status == StatusError {
			failed = append(failed, res)
		}
	}
	return failed
}

// Err summarises failures as a single error, or nil when every attempted
// output was written.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	outputs := make([]string, 0, len(failed))
	for _, f := range failed {
		outputs = append(outputs, f.Target+"."+f.Format)
	}
	return errors.Newf(errors.ErrRender, "%d output(s) failed", len(failed)).
		WithDetail("outputs", outputs)
}
