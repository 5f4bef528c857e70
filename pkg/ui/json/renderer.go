// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/seanlgirgis/folio/pkg/build"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

type resultJSON struct {
	Format     string `json:"format"`
	Status     string `json:"status"`
	Path       string `json:"path,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Error      string `json:"error,omitempty"`
	DurationMS int64  `json:"duration_ms"`
}

type targetJSON struct {
	Name    string       `json:"name"`
	Status  string       `json:"status"`
	Results []resultJSON `json:"results"`
}

// RenderReport renders the report as a list of targets
func (r *Renderer) RenderReport(report *build.Report) error {
	targets := make([]targetJSON, 0, len(report.Targets))
	for _, t := range report.Targets {
		tj := targetJSON{Name: t.Name, Status: string(t.Status), Results: []resultJSON{}}
		for _, res := range t.Results {
			rj := resultJSON{
				Format:     res.Format,
				Status:     string(res.Status),
				Path:       res.Path,
				Reason:     res.Reason,
				DurationMS: res.Duration.Milliseconds(),
			}
			if res.Err != nil {
				rj.Error = res.Err.Error()
			}
			tj.Results = append(tj.Results, rj)
		}
		targets = append(targets, tj)
	}
	return r.encoder.Encode(map[string]interface{}{"targets": targets})
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]string{"error": err.Error()})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
