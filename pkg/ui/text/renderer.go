// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/seanlgirgis/folio/pkg/build"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderReport writes one line per output, grouped by target.
func (r *Renderer) RenderReport(report *build.Report) error {
	for _, t := range report.Targets {
		if _, err := fmt.Fprintf(r.output, "%s: %s (%d written, %d skipped, %d failed)\n",
			t.Name, t.Status, t.Written, t.Skipped, t.Failed); err != nil {
			return err
		}
		for _, res := range t.Results {
			if _, err := fmt.Fprintf(r.output, "  %-4s %-7s %s\n", res.Format, res.Status, Detail(res)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Detail is the path of a written output, or why it was not written.
func Detail(res build.Result) string {
	switch res.Status {
	case build.StatusReady:
		return res.Path
	case build.StatusSkipped:
		return res.Reason
	}
	if res.Err != nil {
		return res.Err.Error()
	}
	return ""
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
