// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/seanlgirgis/folio/pkg/build"
	"github.com/seanlgirgis/folio/pkg/errors"
	"github.com/seanlgirgis/folio/pkg/ui/text"
)

// Renderer provides rich terminal output using pterm styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// TargetStyle returns the badge style for a target status.
func TargetStyle(status build.TargetStatus) *pterm.Style {
	switch status {
	case build.TargetSuccess:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case build.TargetError:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	case build.TargetPartial:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// ResultStyle returns the style for one output line.
func ResultStyle(status build.Status) *pterm.Style {
	switch status {
	case build.StatusReady:
		return pterm.NewStyle(pterm.FgGreen)
	case build.StatusError:
		return pterm.NewStyle(pterm.FgRed)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// RenderReport renders a badge per target followed by its outputs.
func (r *Renderer) RenderReport(report *build.Report) error {
	for _, t := range report.Targets {
		badge := TargetStyle(t.Status).Sprintf(" %s ", t.Status)
		if _, err := fmt.Fprintf(r.output, "%s %s %s\n", badge, pterm.Bold.Sprint(t.Name),
			pterm.FgGray.Sprintf("%s", t.EndTime.Sub(t.StartTime).Round(time.Millisecond))); err != nil {
			return err
		}
		for _, res := range t.Results {
			line := fmt.Sprintf("  %-4s %s", res.Format, text.Detail(res))
			if _, err := fmt.Fprintln(r.output, ResultStyle(res.Status).Sprint(line)); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderError renders an error, with its code when it has one
func (r *Renderer) RenderError(err error) error {
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		_, werr := fmt.Fprintf(r.output, "%s Error [%s]: %s\n",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(code),
			err.Error())
		return werr
	}
	_, werr := fmt.Fprintf(r.output, "%s %s\n", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(err.Error()))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", pterm.Info.Prefix.Text, msg)
	return err
}
