// Package preview draws a document in the terminal, either through the
// terminal renderer or as Markdown styled by glamour.
package preview

import (
	"github.com/charmbracelet/glamour"

	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/errors"
	"github.com/seanlgirgis/folio/pkg/render/markdown"
	"github.com/seanlgirgis/folio/pkg/render/terminal"
	"github.com/seanlgirgis/folio/pkg/theme"
	"github.com/seanlgirgis/folio/pkg/ui"
)

// Options selects how a preview is drawn.
type Options struct {
	// Format is the output format, already resolved from auto.
	Format ui.Format
	// Width is the drawing width in cells; 0 uses terminal.DefaultWidth.
	Width int
	// Markdown draws the Markdown output through glamour.
	Markdown bool
}

// Render draws doc with th.
func Render(doc *document.Document, th theme.Theme, opts Options) (string, error) {
	width := opts.Width
	if width <= 0 {
		width = terminal.DefaultWidth
	}

	if !opts.Markdown {
		r := terminal.New(th, terminal.WithWidth(width), terminal.WithProfile(ui.Profile(opts.Format)))
		return r.Render(doc)
	}

	md, err := markdown.New(th).Render(doc)
	if err != nil {
		return "", err
	}
	return Glamour(md, opts.Format, width)
}

// Glamour styles markdown for the terminal. Only the terminal format gets
// colour; the others use the no-tty style.
func Glamour(md string, format ui.Format, width int) (string, error) {
	options := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if format == ui.FormatTerminal {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle("notty"))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to create markdown renderer")
	}
	out, err := renderer.Render(md)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to render markdown")
	}
	return out, nil
}
