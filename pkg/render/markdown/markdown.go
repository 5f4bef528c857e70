// Package markdown renders documents as Markdown-flavoured plain text.
//
// Every block degrades to headings, emphasis, bullets and block quotes. There
// is no grid or box emulation; grids flatten to heading and bullet sequences.
package markdown

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/errors"
	"github.com/seanlgirgis/folio/pkg/filesystem"
	"github.com/seanlgirgis/folio/pkg/inline"
	"github.com/seanlgirgis/folio/pkg/logging"
	"github.com/seanlgirgis/folio/pkg/render"
	"github.com/seanlgirgis/folio/pkg/theme"
)

// Renderer produces Markdown from a document.
type Renderer struct {
	theme  theme.Theme
	logger zerolog.Logger
	fs     filesystem.FS
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the renderer's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// WithFS sets the filesystem used by Save.
func WithFS(fsys filesystem.FS) Option {
	return func(r *Renderer) { r.fs = fsys }
}

// New creates a Markdown renderer.
func New(th theme.Theme, opts ...Option) *Renderer {
	r := &Renderer{
		theme:  th,
		logger: logging.GetLogger("render.markdown"),
		fs:     filesystem.NewOS(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the Markdown for doc.
func (r *Renderer) Render(doc *document.Document) (string, error) {
	w := &writer{}
	render.Walk(doc, w, r.logger)
	return w.String(), nil
}

// Save writes content to path.
func (r *Renderer) Save(content, path string) error {
	if err := filesystem.WriteFileAtomic(r.fs, path, []byte(content)); err != nil {
		return errors.Wrapf(err, errors.ErrSave, "failed to save markdown to %s", path)
	}
	r.logger.Info().Str("path", path).Msg("saved markdown")
	return nil
}

// writer accumulates lines; it is the Markdown render.Visitor.
type writer struct {
	lines []string
}

func (w *writer) String() string {
	out := strings.Join(w.lines, "\n")
	out = strings.TrimRight(out, "\n") + "\n"
	if strings.TrimSpace(out) == "" {
		return ""
	}
	return out
}

func (w *writer) line(format string, args ...any) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func (w *writer) blank() {
	if n := len(w.lines); n > 0 && w.lines[n-1] != "" {
		w.lines = append(w.lines, "")
	}
}

func (w *writer) heading(level int, text string) {
	if text == "" {
		return
	}
	w.blank()
	w.line("%s %s", strings.Repeat("#", level), md(text))
	w.blank()
}

// md rewrites inline markup: bold stays bold, colour is dropped.
func md(text string) string {
	var b strings.Builder
	for _, run := range inline.Parse(text) {
		if run.Bold {
			b.WriteString("**" + run.Text + "**")
			continue
		}
		b.WriteString(run.Text)
	}
	return b.String()
}

func (w *writer) PageBreak() {
	w.blank()
	w.line("---")
	w.blank()
}

func (w *writer) Header(b document.HeaderBlock) {
	w.heading(1, b.Title)
	if b.Subtitle != "" {
		w.line("**%s**", inline.Plain(b.Subtitle))
		w.blank()
	}
}

func (w *writer) SectionTitle(b document.SectionTitleBlock) {
	w.heading(2, b.Content)
}

func (w *writer) CompoundText(b document.CompoundTextBlock) {
	parts := make([]string, 0, len(b.Items))
	for _, item := range b.Items {
		if item.Text == "" {
			continue
		}
		if item.Link != "" {
			parts = append(parts, fmt.Sprintf("[%s](%s)", inline.Plain(item.Text), item.Link))
			continue
		}
		parts = append(parts, md(item.Text))
	}
	if len(parts) == 0 {
		return
	}
	w.line("%s", strings.Join(parts, b.Sep()))
	w.blank()
}

func (w *writer) Text(b document.TextBlock) {
	if b.Content == "" {
		return
	}
	switch b.Style {
	case document.StyleShaded, document.StyleShadedPrimary, document.StyleLeftBorder:
		for _, l := range strings.Split(b.Content, "\n") {
			if strings.TrimSpace(l) != "" {
				w.line("> %s", md(l))
			}
		}
	default:
		w.line("%s", md(b.Content))
	}
	w.blank()
}

func (w *writer) Grid(b document.GridBlock) {
	w.heading(2, b.Title)
	for _, item := range b.Items {
		w.heading(3, item.Header)
		for _, l := range item.Content {
			w.line("- %s", md(l))
		}
	}
	w.blank()
}

func (w *writer) List(b document.ListBlock) {
	w.heading(2, b.Title)
	for _, item := range b.Items {
		var head []string
		if item.LeftText != "" {
			head = append(head, "**"+inline.Plain(item.LeftText)+"**")
		}
		if item.RightText != "" {
			head = append(head, "*"+inline.Plain(item.RightText)+"*")
		}
		if len(head) > 0 {
			w.blank()
			w.line("%s", strings.Join(head, " | "))
		}
		if item.SubText != "" {
			w.line("_%s_", inline.Plain(item.SubText))
		}
		for _, d := range item.Details {
			w.line("- %s", md(d))
		}
	}
	w.blank()
}

func (w *writer) PlainList(b document.PlainListBlock) {
	w.heading(2, b.Title)
	for _, item := range b.Items {
		if item.Text == "" {
			continue
		}
		if item.Small() {
			w.line("- *%s*", inline.Plain(item.Text))
			continue
		}
		w.line("- %s", md(item.Text))
	}
	w.blank()
}

func (w *writer) CompactList(b document.CompactListBlock) {
	w.heading(2, b.Title)
	for _, item := range b.Items {
		if item.Content == "" && item.Date == "" {
			continue
		}
		if item.Date == "" {
			w.line("- %s", md(item.Content))
			continue
		}
		w.line("- %s (*%s*)", md(item.Content), item.Date)
	}
	w.blank()
}

func (w *writer) TextGrid(b document.TextGridBlock) {
	w.heading(2, b.Title)
	for _, item := range b.Items {
		for _, l := range item.Content {
			w.line("%s", md(l))
			w.blank()
		}
	}
	w.blank()
}

func (w *writer) Project(b document.ProjectBlock) {
	w.heading(3, b.Title)
	if len(b.Tags) > 0 {
		tags := make([]string, len(b.Tags))
		for i, t := range b.Tags {
			tags[i] = "`" + t + "`"
		}
		w.line("%s", strings.Join(tags, " "))
		w.blank()
	}
	for _, item := range b.Items {
		for _, l := range item.Lines() {
			w.line("- %s", md(l))
		}
	}
	w.blank()
}
