// Package terminal previews documents in a terminal with lipgloss.
//
// The preview is approximate: points become character cells, boxes become a
// coloured left rule with an optional background, and pills are padded
// background runs. Grids are laid out row-major with the same placement as
// the other media.
package terminal

import (
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/inline"
	"github.com/seanlgirgis/folio/pkg/logging"
	"github.com/seanlgirgis/folio/pkg/render"
	"github.com/seanlgirgis/folio/pkg/theme"
)

// DefaultWidth is the preview width in cells.
const DefaultWidth = 80

const (
	columnGap = 2
	muted     = "#666666"
)

// Renderer draws documents as styled terminal text.
type Renderer struct {
	theme  theme.Theme
	logger zerolog.Logger
	lg     *lipgloss.Renderer
	width  int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the renderer's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// WithWidth sets the preview width in cells.
func WithWidth(w int) Option {
	return func(r *Renderer) {
		if w > 0 {
			r.width = w
		}
	}
}

// WithProfile forces a colour profile; termenv.Ascii yields plain text.
func WithProfile(p termenv.Profile) Option {
	return func(r *Renderer) { r.lg.SetColorProfile(p) }
}

// New creates a terminal renderer writing styles suited to stdout.
func New(th theme.Theme, opts ...Option) *Renderer {
	r := &Renderer{
		theme:  th.Normalized(),
		logger: logging.GetLogger("render.terminal"),
		lg:     lipgloss.NewRenderer(os.Stdout),
		width:  DefaultWidth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the preview of doc.
func (r *Renderer) Render(doc *document.Document) (string, error) {
	if doc == nil {
		doc = &document.Document{}
	}
	v := &view{r: r, th: r.theme}
	if stripe, ok := render.ResolveStripe(doc, r.theme); ok {
		v.emit(r.lg.NewStyle().Foreground(lipgloss.Color(stripe.Color)).Render(strings.Repeat("▀", r.width)))
	}
	render.Walk(doc, v, r.logger)
	if footer := footerLine(doc.Config.Footer); footer != "" {
		v.emit(v.style(muted).Width(r.width).Align(lipgloss.Center).Render(footer))
	}
	if len(v.blocks) == 0 {
		return "", nil
	}
	return strings.Join(v.blocks, "\n\n") + "\n", nil
}

// footerLine shows the footer as it would read on the first page.
func footerLine(f *document.Footer) string {
	var sb strings.Builder
	for _, p := range render.FooterParts(f) {
		switch p.Kind {
		case render.FooterPageNum, render.FooterPageCount:
			sb.WriteString("1")
		default:
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// view is the render.Visitor collecting one string per block.
type view struct {
	r      *Renderer
	th     theme.Theme
	blocks []string
}

func (v *view) emit(s string) {
	if s != "" {
		v.blocks = append(v.blocks, s)
	}
}

func (v *view) style(color string) lipgloss.Style {
	s := v.r.lg.NewStyle()
	if color != "" {
		s = s.Foreground(lipgloss.Color(color))
	}
	return s
}

// markup styles the inline runs of text on top of base.
func (v *view) markup(text string, base lipgloss.Style) string {
	var sb strings.Builder
	for _, run := range inline.Parse(text) {
		s := base
		if run.Bold {
			s = s.Bold(true)
		}
		if run.Color != "" {
			s = s.Foreground(lipgloss.Color(run.Color))
		}
		sb.WriteString(s.Render(run.Text))
	}
	return sb.String()
}

func (v *view) body() lipgloss.Style { return v.style(v.th.Text()) }

// cells converts points to character cells; horizontal cells are about half
// as tall as they are wide.
func cells(pt float64, horizontal bool) int {
	if horizontal {
		return int(math.Round(pt / 5.5))
	}
	return int(math.Round(pt / 11))
}

// boxStyle draws b's box at width and returns it with the inner width.
func (v *view) boxStyle(b render.Box, width int) (lipgloss.Style, int) {
	border := lipgloss.NormalBorder()
	if b.Border == render.Thick {
		border = lipgloss.ThickBorder()
	}
	p := b.Padding
	s := v.r.lg.NewStyle().
		Border(border, false, false, false, true).
		BorderForeground(lipgloss.Color(b.BorderColor)).
		Padding(cells(p.Top, false), cells(p.Right, true), cells(p.Bottom, false), cells(p.Left, true)).
		Width(width - 1)
	if b.Filled() {
		s = s.Background(lipgloss.Color(b.Fill))
	}
	inner := width - 1 - cells(p.Left, true) - cells(p.Right, true)
	return s, inner
}

func (v *view) title(text, style string) string {
	if text == "" {
		return ""
	}
	s := v.style(v.th.Primary()).Bold(true)
	if style == document.StyleAccented {
		return s.Underline(true).Render(text)
	}
	rule := v.style("#EEEEEE").Render(strings.Repeat("─", v.r.width))
	return lipgloss.JoinVertical(lipgloss.Left, s.Render(text), rule)
}

// grid lays rendered cells out row-major in columns of equal width.
func (v *view) grid(items []string, columns, width int) string {
	if len(items) == 0 {
		return ""
	}
	cw := (width - columnGap*(columns-1)) / columns
	if cw < 1 {
		cw = 1
	}
	cell := v.r.lg.NewStyle().Width(cw)
	gap := strings.Repeat(" ", columnGap)

	var rows []string
	for _, row := range render.GridRows(len(items), columns) {
		parts := make([]string, 0, 2*len(row))
		for col, i := range row {
			if col > 0 {
				parts = append(parts, gap)
			}
			parts = append(parts, cell.Render(items[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *view) bullets(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, "• "+v.markup(l, v.body()))
	}
	return out
}

func stack(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}

func (v *view) PageBreak() {
	v.emit(v.style(muted).Render(strings.Repeat("┄", v.r.width)))
}

func (v *view) Header(h document.HeaderBlock) {
	center := v.r.lg.NewStyle().Width(v.r.width).Align(lipgloss.Center)
	var parts []string
	if h.Title != "" {
		parts = append(parts, center.Inherit(v.style(v.th.Primary()).Bold(true)).Render(h.Title))
	}
	if h.Subtitle != "" {
		parts = append(parts, center.Inherit(v.style(muted)).Render(h.Subtitle))
	}
	v.emit(stack(parts...))
}

func (v *view) SectionTitle(t document.SectionTitleBlock) {
	v.emit(v.title(t.Content, t.Style))
}

func (v *view) CompoundText(c document.CompoundTextBlock) {
	defaultColor := c.FontColor
	if defaultColor == "" {
		defaultColor = theme.TextColor
	}
	var parts []string
	for _, item := range c.Items {
		if item.Text == "" {
			continue
		}
		key := item.FontColor
		if key == "" {
			key = defaultColor
		}
		s := v.style(v.th.ResolveColor(key, theme.DefaultText))
		if item.Link != "" {
			s = s.Underline(true)
		}
		parts = append(parts, s.Render(item.Text))
	}
	if len(parts) == 0 {
		return
	}
	align := lipgloss.Center
	switch c.Alignment() {
	case "left":
		align = lipgloss.Left
	case "right":
		align = lipgloss.Right
	}
	line := strings.Join(parts, c.Sep())
	v.emit(v.r.lg.NewStyle().Width(v.r.width).Align(align).Render(line))
}

func (v *view) Text(t document.TextBlock) {
	if t.Content == "" {
		return
	}
	text := v.markup(t.Content, v.body())
	if box, ok := render.ResolveBox(v.th, render.TextBox, t.Style, t.BorderColor); ok {
		s, _ := v.boxStyle(box, v.r.width)
		text = s.Render(text)
	} else {
		text = v.r.lg.NewStyle().Width(v.r.width).Render(text)
	}
	v.emit(text)
}

func (v *view) Grid(g document.GridBlock) {
	box, boxed := render.ResolveBox(v.th, render.GridBox, g.Style, "")
	width := v.r.width
	var s lipgloss.Style
	if boxed {
		s, width = v.boxStyle(box, v.r.width)
	}

	items := make([]string, len(g.Items))
	for i, item := range g.Items {
		var header string
		if item.Header != "" {
			header = v.style(v.th.Primary()).Bold(true).Render(item.Header)
		}
		items[i] = stack(append([]string{header}, v.bullets(item.Content)...)...)
	}
	out := stack(v.title(g.Title, ""), v.grid(items, render.Columns(g.Columns, len(g.Items), 0), width))
	if boxed {
		out = s.Render(out)
	}
	v.emit(out)
}

func (v *view) List(l document.ListBlock) {
	parts := []string{v.title(l.Title, "")}
	right := v.r.width / 4
	left := v.r.width - right
	for _, item := range l.Items {
		if item.HasHeadline() {
			parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top,
				v.r.lg.NewStyle().Width(left).Bold(true).Render(item.LeftText),
				v.style(v.th.Accent()).Width(right).Align(lipgloss.Right).Bold(true).Render(item.RightText),
			))
		}
		if item.SubText != "" {
			parts = append(parts, v.style(muted).Italic(true).Render(item.SubText))
		}
		parts = append(parts, v.bullets(item.Details)...)
	}
	v.emit(stack(parts...))
}

func (v *view) PlainList(l document.PlainListBlock) {
	parts := []string{v.title(l.Title, l.TitleStyle)}
	for _, item := range l.Items {
		if item.Text == "" {
			continue
		}
		base := v.body()
		if item.Small() {
			base = v.style(muted).Faint(true)
		}
		parts = append(parts, v.markup(item.Text, base))
	}
	v.emit(stack(parts...))
}

func (v *view) CompactList(l document.CompactListBlock) {
	parts := []string{v.title(l.Title, l.TitleStyle)}
	right := v.r.width / 5
	left := v.r.width - right
	for _, item := range l.Items {
		if item.Content == "" && item.Date == "" {
			continue
		}
		parts = append(parts, lipgloss.JoinHorizontal(lipgloss.Top,
			v.r.lg.NewStyle().Width(left).Render(v.markup(item.Content, v.body())),
			v.style(muted).Width(right).Align(lipgloss.Right).Render(item.Date),
		))
	}
	v.emit(stack(parts...))
}

func (v *view) TextGrid(g document.TextGridBlock) {
	box, boxed := render.ResolveBox(v.th, render.TextGridBox, g.Style, g.BorderColor)
	width := v.r.width
	var s lipgloss.Style
	if boxed {
		s, width = v.boxStyle(box, v.r.width)
	}

	items := make([]string, len(g.Items))
	for i, item := range g.Items {
		lines := make([]string, 0, len(item.Content))
		for _, l := range item.Content {
			lines = append(lines, v.markup(l, v.body()))
		}
		items[i] = stack(lines...)
	}
	out := v.grid(items, render.Columns(g.Columns, len(g.Items), 2), width)
	if boxed && out != "" {
		out = s.Render(out)
	}
	v.emit(stack(v.title(g.Title, g.TitleStyle), out))
}

func (v *view) Project(p document.ProjectBlock) {
	var parts []string
	if p.Title != "" {
		parts = append(parts, v.r.lg.NewStyle().Bold(true).Render(p.Title))
	}
	for _, item := range p.Items {
		parts = append(parts, v.bullets(item.Lines())...)
	}
	if len(p.Tags) > 0 {
		pill := v.style(theme.White).Background(lipgloss.Color(v.th.Primary())).Bold(true).Padding(0, 1)
		pills := make([]string, len(p.Tags))
		for i, tag := range p.Tags {
			pills[i] = pill.Render(tag)
		}
		parts = append(parts, strings.Join(pills, " "))
	}
	out := stack(parts...)
	if box, ok := render.ResolveBox(v.th, render.ProjectBox, p.Style, p.BorderColor); ok && out != "" {
		s, _ := v.boxStyle(box, v.r.width)
		out = s.Render(out)
	}
	v.emit(out)
}
