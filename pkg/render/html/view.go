package html

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/inline"
	"github.com/seanlgirgis/folio/pkg/render"
	"github.com/seanlgirgis/folio/pkg/theme"
)

// Percentage of the row width left between grid columns.
const gridGutter = 2.0

// pageView is everything the page template substitutes.
type pageView struct {
	Title  string
	CSS    template.CSS
	Stripe bool
	Blocks []blockView
}

// blockView is one rendered block; exactly one of the pointers is set.
type blockView struct {
	PageBreak bool

	Header       *headerView
	SectionTitle *titleView
	Compound     *compoundView
	Text         *textView
	Grid         *gridView
	List         *listView
	PlainList    *plainListView
	CompactList  *compactListView
	Project      *projectView
}

type headerView struct {
	Title    template.HTML
	Subtitle template.HTML
}

type titleView struct {
	Text     template.HTML
	Accented bool
}

type compoundItemView struct {
	Text  template.HTML
	Link  string
	Color string
}

type compoundView struct {
	Align     string
	FontSize  float64
	Separator string
	Items     []compoundItemView
}

type textView struct {
	Style   string
	Box     template.CSS
	Content template.HTML
}

type gridCellView struct {
	Row, Col int
	Style    template.CSS
	Header   template.HTML
	Lines    []template.HTML
}

type gridView struct {
	Title    *titleView
	Style    string
	Box      template.CSS
	Bulleted bool
	Cells    []gridCellView
}

type listItemView struct {
	Left    template.HTML
	Right   template.HTML
	Sub     template.HTML
	Details []template.HTML
}

type listView struct {
	Title *titleView
	Items []listItemView
}

type plainItemView struct {
	Text  template.HTML
	Small bool
}

type plainListView struct {
	Title *titleView
	Items []plainItemView
}

type compactItemView struct {
	Content template.HTML
	Date    string
}

type compactListView struct {
	Title *titleView
	Items []compactItemView
}

type projectView struct {
	Title template.HTML
	Style string
	Box   template.CSS
	Lines []template.HTML
	Tags  []string
}

// builder is the HTML render.Visitor; it turns blocks into views.
type builder struct {
	theme     theme.Theme
	markup    InlineMarkup
	blocks    []blockView
	pageBreak bool
}

func (b *builder) add(v blockView) {
	v.PageBreak = b.pageBreak
	b.pageBreak = false
	b.blocks = append(b.blocks, v)
}

func (b *builder) html(text string) template.HTML {
	return runsHTML(b.markup, text)
}

func (b *builder) lines(in []string) []template.HTML {
	out := make([]template.HTML, 0, len(in))
	for _, l := range in {
		out = append(out, b.html(l))
	}
	return out
}

func (b *builder) title(text, style string) *titleView {
	if text == "" {
		return nil
	}
	return &titleView{Text: b.html(text), Accented: style == document.StyleAccented}
}

// boxCSS renders a resolved box as inline declarations.
func boxCSS(box render.Box) template.CSS {
	width := 3
	if box.Border == render.Thick {
		width = 8
	}
	var decl []string
	decl = append(decl, fmt.Sprintf("border-left: %dpx solid %s", width, box.BorderColor))
	if box.Filled() {
		decl = append(decl, "background-color: "+box.Fill)
	}
	p := box.Padding
	decl = append(decl, fmt.Sprintf("padding: %s %s %s %s", px(p.Top), px(p.Right), px(p.Bottom), px(p.Left)))
	return template.CSS(strings.Join(decl, "; "))
}

// px converts points to CSS pixels.
func px(pt float64) string {
	return fmt.Sprintf("%.0fpx", pt*4/3)
}

// cellStyles lays a float grid out: explicit widths, a gutter on every
// column but the last of its row, and a clear on each row start.
func cellStyles(n, columns int) []template.CSS {
	width := (100 - gridGutter*float64(columns-1)) / float64(columns)
	styles := make([]template.CSS, n)
	for i := 0; i < n; i++ {
		_, col := render.GridCell(i, columns)
		decl := []string{"float: left", fmt.Sprintf("width: %.2f%%", width)}
		if col < columns-1 {
			decl = append(decl, fmt.Sprintf("margin-right: %.2f%%", gridGutter))
		} else {
			decl = append(decl, "margin-right: 0")
		}
		if col == 0 {
			decl = append(decl, "clear: left")
		}
		styles[i] = template.CSS(strings.Join(decl, "; "))
	}
	return styles
}

func (b *builder) PageBreak() { b.pageBreak = true }

func (b *builder) Header(h document.HeaderBlock) {
	if h.Title == "" && h.Subtitle == "" {
		return
	}
	b.add(blockView{Header: &headerView{Title: b.html(h.Title), Subtitle: b.html(h.Subtitle)}})
}

func (b *builder) SectionTitle(s document.SectionTitleBlock) {
	if t := b.title(s.Content, s.Style); t != nil {
		b.add(blockView{SectionTitle: t})
	}
}

func (b *builder) CompoundText(c document.CompoundTextBlock) {
	defaultColor := c.FontColor
	if defaultColor == "" {
		defaultColor = theme.TextColor
	}
	v := &compoundView{
		Align:     c.Alignment(),
		FontSize:  c.FontSize,
		Separator: c.Sep(),
	}
	for _, item := range c.Items {
		if item.Text == "" {
			continue
		}
		key := item.FontColor
		if key == "" {
			key = defaultColor
		}
		v.Items = append(v.Items, compoundItemView{
			Text:  b.html(item.Text),
			Link:  item.Link,
			Color: b.theme.ResolveColor(key, theme.DefaultText),
		})
	}
	if len(v.Items) == 0 {
		return
	}
	b.add(blockView{Compound: v})
}

func (b *builder) Text(t document.TextBlock) {
	if t.Content == "" {
		return
	}
	v := &textView{Style: document.StyleNormal, Content: b.html(t.Content)}
	if box, ok := render.ResolveBox(b.theme, render.TextBox, t.Style, t.BorderColor); ok {
		v.Style = box.Style
		v.Box = boxCSS(box)
	}
	b.add(blockView{Text: v})
}

func (b *builder) Grid(g document.GridBlock) {
	columns := render.Columns(g.Columns, len(g.Items), 0)
	v := &gridView{Title: b.title(g.Title, ""), Style: document.StyleSimple, Bulleted: true}
	if box, ok := render.ResolveBox(b.theme, render.GridBox, g.Style, ""); ok {
		v.Style = box.Style
		v.Box = boxCSS(box)
	}
	styles := cellStyles(len(g.Items), columns)
	for i, item := range g.Items {
		row, col := render.GridCell(i, columns)
		v.Cells = append(v.Cells, gridCellView{
			Row:    row,
			Col:    col,
			Style:  styles[i],
			Header: b.html(item.Header),
			Lines:  b.lines(item.Content),
		})
	}
	if v.Title == nil && len(v.Cells) == 0 {
		return
	}
	b.add(blockView{Grid: v})
}

func (b *builder) TextGrid(g document.TextGridBlock) {
	columns := render.Columns(g.Columns, len(g.Items), 2)
	v := &gridView{Title: b.title(g.Title, g.TitleStyle), Style: document.StyleSimple}
	if box, ok := render.ResolveBox(b.theme, render.TextGridBox, g.Style, g.BorderColor); ok {
		v.Style = box.Style
		v.Box = boxCSS(box)
	}
	styles := cellStyles(len(g.Items), columns)
	for i, item := range g.Items {
		row, col := render.GridCell(i, columns)
		v.Cells = append(v.Cells, gridCellView{Row: row, Col: col, Style: styles[i], Lines: b.lines(item.Content)})
	}
	if v.Title == nil && len(v.Cells) == 0 {
		return
	}
	b.add(blockView{Grid: v})
}

func (b *builder) List(l document.ListBlock) {
	v := &listView{Title: b.title(l.Title, "")}
	for _, item := range l.Items {
		v.Items = append(v.Items, listItemView{
			Left:    b.html(item.LeftText),
			Right:   b.html(item.RightText),
			Sub:     b.html(item.SubText),
			Details: b.lines(item.Details),
		})
	}
	if v.Title == nil && len(v.Items) == 0 {
		return
	}
	b.add(blockView{List: v})
}

func (b *builder) PlainList(l document.PlainListBlock) {
	v := &plainListView{Title: b.title(l.Title, l.TitleStyle)}
	for _, item := range l.Items {
		if item.Text == "" {
			continue
		}
		v.Items = append(v.Items, plainItemView{Text: b.html(item.Text), Small: item.Small()})
	}
	if v.Title == nil && len(v.Items) == 0 {
		return
	}
	b.add(blockView{PlainList: v})
}

func (b *builder) CompactList(l document.CompactListBlock) {
	v := &compactListView{Title: b.title(l.Title, l.TitleStyle)}
	for _, item := range l.Items {
		v.Items = append(v.Items, compactItemView{Content: b.html(item.Content), Date: item.Date})
	}
	if v.Title == nil && len(v.Items) == 0 {
		return
	}
	b.add(blockView{CompactList: v})
}

func (b *builder) Project(p document.ProjectBlock) {
	v := &projectView{Title: b.html(p.Title), Style: document.StyleSimple, Tags: p.Tags}
	if box, ok := render.ResolveBox(b.theme, render.ProjectBox, p.Style, p.BorderColor); ok {
		v.Style = box.Style
		v.Box = boxCSS(box)
	}
	for _, item := range p.Items {
		v.Lines = append(v.Lines, b.lines(item.Lines())...)
	}
	if inline.Plain(p.Title) == "" && len(v.Lines) == 0 && len(v.Tags) == 0 {
		return
	}
	b.add(blockView{Project: v})
}
