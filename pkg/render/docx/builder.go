package docx

import (
	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/render"
	"github.com/seanlgirgis/folio/pkg/theme"
)

const (
	subtleGrey = "#646464"
	mutedGrey  = "#666666"
	ruleGrey   = "#EEEEEE"
	dotGrey    = "#CCCCCC"
	gridGap    = 115 // right cell margin of grid columns, in twips
)

// Fixed column widths of the dated list layouts, in millimetres.
const (
	listLeftMM     = 138
	listRightMM    = 46
	compactLeftMM  = 150
	compactRightMM = 40
)

// builder is the render.Visitor that writes the document body.
type builder struct {
	th     theme.Theme
	logger zerolog.Logger
	doc    *etree.Document
	body   *etree.Element
	rels   *relationships
	width  int // text width in twips

	footer        *document.Footer
	footers       []part
	footerID      string
	firstFooterID string
	titlePage     bool
	sections      int
}

func newBuilder(th theme.Theme, logger zerolog.Logger, footer *document.Footer) *builder {
	x, root := newRoot("document")
	b := &builder{
		th:     th,
		logger: logger,
		doc:    x,
		body:   child(root, "body"),
		rels:   &relationships{},
		width:  pageWidth - twips(theme.Margin(th.Margins.Left)) - twips(theme.Margin(th.Margins.Right)),
		footer: footer,
	}
	b.rels.add(relStyles, "styles.xml", false)
	b.rels.add(relNumbering, "numbering.xml", false)
	b.rels.add(relSettings, "settings.xml", false)
	if !footer.Empty() {
		b.footerID = b.rels.add(relFooter, "footer1.xml", false)
		b.footers = append(b.footers, part{name: PartFooter, xml: b.footerXML()})
	}
	return b
}

func (b *builder) footerParts() []string {
	names := make([]string, len(b.footers))
	for i, f := range b.footers {
		names[i] = f.name
	}
	return names
}

// baseRun is the style of body text.
func (b *builder) baseRun() runStyle {
	return runStyle{
		Font:  b.th.BodyFont(),
		Size:  b.th.FontSize("base", "docx", 11),
		Color: b.th.Text(),
	}
}

// sectionProps describes the section ending at the current position.
func (b *builder) sectionProps() *etree.Element {
	first := b.sections == 0
	sp := elem("sectPr")
	if b.footerID != "" {
		child(sp, "footerReference", "w:type", "default", "r:id", b.footerID)
		if first && b.firstFooterID != "" {
			child(sp, "footerReference", "w:type", "first", "r:id", b.firstFooterID)
		}
	}
	if !first {
		child(sp, "type", "w:val", "nextPage")
	}
	child(sp, "pgSz", "w:w", itoa(pageWidth), "w:h", itoa(pageHeight))
	m := b.th.Margins
	child(sp, "pgMar",
		"w:top", itoa(twips(theme.Margin(m.Top))),
		"w:right", itoa(twips(theme.Margin(m.Right))),
		"w:bottom", itoa(twips(theme.Margin(m.Bottom))),
		"w:left", itoa(twips(theme.Margin(m.Left))),
		"w:header", "720", "w:footer", "720", "w:gutter", "0")
	if first && b.titlePage {
		child(sp, "titlePg")
	}
	return sp
}

func (b *builder) finish() {
	b.body.AddChild(b.sectionProps())
	closeCells(b.body)
}

// stripe draws a full-width bar floating at the top edge of the first page.
// The first page gets its own footer slot so later pages are unaffected.
func (b *builder) stripe(s render.Stripe) {
	tbl := child(b.body, "tbl")
	tblPr := child(tbl, "tblPr")
	child(tblPr, "tblpPr",
		"w:leftFromText", "0", "w:rightFromText", "0",
		"w:vertAnchor", "page", "w:horzAnchor", "page",
		"w:tblpX", "0", "w:tblpY", "0")
	child(tblPr, "tblW", "w:w", itoa(pageWidth), "w:type", "dxa")
	child(tblPr, "tblLayout", "w:type", "fixed")
	child(child(tbl, "tblGrid"), "gridCol", "w:w", itoa(pageWidth))

	tr := addRow(tbl)
	child(child(tr, "trPr"), "trHeight", "w:val", itoa(ptTwips(2*s.Thickness)), "w:hRule", "exact")
	tc := addCell(tr, cellStyle{Width: pageWidth, Fill: s.Color})
	p := addParagraph(tc, paraStyle{Spacing: space(0, 0)})
	addRun(p, "", runStyle{Size: 1})

	b.titlePage = true
	if b.footerID != "" {
		b.firstFooterID = b.rels.add(relFooter, "footer2.xml", false)
		b.footers = append(b.footers, part{name: PartFirstFooter, xml: b.footerXML()})
	}
}

// footerXML builds a footer part: "text | Page N of M", centred.
func (b *builder) footerXML() *etree.Document {
	x, root := newRoot("ftr")
	p := addParagraph(root, paraStyle{Align: "center"})
	s := runStyle{
		Size:  b.th.FontSize("footer", "docx", 8),
		Color: b.th.FooterText(),
	}
	for _, fp := range render.FooterParts(b.footer) {
		switch fp.Kind {
		case render.FooterPageNum:
			addField(p, "PAGE", s)
		case render.FooterPageCount:
			addField(p, "NUMPAGES", s)
		default:
			addRun(p, fp.Text, s)
		}
	}
	return x
}

// box opens a single-cell table drawn as b's box and returns the cell and the
// width left for content.
func (b *builder) box(parent *etree.Element, width int, box render.Box) (*etree.Element, int) {
	tbl := addTable(parent, []int{width}, 0)
	size := 32
	if box.Border == render.Thick {
		size = 64
	}
	pad := box.Padding
	tc := addCell(addRow(tbl), cellStyle{
		Width:   width,
		Borders: map[string]border{"left": {Val: "single", Size: size, Color: box.BorderColor}},
		Fill:    box.Fill,
		Padding: &pad,
	})
	return tc, width - ptTwips(pad.Left) - ptTwips(pad.Right)
}

func (b *builder) spacer(after float64) {
	addParagraph(b.body, paraStyle{Spacing: space(0, after)})
}

// sectionTitle writes a heading. "accented" underlines the text in the
// accent colour; anything else gets a light rule under the paragraph.
func (b *builder) sectionTitle(parent *etree.Element, title, style string) {
	if title == "" {
		return
	}
	ps := paraStyle{Spacing: space(12, 6)}
	rs := runStyle{
		Font:  b.th.HeaderFont(),
		Bold:  true,
		Size:  b.th.FontSize("h1", "docx", 16),
		Color: b.th.Primary(),
	}
	if style == document.StyleAccented {
		rs.Underline = b.th.Accent()
	} else {
		ps.Bottom = &border{Val: "single", Size: 6, Space: 1, Color: ruleGrey}
	}
	addMarkup(addParagraph(parent, ps), title, rs)
}

func (b *builder) PageBreak() {
	p := child(b.body, "p")
	child(p, "pPr").AddChild(b.sectionProps())
	b.sections++
}

func (b *builder) Header(h document.HeaderBlock) {
	if h.Title != "" {
		p := addParagraph(b.body, paraStyle{Align: "center"})
		addMarkup(p, h.Title, runStyle{
			Font:  b.th.HeaderFont(),
			Bold:  true,
			Size:  b.th.FontSize("title", "docx", 28),
			Color: b.th.Primary(),
		})
	}
	if h.Subtitle != "" {
		p := addParagraph(b.body, paraStyle{Align: "center"})
		addMarkup(p, h.Subtitle, runStyle{Size: b.th.FontSize("subtitle", "docx", 11), Color: subtleGrey})
	}
}

func (b *builder) SectionTitle(t document.SectionTitleBlock) {
	b.sectionTitle(b.body, t.Content, t.Style)
}

func (b *builder) CompoundText(c document.CompoundTextBlock) {
	size := c.FontSize
	if size <= 0 {
		size = 10
	}
	defaultColor := c.FontColor
	if defaultColor == "" {
		defaultColor = theme.TextColor
	}

	p := addParagraph(b.body, paraStyle{Align: c.Alignment()})
	n := 0
	for _, item := range c.Items {
		if item.Text == "" {
			continue
		}
		if n > 0 {
			addRun(p, c.Sep(), runStyle{Size: size})
		}
		n++

		key := item.FontColor
		if key == "" {
			key = defaultColor
		}
		s := runStyle{Size: size, Color: b.th.ResolveColor(key, theme.DefaultText)}
		if item.Link == "" {
			addMarkup(p, item.Text, s)
			continue
		}
		id := b.rels.add(relHyperlink, item.Link, true)
		link := child(p, "hyperlink", "r:id", id)
		s.Underline = s.Color
		addMarkup(link, item.Text, s)
	}
}

func (b *builder) Text(t document.TextBlock) {
	if t.Content == "" {
		return
	}
	box, ok := render.ResolveBox(b.th, render.TextBox, t.Style, t.BorderColor)
	if !ok {
		addMarkup(addParagraph(b.body, paraStyle{Spacing: space(0, 6)}), t.Content, b.baseRun())
		return
	}
	cell, _ := b.box(b.body, b.width, box)
	addMarkup(addParagraph(cell, paraStyle{Spacing: space(0, 0)}), t.Content, b.baseRun())
	b.spacer(12)
}

// gridTable lays cells out row-major in a table of equal columns and returns
// the cell elements in item order.
func (b *builder) gridTable(parent *etree.Element, width, n, columns, gap int) []*etree.Element {
	if n == 0 {
		return nil
	}
	widths := make([]int, columns)
	for i := range widths {
		widths[i] = width / columns
	}
	tbl := addTable(parent, widths, gap)

	cells := make([]*etree.Element, 0, n)
	for _, row := range render.GridRows(n, columns) {
		tr := addRow(tbl)
		for col := 0; col < columns; col++ {
			tc := addCell(tr, cellStyle{Width: widths[col]})
			if col < len(row) {
				cells = append(cells, tc)
			}
		}
	}
	return cells
}

func (b *builder) Grid(g document.GridBlock) {
	parent, width := b.body, b.width
	box, boxed := render.ResolveBox(b.th, render.GridBox, g.Style, "")
	if boxed {
		parent, width = b.box(b.body, b.width, box)
	}
	b.sectionTitle(parent, g.Title, "")

	columns := render.Columns(g.Columns, len(g.Items), 0)
	cells := b.gridTable(parent, width, len(g.Items), columns, gridGap)
	for i, item := range g.Items {
		if item.Header != "" {
			p := addParagraph(cells[i], paraStyle{})
			addMarkup(p, item.Header, runStyle{Bold: true, Size: 11, Color: b.th.Primary()})
		}
		for _, line := range item.Content {
			addMarkup(addParagraph(cells[i], paraStyle{Style: "ListBullet"}), line, b.baseRun())
		}
	}
	if boxed {
		b.spacer(12)
	}
}

func (b *builder) List(l document.ListBlock) {
	b.sectionTitle(b.body, l.Title, "")
	for _, item := range l.Items {
		if item.HasHeadline() {
			left, right := twips(listLeftMM), twips(listRightMM)
			tr := addRow(addTable(b.body, []int{left, right}, 0))
			lp := addParagraph(addCell(tr, cellStyle{Width: left}), paraStyle{})
			addMarkup(lp, item.LeftText, runStyle{Bold: true, Size: 11})
			rp := addParagraph(addCell(tr, cellStyle{Width: right}), paraStyle{Align: "right"})
			addMarkup(rp, item.RightText, runStyle{Bold: true, Size: 10, Color: b.th.Accent()})
		}
		if item.SubText != "" {
			p := addParagraph(b.body, paraStyle{Spacing: space(0, 2)})
			addMarkup(p, item.SubText, runStyle{Italic: true, Color: mutedGrey})
		}
		for _, d := range item.Details {
			addMarkup(addParagraph(b.body, paraStyle{Style: "ListBullet"}), d, b.baseRun())
		}
		b.spacer(6)
	}
}

func (b *builder) PlainList(l document.PlainListBlock) {
	b.sectionTitle(b.body, l.Title, l.TitleStyle)
	for _, item := range l.Items {
		if item.Text == "" {
			continue
		}
		s := b.baseRun()
		if item.Small() {
			s.Size, s.Color = 7, subtleGrey
		}
		addMarkup(addParagraph(b.body, paraStyle{Spacing: space(0, 4)}), item.Text, s)
	}
}

func (b *builder) CompactList(l document.CompactListBlock) {
	b.sectionTitle(b.body, l.Title, l.TitleStyle)
	dotted := map[string]border{"bottom": {Val: "dotted", Size: 4, Color: dotGrey}}
	for _, item := range l.Items {
		if item.Content == "" && item.Date == "" {
			continue
		}
		left, right := twips(compactLeftMM), twips(compactRightMM)
		tr := addRow(addTable(b.body, []int{left, right}, 0))
		lp := addParagraph(addCell(tr, cellStyle{Width: left, Borders: dotted}), paraStyle{})
		addMarkup(lp, item.Content, b.baseRun())
		rp := addParagraph(addCell(tr, cellStyle{Width: right, Borders: dotted}), paraStyle{Align: "right"})
		addMarkup(rp, item.Date, runStyle{})
		b.spacer(2)
	}
}

func (b *builder) TextGrid(g document.TextGridBlock) {
	b.sectionTitle(b.body, g.Title, g.TitleStyle)

	parent, width := b.body, b.width
	box, boxed := render.ResolveBox(b.th, render.TextGridBox, g.Style, g.BorderColor)
	if boxed {
		parent, width = b.box(b.body, b.width, box)
	}

	columns := render.Columns(g.Columns, len(g.Items), 2)
	cells := b.gridTable(parent, width, len(g.Items), columns, gridGap)
	for i, item := range g.Items {
		for _, line := range item.Content {
			addMarkup(addParagraph(cells[i], paraStyle{Spacing: space(0, 6)}), line, b.baseRun())
		}
	}
	if boxed {
		b.spacer(6)
	}
}

func (b *builder) Project(pr document.ProjectBlock) {
	parent := b.body
	box, boxed := render.ResolveBox(b.th, render.ProjectBox, pr.Style, pr.BorderColor)
	if boxed {
		parent, _ = b.box(b.body, b.width, box)
	}

	if pr.Title != "" {
		p := addParagraph(parent, paraStyle{Spacing: space(0, 4)})
		addMarkup(p, pr.Title, runStyle{Bold: true, Size: 11})
	}
	bullet := paraStyle{Style: "ListBullet"}
	if boxed {
		bullet.Spacing = space(0, 2)
	}
	for _, item := range pr.Items {
		for _, line := range item.Lines() {
			addMarkup(addParagraph(parent, bullet), line, b.baseRun())
		}
	}

	if len(pr.Tags) > 0 {
		p := addParagraph(parent, paraStyle{Spacing: space(8, 0)})
		pill := runStyle{Bold: true, Size: 9, Color: theme.White, Shade: b.th.Primary()}
		for i, tag := range pr.Tags {
			if i > 0 {
				addRun(p, "  ", runStyle{Size: 9})
			}
			addRun(p, " "+tag+" ", pill)
		}
	}
	if boxed {
		b.spacer(12)
	}
}
