package docx

import (
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/seanlgirgis/folio/pkg/inline"
	"github.com/seanlgirgis/folio/pkg/render"
)

const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkg = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCT  = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Letter page in twips.
const (
	pageWidth  = 12240
	pageHeight = 15840
)

// twips converts millimetres to twentieths of a point.
func twips(mm float64) int {
	return int(math.Round(mm * 1440 / 25.4))
}

// ptTwips converts points to twips.
func ptTwips(pt float64) int {
	return int(math.Round(pt * 20))
}

func itoa(n int) string { return strconv.Itoa(n) }

// hex strips the leading '#' as OOXML colour attributes expect.
func hex(color string) string { return strings.TrimPrefix(color, "#") }

// elem creates a w: element; attrs are name/value pairs.
func elem(tag string, attrs ...string) *etree.Element {
	e := etree.NewElement("w:" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		e.CreateAttr(attrs[i], attrs[i+1])
	}
	return e
}

// child creates a w: element under parent.
func child(parent *etree.Element, tag string, attrs ...string) *etree.Element {
	e := elem(tag, attrs...)
	parent.AddChild(e)
	return e
}

// runStyle is the subset of run properties the renderer uses.
type runStyle struct {
	Font      string
	Bold      bool
	Italic    bool
	Color     string
	Size      float64 // points
	Underline string  // underline colour
	Shade     string  // background fill
}

func (s runStyle) props() *etree.Element {
	rPr := elem("rPr")
	if s.Font != "" {
		child(rPr, "rFonts", "w:ascii", s.Font, "w:hAnsi", s.Font, "w:cs", s.Font)
	}
	if s.Bold {
		child(rPr, "b")
	}
	if s.Italic {
		child(rPr, "i")
	}
	if s.Color != "" {
		child(rPr, "color", "w:val", hex(s.Color))
	}
	if s.Size > 0 {
		half := itoa(int(math.Round(s.Size * 2)))
		child(rPr, "sz", "w:val", half)
		child(rPr, "szCs", "w:val", half)
	}
	if s.Underline != "" {
		child(rPr, "u", "w:val", "single", "w:color", hex(s.Underline))
	}
	if s.Shade != "" {
		child(rPr, "shd", "w:val", "clear", "w:color", "auto", "w:fill", hex(s.Shade))
	}
	if len(rPr.ChildElements()) == 0 {
		return nil
	}
	return rPr
}

// addRun appends a text run to parent (a paragraph or hyperlink).
func addRun(parent *etree.Element, text string, s runStyle) *etree.Element {
	r := child(parent, "r")
	if rPr := s.props(); rPr != nil {
		r.AddChild(rPr)
	}
	t := child(r, "t")
	t.CreateAttr("xml:space", "preserve")
	t.SetText(text)
	return r
}

// addMarkup appends the inline runs of text, each on top of base.
func addMarkup(p *etree.Element, text string, base runStyle) {
	for _, run := range inline.Parse(text) {
		s := base
		if run.Bold {
			s.Bold = true
		}
		if run.Color != "" {
			s.Color = run.Color
		}
		addRun(p, run.Text, s)
	}
}

// addField appends a complex field such as PAGE or NUMPAGES.
func addField(p *etree.Element, instr string, s runStyle) {
	fieldRun := func() *etree.Element {
		r := child(p, "r")
		if rPr := s.props(); rPr != nil {
			r.AddChild(rPr)
		}
		return r
	}
	child(fieldRun(), "fldChar", "w:fldCharType", "begin")
	it := child(fieldRun(), "instrText")
	it.CreateAttr("xml:space", "preserve")
	it.SetText(" " + instr + " ")
	child(fieldRun(), "fldChar", "w:fldCharType", "separate")
	addRun(p, "1", s)
	child(fieldRun(), "fldChar", "w:fldCharType", "end")
}

type border struct {
	Val   string
	Size  int // eighths of a point
	Space int
	Color string
}

func (b border) attach(parent *etree.Element, side string) {
	child(parent, side,
		"w:val", b.Val, "w:sz", itoa(b.Size), "w:space", itoa(b.Space), "w:color", hex(b.Color))
}

type spacing struct {
	Before, After float64 // points
}

// paraStyle is the subset of paragraph properties the renderer uses.
type paraStyle struct {
	Style   string
	Bottom  *border
	Spacing *spacing
	Align   string
}

func space(before, after float64) *spacing {
	return &spacing{Before: before, After: after}
}

// addParagraph appends a paragraph to parent (the body or a cell).
func addParagraph(parent *etree.Element, ps paraStyle) *etree.Element {
	p := child(parent, "p")
	pPr := elem("pPr")
	if ps.Style != "" {
		child(pPr, "pStyle", "w:val", ps.Style)
	}
	if ps.Bottom != nil {
		ps.Bottom.attach(child(pPr, "pBdr"), "bottom")
	}
	if ps.Spacing != nil {
		child(pPr, "spacing",
			"w:before", itoa(ptTwips(ps.Spacing.Before)), "w:after", itoa(ptTwips(ps.Spacing.After)))
	}
	if ps.Align != "" {
		child(pPr, "jc", "w:val", ps.Align)
	}
	if len(pPr.ChildElements()) > 0 {
		p.AddChild(pPr)
	}
	return p
}

// cellStyle describes one table cell.
type cellStyle struct {
	Width   int
	Borders map[string]border
	Fill    string
	Padding *render.Edges // points
}

var borderSides = []string{"top", "left", "bottom", "right"}

// addTable appends a fixed-layout table with the given column widths. gap
// is the right cell margin in twips.
func addTable(parent *etree.Element, widths []int, gap int) *etree.Element {
	total := 0
	for _, w := range widths {
		total += w
	}
	tbl := child(parent, "tbl")
	tblPr := child(tbl, "tblPr")
	child(tblPr, "tblW", "w:w", itoa(total), "w:type", "dxa")
	child(tblPr, "tblLayout", "w:type", "fixed")
	if gap > 0 {
		mar := child(tblPr, "tblCellMar")
		child(mar, "right", "w:w", itoa(gap), "w:type", "dxa")
	}
	grid := child(tbl, "tblGrid")
	for _, w := range widths {
		child(grid, "gridCol", "w:w", itoa(w))
	}
	return tbl
}

func addRow(tbl *etree.Element) *etree.Element {
	return child(tbl, "tr")
}

func addCell(tr *etree.Element, cs cellStyle) *etree.Element {
	tc := child(tr, "tc")
	tcPr := child(tc, "tcPr")
	child(tcPr, "tcW", "w:w", itoa(cs.Width), "w:type", "dxa")
	if len(cs.Borders) > 0 {
		borders := child(tcPr, "tcBorders")
		for _, side := range borderSides {
			if b, ok := cs.Borders[side]; ok {
				b.attach(borders, side)
			}
		}
	}
	if cs.Fill != "" {
		child(tcPr, "shd", "w:val", "clear", "w:color", "auto", "w:fill", hex(cs.Fill))
	}
	if cs.Padding != nil {
		mar := child(tcPr, "tcMar")
		pad := *cs.Padding
		for _, side := range []struct {
			name string
			pt   float64
		}{{"top", pad.Top}, {"left", pad.Left}, {"bottom", pad.Bottom}, {"right", pad.Right}} {
			child(mar, side.name, "w:w", itoa(ptTwips(side.pt)), "w:type", "dxa")
		}
	}
	return tc
}

// closeCells gives every cell a trailing paragraph, which Word requires.
func closeCells(root *etree.Element) {
	for _, tc := range root.FindElements(".//w:tc") {
		kids := tc.ChildElements()
		if last := kids[len(kids)-1]; last.Space != "w" || last.Tag != "p" {
			child(tc, "p")
		}
	}
}
