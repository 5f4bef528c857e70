package docx

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/seanlgirgis/folio/pkg/theme"
)

// Part names inside the package.
const (
	PartContentTypes = "[Content_Types].xml"
	PartPackageRels  = "_rels/.rels"
	PartDocument     = "word/document.xml"
	PartDocumentRels = "word/_rels/document.xml.rels"
	PartStyles       = "word/styles.xml"
	PartNumbering    = "word/numbering.xml"
	PartSettings     = "word/settings.xml"
	PartFooter       = "word/footer1.xml"
	PartFirstFooter  = "word/footer2.xml"
)

const (
	relBase        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"
	relOffice      = relBase + "officeDocument"
	relStyles      = relBase + "styles"
	relNumbering   = relBase + "numbering"
	relSettings    = relBase + "settings"
	relFooter      = relBase + "footer"
	relHyperlink   = relBase + "hyperlink"
	ctBase         = "application/vnd.openxmlformats-officedocument.wordprocessingml."
	ctRelationship = "application/vnd.openxmlformats-package.relationships+xml"
)

// bulletNumID is the numbering instance behind the ListBullet style.
const bulletNumID = "1"

func newXML() *etree.Document {
	x := etree.NewDocument()
	x.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	return x
}

// newRoot creates a WordprocessingML root element with both namespaces.
func newRoot(tag string) (*etree.Document, *etree.Element) {
	x := newXML()
	root := x.CreateElement("w:" + tag)
	root.CreateAttr("xmlns:w", nsW)
	root.CreateAttr("xmlns:r", nsR)
	return x, root
}

type relationship struct {
	id       string
	typ      string
	target   string
	external bool
}

// relationships allocates rIds for the main document part.
type relationships struct {
	items []relationship
}

func (r *relationships) add(typ, target string, external bool) string {
	id := fmt.Sprintf("rId%d", len(r.items)+1)
	r.items = append(r.items, relationship{id: id, typ: typ, target: target, external: external})
	return id
}

func (r *relationships) xml() *etree.Document {
	x := newXML()
	root := x.CreateElement("Relationships")
	root.CreateAttr("xmlns", nsPkg)
	for _, rel := range r.items {
		e := root.CreateElement("Relationship")
		e.CreateAttr("Id", rel.id)
		e.CreateAttr("Type", rel.typ)
		e.CreateAttr("Target", rel.target)
		if rel.external {
			e.CreateAttr("TargetMode", "External")
		}
	}
	return x
}

func packageRels() *etree.Document {
	r := &relationships{}
	r.add(relOffice, PartDocument, false)
	return r.xml()
}

func contentTypes(footers []string) *etree.Document {
	x := newXML()
	root := x.CreateElement("Types")
	root.CreateAttr("xmlns", nsCT)

	def := func(ext, ct string) {
		e := root.CreateElement("Default")
		e.CreateAttr("Extension", ext)
		e.CreateAttr("ContentType", ct)
	}
	override := func(part, ct string) {
		e := root.CreateElement("Override")
		e.CreateAttr("PartName", "/"+part)
		e.CreateAttr("ContentType", ct)
	}

	def("rels", ctRelationship)
	def("xml", "application/xml")
	override(PartDocument, ctBase+"document.main+xml")
	override(PartStyles, ctBase+"styles+xml")
	override(PartNumbering, ctBase+"numbering+xml")
	override(PartSettings, ctBase+"settings+xml")
	for _, f := range footers {
		override(f, ctBase+"footer+xml")
	}
	return x
}

// styles defines the document defaults from the theme plus the few named
// styles the renderer references.
func styles(th theme.Theme) *etree.Document {
	x, root := newRoot("styles")

	defaults := child(root, "docDefaults")
	rPr := child(child(defaults, "rPrDefault"), "rPr")
	font := th.BodyFont()
	child(rPr, "rFonts", "w:ascii", font, "w:hAnsi", font, "w:cs", font)
	child(rPr, "color", "w:val", hex(th.Text()))
	half := itoa(int(th.FontSize("base", "docx", 11) * 2))
	child(rPr, "sz", "w:val", half)
	child(rPr, "szCs", "w:val", half)
	pPr := child(child(defaults, "pPrDefault"), "pPr")
	child(pPr, "spacing", "w:after", "0", "w:line", "240", "w:lineRule", "auto")

	normal := child(root, "style", "w:type", "paragraph", "w:default", "1", "w:styleId", "Normal")
	child(normal, "name", "w:val", "Normal")
	child(normal, "qFormat")

	para := child(root, "style", "w:type", "character", "w:default", "1", "w:styleId", "DefaultParagraphFont")
	child(para, "name", "w:val", "Default Paragraph Font")

	table := child(root, "style", "w:type", "table", "w:default", "1", "w:styleId", "TableNormal")
	child(table, "name", "w:val", "Normal Table")
	tblPr := child(table, "tblPr")
	child(tblPr, "tblInd", "w:w", "0", "w:type", "dxa")
	mar := child(tblPr, "tblCellMar")
	for _, side := range borderSides {
		child(mar, side, "w:w", "0", "w:type", "dxa")
	}

	bullet := child(root, "style", "w:type", "paragraph", "w:styleId", "ListBullet")
	child(bullet, "name", "w:val", "List Bullet")
	child(bullet, "basedOn", "w:val", "Normal")
	bPr := child(bullet, "pPr")
	child(child(bPr, "numPr"), "numId", "w:val", bulletNumID)
	child(bPr, "spacing", "w:after", "40")
	child(bPr, "ind", "w:left", "360", "w:hanging", "360")

	return x
}

func numbering() *etree.Document {
	x, root := newRoot("numbering")
	abs := child(root, "abstractNum", "w:abstractNumId", "0")
	child(abs, "multiLevelType", "w:val", "singleLevel")
	lvl := child(abs, "lvl", "w:ilvl", "0")
	child(lvl, "start", "w:val", "1")
	child(lvl, "numFmt", "w:val", "bullet")
	child(lvl, "lvlText", "w:val", "•")
	child(lvl, "lvlJc", "w:val", "left")
	child(child(lvl, "pPr"), "ind", "w:left", "360", "w:hanging", "360")

	num := child(root, "num", "w:numId", bulletNumID)
	child(num, "abstractNumId", "w:val", "0")
	return x
}

func settings() *etree.Document {
	x, root := newRoot("settings")
	child(root, "defaultTabStop", "w:val", "720")
	compat := child(root, "compat")
	child(compat, "compatSetting",
		"w:name", "compatibilityMode", "w:uri", "http://schemas.microsoft.com/office/word", "w:val", "15")
	return x
}
