package html

import (
	"bytes"
	"html/template"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"

	"github.com/seanlgirgis/folio/pkg/inline"
)

// InlineMarkup turns a flat piece of text into inline HTML (links, escaping).
type InlineMarkup interface {
	Inline(text string) (template.HTML, error)
}

// Goldmark is the InlineMarkup backed by goldmark. Raw HTML in the input is
// shown literally, never passed through.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark creates the default InlineMarkup.
func NewGoldmark() *Goldmark {
	return &Goldmark{md: goldmark.New()}
}

// Inline converts text, keeping its surrounding whitespace. Text that goldmark
// would turn into block structure (lists, headings) is escaped verbatim.
func (g *Goldmark) Inline(text string) (template.HTML, error) {
	core := strings.TrimFunc(text, unicode.IsSpace)
	if core == "" {
		return template.HTML(template.HTMLEscapeString(text)), nil
	}
	lead := text[:strings.Index(text, core)]
	trail := text[len(lead)+len(core):]

	var buf bytes.Buffer
	if err := g.md.Convert([]byte(strings.ReplaceAll(core, "<", "&lt;")), &buf); err != nil {
		return "", err
	}
	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "<p>") || !strings.HasSuffix(out, "</p>") || strings.Count(out, "<p>") != 1 {
		out = template.HTMLEscapeString(core)
	} else {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return template.HTML(template.HTMLEscapeString(lead) + out + template.HTMLEscapeString(trail)), nil
}

// runsHTML renders inline markup as HTML: bold runs become <strong>, coloured
// runs a <span> with an inline colour. Run text goes through m.
func runsHTML(m InlineMarkup, text string) template.HTML {
	var b strings.Builder
	for _, run := range inline.Parse(text) {
		frag, err := m.Inline(run.Text)
		if err != nil {
			frag = template.HTML(template.HTMLEscapeString(run.Text))
		}
		s := string(frag)
		if run.Bold {
			s = "<strong>" + s + "</strong>"
		}
		if run.Color != "" {
			s = `<span style="color: ` + run.Color + `">` + s + "</span>"
		}
		b.WriteString(s)
	}
	return template.HTML(b.String())
}
