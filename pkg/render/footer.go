package render

import "github.com/seanlgirgis/folio/pkg/document"

// FooterPartKind tells a medium how to draw one piece of the footer.
type FooterPartKind int

const (
	FooterLiteral   FooterPartKind = iota // plain text
	FooterPageNum                         // current page number field
	FooterPageCount                       // total page count field
)

// FooterSeparator sits between the footer text and the page numbers.
const FooterSeparator = " | "

// FooterPart is one piece of a footer line.
type FooterPart struct {
	Kind FooterPartKind
	Text string
}

// FooterParts lays out "text | Page N of M". The separator only appears when
// both the text and the page numbers are shown.
func FooterParts(f *document.Footer) []FooterPart {
	if f.Empty() {
		return nil
	}
	var parts []FooterPart
	if f.Text != "" {
		parts = append(parts, FooterPart{Kind: FooterLiteral, Text: f.Text})
	}
	if f.ShowPages {
		if f.Text != "" {
			parts = append(parts, FooterPart{Kind: FooterLiteral, Text: FooterSeparator})
		}
		parts = append(parts,
			FooterPart{Kind: FooterLiteral, Text: "Page "},
			FooterPart{Kind: FooterPageNum},
			FooterPart{Kind: FooterLiteral, Text: " of "},
			FooterPart{Kind: FooterPageCount},
		)
	}
	return parts
}
