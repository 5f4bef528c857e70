package render

import (
	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/theme"
)

// BoxKind identifies which block asks for a box; the same style name draws
// slightly differently per block.
type BoxKind int

const (
	TextBox BoxKind = iota
	GridBox
	TextGridBox
	ProjectBox
)

// Weight is the thickness class of a box's left border.
type Weight int

const (
	Thin Weight = iota
	Thick
)

// Edges are paddings in points.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// Box is a region with an optional fill and a coloured left border.
type Box struct {
	Style       string
	BorderColor string
	Border      Weight
	Fill        string
	Padding     Edges
}

// Filled reports whether the box has a background.
func (b Box) Filled() bool { return b.Fill != "" }

var (
	padAll     = Edges{Top: 11, Right: 11, Bottom: 11, Left: 11}
	padLeft    = Edges{Left: 11}
	padTight   = Edges{Top: 4, Right: 4, Bottom: 4, Left: 11}
	padTighter = Edges{Top: 2, Right: 4, Bottom: 2, Left: 11}
)

// ResolveBox maps a block's style onto a Box. It returns false when the style
// draws no box. borderColor overrides the style's default border colour.
func ResolveBox(th theme.Theme, kind BoxKind, style, borderColor string) (Box, bool) {
	if kind == ProjectBox {
		if style == "" {
			style = document.StyleLeftBorder
		}
		if style != document.StyleLeftBorder {
			return Box{}, false
		}
	}

	var (
		box          = Box{Style: style, Border: Thin}
		defaultColor string
		fallback     string
	)
	switch style {
	case document.StyleShaded:
		defaultColor, fallback = theme.AccentColor, theme.DefaultAccent
		box.Fill = theme.DefaultShade
		box.Padding = padTighter
		if kind == TextBox || kind == GridBox {
			box.Border, box.Padding = Thick, padAll
		}
	case document.StyleShadedPrimary:
		defaultColor, fallback = theme.PrimaryColor, theme.DefaultPrimary
		box.Fill = theme.DefaultShade
		box.Padding = padTight
		if kind == TextGridBox {
			box.Padding = padTighter
		}
	case document.StyleLeftBorder:
		defaultColor, fallback = theme.PrimaryColor, theme.DefaultPrimary
		box.Padding = padLeft
	default:
		return Box{}, false
	}

	key := borderColor
	if key == "" {
		key = defaultColor
	}
	box.BorderColor = th.ResolveColor(key, fallback)
	return box, true
}
