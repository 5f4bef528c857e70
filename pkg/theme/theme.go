// Package theme holds the shared visual configuration applied to every output
// format and resolves symbolic colour and font-size references against it.
//
// A Theme is read-only for the duration of a render pass. Normalized returns a
// canonical copy instead of mutating the receiver, so several renderers can
// share one Theme value concurrently.
package theme

import (
	"strings"
)

// Documented fallback colours for call sites that cannot resolve a colour.
const (
	DefaultPrimary    = "#004A99"
	DefaultAccent     = "#E07000"
	DefaultText       = "#333333"
	DefaultFooterText = "#666666"
	DefaultShade      = "#F2F2F2"
	DefaultMuted      = "#666666"
	Black             = "#000000"
	White             = "#FFFFFF"
)

// Symbolic colour names accepted wherever a colour field appears.
const (
	PrimaryColor    = "primary_color"
	AccentColor     = "accent_color"
	TextColor       = "text_color"
	BackgroundColor = "background_color"
	FooterTextColor = "footer_text_color"
)

// DefaultMarginMM is used for any margin left unset.
const DefaultMarginMM = 12.7

// Margins are page margins in millimetres.
type Margins struct {
	Top    float64 `koanf:"top" yaml:"top" toml:"top"`
	Bottom float64 `koanf:"bottom" yaml:"bottom" toml:"bottom"`
	Left   float64 `koanf:"left" yaml:"left" toml:"left"`
	Right  float64 `koanf:"right" yaml:"right" toml:"right"`
}

// Stripe is the decorative full-width bar at the top of the first page.
type Stripe struct {
	Enabled   bool    `koanf:"enabled" yaml:"enabled" toml:"enabled"`
	Color     string  `koanf:"color" yaml:"color,omitempty" toml:"color,omitempty"`
	Thickness float64 `koanf:"thickness" yaml:"thickness,omitempty" toml:"thickness,omitempty"`
}

// Footer holds footer styling; the footer content lives on the document.
type Footer struct {
	TextColor string `koanf:"text_color" yaml:"text_color,omitempty" toml:"text_color,omitempty"`
}

// Typography maps a medium ("default", "docx", "pdf", ...) to its
// font_size_<role> entries in points.
type Typography map[string]map[string]float64

// Theme is the shared visual configuration.
type Theme struct {
	PrimaryColor    string     `koanf:"primary_color" yaml:"primary_color" toml:"primary_color"`
	AccentColor     string     `koanf:"accent_color" yaml:"accent_color" toml:"accent_color"`
	TextColor       string     `koanf:"text_color" yaml:"text_color" toml:"text_color"`
	BackgroundColor string     `koanf:"background_color" yaml:"background_color,omitempty" toml:"background_color,omitempty"`
	Margins         Margins    `koanf:"margins" yaml:"margins" toml:"margins"`
	Typography      Typography `koanf:"typography" yaml:"typography" toml:"typography"`
	FontHeader      string     `koanf:"font_header" yaml:"font_header" toml:"font_header"`
	FontBody        string     `koanf:"font_body" yaml:"font_body" toml:"font_body"`
	Stripe          Stripe     `koanf:"stripe" yaml:"stripe" toml:"stripe"`
	Footer          Footer     `koanf:"footer" yaml:"footer" toml:"footer"`
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		PrimaryColor:    DefaultPrimary,
		AccentColor:     DefaultAccent,
		TextColor:       DefaultText,
		BackgroundColor: White,
		Margins: Margins{
			Top:    DefaultMarginMM,
			Bottom: DefaultMarginMM,
			Left:   DefaultMarginMM,
			Right:  DefaultMarginMM,
		},
		Typography: Typography{
			"default": {
				"font_size_base":   11,
				"font_size_h1":     16,
				"font_size_h2":     13,
				"font_size_small":  9,
				"font_size_footer": 8,
			},
			"pdf": {
				"font_size_base": 8,
			},
		},
		FontHeader: "Arial",
		FontBody:   "Arial",
		Stripe: Stripe{
			Enabled:   false,
			Color:     PrimaryColor,
			Thickness: 4,
		},
		Footer: Footer{TextColor: DefaultFooterText},
	}
}

// NormalizeHex canonicalises a literal colour to "#RRGGBB" in upper case.
// It accepts 3 or 6 hex digits with or without a leading '#'.
func NormalizeHex(s string) (string, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return "", false
		}
	}
	return "#" + strings.ToUpper(s), true
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Lookup returns the configured value of a symbolic colour name.
func (t Theme) Lookup(name string) (string, bool) {
	switch name {
	case PrimaryColor:
		return t.PrimaryColor, t.PrimaryColor != ""
	case AccentColor:
		return t.AccentColor, t.AccentColor != ""
	case TextColor:
		return t.TextColor, t.TextColor != ""
	case BackgroundColor:
		return t.BackgroundColor, t.BackgroundColor != ""
	case FooterTextColor:
		return t.Footer.TextColor, t.Footer.TextColor != ""
	}
	return "", false
}

// ResolveColor resolves key to a "#RRGGBB" colour. A symbolic name yields the
// theme's configured value, anything else is treated as a literal. Empty or
// invalid values fall back to fallback, then to black.
func (t Theme) ResolveColor(key, fallback string) string {
	if v, ok := t.Lookup(key); ok {
		key = v
	}
	if hex, ok := NormalizeHex(key); ok {
		return hex
	}
	if fallback != "" && fallback != key {
		if v, ok := t.Lookup(fallback); ok {
			fallback = v
		}
		if hex, ok := NormalizeHex(fallback); ok {
			return hex
		}
	}
	return Black
}

// Primary is the resolved primary colour.
func (t Theme) Primary() string { return t.ResolveColor(PrimaryColor, DefaultPrimary) }

// Accent is the resolved accent colour.
func (t Theme) Accent() string { return t.ResolveColor(AccentColor, DefaultAccent) }

// Text is the resolved body text colour.
func (t Theme) Text() string { return t.ResolveColor(TextColor, DefaultText) }

// FooterText is the resolved footer text colour.
func (t Theme) FooterText() string { return t.ResolveColor(FooterTextColor, DefaultFooterText) }

// FontSize resolves typography.<medium>.font_size_<role>, then
// typography.default.font_size_<role>, then defaultPt.
func (t Theme) FontSize(role, medium string, defaultPt float64) float64 {
	key := "font_size_" + role
	if sizes, ok := t.Typography[medium]; ok {
		if v, ok := sizes[key]; ok && v > 0 {
			return v
		}
	}
	if sizes, ok := t.Typography["default"]; ok {
		if v, ok := sizes[key]; ok && v > 0 {
			return v
		}
	}
	return defaultPt
}

// Margin returns m, or DefaultMarginMM when m is unset.
func Margin(m float64) float64 {
	if m <= 0 {
		return DefaultMarginMM
	}
	return m
}

// HeaderFont returns the header font family.
func (t Theme) HeaderFont() string {
	if t.FontHeader == "" {
		return "Arial"
	}
	return t.FontHeader
}

// BodyFont returns the body font family.
func (t Theme) BodyFont() string {
	if t.FontBody == "" {
		return "Arial"
	}
	return t.FontBody
}

// Normalized returns a copy of t with every colour field in canonical
// "#RRGGBB" form. Symbolic references (the stripe colour may name a theme
// colour) are kept as-is. Applying it twice yields the same value.
func (t Theme) Normalized() Theme {
	out := t
	out.PrimaryColor = normalizeField(t.PrimaryColor)
	out.AccentColor = normalizeField(t.AccentColor)
	out.TextColor = normalizeField(t.TextColor)
	out.BackgroundColor = normalizeField(t.BackgroundColor)
	out.Footer.TextColor = normalizeField(t.Footer.TextColor)
	if _, symbolic := t.Lookup(t.Stripe.Color); !symbolic {
		out.Stripe.Color = normalizeField(t.Stripe.Color)
	}
	out.Typography = make(Typography, len(t.Typography))
	for medium, sizes := range t.Typography {
		cp := make(map[string]float64, len(sizes))
		for k, v := range sizes {
			cp[k] = v
		}
		out.Typography[medium] = cp
	}
	return out
}

func normalizeField(v string) string {
	if hex, ok := NormalizeHex(v); ok {
		return hex
	}
	return v
}
