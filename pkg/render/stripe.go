package render

import (
	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/theme"
)

// DefaultStripeThickness is used when neither the block nor the theme sets one.
const DefaultStripeThickness = 4.0

// Stripe is the resolved top-of-first-page bar.
type Stripe struct {
	Color     string
	Thickness float64 // points
}

// ResolveStripe decides whether a stripe is drawn and how. A stripe_block
// anywhere in the document takes precedence over the theme, including when it
// disables the stripe; otherwise the theme's stripe applies if enabled.
func ResolveStripe(doc *document.Document, th theme.Theme) (Stripe, bool) {
	thickness := th.Stripe.Thickness
	if thickness <= 0 {
		thickness = DefaultStripeThickness
	}
	colorKey := th.Stripe.Color
	if colorKey == "" {
		colorKey = theme.PrimaryColor
	}

	if doc != nil {
		if b, ok := doc.Find(document.StripeBlockType); ok {
			sb, err := document.Decode[document.StripeBlock](b.Config)
			if err != nil || !sb.Active() {
				return Stripe{}, false
			}
			if sb.Color != "" {
				colorKey = sb.Color
			}
			if sb.Thickness > 0 {
				thickness = sb.Thickness
			}
			return Stripe{Color: th.ResolveColor(colorKey, theme.DefaultPrimary), Thickness: thickness}, true
		}
	}

	if !th.Stripe.Enabled {
		return Stripe{}, false
	}
	return Stripe{Color: th.ResolveColor(colorKey, theme.DefaultPrimary), Thickness: thickness}, true
}
