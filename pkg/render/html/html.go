// Package html renders documents as a single self-contained HTML page whose
// stylesheet is generated from the theme.
//
// Everything the page needs is resolved up front into view models (colours,
// grid widths, float clears, inline markup) so the templates only substitute.
// Grids use floats with explicit widths rather than flex or grid layout, since
// the print paginator fed by this output does not support either.
package html

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	texttemplate "text/template"

	"github.com/rs/zerolog"

	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/errors"
	"github.com/seanlgirgis/folio/pkg/filesystem"
	"github.com/seanlgirgis/folio/pkg/inline"
	"github.com/seanlgirgis/folio/pkg/logging"
	"github.com/seanlgirgis/folio/pkg/render"
	"github.com/seanlgirgis/folio/pkg/theme"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var (
	pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/page.html.tmpl"))
	cssTemplate  = texttemplate.Must(texttemplate.ParseFS(templatesFS, "templates/style.css.tmpl"))
)

// Renderer produces HTML pages.
type Renderer struct {
	theme  theme.Theme
	markup InlineMarkup
	logger zerolog.Logger
	fs     filesystem.FS
	medium string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the renderer's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// WithInlineMarkup replaces the goldmark inline converter.
func WithInlineMarkup(m InlineMarkup) Option {
	return func(r *Renderer) { r.markup = m }
}

// WithFS sets the filesystem used by Save.
func WithFS(fsys filesystem.FS) Option {
	return func(r *Renderer) { r.fs = fsys }
}

// WithMedium selects the typography profile used for the screen stylesheet,
// "html" by default.
func WithMedium(medium string) Option {
	return func(r *Renderer) { r.medium = medium }
}

// New creates an HTML renderer. The theme is normalised once here; the
// caller's value is not modified.
func New(th theme.Theme, opts ...Option) *Renderer {
	r := &Renderer{
		theme:  th.Normalized(),
		markup: NewGoldmark(),
		logger: logging.GetLogger("render.html"),
		fs:     filesystem.NewOS(),
		medium: "html",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render returns the HTML page for doc.
func (r *Renderer) Render(doc *document.Document) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderTo(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderTo writes the HTML page for doc to w.
func (r *Renderer) RenderTo(w io.Writer, doc *document.Document) error {
	b := &builder{theme: r.theme, markup: r.markup}
	render.Walk(doc, b, r.logger)

	stripe, hasStripe := render.ResolveStripe(doc, r.theme)
	css, err := r.stylesheet(stripe, hasStripe)
	if err != nil {
		return err
	}

	page := pageView{
		Title:  pageTitle(doc),
		CSS:    css,
		Stripe: hasStripe,
		Blocks: b.blocks,
	}
	if err := pageTemplate.ExecuteTemplate(w, "page.html.tmpl", page); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to execute page template")
	}
	r.logger.Debug().Int("blocks", len(b.blocks)).Bool("stripe", hasStripe).Msg("rendered html")
	return nil
}

// Save writes content to path.
func (r *Renderer) Save(content, path string) error {
	if err := filesystem.WriteFileAtomic(r.fs, path, []byte(content)); err != nil {
		return errors.Wrapf(err, errors.ErrSave, "failed to save html to %s", path)
	}
	r.logger.Info().Str("path", path).Msg("saved html")
	return nil
}

type cssView struct {
	FontBody, FontHeader  string
	Primary, Accent, Text string
	BaseSize, PrintSize   float64
	TitleSize, SmallSize  float64
	Margins               theme.Margins
	PageBreakPad          float64
	StripeDisplay         string
	StripeColor           string
	StripeHeight          float64
}

func (r *Renderer) stylesheet(stripe render.Stripe, visible bool) (template.CSS, error) {
	t := r.theme
	v := cssView{
		FontBody:   t.BodyFont(),
		FontHeader: t.HeaderFont(),
		Primary:    t.Primary(),
		Accent:     t.Accent(),
		Text:       t.Text(),
		BaseSize:   t.FontSize("base", r.medium, 11),
		PrintSize:  t.FontSize("base", "pdf", 8),
		TitleSize:  t.FontSize("h2", r.medium, 13),
		SmallSize:  t.FontSize("small", r.medium, 7),
		Margins: theme.Margins{
			Top:    theme.Margin(t.Margins.Top),
			Bottom: theme.Margin(t.Margins.Bottom),
			Left:   theme.Margin(t.Margins.Left),
			Right:  theme.Margin(t.Margins.Right),
		},
		StripeDisplay: "none",
		StripeColor:   t.Primary(),
		StripeHeight:  render.DefaultStripeThickness * 2,
	}
	v.PageBreakPad = v.Margins.Top * 2
	if visible {
		v.StripeDisplay = "block"
		v.StripeColor = stripe.Color
		v.StripeHeight = stripe.Thickness * 2
	}

	var buf bytes.Buffer
	if err := cssTemplate.ExecuteTemplate(&buf, "style.css.tmpl", v); err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to generate stylesheet")
	}
	return template.CSS(buf.String()), nil
}

// pageTitle uses the header block's title, if any.
func pageTitle(doc *document.Document) string {
	if doc == nil {
		return ""
	}
	if b, ok := doc.Find(document.HeaderBlockType); ok {
		return inline.Plain(b.Config.String("title"))
	}
	return ""
}
