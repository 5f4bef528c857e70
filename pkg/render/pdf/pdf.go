// Package pdf produces print-ready documents by handing HTML pages to an
// external paginator.
//
// The renderer does not draw blocks itself. It is fed the page produced by the
// HTML renderer, adds a footer fragment that the paginator stamps on every
// page, and writes the result atomically: the paginator targets a temporary
// file that is only renamed to the destination on success.
package pdf

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"os"

	"github.com/rs/zerolog"

	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/errors"
	"github.com/seanlgirgis/folio/pkg/filesystem"
	"github.com/seanlgirgis/folio/pkg/logging"
	"github.com/seanlgirgis/folio/pkg/render"
	"github.com/seanlgirgis/folio/pkg/theme"
)

//go:embed templates/footer.html.tmpl
var templatesFS embed.FS

var footerTemplate = template.Must(template.ParseFS(templatesFS, "templates/footer.html.tmpl"))

// FooterMarginBottom leaves room on every page for the footer.
const FooterMarginBottom = "15mm"

// DefaultFooterSpacing is the gap in millimetres between body and footer.
const DefaultFooterSpacing = 5.0

// Renderer paginates HTML into PDF files.
type Renderer struct {
	theme         theme.Theme
	paginator     Paginator
	logger        zerolog.Logger
	fs            filesystem.FS
	pageSize      string
	footerSpacing float64
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the renderer's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// WithFS sets the filesystem used for temporary and final files.
func WithFS(fsys filesystem.FS) Option {
	return func(r *Renderer) { r.fs = fsys }
}

// WithPageSize overrides the Letter page size.
func WithPageSize(size string) Option {
	return func(r *Renderer) {
		if size != "" {
			r.pageSize = size
		}
	}
}

// WithFooterSpacing overrides the footer spacing in millimetres.
func WithFooterSpacing(mm float64) Option {
	return func(r *Renderer) {
		if mm > 0 {
			r.footerSpacing = mm
		}
	}
}

// New creates a PDF renderer backed by paginator.
func New(th theme.Theme, paginator Paginator, opts ...Option) *Renderer {
	r := &Renderer{
		theme:         th.Normalized(),
		paginator:     paginator,
		logger:        logging.GetLogger("render.pdf"),
		fs:            filesystem.NewOS(),
		pageSize:      "Letter",
		footerSpacing: DefaultFooterSpacing,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render paginates html into outputPath. When footer has content, a footer
// fragment is stamped on every page. Transient files are always removed and
// outputPath is only replaced when the paginator succeeds.
func (r *Renderer) Render(ctx context.Context, html string, footer *document.Footer, outputPath string) error {
	if r.paginator == nil {
		return errors.New(errors.ErrPaginatorMissing, "no paginator configured")
	}

	opts := DefaultOptions()
	opts.PageSize = r.pageSize

	if !footer.Empty() {
		footerPath, err := r.writeFooter(footer)
		if err != nil {
			return err
		}
		defer func() {
			if err := r.fs.Remove(footerPath); err != nil && !os.IsNotExist(err) {
				r.logger.Warn().Err(err).Str("path", footerPath).Msg("could not remove footer file")
			}
		}()
		opts.FooterHTML = footerPath
		opts.FooterSpacing = r.footerSpacing
		opts.MarginBottom = FooterMarginBottom
	}

	tmp, err := filesystem.TempPath(r.fs, outputPath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrSave, "cannot prepare %s", outputPath)
	}
	if err := r.paginator.Paginate(ctx, []byte(html), opts, tmp); err != nil {
		_ = r.fs.Remove(tmp)
		r.logger.Error().Err(err).Str("path", outputPath).Msg("pagination failed")
		return err
	}
	if err := filesystem.Commit(r.fs, tmp, outputPath); err != nil {
		return errors.Wrapf(err, errors.ErrSave, "failed to save pdf to %s", outputPath)
	}

	r.logger.Info().Str("path", outputPath).Msg("saved pdf")
	return nil
}

type footerPartView struct {
	Text  string
	Class string
}

type footerView struct {
	Font      string
	FontSize  float64
	Color     string
	PaddingMM float64
	Parts     []footerPartView
}

// Footer returns the footer fragment for f.
func (r *Renderer) Footer(f *document.Footer) (string, error) {
	v := footerView{
		Font:      r.theme.BodyFont(),
		FontSize:  r.theme.FontSize("footer", "pdf", 8),
		Color:     r.theme.FooterText(),
		PaddingMM: theme.Margin(r.theme.Margins.Left),
	}
	for _, p := range render.FooterParts(f) {
		switch p.Kind {
		case render.FooterPageNum:
			v.Parts = append(v.Parts, footerPartView{Class: "page"})
		case render.FooterPageCount:
			v.Parts = append(v.Parts, footerPartView{Class: "topage"})
		default:
			v.Parts = append(v.Parts, footerPartView{Text: p.Text})
		}
	}

	var buf bytes.Buffer
	if err := footerTemplate.ExecuteTemplate(&buf, "footer.html.tmpl", v); err != nil {
		return "", errors.Wrap(err, errors.ErrRender, "failed to render pdf footer")
	}
	return buf.String(), nil
}

func (r *Renderer) writeFooter(f *document.Footer) (string, error) {
	content, err := r.Footer(f)
	if err != nil {
		return "", err
	}
	file, err := r.fs.CreateTemp("", "folio-footer-*.html")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileWrite, "cannot create footer file")
	}
	name := file.Name()
	if _, err := file.WriteString(content); err != nil {
		_ = file.Close()
		_ = r.fs.Remove(name)
		return "", errors.Wrap(err, errors.ErrFileWrite, "cannot write footer file")
	}
	if err := file.Close(); err != nil {
		_ = r.fs.Remove(name)
		return "", errors.Wrap(err, errors.ErrFileWrite, "cannot write footer file")
	}
	return name, nil
}
