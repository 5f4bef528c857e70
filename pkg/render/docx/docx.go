// Package docx renders documents as WordprocessingML packages.
//
// Word has no floats or rounded boxes, so layout is emulated with tables:
// grids are fixed-width tables filled row-major, boxed blocks are single-cell
// tables carrying a left border and shading, and the top stripe is a floating
// table anchored to the page corner. Page breaks close a section so each page
// keeps the theme margins and footer.
package docx

import (
	"archive/zip"
	"io"

	"github.com/beevik/etree"
	"github.com/rs/zerolog"

	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/errors"
	"github.com/seanlgirgis/folio/pkg/filesystem"
	"github.com/seanlgirgis/folio/pkg/logging"
	"github.com/seanlgirgis/folio/pkg/render"
	"github.com/seanlgirgis/folio/pkg/theme"
)

// Renderer builds DOCX packages.
type Renderer struct {
	theme  theme.Theme
	logger zerolog.Logger
	fs     filesystem.FS
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the renderer's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// WithFS sets the filesystem documents are saved to.
func WithFS(fsys filesystem.FS) Option {
	return func(r *Renderer) { r.fs = fsys }
}

// New creates a DOCX renderer for th.
func New(th theme.Theme, opts ...Option) *Renderer {
	r := &Renderer{
		theme:  th.Normalized(),
		logger: logging.GetLogger("render.docx"),
		fs:     filesystem.NewOS(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render lays doc out as a WordprocessingML package. Problems with single
// blocks are logged and skipped.
func (r *Renderer) Render(doc *document.Document) (*Document, error) {
	if doc == nil {
		doc = &document.Document{}
	}
	b := newBuilder(r.theme, r.logger, doc.Config.Footer)

	if stripe, ok := render.ResolveStripe(doc, r.theme); ok {
		b.stripe(stripe)
	}
	render.Walk(doc, b, r.logger)
	b.finish()

	out := &Document{fs: r.fs, logger: r.logger}
	out.add(PartContentTypes, contentTypes(b.footerParts()))
	out.add(PartPackageRels, packageRels())
	out.add(PartDocument, b.doc)
	out.add(PartDocumentRels, b.rels.xml())
	out.add(PartStyles, styles(r.theme))
	out.add(PartNumbering, numbering())
	out.add(PartSettings, settings())
	for _, f := range b.footers {
		out.add(f.name, f.xml)
	}
	return out, nil
}

type part struct {
	name string
	xml  *etree.Document
}

// Document is a rendered DOCX package held in memory.
type Document struct {
	parts  []part
	fs     filesystem.FS
	logger zerolog.Logger
}

func (d *Document) add(name string, x *etree.Document) {
	d.parts = append(d.parts, part{name: name, xml: x})
}

// Part returns the XML of a package part, or nil.
func (d *Document) Part(name string) *etree.Document {
	for _, p := range d.parts {
		if p.name == name {
			return p.xml
		}
	}
	return nil
}

// Parts lists the package part names in write order.
func (d *Document) Parts() []string {
	names := make([]string, len(d.parts))
	for i, p := range d.parts {
		names[i] = p.name
	}
	return names
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo writes the zipped package to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	for _, p := range d.parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return cw.n, errors.Wrapf(err, errors.ErrRender, "cannot add part %s", p.name)
		}
		if _, err := p.xml.WriteTo(f); err != nil {
			return cw.n, errors.Wrapf(err, errors.ErrRender, "cannot write part %s", p.name)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, errors.Wrap(err, errors.ErrRender, "cannot finish docx package")
	}
	return cw.n, nil
}

// Save writes the package to path, replacing any previous file only once
// the new one is complete.
func (d *Document) Save(path string) error {
	err := filesystem.WriteAtomic(d.fs, path, func(w io.Writer) error {
		_, err := d.WriteTo(w)
		return err
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrSave, "failed to save docx to %s", path)
	}
	d.logger.Info().Str("path", path).Msg("saved docx")
	return nil
}
