// Package build turns a project configuration into rendered files: every
// target's layouts are resolved against the content store and handed to the
// renderer of each requested format.
//
// Formats are built concurrently and fail independently. A broken paginator
// costs the PDF, not the DOCX next to it.
package build

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/seanlgirgis/folio/pkg/config"
	"github.com/seanlgirgis/folio/pkg/content"
	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/errors"
	"github.com/seanlgirgis/folio/pkg/filesystem"
	"github.com/seanlgirgis/folio/pkg/logging"
	"github.com/seanlgirgis/folio/pkg/render/docx"
	"github.com/seanlgirgis/folio/pkg/render/html"
	"github.com/seanlgirgis/folio/pkg/render/markdown"
	"github.com/seanlgirgis/folio/pkg/render/pdf"
	"github.com/seanlgirgis/folio/pkg/theme"
)

// Builder renders the targets of one project.
type Builder struct {
	cfg       *config.Config
	theme     theme.Theme
	store     content.Store
	loader    *content.Loader
	paginator pdf.Paginator
	fs        filesystem.FS
	logger    zerolog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithPaginator replaces the wkhtmltopdf paginator.
func WithPaginator(p pdf.Paginator) Option {
	return func(b *Builder) { b.paginator = p }
}

// WithFS sets the filesystem used for loading and saving.
func WithFS(fsys filesystem.FS) Option {
	return func(b *Builder) { b.fs = fsys }
}

// WithLogger sets the builder's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// New loads the project's theme and content store. A missing style file
// falls back to the built-in theme and a missing store to an empty one.
func New(cfg *config.Config, opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg:    cfg,
		fs:     filesystem.NewOS(),
		logger: logging.GetLogger("build"),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.paginator == nil {
		b.paginator = pdf.NewWkhtmltopdf(cfg.Paginator.Binary)
	}
	b.loader = content.NewLoader(b.fs)

	th, err := b.loadTheme()
	if err != nil {
		return nil, err
	}
	b.theme = th

	store, err := b.loadStore()
	if err != nil {
		return nil, err
	}
	b.store = store
	return b, nil
}

func (b *Builder) loadTheme() (theme.Theme, error) {
	if b.cfg.Style == "" {
		return theme.Default(), nil
	}
	path := b.cfg.Resolve(b.cfg.Style)
	th, err := theme.Load(path)
	if errors.IsErrorCode(err, errors.ErrNotFound) {
		b.logger.Warn().Str("path", path).Msg("style file not found, using built-in theme")
		return theme.Default(), nil
	}
	return th, err
}

func (b *Builder) loadStore() (content.Store, error) {
	if b.cfg.Store == "" {
		return content.Store{}, nil
	}
	path := b.cfg.Resolve(b.cfg.Store)
	store, err := b.loader.Store(path)
	if errors.IsErrorCode(err, errors.ErrNotFound) {
		b.logger.Debug().Str("path", path).Msg("no content store")
		return content.Store{}, nil
	}
	return store, err
}

// Theme returns the theme used for every output.
func (b *Builder) Theme() theme.Theme { return b.theme }

// Document loads layout (relative to the project root) and resolves its
// content keys.
func (b *Builder) Document(layout string) (*document.Document, error) {
	doc, err := b.loader.Layout(b.cfg.Resolve(layout))
	if err != nil {
		return nil, err
	}
	return content.Resolve(doc, b.store, b.logger), nil
}

// OutputPath is where format's output for target is written.
func (b *Builder) OutputPath(target, format string) string {
	dir := b.cfg.OutputDir
	if format == config.FormatHTML && b.cfg.HTMLDir != "" {
		dir = b.cfg.HTMLDir
	}
	return b.cfg.Resolve(filepath.Join(dir, target+"."+format))
}

type job struct {
	target string
	format string
	layout string
	result *Result
}

// Build renders targets (all when empty) in formats (each target's own
// selection when empty). The returned error covers invalid requests only;
// per-output failures are in the report.
func (b *Builder) Build(ctx context.Context, targets, formats []string) (*Report, error) {
	if len(targets) == 0 {
		targets = b.cfg.TargetNames()
	}
	for _, name := range targets {
		if _, ok := b.cfg.Targets[name]; !ok {
			return nil, errors.Newf(errors.ErrInvalidInput, "unknown target %q", name).
				WithDetail("target", name)
		}
	}
	for _, f := range formats {
		if !config.ValidFormat(f) {
			return nil, errors.Newf(errors.ErrInvalidInput, "unknown format %q", f).
				WithDetail("format", f)
		}
	}

	done := logging.LogOperationStart(b.logger, "build")
	defer done()

	start := time.Now()
	report := &Report{}
	var jobs []job
	for _, name := range targets {
		tr := newTargetReport(name, start)
		report.Targets = append(report.Targets, tr)

		t := b.cfg.Targets[name]
		for _, format := range config.Formats {
			if !wanted(t, format, formats) {
				continue
			}
			tr.Results = append(tr.Results, Result{Target: name, Format: format})
		}
		for i := range tr.Results {
			r := &tr.Results[i]
			jobs = append(jobs, job{target: name, format: r.Format, layout: t.Layout(r.Format), result: r})
		}
	}

	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Add(1)
		go func(j job) {
			defer wg.Done()
			b.run(ctx, j)
		}(j)
	}
	wg.Wait()

	for _, tr := range report.Targets {
		results := tr.Results
		tr.Results = nil
		for _, r := range results {
			tr.add(r)
		}
		tr.EndTime = time.Now()
	}
	return report, nil
}

func wanted(t config.Target, format string, requested []string) bool {
	if len(requested) == 0 {
		return t.Builds(format)
	}
	for _, f := range requested {
		if f == format {
			return true
		}
	}
	return false
}

// run builds one output and records the outcome in j.result.
func (b *Builder) run(ctx context.Context, j job) {
	res := j.result
	logger := b.logger.With().Str("target", j.target).Str("format", j.format).Logger()
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	if j.layout == "" {
		res.Status = StatusSkipped
		res.Reason = "no layout configured"
		logger.Debug().Msg("skipped: no layout")
		return
	}

	res.Path = b.OutputPath(j.target, j.format)
	if err := b.render(ctx, j.format, j.layout, res.Path, logger); err != nil {
		res.Status = StatusError
		res.Err = err
		logger.Error().Err(err).Msg("output failed")
		return
	}
	res.Status = StatusReady
}

func (b *Builder) render(ctx context.Context, format, layout, path string, logger zerolog.Logger) error {
	doc, err := b.Document(layout)
	if err != nil {
		return err
	}

	switch format {
	case config.FormatDOCX:
		out, err := docx.New(b.theme, docx.WithLogger(logger), docx.WithFS(b.fs)).Render(doc)
		if err != nil {
			return err
		}
		return out.Save(path)

	case config.FormatHTML:
		r := html.New(b.theme, html.WithLogger(logger), html.WithFS(b.fs))
		page, err := r.Render(doc)
		if err != nil {
			return err
		}
		return r.Save(page, path)

	case config.FormatMarkdown:
		r := markdown.New(b.theme, markdown.WithLogger(logger), markdown.WithFS(b.fs))
		text, err := r.Render(doc)
		if err != nil {
			return err
		}
		return r.Save(text, path)

	case config.FormatPDF:
		page, err := html.New(b.theme, html.WithLogger(logger), html.WithMedium("pdf")).Render(doc)
		if err != nil {
			return err
		}
		if timeout := b.cfg.Paginator.Timeout; timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		r := pdf.New(b.theme, b.paginator,
			pdf.WithLogger(logger),
			pdf.WithFS(b.fs),
			pdf.WithPageSize(b.cfg.Paginator.PageSize),
			pdf.WithFooterSpacing(b.cfg.Paginator.FooterSpacing),
		)
		return r.Render(ctx, page, doc.Config.Footer, path)
	}
	return errors.Newf(errors.ErrInvalidInput, "unknown format %q", format)
}
