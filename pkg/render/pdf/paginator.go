package pdf

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/seanlgirgis/folio/pkg/errors"
	"github.com/seanlgirgis/folio/pkg/logging"
)

// Paginator turns an HTML page into a paginated document at out.
type Paginator interface {
	Paginate(ctx context.Context, html []byte, opts Options, out string) error
}

// Options are the layout settings handed to the paginator.
type Options struct {
	PageSize              string
	MarginTop             string
	MarginRight           string
	MarginBottom          string
	MarginLeft            string
	Encoding              string
	FooterHTML            string
	FooterSpacing         float64
	NoOutline             bool
	EnableLocalFileAccess bool
	DisableSmartShrinking bool
	PrintMediaType        bool
}

// DefaultOptions are full-bleed Letter pages; margins are simulated by
// padding inside the page so the stripe can reach the paper edge.
func DefaultOptions() Options {
	return Options{
		PageSize:              "Letter",
		MarginTop:             "0mm",
		MarginRight:           "0mm",
		MarginBottom:          "0mm",
		MarginLeft:            "0mm",
		Encoding:              "UTF-8",
		NoOutline:             true,
		EnableLocalFileAccess: true,
		DisableSmartShrinking: true,
		PrintMediaType:        true,
	}
}

// Args renders the options as wkhtmltopdf command-line flags.
func (o Options) Args() []string {
	var args []string
	add := func(flag, value string) {
		if value != "" {
			args = append(args, "--"+flag, value)
		}
	}
	add("page-size", o.PageSize)
	add("margin-top", o.MarginTop)
	add("margin-right", o.MarginRight)
	add("margin-bottom", o.MarginBottom)
	add("margin-left", o.MarginLeft)
	add("encoding", o.Encoding)
	if o.NoOutline {
		args = append(args, "--no-outline")
	}
	if o.EnableLocalFileAccess {
		args = append(args, "--enable-local-file-access")
	}
	if o.DisableSmartShrinking {
		args = append(args, "--disable-smart-shrinking")
	}
	if o.PrintMediaType {
		args = append(args, "--print-media-type")
	}
	if o.FooterHTML != "" {
		add("footer-html", o.FooterHTML)
		args = append(args, "--footer-spacing", fmt.Sprintf("%g", o.FooterSpacing))
	}
	return args
}

// DefaultBinary is looked up on PATH when no binary is configured.
const DefaultBinary = "wkhtmltopdf"

// Wkhtmltopdf runs the wkhtmltopdf binary, feeding the page on stdin.
type Wkhtmltopdf struct {
	Binary string
	logger zerolog.Logger
}

// NewWkhtmltopdf creates a paginator for binary (DefaultBinary when empty).
func NewWkhtmltopdf(binary string) *Wkhtmltopdf {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Wkhtmltopdf{Binary: binary, logger: logging.GetLogger("render.pdf.wkhtmltopdf")}
}

// Available reports whether the binary can be found.
func (w *Wkhtmltopdf) Available() bool {
	_, err := exec.LookPath(w.Binary)
	return err == nil
}

// Paginate runs the binary. It blocks until the process exits or ctx is done.
func (w *Wkhtmltopdf) Paginate(ctx context.Context, html []byte, opts Options, out string) error {
	path, err := exec.LookPath(w.Binary)
	if err != nil {
		return errors.Wrapf(err, errors.ErrPaginatorMissing, "paginator %q not found", w.Binary).
			WithDetail("binary", w.Binary)
	}

	args := append(opts.Args(), "--quiet", "-", out)
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = bytes.NewReader(html)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	w.logger.Debug().Str("binary", path).Strs("args", args).Msg("running paginator")
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		return errors.Wrapf(err, errors.ErrPaginatorFailed, "paginator %s failed", w.Binary).
			WithDetail("stderr", strings.TrimSpace(stderr.String()))
	}
	return nil
}
