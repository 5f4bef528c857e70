package config

import (
	"sort"
	"time"

	"github.com/seanlgirgis/folio/pkg/errors"
	"github.com/seanlgirgis/folio/pkg/paths"
)

// Output formats.
const (
	FormatDOCX     = "docx"
	FormatPDF      = "pdf"
	FormatHTML     = "html"
	FormatMarkdown = "md"
)

// Formats lists every output format in build order.
var Formats = []string{FormatDOCX, FormatHTML, FormatMarkdown, FormatPDF}

// Config is the project configuration.
type Config struct {
	Style     string            `koanf:"style"`
	Store     string            `koanf:"store"`
	OutputDir string            `koanf:"output_dir"`
	HTMLDir   string            `koanf:"html_dir"`
	Paginator Paginator         `koanf:"paginator"`
	Targets   map[string]Target `koanf:"targets"`

	// Root is the project directory relative paths are resolved against.
	Root string `koanf:"-"`
	// File is the project file that was loaded, if any.
	File string `koanf:"-"`
}

// Paginator configures the external PDF paginator.
type Paginator struct {
	Binary        string        `koanf:"binary"`
	PageSize      string        `koanf:"page_size"`
	FooterSpacing float64       `koanf:"footer_spacing"`
	Timeout       time.Duration `koanf:"timeout"`
}

// Target names the layout of each format family for one document.
type Target struct {
	DOCX string `koanf:"docx"`
	PDF  string `koanf:"pdf"`
	Web  string `koanf:"web"`
	// Formats restricts the formats built by default; empty means all.
	Formats []string `koanf:"formats"`
}

// Layout returns the layout path used for format, or "".
func (t Target) Layout(format string) string {
	switch format {
	case FormatDOCX:
		return t.DOCX
	case FormatPDF:
		return t.PDF
	case FormatHTML, FormatMarkdown:
		return t.Web
	}
	return ""
}

// Builds reports whether format is built for the target by default.
func (t Target) Builds(format string) bool {
	if len(t.Formats) == 0 {
		return true
	}
	for _, f := range t.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// TargetNames returns the configured target names, sorted.
func (c *Config) TargetNames() []string {
	names := make([]string, 0, len(c.Targets))
	for name := range c.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve expands ~ and makes path absolute against the project root.
func (c *Config) Resolve(path string) string {
	return paths.Resolve(c.Root, path)
}

// ValidFormat reports whether f names an output format.
func ValidFormat(f string) bool {
	for _, known := range Formats {
		if known == f {
			return true
		}
	}
	return false
}

// Validate checks that the configuration can drive a build.
func (c *Config) Validate() error {
	if len(c.Targets) == 0 {
		return errors.New(errors.ErrConfigValid, "no targets configured")
	}
	for _, name := range c.TargetNames() {
		t := c.Targets[name]
		if t.DOCX == "" && t.PDF == "" && t.Web == "" {
			return errors.Newf(errors.ErrConfigValid, "target %q has no layouts", name).
				WithDetail("target", name)
		}
		for _, f := range t.Formats {
			if !ValidFormat(f) {
				return errors.Newf(errors.ErrConfigValid, "target %q has unknown format %q", name, f).
					WithDetails(map[string]interface{}{"target": name, "format": f})
			}
		}
	}
	if c.OutputDir == "" {
		return errors.New(errors.ErrConfigValid, "output_dir must not be empty")
	}
	return nil
}
