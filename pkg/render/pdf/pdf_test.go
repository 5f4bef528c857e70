// pkg/render/pdf/pdf_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: fake paginator, temp directories
// PURPOSE: Test paginator options, footer fragments and atomic PDF output

package pdf

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/errors"
	"github.com/seanlgirgis/folio/pkg/theme"
)

type fakePaginator struct {
	err        error
	html       string
	opts       Options
	footer     string
	footerSeen bool
	calls      int
}

func (f *fakePaginator) Paginate(_ context.Context, html []byte, opts Options, out string) error {
	f.calls++
	f.html = string(html)
	f.opts = opts
	if opts.FooterHTML != "" {
		data, err := os.ReadFile(opts.FooterHTML)
		if err == nil {
			f.footer = string(data)
			f.footerSeen = true
		}
	}
	if f.err != nil {
		_ = os.WriteFile(out, []byte("partial"), 0o644)
		return f.err
	}
	return os.WriteFile(out, []byte("%PDF-1.4 fake"), 0o644)
}

func TestRender_WritesOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "nested", "resume.pdf")
	fake := &fakePaginator{}
	r := New(theme.Default(), fake, WithLogger(zerolog.Nop()))

	err := r.Render(context.Background(), "<html>page</html>", nil, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
	assert.Equal(t, "<html>page</html>", fake.html)

	assert.Equal(t, "Letter", fake.opts.PageSize)
	assert.Equal(t, "0mm", fake.opts.MarginBottom)
	assert.Empty(t, fake.opts.FooterHTML)

	entries, err := os.ReadDir(filepath.Dir(out))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestRender_FooterFragment(t *testing.T) {
	tests := []struct {
		name        string
		footer      *document.Footer
		contains    []string
		notContains []string
	}{
		{
			name:     "text and pages",
			footer:   &document.Footer{Text: "Jane Doe", ShowPages: true},
			contains: []string{"Jane Doe", " | ", `<span class="page"></span>`, `<span class="topage"></span>`},
		},
		{
			name:        "text only",
			footer:      &document.Footer{Text: "Jane Doe"},
			contains:    []string{"Jane Doe"},
			notContains: []string{" | ", `class="page"`},
		},
		{
			name:        "pages only",
			footer:      &document.Footer{ShowPages: true},
			contains:    []string{"Page ", `class="topage"`},
			notContains: []string{" | "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakePaginator{}
			r := New(theme.Default(), fake, WithLogger(zerolog.Nop()))
			out := filepath.Join(t.TempDir(), "doc.pdf")

			require.NoError(t, r.Render(context.Background(), "<html></html>", tt.footer, out))

			require.True(t, fake.footerSeen)
			assert.Equal(t, FooterMarginBottom, fake.opts.MarginBottom)
			assert.Equal(t, DefaultFooterSpacing, fake.opts.FooterSpacing)
			for _, s := range tt.contains {
				assert.Contains(t, fake.footer, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, fake.footer, s)
			}

			_, err := os.Stat(fake.opts.FooterHTML)
			assert.True(t, os.IsNotExist(err), "footer file removed")
		})
	}
}

func TestRender_FooterUsesTheme(t *testing.T) {
	th := theme.Default()
	th.Footer.TextColor = "abc"
	th.Typography["pdf"]["font_size_footer"] = 7
	r := New(th, &fakePaginator{}, WithLogger(zerolog.Nop()))

	out, err := r.Footer(&document.Footer{Text: "x"})
	require.NoError(t, err)
	assert.Contains(t, out, "color: #AABBCC")
	assert.Contains(t, out, "font-size: 7pt")
}

func TestRender_PaginatorFailure(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))

	fake := &fakePaginator{err: errors.New(errors.ErrPaginatorFailed, "boom")}
	r := New(theme.Default(), fake, WithLogger(zerolog.Nop()))

	err := r.Render(context.Background(), "<html></html>", &document.Footer{Text: "f", ShowPages: true}, out)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPaginatorFailed))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data), "existing output untouched")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	_, err = os.Stat(fake.opts.FooterHTML)
	assert.True(t, os.IsNotExist(err), "footer file removed on failure")
}

func TestRender_NoPaginator(t *testing.T) {
	r := New(theme.Default(), nil, WithLogger(zerolog.Nop()))
	err := r.Render(context.Background(), "", nil, filepath.Join(t.TempDir(), "x.pdf"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrPaginatorMissing))
}

func TestOptions_Args(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, []string{
		"--page-size", "Letter",
		"--margin-top", "0mm",
		"--margin-right", "0mm",
		"--margin-bottom", "0mm",
		"--margin-left", "0mm",
		"--encoding", "UTF-8",
		"--no-outline",
		"--enable-local-file-access",
		"--disable-smart-shrinking",
		"--print-media-type",
	}, opts.Args())

	opts.FooterHTML = "/tmp/f.html"
	opts.FooterSpacing = 5
	args := opts.Args()
	assert.Equal(t, []string{"--footer-html", "/tmp/f.html", "--footer-spacing", "5"}, args[len(args)-4:])
}

func TestWkhtmltopdf_MissingBinary(t *testing.T) {
	w := NewWkhtmltopdf("folio-no-such-paginator")
	assert.False(t, w.Available())

	err := w.Paginate(context.Background(), nil, DefaultOptions(), filepath.Join(t.TempDir(), "x.pdf"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPaginatorMissing))
}
