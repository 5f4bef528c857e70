// pkg/render/html/html_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: goldmark
// PURPOSE: Test HTML page generation, stylesheet resolution and float grids

package html

import (
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/render/rendertest"
	"github.com/seanlgirgis/folio/pkg/theme"
)

func newTestRenderer(th theme.Theme) *Renderer {
	return New(th, WithLogger(zerolog.Nop()))
}

func TestRender_MinimalBlocks(t *testing.T) {
	r := newTestRenderer(theme.Default())
	empty, err := r.Render(&document.Document{})
	require.NoError(t, err)

	for typ, block := range rendertest.MinimalBlocks() {
		t.Run(string(typ), func(t *testing.T) {
			out, err := r.Render(rendertest.Single(block))
			require.NoError(t, err)
			assert.Greater(t, len(out), len(empty))
			assert.Contains(t, out, "<section>")
		})
	}
}

func TestRender_GridPlacement(t *testing.T) {
	r := newTestRenderer(theme.Default())
	cell := regexp.MustCompile(`data-row="(\d+)" data-col="(\d+)"[^>]*>\s*<h3>(item-\d+)</h3>`)

	out, err := r.Render(rendertest.Single(rendertest.Grid(document.GridBlockType, 7, 3)))
	require.NoError(t, err)

	placed := map[string][2]string{}
	for _, m := range cell.FindAllStringSubmatch(out, -1) {
		placed[m[3]] = [2]string{m[1], m[2]}
	}
	require.Len(t, placed, 7)
	assert.Equal(t, [2]string{"1", "2"}, placed["item-5"])
	assert.Equal(t, [2]string{"2", "0"}, placed["item-6"])
}

func TestRender_TextGridPlacement(t *testing.T) {
	r := newTestRenderer(theme.Default())
	cell := regexp.MustCompile(`data-row="(\d+)" data-col="(\d+)"[^>]*>\s*<p>(item-\d+)</p>`)

	out, err := r.Render(rendertest.Single(rendertest.Grid(document.TextGridBlockType, 7, 3)))
	require.NoError(t, err)

	for _, m := range cell.FindAllStringSubmatch(out, -1) {
		if m[3] == "item-5" {
			assert.Equal(t, "1", m[1])
			assert.Equal(t, "2", m[2])
			return
		}
	}
	t.Fatal("item-5 not found")
}

func TestCellStyles(t *testing.T) {
	styles := cellStyles(4, 3)
	require.Len(t, styles, 4)

	assert.Contains(t, string(styles[0]), "clear: left")
	assert.Contains(t, string(styles[0]), "margin-right: 2.00%")
	assert.Contains(t, string(styles[0]), "width: 32.00%")
	assert.Contains(t, string(styles[2]), "margin-right: 0")
	assert.NotContains(t, string(styles[2]), "clear")
	assert.Contains(t, string(styles[3]), "clear: left")
}

func TestRender_Resume(t *testing.T) {
	out, err := newTestRenderer(theme.Default()).Render(rendertest.Resume())
	require.NoError(t, err)

	for _, want := range []string{
		"<title>Jane Doe</title>",
		`<p class="subtitle">Platform Engineer</p>`,
		`<a href="mailto:jane@example.com"`,
		`<a href="https://github.com/jane" style="color: #E07000">`,
		`<h2 class="section-title accented"><span>Summary</span></h2>`,
		"<strong>distributed</strong>",
		`<span style="color: #E07000">measurable</span>`,
		`class="text-block shaded boxed" style="border-left: 8px solid #E07000; background-color: #F2F2F2`,
		`<span class="list-left">Staff Engineer</span>`,
		`<div class="list-sub">Acme Corp</div>`,
		`<li class="small">expired</li>`,
		`<span class="compact-date">2021</span>`,
		`<section class="page-break">`,
		`<span class="project-tag">go</span>`,
		`class="project-block left_border boxed"`,
	} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 1, strings.Count(out, "page-break\""))
}

func TestRender_StripePrecedence(t *testing.T) {
	th := theme.Default()
	th.Stripe = theme.Stripe{Enabled: true, Color: "#0000FF", Thickness: 4}

	withBlock := &document.Document{Sections: []document.Block{
		{Type: document.HeaderBlockType, Config: document.Config{"title": "x"}},
		{Type: document.StripeBlockType, Config: document.Config{"color": "#FF0000"}},
	}}
	out, err := newTestRenderer(th).Render(withBlock)
	require.NoError(t, err)
	stripe := stripeRule(t, out)
	assert.Contains(t, stripe, "display: block")
	assert.Contains(t, stripe, "background-color: #FF0000")

	out, err = newTestRenderer(th).Render(&document.Document{})
	require.NoError(t, err)
	assert.Contains(t, stripeRule(t, out), "background-color: #0000FF")

	out, err = newTestRenderer(theme.Default()).Render(&document.Document{})
	require.NoError(t, err)
	assert.Contains(t, stripeRule(t, out), "display: none")
	assert.Contains(t, out, `<div class="page-stripe"></div>`)
}

func stripeRule(t *testing.T, out string) string {
	t.Helper()
	start := strings.Index(out, ".page-stripe {")
	require.GreaterOrEqual(t, start, 0)
	end := strings.Index(out[start:], "}")
	return out[start : start+end]
}

func TestRender_ThemeNormalisedWithoutMutation(t *testing.T) {
	th := theme.Default()
	th.PrimaryColor = "004a99"
	th.Typography = theme.Typography{"default": {"font_size_base": 12}, "pdf": {"font_size_base": 9}}

	out, err := newTestRenderer(th).Render(&document.Document{})
	require.NoError(t, err)
	assert.Contains(t, out, "color: #004A99")
	assert.Contains(t, out, "font-size: 12pt")
	assert.Contains(t, out, "font-size: 9pt")
	assert.Equal(t, "004a99", th.PrimaryColor)

	again, err := newTestRenderer(th).Render(&document.Document{})
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestRender_DoesNotMutateDocument(t *testing.T) {
	doc := rendertest.Resume()
	before := rendertest.Resume()
	_, err := newTestRenderer(theme.Default()).Render(doc)
	require.NoError(t, err)
	assert.Equal(t, before, doc)
}

func TestRender_UnknownBlockKeepsOrder(t *testing.T) {
	doc := &document.Document{Sections: []document.Block{
		{Type: document.HeaderBlockType, Config: document.Config{"title": "First"}},
		{Type: "bogus_block", Config: document.Config{}},
		{Type: document.TextBlockType, Config: document.Config{"content": "Second"}},
	}}
	out, err := newTestRenderer(theme.Default()).Render(doc)
	require.NoError(t, err)
	first := strings.Index(out, "<h1>First</h1>")
	second := strings.Index(out, ">Second</div>")
	require.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
}

func TestGoldmarkInline(t *testing.T) {
	g := NewGoldmark()
	tests := []struct {
		in   string
		want template.HTML
	}{
		{"plain", "plain"},
		{" and B", " and B"},
		{"see [docs](https://example.com)", `see <a href="https://example.com">docs</a>`},
		{"a < b & c", "a &lt; b &amp; c"},
		{`<script>x</script>`, "&lt;script&gt;x&lt;/script&gt;"},
		{"1. not a list", "1. not a list"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := g.Inline(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type upper struct{}

func (upper) Inline(text string) (template.HTML, error) {
	return template.HTML(strings.ToUpper(template.HTMLEscapeString(text))), nil
}

func TestWithInlineMarkup(t *testing.T) {
	r := New(theme.Default(), WithLogger(zerolog.Nop()), WithInlineMarkup(upper{}))
	out, err := r.Render(rendertest.Single(document.Block{Type: document.TextBlockType, Config: document.Config{"content": "**bold** text"}}))
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>BOLD</strong> TEXT")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.html")
	require.NoError(t, newTestRenderer(theme.Default()).Save("<html></html>", path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}
