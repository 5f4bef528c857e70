// pkg/render/markdown/markdown_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test the Markdown degradation of every block kind

package markdown

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/render/rendertest"
	"github.com/seanlgirgis/folio/pkg/theme"
)

func newTestRenderer() *Renderer {
	return New(theme.Default(), WithLogger(zerolog.Nop()))
}

func TestRender_MinimalBlocks(t *testing.T) {
	r := newTestRenderer()
	for typ, block := range rendertest.MinimalBlocks() {
		t.Run(string(typ), func(t *testing.T) {
			out, err := r.Render(rendertest.Single(block))
			require.NoError(t, err)
			assert.NotEmpty(t, strings.TrimSpace(out))
		})
	}
}

func TestRender_Resume(t *testing.T) {
	out, err := newTestRenderer().Render(rendertest.Resume())
	require.NoError(t, err)

	for _, want := range []string{
		"# Jane Doe",
		"**Platform Engineer**",
		"[jane@example.com](mailto:jane@example.com) • Austin, TX • [github.com/jane](https://github.com/jane)",
		"## Summary",
		"> Built **distributed** systems with measurable impact.",
		"## Skills",
		"### Languages",
		"- Go",
		"**Staff Engineer** | *2019 - Present*",
		"_Acme Corp_",
		"- Led **platform** team",
		"- CKA",
		"- *expired*",
		"- Hackathon winner (*2021*)",
		"---",
		"One",
		"### Folio",
		"`go` `docx`",
		"- Renders documents",
		"- DOCX",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "<span")
	assert.Less(t, strings.Index(out, "# Jane Doe"), strings.Index(out, "## Summary"))
}

func TestRender_UnknownBlockKeepsOrder(t *testing.T) {
	doc := &document.Document{Sections: []document.Block{
		{Type: document.HeaderBlockType, Config: document.Config{"title": "First"}},
		{Type: "bogus_block", Config: document.Config{}},
		{Type: document.TextBlockType, Config: document.Config{"content": "Second"}},
	}}
	out, err := newTestRenderer().Render(doc)
	require.NoError(t, err)
	assert.Equal(t, "# First\n\nSecond\n", out)
}

func TestRender_CompactListSkipsEmptyItems(t *testing.T) {
	doc := rendertest.Single(document.Block{Type: document.CompactListBlockType, Config: document.Config{
		"title": "Awards",
		"items": []any{
			map[string]any{"content": "", "date": ""},
			map[string]any{"content": "Winner", "date": "2021"},
			map[string]any{"content": ""},
		},
	}})
	out, err := newTestRenderer().Render(doc)
	require.NoError(t, err)

	assert.Contains(t, out, "- Winner (*2021*)")
	for _, line := range strings.Split(out, "\n") {
		assert.NotEqual(t, "-", strings.TrimSpace(line))
	}
}

func TestRender_StripeIgnored(t *testing.T) {
	doc := rendertest.Single(document.Block{Type: document.StripeBlockType, Config: document.Config{"color": "#FF0000"}})
	out, err := newTestRenderer().Render(doc)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRender_GridFlattensInOrder(t *testing.T) {
	out, err := newTestRenderer().Render(rendertest.Single(rendertest.Grid(document.GridBlockType, 7, 3)))
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		assert.Less(t, strings.Index(out, itemLabel(i)), strings.Index(out, itemLabel(i+1)))
	}
}

func itemLabel(i int) string {
	return "### item-" + string(rune('0'+i))
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "resume.md")
	require.NoError(t, newTestRenderer().Save("# Hi\n", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Hi\n", string(data))
}
