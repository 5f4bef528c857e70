// pkg/content/content_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: yaml.v3, go-toml/v2, temp directories
// PURPOSE: Test layout and store loading and content key merging

package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMerge(t *testing.T) {
	store := Store{"job1": document.Config{"title": "Engineer", "items": []any{1, 2}, "style": "shaded"}}
	sections := []document.Block{
		{Type: document.ListBlockType, Config: document.Config{
			"content_key":       "job1",
			"page_break_before": true,
			"style":             "simple",
		}},
		{Type: document.TextBlockType, Config: document.Config{"content": "plain"}},
	}

	merged := Merge(sections, store, zerolog.Nop())
	require.Len(t, merged, 2)
	assert.Equal(t, document.Config{
		"title":             "Engineer",
		"items":             []any{1, 2},
		"page_break_before": true,
		"style":             "simple",
	}, merged[0].Config)
	assert.Equal(t, document.ListBlockType, merged[0].Type)
	assert.Equal(t, document.Config{"content": "plain"}, merged[1].Config)

	// Inputs untouched.
	assert.Equal(t, "job1", sections[0].Config["content_key"])
	assert.Len(t, store["job1"], 3)
	merged[0].Config["items"].([]any)[0] = 99
	assert.Equal(t, 1, store["job1"]["items"].([]any)[0])
}

func TestMerge_SpecExample(t *testing.T) {
	store := Store{"job1": document.Config{"title": "Engineer", "items": []any{1, 2}}}
	sections := []document.Block{{Type: document.ListBlockType, Config: document.Config{
		"content_key": "job1", "page_break_before": true,
	}}}

	merged := Merge(sections, store, zerolog.Nop())
	assert.Equal(t, document.Config{
		"title": "Engineer", "items": []any{1, 2}, "page_break_before": true,
	}, merged[0].Config)
}

func TestMerge_MissingKey(t *testing.T) {
	sections := []document.Block{{Type: document.TextBlockType, Config: document.Config{
		"content_key": "nope", "content": "kept",
	}}}
	merged := Merge(sections, Store{}, zerolog.Nop())
	assert.Equal(t, sections[0].Config, merged[0].Config)
}

func TestResolve(t *testing.T) {
	doc := &document.Document{
		Sections: []document.Block{{Type: document.TextBlockType, Config: document.Config{"content_key": "a"}}},
		Config:   document.DocConfig{Footer: &document.Footer{Text: "f"}},
	}
	out := Resolve(doc, Store{"a": document.Config{"content": "from store"}}, zerolog.Nop())
	assert.Equal(t, "from store", out.Sections[0].Config.String("content"))
	assert.Equal(t, "f", out.Config.Footer.Text)
	assert.NotSame(t, doc.Config.Footer, out.Config.Footer)
	assert.Equal(t, "a", doc.Sections[0].Config.String("content_key"))
}

func TestLoader_Layout(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		sections int
		footer   *document.Footer
	}{
		{
			name: "bare list",
			file: "layout.yaml",
			content: `
- type: header_block
  config:
    title: Jane
- type: stripe_block
`,
			sections: 2,
		},
		{
			name: "mapping with footer",
			file: "layout.yml",
			content: `
sections:
  - type: text_block
    config:
      content: hello
config:
  footer:
    text: Jane Doe
    show_pages: true
`,
			sections: 1,
			footer:   &document.Footer{Text: "Jane Doe", ShowPages: true},
		},
		{
			name: "toml",
			file: "layout.toml",
			content: `
[config.footer]
show_pages = true

[[sections]]
type = "grid_block"
[sections.config]
columns = 3
`,
			sections: 1,
			footer:   &document.Footer{ShowPages: true},
		},
		{
			name:     "empty",
			file:     "layout.yaml",
			content:  "",
			sections: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := NewLoader(nil).Layout(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Len(t, doc.Sections, tt.sections)
			assert.Equal(t, tt.footer, doc.Config.Footer)
			for _, s := range doc.Sections {
				assert.NotNil(t, s.Config)
			}
		})
	}
}

func TestLoader_LayoutValues(t *testing.T) {
	doc, err := NewLoader(nil).Layout(writeFile(t, "l.toml", "[[sections]]\ntype = \"grid_block\"\n[sections.config]\ncolumns = 3\n"))
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, document.GridBlockType, doc.Sections[0].Type)
	assert.Equal(t, 3, doc.Sections[0].Config.Int("columns", 0))
}

func TestLoader_Store(t *testing.T) {
	yamlPath := writeFile(t, "store.yaml", `
job1:
  title: Engineer
  items: [1, 2]
`)
	store, err := NewLoader(nil).Store(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", store["job1"].String("title"))
	assert.Len(t, store["job1"].Slice("items"), 2)

	tomlPath := writeFile(t, "store.toml", "[job1]\ntitle = \"Engineer\"\n")
	store, err = NewLoader(nil).Store(tomlPath)
	require.NoError(t, err)
	assert.Equal(t, "Engineer", store["job1"].String("title"))
}

func TestLoader_Errors(t *testing.T) {
	l := NewLoader(nil)

	_, err := l.Layout(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	_, err = l.Store(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	_, err = l.Layout(writeFile(t, "bad.yaml", "sections: [unclosed"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrLayoutLoad))

	_, err = l.Store(writeFile(t, "bad.yaml", "- just\n- a list\n"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrStoreLoad))
}
