// pkg/document/document_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test block config accessors and typed decoding

package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigAccessors(t *testing.T) {
	c := Config{
		"title":             "Engineer",
		"page_break_before": true,
		"flag":              "yes",
		"columns":           3,
		"size":              "10.5",
		"items":             []any{"a", "b"},
		"scalar":            "x",
	}

	assert.Equal(t, "Engineer", c.String("title"))
	assert.Equal(t, "", c.String("missing"))
	assert.Equal(t, "fallback", c.StringOr("missing", "fallback"))
	assert.True(t, c.Bool("page_break_before"))
	assert.True(t, c.Bool("flag"))
	assert.False(t, c.Bool("missing"))
	assert.Equal(t, 3, c.Int("columns", 1))
	assert.Equal(t, 1, c.Int("missing", 1))
	assert.Equal(t, 10.5, c.Float("size", 0))
	assert.Len(t, c.Slice("items"), 2)
	assert.Empty(t, c.Slice("scalar"))
	assert.Empty(t, c.Slice("missing"))
	assert.True(t, c.Has("title"))
}

func TestConfigClone(t *testing.T) {
	c := Config{
		"items": []any{map[string]any{"text": "a"}},
		"meta":  map[string]any{"k": "v"},
	}
	cp := c.Clone()
	cp["items"].([]any)[0].(map[string]any)["text"] = "changed"
	cp["meta"].(map[string]any)["k"] = "changed"

	assert.Equal(t, "a", c["items"].([]any)[0].(map[string]any)["text"])
	assert.Equal(t, "v", c["meta"].(map[string]any)["k"])
	assert.NotNil(t, Config(nil).Clone())
}

func TestBlockTypes(t *testing.T) {
	assert.True(t, GridBlockType.Known())
	assert.False(t, BlockType("bogus_block").Known())
	assert.True(t, Block{Config: Config{"page_break_before": true}}.PageBreakBefore())
	assert.False(t, Block{}.PageBreakBefore())
}

func TestFooterEmpty(t *testing.T) {
	var nilFooter *Footer
	assert.True(t, nilFooter.Empty())
	assert.True(t, (&Footer{}).Empty())
	assert.False(t, (&Footer{ShowPages: true}).Empty())
	assert.False(t, (&Footer{Text: "Resume"}).Empty())
}

func TestDecode(t *testing.T) {
	t.Run("plain list lifts strings", func(t *testing.T) {
		b, err := Decode[PlainListBlock](Config{
			"title": "Skills",
			"items": []any{"Go", map[string]any{"text": "Rust", "style": "small"}},
		})
		require.NoError(t, err)
		require.Len(t, b.Items, 2)
		assert.Equal(t, PlainItem{Text: "Go"}, b.Items[0])
		assert.True(t, b.Items[1].Small())
	})

	t.Run("project items", func(t *testing.T) {
		b, err := Decode[ProjectBlock](Config{
			"items": []any{"one", map[string]any{"details": []any{"two", "three"}}},
			"tags":  []any{"go", "k8s"},
		})
		require.NoError(t, err)
		require.Len(t, b.Items, 2)
		assert.Equal(t, []string{"one"}, b.Items[0].Lines())
		assert.Equal(t, []string{"two", "three"}, b.Items[1].Lines())
		assert.Equal(t, []string{"go", "k8s"}, b.Tags)
		assert.True(t, b.Boxed())
	})

	t.Run("absent sequences are empty", func(t *testing.T) {
		b, err := Decode[GridBlock](Config{})
		require.NoError(t, err)
		assert.Empty(t, b.Items)
		assert.Zero(t, b.Columns)
	})

	t.Run("weak typing", func(t *testing.T) {
		b, err := Decode[GridBlock](Config{
			"columns": "3",
			"items":   []any{map[string]any{"header": "H", "content": "single line"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, b.Columns)
		assert.Equal(t, []string{"single line"}, b.Items[0].Content)
	})

	t.Run("compound defaults", func(t *testing.T) {
		b, err := Decode[CompoundTextBlock](Config{"items": []any{map[string]any{"text": "a"}}})
		require.NoError(t, err)
		assert.Equal(t, " • ", b.Sep())
		assert.Equal(t, "center", b.Alignment())

		b, err = Decode[CompoundTextBlock](Config{"separator": " | ", "font_alignment": "left"})
		require.NoError(t, err)
		assert.Equal(t, " | ", b.Sep())
		assert.Equal(t, "left", b.Alignment())
	})

	t.Run("stripe active unless disabled", func(t *testing.T) {
		b, err := Decode[StripeBlock](Config{"color": "accent_color"})
		require.NoError(t, err)
		assert.True(t, b.Active())

		b, err = Decode[StripeBlock](Config{"enabled": false})
		require.NoError(t, err)
		assert.False(t, b.Active())
	})

	t.Run("bad shape errors", func(t *testing.T) {
		_, err := Decode[GridBlock](Config{"columns": "three"})
		assert.Error(t, err)
	})
}

func TestDecodeBlock(t *testing.T) {
	v, err := DecodeBlock(Block{Type: HeaderBlockType, Config: Config{"title": "Jane"}})
	require.NoError(t, err)
	assert.Equal(t, HeaderBlock{Title: "Jane"}, v)

	_, err = DecodeBlock(Block{Type: "bogus_block"})
	assert.Error(t, err)
}

func TestDocumentFind(t *testing.T) {
	doc := &Document{Sections: []Block{
		{Type: HeaderBlockType},
		{Type: StripeBlockType, Config: Config{"color": "#FF0000"}},
	}}
	b, ok := doc.Find(StripeBlockType)
	require.True(t, ok)
	assert.Equal(t, "#FF0000", b.Config.String("color"))

	_, ok = doc.Find(ListBlockType)
	assert.False(t, ok)
}
