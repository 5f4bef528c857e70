// pkg/render/terminal/terminal_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: lipgloss (ASCII profile)
// PURPOSE: Test terminal preview layout, grid placement and pills

package terminal

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanlgirgis/folio/pkg/document"
	"github.com/seanlgirgis/folio/pkg/render/rendertest"
	"github.com/seanlgirgis/folio/pkg/theme"
)

func newPlain(opts ...Option) *Renderer {
	opts = append([]Option{WithLogger(zerolog.Nop()), WithProfile(termenv.Ascii)}, opts...)
	return New(theme.Default(), opts...)
}

func lineWith(out, needle string) string {
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, needle) {
			return l
		}
	}
	return ""
}

func TestRender_MinimalBlocks(t *testing.T) {
	r := newPlain()
	for typ, block := range rendertest.MinimalBlocks() {
		t.Run(string(typ), func(t *testing.T) {
			out, err := r.Render(rendertest.Single(block))
			require.NoError(t, err)
			assert.NotEmpty(t, strings.TrimSpace(out))
		})
	}
}

func TestRender_GridPlacement(t *testing.T) {
	tests := []struct {
		name  string
		block document.Block
	}{
		{"grid_block", rendertest.Grid(document.GridBlockType, 7, 3)},
		{"text_grid_block", rendertest.Grid(document.TextGridBlockType, 7, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := newPlain().Render(rendertest.Single(tt.block))
			require.NoError(t, err)

			row1 := lineWith(out, "item-5")
			require.NotEmpty(t, row1)
			i3, i4, i5 := strings.Index(row1, "item-3"), strings.Index(row1, "item-4"), strings.Index(row1, "item-5")
			assert.True(t, i3 >= 0 && i3 < i4 && i4 < i5, "item-5 is the third column of row 1: %q", row1)
			assert.NotContains(t, row1, "item-2")
			assert.NotContains(t, row1, "item-6")

			row2 := lineWith(out, "item-6")
			assert.True(t, strings.HasPrefix(strings.TrimLeft(row2, " •"), "item-6"), "item-6 starts row 2: %q", row2)
		})
	}
}

func TestRender_Resume(t *testing.T) {
	out, err := newPlain().Render(rendertest.Resume())
	require.NoError(t, err)

	for _, want := range []string{
		"Jane Doe",
		"Platform Engineer",
		"jane@example.com • Austin, TX • github.com/jane",
		"Built distributed systems with measurable impact.",
		"Staff Engineer",
		"2019 - Present",
		"• Led platform team",
		"Hackathon winner",
		" go ",
		"Resume | Page 1 of 1",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "<span")

	assert.True(t, strings.HasPrefix(out, strings.Repeat("▀", DefaultWidth)), "stripe first")
	assert.Contains(t, out, strings.Repeat("┄", DefaultWidth), "page break rule")
	assert.Contains(t, lineWith(out, "Built distributed"), "┃", "shaded text box uses a thick rule")
	assert.Contains(t, lineWith(out, "Renders documents"), "│", "project box uses a thin rule")
}

func TestRender_Width(t *testing.T) {
	out, err := newPlain(WithWidth(40)).Render(rendertest.Single(rendertest.MinimalBlocks()[document.HeaderBlockType]))
	require.NoError(t, err)
	assert.Equal(t, 40, len([]rune(strings.TrimRight(out, "\n"))))
}

func TestRender_UnknownBlockKeepsOrder(t *testing.T) {
	doc := &document.Document{Sections: []document.Block{
		{Type: document.SectionTitleBlockType, Config: document.Config{"content": "First", "style": "accented"}},
		{Type: "mystery_block"},
		{Type: document.SectionTitleBlockType, Config: document.Config{"content": "Second", "style": "accented"}},
	}}
	out, err := newPlain().Render(doc)
	require.NoError(t, err)
	assert.Equal(t, "First\n\nSecond\n", out)
}

func TestRender_Empty(t *testing.T) {
	out, err := newPlain().Render(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
