// pkg/preview/preview_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: None
// PURPOSE: Test terminal and glamour previews of a full document

package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seanlgirgis/folio/pkg/render/rendertest"
	"github.com/seanlgirgis/folio/pkg/theme"
	"github.com/seanlgirgis/folio/pkg/ui"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		contains []string
	}{
		{
			name:     "terminal renderer",
			opts:     Options{Format: ui.FormatText, Width: 72},
			contains: []string{"Jane Doe", "Platform Engineer", "Staff Engineer"},
		},
		{
			name:     "markdown through glamour",
			opts:     Options{Format: ui.FormatText, Markdown: true, Width: 72},
			contains: []string{"Jane Doe", "Summary", "Staff Engineer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Render(rendertest.Resume(), theme.Default(), tt.opts)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestRender_TextHasNoEscapes(t *testing.T) {
	out, err := Render(rendertest.Resume(), theme.Default(), Options{Format: ui.FormatText})
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestGlamour_Wraps(t *testing.T) {
	out, err := Glamour("# Title\n\nsome text", ui.FormatText, 40)
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "some text")
}
