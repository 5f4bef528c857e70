// Package rendertest provides documents shared by the renderer tests.
package rendertest

import (
	"fmt"

	"github.com/seanlgirgis/folio/pkg/document"
)

// MinimalBlocks returns the smallest valid config of every drawable block
// kind, keyed by type.
func MinimalBlocks() map[document.BlockType]document.Block {
	return map[document.BlockType]document.Block{
		document.HeaderBlockType: {
			Type: document.HeaderBlockType, Config: document.Config{"title": "Jane Doe"},
		},
		document.SectionTitleBlockType: {
			Type: document.SectionTitleBlockType, Config: document.Config{"content": "Experience"},
		},
		document.CompoundTextBlockType: {
			Type: document.CompoundTextBlockType, Config: document.Config{
				"items": []any{map[string]any{"text": "jane@example.com"}},
			},
		},
		document.TextBlockType: {
			Type: document.TextBlockType, Config: document.Config{"content": "Summary text"},
		},
		document.GridBlockType: {
			Type: document.GridBlockType, Config: document.Config{
				"items": []any{map[string]any{"content": []any{"Go"}}},
			},
		},
		document.ListBlockType: {
			Type: document.ListBlockType, Config: document.Config{
				"items": []any{map[string]any{"left_text": "Engineer"}},
			},
		},
		document.PlainListBlockType: {
			Type: document.PlainListBlockType, Config: document.Config{"items": []any{"Item"}},
		},
		document.CompactListBlockType: {
			Type: document.CompactListBlockType, Config: document.Config{
				"items": []any{map[string]any{"content": "Award", "date": "2020"}},
			},
		},
		document.TextGridBlockType: {
			Type: document.TextGridBlockType, Config: document.Config{
				"items": []any{map[string]any{"content": []any{"Cell"}}},
			},
		},
		document.ProjectBlockType: {
			Type: document.ProjectBlockType, Config: document.Config{"items": []any{"Shipped it"}},
		},
	}
}

// Single wraps one block into a document.
func Single(b document.Block) *document.Document {
	return &document.Document{Sections: []document.Block{b}}
}

// Grid returns a grid block with n items labelled item-0 .. item-(n-1).
func Grid(t document.BlockType, n, columns int) document.Block {
	items := make([]any, n)
	for i := range items {
		label := fmt.Sprintf("item-%d", i)
		if t == document.GridBlockType {
			items[i] = map[string]any{"header": label, "content": []any{label + "-line"}}
		} else {
			items[i] = map[string]any{"content": []any{label}}
		}
	}
	return document.Block{Type: t, Config: document.Config{"columns": columns, "items": items}}
}

// Resume is a realistic document exercising every block kind.
func Resume() *document.Document {
	return &document.Document{
		Sections: []document.Block{
			{Type: document.StripeBlockType, Config: document.Config{"color": "primary_color", "thickness": 4}},
			{Type: document.HeaderBlockType, Config: document.Config{"title": "Jane Doe", "subtitle": "Platform Engineer"}},
			{Type: document.CompoundTextBlockType, Config: document.Config{
				"items": []any{
					map[string]any{"text": "jane@example.com", "link": "mailto:jane@example.com"},
					map[string]any{"text": "Austin, TX"},
					map[string]any{"text": "github.com/jane", "link": "https://github.com/jane", "font_color": "accent_color"},
				},
			}},
			{Type: document.SectionTitleBlockType, Config: document.Config{"content": "Summary", "style": "accented"}},
			{Type: document.TextBlockType, Config: document.Config{
				"content": `Built **distributed** systems with <span style="color: #E07000">measurable</span> impact.`,
				"style":   "shaded",
			}},
			{Type: document.GridBlockType, Config: document.Config{
				"title":   "Skills",
				"columns": 2,
				"style":   "shaded",
				"items": []any{
					map[string]any{"header": "Languages", "content": []any{"Go", "Python"}},
					map[string]any{"header": "Cloud", "content": []any{"AWS", "GCP"}},
					map[string]any{"header": "Data", "content": []any{"Postgres"}},
				},
			}},
			{Type: document.ListBlockType, Config: document.Config{
				"title": "Experience",
				"items": []any{
					map[string]any{
						"left_text":  "Staff Engineer",
						"right_text": "2019 - Present",
						"sub_text":   "Acme Corp",
						"details":    []any{"Led **platform** team", "Cut costs 30%"},
					},
				},
			}},
			{Type: document.PlainListBlockType, Config: document.Config{
				"title":       "Certifications",
				"title_style": "accented",
				"items":       []any{"CKA", map[string]any{"text": "expired", "style": "small"}},
			}},
			{Type: document.CompactListBlockType, Config: document.Config{
				"title": "Awards",
				"items": []any{map[string]any{"content": "Hackathon winner", "date": "2021"}},
			}},
			{Type: document.TextGridBlockType, Config: document.Config{
				"title":             "Highlights",
				"style":             "shaded_primary",
				"columns":           2,
				"page_break_before": true,
				"items": []any{
					map[string]any{"content": []any{"One", "Two"}},
					map[string]any{"content": []any{"Three"}},
				},
			}},
			{Type: document.ProjectBlockType, Config: document.Config{
				"title": "Folio",
				"items": []any{"Renders documents", map[string]any{"details": []any{"DOCX", "HTML"}}},
				"tags":  []any{"go", "docx"},
			}},
		},
		Config: document.DocConfig{Footer: &document.Footer{Text: "Resume", ShowPages: true}},
	}
}
