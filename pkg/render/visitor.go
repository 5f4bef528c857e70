// Package render holds what every output medium shares: the Visitor each
// renderer implements, the Walk driver that feeds it blocks in document order,
// and the layout decisions (grid placement, boxes, stripe, footer) that must
// come out the same in every medium.
package render

import (
	"github.com/rs/zerolog"

	"github.com/seanlgirgis/folio/pkg/document"
)

// Visitor receives decoded blocks in document order. Implementations paint a
// block into their own medium and never fail; anything they cannot draw is
// skipped.
type Visitor interface {
	PageBreak()
	Header(b document.HeaderBlock)
	SectionTitle(b document.SectionTitleBlock)
	CompoundText(b document.CompoundTextBlock)
	Text(b document.TextBlock)
	Grid(b document.GridBlock)
	List(b document.ListBlock)
	PlainList(b document.PlainListBlock)
	CompactList(b document.CompactListBlock)
	TextGrid(b document.TextGridBlock)
	Project(b document.ProjectBlock)
}

// Walk decodes every section of doc and dispatches it to v.
//
// Unknown block types and configs that cannot be decoded are logged and
// skipped. Stripe blocks are not dispatched; renderers read them through
// ResolveStripe. PageBreak is emitted before a block flagged
// page_break_before unless nothing has been drawn yet.
func Walk(doc *document.Document, v Visitor, logger zerolog.Logger) {
	if doc == nil {
		return
	}
	drawn := 0
	for i, b := range doc.Sections {
		if b.Type == document.StripeBlockType {
			continue
		}
		if !b.Type.Known() {
			logger.Warn().Int("index", i).Str("type", string(b.Type)).Msg("unknown block type, skipping")
			continue
		}
		decoded, err := document.DecodeBlock(b)
		if err != nil {
			logger.Warn().Err(err).Int("index", i).Str("type", string(b.Type)).Msg("invalid block config, skipping")
			continue
		}
		if b.PageBreakBefore() && drawn > 0 {
			v.PageBreak()
		}
		dispatch(v, decoded)
		drawn++
	}
}

func dispatch(v Visitor, decoded any) {
	switch blk := decoded.(type) {
	case document.HeaderBlock:
		v.Header(blk)
	case document.SectionTitleBlock:
		v.SectionTitle(blk)
	case document.CompoundTextBlock:
		v.CompoundText(blk)
	case document.TextBlock:
		v.Text(blk)
	case document.GridBlock:
		v.Grid(blk)
	case document.ListBlock:
		v.List(blk)
	case document.PlainListBlock:
		v.PlainList(blk)
	case document.CompactListBlock:
		v.CompactList(blk)
	case document.TextGridBlock:
		v.TextGrid(blk)
	case document.ProjectBlock:
		v.Project(blk)
	}
}
