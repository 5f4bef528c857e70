// Package document is the in-memory model shared by every renderer: an ordered
// list of typed blocks plus document-level settings.
package document

// BlockType names one entry of the block catalogue.
type BlockType string

const (
	HeaderBlockType       BlockType = "header_block"
	SectionTitleBlockType BlockType = "section_title_block"
	CompoundTextBlockType BlockType = "compound_text_block"
	TextBlockType         BlockType = "text_block"
	GridBlockType         BlockType = "grid_block"
	ListBlockType         BlockType = "list_block"
	PlainListBlockType    BlockType = "plain_list_block"
	CompactListBlockType  BlockType = "compact_list_block"
	TextGridBlockType     BlockType = "text_grid_block"
	ProjectBlockType      BlockType = "project_block"
	StripeBlockType       BlockType = "stripe_block"
)

// BlockTypes lists the catalogue in a stable order.
var BlockTypes = []BlockType{
	HeaderBlockType,
	SectionTitleBlockType,
	CompoundTextBlockType,
	TextBlockType,
	GridBlockType,
	ListBlockType,
	PlainListBlockType,
	CompactListBlockType,
	TextGridBlockType,
	ProjectBlockType,
	StripeBlockType,
}

// Known reports whether t is part of the catalogue.
func (t BlockType) Known() bool {
	for _, k := range BlockTypes {
		if k == t {
			return true
		}
	}
	return false
}

// Block is one typed, independently rendered unit of content.
type Block struct {
	Type   BlockType `yaml:"type" json:"type"`
	Config Config    `yaml:"config" json:"config"`
}

// PageBreakBefore reports whether the block starts a new page.
func (b Block) PageBreakBefore() bool {
	return b.Config.Bool("page_break_before")
}

// Footer is the running footer descriptor.
type Footer struct {
	Text      string `yaml:"text" json:"text" mapstructure:"text"`
	ShowPages bool   `yaml:"show_pages" json:"show_pages" mapstructure:"show_pages"`
}

// Empty reports whether the footer has nothing to show.
func (f *Footer) Empty() bool {
	return f == nil || (f.Text == "" && !f.ShowPages)
}

// DocConfig is the document-level configuration.
type DocConfig struct {
	Footer *Footer `yaml:"footer,omitempty" json:"footer,omitempty" mapstructure:"footer"`
}

// Document is an ordered sequence of blocks plus its configuration.
type Document struct {
	Sections []Block   `yaml:"sections" json:"sections"`
	Config   DocConfig `yaml:"config,omitempty" json:"config,omitempty"`
}

// Find returns the first block of type t.
func (d *Document) Find(t BlockType) (Block, bool) {
	for _, b := range d.Sections {
		if b.Type == t {
			return b, true
		}
	}
	return Block{}, false
}
