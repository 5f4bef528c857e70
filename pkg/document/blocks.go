package document

// Style names shared by several block kinds.
const (
	StyleNormal        = "normal"
	StyleAccented      = "accented"
	StyleSimple        = "simple"
	StyleShaded        = "shaded"
	StyleShadedPrimary = "shaded_primary"
	StyleLeftBorder    = "left_border"
	StyleSmall         = "small"
)

// HeaderBlock is the document title with an optional subtitle.
type HeaderBlock struct {
	Title    string `mapstructure:"title"`
	Subtitle string `mapstructure:"subtitle"`
}

// SectionTitleBlock is a standalone section heading.
type SectionTitleBlock struct {
	Content string `mapstructure:"content"`
	Style   string `mapstructure:"style"`
}

// CompoundItem is one piece of a compound text line.
type CompoundItem struct {
	Text      string `mapstructure:"text"`
	Link      string `mapstructure:"link"`
	FontColor string `mapstructure:"font_color"`
}

// CompoundTextBlock is a single line built from separated items, typically a
// contact line.
type CompoundTextBlock struct {
	Items         []CompoundItem `mapstructure:"items"`
	FontAlignment string         `mapstructure:"font_alignment"`
	FontSize      float64        `mapstructure:"font_size"`
	FontColor     string         `mapstructure:"font_color"`
	Separator     *string        `mapstructure:"separator"`
}

// Sep returns the configured separator or the default bullet.
func (b CompoundTextBlock) Sep() string {
	if b.Separator == nil {
		return " • "
	}
	return *b.Separator
}

// Alignment returns left, right or center (the default).
func (b CompoundTextBlock) Alignment() string {
	switch b.FontAlignment {
	case "left", "right":
		return b.FontAlignment
	}
	return "center"
}

// TextBlock is a paragraph of inline markup, optionally boxed.
type TextBlock struct {
	Content     string `mapstructure:"content"`
	Style       string `mapstructure:"style"`
	BorderColor string `mapstructure:"border_color"`
}

// GridItem is one cell of a grid block.
type GridItem struct {
	Header  string   `mapstructure:"header"`
	Content []string `mapstructure:"content"`
}

// GridBlock lays items out in columns with bulleted content.
type GridBlock struct {
	Title   string     `mapstructure:"title"`
	Items   []GridItem `mapstructure:"items"`
	Columns int        `mapstructure:"columns"`
	Style   string     `mapstructure:"style"`
}

// ListItem is a left/right headline with a subtitle and detail bullets.
type ListItem struct {
	LeftText  string   `mapstructure:"left_text"`
	RightText string   `mapstructure:"right_text"`
	SubText   string   `mapstructure:"sub_text"`
	Details   []string `mapstructure:"details"`
}

// HasHeadline reports whether the item has a left or right text.
func (i ListItem) HasHeadline() bool {
	return i.LeftText != "" || i.RightText != ""
}

// ListBlock is a list of experience-style entries.
type ListBlock struct {
	Title string     `mapstructure:"title"`
	Items []ListItem `mapstructure:"items"`
}

// PlainItem is one line of a plain list.
type PlainItem struct {
	Text  string `mapstructure:"text"`
	Style string `mapstructure:"style"`
}

// Small reports whether the item uses the reduced style.
func (i PlainItem) Small() bool { return i.Style == StyleSmall }

// PlainListBlock is a simple list of lines.
type PlainListBlock struct {
	Title      string      `mapstructure:"title"`
	TitleStyle string      `mapstructure:"title_style"`
	Items      []PlainItem `mapstructure:"items"`
}

// CompactItem is a content line with a trailing date.
type CompactItem struct {
	Content string `mapstructure:"content"`
	Date    string `mapstructure:"date"`
}

// CompactListBlock is a dense list of dated lines.
type CompactListBlock struct {
	Title      string        `mapstructure:"title"`
	TitleStyle string        `mapstructure:"title_style"`
	Items      []CompactItem `mapstructure:"items"`
}

// TextGridItem is one cell of a text grid.
type TextGridItem struct {
	Content []string `mapstructure:"content"`
}

// TextGridBlock lays paragraphs out in columns, optionally boxed.
type TextGridBlock struct {
	Title       string         `mapstructure:"title"`
	TitleStyle  string         `mapstructure:"title_style"`
	Items       []TextGridItem `mapstructure:"items"`
	Columns     int            `mapstructure:"columns"`
	Style       string         `mapstructure:"style"`
	BorderColor string         `mapstructure:"border_color"`
}

// ProjectItem is either a single line (Text) or a group of detail lines.
type ProjectItem struct {
	Text    string   `mapstructure:"text"`
	Details []string `mapstructure:"details"`
}

// Lines returns the bullet lines the item contributes.
func (i ProjectItem) Lines() []string {
	if i.Text != "" {
		return append([]string{i.Text}, i.Details...)
	}
	return i.Details
}

// ProjectBlock is a titled set of highlights with tag pills.
type ProjectBlock struct {
	Title       string        `mapstructure:"title"`
	Items       []ProjectItem `mapstructure:"items"`
	Tags        []string      `mapstructure:"tags"`
	Style       string        `mapstructure:"style"`
	BorderColor string        `mapstructure:"border_color"`
}

// Boxed reports whether the block is drawn with a left border; that is the
// default when no style is given.
func (b ProjectBlock) Boxed() bool {
	return b.Style == "" || b.Style == StyleLeftBorder
}

// StripeBlock configures the decorative top stripe.
type StripeBlock struct {
	Color         string  `mapstructure:"color"`
	Thickness     float64 `mapstructure:"thickness"`
	FirstPageOnly bool    `mapstructure:"first_page_only"`
	Enabled       *bool   `mapstructure:"enabled"`
}

// Active reports whether the stripe should be drawn. A stripe block is on
// unless it is explicitly disabled.
func (b StripeBlock) Active() bool {
	return b.Enabled == nil || *b.Enabled
}
