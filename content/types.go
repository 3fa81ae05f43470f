package content

import "github.com/inklings/richarea/internal/grapheme"

// Mark is a single inline formatting attribute.
type Mark uint8

const (
	MarkBold Mark = 1 << iota
	MarkItalic
	MarkCode
)

// MarkSet is a bitmask of inline marks applied to a span.
type MarkSet uint8

func (s MarkSet) Has(m Mark) bool     { return s&MarkSet(m) != 0 }
func (s MarkSet) With(m Mark) MarkSet { return s | MarkSet(m) }
func (s MarkSet) Without(m Mark) MarkSet {
	return s &^ MarkSet(m)
}

// SpanKind distinguishes plain text from atomic inline content.
type SpanKind uint8

const (
	SpanText SpanKind = iota
	SpanLink
	SpanMention
	SpanImage
)

// Span is an inline run. Text carries the visible content (alt text for
// images, which contribute nothing to the plain-text projection).
type Span struct {
	Kind  SpanKind
	Text  string
	Marks MarkSet

	// Kind-specific payloads.
	Href   string // SpanLink
	Src    string // SpanImage
	UserID string // SpanMention
}

// Len returns the span's length in grapheme clusters. Images are atomic and
// occupy no caret positions.
func (s Span) Len() int {
	if s.Kind == SpanImage {
		return 0
	}
	return grapheme.Count(s.Text)
}

// textual reports whether the caret can sit inside the span.
func (s Span) textual() bool { return s.Kind != SpanImage }

// BlockKind is the block-level container type.
type BlockKind uint8

const (
	BlockParagraph BlockKind = iota
	BlockOrderedList
	BlockUnorderedList
	BlockQuote
	BlockCode
)

// Block is one block-level node: a paragraph, a single list item, a
// blockquote line, or a code block.
type Block struct {
	Kind  BlockKind
	Spans []Span
}

// Len returns the block's plain-text length in grapheme clusters.
func (b Block) Len() int {
	n := 0
	for _, s := range b.Spans {
		n += s.Len()
	}
	return n
}

// Text returns the block's plain-text content.
func (b Block) Text() string {
	var out []byte
	for _, s := range b.Spans {
		if s.Kind == SpanImage {
			continue
		}
		out = append(out, s.Text...)
	}
	return string(out)
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
