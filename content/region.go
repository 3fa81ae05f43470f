package content

import (
	"strings"

	"github.com/inklings/richarea/internal/grapheme"
)

// Region is the editable rich-content state: blocks, caret, and selection.
//
// Offsets are grapheme indices into the plain-text projection (blocks joined
// with a single newline). The version counter bumps on every effective state
// change; the generation counter bumps only on wholesale content replacement,
// which is what invalidates selection snapshots taken against the old nodes.
type Region struct {
	blocks []Block

	caret  int
	anchor int

	// Marks pending at a collapsed caret, to be inherited by the next
	// insertion. Cleared on caret movement.
	pending       MarkSet
	pendingActive bool

	version    uint64
	generation uint64
}

// NewRegion parses an HTML fragment into a fresh region with the caret at the
// end of the content.
func NewRegion(fragment string) *Region {
	r := &Region{blocks: parseFragment(fragment)}
	r.caret = r.Len()
	r.anchor = r.caret
	return r
}

// HTML serializes the region back to an HTML fragment. An empty region
// serializes to the empty string.
func (r *Region) HTML() string { return renderFragment(r.blocks) }

// SetHTML replaces the whole content from an external HTML value. The caret
// moves to the end and the structural generation advances, so previously
// captured snapshots become stale.
func (r *Region) SetHTML(fragment string) {
	r.blocks = parseFragment(fragment)
	r.caret = r.Len()
	r.anchor = r.caret
	r.pendingActive = false
	r.generation++
	r.version++
}

// PlainText returns the projection used for length accounting and mention
// scanning: block texts joined with single newlines, markup stripped.
func (r *Region) PlainText() string {
	var sb strings.Builder
	for i, b := range r.blocks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(b.Text())
	}
	return sb.String()
}

// Len returns the projection length in grapheme clusters (the number of caret
// slots minus one).
func (r *Region) Len() int {
	n := 0
	for i, b := range r.blocks {
		if i > 0 {
			n++
		}
		n += b.Len()
	}
	return n
}

// CodePoints returns the projection length in Unicode code points. This is
// the unit the character budget is measured in.
func (r *Region) CodePoints() int {
	return grapheme.CodePoints(r.PlainText())
}

// TextBeforeCaret returns the projection slice from the start of the region
// up to the caret.
func (r *Region) TextBeforeCaret() string {
	return grapheme.Slice(r.PlainText(), 0, r.caret)
}

func (r *Region) Version() uint64    { return r.version }
func (r *Region) Generation() uint64 { return r.generation }

// Caret returns the collapsed caret position (the selection focus when a
// range is active).
func (r *Region) Caret() int { return r.caret }

// SetCaret collapses the selection to off.
func (r *Region) SetCaret(off int) {
	off = clampInt(off, 0, r.Len())
	if off == r.caret && off == r.anchor && !r.pendingActive {
		return
	}
	r.caret = off
	r.anchor = off
	r.pendingActive = false
	r.version++
}

// Selection returns the normalized selection range and whether it is
// non-collapsed.
func (r *Region) Selection() (start, end int, ok bool) {
	if r.anchor == r.caret {
		return 0, 0, false
	}
	if r.anchor < r.caret {
		return r.anchor, r.caret, true
	}
	return r.caret, r.anchor, true
}

// Collapsed reports whether the selection is a caret rather than a range.
func (r *Region) Collapsed() bool { return r.anchor == r.caret }

// SetSelection sets a directional selection: anchor stays put while focus
// follows further extension.
func (r *Region) SetSelection(anchor, focus int) {
	n := r.Len()
	anchor = clampInt(anchor, 0, n)
	focus = clampInt(focus, 0, n)
	if anchor == r.anchor && focus == r.caret {
		return
	}
	r.anchor = anchor
	r.caret = focus
	r.pendingActive = false
	r.version++
}

// Anchor returns the raw selection anchor.
func (r *Region) Anchor() int { return r.anchor }

// BlockCount returns the number of blocks.
func (r *Region) BlockCount() int { return len(r.blocks) }

// Blocks returns a copy of the block slice for rendering.
func (r *Region) Blocks() []Block {
	out := make([]Block, len(r.blocks))
	copy(out, r.blocks)
	for i := range out {
		out[i].Spans = append([]Span(nil), out[i].Spans...)
	}
	return out
}

// BlockIndexAt returns the index of the block containing offset off.
func (r *Region) BlockIndexAt(off int) int {
	off = clampInt(off, 0, r.Len())
	start := 0
	for i, b := range r.blocks {
		end := start + b.Len()
		if off <= end {
			return i
		}
		start = end + 1
	}
	if len(r.blocks) == 0 {
		return 0
	}
	return len(r.blocks) - 1
}

// BlockBounds returns the projection offsets [start, end] spanned by block i.
func (r *Region) BlockBounds(i int) (start, end int) {
	i = clampInt(i, 0, len(r.blocks)-1)
	for j := 0; j < i; j++ {
		start += r.blocks[j].Len() + 1
	}
	if len(r.blocks) == 0 {
		return 0, 0
	}
	return start, start + r.blocks[i].Len()
}

// BlockKindAt returns the kind of the block containing off.
func (r *Region) BlockKindAt(off int) BlockKind {
	if len(r.blocks) == 0 {
		return BlockParagraph
	}
	return r.blocks[r.BlockIndexAt(off)].Kind
}
