package content

import (
	"strings"

	"github.com/inklings/richarea/internal/grapheme"
)

// caretPos addresses a point inside the block/span tree: grapheme offset off
// within blocks[block].Spans[span].
type caretPos struct {
	block int
	span  int
	off   int
}

// locate resolves a projection offset to a tree position. At span boundaries
// the position binds to the end of the earlier textual span, so insertions
// inherit its marks; zero-width image spans are skipped over.
func (r *Region) locate(off int) caretPos {
	off = clampInt(off, 0, r.Len())
	if len(r.blocks) == 0 {
		r.blocks = []Block{{Kind: BlockParagraph}}
	}

	start := 0
	for bi := range r.blocks {
		b := r.blocks[bi]
		end := start + b.Len()
		if off > end {
			start = end + 1
			continue
		}
		rel := off - start
		acc := 0
		for si, s := range b.Spans {
			sl := s.Len()
			if rel < acc+sl || (rel == acc+sl && s.textual()) {
				return caretPos{block: bi, span: si, off: rel - acc}
			}
			acc += sl
		}
		return caretPos{block: bi, span: len(b.Spans), off: 0}
	}
	last := len(r.blocks) - 1
	return caretPos{block: last, span: len(r.blocks[last].Spans), off: 0}
}

// ActiveMarks returns the marks a new insertion at the caret would carry.
func (r *Region) ActiveMarks() MarkSet {
	if r.pendingActive {
		return r.pending
	}
	return r.inheritedMarks()
}

func (r *Region) inheritedMarks() MarkSet {
	pos := r.locate(r.caret)
	b := r.blocks[pos.block]
	if pos.span < len(b.Spans) && pos.off > 0 {
		return b.Spans[pos.span].Marks
	}
	// At a span start: inherit from the nearest textual span on the left.
	for si := pos.span - 1; si >= 0; si-- {
		if b.Spans[si].textual() {
			return b.Spans[si].Marks
		}
	}
	return 0
}

// InsertText inserts s at the caret, replacing any active selection. Newlines
// split blocks, except inside code blocks where they stay literal text.
func (r *Region) InsertText(s string) {
	if s == "" {
		if _, _, ok := r.Selection(); ok {
			r.DeleteSelection()
		}
		return
	}
	if a, b, ok := r.Selection(); ok {
		r.deleteRange(a, b)
	}

	if r.BlockKindAt(r.caret) == BlockCode {
		r.insertPlain(s, 0)
		r.version++
		return
	}

	marks := r.ActiveMarks()
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		if i > 0 {
			r.insertBlockBreak()
		}
		if p != "" {
			r.insertPlain(p, marks)
		}
	}
	r.version++
}

// InsertBreak applies Enter semantics: a new block of the same kind, an empty
// trailing list/quote block downgrading to a paragraph, or a literal newline
// inside a code block.
func (r *Region) InsertBreak() {
	if a, b, ok := r.Selection(); ok {
		r.deleteRange(a, b)
	}
	if r.BlockKindAt(r.caret) == BlockCode {
		r.insertPlain("\n", 0)
	} else {
		r.insertBlockBreak()
	}
	r.version++
}

func (r *Region) insertPlain(text string, marks MarkSet) {
	pos := r.locate(r.caret)
	b := &r.blocks[pos.block]
	idx := b.splitSpanAt(pos.span, pos.off)
	sp := Span{Kind: SpanText, Text: text, Marks: marks}
	b.Spans = append(b.Spans[:idx], append([]Span{sp}, b.Spans[idx:]...)...)
	b.Spans = normalizeSpans(b.Spans)
	r.caret += grapheme.Count(text)
	r.anchor = r.caret
	r.pendingActive = false
}

func (r *Region) insertBlockBreak() {
	pos := r.locate(r.caret)
	b := r.blocks[pos.block]

	// Enter on an empty list item or quote line converts it to a paragraph
	// instead of opening another empty one.
	if b.Len() == 0 && b.Kind != BlockParagraph && b.Kind != BlockCode {
		r.blocks[pos.block].Kind = BlockParagraph
		return
	}

	idx := r.blocks[pos.block].splitSpanAt(pos.span, pos.off)
	left := Block{Kind: b.Kind, Spans: normalizeSpans(append([]Span(nil), r.blocks[pos.block].Spans[:idx]...))}
	rightKind := b.Kind
	if rightKind == BlockCode {
		rightKind = BlockParagraph
	}
	right := Block{Kind: rightKind, Spans: normalizeSpans(append([]Span(nil), r.blocks[pos.block].Spans[idx:]...))}

	r.blocks = append(r.blocks[:pos.block], append([]Block{left, right}, r.blocks[pos.block+1:]...)...)
	r.caret++
	r.anchor = r.caret
	r.pendingActive = false
}

// splitSpanAt ensures a span boundary at (si, off) and returns the insertion
// index. Splitting a mention demotes both halves to plain text.
func (b *Block) splitSpanAt(si, off int) int {
	if si >= len(b.Spans) {
		return len(b.Spans)
	}
	if off == 0 {
		return si
	}
	s := b.Spans[si]
	if off >= s.Len() {
		return si + 1
	}

	left, right := s, s
	left.Text = grapheme.Slice(s.Text, 0, off)
	right.Text = grapheme.Slice(s.Text, off, s.Len())
	if s.Kind == SpanMention {
		left.Kind, right.Kind = SpanText, SpanText
		left.UserID, right.UserID = "", ""
	}
	b.Spans = append(b.Spans[:si], append([]Span{left, right}, b.Spans[si+1:]...)...)
	return si + 1
}

// InsertInline inserts an atomic span (image, mention, pre-built link) at the
// caret, replacing any active selection.
func (r *Region) InsertInline(sp Span) {
	if a, b, ok := r.Selection(); ok {
		r.deleteRange(a, b)
	}
	pos := r.locate(r.caret)
	b := &r.blocks[pos.block]
	idx := b.splitSpanAt(pos.span, pos.off)
	b.Spans = append(b.Spans[:idx], append([]Span{sp}, b.Spans[idx:]...)...)
	b.Spans = normalizeSpans(b.Spans)
	r.caret += sp.Len()
	r.anchor = r.caret
	r.pendingActive = false
	r.version++
}

// DeleteBackward applies backspace semantics n times' worth of graphemes. A
// zero-width image immediately left of the caret is removed as one unit.
func (r *Region) DeleteBackward(n int) {
	if n <= 0 {
		return
	}
	if a, end, ok := r.Selection(); ok {
		r.deleteRange(a, end)
		r.version++
		return
	}
	if r.removeImageBeforeCaret() {
		r.version++
		return
	}
	if r.caret == 0 {
		return
	}
	a := clampInt(r.caret-n, 0, r.caret)
	if r.deleteRange(a, r.caret) {
		r.version++
	}
}

// DeleteForward removes the grapheme after the caret, or the active
// selection.
func (r *Region) DeleteForward() {
	if a, b, ok := r.Selection(); ok {
		if r.deleteRange(a, b) {
			r.version++
		}
		return
	}
	if r.caret >= r.Len() {
		return
	}
	if r.deleteRange(r.caret, r.caret+1) {
		r.version++
	}
}

// DeleteSelection removes the active selection, if any.
func (r *Region) DeleteSelection() {
	if a, end, ok := r.Selection(); ok {
		if r.deleteRange(a, end) {
			r.version++
		}
	}
}

// DeleteRange removes projection graphemes in [a, b).
func (r *Region) DeleteRange(a, b int) {
	if r.deleteRange(a, b) {
		r.version++
	}
}

// removeImageBeforeCaret removes an image span sitting at the caret's
// projection offset. Images are zero-width, so this is the only way backspace
// can address them.
func (r *Region) removeImageBeforeCaret() bool {
	if len(r.blocks) == 0 {
		return false
	}
	bi := r.BlockIndexAt(r.caret)
	start, _ := r.BlockBounds(bi)
	rel := r.caret - start
	b := &r.blocks[bi]

	found := -1
	acc := 0
	for si, sp := range b.Spans {
		if sp.Kind == SpanImage && acc == rel {
			found = si
		}
		acc += sp.Len()
		if acc > rel {
			break
		}
	}
	if found < 0 {
		return false
	}
	b.Spans = normalizeSpans(append(b.Spans[:found], b.Spans[found+1:]...))
	return true
}

func (r *Region) deleteRange(a, b int) bool {
	n := r.Len()
	a = clampInt(a, 0, n)
	b = clampInt(b, 0, n)
	if a >= b {
		return false
	}

	out := make([]Block, 0, len(r.blocks))
	merge := false
	start := 0
	for i, blk := range r.blocks {
		blkLen := blk.Len()
		var spans []Span
		sOff := start
		for _, sp := range blk.Spans {
			e := sOff + sp.Len()
			spans = append(spans, cutSpan(sp, sOff, e, a, b)...)
			sOff = e
		}
		nb := Block{Kind: blk.Kind, Spans: normalizeSpans(spans)}
		if merge {
			prev := &out[len(out)-1]
			prev.Spans = normalizeSpans(append(prev.Spans, nb.Spans...))
		} else {
			out = append(out, nb)
		}
		sepPos := start + blkLen
		merge = i < len(r.blocks)-1 && a <= sepPos && sepPos < b
		start = sepPos + 1
	}

	r.blocks = out
	r.caret = a
	r.anchor = a
	r.pendingActive = false
	return true
}

// cutSpan removes the overlap of [a, b) from a span covering [s, e). A
// partially deleted mention is no longer that user and demotes to text.
func cutSpan(sp Span, s, e, a, b int) []Span {
	if sp.Kind == SpanImage {
		// Zero-width: range deletion never addresses images.
		return []Span{sp}
	}
	lo, hi := maxInt(s, a), minInt(e, b)
	if lo >= hi {
		return []Span{sp}
	}
	if lo == s && hi == e {
		return nil
	}

	demote := sp.Kind == SpanMention
	var out []Span
	if lo > s {
		left := sp
		left.Text = grapheme.Slice(sp.Text, 0, lo-s)
		if demote {
			left.Kind, left.UserID = SpanText, ""
		}
		out = append(out, left)
	}
	if hi < e {
		right := sp
		right.Text = grapheme.Slice(sp.Text, hi-s, e-s)
		if demote {
			right.Kind, right.UserID = SpanText, ""
		}
		out = append(out, right)
	}
	return out
}

// ToggleMark toggles an inline mark over the selection. At a collapsed caret
// the toggle is held pending and applies to the next insertion.
func (r *Region) ToggleMark(m Mark) {
	a, b, ok := r.Selection()
	if !ok {
		base := r.ActiveMarks()
		if base.Has(m) {
			r.pending = base.Without(m)
		} else {
			r.pending = base.With(m)
		}
		r.pendingActive = true
		r.version++
		return
	}

	all := r.rangeFullyMarked(a, b, m)
	start := 0
	for bi := range r.blocks {
		blk := &r.blocks[bi]
		var spans []Span
		sOff := start
		for _, sp := range blk.Spans {
			e := sOff + sp.Len()
			spans = append(spans, toggleSpanMark(sp, sOff, e, a, b, m, !all)...)
			sOff = e
		}
		blk.Spans = normalizeSpans(spans)
		start += blk.Len() + 1
	}
	r.version++
}

func (r *Region) rangeFullyMarked(a, b int, m Mark) bool {
	start := 0
	for _, blk := range r.blocks {
		sOff := start
		for _, sp := range blk.Spans {
			e := sOff + sp.Len()
			if sp.textual() && maxInt(sOff, a) < minInt(e, b) && !sp.Marks.Has(m) {
				return false
			}
			sOff = e
		}
		start += blk.Len() + 1
	}
	return true
}

func toggleSpanMark(sp Span, s, e, a, b int, m Mark, set bool) []Span {
	lo, hi := maxInt(s, a), minInt(e, b)
	if !sp.textual() || lo >= hi {
		return []Span{sp}
	}
	apply := func(in Span) Span {
		if set {
			in.Marks = in.Marks.With(m)
		} else {
			in.Marks = in.Marks.Without(m)
		}
		return in
	}
	// Mentions style as a unit; never split them for marks.
	if sp.Kind == SpanMention || (lo == s && hi == e) {
		return []Span{apply(sp)}
	}

	var out []Span
	if lo > s {
		left := sp
		left.Text = grapheme.Slice(sp.Text, 0, lo-s)
		out = append(out, left)
	}
	mid := sp
	mid.Text = grapheme.Slice(sp.Text, lo-s, hi-s)
	out = append(out, apply(mid))
	if hi < e {
		right := sp
		right.Text = grapheme.Slice(sp.Text, hi-s, e-s)
		out = append(out, right)
	}
	return out
}

// ApplyLink turns the selected text into a link. At a collapsed caret the URL
// itself is inserted as the link text. Images keep their place; mentions are
// left as mentions.
func (r *Region) ApplyLink(href string) {
	if href == "" {
		return
	}
	a, b, ok := r.Selection()
	if !ok {
		r.InsertInline(Span{Kind: SpanLink, Text: href, Href: href})
		return
	}

	start := 0
	for bi := range r.blocks {
		blk := &r.blocks[bi]
		var spans []Span
		sOff := start
		for _, sp := range blk.Spans {
			e := sOff + sp.Len()
			spans = append(spans, linkSpan(sp, sOff, e, a, b, href)...)
			sOff = e
		}
		blk.Spans = normalizeSpans(spans)
		start += blk.Len() + 1
	}
	r.version++
}

func linkSpan(sp Span, s, e, a, b int, href string) []Span {
	lo, hi := maxInt(s, a), minInt(e, b)
	if lo >= hi || sp.Kind == SpanImage || sp.Kind == SpanMention {
		return []Span{sp}
	}
	linked := func(in Span) Span {
		in.Kind = SpanLink
		in.Href = href
		return in
	}
	if lo == s && hi == e {
		return []Span{linked(sp)}
	}

	var out []Span
	if lo > s {
		left := sp
		left.Text = grapheme.Slice(sp.Text, 0, lo-s)
		out = append(out, left)
	}
	mid := sp
	mid.Text = grapheme.Slice(sp.Text, lo-s, hi-s)
	out = append(out, linked(mid))
	if hi < e {
		right := sp
		right.Text = grapheme.Slice(sp.Text, hi-s, e-s)
		out = append(out, right)
	}
	return out
}

// SetBlockKind applies a block format to every block touched by the selection
// (or the caret's block). If they all already carry it, they revert to
// paragraphs.
func (r *Region) SetBlockKind(k BlockKind) {
	a, b, ok := r.Selection()
	if !ok {
		a, b = r.caret, r.caret
	}
	lo, hi := r.BlockIndexAt(a), r.BlockIndexAt(b)

	all := true
	for i := lo; i <= hi; i++ {
		if r.blocks[i].Kind != k {
			all = false
			break
		}
	}
	next := k
	if all {
		next = BlockParagraph
	}
	changed := false
	for i := lo; i <= hi; i++ {
		if r.blocks[i].Kind != next {
			r.blocks[i].Kind = next
			changed = true
		}
	}
	if changed {
		r.version++
	}
}

// normalizeSpans drops emptied text runs and merges adjacent runs that carry
// identical formatting.
func normalizeSpans(spans []Span) []Span {
	out := spans[:0]
	for _, sp := range spans {
		if sp.Kind != SpanImage && sp.Text == "" {
			continue
		}
		if len(out) > 0 {
			last := &out[len(out)-1]
			if mergeable(*last, sp) {
				last.Text += sp.Text
				continue
			}
		}
		out = append(out, sp)
	}
	return out
}

func mergeable(a, b Span) bool {
	if a.Marks != b.Marks {
		return false
	}
	if a.Kind == SpanText && b.Kind == SpanText {
		return true
	}
	if a.Kind == SpanLink && b.Kind == SpanLink && a.Href == b.Href {
		return true
	}
	return false
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
