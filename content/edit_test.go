package content

import "testing"

func TestInsertText_AtCaret(t *testing.T) {
	r := NewRegion("<p>helo</p>")
	r.SetCaret(2)
	r.InsertText("l")
	if got, want := r.PlainText(), "hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := r.Caret(), 3; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestInsertText_ReplacesSelection(t *testing.T) {
	r := NewRegion("<p>hello world</p>")
	r.SetSelection(6, 11)
	r.InsertText("there")
	if got, want := r.PlainText(), "hello there"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if _, _, ok := r.Selection(); ok {
		t.Fatalf("selection should collapse after insert")
	}
}

func TestInsertText_InheritsMarks(t *testing.T) {
	r := NewRegion("<p><strong>bold</strong></p>")
	r.SetCaret(4)
	r.InsertText("er")
	if got, want := r.HTML(), "<p><strong>bolder</strong></p>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
}

func TestInsertText_NewlinesSplitBlocks(t *testing.T) {
	r := NewRegion("")
	r.InsertText("one\ntwo")
	if got, want := r.HTML(), "<p>one</p><p>two</p>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
	if got, want := r.Caret(), 7; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestInsertText_LiteralNewlineInCodeBlock(t *testing.T) {
	r := NewRegion("<pre><code>a</code></pre>")
	r.SetCaret(1)
	r.InsertText("\nb")
	if got, want := r.HTML(), "<pre><code>a\nb</code></pre>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
	if got, want := r.BlockCount(), 1; got != want {
		t.Fatalf("blocks=%d, want %d", got, want)
	}
}

func TestToggleMark_SelectionAddsAndRemoves(t *testing.T) {
	r := NewRegion("<p>hello</p>")
	r.SetSelection(0, 5)
	r.ToggleMark(MarkBold)
	if got, want := r.HTML(), "<p><strong>hello</strong></p>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
	r.SetSelection(0, 5)
	r.ToggleMark(MarkBold)
	if got, want := r.HTML(), "<p>hello</p>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
}

func TestToggleMark_PartialSelectionSplitsSpan(t *testing.T) {
	r := NewRegion("<p>hello</p>")
	r.SetSelection(1, 4)
	r.ToggleMark(MarkItalic)
	if got, want := r.HTML(), "<p>h<em>ell</em>o</p>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
}

func TestToggleMark_MixedSelectionUnifies(t *testing.T) {
	// "he" bold, "llo" plain: toggling bold over all should bold everything.
	r := NewRegion("<p><strong>he</strong>llo</p>")
	r.SetSelection(0, 5)
	r.ToggleMark(MarkBold)
	if got, want := r.HTML(), "<p><strong>hello</strong></p>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
}

func TestToggleMark_CollapsedCaretPends(t *testing.T) {
	r := NewRegion("<p>ab</p>")
	r.SetCaret(1)
	r.ToggleMark(MarkBold)
	r.InsertText("x")
	if got, want := r.HTML(), "<p>a<strong>x</strong>b</p>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
}

func TestDeleteBackward(t *testing.T) {
	r := NewRegion("<p>hello</p>")
	r.DeleteBackward(2)
	if got, want := r.PlainText(), "hel"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := r.Caret(), 3; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestDeleteBackward_AtStartIsNoop(t *testing.T) {
	r := NewRegion("<p>ab</p>")
	r.SetCaret(0)
	ver := r.Version()
	r.DeleteBackward(1)
	if got, want := r.PlainText(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if r.Version() != ver {
		t.Fatalf("no-op delete should not bump version")
	}
}

func TestDeleteBackward_AcrossBlockBoundaryMerges(t *testing.T) {
	r := NewRegion("<p>ab</p><p>cd</p>")
	r.SetCaret(3) // start of second block
	r.DeleteBackward(1)
	if got, want := r.HTML(), "<p>abcd</p>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
	if got, want := r.Caret(), 2; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestDeleteBackward_RemovesImageAtomically(t *testing.T) {
	r := NewRegion(`<p>a<img src="x.png" alt="pic">b</p>`)
	r.SetCaret(1) // between image and "b" in span order
	r.DeleteBackward(1)
	if got, want := r.HTML(), "<p>ab</p>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
	if got, want := r.PlainText(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestDeleteRange_PartialMentionDemotes(t *testing.T) {
	r := NewRegion(`<p><a class="mention" data-user-id="7">@alice</a> hi</p>`)
	// Delete "ce" from "@alice".
	r.DeleteRange(4, 6)
	if got, want := r.PlainText(), "@ali hi"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := r.HTML(), "<p>@ali hi</p>"; got != want {
		t.Fatalf("demoted html=%q, want %q", got, want)
	}
}

func TestInsertBreak_SplitsBlock(t *testing.T) {
	r := NewRegion("<p>hello</p>")
	r.SetCaret(2)
	r.InsertBreak()
	if got, want := r.HTML(), "<p>he</p><p>llo</p>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
	if got, want := r.Caret(), 3; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestInsertBreak_ListItemContinues(t *testing.T) {
	r := NewRegion("<ul><li>one</li></ul>")
	r.SetCaret(3)
	r.InsertBreak()
	r.InsertText("two")
	if got, want := r.HTML(), "<ul><li>one</li><li>two</li></ul>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
}

func TestInsertBreak_EmptyListItemBecomesParagraph(t *testing.T) {
	r := NewRegion("<ul><li>one</li><li></li></ul>")
	r.SetCaret(4) // inside the empty second item
	r.InsertBreak()
	if got, want := r.HTML(), "<ul><li>one</li></ul><p></p>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
}

func TestSetBlockKind_TogglesBackToParagraph(t *testing.T) {
	r := NewRegion("<p>quote me</p>")
	r.SetBlockKind(BlockQuote)
	if got, want := r.HTML(), "<blockquote>quote me</blockquote>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
	r.SetBlockKind(BlockQuote)
	if got, want := r.HTML(), "<p>quote me</p>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
}

func TestSetBlockKind_SelectionSpansBlocks(t *testing.T) {
	r := NewRegion("<p>a</p><p>b</p>")
	r.SetSelection(0, 3)
	r.SetBlockKind(BlockOrderedList)
	if got, want := r.HTML(), "<ol><li>a</li><li>b</li></ol>"; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
}

func TestInsertInline_Image(t *testing.T) {
	r := NewRegion("<p>ab</p>")
	r.SetCaret(1)
	r.InsertInline(Span{Kind: SpanImage, Src: "https://x/y.png", Text: "pic"})
	if got, want := r.HTML(), `<p>a<img src="https://x/y.png" alt="pic">b</p>`; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
	// Images are zero-width in the projection.
	if got, want := r.PlainText(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := r.Caret(), 1; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestInsertInline_MentionThenSpace(t *testing.T) {
	r := NewRegion("<p>hi </p>")
	r.InsertInline(Span{Kind: SpanMention, Text: "@alice", UserID: "1"})
	r.InsertText(" ")
	if got, want := r.PlainText(), "hi @alice "; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := r.HTML(), `<p>hi <a class="mention" data-user-id="1">@alice</a> </p>`; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
}

func TestApplyLink_Selection(t *testing.T) {
	r := NewRegion("<p>see docs here</p>")
	r.SetSelection(4, 8)
	r.ApplyLink("https://example.com")
	if got, want := r.HTML(), `<p>see <a href="https://example.com">docs</a> here</p>`; got != want {
		t.Fatalf("html=%q, want %q", got, want)
	}
}

func TestApplyLink_CollapsedInsertsURLText(t *testing.T) {
	r := NewRegion("<p>go: </p>")
	r.ApplyLink("https://example.com")
	if got, want := r.PlainText(), "go: https://example.com"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestDeleteForward(t *testing.T) {
	r := NewRegion("<p>abc</p>")
	r.SetCaret(1)
	r.DeleteForward()
	if got, want := r.PlainText(), "ac"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := r.Caret(), 1; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestUnicodeEditing_GraphemeSafe(t *testing.T) {
	r := NewRegion("<p>a👨‍👩‍👧‍👦b</p>")
	if got, want := r.Len(), 3; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	r.SetCaret(2)
	r.DeleteBackward(1)
	if got, want := r.PlainText(), "ab"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}
