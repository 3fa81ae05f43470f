package composer

import (
	"strings"
	"testing"

	"github.com/inklings/richarea/content"
)

func TestScanMentionTriggerPolicy(t *testing.T) {
	cases := []struct {
		name       string
		text       string
		wantActive bool
		wantQuery  string
	}{
		{name: "at content start", text: "@al", wantActive: true, wantQuery: "al"},
		{name: "after space", text: "hello @al", wantActive: true, wantQuery: "al"},
		{name: "bare trigger", text: "hello @", wantActive: true, wantQuery: ""},
		{name: "after another at", text: "@@al", wantActive: true, wantQuery: "al"},
		{name: "inside word", text: "user@example", wantActive: false},
		{name: "query with space", text: "@alice smith", wantActive: false},
		{name: "no trigger", text: "plain text", wantActive: false},
		{name: "after wide grapheme", text: "你好@al", wantActive: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := content.NewRegion("")
			r.InsertText(tc.text)
			st := scanMention(r, 15)
			if st.Active != tc.wantActive {
				t.Fatalf("Active: got %v, want %v", st.Active, tc.wantActive)
			}
			if st.Active && st.Query != tc.wantQuery {
				t.Fatalf("Query: got %q, want %q", st.Query, tc.wantQuery)
			}
		})
	}
}

func TestScanMentionQueryLengthCap(t *testing.T) {
	r := content.NewRegion("")
	r.InsertText("@" + strings.Repeat("a", 15))
	if st := scanMention(r, 15); !st.Active {
		t.Fatalf("query at cap should stay active")
	}

	r.InsertText("a")
	if st := scanMention(r, 15); st.Active {
		t.Fatalf("query past cap should deactivate")
	}
}

func TestScanMentionDiesAcrossBlocks(t *testing.T) {
	r := content.NewRegion("")
	r.InsertText("@al")
	r.InsertBreak()
	if st := scanMention(r, 15); st.Active {
		t.Fatalf("trigger should not survive a block break")
	}
}

func TestScanMentionRequiresCollapsedSelection(t *testing.T) {
	r := content.NewRegion("")
	r.InsertText("hello @al")
	r.SetSelection(2, 5)
	if st := scanMention(r, 15); st.Active {
		t.Fatalf("non-collapsed selection should suppress the trigger")
	}
}

func TestScanMentionTriggerOffset(t *testing.T) {
	r := content.NewRegion("")
	r.InsertText("hi 👋 @bo")
	st := scanMention(r, 15)
	if !st.Active {
		t.Fatalf("expected active mention")
	}
	// "hi 👋 " is five grapheme clusters before the @.
	if st.TriggerOffset != 5 {
		t.Fatalf("TriggerOffset: got %d, want 5", st.TriggerOffset)
	}
}

func testUsers() []Candidate {
	return []Candidate{
		{ID: "u1", Username: "alice", DisplayName: "Alice Liddell"},
		{ID: "u2", Username: "albert", DisplayName: "Albert Moss"},
		{ID: "u3", Username: "bob", DisplayName: "Bob Stone"},
	}
}

func TestRescanMentionFiltersAndResetsHighlight(t *testing.T) {
	m := New(Config{Users: testUsers()})
	m.region.InsertText("hello @al")
	m = m.rescanMention()

	if !m.mention.Active {
		t.Fatalf("expected active mention")
	}
	if got := len(m.candidates.items); got != 2 {
		t.Fatalf("candidates: got %d, want 2", got)
	}
	if m.candidates.highlight != 0 {
		t.Fatalf("highlight: got %d, want 0", m.candidates.highlight)
	}

	m.candidates.moveDown()
	if m.candidates.highlight != 1 {
		t.Fatalf("highlight after moveDown: got %d, want 1", m.candidates.highlight)
	}

	// Narrowing the query resets the highlight to the top.
	m.region.InsertText("i")
	m = m.rescanMention()
	if got := len(m.candidates.items); got != 1 {
		t.Fatalf("narrowed candidates: got %d, want 1", got)
	}
	if m.candidates.highlight != 0 {
		t.Fatalf("highlight after narrowing: got %d, want 0", m.candidates.highlight)
	}
}

func TestRescanMentionNoMatchesKeepsPopupOpen(t *testing.T) {
	m := New(Config{Users: testUsers()})
	m.region.InsertText("@zzz")
	m = m.rescanMention()
	if !m.mention.Active {
		t.Fatalf("mention should stay active with zero matches")
	}
	if len(m.candidates.items) != 0 {
		t.Fatalf("candidates: got %d, want 0", len(m.candidates.items))
	}
}

func TestRescanMentionSkippedWhileComposing(t *testing.T) {
	m := New(Config{Users: testUsers()})
	m.region.InsertText("@al")
	m.guard.start()
	m = m.rescanMention()
	if m.mention.Active {
		t.Fatalf("mention scan must be suppressed mid-composition")
	}
}

func TestFilterCandidatesMatchesDisplayName(t *testing.T) {
	got := filterCandidates(testUsers(), "liddell", 10)
	if len(got) != 1 || got[0].Username != "alice" {
		t.Fatalf("filterCandidates(liddell): got %v", got)
	}
}

func TestFilterCandidatesEmptyQueryWindow(t *testing.T) {
	got := filterCandidates(testUsers(), "", 2)
	if len(got) != 2 {
		t.Fatalf("window: got %d, want 2", len(got))
	}
	if got[0].Username != "alice" || got[1].Username != "albert" {
		t.Fatalf("window order: got %v", got)
	}
}
