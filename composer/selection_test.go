package composer

import "testing"

func TestSaveRestoreSelectionRoundTrip(t *testing.T) {
	m := New(Config{Value: "<p>hello world</p>"})
	m.region.SetSelection(6, 11)
	m.saveSelection()

	// Focus wanders off to the toolbar; the live selection is collapsed by
	// unrelated caret movement.
	m.region.SetCaret(0)

	if !m.restoreSelection() {
		t.Fatalf("restore should succeed on a live snapshot")
	}
	a, b, ok := m.region.Selection()
	if !ok {
		t.Fatalf("expected a selection after restore")
	}
	if a != 6 || b != 11 {
		t.Fatalf("restored range: got [%d,%d), want [6,11)", a, b)
	}
}

func TestRestoreWithoutSnapshotFallsToEnd(t *testing.T) {
	m := New(Config{Value: "<p>abc</p>"})
	m.region.SetCaret(0)
	if m.restoreSelection() {
		t.Fatalf("restore without a snapshot should report failure")
	}
	if got := m.region.Caret(); got != 3 {
		t.Fatalf("fallback caret: got %d, want 3", got)
	}
}

func TestSnapshotStaleAfterGenerationBump(t *testing.T) {
	m := New(Config{Value: "<p>hello</p>"})
	m.region.SetSelection(0, 5)
	m.saveSelection()

	m.region.SetHTML("<p>different</p>")

	if m.restoreSelection() {
		t.Fatalf("snapshot from a prior generation must not restore")
	}
}

func TestSnapshotSurvivesOrdinaryEdits(t *testing.T) {
	m := New(Config{Value: "<p>hello</p>"})
	m.region.SetSelection(0, 5)
	m.saveSelection()

	// In-place edits advance the version but not the generation.
	m.region.SetCaret(5)
	m.region.InsertText("!")

	if !m.restoreSelection() {
		t.Fatalf("ordinary edits must not invalidate the snapshot")
	}
}
