package composer

// selectionSnapshot captures the selection across focus moves away from the
// region (toolbar clicks, emoji picker, prompts). The generation counter
// stands in for node identity: a wholesale value replacement while the region
// was unfocused advances it and makes the snapshot stale.
type selectionSnapshot struct {
	anchor     int
	focus      int
	generation uint64
}

// saveSelection captures the live selection before the region loses focus for
// a reason unrelated to user navigation.
func (m *Model) saveSelection() {
	m.saved = selectionSnapshot{
		anchor:     m.region.Anchor(),
		focus:      m.region.Caret(),
		generation: m.region.Generation(),
	}
	m.hasSaved = true
}

// restoreSelection re-applies the most recent snapshot ahead of a mutation
// command. A stale snapshot restores nothing; the caret falls back to the end
// of the content so the mutation still lands somewhere sensible.
func (m *Model) restoreSelection() bool {
	if !m.hasSaved || m.saved.generation != m.region.Generation() {
		m.region.SetCaret(m.region.Len())
		return false
	}
	m.region.SetSelection(m.saved.anchor, m.saved.focus)
	return true
}
