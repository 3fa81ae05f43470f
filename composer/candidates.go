package composer

import (
	"github.com/inklings/richarea/content"
	"github.com/inklings/richarea/internal/grapheme"
)

// candidateList is the filtered mention window plus its highlight cursor.
// Navigation clamps at both ends rather than wrapping.
type candidateList struct {
	items     []Candidate
	highlight int
}

func (c *candidateList) clamp() {
	if len(c.items) == 0 {
		c.highlight = 0
		return
	}
	if c.highlight < 0 {
		c.highlight = 0
	}
	if c.highlight > len(c.items)-1 {
		c.highlight = len(c.items) - 1
	}
}

func (c *candidateList) moveUp() {
	c.highlight--
	c.clamp()
}

func (c *candidateList) moveDown() {
	c.highlight++
	c.clamp()
}

func (c candidateList) highlighted() (Candidate, bool) {
	if len(c.items) == 0 {
		return Candidate{}, false
	}
	i := c.highlight
	if i < 0 || i >= len(c.items) {
		i = 0
	}
	return c.items[i], true
}

// acceptCandidate replaces the typed @query with the chosen mention. Exactly
// query length plus one graphemes (the @ and the query) are deleted ending at
// the caret; the inserted mention reads @label and carries a mandatory
// trailing space so the next keystroke cannot re-trigger against it.
func (m Model) acceptCandidate(idx int) Model {
	if !m.mention.Active || len(m.candidates.items) == 0 {
		return m
	}
	if idx < 0 || idx >= len(m.candidates.items) {
		return m
	}
	c := m.candidates.items[idx]

	n := grapheme.Count(m.mention.Query) + 1
	caret := m.region.Caret()
	m.region.DeleteRange(caret-n, caret)
	m.region.InsertInline(content.Span{
		Kind:   content.SpanMention,
		Text:   "@" + c.Label(),
		UserID: c.ID,
	})
	m.region.InsertText(" ")

	m.mention = MentionState{}
	m.candidates = candidateList{}
	return m.syncAfterEdit()
}

func (m Model) acceptHighlighted() Model {
	return m.acceptCandidate(m.candidates.highlight)
}
