package composer

import (
	"strings"

	"github.com/inklings/richarea/content"
	"github.com/inklings/richarea/internal/grapheme"
)

// MentionState tracks the active @ trigger, if any. It is recomputed from
// scratch after every accepted input and on composition end; it carries no
// identity across edits.
type MentionState struct {
	Active bool
	// TriggerOffset is the grapheme offset of the @ in the plain-text
	// projection.
	TriggerOffset int
	Query         string
}

// scanMention inspects the text before the caret for an active mention
// trigger.
//
// Trigger policy (strict): the @ must sit at the start of the content or
// directly after whitespace or another @, so @ inside pasted email addresses
// never opens the popup. The query dies on any whitespace, on a non-collapsed
// selection, and past maxQuery characters.
func scanMention(r *content.Region, maxQuery int) MentionState {
	if !r.Collapsed() {
		return MentionState{}
	}

	before := r.TextBeforeCaret()
	at := strings.LastIndex(before, "@")
	if at < 0 {
		return MentionState{}
	}

	query := before[at+1:]
	if grapheme.HasSpace(query) {
		return MentionState{}
	}
	if grapheme.Count(query) > maxQuery {
		return MentionState{}
	}

	prefix := before[:at]
	if prefix != "" && !strings.HasSuffix(prefix, "@") {
		clusters := grapheme.Split(prefix)
		if !grapheme.IsSpace(clusters[len(clusters)-1]) {
			return MentionState{}
		}
	}

	return MentionState{
		Active:        true,
		TriggerOffset: grapheme.Count(prefix),
		Query:         query,
	}
}

// rescanMention refreshes mention state and the candidate window after an
// accepted edit. The highlight resets to the top whenever the query changes;
// the popup anchor is recomputed when the popup transitions to visible.
func (m Model) rescanMention() Model {
	if m.guard.composing {
		return m
	}
	wasActive := m.mention.Active
	prevQuery := m.mention.Query

	m.mention = scanMention(m.region, m.cfg.MaxQueryLen)
	if !m.mention.Active {
		m.candidates = candidateList{}
		return m
	}

	m.candidates.items = filterCandidates(m.cfg.Users, m.mention.Query, m.cfg.MaxCandidates)
	if !wasActive || prevQuery != m.mention.Query {
		m.candidates.highlight = 0
	}
	m.candidates.clamp()

	if !wasActive {
		m.reposition()
	}
	return m
}
