package composer

import "github.com/inklings/richarea/internal/grapheme"

// Clipboard provides composer-level clipboard integration.
//
// Errors must not crash the UI; a failed read pastes nothing and a failed
// write loses the copy silently.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

func (m Model) pasteFromClipboard() Model {
	if m.cfg.Clipboard == nil {
		return m
	}
	text, err := m.cfg.Clipboard.ReadText()
	if err != nil || text == "" {
		return m
	}
	m.region.InsertText(normalizeNewlines(text))
	return m.syncAfterEdit()
}

func (m Model) copyToClipboard(cut bool) Model {
	if m.cfg.Clipboard == nil {
		return m
	}
	a, b, ok := m.region.Selection()
	if !ok {
		return m
	}
	text := grapheme.Slice(m.region.PlainText(), a, b)
	if err := m.cfg.Clipboard.WriteText(text); err != nil {
		return m
	}
	if cut {
		m.region.DeleteRange(a, b)
		return m.syncAfterEdit()
	}
	return m
}
