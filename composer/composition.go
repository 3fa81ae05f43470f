package composer

import "github.com/inklings/richarea/internal/grapheme"

// CompositionStartMsg opens an IME composition. While a composition is open
// the composer buffers preedit text for display only and suppresses value
// synchronization, mention scanning, and length enforcement: mutating the
// region mid-composition would corrupt multi-keystroke candidate input.
type CompositionStartMsg struct{}

// CompositionUpdateMsg replaces the current preedit text.
type CompositionUpdateMsg struct {
	Text string
}

// CompositionEndMsg commits the composition. When Text is empty the buffered
// preedit is committed instead. Exactly one synchronization and one mention
// re-scan run after the commit.
type CompositionEndMsg struct {
	Text string
}

// compositionGuard is a two-state machine: Idle and Composing.
type compositionGuard struct {
	composing bool
	preedit   string
}

func (g *compositionGuard) start() {
	g.composing = true
	g.preedit = ""
}

func (g *compositionGuard) update(text string) {
	if g.composing {
		g.preedit = text
	}
}

func (g *compositionGuard) appendRunes(s string) {
	if g.composing {
		g.preedit += s
	}
}

func (g *compositionGuard) trimLast() {
	if !g.composing || g.preedit == "" {
		return
	}
	n := grapheme.Count(g.preedit)
	g.preedit = grapheme.Slice(g.preedit, 0, n-1)
}

// end closes the composition and returns the text to commit.
func (g *compositionGuard) end(final string) string {
	text := final
	if text == "" {
		text = g.preedit
	}
	g.composing = false
	g.preedit = ""
	return text
}
