package composer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, m.height), nil

	case CompositionStartMsg:
		m.guard.start()
		return m, nil

	case CompositionUpdateMsg:
		m.guard.update(msg.Text)
		return m, nil

	case CompositionEndMsg:
		text := m.guard.end(msg.Text)
		if text != "" {
			m.region.InsertText(text)
		}
		// Exactly one synchronization and one mention re-scan, after the
		// whole composition committed.
		return m.syncAfterEdit(), nil

	case dismissPopupsMsg:
		if !m.focused {
			m.mention = MentionState{}
			m.candidates = candidateList{}
			m.emoji.close()
		}
		return m, nil

	case imageResultMsg:
		return m.applyImageResult(msg), nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	if m.prompt.kind != promptNone {
		return m.updatePromptKey(msg)
	}
	if m.emoji.visible {
		return m.updateEmojiKey(msg)
	}
	if m.guard.composing {
		return m.updateComposingKey(msg)
	}
	if m.zone == ZoneToolbar {
		return m.updateToolbarKey(msg)
	}
	// With zero matches the popup is not drawn, so navigation keys keep
	// their ordinary region meaning.
	if m.mention.Active && len(m.candidates.items) > 0 {
		if handled, next, cmd := m.updateMentionKey(msg); handled {
			return next, cmd
		}
	}
	return m.updateRegionKey(msg)
}

func (m Model) updatePromptKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Dismiss):
		return m.closePrompt(), nil
	case msg.Type == tea.KeyEnter:
		return m.commitPrompt()
	}
	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

func (m Model) updateEmojiKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Dismiss):
		m.emoji.close()
		m.zone = ZoneRegion
		return m, nil
	case key.Matches(msg, km.Left):
		m.emoji.move(0, -1)
	case key.Matches(msg, km.Right):
		m.emoji.move(0, 1)
	case key.Matches(msg, km.Up):
		m.emoji.move(-1, 0)
	case key.Matches(msg, km.Down):
		m.emoji.move(1, 0)
	case key.Matches(msg, km.Activate):
		s := m.emoji.selected()
		m.emoji.close()
		m.zone = ZoneRegion
		return m.InsertEmoji(s), nil
	}
	return m, nil
}

// updateComposingKey buffers keystrokes into the preedit without touching the
// region; the commit happens on CompositionEndMsg.
func (m Model) updateComposingKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyRunes:
		m.guard.appendRunes(string(msg.Runes))
	case tea.KeySpace:
		m.guard.appendRunes(" ")
	case tea.KeyBackspace:
		m.guard.trimLast()
	}
	return m, nil
}

func (m Model) updateToolbarKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.toolbarLeft()
	case key.Matches(msg, km.Right):
		m.toolbarRight()
	case key.Matches(msg, km.Activate):
		return m.Exec(toolbarButtons[m.toolbarIdx].cmd)
	case key.Matches(msg, km.Dismiss), key.Matches(msg, km.FocusToolbar):
		m.zone = ZoneRegion
	}
	return m, nil
}

// updateMentionKey intercepts navigation while the candidate popup is open.
// Unhandled keys fall through to normal region editing so typing keeps
// refining the query.
func (m Model) updateMentionKey(msg tea.KeyMsg) (bool, Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.MentionUp):
		m.candidates.moveUp()
		return true, m, nil
	case key.Matches(msg, km.MentionDown):
		m.candidates.moveDown()
		return true, m, nil
	case key.Matches(msg, km.MentionAccept):
		return true, m.acceptHighlighted(), nil
	case km.AcceptTab && msg.Type == tea.KeyTab:
		return true, m.acceptHighlighted(), nil
	case key.Matches(msg, km.Dismiss):
		m.mention = MentionState{}
		m.candidates = candidateList{}
		return true, m, nil
	}
	return false, m, nil
}

func (m Model) updateRegionKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap

	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.region.InsertText(normalizeNewlines(string(msg.Runes)))
		return m.syncAfterEdit(), nil
	}

	switch {
	case key.Matches(msg, km.Bold):
		return m.Exec(CmdBold)
	case key.Matches(msg, km.Italic):
		return m.Exec(CmdItalic)
	case key.Matches(msg, km.OrderedList):
		return m.Exec(CmdOrderedList)
	case key.Matches(msg, km.UnorderedList):
		return m.Exec(CmdUnorderedList)
	case key.Matches(msg, km.Blockquote):
		return m.Exec(CmdBlockquote)
	case key.Matches(msg, km.CodeBlock):
		return m.Exec(CmdCodeBlock)
	case key.Matches(msg, km.Link):
		return m.Exec(CmdLink)
	case key.Matches(msg, km.Image):
		return m.Exec(CmdImage)
	case key.Matches(msg, km.Emoji):
		return m.Exec(CmdEmoji)

	case key.Matches(msg, km.FocusToolbar):
		m.saveSelection()
		m.zone = ZoneToolbar
		return m, nil

	case key.Matches(msg, km.Left):
		m.region.SetCaret(m.region.Caret() - 1)
		return m.afterCaretMove(), nil
	case key.Matches(msg, km.Right):
		m.region.SetCaret(m.region.Caret() + 1)
		return m.afterCaretMove(), nil
	case key.Matches(msg, km.Up):
		m.moveVertical(-1)
		return m.afterCaretMove(), nil
	case key.Matches(msg, km.Down):
		m.moveVertical(1)
		return m.afterCaretMove(), nil
	case key.Matches(msg, km.ShiftLeft):
		m.region.SetSelection(m.selAnchor(), m.region.Caret()-1)
		return m.afterCaretMove(), nil
	case key.Matches(msg, km.ShiftRight):
		m.region.SetSelection(m.selAnchor(), m.region.Caret()+1)
		return m.afterCaretMove(), nil
	case key.Matches(msg, km.Home):
		start, _ := m.region.BlockBounds(m.region.BlockIndexAt(m.region.Caret()))
		m.region.SetCaret(start)
		return m.afterCaretMove(), nil
	case key.Matches(msg, km.End):
		_, end := m.region.BlockBounds(m.region.BlockIndexAt(m.region.Caret()))
		m.region.SetCaret(end)
		return m.afterCaretMove(), nil

	case key.Matches(msg, km.Paste):
		return m.pasteFromClipboard(), nil
	case key.Matches(msg, km.Copy):
		return m.copyToClipboard(false), nil
	case key.Matches(msg, km.Cut):
		return m.copyToClipboard(true), nil

	case key.Matches(msg, km.Backspace):
		m.region.DeleteBackward(1)
		return m.syncAfterEdit(), nil
	case key.Matches(msg, km.Delete):
		m.region.DeleteForward()
		return m.syncAfterEdit(), nil
	case key.Matches(msg, km.Enter):
		m.region.InsertBreak()
		return m.syncAfterEdit(), nil

	case key.Matches(msg, km.Dismiss):
		// Nothing open; ignore.
		return m, nil
	}

	if msg.Type == tea.KeySpace {
		m.region.InsertText(" ")
		return m.syncAfterEdit(), nil
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
		m.region.InsertText(string(msg.Runes))
		return m.syncAfterEdit(), nil
	}
	return m, nil
}

// afterCaretMove refreshes the state that tracks the caret without emitting:
// the budget revert point follows the caret, a range selection kills the
// mention popup, and a visible popup re-anchors.
func (m Model) afterCaretMove() Model {
	m.lastValidCaret = m.region.Caret()
	m = m.rescanMention()
	if m.popupVisible() {
		m.reposition()
	}
	return m
}

func (m Model) selAnchor() int {
	if _, _, ok := m.region.Selection(); ok {
		return m.region.Anchor()
	}
	return m.region.Caret()
}

// moveVertical moves the caret across blocks, keeping the column when the
// target block is long enough.
func (m *Model) moveVertical(delta int) {
	caret := m.region.Caret()
	bi := m.region.BlockIndexAt(caret)
	target := bi + delta
	if target < 0 || target >= m.region.BlockCount() {
		return
	}
	start, _ := m.region.BlockBounds(bi)
	col := caret - start
	tStart, tEnd := m.region.BlockBounds(target)
	next := tStart + col
	if next > tEnd {
		next = tEnd
	}
	m.region.SetCaret(next)
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.cfg.MouseZones {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	for i := range toolbarButtons {
		if z := zone.Get(m.buttonZoneID(i)); z != nil && z.InBounds(msg) {
			// Mouse-down on a toolbar button is exactly the moment the
			// region is about to lose focus for a non-navigation reason.
			m.saveSelection()
			m.toolbarIdx = i
			m.zone = ZoneToolbar
			return m.Exec(toolbarButtons[i].cmd)
		}
	}

	if m.mention.Active {
		for i := range m.candidates.items {
			if z := zone.Get(m.candidateZoneID(i)); z != nil && z.InBounds(msg) {
				m.focused = true
				return m.acceptCandidate(i), nil
			}
		}
	}

	if m.emoji.visible {
		for i := range emojiSet {
			if z := zone.Get(m.emojiZoneID(i)); z != nil && z.InBounds(msg) {
				s := emojiSet[i]
				m.emoji.close()
				m.zone = ZoneRegion
				return m.InsertEmoji(s), nil
			}
		}
	}

	if z := zone.Get(m.regionZoneID()); z != nil && z.InBounds(msg) {
		x, y := z.Pos(msg)
		m.focused = true
		m.zone = ZoneRegion
		m.setCaretFromCell(y, x)
		return m.afterCaretMove(), nil
	}
	return m, nil
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
