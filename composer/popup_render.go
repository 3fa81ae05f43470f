package composer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

// compositePopups layers whichever popup is open over the base view. Popups
// composite instead of flowing in the layout, so nothing in the host can clip
// them; they open below the caret line and flip above when they would fall
// off the bottom.
func (m Model) compositePopups(base string) string {
	var popup string
	switch {
	case m.prompt.kind != promptNone:
		popup = m.renderPrompt()
	case m.emoji.visible:
		popup = m.renderEmojiGrid()
	case m.mention.Active && len(m.candidates.items) > 0:
		popup = m.renderCandidates()
	default:
		return base
	}

	rows := strings.Count(popup, "\n") + 1
	baseRows := strings.Count(base, "\n") + 1

	anchorY := m.anchor.Top - m.y
	anchorX := m.anchor.Left - m.x

	y := anchorY + 1
	if y+rows > baseRows && anchorY-rows >= 0 {
		y = anchorY - rows
	}
	y = clampInt(y, 0, maxCell(baseRows-rows, 0))

	width := lipgloss.Width(popup)
	x := clampInt(anchorX, 0, maxCell(m.width-width, 0))

	return overlay.Composite(popup, base, overlay.Left, overlay.Top, x, y)
}

func (m Model) renderCandidates() string {
	st := m.cfg.Style

	width := 0
	for _, c := range m.candidates.items {
		if w := runewidth.StringWidth(candidateRowText(c)); w > width {
			width = w
		}
	}
	if m.width > 0 && width > m.width-2 {
		width = maxCell(m.width-2, 1)
	}

	rows := make([]string, 0, len(m.candidates.items))
	for i, c := range m.candidates.items {
		style := st.PopupRow
		if i == m.candidates.highlight {
			style = st.PopupSelected
		}
		text := truncate.String(candidateRowText(c), uint(width))
		if pad := width - runewidth.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		row := style.Render(" " + text + " ")
		if m.cfg.MouseZones {
			row = zone.Mark(m.candidateZoneID(i), row)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

// candidateRowText shows the handle first and the display name as detail,
// matching what the filter matches against.
func candidateRowText(c Candidate) string {
	if c.DisplayName != "" && c.DisplayName != c.Username {
		return "@" + c.Username + "  " + c.DisplayName
	}
	return "@" + c.Username
}

func (m Model) renderEmojiGrid() string {
	st := m.cfg.Style
	var rows []string
	var row strings.Builder
	for i, e := range emojiSet {
		style := st.PopupRow
		if i == m.emoji.idx {
			style = st.PopupSelected
		}
		cell := style.Render(" " + e + " ")
		if m.cfg.MouseZones {
			cell = zone.Mark(m.emojiZoneID(i), cell)
		}
		row.WriteString(cell)
		if (i+1)%emojiCols == 0 {
			rows = append(rows, row.String())
			row.Reset()
		}
	}
	if row.Len() > 0 {
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderPrompt() string {
	st := m.cfg.Style
	width := 40
	if m.width > 0 && width > m.width-2 {
		width = maxCell(m.width-2, 10)
	}
	line := truncate.String(m.prompt.input.View(), uint(width))
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return st.PopupRow.Render(" " + line + " ")
}
