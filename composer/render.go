package composer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/inklings/richarea/content"
	"github.com/inklings/richarea/internal/grapheme"
)

// regionTopPad is the number of rows above the first content line: the
// toolbar occupies row zero, so caret row n sits at screen row n+1.
const regionTopPad = 1

func (m Model) regionZoneID() string { return "richarea.region" }

func (m Model) buttonZoneID(i int) string { return fmt.Sprintf("richarea.toolbar.%d", i) }

func (m Model) candidateZoneID(i int) string { return fmt.Sprintf("richarea.candidate.%d", i) }

func (m Model) emojiZoneID(i int) string { return fmt.Sprintf("richarea.emoji.%d", i) }

// View renders the toolbar, the editable region, and the status line, then
// composites any open popup over the result.
func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.renderToolbar())
	sb.WriteByte('\n')

	body := m.renderRegion()
	if m.cfg.MouseZones {
		body = zone.Mark(m.regionZoneID(), body)
	}
	sb.WriteString(body)
	sb.WriteByte('\n')
	sb.WriteString(m.renderStatus())

	return m.compositePopups(sb.String())
}

func (m Model) renderToolbar() string {
	st := m.cfg.Style
	parts := make([]string, 0, len(toolbarButtons))
	for i, b := range toolbarButtons {
		style := st.ToolbarButton
		if m.zone == ZoneToolbar && i == m.toolbarIdx {
			style = st.ToolbarActive
		}
		face := style.Render(" " + b.label + " ")
		if m.cfg.MouseZones {
			face = zone.Mark(m.buttonZoneID(i), face)
		}
		parts = append(parts, face)
	}
	line := strings.Join(parts, " ")
	if m.zone == ZoneToolbar && m.toolbarIdx >= 0 && m.toolbarIdx < len(toolbarButtons) {
		line += " " + st.Placeholder.Render(toolbarButtons[m.toolbarIdx].hint)
	}
	return line
}

func (m Model) renderRegion() string {
	if m.region.PlainText() == "" && !m.guard.composing {
		if m.focused && m.zone == ZoneRegion {
			return m.cfg.Style.Cursor.Render(" ") + m.cfg.Style.Placeholder.Render(m.cfg.Placeholder)
		}
		return m.cfg.Style.Placeholder.Render(m.cfg.Placeholder)
	}

	blocks := m.region.Blocks()
	lines := make([]string, 0, len(blocks))
	offset := 0
	ordinal := 0
	for i, b := range blocks {
		if b.Kind == content.BlockOrderedList {
			ordinal++
		} else {
			ordinal = 0
		}
		lines = append(lines, m.renderBlock(b, i, offset, ordinal))
		offset += b.Len() + 1 // separator
	}
	return strings.Join(lines, "\n")
}

// renderBlock paints one block line: prefix, then the spans grapheme by
// grapheme so the cursor, the selection, and the preedit can interleave with
// span styling at any offset.
func (m Model) renderBlock(b content.Block, blockIdx, blockStart, ordinal int) string {
	st := m.cfg.Style
	caret := m.region.Caret()
	selStart, selEnd, hasSel := m.region.Selection()
	showCursor := m.focused && m.zone == ZoneRegion && !hasSel

	var sb strings.Builder
	sb.WriteString(m.renderPrefix(b.Kind, ordinal))

	g := blockStart
	for _, sp := range b.Spans {
		if sp.Kind == content.SpanImage {
			// Zero budget width, but it still needs a visible face.
			sb.WriteString(st.Image.Render("[img:" + imageAlt(sp) + "]"))
			continue
		}
		base := m.spanStyle(sp, b.Kind)
		for _, gr := range grapheme.Split(sp.Text) {
			switch {
			case showCursor && g == caret && m.guard.composing:
				sb.WriteString(st.Preedit.Render(m.guard.preedit))
				sb.WriteString(st.Cursor.Render(gr))
			case showCursor && g == caret:
				sb.WriteString(st.Cursor.Render(gr))
			case hasSel && g >= selStart && g < selEnd:
				sb.WriteString(st.Selection.Render(gr))
			default:
				sb.WriteString(base.Render(gr))
			}
			g++
		}
	}

	blockEnd := g
	if showCursor && caret == blockEnd && m.region.BlockIndexAt(caret) == blockIdx {
		if m.guard.composing {
			sb.WriteString(st.Preedit.Render(m.guard.preedit))
		}
		sb.WriteString(st.Cursor.Render(" "))
	}

	line := sb.String()
	if m.width > 0 {
		line = truncate.String(line, uint(m.width))
	}
	return line
}

func (m Model) renderPrefix(kind content.BlockKind, ordinal int) string {
	st := m.cfg.Style
	switch kind {
	case content.BlockOrderedList:
		return st.ListPrefix.Render(fmt.Sprintf("%d. ", ordinal))
	case content.BlockUnorderedList:
		return st.ListPrefix.Render("• ")
	case content.BlockQuote:
		return st.QuotePrefix.Render("│ ")
	default:
		return ""
	}
}

// blockPrefixWidth mirrors renderPrefix for hit-testing and popup anchoring.
// Ordered prefixes are assumed single digit; past nine items the anchor may
// drift a cell, which the popup clamp absorbs.
func blockPrefixWidth(kind content.BlockKind) int {
	switch kind {
	case content.BlockOrderedList:
		return 3
	case content.BlockUnorderedList, content.BlockQuote:
		return 2
	default:
		return 0
	}
}

func (m Model) spanStyle(sp content.Span, blockKind content.BlockKind) lipgloss.Style {
	st := m.cfg.Style
	switch sp.Kind {
	case content.SpanMention:
		return st.Mention
	case content.SpanLink:
		return st.Link
	}
	if blockKind == content.BlockCode {
		return st.CodeBlock
	}
	style := st.Text
	if sp.Marks.Has(content.MarkBold) {
		style = style.Inherit(st.Bold)
	}
	if sp.Marks.Has(content.MarkItalic) {
		style = style.Inherit(st.Italic)
	}
	if sp.Marks.Has(content.MarkCode) {
		style = style.Inherit(st.Code)
	}
	return style
}

func imageAlt(sp content.Span) string {
	if sp.Text != "" {
		return sp.Text
	}
	return "image"
}

func (m Model) renderStatus() string {
	st := m.cfg.Style
	used, max := m.BudgetUsed()
	budgetStyle := st.Budget
	if max > 0 && max-used <= max/10 {
		budgetStyle = st.BudgetWarn
	}
	budget := budgetStyle.Render(fmt.Sprintf("%d/%d", used, max))

	left := ""
	if m.notice != "" {
		left = st.Notice.Render(m.notice)
	}

	if m.width <= 0 {
		if left == "" {
			return budget
		}
		return left + " " + budget
	}
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(budget)
	if gap < 1 {
		left = truncate.String(left, uint(maxCell(m.width-lipgloss.Width(budget)-1, 0)))
		gap = maxCell(m.width-lipgloss.Width(left)-lipgloss.Width(budget), 1)
	}
	return left + strings.Repeat(" ", gap) + budget
}

// setCaretFromCell maps a click inside the region zone to a caret offset:
// the row picks the block, the column walks graphemes by display width.
func (m *Model) setCaretFromCell(row, col int) {
	bi := clampInt(row, 0, m.region.BlockCount()-1)
	start, end := m.region.BlockBounds(bi)
	col -= blockPrefixWidth(m.region.BlockKindAt(start))

	text := grapheme.Slice(m.region.PlainText(), start, end)
	cells := 0
	pos := start
	for _, gr := range grapheme.Split(text) {
		w := runewidth.StringWidth(gr)
		if cells+w > col {
			break
		}
		cells += w
		pos++
	}
	m.region.SetCaret(pos)
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
