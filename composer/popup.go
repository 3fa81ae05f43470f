package composer

import (
	"github.com/mattn/go-runewidth"

	"github.com/inklings/richarea/internal/grapheme"
)

// PopupAnchor is the reference point for floating overlays, in screen cells.
// Popups composite over the base view rather than flowing in it, so ancestor
// clipping never truncates them.
type PopupAnchor struct {
	Top  int
	Left int
}

// reposition recomputes the popup anchor from the widget origin and the
// caret's display position. It runs when a popup becomes visible and when the
// widget's box changes while one is visible; there is no continuous tracking,
// popups are dismissed on blur and selection changes anyway.
func (m *Model) reposition() {
	row, col := m.caretCell()
	m.anchor = PopupAnchor{
		// One row above the caret's line; render flips below when the
		// popup cannot fit above.
		Top:  m.y + regionTopPad + row,
		Left: clampCell(m.x+col, m.x, m.x+maxCell(m.width-1, 0)),
	}
}

// caretCell returns the caret's (row, column) inside the region area: the row
// is the caret's block index, the column the display width of the text before
// the caret on that line plus the block prefix.
func (m *Model) caretCell() (row, col int) {
	caret := m.region.Caret()
	bi := m.region.BlockIndexAt(caret)
	start, _ := m.region.BlockBounds(bi)

	line := m.region.PlainText()
	before := grapheme.Slice(line, start, caret)
	return bi, runewidth.StringWidth(before) + blockPrefixWidth(m.region.BlockKindAt(caret))
}

func clampCell(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxCell(a, b int) int {
	if a > b {
		return a
	}
	return b
}
