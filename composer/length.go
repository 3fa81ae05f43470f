package composer

import "fmt"

// enforceLength checks the budget after a mutation has already landed and
// reverts the region to the last valid value when it is over. Enforcement is
// post-hoc: pre-validating arbitrary edits would mean reimplementing the
// editing primitives.
func (m *Model) enforceLength() (rejected bool) {
	if m.region.CodePoints() <= m.cfg.MaxLength {
		return false
	}
	m.region.SetHTML(m.lastValid)
	m.region.SetCaret(m.lastValidCaret)
	m.notice = fmt.Sprintf("comment is limited to %d characters", m.cfg.MaxLength)
	return true
}

// BudgetUsed returns consumed and maximum code points for display.
func (m Model) BudgetUsed() (used, max int) {
	return m.region.CodePoints(), m.cfg.MaxLength
}
