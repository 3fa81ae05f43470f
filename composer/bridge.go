package composer

// The bridge is the boundary contract with the consuming form. The region is
// authoritative while it has focus; the host value is authoritative while it
// does not. Outbound changes carry an in-flight token so the host's echo of
// the value we just emitted can never overwrite newer region state.

// SetValue feeds the host-owned value into the composer. While the region has
// focus the call is ignored: overwriting the live region would destroy the
// caret and any in-progress composition. When unfocused, a differing value
// replaces the content wholesale and invalidates selection snapshots.
func (m Model) SetValue(v string) Model {
	if m.focused && m.zone == ZoneRegion {
		return m
	}
	if m.hasInflight && v == m.inflight {
		m.hasInflight = false
		return m
	}
	if v == m.region.HTML() {
		return m
	}
	m.region.SetHTML(v)
	m.lastValid = v
	m.lastValidCaret = m.region.Caret()
	m.hasInflight = false
	return m
}

// emitChange forwards the region's value to the host, once per logical edit.
// Caret-only changes do not emit.
func (m Model) emitChange() Model {
	html := m.region.HTML()
	if html == m.lastValid {
		m.lastValidCaret = m.region.Caret()
		return m
	}
	m.lastValid = html
	m.lastValidCaret = m.region.Caret()
	m.inflight = html
	m.hasInflight = true
	m.notice = ""
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(html)
	}
	return m
}

// syncAfterEdit runs the post-mutation pipeline: length enforcement, host
// emission, mention re-scan, and popup repositioning. It is a single funnel
// so every mutation path behaves identically, and it does nothing while a
// composition is open.
func (m Model) syncAfterEdit() Model {
	if m.guard.composing {
		return m
	}
	if m.enforceLength() {
		// Rejected: region reverted, nothing to emit, but the caret may
		// have moved so the mention state still needs a fresh scan.
		return m.rescanMention()
	}
	m = m.emitChange()
	m = m.rescanMention()
	if m.popupVisible() {
		m.reposition()
	}
	return m
}
