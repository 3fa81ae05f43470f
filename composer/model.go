package composer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/inklings/richarea/content"
)

// FocusZone identifies which part of the widget receives keys while the
// widget itself is focused.
type FocusZone uint8

const (
	ZoneRegion FocusZone = iota
	ZoneToolbar
)

// Model is a Bubble Tea component implementing the comment composer.
type Model struct {
	cfg    Config
	region *content.Region

	focused bool
	zone    FocusZone

	toolbarIdx int

	saved    selectionSnapshot
	hasSaved bool

	guard compositionGuard

	mention    MentionState
	candidates candidateList

	emoji emojiPicker

	prompt prompt

	anchor PopupAnchor

	width, height int
	x, y          int

	// Bridge state: the last value accepted as valid, the caret that went
	// with it, and the in-flight echo token.
	lastValid      string
	lastValidCaret int
	inflight       string
	hasInflight    bool

	notice string
}

// New builds a composer from cfg. The caret starts at the end of the initial
// value and the widget starts focused, like a freshly mounted comment box.
func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:     cfg,
		region:  content.NewRegion(cfg.Value),
		focused: true,
		zone:    ZoneRegion,
		width:   60,
	}
	m.lastValid = m.region.HTML()
	m.lastValidCaret = m.region.Caret()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Value returns the current HTML value of the region.
func (m Model) Value() string { return m.region.HTML() }

// PlainText returns the plain-text projection used for the budget.
func (m Model) PlainText() string { return m.region.PlainText() }

// Length returns the budget consumption in code points.
func (m Model) Length() int { return m.region.CodePoints() }

// Region exposes the underlying editable region, mainly for tests and
// advanced hosts.
func (m Model) Region() *content.Region { return m.region }

// Notice returns the last degraded-operation note (skipped image, rejected
// edit, unsupported command), empty when everything is healthy. It resets on
// the next accepted edit.
func (m Model) Notice() string { return m.notice }

// MentionActive reports whether the mention popup is open.
func (m Model) MentionActive() bool { return m.mention.Active }

// MentionQuery returns the live query while the mention popup is open.
func (m Model) MentionQuery() string { return m.mention.Query }

// Candidates returns the current filtered candidate window.
func (m Model) Candidates() []Candidate {
	return append([]Candidate(nil), m.candidates.items...)
}

// HighlightedCandidate returns the highlighted candidate, if any.
func (m Model) HighlightedCandidate() (Candidate, bool) {
	return m.candidates.highlighted()
}

// EmojiOpen reports whether the emoji picker is visible.
func (m Model) EmojiOpen() bool { return m.emoji.visible }

// Composing reports whether an IME composition is in progress.
func (m Model) Composing() bool { return m.guard.composing }

// Anchor returns the current popup anchor in screen coordinates.
func (m Model) Anchor() PopupAnchor { return m.anchor }

func (m Model) Focused() bool { return m.focused }

// Focus gives the widget keyboard focus, with keys going to the region.
func (m Model) Focus() Model {
	m.focused = true
	m.zone = ZoneRegion
	return m
}

// Blur removes keyboard focus. Popups are dismissed after a short grace
// period so that a click on a candidate can still land.
func (m Model) Blur() (Model, tea.Cmd) {
	m.focused = false
	if !m.mention.Active && !m.emoji.visible {
		return m, nil
	}
	return m, tea.Tick(m.cfg.BlurGrace, func(t time.Time) tea.Msg {
		return dismissPopupsMsg{}
	})
}

// SetSize sets the widget's outer size. The popup anchor follows while a
// popup is visible.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	if m.popupVisible() {
		m.reposition()
	}
	return m
}

// SetPosition tells the widget where its top-left corner sits on screen so
// popup anchors come out in viewport coordinates.
func (m Model) SetPosition(x, y int) Model {
	m.x = x
	m.y = y
	if m.popupVisible() {
		m.reposition()
	}
	return m
}

func (m Model) popupVisible() bool {
	return m.mention.Active || m.emoji.visible || m.prompt.kind != promptNone
}

// dismissPopupsMsg arrives after the blur grace period.
type dismissPopupsMsg struct{}
