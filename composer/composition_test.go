package composer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCompositionSuppressesSyncUntilEnd(t *testing.T) {
	var count int
	m := New(Config{Users: testUsers(), OnChange: func(string) { count++ }})

	m, _ = m.Update(CompositionStartMsg{})
	if !m.Composing() {
		t.Fatalf("expected composing state")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("に")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ほ")})
	if count != 0 {
		t.Fatalf("preedit keystrokes emitted %d changes, want 0", count)
	}
	if got := m.PlainText(); got != "" {
		t.Fatalf("preedit leaked into region: %q", got)
	}

	m, _ = m.Update(CompositionEndMsg{Text: "日本語"})
	if got := m.PlainText(); got != "日本語" {
		t.Fatalf("committed text: got %q, want %q", got, "日本語")
	}
	if count != 1 {
		t.Fatalf("commit emits: got %d, want 1", count)
	}
	if m.Composing() {
		t.Fatalf("composition should be closed")
	}
}

func TestCompositionEndFallsBackToPreedit(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(CompositionUpdateMsg{Text: "かんじ"})
	m, _ = m.Update(CompositionEndMsg{})
	if got := m.PlainText(); got != "かんじ" {
		t.Fatalf("preedit fallback: got %q, want %q", got, "かんじ")
	}
}

func TestCompositionBackspaceTrimsPreedit(t *testing.T) {
	m := New(Config{})
	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = m.Update(CompositionEndMsg{})
	if got := m.PlainText(); got != "a" {
		t.Fatalf("trimmed preedit commit: got %q, want %q", got, "a")
	}
}

func TestCompositionSuppressesMentionScan(t *testing.T) {
	m := New(Config{Users: testUsers()})
	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(CompositionUpdateMsg{Text: "@al"})
	if m.MentionActive() {
		t.Fatalf("mention scan must not run on preedit text")
	}

	m, _ = m.Update(CompositionEndMsg{Text: "@al"})
	if !m.MentionActive() {
		t.Fatalf("mention scan should run once after commit")
	}
	if got := m.MentionQuery(); got != "al" {
		t.Fatalf("query: got %q, want %q", got, "al")
	}
}

func TestCompositionCommandsSuppressed(t *testing.T) {
	m := New(Config{})
	m.region.InsertText("text")
	m.region.SetSelection(0, 4)
	m, _ = m.Update(CompositionStartMsg{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	m, _ = m.Update(CompositionEndMsg{})
	if got := m.Value(); got != "<p>text</p>" {
		t.Fatalf("formatting applied mid-composition: %q", got)
	}
}
