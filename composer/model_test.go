package composer

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

// harness adapts the composer to tea.Model for program-level tests.
type harness struct {
	composer Model
}

func (h harness) Init() tea.Cmd { return h.composer.Init() }

func (h harness) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		return h, tea.Quit
	}
	var cmd tea.Cmd
	h.composer, cmd = h.composer.Update(msg)
	return h, cmd
}

func (h harness) View() string { return h.composer.View() }

func TestProgramTypingAndMentionFlow(t *testing.T) {
	tm := teatest.NewTestModel(t,
		harness{composer: New(Config{Users: testUsers(), MaxLength: 200})},
		teatest.WithInitialTermSize(80, 24),
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ping ")})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("@al")})

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Alice Liddell"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("ping @Alice Liddell"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.QuitMsg{})

	final, ok := tm.FinalModel(t).(harness)
	if !ok {
		t.Fatalf("final model: got %T", tm.FinalModel(t))
	}
	if got, want := final.composer.PlainText(), "ping @Alice Liddell "; got != want {
		t.Fatalf("final text: got %q, want %q", got, want)
	}
}

func TestProgramBudgetNotice(t *testing.T) {
	tm := teatest.NewTestModel(t,
		harness{composer: New(Config{MaxLength: 4})},
		teatest.WithInitialTermSize(80, 24),
	)

	for _, r := range "abcde" {
		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("limited to 4 characters"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.QuitMsg{})
	final := tm.FinalModel(t).(harness)
	if got := final.composer.PlainText(); got != "abcd" {
		t.Fatalf("final text: got %q, want %q", got, "abcd")
	}
}
