package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.uber.org/zap"

	"github.com/inklings/richarea/composer"
)

// systemClipboard adapts atotto/clipboard to the composer's interface.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
func (systemClipboard) WriteText(s string) error  { return clipboard.WriteAll(s) }

type model struct {
	composer  composer.Model
	log       *zap.SugaredLogger
	value     string
	submitted []string
	width     int
}

func newModel(cfg demoConfig, log *zap.SugaredLogger) model {
	c := composer.New(composer.Config{
		Placeholder: cfg.Placeholder,
		MaxLength:   cfg.MaxLength,
		Users:       cfg.candidates(),
		Clipboard:   systemClipboard{},
		MouseZones:  cfg.Mouse,
		OnChange: func(html string) {
			log.Debugw("value changed", "len", len(html))
		},
	})
	// The composer sits below the submitted-comment list header.
	c = c.SetPosition(0, 2)
	return model{composer: c, log: log}
}

func (m model) Init() tea.Cmd { return m.composer.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.composer = m.composer.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			if v := m.composer.Value(); v != "" {
				m.submitted = append(m.submitted, v)
				m.log.Infow("comment submitted", "value", v)
				var cmd tea.Cmd
				m.composer, cmd = m.composer.Blur()
				m.composer = m.composer.SetValue("")
				m.composer = m.composer.Focus()
				return m, cmd
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	m.value = m.composer.Value()
	return m, cmd
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("richarea demo"))
	sb.WriteString(dimStyle.Render("  ctrl+s submit · ctrl+c quit · tab toolbar · @ mentions"))
	sb.WriteString("\n\n")
	sb.WriteString(m.composer.View())
	sb.WriteString("\n\n")
	for i, v := range m.submitted {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("#%d %s", i+1, v)))
		sb.WriteByte('\n')
	}
	return zone.Scan(sb.String())
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
	}
	log, cleanup, err := newLogger(cfg.LogFile, cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer cleanup()

	zone.NewGlobal()
	defer zone.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(newModel(cfg, log), opts...).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
