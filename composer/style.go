package composer

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
)

// Style controls the composer's rendering.
type Style struct {
	Text        lipgloss.Style
	Placeholder lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Preedit     lipgloss.Style

	Bold   lipgloss.Style
	Italic lipgloss.Style
	Code   lipgloss.Style

	Mention lipgloss.Style
	Link    lipgloss.Style
	Image   lipgloss.Style

	QuotePrefix lipgloss.Style
	ListPrefix  lipgloss.Style
	CodeBlock   lipgloss.Style

	ToolbarButton lipgloss.Style
	ToolbarActive lipgloss.Style

	PopupRow      lipgloss.Style
	PopupSelected lipgloss.Style

	Budget     lipgloss.Style
	BudgetWarn lipgloss.Style
	Notice     lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Text:        lipgloss.NewStyle(),
		Placeholder: dim,
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Preedit:     lipgloss.NewStyle().Underline(true),

		Bold:   lipgloss.NewStyle().Bold(true),
		Italic: lipgloss.NewStyle().Italic(true),
		Code:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		Mention: lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Link:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Underline(true),
		Image:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),

		QuotePrefix: dim,
		ListPrefix:  dim,
		CodeBlock:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),

		ToolbarButton: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ToolbarActive: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Reverse(true),

		PopupRow:      lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("252")),
		PopupSelected: lipgloss.NewStyle().Background(lipgloss.Color("238")).Foreground(lipgloss.Color("15")).Bold(true),

		Budget:     dim,
		BudgetWarn: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
	}
}

func normalizeStyle(s Style) Style {
	if reflect.DeepEqual(s, Style{}) {
		return DefaultStyle()
	}
	return s
}
