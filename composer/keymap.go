package composer

import (
	"reflect"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the composer key bindings.
//
// Bindings must be portable across terminals; block formats use alt chords
// because most ctrl letters are taken by editing and navigation.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	ShiftLeft, ShiftRight key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Copy, Cut, Paste key.Binding

	Bold, Italic   key.Binding
	OrderedList    key.Binding
	UnorderedList  key.Binding
	Blockquote     key.Binding
	CodeBlock      key.Binding
	Link           key.Binding
	Image          key.Binding
	Emoji          key.Binding

	FocusToolbar key.Binding
	Activate     key.Binding
	Dismiss      key.Binding

	MentionUp, MentionDown key.Binding
	MentionAccept          key.Binding
	// AcceptTab also accepts the highlighted candidate with tab.
	AcceptTab bool
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new block")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy selection")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut selection")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		Bold:          key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bold")),
		Italic:        key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "italic")),
		OrderedList:   key.NewBinding(key.WithKeys("alt+o"), key.WithHelp("alt+o", "ordered list")),
		UnorderedList: key.NewBinding(key.WithKeys("alt+u"), key.WithHelp("alt+u", "bullet list")),
		Blockquote:    key.NewBinding(key.WithKeys("alt+q"), key.WithHelp("alt+q", "quote")),
		CodeBlock:     key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "code block")),
		Link:          key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "link")),
		Image:         key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "image")),
		Emoji:         key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "emoji")),

		FocusToolbar: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "toolbar")),
		Activate:     key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "activate")),
		Dismiss:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),

		MentionUp:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous candidate")),
		MentionDown:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next candidate")),
		MentionAccept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept mention")),
		AcceptTab:     true,
	}
}

func normalizeKeyMap(km KeyMap) KeyMap {
	if reflect.DeepEqual(km, KeyMap{}) {
		return DefaultKeyMap()
	}
	return km
}
