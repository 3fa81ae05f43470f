package composer

import (
	"encoding/base64"
	"net/http"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/inklings/richarea/content"
)

// Command names a mutation the toolbar and key bindings can apply at the
// saved selection.
type Command uint8

const (
	CmdBold Command = iota
	CmdItalic
	CmdOrderedList
	CmdUnorderedList
	CmdBlockquote
	CmdCodeBlock
	CmdLink
	CmdImage
	CmdEmoji
)

const linkPromptPlaceholder = "https://"

type promptKind uint8

const (
	promptNone promptKind = iota
	promptLink
	promptImage
)

type prompt struct {
	kind  promptKind
	input textinput.Model
}

// Exec applies a named command. Focus returns to the region first, restoring
// the saved selection when the region was not already focused, so toolbar
// clicks format the text the user had selected rather than wherever focus
// went. Commands are suppressed mid-composition.
func (m Model) Exec(cmd Command) (Model, tea.Cmd) {
	if m.guard.composing {
		return m, nil
	}

	if !m.focused || m.zone != ZoneRegion {
		m.focused = true
		m.zone = ZoneRegion
		m.restoreSelection()
	}

	switch cmd {
	case CmdBold:
		m.region.ToggleMark(content.MarkBold)
	case CmdItalic:
		m.region.ToggleMark(content.MarkItalic)
	case CmdOrderedList:
		m.region.SetBlockKind(content.BlockOrderedList)
	case CmdUnorderedList:
		m.region.SetBlockKind(content.BlockUnorderedList)
	case CmdBlockquote:
		m.region.SetBlockKind(content.BlockQuote)
	case CmdCodeBlock:
		m.region.SetBlockKind(content.BlockCode)
	case CmdLink:
		return m.openPrompt(promptLink), nil
	case CmdImage:
		return m.openPrompt(promptImage), nil
	case CmdEmoji:
		return m.openEmoji(), nil
	default:
		// Unknown commands degrade to a no-op note; formatting is never
		// worth failing the edit over.
		m.notice = "unsupported command"
		return m, nil
	}

	return m.syncAfterEdit(), nil
}

// InsertEmoji inserts s (any text, typically a single emoji) at the saved
// selection.
func (m Model) InsertEmoji(s string) Model {
	if m.guard.composing || s == "" {
		return m
	}
	m.restoreSelection()
	m.region.InsertText(s)
	return m.syncAfterEdit()
}

func (m Model) openEmoji() Model {
	m.saveSelection()
	m.emoji.open()
	m.reposition()
	return m
}

func (m Model) openPrompt(kind promptKind) Model {
	m.saveSelection()
	in := textinput.New()
	switch kind {
	case promptLink:
		in.Placeholder = linkPromptPlaceholder
		in.Prompt = "url: "
	case promptImage:
		in.Placeholder = "path/to/image.png"
		in.Prompt = "image: "
	}
	in.Focus()
	m.prompt = prompt{kind: kind, input: in}
	m.reposition()
	return m
}

func (m Model) closePrompt() Model {
	m.prompt = prompt{}
	m.zone = ZoneRegion
	return m
}

// commitPrompt runs the prompt's action on enter.
func (m Model) commitPrompt() (Model, tea.Cmd) {
	value := m.prompt.input.Value()
	kind := m.prompt.kind
	m = m.closePrompt()

	switch kind {
	case promptLink:
		// Empty or untouched input is a no-op, matching the cancel path.
		if value == "" || value == linkPromptPlaceholder {
			return m, nil
		}
		m.restoreSelection()
		m.region.ApplyLink(value)
		return m.syncAfterEdit(), nil

	case promptImage:
		if value == "" {
			return m, nil
		}
		return m, loadImageCmd(value, m.cfg.ReadFile, m.cfg.UploadImage)
	}
	return m, nil
}

// imageResultMsg is the outcome of the asynchronous image load/upload.
type imageResultMsg struct {
	src      string
	alt      string
	degraded bool
	err      error
}

// loadImageCmd reads the file and resolves its source URL off the update
// loop: through the host's upload hook when present, as an inline data URL
// otherwise. The data-URL path trades persistence for availability and is
// flagged as degraded.
func loadImageCmd(path string, readFile func(string) ([]byte, error), upload func(ImageFile) (string, error)) tea.Cmd {
	return func() tea.Msg {
		data, err := readFile(path)
		if err != nil {
			return imageResultMsg{err: err}
		}
		file := ImageFile{Name: filepath.Base(path), Data: data}

		if upload != nil {
			src, err := upload(file)
			if err != nil || src == "" {
				return imageResultMsg{err: err}
			}
			return imageResultMsg{src: src, alt: file.Name}
		}

		mime := http.DetectContentType(data)
		src := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
		return imageResultMsg{src: src, alt: file.Name, degraded: true}
	}
}

func (m Model) applyImageResult(msg imageResultMsg) Model {
	if msg.err != nil || msg.src == "" {
		// Skipped insertion; surfacing the failure is the host's call.
		m.notice = "image insertion skipped"
		return m
	}
	m.restoreSelection()
	m.region.InsertInline(content.Span{
		Kind: content.SpanImage,
		Src:  msg.src,
		Text: msg.alt,
	})
	m = m.syncAfterEdit()
	if msg.degraded {
		m.notice = "image inlined as data URL (no upload hook)"
	}
	return m
}
