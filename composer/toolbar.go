package composer

// toolbarButton pairs a command with its button face.
type toolbarButton struct {
	cmd   Command
	label string
	hint  string
}

var toolbarButtons = []toolbarButton{
	{cmd: CmdBold, label: "B", hint: "bold"},
	{cmd: CmdItalic, label: "I", hint: "italic"},
	{cmd: CmdOrderedList, label: "1.", hint: "ordered list"},
	{cmd: CmdUnorderedList, label: "•", hint: "bullet list"},
	{cmd: CmdBlockquote, label: "❝", hint: "quote"},
	{cmd: CmdCodeBlock, label: "</>", hint: "code block"},
	{cmd: CmdLink, label: "🔗", hint: "link"},
	{cmd: CmdImage, label: "🖼", hint: "image"},
	{cmd: CmdEmoji, label: "😀", hint: "emoji"},
}

func (m *Model) toolbarLeft() {
	if m.toolbarIdx > 0 {
		m.toolbarIdx--
	}
}

func (m *Model) toolbarRight() {
	if m.toolbarIdx < len(toolbarButtons)-1 {
		m.toolbarIdx++
	}
}
