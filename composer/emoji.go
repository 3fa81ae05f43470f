package composer

// The picker offers a fixed grid; hosts needing a full emoji set can insert
// arbitrary text through InsertEmoji.
var emojiSet = []string{
	"😀", "😄", "😅", "😂", "🙂", "😉", "😍", "🤔",
	"😐", "😢", "😭", "😡", "🥳", "😴", "🤯", "😱",
	"👍", "👎", "👏", "🙏", "💪", "🤝", "👀", "💯",
	"❤️", "🔥", "✨", "🎉", "🚀", "⚡", "🌟", "☕",
	"✅", "❌", "❓", "💡", "📌", "📷", "🔗", "🎯",
}

const emojiCols = 8

type emojiPicker struct {
	visible bool
	idx     int
}

func (e *emojiPicker) open() {
	e.visible = true
	e.idx = 0
}

func (e *emojiPicker) close() {
	e.visible = false
}

func (e *emojiPicker) move(dRow, dCol int) {
	next := e.idx + dRow*emojiCols + dCol
	if next < 0 || next >= len(emojiSet) {
		return
	}
	e.idx = next
}

func (e emojiPicker) selected() string {
	return emojiSet[e.idx]
}
