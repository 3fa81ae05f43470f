package composer

import (
	"os"
	"time"
)

const (
	defaultMaxLength     = 1000
	defaultMaxCandidates = 10
	defaultMaxQueryLen   = 15
	defaultBlurGrace     = 150 * time.Millisecond
)

// ImageFile is the payload handed to the host's upload hook.
type ImageFile struct {
	Name string
	Data []byte
}

// Config configures the composer Model.
type Config struct {
	// Initial rich-content HTML value. The host stays the owner of the
	// value; see SetValue and OnChange.
	Value string

	// Shown in the empty, unfocused region.
	Placeholder string

	// Plain-text character ceiling in Unicode code points. Mutations that
	// would exceed it are reverted. Defaults to 1000.
	MaxLength int

	// Directory for @mention filtering.
	Users []Candidate

	// Invoked once per accepted mutation with the new HTML value.
	OnChange func(html string)

	// Optional upload hook for inserted images. It runs inside a tea.Cmd.
	// Returning an empty string skips the insertion. When nil, images are
	// inlined as data URLs and the composer reports degraded mode through
	// Notice.
	UploadImage func(file ImageFile) (string, error)

	// ReadFile loads the file behind the image prompt. Defaults to
	// os.ReadFile; tests substitute it.
	ReadFile func(path string) ([]byte, error)

	// Optional system clipboard. When nil, copy, cut, and paste bindings
	// are inert.
	Clipboard Clipboard

	KeyMap KeyMap
	Style  Style

	// Mention window bounds. Defaults: 10 candidates, 15-character query.
	MaxCandidates int
	MaxQueryLen   int

	// MouseZones enables bubblezone marks for toolbar, candidate, and emoji
	// hit testing. The host must call zone.NewGlobal() and wrap its root
	// view with zone.Scan.
	MouseZones bool

	// Grace period between blur and popup dismissal, so a click on a
	// candidate still lands. Defaults to 150ms.
	BlurGrace time.Duration
}

func normalizeConfig(cfg Config) Config {
	if cfg.MaxLength <= 0 {
		cfg.MaxLength = defaultMaxLength
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = defaultMaxCandidates
	}
	if cfg.MaxQueryLen <= 0 {
		cfg.MaxQueryLen = defaultMaxQueryLen
	}
	if cfg.BlurGrace <= 0 {
		cfg.BlurGrace = defaultBlurGrace
	}
	if cfg.ReadFile == nil {
		cfg.ReadFile = os.ReadFile
	}
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	cfg.Style = normalizeStyle(cfg.Style)
	return cfg
}
