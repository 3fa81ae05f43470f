package grapheme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// CodePoints returns the number of Unicode code points in text.
//
// The character budget is accounted in code points, not clusters, so a
// combining sequence costs what it is made of.
func CodePoints(text string) int {
	return utf8.RuneCountInString(text)
}

// Slice returns the grapheme-safe substring for [start, end).
func Slice(text string, start, end int) string {
	if text == "" {
		return ""
	}
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}

	g := uniseg.NewGraphemes(text)
	idx := 0
	var sb strings.Builder
	for g.Next() {
		if idx >= end {
			break
		}
		if idx >= start {
			sb.WriteString(g.Str())
		}
		idx++
	}
	if start >= idx {
		return ""
	}
	return sb.String()
}

// ByteOffset returns the byte offset of the cluster at grapheme index idx.
// An idx at or past the end returns len(text).
func ByteOffset(text string, idx int) int {
	if idx <= 0 {
		return 0
	}
	off := 0
	state := -1
	rest := text
	for len(rest) > 0 && idx > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.StepString(rest, state)
		off += len(cluster)
		idx--
	}
	return off
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// HasSpace reports whether text contains any Unicode whitespace rune.
func HasSpace(text string) bool {
	return strings.IndexFunc(text, unicode.IsSpace) >= 0
}
