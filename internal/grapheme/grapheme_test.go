package grapheme

import "testing"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + "👨‍👩‍👧‍👦" + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if got[2] != "👨‍👩‍👧‍👦" {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestCodePoints_CountsRunesNotClusters(t *testing.T) {
	if got, want := CodePoints("abc"), 3; got != want {
		t.Fatalf("code points=%d, want %d", got, want)
	}
	// One cluster, two code points.
	if got, want := CodePoints("é"), 2; got != want {
		t.Fatalf("code points=%d, want %d", got, want)
	}
	if got, want := CodePoints(""), 0; got != want {
		t.Fatalf("code points=%d, want %d", got, want)
	}
}

func TestSlice_GraphemeSafe(t *testing.T) {
	text := "a" + "é" + "👨‍👩‍👧‍👦" + "b"
	if got, want := Slice(text, 1, 3), "é👨‍👩‍👧‍👦"; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got := Slice(text, 5, 6); got != "" {
		t.Fatalf("slice past end=%q, want empty", got)
	}
}

func TestByteOffset(t *testing.T) {
	text := "a" + "é" + "b"
	if got, want := ByteOffset(text, 0), 0; got != want {
		t.Fatalf("offset 0=%d, want %d", got, want)
	}
	if got, want := ByteOffset(text, 1), 1; got != want {
		t.Fatalf("offset 1=%d, want %d", got, want)
	}
	if got, want := ByteOffset(text, 2), 1+len("é"); got != want {
		t.Fatalf("offset 2=%d, want %d", got, want)
	}
	if got, want := ByteOffset(text, 99), len(text); got != want {
		t.Fatalf("offset past end=%d, want %d", got, want)
	}
}

func TestClassifiers(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") {
		t.Fatalf("letter should not be space")
	}
	if !HasSpace("a b") {
		t.Fatalf("string with blank should have space")
	}
	if HasSpace("ab") {
		t.Fatalf("string without blank should not have space")
	}
}
