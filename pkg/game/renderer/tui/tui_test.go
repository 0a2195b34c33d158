package tui

import (
	"bytes"
	"strings"
	"testing"

	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/renderer"
)

func openRoom(t *testing.T) *generator.Result {
	t.Helper()
	res, err := generator.Generate(generator.Config{Width: 6, Height: 4, Threshold: 1})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return res
}

func TestPlainMatchesDumpSymbols(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlain(&buf)
	r.Init()
	renderer.Feed(r, openRoom(t))
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := "" +
		"######\n" +
		"#@...#\n" +
		"#....#\n" +
		"######\n"
	if got := buf.String(); got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestIconsWithoutColourOffTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Caption = "caption line"
	r.Init()
	renderer.Feed(r, openRoom(t))
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Error("output to a buffer contains ANSI escapes")
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("lines = %d, want 6 (map, legend, caption)", len(lines))
	}
	if lines[1] != IconWallEdge+IconEntry+IconFloor+IconFloor+IconFloor+IconWallEdge {
		t.Errorf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[4], "entry") || !strings.Contains(lines[4], "obstacle") {
		t.Errorf("legend = %q", lines[4])
	}
	if lines[5] != "caption line" {
		t.Errorf("caption = %q", lines[5])
	}
}

func TestResetClearsPreviousMap(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlain(&buf)
	r.Init()
	renderer.Feed(r, openRoom(t))
	r.Reset()
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Flush after Reset wrote %q", buf.String())
	}
}
