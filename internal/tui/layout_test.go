package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestPageLayoutUpdate(t *testing.T) {
	cases := []struct {
		name           string
		width          int
		height         int
		bodyHeight     int
		viewportWidth  int
		viewportHeight int
		dialog         rect
	}{
		{name: "default", width: 80, height: 24, bodyHeight: 18, viewportWidth: 78, viewportHeight: 16, dialog: rect{x: 16, y: 10, width: 48, height: 3}},
		{name: "wide", width: 200, height: 50, bodyHeight: 44, viewportWidth: 198, viewportHeight: 42, dialog: rect{x: 40, y: 22, width: 120, height: 5}},
		{name: "tiny", width: 10, height: 5, bodyHeight: 3, viewportWidth: 8, viewportHeight: 1, dialog: rect{x: 0, y: 1, width: 10, height: 3}},
		{name: "unsized", width: 0, height: 0, bodyHeight: 18, viewportWidth: 78, viewportHeight: 16, dialog: rect{x: 16, y: 10, width: 48, height: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout := newPageLayout()
			layout.Update(tc.width, tc.height)
			if layout.bodyHeight != tc.bodyHeight {
				t.Fatalf("body height mismatch: got %d want %d", layout.bodyHeight, tc.bodyHeight)
			}
			if layout.viewportWidth != tc.viewportWidth {
				t.Fatalf("viewport width mismatch: got %d want %d", layout.viewportWidth, tc.viewportWidth)
			}
			if layout.viewportHeight != tc.viewportHeight {
				t.Fatalf("viewport height mismatch: got %d want %d", layout.viewportHeight, tc.viewportHeight)
			}
			if layout.dialog != tc.dialog {
				t.Fatalf("dialog rect mismatch: got %+v want %+v", layout.dialog, tc.dialog)
			}
		})
	}
}

func TestTitledPanelWidth(t *testing.T) {
	panel := titledPanel("files list", "row", 30, lipgloss.NewStyle(), lipgloss.NewStyle())
	lines := strings.Split(panel, "\n")
	if len(lines) != 3 {
		t.Fatalf("line count mismatch: got %d want 3\n%s", len(lines), panel)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 30 {
			t.Fatalf("line %d width mismatch: got %d want 30 (%q)", i, w, line)
		}
	}
	if !strings.Contains(lines[0], " files list ") {
		t.Fatalf("title missing from top border: %q", lines[0])
	}
}

func TestOverlaySplicesRows(t *testing.T) {
	base := strings.Join([]string{"aaaaaaaa", "bbbbbbbb", "cccccccc"}, "\n")
	got := overlay(base, "XY", 3, 1)
	want := strings.Join([]string{"aaaaaaaa", "bbbXYbbb", "cccccccc"}, "\n")
	if got != want {
		t.Fatalf("overlay mismatch:\n got %q\nwant %q", got, want)
	}

	got = overlay("ab", "XY", 4, 0)
	if got != "ab  XY" {
		t.Fatalf("overlay padding mismatch: got %q", got)
	}

	if got := overlay("ab", "XY", 0, 5); got != "ab" {
		t.Fatalf("overlay outside frame changed base: got %q", got)
	}
}

func TestOverlayKeepsRightColumns(t *testing.T) {
	cases := []struct {
		name string
		base string
		top  string
		x    int
		want string
	}{
		{name: "border survives", base: "|........|", top: "[ab]", x: 3, want: "|..[ab]..|"},
		{name: "overlay reaches edge", base: "abcdef", top: "XYZ", x: 3, want: "abcXYZ"},
		{name: "overlay past edge", base: "abc", top: "XYZ", x: 2, want: "abXYZ"},
		{name: "wide rune split", base: "a世界b", top: "X", x: 1, want: "aX 界b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := overlay(tc.base, tc.top, tc.x, 0); got != tc.want {
				t.Fatalf("overlay mismatch:\n got %q\nwant %q", got, tc.want)
			}
		})
	}
}

func TestSkipColumnsKeepsStyling(t *testing.T) {
	got := skipColumns("\x1b[1mabcdef\x1b[0m", 4)
	if want := "\x1b[1mef\x1b[0m"; got != want {
		t.Fatalf("skip mismatch: got %q want %q", got, want)
	}
	if got := skipColumns("abc", 3); got != "" {
		t.Fatalf("skipping the whole row should be empty, got %q", got)
	}
}

func TestDialogKeepsBodyBorder(t *testing.T) {
	m := newTestModel(t)
	press(t, m, runeKey('a'))
	lines := strings.Split(m.View(), "\n")
	row := lines[m.layout.dialog.y+1]
	if w := lipgloss.Width(row); w != m.layout.windowWidth {
		t.Fatalf("dialog row width mismatch: got %d want %d (%q)", w, m.layout.windowWidth, row)
	}
	if !strings.HasSuffix(row, "│") {
		t.Fatalf("body border missing right of dialog: %q", row)
	}
}
