package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/ansi"
	"github.com/muesli/reflow/truncate"
)

type rect struct {
	x, y          int
	width, height int
}

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	bodyHeight     int
	viewportWidth  int
	viewportHeight int
	dialog         rect
}

func newPageLayout() pageLayout {
	l := pageLayout{}
	l.Update(defaultWidth, defaultHeight)
	return l
}

// Update recomputes the header/body/footer split and the dialog overlay for a
// window of the given size.
func (l *pageLayout) Update(width, height int) {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	l.windowWidth = width
	l.windowHeight = height

	l.bodyHeight = height - headerHeight - footerHeight
	if l.bodyHeight < minBodyRows {
		l.bodyHeight = minBodyRows
	}
	// Borders take one cell on each side; the title sits in the top border.
	l.viewportWidth = width - 2
	if l.viewportWidth < 1 {
		l.viewportWidth = 1
	}
	l.viewportHeight = l.bodyHeight - 2
	if l.viewportHeight < 1 {
		l.viewportHeight = 1
	}
	l.dialog = centeredRect(dialogWidthPercent, dialogHeightPercent, width, height)
}

func centeredRect(percentX, percentY, width, height int) rect {
	w := width * percentX / 100
	if w < minDialogWidth {
		w = minDialogWidth
	}
	if w > width {
		w = width
	}
	h := height * percentY / 100
	if h < minDialogHeight {
		h = minDialogHeight
	}
	if h > height {
		h = height
	}
	return rect{
		x:      (width - w) / 2,
		y:      (height - h) / 2,
		width:  w,
		height: h,
	}
}

// titledPanel renders body inside a rounded border of the given outer width
// with title drawn into the top edge.
func titledPanel(title, body string, width int, border lipgloss.Style, content lipgloss.Style) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	edges := lipgloss.RoundedBorder()
	label := ""
	if title != "" && inner > 2 {
		label = truncate.String(" "+title+" ", uint(inner-1))
	}
	fill := inner - 1 - lipgloss.Width(label)
	if label == "" {
		fill = inner
	}
	var top strings.Builder
	top.WriteString(edges.TopLeft)
	if label != "" {
		top.WriteString(edges.Top)
		top.WriteString(label)
	}
	if fill > 0 {
		top.WriteString(strings.Repeat(edges.Top, fill))
	}
	top.WriteString(edges.TopRight)

	box := content.Copy().
		Border(edges).
		BorderTop(false).
		BorderForeground(border.GetForeground()).
		Width(inner).
		Render(body)
	return border.Render(top.String()) + "\n" + box
}

// overlay splices the lines of top into base with its top-left corner at
// (x, y). Base columns on either side of the overlay stay visible.
func overlay(base, top string, x, y int) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")
	for i, line := range topLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		left := truncate.String(baseLines[row], uint(x))
		if pad := x - lipgloss.Width(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := skipColumns(baseLines[row], x+lipgloss.Width(line))
		baseLines[row] = left + line + right
	}
	return strings.Join(baseLines, "\n")
}

// skipColumns drops the first n printable cells of s. Escape sequences are
// kept so styling that starts before the cut still applies after it. A wide
// rune split by the cut is replaced with spaces.
func skipColumns(s string, n int) string {
	var (
		out     strings.Builder
		col     int
		inEsc   bool
		escapes strings.Builder
	)
	for _, r := range s {
		if r == ansi.Marker {
			inEsc = true
		}
		if inEsc {
			if col < n {
				escapes.WriteRune(r)
			} else {
				out.WriteRune(r)
			}
			if ansi.IsTerminator(r) {
				inEsc = false
			}
			continue
		}
		w := runewidth.RuneWidth(r)
		if col >= n {
			out.WriteRune(r)
			continue
		}
		col += w
		if col > n {
			out.WriteString(strings.Repeat(" ", col-n))
		}
	}
	if out.Len() == 0 {
		return ""
	}
	return escapes.String() + out.String()
}
