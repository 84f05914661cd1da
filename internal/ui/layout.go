package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/gallery/internal/selection"
)

const (
	// headerLines covers the status header and the command bar.
	headerLines = 2
	// footerLines covers the status bar.
	footerLines = 1

	// wideLayoutWidth switches the list pane from 40% to 35% of the width.
	wideLayoutWidth = 160

	// previewFooterLines are the rows under the photo: caption, dimensions,
	// a spacer and the controls.
	previewFooterLines = 4

	// DefaultUIInterval is how often the model reads the store.
	DefaultUIInterval = time.Second
)

const (
	controlPrev = "← Prev"
	controlHint = "Use arrow keys to navigate"
	controlNext = "Next →"
	controlGap  = "   "
)

// layout holds screen geometry for one terminal size. Rendering and mouse
// hit-testing both derive from it.
type layout struct {
	contentTop    int
	contentHeight int

	listWidth      int
	listInnerWidth int
	listRows       int

	previewX     int
	previewWidth int
	previewCols  int
	imageRows    int

	controls  string
	controlsY int
	prevStart int
	prevEnd   int
	nextStart int
	nextEnd   int
}

func computeLayout(width, height int) layout {
	var l layout
	l.contentTop = headerLines
	l.contentHeight = max(height-headerLines-footerLines, 3)

	if width >= wideLayoutWidth {
		l.listWidth = width * 35 / 100
	} else {
		l.listWidth = width * 40 / 100
	}
	l.listWidth = max(l.listWidth, 3)
	l.listInnerWidth = l.listWidth - 2
	l.listRows = l.contentHeight - 2

	l.previewX = l.listWidth
	l.previewWidth = max(width-l.listWidth, 3)
	l.previewCols = l.previewWidth - 2
	innerRows := l.contentHeight - 2
	l.imageRows = max(innerRows-previewFooterLines, 0)

	l.controls = controlsText(l.previewCols)
	w := ansi.StringWidth(l.controls)
	pad := max((l.previewCols-w)/2, 0)
	l.controlsY = l.contentTop + innerRows
	l.prevStart = l.previewX + 1 + pad
	l.prevEnd = l.prevStart + ansi.StringWidth(controlPrev)
	l.nextEnd = l.prevStart + w
	l.nextStart = l.nextEnd - ansi.StringWidth(controlNext)
	return l
}

// controlsText returns the controls line, dropping the hint when it does not
// fit in width.
func controlsText(width int) string {
	full := controlPrev + controlGap + controlHint + controlGap + controlNext
	if ansi.StringWidth(full) <= width {
		return full
	}
	return controlPrev + controlGap + controlNext
}

// listRowAt maps a screen cell to a visible list row.
func (l layout) listRowAt(x, y int) (int, bool) {
	if x < 1 || x >= l.listWidth-1 {
		return 0, false
	}
	row := y - l.contentTop - 1
	if row < 0 || row >= l.listRows {
		return 0, false
	}
	return row, true
}

// controlAt maps a screen cell to the Prev or Next control.
func (l layout) controlAt(x, y int) (selection.Direction, bool) {
	if y != l.controlsY {
		return 0, false
	}
	switch {
	case x >= l.prevStart && x < l.prevEnd:
		return selection.Previous, true
	case x >= l.nextStart && x < l.nextEnd:
		return selection.Next, true
	}
	return 0, false
}

// inPreview reports whether x falls in the preview pane.
func (l layout) inPreview(x int) bool {
	return x >= l.previewX
}

// renderTitledBox renders content in a box with the title set into the top
// border: ┌─── Title ───┐. Focused boxes use the focus border and background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = ansi.Truncate(title, max(innerWidth-2, 0), "…")
	titleLen := ansi.StringWidth(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight+2)
	lines = append(lines, topBorder)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = ansi.Truncate(contentLines[i], innerWidth, "")
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}
	lines = append(lines, bottomBorder)
	return strings.Join(lines, "\n")
}

// truncate shortens s to width cells with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
