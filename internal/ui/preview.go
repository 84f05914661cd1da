package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gallery/internal/imgview"
	"github.com/five82/gallery/internal/picsum"
)

// previewMsg carries a rendered preview. key identifies the image and pane
// size it was rendered for; results for any other key are stale.
type previewMsg struct {
	key string
	art string
	err error
}

func loadPreviewCmd(ctx context.Context, p *imgview.Previewer, img picsum.Image, cols, rows int, key string) tea.Cmd {
	return func() tea.Msg {
		art, err := p.Preview(ctx, img, cols, rows)
		return previewMsg{key: key, art: art, err: err}
	}
}

// syncPreview points the preview at the current selection and pane size,
// starting a fetch when the rendition is not cached.
func (m *Model) syncPreview() tea.Cmd {
	img, ok := m.controller.Selection()
	if !ok {
		m.previewKey = ""
		m.preview = ""
		m.previewErr = nil
		m.previewLoading = false
		return nil
	}

	l := computeLayout(m.width, m.height)
	key := imgview.Key(img.ID, l.previewCols, l.imageRows)
	if key == m.previewKey {
		return nil
	}
	m.previewKey = key
	m.preview = ""
	m.previewErr = nil
	m.previewLoading = false

	if m.previewer == nil || l.previewCols <= 0 || l.imageRows <= 0 {
		return nil
	}
	if art, ok := m.previewer.Cached(img, l.previewCols, l.imageRows); ok {
		m.preview = art
		return nil
	}
	m.previewLoading = true
	return loadPreviewCmd(m.ctx, m.previewer, img, l.previewCols, l.imageRows, key)
}

func (m Model) renderPreview(l layout) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	innerRows := l.contentHeight - 2

	img, ok := m.controller.Selection()
	if !ok {
		msg := styles.MutedText.Render("Select an image to preview")
		content := lipgloss.Place(l.previewCols, innerRows, lipgloss.Center, lipgloss.Center, msg)
		return m.renderTitledBox("Preview", content, l.previewWidth, l.contentHeight, false)
	}

	var art string
	switch {
	case m.previewLoading:
		art = m.spinner.View() + " " + styles.MutedText.Render("Loading preview…")
	case m.previewErr != nil:
		art = styles.DangerText.Render(truncate("Preview unavailable: "+m.previewErr.Error(), l.previewCols))
	default:
		art = m.preview
	}

	lines := make([]string, 0, innerRows)
	if l.imageRows > 0 {
		block := lipgloss.Place(l.previewCols, l.imageRows, lipgloss.Center, lipgloss.Center, art)
		lines = append(lines, strings.Split(block, "\n")...)
	}

	center := func(s string) string {
		return lipgloss.PlaceHorizontal(l.previewCols, lipgloss.Center, s)
	}
	lines = append(lines,
		center(styles.Text.Bold(true).Render(truncate("Photo by "+img.DisplayAuthor(), l.previewCols))),
		center(styles.FaintText.Render(img.Dimensions())),
		"",
		m.renderControls(l),
	)
	if len(lines) > innerRows {
		lines = lines[len(lines)-innerRows:]
	}

	return m.renderTitledBox("Preview #"+img.ID, strings.Join(lines, "\n"), l.previewWidth, l.contentHeight, false)
}

// renderControls lays out the controls line at the columns controlAt expects.
func (m Model) renderControls(l layout) string {
	bg := NewBgStyle(m.theme.SurfaceAlt)
	styles := m.theme.Styles()

	pad := l.prevStart - l.previewX - 1
	out := bg.Spaces(pad) + bg.Render(controlPrev, styles.AccentText.Bold(true)) + bg.Spaces(len(controlGap))
	if strings.Contains(l.controls, controlHint) {
		out += bg.Render(controlHint, styles.MutedText) + bg.Spaces(len(controlGap))
	}
	return out + bg.Render(controlNext, styles.AccentText.Bold(true))
}
