package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gallery/internal/picsum"
)

// refreshList re-renders the list rows into the viewport and keeps the
// selection on screen.
func (m *Model) refreshList() {
	l := computeLayout(m.width, m.height)
	m.list.Width = l.listInnerWidth
	m.list.Height = l.listRows
	m.list.SetContent(m.renderListRows(l.listInnerWidth))

	idx := m.controller.Index()
	if idx < 0 {
		return
	}
	if idx < m.list.YOffset {
		m.list.SetYOffset(idx)
	} else if idx >= m.list.YOffset+m.list.Height {
		m.list.SetYOffset(idx - m.list.Height + 1)
	}
}

// renderListRows renders one "#id  author" row per image.
func (m Model) renderListRows(width int) string {
	images := m.controller.Images()
	if len(images) == 0 || width <= 0 {
		return ""
	}
	selected := m.controller.Index()

	lines := make([]string, len(images))
	for i, img := range images {
		if i == selected {
			lines[i] = m.formatListRow(img, width, m.theme.SelectionBg, true)
			continue
		}
		lines[i] = m.formatListRow(img, width, m.theme.FocusBg, false)
	}
	return strings.Join(lines, "\n")
}

func (m Model) formatListRow(img picsum.Image, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	id := "#" + img.ID
	author := truncate(img.DisplayAuthor(), width-len(id)-2)

	idStyle := styles.MutedText
	authorStyle := styles.Text
	if selected {
		idStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		authorStyle = idStyle.Bold(true)
	}

	content := bg.Render(truncate(id, width), idStyle)
	if author != "" {
		content += bg.Spaces(2) + bg.Render(author, authorStyle)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bgColor)).
		Width(width).
		Render(content)
}

// listTitle shows the position of the selection when there is one.
func (m Model) listTitle() string {
	n := len(m.controller.Images())
	if idx := m.controller.Index(); idx >= 0 {
		return fmt.Sprintf("Images %d/%d", idx+1, n)
	}
	return fmt.Sprintf("Images (%d)", n)
}

func (m Model) renderList(l layout) string {
	return m.renderTitledBox(m.listTitle(), m.list.View(), l.listWidth, l.contentHeight, true)
}
