package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/gallery/internal/selection"
)

// handleMouse maps clicks on list rows to Select, clicks on the controls to
// Navigate, and the wheel to Navigate.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready || m.showHelp || len(m.controller.Images()) == 0 {
		return m, nil
	}
	l := computeLayout(m.width, m.height)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.controller.Navigate(selection.Previous)
		cmd := m.sync()
		return m, cmd

	case tea.MouseButtonWheelDown:
		m.controller.Navigate(selection.Next)
		cmd := m.sync()
		return m, cmd

	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		if row, ok := l.listRowAt(msg.X, msg.Y); ok {
			images := m.controller.Images()
			idx := row + m.list.YOffset
			if idx >= len(images) {
				return m, nil
			}
			m.controller.Select(images[idx])
			cmd := m.sync()
			return m, cmd
		}
		if l.inPreview(msg.X) {
			if dir, ok := l.controlAt(msg.X, msg.Y); ok {
				m.controller.Navigate(dir)
				cmd := m.sync()
				return m, cmd
			}
		}
	}
	return m, nil
}
