package ui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gallery/internal/state"
)

// renderHeader renders the status line: logo, source status and freshness.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	s := m.snapshot

	parts := []string{bg.Render("gallery", styles.Logo)}
	switch {
	case s.Status == state.StatusLoading && !s.HasImages:
		parts = append(parts,
			m.spinner.View()+bg.Space()+bg.Render("Loading images…", styles.WarningText.Bold(true)))

	case s.Status == state.StatusError && !s.HasImages:
		parts = append(parts,
			bg.Render("Failed to load images: "+errText(s.LastError, 60), styles.DangerText))
		if s.ConsecutiveFailures > 0 {
			parts = append(parts, bg.Render(fmt.Sprintf("attempt %d", s.ConsecutiveFailures), styles.MutedText))
		}
		if !s.NextRetry.IsZero() {
			parts = append(parts, bg.Render("retry "+s.NextRetry.Format("15:04:05"), styles.WarningText))
		}

	default:
		parts = append(parts, bg.Render(fmt.Sprintf("%d images", len(s.Images)), styles.Text))
		if !s.LastUpdated.IsZero() {
			parts = append(parts,
				bg.Render("updated", styles.FaintText)+bg.Space()+
					bg.Render(s.LastUpdated.Format("15:04:05"), styles.MutedText))
		}
		if s.Refreshing || m.refreshing {
			parts = append(parts, bg.Render("refreshing…", styles.InfoText))
		}
		if s.Stale() {
			parts = append(parts, bg.Render("⚠ stale: "+errText(s.LastError, 50), styles.WarningText))
		}
	}

	content := strings.Join(parts, bg.Spaces(2))
	return styles.Header.Width(m.width).Render(truncate(content, max(m.width-2, 1)))
}

// renderCommandBar renders key hints and the active theme.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	colon := bg.Sep(":")

	bindings := m.keys.ShortHelp()
	segments := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		segments = append(segments,
			bg.Render(h.Key, styles.AccentText)+colon+bg.Render(h.Desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	content := strings.Join(segments, bg.Spaces(2))
	return styles.Header.Width(m.width).Render(truncate(content, max(m.width-2, 1)))
}

// renderStatusBar shows the latest log message, or the selection position.
func (m Model) renderStatusBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)

	var text string
	switch {
	case m.logLine != "":
		style := styles.WarningText
		if m.logLevel >= slog.LevelError {
			style = styles.DangerText
		}
		text = style.Render(truncate(m.logLine, max(m.width-2, 1)))
	default:
		if img, ok := m.controller.Selection(); ok {
			text = styles.MutedText.Render(truncate(
				fmt.Sprintf("#%s by %s  %s", img.ID, img.DisplayAuthor(), img.URL), max(m.width-2, 1)))
		}
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Padding(0, 1).
		Width(m.width).
		Render(text)
}

func errText(err error, width int) string {
	if err == nil {
		return "unknown error"
	}
	return truncate(err.Error(), width)
}
