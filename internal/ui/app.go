package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/gallery/internal/imgview"
	"github.com/five82/gallery/internal/prefs"
	"github.com/five82/gallery/internal/selection"
	"github.com/five82/gallery/internal/state"
)

// Refresher reloads the image list on demand.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Store      *state.Store
	Refresher  Refresher
	Previewer  *imgview.Previewer
	Policy     selection.Policy
	Listener   *selection.Listener // nil creates a private one
	PollTick   time.Duration
	ThemeName  string
	PrefsPath  string
	Logger     *slog.Logger
	LogHandler *LogHandler // receives the program in Run
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	refresher Refresher
	previewer *imgview.Previewer
	prefsPath string
	pollTick  time.Duration
	logger    *slog.Logger
	keys      keyMap

	// Selection is shared by every copy of the model.
	controller *selection.Controller
	listener   *selection.Listener
	release    func()

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	list     viewport.Model
	spinner  spinner.Model

	// Data state
	snapshot   state.Snapshot
	refreshing bool

	// Preview state
	previewKey     string
	preview        string
	previewErr     error
	previewLoading bool

	// Status bar log line
	logLine  string
	logLevel slog.Level
	logSeq   int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	listener := opts.Listener
	if listener == nil {
		listener = selection.NewListener()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	theme := GetTheme(themeName)
	spin := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		ctx:        ctx,
		store:      opts.Store,
		refresher:  opts.Refresher,
		previewer:  opts.Previewer,
		prefsPath:  prefsPath,
		pollTick:   pollTick,
		logger:     logger,
		keys:       DefaultKeyMap(),
		controller: selection.New(opts.Policy),
		listener:   listener,
		theme:      theme,
		list:       viewport.New(0, 0),
		spinner:    spin,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tickCmd(m.pollTick),
		m.spinner.Tick,
	}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.mount()
		}
		m.ready = true
		cmd := m.sync()
		return m, cmd

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		if m.snapshot.HasImages {
			m.controller.Replace(m.snapshot.Images)
		}
		cmd := m.sync()
		return m, cmd

	case refreshDoneMsg:
		m.refreshing = false
		if m.store != nil {
			return m, fetchSnapshotCmd(m.store)
		}
		return m, nil

	case previewMsg:
		if msg.key != m.previewKey {
			return m, nil
		}
		m.previewLoading = false
		m.preview = msg.art
		m.previewErr = msg.err
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.logger.Warn("preview failed", "error", msg.err)
		}
		return m, nil

	case logRecordMsg:
		m.logLine = msg.Summary
		m.logLevel = msg.Level
		m.logSeq++
		seq := m.logSeq
		return m, tea.Tick(logRecordFadeDelay, func(time.Time) tea.Msg {
			return logRecordFadeMsg{seq: seq}
		})

	case logRecordFadeMsg:
		if msg.seq == m.logSeq {
			m.logLine = ""
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	return b.String()
}

// mount attaches the arrow-key listener for the lifetime of the view.
func (m *Model) mount() {
	if m.release == nil {
		m.release = m.controller.BindKeys(m.listener)
	}
}

// unmount releases the key listener. Safe to call more than once.
func (m Model) unmount() {
	if m.release != nil {
		m.release()
	}
}

// sync re-renders the list and brings the preview in line with the
// selection.
func (m *Model) sync() tea.Cmd {
	m.refreshList()
	return m.syncPreview()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	images := m.controller.Images()
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unmount()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			m.logger.Warn("save theme preference failed", "error", err)
		}
		cmd := m.sync()
		return m, cmd

	case key.Matches(msg, m.keys.Refresh):
		cmd := m.refreshCmd()
		return m, cmd

	case key.Matches(msg, m.keys.Prev):
		if m.listener.Dispatch("left") {
			cmd := m.sync()
			return m, cmd
		}

	case key.Matches(msg, m.keys.Next):
		if m.listener.Dispatch("right") {
			cmd := m.sync()
			return m, cmd
		}

	case key.Matches(msg, m.keys.Up):
		m.controller.Navigate(selection.Previous)
		cmd := m.sync()
		return m, cmd

	case key.Matches(msg, m.keys.Down):
		m.controller.Navigate(selection.Next)
		cmd := m.sync()
		return m, cmd

	case key.Matches(msg, m.keys.Top):
		m.controller.SelectIndex(0)
		cmd := m.sync()
		return m, cmd

	case key.Matches(msg, m.keys.Bottom):
		m.controller.SelectIndex(len(images) - 1)
		cmd := m.sync()
		return m, cmd
	}

	return m, nil
}

// renderContent renders the panes, or a placeholder while there is nothing
// to show.
func (m Model) renderContent() string {
	styles := m.theme.Styles()
	l := computeLayout(m.width, m.height)
	s := m.snapshot

	place := func(text string) string {
		return lipgloss.Place(m.width, l.contentHeight, lipgloss.Center, lipgloss.Center, text)
	}

	switch {
	case s.Status == state.StatusLoading && !s.HasImages:
		return place(m.spinner.View() + " " + styles.MutedText.Render("Loading…"))
	case s.Status == state.StatusError && !s.HasImages:
		return place(styles.DangerText.Render("Failed to load images") + "\n" +
			styles.MutedText.Render(errText(s.LastError, max(m.width-4, 1))))
	case len(m.controller.Images()) == 0:
		return place(styles.MutedText.Render("No images found"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderList(l), m.renderPreview(l))
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type refreshDoneMsg struct {
	err error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func (m *Model) refreshCmd() tea.Cmd {
	if m.refresher == nil || m.refreshing {
		return nil
	}
	m.refreshing = true
	ctx, refresher := m.ctx, m.refresher
	return func() tea.Msg {
		return refreshDoneMsg{err: refresher.Refresh(ctx)}
	}
}

// Run starts the Bubble Tea program and blocks until it exits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
		opts.Context = ctx
	}

	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if opts.LogHandler != nil {
		opts.LogHandler.SetProgram(p)
		defer opts.LogHandler.SetProgram(nil)
	}

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.unmount()
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
