// Package ui implements the gallery's Bubble Tea interface.
//
// # Layout
//
//	gallery  30 images  updated 14:02:11               header
//	←/h:Previous image  →/l:Next image  ...  T:Nightfox command bar
//	┌── Images 3/30 ──┐┌──────── Preview #2 ─────────┐
//	│#0  Alejandro    ││       ▀▀▀▀▀▀▀▀▀▀▀▀▀▀         │
//	│#1  Paul Jarvis  ││       ▀▀▀▀▀▀▀▀▀▀▀▀▀▀         │
//	│#2  Vadim ...    ││    Photo by Vadim Sherbakov  │
//	│                 ││          4000×3000           │
//	│                 ││                              │
//	│                 ││ ← Prev   Use arrow keys ...  │
//	└─────────────────┘└──────────────────────────────┘
//	#2 by Vadim Sherbakov  https://unsplash.com/...     status bar
//
// # Selection
//
// The Model owns a selection.Controller. Each store snapshot is handed to
// Controller.Replace, so the first image is selected once and a selection
// survives refreshes by ID. Clicks on list rows call Select; clicks on the
// controls and the mouse wheel call Navigate.
//
// Left and right arrows (and h/l) go through a selection.Listener. The model
// attaches the controller's key handler when it is first sized and releases
// it on quit, so the arrows only act while the gallery is on screen and the
// handler is never attached twice.
//
// # Data flow
//
// The model never performs list I/O itself. A tick reads state.Store
// snapshots; "r" asks the Refresher for a new fetch. Previews are fetched and
// rendered by imgview.Previewer in a command and applied only if the
// selection and pane size still match.
//
// # Logging
//
// LogHandler forwards slog records into the running program, where they
// replace the status bar for a few seconds.
package ui
