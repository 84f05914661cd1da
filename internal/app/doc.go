// Package app is the composition root for the gallery.
//
// Run resolves configuration (file, then environment, then Options), opens
// the JSON log file, builds the picsum client, and starts a Loader goroutine
// that fetches the image list once with bounded exponential backoff. The TUI
// reads the shared state.Store on its own tick, so a slow or failing API never
// blocks input.
//
//	Run()
//	  ├─> ResolveConfig()        config.Load + ApplyEnv + overrides
//	  ├─> openLogFile()          JSON handler, fanned out with ui.LogHandler
//	  ├─> NewClient()            picsum HTTP client
//	  ├─> go Loader.Load()       fetch, retry, store.Update
//	  └─> ui.Run()               blocks until quit
//
// Load and Refresh never return errors to the UI directly; failures land in
// the store as LastError and ConsecutiveFailures, and the previous list is
// kept so a failed refresh does not blank the screen.
//
// FetchList is the one-shot path used by the "list" command.
package app
