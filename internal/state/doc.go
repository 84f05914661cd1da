// Package state provides thread-safe state management for the gallery.
//
// # Overview
//
// The Store is the meeting point between the loader goroutine in package app
// (producer) and the Bubble Tea update loop (consumer). The loader writes
// fetch results; the UI reads immutable snapshots on every tick.
//
//	Producer (Loader):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ MarkLoading()  │            │                 │
//	│ FetchList()    │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│ SetRetry()     │  (mutex)   │ render views    │
//	└────────────────┘            └─────────────────┘
//
// # Status
//
// Snapshot.Status is the tri-state the views branch on:
//
//   - StatusLoading: no fetch has succeeded yet and one is in flight
//   - StatusError: no fetch has succeeded and the last one failed
//   - StatusReady: images are available (possibly stale, see Stale)
//
// # Update Semantics
//
//	// Success: replace images
//	store.Update(images, nil)
//	→ Images = images, HasImages = true, Status = StatusReady
//	→ LastError = nil, ConsecutiveFailures = 0
//
//	// Failure: keep old images, record the error
//	store.Update(nil, err)
//	→ Images unchanged, LastError = err, ConsecutiveFailures++
//	→ Status = StatusError only if HasImages is false
//
// A refresh that fails therefore keeps showing the previous list with a
// stale-data warning instead of blanking the gallery.
//
// # Defensive Copying
//
// Update and Snapshot clone the image slice and wrap the error so the UI and
// the loader never share mutable state. Image is a small value type; a
// listing of a few hundred records copies in microseconds.
//
// # Testing Considerations
//
// The zero Store is ready to use and reports StatusLoading.
package state
