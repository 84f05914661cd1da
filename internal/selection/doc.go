// Package selection tracks which gallery image is selected and moves that
// selection in response to clicks and keys.
//
// The Controller is a three-state machine:
//
//	Uninitialized --Initialize(non-empty)--> Selected(first)
//	Uninitialized --Initialize(empty)------> Empty
//	Selected      --Select(x)--------------> Selected(x)
//	Selected      --Navigate(dir)----------> Selected(neighbour, wrapping)
//
// Records are compared by ID, never by position or identity of the value, so
// a list rebuilt by a refresh keeps the selection as long as the ID survives.
// Replace decides what happens when it does not (see Policy).
//
// Listener is the key registry the UI dispatches through. BindKeys attaches
// the left/right arrow mapping and hands back a release func that the view
// calls on teardown.
package selection
