// Package imgview turns photo bytes into terminal art.
//
// Render scales an image with golang.org/x/image/draw and emits one "▀" per
// cell, coloured through a termenv profile so the same code degrades from
// true colour to 256 or 16 colours. Previewer adds fetching and an in-memory
// LRU Cache keyed by image ID and pane size.
package imgview
