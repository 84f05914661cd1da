// Package logtail reads the end of the gallery log file and pretty-prints
// the slog JSON records it contains.
//
// Read keeps a ring buffer of maxLines entries so large files are scanned
// once with bounded memory. Parse and Format turn a JSON record into a
// single human-readable line for `gallery logs`:
//
//	2025-10-08 21:01:05 WARN image list fetch failed attempt=1 error="api /v2/list returned status 503"
//
// A missing log file is not an error; Read returns nil, nil.
package logtail
