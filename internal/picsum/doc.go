// Package picsum provides an HTTP client for the Picsum photo API.
//
// # Overview
//
// Gallery reads a single endpoint, GET /v2/list, which returns a JSON array
// of photo records:
//
//	[
//	  {
//	    "id": "0",
//	    "author": "Alejandro Escamilla",
//	    "width": 5000,
//	    "height": 3333,
//	    "url": "https://unsplash.com/photos/yC-Yzbqy7PY",
//	    "download_url": "https://picsum.photos/id/0/5000/3333"
//	  }
//	]
//
// Each entry decodes into an Image. Records are treated as immutable values
// and compared by ID everywhere else in the program.
//
// # Image Bytes
//
// FetchImage downloads the bytes behind a record's DownloadURL (or a sized
// rendition built with Image.SizedURL) for the preview pane. Downloads are
// capped at MaxImageBytes so a misbehaving server cannot exhaust memory.
//
// # Error Handling
//
// All methods return wrapped errors:
//   - "create request: ..." for malformed URLs
//   - "execute request: ..." for transport failures and timeouts
//   - *StatusError for HTTP responses >= 400 (use errors.As or IsStatus)
//   - "decode response: ..." for invalid JSON
//
// The client never retries. Retry policy belongs to the loader in package app.
//
// # Testing
//
// The ListFetcher and ImageFetcher interfaces let callers substitute fakes;
// the client itself is exercised against httptest servers.
package picsum
