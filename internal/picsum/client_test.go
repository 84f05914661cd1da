package picsum

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.String() != DefaultBaseURL {
		t.Fatalf("base = %q, want %q", u.String(), DefaultBaseURL)
	}

	u, err = parseBaseURL("example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("http://"); err == nil {
		t.Fatalf("parseBaseURL(http://) returned nil error, want missing host")
	}
}

func TestClient_FetchListEncodesLimit(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotUserAgent string
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Image{
			{ID: "0", Author: "Alejandro Escamilla", Width: 5000, Height: 3333, DownloadURL: "https://picsum.photos/id/0/5000/3333"},
			{ID: "1", Author: "Alejandro Escamilla", Width: 5000, Height: 3333, DownloadURL: "https://picsum.photos/id/1/5000/3333"},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	images, err := c.FetchList(ctx, ListQuery{Limit: 12})
	if err != nil {
		t.Fatalf("FetchList returned error: %v", err)
	}
	if gotPath != "/v2/list" {
		t.Fatalf("path = %q, want /v2/list", gotPath)
	}
	if gotQuery.Get("limit") != "12" {
		t.Fatalf("query = %v, want limit=12", gotQuery)
	}
	if len(images) != 2 || images[1].ID != "1" || images[0].DownloadURL == "" {
		t.Fatalf("images = %#v, want two decoded records", images)
	}
	if !strings.HasPrefix(gotUserAgent, "gallery/") {
		t.Fatalf("User-Agent = %q, want gallery/*", gotUserAgent)
	}

	if _, err := c.FetchList(ctx, ListQuery{}); err != nil {
		t.Fatalf("FetchList without limit returned error: %v", err)
	}
	if gotQuery.Has("limit") {
		t.Fatalf("query = %v, want no limit when unset", gotQuery)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	var fail atomic.Bool
	fail.Store(true)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			http.Error(w, "nope", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not-json"))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchList(context.Background(), ListQuery{})
	if err == nil || !strings.Contains(err.Error(), "returned status 503") {
		t.Fatalf("FetchList error = %v, want status 503 error", err)
	}
	if !IsStatus(err, http.StatusServiceUnavailable) {
		t.Fatalf("IsStatus(err, 503) = false, want true")
	}

	fail.Store(false)
	_, err = c.FetchList(context.Background(), ListQuery{})
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchList error = %v, want decode response error", err)
	}
}

func TestClient_FetchImage(t *testing.T) {
	t.Parallel()

	payload := []byte("\x89PNG fake bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/id/7/40/30":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(payload)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	got, err := c.FetchImage(context.Background(), server.URL+"/id/7/40/30")
	if err != nil {
		t.Fatalf("FetchImage returned error: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("FetchImage = %q, want %q", got, payload)
	}

	got, err = c.FetchImage(context.Background(), "/id/7/40/30")
	if err != nil {
		t.Fatalf("FetchImage relative returned error: %v", err)
	}
	if len(got) != len(payload) {
		t.Fatalf("FetchImage relative returned %d bytes, want %d", len(got), len(payload))
	}

	if _, err := c.FetchImage(context.Background(), "/missing"); !IsStatus(err, http.StatusNotFound) {
		t.Fatalf("FetchImage missing error = %v, want 404 status error", err)
	}
	if _, err := c.FetchImage(context.Background(), "  "); err == nil {
		t.Fatalf("FetchImage empty url returned nil error")
	}
}

func TestNilClientErrors(t *testing.T) {
	var c *Client
	if _, err := c.FetchList(context.Background(), ListQuery{}); err == nil {
		t.Fatalf("nil client FetchList returned nil error")
	}
	if _, err := c.FetchImage(context.Background(), "x"); err == nil {
		t.Fatalf("nil client FetchImage returned nil error")
	}
}
