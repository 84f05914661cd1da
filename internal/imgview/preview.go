package imgview

import (
	"context"
	"fmt"

	"github.com/muesli/termenv"

	"github.com/five82/gallery/internal/picsum"
)

// Previewer fetches, renders and caches image previews.
type Previewer struct {
	fetcher picsum.ImageFetcher
	cache   *Cache
	profile termenv.Profile
	baseURL string // empty disables sized renditions
}

// NewPreviewer builds a Previewer. When baseURL is non-empty previews request
// a rendition sized to the pane instead of the original download.
func NewPreviewer(fetcher picsum.ImageFetcher, cache *Cache, profile termenv.Profile, baseURL string) *Previewer {
	if cache == nil {
		cache = NewCache(0)
	}
	return &Previewer{fetcher: fetcher, cache: cache, profile: profile, baseURL: baseURL}
}

// Cached returns a previously rendered preview without I/O.
func (p *Previewer) Cached(img picsum.Image, cols, rows int) (string, bool) {
	return p.cache.Get(Key(img.ID, cols, rows))
}

// Preview returns img rendered into cols×rows cells.
func (p *Previewer) Preview(ctx context.Context, img picsum.Image, cols, rows int) (string, error) {
	key := Key(img.ID, cols, rows)
	if out, ok := p.cache.Get(key); ok {
		return out, nil
	}
	if p.fetcher == nil {
		return "", fmt.Errorf("preview %s: no image fetcher", img.ID)
	}

	data, err := p.fetcher.FetchImage(ctx, p.sourceURL(img, cols, rows))
	if err != nil {
		return "", fmt.Errorf("preview %s: %w", img.ID, err)
	}
	decoded, err := Decode(data)
	if err != nil {
		return "", fmt.Errorf("preview %s: %w", img.ID, err)
	}
	out := Render(decoded, cols, rows, p.profile)
	p.cache.Add(key, out)
	return out, nil
}

// sourceURL asks for twice the pane's pixel size so scaling has detail to
// work with.
func (p *Previewer) sourceURL(img picsum.Image, cols, rows int) string {
	if p.baseURL == "" {
		return img.DownloadURL
	}
	w, h := Fit(img.Width, img.Height, cols*2, rows*4)
	if w == 0 || h == 0 {
		return img.DownloadURL
	}
	return img.SizedURL(p.baseURL, w, h)
}
