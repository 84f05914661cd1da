package imgview

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCapacity = 32

// Cache is a fixed-size LRU of rendered previews keyed by Key. Safe for
// concurrent use.
type Cache = lru.Cache[string, string]

// NewCache returns a cache holding up to capacity previews; non-positive
// capacity uses the default of 32.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	cache, err := lru.New[string, string](capacity)
	if err != nil {
		// lru.New only fails for a non-positive size.
		panic(err)
	}
	return cache
}

// Key identifies a rendition of image id at cols×rows cells.
func Key(id string, cols, rows int) string {
	return fmt.Sprintf("%s@%dx%d", id, cols, rows)
}
