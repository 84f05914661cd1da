package picsum

import (
	"fmt"
	"net/url"
	"strings"
)

// Image mirrors one entry of the /v2/list payload.
type Image struct {
	ID          string `json:"id" yaml:"id"`
	Author      string `json:"author" yaml:"author"`
	Width       int    `json:"width" yaml:"width"`
	Height      int    `json:"height" yaml:"height"`
	URL         string `json:"url" yaml:"url"`
	DownloadURL string `json:"download_url" yaml:"download_url"`
}

// DisplayAuthor returns the author or a placeholder when the API sent none.
func (i Image) DisplayAuthor() string {
	if author := strings.TrimSpace(i.Author); author != "" {
		return author
	}
	return "Unknown"
}

// Dimensions formats the original size, or "" when unknown.
func (i Image) Dimensions() string {
	if i.Width <= 0 || i.Height <= 0 {
		return ""
	}
	return fmt.Sprintf("%d×%d", i.Width, i.Height)
}

// SizedURL builds the /id/{id}/{w}/{h} rendition URL on base so previews do
// not download the full-size original. It returns DownloadURL when base is
// unusable or the requested size is not positive.
func (i Image) SizedURL(base string, width, height int) string {
	if width <= 0 || height <= 0 || strings.TrimSpace(i.ID) == "" {
		return i.DownloadURL
	}
	u, err := parseBaseURL(base)
	if err != nil {
		return i.DownloadURL
	}
	rel := &url.URL{Path: fmt.Sprintf("/id/%s/%d/%d", url.PathEscape(i.ID), width, height)}
	return u.ResolveReference(rel).String()
}

// IDs returns the record IDs in list order.
func IDs(images []Image) []string {
	ids := make([]string, len(images))
	for idx, img := range images {
		ids[idx] = img.ID
	}
	return ids
}
