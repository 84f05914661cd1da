// Package config loads the gallery's TOML configuration.
//
// The file lives at ~/.config/gallery/config.toml unless a path is given.
// A missing file yields Default(); keys that are absent or blank keep their
// defaults. Paths may start with ~.
//
// Recognised keys:
//
//	api_url          = "https://picsum.photos"
//	limit            = 0        # 0 lets the API choose
//	request_timeout  = "10s"
//	retries          = 3        # 0 disables retries
//	sized_previews   = true     # request /id/{id}/{w}/{h} instead of the original
//	preview_cache    = 32       # rendered previews kept in memory
//	log_file         = "~/.local/share/gallery/gallery.log"
//
//	[selection]
//	fallback         = "first"  # or "none" when the selected image disappears
//	reset_on_refresh = false
//
// GALLERY_API_URL and GALLERY_LIMIT override the file through ApplyEnv.
package config
