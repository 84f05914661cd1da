package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/gallery/internal/selection"
)

// Config holds the gallery settings after defaults and overrides are applied.
type Config struct {
	APIURL         string
	Limit          int
	RequestTimeout time.Duration
	Retries        int
	SizedPreviews  bool
	PreviewCache   int
	LogFile        string
	Selection      selection.Policy
}

const (
	defaultConfigPath     = "~/.config/gallery/config.toml"
	defaultLogFile        = "~/.local/share/gallery/gallery.log"
	defaultAPIURL         = "https://picsum.photos"
	defaultRequestTimeout = 10 * time.Second
	defaultRetries        = 3
	defaultPreviewCache   = 32

	// EnvAPIURL overrides api_url.
	EnvAPIURL = "GALLERY_API_URL"
	// EnvLimit overrides limit.
	EnvLimit = "GALLERY_LIMIT"
)

type rawConfig struct {
	APIURL         string `toml:"api_url"`
	Limit          *int   `toml:"limit"`
	RequestTimeout string `toml:"request_timeout"`
	Retries        *int   `toml:"retries"`
	SizedPreviews  *bool  `toml:"sized_previews"`
	PreviewCache   *int   `toml:"preview_cache"`
	LogFile        string `toml:"log_file"`
	Selection      struct {
		Fallback       string `toml:"fallback"`
		ResetOnRefresh bool   `toml:"reset_on_refresh"`
	} `toml:"selection"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:         defaultAPIURL,
		RequestTimeout: defaultRequestTimeout,
		Retries:        defaultRetries,
		SizedPreviews:  true,
		PreviewCache:   defaultPreviewCache,
		LogFile:        mustExpand(defaultLogFile),
		Selection:      selection.Policy{Fallback: selection.FallbackFirst},
	}
}

// DefaultPath returns the unexpanded default config location.
func DefaultPath() string {
	return defaultConfigPath
}

// Load locates and parses the gallery config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if raw.Limit != nil {
		if *raw.Limit < 0 {
			return Config{}, fmt.Errorf("parse config: limit must not be negative")
		}
		cfg.Limit = *raw.Limit
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: request_timeout: %w", err)
		}
		if d > 0 {
			cfg.RequestTimeout = d
		}
	}
	if raw.Retries != nil {
		cfg.Retries = *raw.Retries
	}
	if raw.SizedPreviews != nil {
		cfg.SizedPreviews = *raw.SizedPreviews
	}
	if raw.PreviewCache != nil && *raw.PreviewCache > 0 {
		cfg.PreviewCache = *raw.PreviewCache
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}

	fallback, err := ParseFallback(raw.Selection.Fallback)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Selection = selection.Policy{
		Fallback:       fallback,
		ResetOnReplace: raw.Selection.ResetOnRefresh,
	}

	return cfg, nil
}

// ApplyEnv overrides fields from environment variables read through lookup.
// Pass os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		return nil
	}
	if v, ok := lookup(EnvAPIURL); ok && strings.TrimSpace(v) != "" {
		c.APIURL = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLimit); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return fmt.Errorf("%s: invalid limit %q", EnvLimit, v)
		}
		c.Limit = n
	}
	return nil
}

// ParseFallback maps the [selection] fallback setting to a policy value.
// Empty means "first".
func ParseFallback(value string) (selection.Fallback, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "first":
		return selection.FallbackFirst, nil
	case "none":
		return selection.FallbackNone, nil
	default:
		return selection.FallbackFirst, fmt.Errorf("selection fallback %q: want \"first\" or \"none\"", value)
	}
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
