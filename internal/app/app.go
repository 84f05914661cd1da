package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"

	"github.com/five82/gallery/internal/config"
	"github.com/five82/gallery/internal/imgview"
	"github.com/five82/gallery/internal/picsum"
	"github.com/five82/gallery/internal/prefs"
	"github.com/five82/gallery/internal/state"
	"github.com/five82/gallery/internal/ui"
)

// Options configure the gallery. Non-zero fields override the config file
// and the environment.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/gallery/prefs.toml
	APIURL     string
	Limit      int
	LogFile    string

	// LookupEnv reads environment overrides; nil uses os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// ResolveConfig loads the config file and applies environment and option
// overrides, in that order.
func ResolveConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return config.Config{}, fmt.Errorf("apply environment: %w", err)
	}

	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}
	if opts.Limit > 0 {
		cfg.Limit = opts.Limit
	}
	if opts.LogFile != "" {
		path, err := config.ExpandPath(opts.LogFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("log file: %w", err)
		}
		cfg.LogFile = path
	}
	return cfg, nil
}

// NewClient builds a picsum client from cfg.
func NewClient(cfg config.Config) (*picsum.Client, error) {
	client, err := picsum.NewClient(cfg.APIURL, picsum.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return nil, fmt.Errorf("init picsum client: %w", err)
	}
	return client, nil
}

// FetchList performs a single listing request with cfg's limit.
func FetchList(ctx context.Context, cfg config.Config) ([]picsum.Image, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return client.FetchList(ctx, picsum.ListQuery{Limit: cfg.Limit})
}

// Run boots the gallery TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := ResolveConfig(opts)
	if err != nil {
		return err
	}

	logFile, err := openLogFile(cfg.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()

	tuiHandler := ui.NewLogHandler(slog.LevelWarn)
	logger := slog.New(fanoutHandler{
		slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelInfo}),
		tuiHandler,
	})

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn("preferences ignored", "error", err)
	}

	client, err := NewClient(cfg)
	if err != nil {
		return err
	}

	store := &state.Store{}

	retries := cfg.Retries
	if retries <= 0 {
		retries = -1
	}
	loader := NewLoader(client, store, LoaderOptions{
		Query:   picsum.ListQuery{Limit: cfg.Limit},
		Retries: retries,
		Logger:  logger.With("component", "loader"),
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// One fetch per start; the UI shows loading until it lands.
	go func() {
		_ = loader.Load(ctx)
	}()

	previewBase := ""
	if cfg.SizedPreviews {
		previewBase = client.BaseURL()
	}
	previewer := imgview.NewPreviewer(client, imgview.NewCache(cfg.PreviewCache), termenv.EnvColorProfile(), previewBase)

	logger.Info("gallery starting", "api", client.BaseURL(), "limit", cfg.Limit)

	return ui.Run(ui.Options{
		Context:    ctx,
		Store:      store,
		Refresher:  loader,
		Previewer:  previewer,
		Policy:     cfg.Selection,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
		Logger:     logger.With("component", "ui"),
		LogHandler: tuiHandler,
	})
}
