package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/five82/gallery/internal/picsum"
	"github.com/five82/gallery/internal/state"
)

const (
	defaultRetries = 3
	defaultBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// ErrLoadInProgress is returned by Load when another load is still running.
var ErrLoadInProgress = errors.New("image list load already in progress")

// Loader fetches the image list into the store. It is the gallery's only
// source of network I/O for the listing; the UI reads the store.
type Loader struct {
	client  picsum.ListFetcher
	store   *state.Store
	query   picsum.ListQuery
	retries int
	backoff time.Duration
	logger  *slog.Logger

	mu      sync.Mutex
	running bool

	// after is swapped in tests to avoid real sleeps.
	after func(time.Duration) <-chan time.Time
}

// LoaderOptions configure a Loader. Zero values use defaults.
type LoaderOptions struct {
	Query   picsum.ListQuery
	Retries int // negative disables retries
	Backoff time.Duration
	Logger  *slog.Logger
}

// NewLoader builds a Loader writing into store.
func NewLoader(client picsum.ListFetcher, store *state.Store, opts LoaderOptions) *Loader {
	retries := opts.Retries
	if retries == 0 {
		retries = defaultRetries
	}
	if retries < 0 {
		retries = 0
	}
	backoff := opts.Backoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		client:  client,
		store:   store,
		query:   opts.Query,
		retries: retries,
		backoff: backoff,
		logger:  logger,
		after:   time.After,
	}
}

// Load fetches the list, retrying failures with capped exponential backoff.
// Every attempt is reflected in the store. It returns the last error when all
// attempts fail, ctx.Err() when cancelled, and ErrLoadInProgress without
// fetching when another load holds the store.
func (l *Loader) Load(ctx context.Context) error {
	if !l.begin() {
		return ErrLoadInProgress
	}
	defer l.end()
	return l.load(ctx)
}

func (l *Loader) begin() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return false
	}
	l.running = true
	return true
}

func (l *Loader) end() {
	l.mu.Lock()
	l.running = false
	l.mu.Unlock()
}

func (l *Loader) load(ctx context.Context) error {
	var lastErr error
	for failures := 0; failures <= l.retries; failures++ {
		l.store.MarkLoading()
		images, err := l.client.FetchList(ctx, l.query)
		if err == nil {
			l.store.Update(images, nil)
			l.logger.Info("image list loaded", "count", len(images), "attempt", failures+1)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		lastErr = err
		l.store.Update(nil, err)
		if failures == l.retries {
			break
		}

		wait := calculateBackoff(failures, l.backoff)
		l.store.SetRetry(time.Now().Add(wait))
		l.logger.Warn("image list fetch failed",
			"attempt", failures+1,
			"retry_in", wait.String(),
			"error", err)

		select {
		case <-ctx.Done():
			l.store.SetRetry(time.Time{})
			return ctx.Err()
		case <-l.after(wait):
		}
	}

	l.logger.Error("image list unavailable", "attempts", l.retries+1, "error", lastErr)
	return lastErr
}

// Refresh re-runs Load. Cancellation is not reported as a failure, and a
// refresh while a load is running is skipped.
func (l *Loader) Refresh(ctx context.Context) error {
	l.logger.Info("refreshing image list")
	err := l.Load(ctx)
	switch {
	case errors.Is(err, ErrLoadInProgress):
		l.logger.Info("refresh skipped, load in progress")
		return nil
	case errors.Is(err, context.Canceled):
		return nil
	}
	return err
}

// calculateBackoff returns base·2^failures, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	wait := base
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}
