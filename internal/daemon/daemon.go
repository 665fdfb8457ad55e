package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"

	"tubelang/internal/api"
	"tubelang/internal/config"
	"tubelang/internal/logging"
	"tubelang/internal/store"
)

// ErrAlreadyRunning reports that another server holds the data directory lock.
var ErrAlreadyRunning = errors.New("another tubelang server is already running")

// Daemon coordinates the API server and enforces single-instance execution.
type Daemon struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   *store.Store
	service *api.Service
	api     *apiServer

	lockPath string
	lock     *flock.Flock

	running   atomic.Bool
	startedAt time.Time
	cancel    context.CancelFunc
}

// New constructs a daemon with initialized dependencies.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || st == nil {
		return nil, errors.New("daemon requires config and store")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	lockPath := cfg.LockPath()
	d := &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		store:    st,
		service:  api.NewService(cfg, st, logger),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}
	d.api = newAPIServer(cfg, d, logger)
	return d, nil
}

// Start acquires the daemon lock and starts listening.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	if err := d.api.start(runCtx); err != nil {
		cancel()
		_ = d.lock.Unlock()
		return err
	}

	d.cancel = cancel
	d.startedAt = time.Now().UTC()
	d.running.Store(true)
	d.logger.Info("tubelang server started",
		logging.String("lock", d.lockPath),
		logging.String("address", d.Addr()),
		logging.String(logging.FieldEventType, "daemon_started"),
	)
	return nil
}

// Stop shuts the API server down and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.api.stop()
	if err := d.lock.Unlock(); err != nil {
		logging.WarnWithContext(d.logger, "failed to release daemon lock", "daemon_lock_release_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "remove the lock file if no server is running"),
		)
	}
	d.running.Store(false)
	d.logger.Info("tubelang server stopped", logging.String(logging.FieldEventType, "daemon_stopped"))
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Addr returns the bound listen address, or the configured one before Start.
func (d *Daemon) Addr() string {
	if d.api != nil && d.api.listener != nil {
		return d.api.listener.Addr().String()
	}
	return d.cfg.Paths.APIBind
}

// Service exposes the request service shared with the HTTP handlers.
func (d *Daemon) Service() *api.Service {
	return d.service
}

// Status returns the current daemon status.
func (d *Daemon) Status(ctx context.Context) (api.Status, error) {
	settings, err := d.service.Settings(ctx)
	if err != nil {
		return api.Status{}, err
	}
	subs, err := d.service.Channels(ctx)
	if err != nil {
		return api.Status{}, err
	}
	status := api.Status{
		Running:      d.running.Load(),
		PID:          os.Getpid(),
		DatabasePath: d.store.Path(),
		LockFilePath: d.lockPath,
		Cache:        d.service.CacheStats(),
		Settings:     settings.Settings,
		Channels:     subs.Count,
	}
	if !d.startedAt.IsZero() {
		status.StartedAt = d.startedAt.Format(time.RFC3339)
	}
	return status, nil
}
