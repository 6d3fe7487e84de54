// Package engine owns the live rhyme index: it loads the persisted index at
// startup, trains replacements in the background and answers queries against
// whichever index is current.
package engine

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/gcbaptista/go-rhyme-engine/config"
	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
	"github.com/gcbaptista/go-rhyme-engine/internal/jobs"
	"github.com/gcbaptista/go-rhyme-engine/internal/metrics"
	"github.com/gcbaptista/go-rhyme-engine/internal/rhymer"
	"github.com/gcbaptista/go-rhyme-engine/model"
	"github.com/gcbaptista/go-rhyme-engine/services"
)

// Engine manages the live rhyme index.
// It implements the services.RhymeService interface.
type Engine struct {
	mu    sync.RWMutex
	index *rhymer.WordIndex

	trainMu sync.Mutex // serializes training and reloading

	cfg        config.AppConfig
	indexOpts  []rhymer.Option
	jobManager *jobs.Manager
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithIndexOptions sets the collaborators attached to every index the engine
// trains or loads, such as the part-of-speech tagger.
func WithIndexOptions(opts ...rhymer.Option) Option {
	return func(e *Engine) {
		e.indexOpts = append(e.indexOpts, opts...)
	}
}

// WithMetrics makes the engine report to m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine and loads the persisted index, if any. A missing
// or unreadable index file leaves the engine running without an index until
// one is trained or reloaded.
func NewEngine(cfg config.AppConfig, opts ...Option) *Engine {
	cfg.Rhymer.ApplyDefaults()
	e := &Engine{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = metrics.New()
	}
	e.indexOpts = append([]rhymer.Option{rhymer.WithLogger(e.logger)}, e.indexOpts...)

	e.jobManager = jobs.NewManager(cfg.Jobs.MaxWorkers, e.logger)
	e.jobManager.Start()
	e.metrics.RegisterActiveJobs(e.jobManager.GetCurrentWorkload)

	if err := e.Reload(); err != nil {
		e.logger.Warn("No rhyme index loaded", "path", e.IndexPath(), "error", err)
	}
	return e
}

// IndexPath returns the location of the persisted index.
func (e *Engine) IndexPath() string {
	return filepath.Join(e.cfg.Data.Dir, e.cfg.Data.IndexFile)
}

// Metrics returns the collectors the engine reports to.
func (e *Engine) Metrics() *metrics.Metrics {
	return e.metrics
}

// Jobs returns the background job manager.
func (e *Engine) Jobs() *jobs.Manager {
	return e.jobManager
}

// Close stops background jobs.
func (e *Engine) Close() {
	e.jobManager.Stop()
}

// current returns the live index, or ErrIndexNotReady before one exists.
func (e *Engine) current() (*rhymer.WordIndex, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.index == nil || !e.index.Trained() {
		return nil, internalErrors.ErrIndexNotReady
	}
	return e.index, nil
}

// swap replaces the live index.
func (e *Engine) swap(idx *rhymer.WordIndex) {
	e.mu.Lock()
	e.index = idx
	e.mu.Unlock()
	e.metrics.SetIndexWords(idx.Len())
}

// Stats describes the live index.
func (e *Engine) Stats() services.EngineStats {
	stats := services.EngineStats{
		IndexPath:  e.IndexPath(),
		Settings:   e.cfg.Rhymer,
		ActiveJobs: e.jobManager.GetCurrentWorkload(),
	}
	if idx, err := e.current(); err == nil {
		stats.Ready = true
		stats.Index = idx.Stats()
		stats.Settings = idx.Settings()
	}
	return stats
}

// GetJob retrieves a job by ID.
func (e *Engine) GetJob(jobID string) (*model.Job, error) {
	return e.jobManager.GetJob(jobID)
}

// ListJobs returns jobs, newest first, optionally filtered by status.
func (e *Engine) ListJobs(status *model.JobStatus) []*model.Job {
	return e.jobManager.ListJobs(status)
}

// GetJobMetrics returns job performance metrics.
func (e *Engine) GetJobMetrics() jobs.JobMetricsData {
	return e.jobManager.GetMetrics()
}

var _ services.RhymeService = (*Engine)(nil)
