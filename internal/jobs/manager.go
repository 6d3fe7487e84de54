// Package jobs runs long operations such as index training in the background
// and keeps track of their status.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-rhyme-engine/internal/errors"
	"github.com/gcbaptista/go-rhyme-engine/model"
)

// Func is the body of a job. It should return promptly once ctx is done.
type Func func(ctx context.Context, jobID string) error

// Manager handles background job execution and tracking
type Manager struct {
	mu      sync.RWMutex
	jobs    map[string]*model.Job
	cancels map[string]context.CancelFunc
	workers chan struct{} // Limits concurrent jobs
	wg      sync.WaitGroup
	metrics *JobMetrics
	logger  *slog.Logger

	ctx      context.Context
	stop     context.CancelFunc
	stopOnce sync.Once
}

// NewManager creates a new job manager with specified worker count
func NewManager(maxWorkers int, logger *slog.Logger) *Manager {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	ctx, stop := context.WithCancel(context.Background())
	return &Manager{
		jobs:    make(map[string]*model.Job),
		cancels: make(map[string]context.CancelFunc),
		workers: make(chan struct{}, maxWorkers),
		metrics: NewJobMetrics(),
		logger:  logger.With("component", "jobs"),
		ctx:     ctx,
		stop:    stop,
	}
}

// Start begins the job manager and starts background cleanup
func (m *Manager) Start() {
	m.logger.Info("Job manager started", "max_workers", cap(m.workers))
	m.wg.Add(1)
	go m.cleanupRoutine()
}

// Stop cancels running jobs and waits for them to return
func (m *Manager) Stop() {
	m.stopOnce.Do(func() {
		m.stop()
		m.wg.Wait()
		m.logger.Info("Job manager stopped")
	})
}

// CreateJob creates a new pending job and returns its ID
func (m *Manager) CreateJob(jobType model.JobType, metadata map[string]string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	job := &model.Job{
		ID:        uuid.New().String(),
		Type:      jobType,
		Status:    model.JobStatusPending,
		CreatedAt: time.Now(),
		Metadata:  metadata,
	}

	m.jobs[job.ID] = job
	m.metrics.RecordJobCreated(jobType)
	m.logger.Info("Created job", "job_id", job.ID, "type", job.Type)
	return job.ID
}

// GetJob retrieves a copy of a job by ID
func (m *Manager) GetJob(jobID string) (*model.Job, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return nil, errors.NewJobNotFoundError(jobID)
	}
	return copyJob(job), nil
}

// ListJobs returns every job, newest first, optionally filtered by status
func (m *Manager) ListJobs(status *model.JobStatus) []*model.Job {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.Job, 0, len(m.jobs))
	for _, job := range m.jobs {
		if status == nil || job.Status == *status {
			result = append(result, copyJob(job))
		}
	}
	slices.SortFunc(result, func(a, b *model.Job) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return result
}

// ExecuteJob runs fn for a pending job in a goroutine. The job stays pending
// until a worker slot is free.
func (m *Manager) ExecuteJob(jobID string, fn Func) error {
	m.mu.Lock()
	job, exists := m.jobs[jobID]
	if !exists {
		m.mu.Unlock()
		return errors.NewJobNotFoundError(jobID)
	}
	if job.Status != model.JobStatusPending {
		m.mu.Unlock()
		return fmt.Errorf("job with ID '%s' is not in pending status (current: %s)", jobID, job.Status)
	}
	if _, running := m.cancels[jobID]; running {
		m.mu.Unlock()
		return fmt.Errorf("job with ID '%s' is already scheduled", jobID)
	}
	if m.ctx.Err() != nil {
		m.mu.Unlock()
		return fmt.Errorf("job manager is shutting down")
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancels[jobID] = cancel
	jobType := job.Type
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		defer m.forget(jobID)

		select {
		case m.workers <- struct{}{}:
		case <-ctx.Done():
			m.updateJobStatus(jobID, model.JobStatusCancelled, "Job cancelled before it started")
			return
		}
		defer func() { <-m.workers }()

		m.updateJobStatus(jobID, model.JobStatusRunning, "")
		startTime := time.Now()

		err := fn(ctx, jobID)
		executionTime := time.Since(startTime)

		switch {
		case err != nil && ctx.Err() != nil:
			m.updateJobStatus(jobID, model.JobStatusCancelled, err.Error())
			m.logger.Warn("Job cancelled", "job_id", jobID, "duration", executionTime)
		case err != nil:
			m.metrics.RecordJobFailed(jobType)
			m.updateJobStatus(jobID, model.JobStatusFailed, err.Error())
			m.logger.Error("Job failed", "job_id", jobID, "duration", executionTime, "error", err)
		default:
			m.metrics.RecordJobCompleted(jobType, executionTime)
			m.updateJobStatus(jobID, model.JobStatusCompleted, "")
			m.logger.Info("Job completed", "job_id", jobID, "duration", executionTime)
		}
	}()

	return nil
}

// CancelJob asks a scheduled or running job to stop
func (m *Manager) CancelJob(jobID string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return errors.NewJobNotFoundError(jobID)
	}
	cancel, scheduled := m.cancels[jobID]
	if !scheduled || job.IsTerminal() {
		return fmt.Errorf("job with ID '%s' is not running (current: %s)", jobID, job.Status)
	}
	cancel()
	return nil
}

// UpdateJobProgress updates the progress of a running job
func (m *Manager) UpdateJobProgress(jobID string, current, total int, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return
	}

	if job.Progress == nil {
		job.Progress = &model.JobProgress{}
	}

	job.Progress.Current = current
	job.Progress.Total = total
	job.Progress.Message = message
}

func (m *Manager) forget(jobID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if cancel, ok := m.cancels[jobID]; ok {
		cancel()
		delete(m.cancels, jobID)
	}
}

// updateJobStatus updates the status of a job (internal method)
func (m *Manager) updateJobStatus(jobID string, status model.JobStatus, errorMsg string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, exists := m.jobs[jobID]
	if !exists {
		return
	}

	oldStatus := job.Status
	job.Status = status
	if errorMsg != "" {
		job.Error = errorMsg
	}

	now := time.Now()
	if status == model.JobStatusRunning {
		job.StartedAt = &now
	}
	if job.IsTerminal() {
		job.CompletedAt = &now
	}

	m.metrics.RecordJobStatusChange(oldStatus, status)
}

// cleanupRoutine runs periodic job cleanup
func (m *Manager) cleanupRoutine() {
	defer m.wg.Done()
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.CleanupOldJobs(24 * time.Hour)
		case <-m.ctx.Done():
			return
		}
	}
}

// CleanupOldJobs removes finished jobs older than maxAge and returns how many
// were removed
func (m *Manager) CleanupOldJobs(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	cleaned := 0

	for jobID, job := range m.jobs {
		if job.CompletedAt != nil && job.CompletedAt.Before(cutoff) {
			delete(m.jobs, jobID)
			cleaned++
		}
	}

	if cleaned > 0 {
		m.logger.Info("Cleaned up old jobs", "count", cleaned)
	}
	return cleaned
}

// GetMetrics returns current job performance metrics
func (m *Manager) GetMetrics() JobMetricsData {
	return m.metrics.GetMetrics()
}

// GetJobSuccessRate returns the overall job success rate
func (m *Manager) GetJobSuccessRate() float64 {
	return m.metrics.GetSuccessRate()
}

// GetCurrentWorkload returns the number of pending and running jobs
func (m *Manager) GetCurrentWorkload() int64 {
	return m.metrics.GetCurrentWorkload()
}

func copyJob(job *model.Job) *model.Job {
	jobCopy := *job
	if job.Progress != nil {
		progressCopy := *job.Progress
		jobCopy.Progress = &progressCopy
	}
	if job.Metadata != nil {
		jobCopy.Metadata = make(map[string]string, len(job.Metadata))
		for k, v := range job.Metadata {
			jobCopy.Metadata[k] = v
		}
	}
	return &jobCopy
}
