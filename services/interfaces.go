// Package services declares the operations the HTTP layer and the CLI need
// from the rhyme engine.
package services

import (
	"context"

	"github.com/gcbaptista/go-rhyme-engine/config"
	"github.com/gcbaptista/go-rhyme-engine/internal/jobs"
	"github.com/gcbaptista/go-rhyme-engine/internal/rhymer"
	"github.com/gcbaptista/go-rhyme-engine/model"
)

// RhymeFinder answers rhyme queries against the live index.
type RhymeFinder interface {
	// FindRhymes returns the rhymes of form. A nil strictness selects the
	// loosest configured level.
	FindRhymes(form string, strictness *model.Strictness) (*RhymeResult, error)
	AssignScheme(ctx context.Context, scheme []string, maxAttempts int) (*model.Assignment, error)
	SuggestRhymes(forms []string) (*SuggestionResult, error)
}

// IndexManager trains and loads the live index.
type IndexManager interface {
	TrainAsync(corpusPath, allowListPath string) (string, error)
	ReloadAsync() (string, error)
	Stats() EngineStats
}

// JobManager exposes background job tracking.
type JobManager interface {
	GetJob(jobID string) (*model.Job, error)
	ListJobs(status *model.JobStatus) []*model.Job
	GetJobMetrics() jobs.JobMetricsData
}

// RhymeService is everything the HTTP API needs.
type RhymeService interface {
	RhymeFinder
	IndexManager
	JobManager
}

// RhymeResult is the answer to a single rhyme query.
type RhymeResult struct {
	Word       model.Word       `json:"word"`
	Strictness model.Strictness `json:"strictness"`
	Rhymes     []model.Word     `json:"rhymes"`
	Total      int              `json:"total"`
	Took       int64            `json:"took"` // milliseconds
}

// SuggestionResult is the answer to a suggestion query.
type SuggestionResult struct {
	Context     []model.Word `json:"context"`
	Suggestions []model.Word `json:"suggestions"`
	Total       int          `json:"total"`
	Took        int64        `json:"took"` // milliseconds
}

// EngineStats describes the live index and the engine around it.
type EngineStats struct {
	Ready      bool                  `json:"ready"`
	IndexPath  string                `json:"index_path"`
	Index      rhymer.Stats          `json:"index"`
	Settings   config.RhymerSettings `json:"settings"`
	ActiveJobs int64                 `json:"active_jobs"`
}
