package engine

import (
	"context"
	"fmt"
	"os"

	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
	"github.com/gcbaptista/go-rhyme-engine/model"
)

// TrainAsync starts a training job and returns its ID.
func (e *Engine) TrainAsync(corpusPath, allowListPath string) (string, error) {
	if corpusPath == "" {
		return "", internalErrors.NewValidationError("corpus_path", "corpus path cannot be empty")
	}
	if _, err := os.Stat(corpusPath); err != nil {
		return "", internalErrors.NewValidationError("corpus_path", fmt.Sprintf("corpus file is not readable: %v", err))
	}
	if allowListPath != "" {
		if _, err := os.Stat(allowListPath); err != nil {
			return "", internalErrors.NewValidationError("allow_list_path", fmt.Sprintf("allow-list file is not readable: %v", err))
		}
	}

	metadata := map[string]string{"corpus_path": corpusPath}
	if allowListPath != "" {
		metadata["allow_list_path"] = allowListPath
	}
	jobID := e.jobManager.CreateJob(model.JobTypeTrain, metadata)

	err := e.jobManager.ExecuteJob(jobID, func(ctx context.Context, jobID string) error {
		return e.executeTrainJob(ctx, jobID, corpusPath, allowListPath)
	})
	if err != nil {
		return "", fmt.Errorf("failed to start training job: %w", err)
	}
	return jobID, nil
}

// executeTrainJob executes the training job.
func (e *Engine) executeTrainJob(ctx context.Context, jobID, corpusPath, allowListPath string) error {
	e.jobManager.UpdateJobProgress(jobID, 0, 0, "Reading corpus")

	stats, err := e.Train(ctx, corpusPath, allowListPath, func(indexed, skipped int) {
		e.jobManager.UpdateJobProgress(jobID, indexed+skipped, 0,
			fmt.Sprintf("Indexed %d words, skipped %d", indexed, skipped))
	})
	if err != nil {
		return err
	}

	total := stats.Indexed + stats.Skipped
	e.jobManager.UpdateJobProgress(jobID, total, total,
		fmt.Sprintf("Indexed %d words, skipped %d in %s", stats.Indexed, stats.Skipped, stats.Duration))
	return nil
}

// ReloadAsync starts a job that reloads the persisted index and returns its ID.
func (e *Engine) ReloadAsync() (string, error) {
	jobID := e.jobManager.CreateJob(model.JobTypeReload, map[string]string{"index_path": e.IndexPath()})

	err := e.jobManager.ExecuteJob(jobID, func(_ context.Context, jobID string) error {
		e.jobManager.UpdateJobProgress(jobID, 0, 1, "Loading index")
		if err := e.Reload(); err != nil {
			return err
		}
		e.jobManager.UpdateJobProgress(jobID, 1, 1, "Index loaded")
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to start reload job: %w", err)
	}
	return jobID, nil
}
