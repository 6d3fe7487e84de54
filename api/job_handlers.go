package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
	"github.com/gcbaptista/go-rhyme-engine/model"
)

var validJobStatuses = map[model.JobStatus]bool{
	model.JobStatusPending:   true,
	model.JobStatusRunning:   true,
	model.JobStatusCompleted: true,
	model.JobStatusFailed:    true,
	model.JobStatusCancelled: true,
}

// GetJobHandler handles requests to get job status by ID
func (api *API) GetJobHandler(c *gin.Context) {
	jobID := c.Param("jobId")

	job, err := api.service.GetJob(jobID)
	if err != nil {
		if errors.Is(err, internalErrors.ErrJobNotFound) {
			SendJobNotFoundError(c, jobID)
			return
		}
		SendInternalError(c, "job lookup", err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobsHandler lists jobs, optionally filtered by ?status=
func (api *API) ListJobsHandler(c *gin.Context) {
	statusParam := c.Query("status")

	var statusFilter *model.JobStatus
	if statusParam != "" {
		status := model.JobStatus(statusParam)
		if !validJobStatuses[status] {
			result := &ValidationResult{Valid: true}
			result.AddError("status", "Unknown job status '"+statusParam+"'")
			SendStructuredValidationError(c, result)
			return
		}
		statusFilter = &status
	}

	jobs := api.service.ListJobs(statusFilter)
	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// GetJobMetricsHandler handles requests to get job performance metrics
func (api *API) GetJobMetricsHandler(c *gin.Context) {
	metrics := api.service.GetJobMetrics()
	c.JSON(http.StatusOK, gin.H{
		"metrics":          metrics,
		"success_rate":     metrics.SuccessRate,
		"current_workload": api.service.Stats().ActiveJobs,
	})
}
