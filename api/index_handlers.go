package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/gcbaptista/go-rhyme-engine/internal/errors"
)

// TrainRequest is the body of POST /train. Paths are read by the server.
type TrainRequest struct {
	CorpusPath    string `json:"corpus_path"`
	AllowListPath string `json:"allow_list_path,omitempty"`
}

// TrainHandler starts a background training job.
func (api *API) TrainHandler(c *gin.Context) {
	var req TrainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if result := ValidateTrainRequest(&req); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	jobID, err := api.service.TrainAsync(req.CorpusPath, req.AllowListPath)
	if err != nil {
		if errors.Is(err, internalErrors.ErrInvalidInput) {
			SendServiceError(c, "training", err)
			return
		}
		SendJobExecutionError(c, "training", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "accepted",
		"message": "Training started from '" + req.CorpusPath + "'",
		"job_id":  jobID,
	})
}

// ReloadHandler starts a background job that reloads the persisted index.
func (api *API) ReloadHandler(c *gin.Context) {
	jobID, err := api.service.ReloadAsync()
	if err != nil {
		SendJobExecutionError(c, "reload", err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status":  "accepted",
		"message": "Index reload started",
		"job_id":  jobID,
	})
}

// StatsHandler returns statistics about the live index.
func (api *API) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.service.Stats())
}
