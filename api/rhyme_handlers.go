package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-rhyme-engine/model"
)

// RhymeRequest is the body of POST /rhymes. Strictness is optional; when
// omitted the loosest configured level is used.
type RhymeRequest struct {
	Word       string      `json:"word"`
	MinMatches *model.Pair `json:"min_matches,omitempty"`
	MaxSkips   *model.Pair `json:"max_skips,omitempty"`
}

// Strictness returns the requested strictness, or nil when none was given.
func (r *RhymeRequest) Strictness() *model.Strictness {
	if r.MinMatches == nil || r.MaxSkips == nil {
		return nil
	}
	return &model.Strictness{MinMatches: *r.MinMatches, MaxSkips: *r.MaxSkips}
}

// SchemeRequest is the body of POST /schemes.
type SchemeRequest struct {
	Scheme      []string `json:"scheme"`
	MaxAttempts int      `json:"max_attempts,omitempty"`
}

// SuggestRequest is the body of POST /suggestions.
type SuggestRequest struct {
	Context []string `json:"context"`
}

// FindRhymesHandler handles rhyme queries.
func (api *API) FindRhymesHandler(c *gin.Context) {
	var req RhymeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if result := ValidateRhymeRequest(&req); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	result, err := api.service.FindRhymes(req.Word, req.Strictness())
	if err != nil {
		SendServiceError(c, "rhyme search", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AssignSchemeHandler fills a rhyme scheme such as ["A", "B", "A", "B"].
func (api *API) AssignSchemeHandler(c *gin.Context) {
	var req SchemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if result := ValidateSchemeRequest(&req); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	assignment, err := api.service.AssignScheme(c.Request.Context(), req.Scheme, req.MaxAttempts)
	if err != nil {
		SendServiceError(c, "scheme assignment", err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// SuggestRhymesHandler suggests words that could follow the given context.
func (api *API) SuggestRhymesHandler(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if result := ValidateSuggestRequest(&req); result.HasErrors() {
		SendStructuredValidationError(c, result)
		return
	}

	result, err := api.service.SuggestRhymes(req.Context)
	if err != nil {
		SendServiceError(c, "rhyme suggestion", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
