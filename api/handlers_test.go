package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-rhyme-engine/internal/engine"
	testutil "github.com/gcbaptista/go-rhyme-engine/internal/testing"
	"github.com/gcbaptista/go-rhyme-engine/model"
	"github.com/gcbaptista/go-rhyme-engine/services"
)

type testServer struct {
	engine     *engine.Engine
	router     *gin.Engine
	corpusPath string
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	eng := testutil.CreateTestEngine(t, testutil.Config(t))
	router := NewRouter(eng, RouterOptions{MaxBodyBytes: 1 << 20, Metrics: eng.Metrics()})
	return &testServer{engine: eng, router: router, corpusPath: testutil.WriteCorpus(t)}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) train(t *testing.T) {
	t.Helper()
	w := s.do(t, http.MethodPost, "/train", TrainRequest{CorpusPath: s.corpusPath})
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	jobID := resp["job_id"]
	require.NotEmpty(t, jobID)

	require.Eventually(t, func() bool {
		w := s.do(t, http.MethodGet, "/jobs/"+jobID, nil)
		var job model.Job
		return w.Code == http.StatusOK &&
			json.Unmarshal(w.Body.Bytes(), &job) == nil &&
			job.Status == model.JobStatusCompleted
	}, 5*time.Second, 10*time.Millisecond)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) APIError {
	t.Helper()
	var apiErr APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr), w.Body.String())
	return apiErr
}

func TestHealthAndStatsBeforeTraining(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok", "ready": false}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	w = s.do(t, http.MethodPost, "/rhymes", RhymeRequest{Word: "ca+t"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, ErrorCodeIndexNotReady, decodeError(t, w).Code)
}

func TestFindRhymesHandler(t *testing.T) {
	s := setupTestServer(t)
	s.train(t)

	tests := []struct {
		name           string
		body           any
		expectedStatus int
		expectedCode   ErrorCode
		expectedTotal  int
	}{
		{
			name:           "loosest level by default",
			body:           RhymeRequest{Word: "ca+t"},
			expectedStatus: http.StatusOK,
			expectedTotal:  3,
		},
		{
			name: "explicit strictness",
			body: RhymeRequest{
				Word:       "do+g",
				MinMatches: &model.Pair{Left: 1, Right: 2},
				MaxSkips:   &model.Pair{},
			},
			expectedStatus: http.StatusOK,
			expectedTotal:  3,
		},
		{
			name:           "invalid JSON",
			body:           "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCodeInvalidJSON,
		},
		{
			name:           "missing word",
			body:           RhymeRequest{},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCodeValidationFailed,
		},
		{
			name:           "half a strictness",
			body:           RhymeRequest{Word: "ca+t", MinMatches: &model.Pair{Left: 1, Right: 1}},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCodeValidationFailed,
		},
		{
			name:           "unstressed word",
			body:           RhymeRequest{Word: "stone"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   ErrorCodeInvalidWord,
		},
		{
			name:           "unknown word",
			body:           RhymeRequest{Word: "zu+zz"},
			expectedStatus: http.StatusNotFound,
			expectedCode:   ErrorCodeUnknownWord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, http.MethodPost, "/rhymes", tt.body)
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				assert.Equal(t, tt.expectedCode, decodeError(t, w).Code)
				return
			}
			var result services.RhymeResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
			assert.Equal(t, tt.expectedTotal, result.Total)
			assert.Len(t, result.Rhymes, tt.expectedTotal)
		})
	}
}

func TestAssignSchemeHandler(t *testing.T) {
	s := setupTestServer(t)
	s.train(t)

	w := s.do(t, http.MethodPost, "/schemes", SchemeRequest{Scheme: []string{"A", "B", "A", "B"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var assignment model.Assignment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &assignment))
	assert.Equal(t, []string{"A", "B", "A", "B"}, assignment.Scheme)
	require.Len(t, assignment.Words, 4)
	assert.NotEqual(t, assignment.Words[0].Form, assignment.Words[2].Form)

	// Every rhyme group has four words, so five positions cannot rhyme.
	w = s.do(t, http.MethodPost, "/schemes", SchemeRequest{Scheme: []string{"A", "A", "A", "A", "A"}, MaxAttempts: 5})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, ErrorCodeSchemeUnsatisfied, decodeError(t, w).Code)

	w = s.do(t, http.MethodPost, "/schemes", SchemeRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSuggestRhymesHandler(t *testing.T) {
	s := setupTestServer(t)
	s.train(t)

	w := s.do(t, http.MethodPost, "/suggestions", SuggestRequest{Context: []string{"do+g", "ca+t"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result services.SuggestionResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Total)

	w = s.do(t, http.MethodPost, "/suggestions", SuggestRequest{Context: []string{"a-b"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrorCodeInvalidWord, decodeError(t, w).Code)
}

func TestTrainHandlerValidation(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(t, http.MethodPost, "/train", TrainRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/train", TrainRequest{CorpusPath: filepath.Join(t.TempDir(), "missing.jsonl")})
	require.Equal(t, http.StatusBadRequest, w.Code)
	apiErr := decodeError(t, w)
	require.Len(t, apiErr.Details, 1)
	assert.Equal(t, "corpus_path", apiErr.Details[0].Field)
}

func TestReloadHandler(t *testing.T) {
	s := setupTestServer(t)
	s.train(t)

	w := s.do(t, http.MethodPost, "/reload", nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	w = s.do(t, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats services.EngineStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.True(t, stats.Ready)
	assert.Equal(t, testutil.CorpusSize, stats.Index.Words)
}

func TestJobHandlers(t *testing.T) {
	s := setupTestServer(t)
	s.train(t)

	w := s.do(t, http.MethodGet, "/jobs?status=completed", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Jobs  []model.Job `json:"jobs"`
		Total int         `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, model.JobTypeTrain, list.Jobs[0].Type)

	w = s.do(t, http.MethodGet, "/jobs?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodGet, "/jobs/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ErrorCodeJobNotFound, decodeError(t, w).Code)

	w = s.do(t, http.MethodGet, "/jobs/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"jobs_completed":1`)
}

func TestMetricsEndpoint(t *testing.T) {
	s := setupTestServer(t)
	s.do(t, http.MethodGet, "/health", nil)

	w := s.do(t, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `rhymer_http_requests_total{method="GET",route="/health",status="200"} 1`), body)
	assert.Contains(t, body, "rhymer_jobs_active")
}

func TestRequestIDIsEchoed(t *testing.T) {
	s := setupTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/rhymes", strings.NewReader("{"))
	req.Header.Set(requestIDHeader, "req-42")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, "req-42", w.Header().Get(requestIDHeader))
	assert.Equal(t, "req-42", decodeError(t, w).RequestID)
}

func TestCORSPreflight(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(t, http.MethodOptions, "/rhymes", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
