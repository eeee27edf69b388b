package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"resumatch/internal/config"
	resumatchErrors "resumatch/internal/errors"
	"resumatch/internal/observability"
	"resumatch/internal/pipeline"
	"resumatch/internal/store"
	"resumatch/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com
+1 555 123 4567

Experience
Senior Engineer at Acme, 2019 - 2023

Education
Bachelor of Science in Computer Science

Skills: Python, Django, SQL, REST API, Docker, Git
`

type testServer struct {
	*Server
	handler http.Handler
}

func newTestServer(t *testing.T, mutate func(*ServerConfig)) *testServer {
	t.Helper()

	results := store.New(config.StoreConfig{
		TTL:             time.Hour,
		MaxEntries:      100,
		CleanupInterval: time.Minute,
	}, nil, nil)

	cfg := ServerConfig{
		Host:                "localhost",
		Port:                "0",
		Version:             "test",
		MaxRequestSize:      10 * 1024 * 1024,
		UploadDir:           t.TempDir(),
		RecommendationLimit: 5,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	analyzer := pipeline.NewAnalyzer(nil, nil, nil, pipeline.Options{MinMatchPercentage: 30})
	s := NewServer(&config.Config{}, cfg, analyzer, results, nil)
	t.Cleanup(s.cleanup)

	om, err := observability.NewObservabilityManager(observability.ObservabilityConfig{Enabled: false}, nil)
	require.NoError(t, err)

	return &testServer{Server: s, handler: s.Handler(om)}
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

// multipartBody builds an upload form. An empty filename mimics a file input
// submitted with nothing selected.
func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	if filename == "" {
		require.NoError(t, mw.WriteField(field, ""))
	} else {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func uploadRequest(t *testing.T, field, filename, content string) *http.Request {
	t.Helper()
	body, contentType := multipartBody(t, field, filename, content)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	return req
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestUploadAndFetchResult(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(uploadRequest(t, "resume", "jane.txt", sampleResume))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode[UploadResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "Resume analyzed successfully!", resp.Message)
	require.NotEmpty(t, resp.ID)
	require.NotNil(t, resp.Data)
	assert.Contains(t, resp.Data.ResumeData.Skills, "Python")
	assert.Contains(t, resp.Data.ResumeData.Skills, "SQL")
	assert.Equal(t, "jane.doe@example.com", resp.Data.ResumeData.Contact.Email)
	assert.Positive(t, resp.Data.SkillsAnalysis.TotalSkills)

	entries, err := os.ReadDir(ts.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "uploads are removed after analysis")

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/results/"+resp.ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	report := decode[types.AnalysisReport](t, rec)
	assert.Equal(t, resp.ID, report.ID)
	assert.Equal(t, "jane.txt", report.Filename)
	assert.Equal(t, resp.Data.ResumeData.Skills, report.ResumeData.Skills)
}

func TestUploadKeepsFileWhenConfigured(t *testing.T) {
	ts := newTestServer(t, func(c *ServerConfig) { c.KeepUploads = true })

	rec := ts.do(uploadRequest(t, "resume", "jane.txt", sampleResume))
	require.Equal(t, http.StatusOK, rec.Code)

	entries, err := os.ReadDir(ts.UploadDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	name := entries[0].Name()
	assert.True(t, strings.HasSuffix(name, ".txt"))
	assert.Len(t, strings.TrimSuffix(name, ".txt"), 32, "stored under a random hex name")
}

func TestUploadRejections(t *testing.T) {
	tests := []struct {
		name       string
		req        func(t *testing.T) *http.Request
		wantStatus int
		wantError  string
	}{
		{
			name: "wrong field",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "document", "cv.txt", sampleResume)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "No file uploaded",
		},
		{
			name: "not multipart",
			req: func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("plain"))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "No file uploaded",
		},
		{
			name: "empty selection",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "resume", "", "")
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "No file selected",
		},
		{
			name: "unsupported extension",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "resume", "cv.rtf", sampleResume)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid file type. Please upload PDF, DOCX, DOC, or TXT files.",
		},
		{
			name: "corrupt pdf",
			req: func(t *testing.T) *http.Request {
				return uploadRequest(t, "resume", "cv.pdf", "not really a pdf")
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "Error processing resume",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, nil)
			rec := ts.do(tt.req(t))
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Contains(t, decode[ErrorResponse](t, rec).Error, tt.wantError)
		})
	}
}

func TestUploadTooLarge(t *testing.T) {
	ts := newTestServer(t, func(c *ServerConfig) { c.MaxRequestSize = 1024 * 1024 })

	rec := ts.do(uploadRequest(t, "resume", "big.txt", strings.Repeat("python ", 300_000)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "File too large. Maximum size is 1MB.", decode[ErrorResponse](t, rec).Error)
}

func TestResultNotFound(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/results/does-not-exist", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, resumatchErrors.ErrCodeResultNotFound, decode[ErrorResponse](t, rec).Code)
}

func TestAnalyzeSkills(t *testing.T) {
	ts := newTestServer(t, nil)

	post := func(body, contentType string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
		return ts.do(req)
	}

	rec := post(`{"skills":["Python","SQL","Django","REST API"]}`, "application/json; charset=utf-8")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	profile := decode[types.SkillProfile](t, rec)
	assert.Equal(t, []string{"Python", "SQL", "Django", "REST API"}, profile.Skills)
	assert.Equal(t, 4, profile.SkillsAnalysis.TotalSkills)

	rec = post(`{"skills":["Python",""]}`, "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, resumatchErrors.ErrCodeInvalidSkillSet, decode[ErrorResponse](t, rec).Code)

	rec = post(`{"skills":["Python"]}`, "text/plain")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(`{"skills":`, "application/json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeMinMatchOverride(t *testing.T) {
	ts := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze",
		strings.NewReader(`{"skills":["Python","SQL"],"minMatchPercentage":100}`))
	req.Header.Set("Content-Type", "application/json")
	rec := ts.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[types.SkillProfile](t, rec).JobMatches)
}

func TestSkillGapsEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/jobs/gaps?title=Backend+Developer&skills=Python,SQL", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	gaps := decode[GapsResponse](t, rec)
	assert.Equal(t, "Backend Developer", gaps.Title)
	assert.Contains(t, gaps.MissingSkills.Required, "Java")
	assert.NotContains(t, gaps.MissingSkills.Required, "Python")

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/api/jobs/gaps?title=Astronaut&skills=Python", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/api/jobs/gaps?skills=Python", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/api/jobs/gaps?title=Backend+Developer&skills=Python,,SQL", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommendEndpoint(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/jobs/recommend?skills=Python,SQL,REST+API,Django&limit=2", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	matches := decode[[]types.JobMatch](t, rec)
	assert.LessOrEqual(t, len(matches), 2)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchScore, matches[i].MatchScore)
	}

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/api/jobs/recommend?skills=Python&limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/skills", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decode[[]string](t, rec), "Python")

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	titles := decode[map[string][]string](t, rec)
	assert.Contains(t, titles["Software Development"], "Backend Developer")
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, nil)
	rec := ts.do(httptest.NewRequest(http.MethodGet, "/upload", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthAndStats(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[map[string]any](t, rec)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "test", health["version"])

	rec = ts.do(httptest.NewRequest(http.MethodGet, "/stats", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[map[string]any](t, rec)
	assert.Contains(t, stats, "store")
	assert.Equal(t, map[string]any{"enabled": false}, stats["rate_limiting"])
}

func TestAuthentication(t *testing.T) {
	ts := newTestServer(t, func(c *ServerConfig) { c.APIKeys = []string{"secret-key-123"} })

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/skills", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Missing API key", decode[ErrorResponse](t, rec).Error)

	req := httptest.NewRequest(http.MethodGet, "/api/skills", nil)
	req.Header.Set("X-API-Key", "wrong")
	assert.Equal(t, http.StatusUnauthorized, ts.do(req).Code)

	req = httptest.NewRequest(http.MethodGet, "/api/skills", nil)
	req.Header.Set("X-API-Key", "secret-key-123")
	assert.Equal(t, http.StatusOK, ts.do(req).Code)

	req = httptest.NewRequest(http.MethodGet, "/api/skills", nil)
	req.Header.Set("Authorization", "Bearer secret-key-123")
	assert.Equal(t, http.StatusOK, ts.do(req).Code)

	assert.Equal(t, http.StatusOK, ts.do(httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
}

func TestRateLimiting(t *testing.T) {
	ts := newTestServer(t, func(c *ServerConfig) {
		c.RateLimit = &config.RateLimitConfig{Enabled: true, RequestsPerMin: 1, BurstCapacity: 1, ByIP: true}
	})

	assert.Equal(t, http.StatusOK, ts.do(httptest.NewRequest(http.MethodGet, "/api/jobs", nil)).Code)

	rec := ts.do(httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	other := httptest.NewRequest(http.MethodGet, "/api/jobs", nil)
	other.RemoteAddr = "198.51.100.7:4000"
	assert.Equal(t, http.StatusOK, ts.do(other).Code, "limits are per client")

	stats := ts.RateLimiter.GetStats()
	assert.Equal(t, int64(2), stats["allowed_total"])
	assert.Equal(t, int64(1), stats["rejected_total"])
}

func TestStatusForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unsupported format", resumatchErrors.NewUnsupportedFormatError("rtf"), http.StatusUnsupportedMediaType},
		{"extraction", resumatchErrors.NewExtractionError("bad pdf", nil), http.StatusUnprocessableEntity},
		{"invalid skill set", resumatchErrors.NewInvalidSkillSetError("blank", nil), http.StatusBadRequest},
		{"validation", resumatchErrors.NewValidationError(resumatchErrors.ErrCodeInvalidRequest, "bad", nil), http.StatusBadRequest},
		{"not found", resumatchErrors.NewNotFoundError(resumatchErrors.ErrCodeResultNotFound, "gone"), http.StatusNotFound},
		{"io", resumatchErrors.NewIOError(resumatchErrors.ErrCodeFileNotReadable, "disk", nil), http.StatusInternalServerError},
		{"max bytes", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge},
		{"plain", stderrors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForError(tt.err))
		})
	}
}
