package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"

	resumatchErrors "resumatch/internal/errors"
)

// healthHandler reports service health including the result store backend
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"status":  "healthy",
		"service": "resumatch",
		"version": s.Version,
	}

	if s.Analyzer != nil {
		response["skills"] = len(s.Analyzer.Pipeline().Extractor().Taxonomy().Names())
		response["jobs"] = s.Analyzer.Matcher().Catalog().Len()
	}

	status := http.StatusOK
	if s.Store != nil {
		stats := s.Store.Stats()
		response["store"] = map[string]any{
			"healthy": s.Store.IsHealthy(),
			"redis":   stats.Redis,
			"breaker": stats.Breaker,
		}
		// reports stay readable from memory, so an open breaker only degrades
		if !s.Store.IsHealthy() {
			response["status"] = "degraded"
			status = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode health response: %v", err)
	}
}

// statsHandler provides server statistics including rate limiting info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]any{
		"service": "resumatch",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
			"keep_uploads":           s.KeepUploads,
		},
	}

	if s.Store != nil {
		response["store"] = s.Store.Stats()
	}

	// Add rate limiting stats if enabled
	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
			"by_ip":            s.RateLimit.ByIP,
			"by_api_key":       s.RateLimit.ByAPIKey,
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if stderrors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes): %w", maxBytesErr.Limit, err)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// statusForError maps an application error onto an HTTP status code
func statusForError(err error) int {
	var maxBytesErr *http.MaxBytesError
	if stderrors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}

	var appErr *resumatchErrors.AppError
	if !stderrors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.Type {
	case resumatchErrors.ErrorTypeUnsupportedFormat:
		return http.StatusUnsupportedMediaType
	case resumatchErrors.ErrorTypeExtraction:
		return http.StatusUnprocessableEntity
	case resumatchErrors.ErrorTypeInvalidSkillSet, resumatchErrors.ErrorTypeValidation:
		return http.StatusBadRequest
	case resumatchErrors.ErrorTypeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeAppError writes err with the status derived from its type. The
// application error code, when present, is included in the body.
func writeAppError(w http.ResponseWriter, errorText string, err error) {
	response := ErrorResponse{Error: errorText}
	var appErr *resumatchErrors.AppError
	if stderrors.As(err, &appErr) {
		response.Message = appErr.Message
		response.Code = appErr.Code
	} else if err != nil {
		response.Message = err.Error()
	}
	writeJSON(w, statusForError(err), response)
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	writeJSON(w, statusCode, ErrorResponse{
		Error:   error,
		Message: message,
	})
}
