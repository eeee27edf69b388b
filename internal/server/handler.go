package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"resumatch/internal/observability"
	"resumatch/internal/reader"
	"resumatch/internal/skills"
	"resumatch/internal/utils"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	uploadField       = "resume"
	msgNoFile         = "No file uploaded"
	msgNoSelection    = "No file selected"
	msgInvalidType    = "Invalid file type. Please upload PDF, DOCX, DOC, or TXT files."
	msgUploadComplete = "Resume analyzed successfully!"
)

// createUploadHandler accepts a résumé upload, analyzes it and stores the report
func (s *Server) createUploadHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := om.Tracer("resumatch.api").Start(r.Context(), "api.upload")
		defer span.End()
		metrics := om.GetMetrics()

		if s.MaxRequestSize > 0 && r.ContentLength > s.MaxRequestSize {
			s.rejectUpload(ctx, w, om, span, "too_large", tooLargeMessage(s.MaxRequestSize), http.StatusRequestEntityTooLarge)
			return
		}

		file, header, err := r.FormFile(uploadField)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			switch {
			case stderrors.As(err, &maxBytesErr):
				s.rejectUpload(ctx, w, om, span, "too_large", tooLargeMessage(maxBytesErr.Limit), http.StatusRequestEntityTooLarge)
			case r.MultipartForm != nil && len(r.MultipartForm.Value[uploadField]) > 0:
				// a file input submitted without a file arrives as a plain value
				s.rejectUpload(ctx, w, om, span, "no_selection", msgNoSelection, http.StatusBadRequest)
			default:
				s.rejectUpload(ctx, w, om, span, "no_file", msgNoFile, http.StatusBadRequest)
			}
			return
		}
		defer func() { _ = file.Close() }()

		if strings.TrimSpace(header.Filename) == "" {
			s.rejectUpload(ctx, w, om, span, "no_selection", msgNoSelection, http.StatusBadRequest)
			return
		}

		format, err := reader.DetectFormat(header.Filename)
		if err != nil {
			s.rejectUpload(ctx, w, om, span, "invalid_type", msgInvalidType, http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("upload.format", string(format)),
			attribute.Int64("upload.size", header.Size),
		)
		metrics.RecordDocumentSize(ctx, header.Size, string(format), om)

		stored := strings.ReplaceAll(uuid.NewString(), "-", "") + "." + string(format)
		path, err := utils.SaveUpload(s.UploadDir, stored, file)
		if err != nil {
			span.RecordError(err)
			s.Logger.LogError(err, "Failed to save upload", "filename", header.Filename)
			writeErrorResponse(w, "Error processing resume: "+err.Error(), "", http.StatusInternalServerError)
			return
		}
		if !s.KeepUploads {
			defer func() {
				if err := os.Remove(path); err != nil {
					s.Logger.Warn("Failed to remove upload", "path", path, "error", err.Error())
				}
			}()
		}

		err = metrics.TrackOperation(ctx, "analyze_upload", func(ctx context.Context) error {
			report, err := s.Analyzer.Run(ctx, path, format, header.Filename)
			if err != nil {
				return err
			}
			if err := s.Store.Save(ctx, report); err != nil {
				return err
			}

			metrics.RecordBusinessMetric(ctx, observability.MetricResumeParsed, true, om,
				attribute.String("format", string(format)))
			metrics.RecordJobsMatched(ctx, len(report.JobMatches), om)
			span.SetAttributes(
				attribute.String("report.id", report.ID),
				attribute.Int("report.skills", len(report.ResumeData.Skills)),
			)

			writeJSON(w, http.StatusOK, UploadResponse{
				Success: true,
				Message: msgUploadComplete,
				ID:      report.ID,
				Data: &UploadData{
					ResumeData:     report.ResumeData,
					SkillsAnalysis: report.SkillsAnalysis,
					JobMatches:     report.JobMatches,
				},
			})
			return nil
		}, om)
		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, observability.MetricResumeParsed, false, om,
				attribute.String("format", string(format)))
			s.Logger.LogError(err, "Resume analysis failed", "filename", header.Filename)
			writeAppError(w, "Error processing resume: "+err.Error(), err)
		}
	}
}

// rejectUpload records a rejected upload and writes the error response
func (s *Server) rejectUpload(ctx context.Context, w http.ResponseWriter, om *observability.ObservabilityManager, span trace.Span, reason, message string, status int) {
	span.SetAttributes(
		attribute.String("error.type", "validation"),
		attribute.String("upload.rejected", reason),
	)
	om.GetMetrics().RecordBusinessMetric(ctx, observability.MetricUploadRejected, false, om,
		attribute.String("reason", reason))
	writeErrorResponse(w, message, "", status)
}

func tooLargeMessage(limit int64) string {
	return fmt.Sprintf("File too large. Maximum size is %dMB.", limit/(1024*1024))
}

// createResultsHandler returns a stored analysis report by ID
func (s *Server) createResultsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := om.Tracer("resumatch.api").Start(r.Context(), "api.results")
		defer span.End()

		id := r.PathValue("id")
		span.SetAttributes(attribute.String("report.id", id))

		report, err := s.Store.Get(ctx, id)
		om.GetMetrics().RecordBusinessMetric(ctx, observability.MetricStoreLookup, err == nil, om)
		if err != nil {
			span.RecordError(err)
			writeAppError(w, "Analysis result not found", err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// createAnalyzeHandler analyzes an explicit skill list without a document
func (s *Server) createAnalyzeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := om.Tracer("resumatch.api").Start(r.Context(), "api.analyze")
		defer span.End()
		metrics := om.GetMetrics()

		var req AnalyzeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			status := http.StatusBadRequest
			var maxBytesErr *http.MaxBytesError
			if stderrors.As(err, &maxBytesErr) {
				status = http.StatusRequestEntityTooLarge
			}
			writeErrorResponse(w, "Invalid request body", err.Error(), status)
			return
		}

		minScore := s.Analyzer.MinMatchPercentage()
		if req.MinMatchPercentage != nil {
			minScore = *req.MinMatchPercentage
		}
		span.SetAttributes(
			attribute.Int("request.skills", len(req.Skills)),
			attribute.Float64("request.min_match", minScore),
		)

		profile, err := s.Analyzer.Profile(ctx, req.Skills, minScore)
		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, observability.MetricSkillsAnalyzed, false, om)
			writeAppError(w, "Invalid skill list", err)
			return
		}

		metrics.RecordBusinessMetric(ctx, observability.MetricSkillsAnalyzed, true, om)
		metrics.RecordJobsMatched(ctx, len(profile.JobMatches), om)
		writeJSON(w, http.StatusOK, profile)
	}
}

// createGapsHandler reports the missing skills for one job title
func (s *Server) createGapsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := om.Tracer("resumatch.api").Start(r.Context(), "api.gaps")
		defer span.End()

		title := strings.TrimSpace(r.URL.Query().Get("title"))
		if title == "" {
			writeErrorResponse(w, "Missing job title", "title query parameter is required", http.StatusBadRequest)
			return
		}
		span.SetAttributes(attribute.String("job.title", title))

		gaps, ok, err := s.Analyzer.SkillGaps(splitSkills(r.URL.Query().Get("skills")), title)
		if err != nil {
			span.RecordError(err)
			writeAppError(w, "Invalid skill list", err)
			return
		}
		if !ok {
			writeErrorResponse(w, "Job not found", fmt.Sprintf("no job titled %q", title), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, GapsResponse{Title: title, MissingSkills: gaps})
	}
}

// createRecommendHandler returns the top job matches for a skill list
func (s *Server) createRecommendHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := om.Tracer("resumatch.api").Start(r.Context(), "api.recommend")
		defer span.End()

		set, err := skills.New(splitSkills(r.URL.Query().Get("skills"))...)
		if err != nil {
			span.RecordError(err)
			writeAppError(w, "Invalid skill list", err)
			return
		}

		limit := s.RecommendationLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				writeErrorResponse(w, "Invalid limit", "limit must be an integer", http.StatusBadRequest)
				return
			}
			limit = n
		}

		matches := s.Analyzer.Matcher().Recommend(set, limit)
		span.SetAttributes(attribute.Int("response.matches", len(matches)))
		writeJSON(w, http.StatusOK, matches)
	}
}

// skillsHandler lists the canonical skill names currently recognised
func (s *Server) skillsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Analyzer.Pipeline().Extractor().Taxonomy().Names())
}

// jobsHandler lists job titles by category
func (s *Server) jobsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Analyzer.Matcher().Titles())
}

// splitSkills splits a comma-separated query value. Empty items are kept so
// that validation can reject them.
func splitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// writeJSON writes v as a JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
