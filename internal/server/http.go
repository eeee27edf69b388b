package server

import (
	"time"

	"resumatch/internal/config"
	resumatchErrors "resumatch/internal/errors"
	"resumatch/internal/pipeline"
	"resumatch/internal/store"
	"resumatch/internal/types"
)

// UploadResponse is returned by POST /upload
type UploadResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	ID      string      `json:"id"`
	Data    *UploadData `json:"data"`
}

// UploadData carries the three analysis sections of an upload
type UploadData struct {
	ResumeData     types.ParsedResume   `json:"resume_data"`
	SkillsAnalysis types.SkillsAnalysis `json:"skills_analysis"`
	JobMatches     []types.JobMatch     `json:"job_matches"`
}

// AnalyzeRequest represents the request body for the skill analysis endpoint
type AnalyzeRequest struct {
	Skills             []string `json:"skills"`
	MinMatchPercentage *float64 `json:"minMatchPercentage,omitempty"`
}

// GapsResponse is returned by GET /api/jobs/gaps
type GapsResponse struct {
	Title         string            `json:"title"`
	MissingSkills types.SkillGapSet `json:"missing_skills"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// Analysis components
	Analyzer            *pipeline.Analyzer
	Store               *store.ResultStore
	RecommendationLimit int

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Upload handling
	MaxRequestSize int64
	UploadDir      string
	KeepUploads    bool

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Logger
	Logger *resumatchErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host                string
	Port                string
	Version             string
	APIKeys             []string
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	IdleTimeout         time.Duration
	MaxRequestSize      int64
	UploadDir           string
	KeepUploads         bool
	RecommendationLimit int
	RateLimit           *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, analyzer *pipeline.Analyzer, results *store.ResultStore, logger *resumatchErrors.Logger) *Server {
	if logger == nil {
		logger = resumatchErrors.NewNopLogger()
	}
	if appCfg == nil {
		appCfg = &config.Config{}
	}

	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range cfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(*cfg.RateLimit, logger)
	}

	return &Server{
		Host:                cfg.Host,
		Port:                cfg.Port,
		Version:             cfg.Version,
		AppConfig:           appCfg,
		Analyzer:            analyzer,
		Store:               results,
		RecommendationLimit: cfg.RecommendationLimit,
		APIKeys:             apiKeyMap,
		ReadTimeout:         cfg.ReadTimeout,
		WriteTimeout:        cfg.WriteTimeout,
		IdleTimeout:         cfg.IdleTimeout,
		MaxRequestSize:      cfg.MaxRequestSize,
		UploadDir:           cfg.UploadDir,
		KeepUploads:         cfg.KeepUploads,
		RateLimit:           cfg.RateLimit,
		RateLimiter:         rateLimiter,
		Logger:              logger,
	}
}
