package server

import (
	"fmt"

	"resumatch/internal/utils"
)

// displayServerInfo shows server configuration information
func (s *Server) displayServerInfo() {
	s.displayEndpoints()
	s.displayAuthInfo()
	s.displayRequestLimitInfo()
	s.displayRateLimitInfo()
	s.displayStoreInfo()
}

// displayEndpoints shows available API endpoints
func (s *Server) displayEndpoints() {
	fmt.Println("Available endpoints:")
	fmt.Println("  GET  /health                - Health check")
	fmt.Println("  GET  /stats                 - Server statistics")
	fmt.Println("  POST /upload                - Upload and analyze a resume (multipart field 'resume')")
	fmt.Println("  GET  /results/{id}          - Fetch a stored analysis")
	fmt.Println("  POST /api/analyze           - Analyze a JSON skill list")
	fmt.Println("  GET  /api/skills            - List known skills")
	fmt.Println("  GET  /api/jobs              - List job titles by category")
	fmt.Println("  GET  /api/jobs/gaps         - Missing skills for ?title=&skills=")
	fmt.Println("  GET  /api/jobs/recommend    - Top matches for ?skills=&limit=")
}

// displayAuthInfo shows authentication configuration
func (s *Server) displayAuthInfo() {
	if len(s.APIKeys) > 0 {
		fmt.Printf("API authentication: ENABLED (%d keys configured)\n", len(s.APIKeys))
		fmt.Println("Include 'X-API-Key: <your-key>' header in requests outside /health and /stats")
	} else {
		fmt.Println("API authentication: DISABLED (no API keys configured)")
		fmt.Println("WARNING: API endpoints are publicly accessible!")
	}
}

// displayRequestLimitInfo shows request size limit configuration
func (s *Server) displayRequestLimitInfo() {
	if s.MaxRequestSize > 0 {
		fmt.Printf("Request size limit: %s\n", utils.FormatFileSize(s.MaxRequestSize))
	} else {
		fmt.Println("Request size limit: DISABLED")
		fmt.Println("WARNING: No request size limits configured!")
	}
}

// displayRateLimitInfo shows rate limiting configuration
func (s *Server) displayRateLimitInfo() {
	if s.RateLimit != nil && s.RateLimit.Enabled {
		fmt.Printf("Rate limiting: ENABLED (%d requests/min, burst: %d)\n",
			s.RateLimit.RequestsPerMin, s.RateLimit.BurstCapacity)
		if s.RateLimit.ByAPIKey {
			fmt.Println("  - Per API key rate limiting enabled")
		}
		if s.RateLimit.ByIP {
			fmt.Println("  - Per IP address rate limiting enabled")
		}
	} else {
		fmt.Println("Rate limiting: DISABLED")
	}
}

func (s *Server) displayStoreInfo() {
	if s.Store == nil {
		return
	}
	if s.Store.Stats().Redis {
		fmt.Println("Result store: memory + redis")
	} else {
		fmt.Println("Result store: memory only")
	}
	if s.KeepUploads {
		fmt.Printf("Uploads kept in: %s\n", s.UploadDir)
	}
}
