package cli

import (
	"resumatch/internal/server"
	"resumatch/internal/store"
	"resumatch/internal/taxonomy"

	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port, host string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server for resume uploads and job matching",
		Long: `Start an HTTP server that parses uploaded resumes and matches skills to jobs.

Available endpoints:
- POST /upload: Analyze a resume sent as multipart field "resume"
- GET /results/{id}: Fetch a stored analysis report
- POST /api/analyze: Analyze an explicit skill list
- GET /api/skills: Canonical skill names
- GET /api/jobs: Job titles by category
- GET /api/jobs/gaps: Skills missing for one job
- GET /api/jobs/recommend: Top job recommendations for a skill list
- GET /health, GET /stats: Health check and server statistics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			logger, err := getLoggerFromContext(cmd.Context())
			if err != nil {
				return err
			}

			if port != "" {
				cfg.Server.Port = port
			}
			if host != "" {
				cfg.Server.Host = host
			}

			analyzer, err := buildAnalyzer(cfg, -1, logger)
			if err != nil {
				return err
			}

			if cfg.Analysis.WatchTaxonomy && cfg.Analysis.TaxonomyFile != "" {
				watcher := taxonomy.NewWatcher(cfg.Analysis.TaxonomyFile, cfg.Analysis.WatchDebounce, func(tax *taxonomy.Taxonomy) {
					analyzer.Pipeline().SetTaxonomy(tax)
					logger.Info("Skills taxonomy reloaded", "skills", tax.Len())
				}, logger)
				if err := watcher.Start(); err != nil {
					return err
				}
				defer func() {
					if err := watcher.Stop(); err != nil {
						logger.LogError(err, "Failed to stop taxonomy watcher")
					}
				}()
			}

			results := store.NewFromConfig(cmd.Context(), cfg.Store, logger)

			serverCfg := server.ServerConfig{
				Host:                cfg.Server.Host,
				Port:                cfg.Server.Port,
				Version:             Version,
				APIKeys:             cfg.Server.APIKeys,
				ReadTimeout:         cfg.Server.ReadTimeout,
				WriteTimeout:        cfg.Server.WriteTimeout,
				IdleTimeout:         cfg.Server.IdleTimeout,
				MaxRequestSize:      cfg.App.MaxFileSize,
				UploadDir:           cfg.Server.UploadDir,
				KeepUploads:         cfg.Server.KeepUploads,
				RecommendationLimit: cfg.Analysis.RecommendationLimit,
				RateLimit:           &cfg.Server.RateLimit,
			}
			return server.NewServer(cfg, serverCfg, analyzer, results, logger).Start(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (default from config)")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind to (default from config)")
	return cmd
}
