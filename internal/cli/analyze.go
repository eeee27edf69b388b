package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"resumatch/internal/common"
	"resumatch/internal/reader"
	"resumatch/internal/types"

	"github.com/spf13/cobra"
)

type analyzeInput struct {
	path   string
	format reader.Format
}

func newAnalyzeCmd() *cobra.Command {
	var output common.CommandConfig
	var minScore float64

	cmd := &cobra.Command{
		Use:   "analyze [resume-file]",
		Short: "Parse a resume, analyze its skills and match it to jobs",
		Long: `Parse a PDF, DOCX, DOC or TXT resume and produce a full report:

- contact details, education and experience lines
- skills found in the text, grouped by category
- demand analysis, recommendations, skill gaps and market trends
- job matches at or above the minimum match percentage`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return resolveOutput(cmd, &output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := getConfigFromContext(cmd.Context())
			if err != nil {
				return err
			}
			logger, err := getLoggerFromContext(cmd.Context())
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("min-score") {
				minScore = -1
			}
			analyzer, err := buildAnalyzer(cfg, minScore, logger)
			if err != nil {
				return err
			}

			output.InputFormats = make([]string, len(reader.SupportedFormats))
			for i, f := range reader.SupportedFormats {
				output.InputFormats[i] = string(f)
			}

			createInput := func(paths []string) (analyzeInput, error) {
				format, err := reader.DetectFormat(paths[0])
				if err != nil {
					return analyzeInput{}, err
				}
				return analyzeInput{path: paths[0], format: format}, nil
			}

			logDetails := func(input analyzeInput, out common.CommandConfig) {
				logger.Info("Starting resume analysis",
					"file", input.path,
					"format", string(input.format),
					"min_score", analyzer.MinMatchPercentage(),
					"output_format", out.OutputFormat)
			}

			operation := func(ctx context.Context, input analyzeInput) (*types.AnalysisReport, error) {
				return analyzer.Run(ctx, input.path, input.format, filepath.Base(input.path))
			}

			if err := common.RunCommand(cmd.Context(), logger, output, args, createInput, operation, logDetails); err != nil {
				return fmt.Errorf("failed to analyze resume: %w", err)
			}
			logger.Info("Resume analysis completed successfully")
			return nil
		},
	}

	addOutputFlags(cmd, &output)
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "Minimum job match percentage (default from config)")
	return cmd
}
