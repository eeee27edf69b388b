package cli

import (
	"fmt"

	"resumatch/internal/common"
	"resumatch/internal/formatters"

	"github.com/spf13/cobra"
)

func newGapsCmd() *cobra.Command {
	var output common.CommandConfig
	var flags skillFlags
	var job string

	cmd := &cobra.Command{
		Use:   "gaps",
		Short: "Show the skills missing for one job",
		Long: `List the required and preferred skills of a catalog job that the given
skill list lacks. An unknown job title is reported, not treated as an error.`,
		Args: cobra.NoArgs,
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

			names, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			analyzer, err := buildAnalyzer(cfg, -1, logger)
			if err != nil {
				return err
			}

			gaps, ok, err := analyzer.SkillGaps(names, job)
			if err != nil {
				return err
			}
			if !ok {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "Job %q not found\n", job)
				return err
			}

			return common.NewOutputHandler(logger).HandleOutput(formatters.GapReport{Title: job, MissingSkills: gaps}, output)
		},
	}

	addOutputFlags(cmd, &output)
	flags.register(cmd)
	cmd.Flags().StringVar(&job, "job", "", "Job title to compare against")
	_ = cmd.MarkFlagRequired("job")
	return cmd
}
