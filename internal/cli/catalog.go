package cli

import (
	"resumatch/internal/common"
	"resumatch/internal/jobs"

	"github.com/spf13/cobra"
)

func newJobsCmd() *cobra.Command {
	var output common.CommandConfig

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List the job catalog",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return resolveOutput(cmd, &output)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := getLoggerFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return common.NewOutputHandler(logger).HandleOutput(jobs.NewMatcher(nil).AllJobs(), output)
		},
	}

	addOutputFlags(cmd, &output)
	return cmd
}

func newSkillsCmd() *cobra.Command {
	var output common.CommandConfig
	var overlaps bool

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List the skills taxonomy",
		Long: `List every canonical skill with the variants that count as evidence for it.
With --overlaps, list the variants contained in another skill's variant
instead; under substring matching those skills imply each other.`,
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

			tax, err := loadTaxonomy(cfg.Analysis)
			if err != nil {
				return err
			}

			handler := common.NewOutputHandler(logger)
			if overlaps {
				return handler.HandleOutput(tax.Overlaps(), output)
			}
			return handler.HandleOutput(tax.Entries(), output)
		},
	}

	addOutputFlags(cmd, &output)
	cmd.Flags().BoolVar(&overlaps, "overlaps", false, "List variants that are substrings of other skills' variants")
	return cmd
}
