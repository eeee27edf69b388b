package cli

import (
	"fmt"

	"resumatch/internal/common"
	"resumatch/internal/skills"

	"github.com/spf13/cobra"
)

// skillFlags collects a skill list from --skills and --skills-file
type skillFlags struct {
	names []string
	file  string
}

func (f *skillFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.names, "skills", nil, "Comma-separated skill names")
	cmd.Flags().StringVar(&f.file, "skills-file", "", "File listing skills, one per line or comma-separated")
}

func (f *skillFlags) resolve(cmd *cobra.Command) ([]string, error) {
	names := append([]string{}, f.names...)
	if f.file != "" {
		logger, err := getLoggerFromContext(cmd.Context())
		if err != nil {
			return nil, err
		}
		fromFile, err := common.NewFileProcessor(logger).ReadSkillList(f.file)
		if err != nil {
			return nil, err
		}
		names = append(names, fromFile...)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no skills given: use --skills or --skills-file")
	}
	return names, nil
}

func newMatchCmd() *cobra.Command {
	var output common.CommandConfig
	var flags skillFlags
	var minScore float64
	var limit int

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Rank jobs for an explicit skill list",
		Long: `Score every job in the catalog against the given skills and print the
matches at or above the minimum match percentage, best first.`,
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
			set, err := skills.New(names...)
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

			matches := analyzer.Matcher().FindMatches(set, analyzer.MinMatchPercentage())
			if limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}
			logger.Debug("Job matching completed", "skills", set.Len(), "matches", len(matches))

			return common.NewOutputHandler(logger).HandleOutput(matches, output)
		},
	}

	addOutputFlags(cmd, &output)
	flags.register(cmd)
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "Minimum job match percentage (default from config)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of matches (0 for all)")
	return cmd
}
