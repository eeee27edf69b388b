package cli

import (
	"fmt"

	"resumatch/internal/config"
	"resumatch/internal/errors"
	"resumatch/internal/extract"
	"resumatch/internal/pipeline"
	"resumatch/internal/taxonomy"
)

// loadTaxonomy returns the configured taxonomy file, or the built-in one
func loadTaxonomy(cfg config.AnalysisConfig) (*taxonomy.Taxonomy, error) {
	if cfg.TaxonomyFile == "" {
		return taxonomy.Default(), nil
	}
	tax, err := taxonomy.LoadFile(cfg.TaxonomyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy %s: %w", cfg.TaxonomyFile, err)
	}
	return tax, nil
}

// buildAnalyzer wires the parse pipeline, skills analyzer and job matcher
// from configuration. minScore overrides the configured match threshold
// when non-negative.
func buildAnalyzer(cfg *config.Config, minScore float64, logger *errors.Logger) (*pipeline.Analyzer, error) {
	mode, err := extract.ParseMatchMode(cfg.Analysis.MatchMode)
	if err != nil {
		return nil, err
	}

	tax, err := loadTaxonomy(cfg.Analysis)
	if err != nil {
		return nil, err
	}
	warnOverlaps(tax, mode, logger)

	if minScore < 0 {
		minScore = cfg.Analysis.MinMatchPercentage
	}

	p := pipeline.New(nil, extract.NewSkillExtractor(tax, mode), nil)
	return pipeline.NewAnalyzer(p, nil, nil, pipeline.Options{MinMatchPercentage: minScore}), nil
}

// warnOverlaps logs variants that substring matching lets one skill imply
// another through
func warnOverlaps(tax *taxonomy.Taxonomy, mode extract.MatchMode, logger *errors.Logger) {
	if mode != extract.MatchSubstring {
		return
	}
	overlaps := tax.Overlaps()
	if len(overlaps) == 0 {
		return
	}
	logger.Warn("Taxonomy variants overlap under substring matching",
		"count", len(overlaps),
		"example", overlaps[0].String())
}
