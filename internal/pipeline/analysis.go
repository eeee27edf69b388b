package pipeline

import (
	"context"
	"path/filepath"
	"time"

	"resumatch/internal/analyzer"
	"resumatch/internal/jobs"
	"resumatch/internal/reader"
	"resumatch/internal/skills"
	"resumatch/internal/types"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// Options tune an Analyzer.
type Options struct {
	MinMatchPercentage float64
}

// Analyzer runs the full analysis: parse, skills analysis and job matching.
type Analyzer struct {
	pipeline *Pipeline
	skills   *analyzer.Analyzer
	matcher  *jobs.Matcher
	opts     Options

	now   func() time.Time
	newID func() string
}

// NewAnalyzer combines a pipeline with a skills analyzer and a job matcher.
// Nil components are replaced by their built-in defaults.
func NewAnalyzer(p *Pipeline, a *analyzer.Analyzer, m *jobs.Matcher, opts Options) *Analyzer {
	if p == nil {
		p = New(nil, nil, nil)
	}
	if a == nil {
		a = analyzer.New(analyzer.DefaultTables())
	}
	if m == nil {
		m = jobs.NewMatcher(nil)
	}
	return &Analyzer{
		pipeline: p,
		skills:   a,
		matcher:  m,
		opts:     opts,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Pipeline returns the underlying parse pipeline.
func (a *Analyzer) Pipeline() *Pipeline {
	return a.pipeline
}

// Matcher returns the job matcher.
func (a *Analyzer) Matcher() *jobs.Matcher {
	return a.matcher
}

// MinMatchPercentage returns the configured match threshold.
func (a *Analyzer) MinMatchPercentage() float64 {
	return a.opts.MinMatchPercentage
}

// Run parses the document at path and analyzes it. filename is the name the
// document was submitted under; it defaults to the base of path.
func (a *Analyzer) Run(ctx context.Context, path string, format reader.Format, filename string) (*types.AnalysisReport, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "pipeline.analyze")
	defer span.End()

	parsed, err := a.pipeline.Parse(ctx, path, format)
	if err != nil {
		return nil, err
	}
	if filename == "" {
		filename = filepath.Base(path)
	}

	set := skills.FromTrusted(parsed.Skills...)
	report := &types.AnalysisReport{
		ID:             a.newID(),
		Filename:       filename,
		UploadTime:     a.now().UTC(),
		ResumeData:     *parsed,
		SkillsAnalysis: a.skills.Analyze(set),
		JobMatches:     a.matcher.FindMatches(set, a.opts.MinMatchPercentage),
		SkillScore:     a.skills.Score(set),
		SkillBreakdown: a.skills.Breakdown(set),
	}

	span.SetAttributes(
		attribute.String("report.id", report.ID),
		attribute.Int("report.skills", set.Len()),
		attribute.Int("report.job_matches", len(report.JobMatches)),
	)
	return report, nil
}

// Profile analyzes an explicit skill list. Blank names are rejected with an
// InvalidSkillSet error.
func (a *Analyzer) Profile(ctx context.Context, names []string, minScore float64) (*types.SkillProfile, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "pipeline.profile")
	defer span.End()

	set, err := skills.New(names...)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("profile.skills", set.Len()))
	return &types.SkillProfile{
		Skills:         set.Names(),
		SkillsAnalysis: a.skills.Analyze(set),
		JobMatches:     a.matcher.FindMatches(set, minScore),
		SkillScore:     a.skills.Score(set),
		SkillBreakdown: a.skills.Breakdown(set),
	}, nil
}

// SkillGaps validates names and looks up the gaps for one job title.
func (a *Analyzer) SkillGaps(names []string, title string) (types.SkillGapSet, bool, error) {
	set, err := skills.New(names...)
	if err != nil {
		return types.SkillGapSet{}, false, err
	}
	gaps, ok := a.matcher.SkillGaps(set, title)
	return gaps, ok, nil
}
