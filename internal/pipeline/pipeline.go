// Package pipeline wires the document reader, the normalizer and the
// extractors into a single parse step, and combines the parsed résumé with
// skills analysis and job matching.
package pipeline

import (
	"context"
	"sync/atomic"

	"resumatch/internal/extract"
	"resumatch/internal/nlp"
	"resumatch/internal/reader"
	"resumatch/internal/taxonomy"
	"resumatch/internal/types"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "resumatch.pipeline"

// Pipeline parses résumé documents. The skill extractor can be swapped at
// runtime; a parse in flight keeps the extractor it started with.
type Pipeline struct {
	reader    reader.DocumentReader
	extractor atomic.Pointer[extract.SkillExtractor]
	entities  *extract.EntityExtractor
}

// New creates a Pipeline. Nil collaborators fall back to the file reader,
// the default taxonomy in substring mode, and a fresh entity extractor.
func New(r reader.DocumentReader, skills *extract.SkillExtractor, entities *extract.EntityExtractor) *Pipeline {
	if r == nil {
		r = reader.NewFileReader()
	}
	if skills == nil {
		skills = extract.NewSkillExtractor(nil, extract.MatchSubstring)
	}
	if entities == nil {
		entities = extract.NewEntityExtractor()
	}
	p := &Pipeline{reader: r, entities: entities}
	p.extractor.Store(skills)
	return p
}

// Extractor returns the skill extractor currently in use.
func (p *Pipeline) Extractor() *extract.SkillExtractor {
	return p.extractor.Load()
}

// SetTaxonomy swaps in a new taxonomy, keeping the current match mode.
func (p *Pipeline) SetTaxonomy(tax *taxonomy.Taxonomy) {
	p.extractor.Store(extract.NewSkillExtractor(tax, p.extractor.Load().Mode()))
}

// Parse reads the document at path and extracts its contents. Reader errors
// are returned unchanged.
func (p *Pipeline) Parse(ctx context.Context, path string, format reader.Format) (*types.ParsedResume, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "pipeline.parse")
	defer span.End()
	span.SetAttributes(attribute.String("document.format", string(format)))

	if _, err := reader.ParseFormat(string(format)); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unsupported format")
		return nil, err
	}

	text, err := p.reader.ReadText(ctx, path, format)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "text extraction failed")
		return nil, err
	}

	parsed := p.ParseText(text, path)
	span.SetAttributes(
		attribute.Int("resume.skills", len(parsed.Skills)),
		attribute.Int("resume.text_length", len(parsed.RawText)),
	)
	return parsed, nil
}

// ParseText extracts skills and entities from raw text. source is recorded
// as the file path.
func (p *Pipeline) ParseText(text, source string) *types.ParsedResume {
	normalized := nlp.Normalize(text)
	return &types.ParsedResume{
		Skills:     p.extractor.Load().Extract(normalized).Names(),
		Education:  p.entities.Education(normalized),
		Experience: p.entities.Experience(normalized),
		Contact:    p.entities.Contact(normalized),
		RawText:    normalized,
		FilePath:   source,
	}
}
