package formatters

import (
	"encoding/json"
	"fmt"
	"sort"

	"resumatch/internal/taxonomy"
	"resumatch/internal/types"

	"gopkg.in/yaml.v3"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

const (
	typeAny      = "any"
	typeReport   = "AnalysisReport"
	typeProfile  = "SkillProfile"
	typeMatches  = "JobMatches"
	typeGaps     = "SkillGaps"
	typeJobs     = "JobSummaries"
	typeSkills   = "SkillEntries"
	typeOverlaps = "Overlaps"
)

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", typeAny, &JSONFormatter{})
	registry.RegisterFormatter("yaml", typeAny, &YAMLFormatter{})

	registry.RegisterFormatter("text", typeReport, &ReportTextFormatter{})
	registry.RegisterFormatter("markdown", typeReport, &ReportMarkdownFormatter{})
	registry.RegisterFormatter("text", typeProfile, &ProfileTextFormatter{})
	registry.RegisterFormatter("markdown", typeProfile, &ProfileMarkdownFormatter{})
	registry.RegisterFormatter("text", typeMatches, &MatchesTextFormatter{})
	registry.RegisterFormatter("markdown", typeMatches, &MatchesMarkdownFormatter{})
	registry.RegisterFormatter("text", typeGaps, &GapsTextFormatter{})
	registry.RegisterFormatter("markdown", typeGaps, &GapsMarkdownFormatter{})
	registry.RegisterFormatter("text", typeJobs, &JobsTextFormatter{})
	registry.RegisterFormatter("markdown", typeJobs, &JobsMarkdownFormatter{})
	registry.RegisterFormatter("text", typeSkills, &SkillsTextFormatter{})
	registry.RegisterFormatter("markdown", typeSkills, &SkillsMarkdownFormatter{})
	registry.RegisterFormatter("text", typeOverlaps, &OverlapsTextFormatter{})
	registry.RegisterFormatter("markdown", typeOverlaps, &OverlapsTextFormatter{})

	return registry
}

// GlobalRegistry is the default formatter registry instance
var GlobalRegistry = NewFormatterRegistry()

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters[typeAny]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	sort.Strings(formats)
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case *types.AnalysisReport, types.AnalysisReport:
		return typeReport
	case *types.SkillProfile, types.SkillProfile:
		return typeProfile
	case []types.JobMatch:
		return typeMatches
	case GapReport, *GapReport:
		return typeGaps
	case []types.JobSummary:
		return typeJobs
	case []taxonomy.Entry:
		return typeSkills
	case []taxonomy.Overlap:
		return typeOverlaps
	default:
		return typeAny
	}
}

// GapReport pairs a job title with the skills missing for it
type GapReport struct {
	Title         string            `json:"title"`
	MissingSkills types.SkillGapSet `json:"missing_skills"`
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData) + "\n", nil
}

func (jf *JSONFormatter) SupportedType() string {
	return typeAny
}

// YAMLFormatter renders any value as YAML using its JSON field names
type YAMLFormatter struct{}

func (yf *YAMLFormatter) Format(data any) (string, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	var generic any
	if err := json.Unmarshal(jsonData, &generic); err != nil {
		return "", err
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (yf *YAMLFormatter) SupportedType() string {
	return typeAny
}

// categoryOrder returns the analysis categories in table order, falling back
// to sorted keys when the order was lost (for example after a JSON round trip)
func categoryOrder(a types.SkillsAnalysis) []string {
	if len(a.CategoryOrder) == len(a.Categories) {
		return a.CategoryOrder
	}
	keys := make([]string, 0, len(a.Categories))
	for k := range a.Categories {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func asReport(data any) (*types.AnalysisReport, error) {
	switch v := data.(type) {
	case *types.AnalysisReport:
		return v, nil
	case types.AnalysisReport:
		return &v, nil
	}
	return nil, fmt.Errorf("expected AnalysisReport, got %T", data)
}

func asProfile(data any) (*types.SkillProfile, error) {
	switch v := data.(type) {
	case *types.SkillProfile:
		return v, nil
	case types.SkillProfile:
		return &v, nil
	}
	return nil, fmt.Errorf("expected SkillProfile, got %T", data)
}

// groupJobs groups summaries by category, keeping catalog order
func groupJobs(jobs []types.JobSummary) ([]string, map[string][]types.JobSummary) {
	var order []string
	grouped := make(map[string][]types.JobSummary)
	for _, job := range jobs {
		if _, seen := grouped[job.Category]; !seen {
			order = append(order, job.Category)
		}
		grouped[job.Category] = append(grouped[job.Category], job)
	}
	return order, grouped
}

func asGapReport(data any) (*GapReport, error) {
	switch v := data.(type) {
	case *GapReport:
		return v, nil
	case GapReport:
		return &v, nil
	}
	return nil, fmt.Errorf("expected GapReport, got %T", data)
}
