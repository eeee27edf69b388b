package formatters

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"resumatch/internal/taxonomy"
	"resumatch/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *types.AnalysisReport {
	return &types.AnalysisReport{
		ID:         "abc123",
		Filename:   "jane.pdf",
		UploadTime: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		ResumeData: types.ParsedResume{
			Skills:    []string{"Python", "SQL"},
			Education: []string{"BSc Computer Science"},
			Contact:   types.Contact{Email: "jane@example.com"},
		},
		SkillsAnalysis: types.SkillsAnalysis{
			TotalSkills:   2,
			Categories:    map[string][]string{"Programming Languages": {"Python"}, "Databases": {"SQL"}},
			CategoryOrder: []string{"Programming Languages", "Databases"},
			Recommendations: []types.Recommendation{
				{Type: "High Demand Skills", Skills: []string{"Docker"}, Priority: "High", Reason: "In demand."},
			},
		},
		JobMatches: []types.JobMatch{
			{
				Title:         "Data Analyst",
				Category:      "Data & Analytics",
				MatchScore:    48.5,
				MatchedSkills: types.SkillGapSet{Required: []string{"SQL"}},
				MissingSkills: types.SkillGapSet{Required: []string{"Excel", "Tableau"}},
			},
		},
		SkillScore: 42,
	}
}

func TestFormatDispatch(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		format   string
		contains []string
	}{
		{"report text", sampleReport(), "text", []string{"=== RESUME ANALYSIS ===", "ID: abc123", "Email: jane@example.com", "Phone: none", "Programming Languages: Python", "1. Data Analyst (Data & Analytics) - 48.5%", "Missing required: Excel, Tableau"}},
		{"report value text", *sampleReport(), "text", []string{"File: jane.pdf"}},
		{"report markdown", sampleReport(), "markdown", []string{"# Resume Analysis: jane.pdf", "| Programming Languages | Python |", "| Data Analyst | Data & Analytics | 48.5% | Excel, Tableau |", "- **High Demand Skills** (High priority): Docker. In demand."}},
		{"profile text", &types.SkillProfile{Skills: []string{"Go"}, SkillsAnalysis: types.SkillsAnalysis{TotalSkills: 1}}, "text", []string{"=== SKILL PROFILE ===", "Skills: Go", "No matching jobs found."}},
		{"profile markdown", &types.SkillProfile{Skills: []string{"Go"}}, "markdown", []string{"# Skill Profile", "**Skills:** Go"}},
		{"matches text", sampleReport().JobMatches, "text", []string{"=== JOB MATCHES ===", "Data Analyst"}},
		{"gaps text", GapReport{Title: "Data Analyst", MissingSkills: types.SkillGapSet{Required: []string{"Excel"}}}, "text", []string{"=== SKILL GAPS: Data Analyst ===", "Missing required: Excel", "Missing preferred: none"}},
		{"gaps markdown", &GapReport{Title: "Data Analyst"}, "markdown", []string{"# Skill Gaps: Data Analyst", "_None_"}},
		{"jobs text", []types.JobSummary{{Title: "Data Analyst", Category: "Data", ExperienceLevel: "1-5 years", SalaryRange: "$50k"}}, "text", []string{"Data:\n  - Data Analyst (1-5 years, $50k)"}},
		{"jobs markdown", []types.JobSummary{{Title: "Data Analyst", Category: "Data"}}, "markdown", []string{"## Data", "| Data Analyst |"}},
		{"skills text", []taxonomy.Entry{{Canonical: "Go", Variants: []string{"go", "golang"}}}, "text", []string{"Go: go, golang"}},
		{"skills markdown", []taxonomy.Entry{{Canonical: "Go", Variants: []string{"go"}}}, "markdown", []string{"| Go | go |"}},
		{"overlaps text", []taxonomy.Overlap{{InnerSkill: "Java", InnerVariant: "java", OuterSkill: "JavaScript", OuterVariant: "javascript"}}, "text", []string{`- "java" (Java) is contained in "javascript" (JavaScript)`}},
		{"no overlaps", []taxonomy.Overlap{}, "markdown", []string{"No overlapping variants."}},
		{"json for any type", []string{"x"}, "json", []string{"\"x\""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := GlobalRegistry.Format(tt.data, tt.format)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestCategoryOrderFallsBackToSortedKeys(t *testing.T) {
	a := types.SkillsAnalysis{Categories: map[string][]string{"Tools": {"Git"}, "Cloud": {"AWS"}}}
	assert.Equal(t, []string{"Cloud", "Tools"}, categoryOrder(a))

	a.CategoryOrder = []string{"Tools", "Cloud"}
	assert.Equal(t, []string{"Tools", "Cloud"}, categoryOrder(a))
}

func TestJSONAndYAMLUseJSONFieldNames(t *testing.T) {
	report := sampleReport()

	out, err := GlobalRegistry.Format(report, "json")
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "abc123", decoded["id"])
	assert.NotContains(t, out, "CategoryOrder")

	out, err = GlobalRegistry.Format(report, "yaml")
	require.NoError(t, err)
	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, "jane.pdf", fromYAML["filename"])
	assert.Contains(t, fromYAML, "job_matches")
}

func TestUnknownFormat(t *testing.T) {
	_, err := GlobalRegistry.Format(sampleReport(), "xml")
	assert.ErrorContains(t, err, "no formatter found for format 'xml'")
}

func TestTypedFormatterRejectsWrongType(t *testing.T) {
	_, err := (&ReportTextFormatter{}).Format("nope")
	assert.Error(t, err)
	_, err = (&MatchesMarkdownFormatter{}).Format(sampleReport())
	assert.Error(t, err)
}

func TestSupportedFormats(t *testing.T) {
	formats := NewFormatterRegistry().GetSupportedFormats()
	assert.Equal(t, []string{"json", "markdown", "text", "yaml"}, formats)
	for _, f := range formats {
		assert.Equal(t, strings.ToLower(f), f)
	}
}
