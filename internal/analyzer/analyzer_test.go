package analyzer

import (
	"testing"

	"resumatch/internal/skills"
	"resumatch/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEmpty(t *testing.T) {
	a := New(DefaultTables())
	got := a.Analyze(skills.Set{})

	assert.Equal(t, 0, got.TotalSkills)
	assert.Empty(t, got.Categories)
	assert.Empty(t, got.DemandAnalysis)
	assert.Empty(t, got.Recommendations)
	assert.Empty(t, got.SkillGaps)
	assert.Empty(t, got.MarketTrends)
	assert.NotNil(t, got.Recommendations)
	assert.Equal(t, 0.0, a.Score(skills.Set{}))
}

func TestAnalyzePythonAndSQL(t *testing.T) {
	a := New(DefaultTables())
	got := a.Analyze(skills.MustNew("Python", "SQL"))

	assert.Equal(t, 2, got.TotalSkills)
	assert.Equal(t, map[string][]string{
		"Programming Languages": {"Python"},
		"Databases":             {"SQL"},
	}, got.Categories)
	assert.Equal(t, []string{"Programming Languages", "Databases"}, got.CategoryOrder)
	assert.Equal(t, map[string]int{
		TierHigh: 2, TierMedium: 0, TierEmerging: 0, TierStandard: 0,
	}, got.DemandAnalysis)

	require.Len(t, got.Recommendations, 4)
	assert.Equal(t, types.Recommendation{
		Type:     "High Demand Skills",
		Skills:   []string{"JavaScript", "React", "AWS"},
		Priority: "High",
		Reason:   highDemandReason,
	}, got.Recommendations[0])
	assert.Equal(t, []string{"Rust", "Go"}, got.Recommendations[1].Skills)
	assert.Equal(t, "Medium", got.Recommendations[1].Priority)
	assert.Equal(t, "Data Science", got.Recommendations[2].Type)
	assert.Equal(t, "Data Analysis", got.Recommendations[3].Type)

	require.Len(t, got.SkillGaps, 2)
	assert.Equal(t, "Frontend Development", got.SkillGaps[0].Area)
	assert.Equal(t, "DevOps", got.SkillGaps[1].Area)

	assert.Equal(t, map[string][]string{
		TrendHot:       {},
		TrendGrowing:   {"Python"},
		TrendStable:    {"SQL"},
		TrendDeclining: {},
	}, got.MarketTrends)
}

func TestTotalAndPartition(t *testing.T) {
	a := New(DefaultTables())
	sets := [][]string{
		{"Python"},
		{"Python", "Cobol", "Docker", "Figma", "Blockchain"},
		{"Mobile Development", "IoT", "REST API", "GraphQL", "Unknown Thing"},
		{"html", "CSS", "JavaScript"},
	}

	for _, names := range sets {
		s := skills.MustNew(names...)
		got := a.Analyze(s)
		assert.Equal(t, s.Len(), got.TotalSkills)

		seen := map[string]int{}
		for _, members := range got.Categories {
			for _, m := range members {
				seen[m]++
			}
		}
		for _, name := range s.Names() {
			assert.Equal(t, 1, seen[name], "skill %q should be in exactly one category", name)
		}
		assert.Len(t, seen, s.Len())

		total := 0
		for _, n := range got.DemandAnalysis {
			total += n
		}
		assert.Equal(t, s.Len(), total)
	}
}

func TestOtherOnlyWhenNeeded(t *testing.T) {
	a := New(DefaultTables())

	got := a.Analyze(skills.MustNew("Go", "Cobol"))
	assert.Equal(t, []string{"Cobol"}, got.Categories[OtherCategory])
	assert.Equal(t, OtherCategory, got.CategoryOrder[len(got.CategoryOrder)-1])

	got = a.Analyze(skills.MustNew("Go"))
	assert.NotContains(t, got.Categories, OtherCategory)
}

func TestSkillGaps(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"frontend only", []string{"HTML", "CSS", "Docker"}, []string{"Backend Development"}},
		{"backend only", []string{"Java", "Git"}, []string{"Frontend Development"}},
		{"full stack", []string{"React", "Python", "AWS"}, nil},
		{"neither", []string{"Figma"}, []string{"DevOps"}},
		{"frontend without devops", []string{"JavaScript"}, []string{"Backend Development", "DevOps"}},
	}

	a := New(DefaultTables())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var areas []string
			for _, g := range a.Analyze(skills.MustNew(tt.input...)).SkillGaps {
				areas = append(areas, g.Area)
			}
			assert.Equal(t, tt.want, areas)
		})
	}
}

func TestComplementRules(t *testing.T) {
	a := New(DefaultTables())

	recTypes := func(names ...string) []string {
		var out []string
		for _, r := range a.Analyze(skills.MustNew(names...)).Recommendations {
			out = append(out, r.Type)
		}
		return out
	}

	assert.Contains(t, recTypes("JavaScript"), "Frontend Development")
	assert.NotContains(t, recTypes("JavaScript", "React"), "Frontend Development")
	assert.NotContains(t, recTypes("Python", "Machine Learning"), "Data Science")
	assert.NotContains(t, recTypes("SQL"), "Data Analysis")
}

func TestRecommendationsStopWhenTiersCovered(t *testing.T) {
	tables := DefaultTables()
	all := append(append([]string{}, tables.HighDemand...), tables.Emerging...)

	got := New(tables).Analyze(skills.MustNew(all...))
	for _, r := range got.Recommendations {
		assert.NotEqual(t, "High Demand Skills", r.Type)
		assert.NotEqual(t, "Emerging Technologies", r.Type)
	}
}

func TestHotSkillsFromOverlappingTables(t *testing.T) {
	tables := DefaultTables()
	tables.Emerging = append(tables.Emerging, "Python")

	got := New(tables).Analyze(skills.MustNew("Python", "Rust"))
	assert.Equal(t, []string{"Python"}, got.MarketTrends[TrendHot])
}

func TestScore(t *testing.T) {
	a := New(DefaultTables())

	tests := []struct {
		name  string
		input []string
		want  float64
	}{
		{"high demand", []string{"Python", "SQL"}, 30.0 / 35.0 * 100},
		{"emerging", []string{"Rust"}, 100},
		{"medium", []string{"Java"}, 25.0 / 35.0 * 100},
		{"standard", []string{"Cobol"}, 10.0 / 35.0 * 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, a.Score(skills.MustNew(tt.input...)), 1e-9)
		})
	}
}

func TestBreakdown(t *testing.T) {
	a := New(DefaultTables())
	got := a.Breakdown(skills.MustNew("Python", "Git", "Agile", "GraphQL"))

	assert.Equal(t, types.SkillBreakdown{
		Languages:       []string{"Python"},
		Tools:           []string{"Git"},
		SoftSkills:      []string{"Agile"},
		TechnicalSkills: []string{"GraphQL"},
	}, got)
}
