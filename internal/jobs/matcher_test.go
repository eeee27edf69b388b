package jobs

import (
	"encoding/json"
	"testing"

	"resumatch/internal/errors"
	"resumatch/internal/skills"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog([]Category{
		{
			Name: "Engineering",
			Profiles: []Profile{
				{Title: "Data Engineer", RequiredSkills: []string{"Python", "SQL"}, PreferredSkills: []string{"Django"}},
				{Title: "Empty Role", PreferredSkills: []string{"Python"}},
				{Title: "SQL Developer", RequiredSkills: []string{"SQL", "Python"}, PreferredSkills: []string{"Excel"}},
			},
		},
		{
			Name: "Ops",
			Profiles: []Profile{
				{Title: "Go Developer", RequiredSkills: []string{"Go"}, PreferredSkills: []string{"Docker", "Kubernetes"}},
			},
		},
	})
	require.NoError(t, err)
	return c
}

func TestFindMatchesScenario(t *testing.T) {
	m := NewMatcher(testCatalog(t))
	got := m.FindMatches(skills.MustNew("Python", "SQL"), DefaultMinMatchPercentage)

	require.Len(t, got, 2)
	assert.Equal(t, "Data Engineer", got[0].Title)
	assert.Equal(t, "Engineering", got[0].Category)
	assert.InDelta(t, 70.0, got[0].MatchScore, 1e-9)
	assert.Equal(t, []string{"Python", "SQL"}, got[0].MatchedSkills.Required)
	assert.Equal(t, []string{}, got[0].MatchedSkills.Preferred)
	assert.Equal(t, []string{}, got[0].MissingSkills.Required)
	assert.Equal(t, []string{"Django"}, got[0].MissingSkills.Preferred)

	// Equal scores keep catalog order.
	assert.Equal(t, "SQL Developer", got[1].Title)
}

func TestFindMatchesThresholdAndBounds(t *testing.T) {
	m := NewMatcher(nil)
	inputs := [][]string{
		{"Python", "SQL", "Machine Learning", "Pandas", "NumPy", "TensorFlow", "PyTorch", "Scikit-learn", "Tableau", "Power BI"},
		{"Docker", "Kubernetes", "AWS", "Git", "Jenkins"},
		{"Figma"},
		{"html", "css", "javascript", "react"},
	}

	for _, minScore := range []float64{0, 30, 50, 90} {
		for _, in := range inputs {
			for _, match := range m.FindMatches(skills.MustNew(in...), minScore) {
				assert.GreaterOrEqual(t, match.MatchScore, minScore)
				assert.GreaterOrEqual(t, match.MatchScore, 0.0)
				assert.LessOrEqual(t, match.MatchScore, 100.0)
			}
		}
	}

	full := m.FindMatches(skills.MustNew(inputs[0]...), 100)
	require.Len(t, full, 1)
	assert.Equal(t, "Data Scientist", full[0].Title)
	assert.InDelta(t, 100.0, full[0].MatchScore, 1e-9)
}

func TestFindMatchesExcludesJobsWithoutRequiredSkills(t *testing.T) {
	m := NewMatcher(testCatalog(t))
	for _, match := range m.FindMatches(skills.MustNew("Python"), 0) {
		assert.NotEqual(t, "Empty Role", match.Title)
	}
}

func TestFindMatchesEmptySkills(t *testing.T) {
	m := NewMatcher(nil)
	got := m.FindMatches(skills.Set{}, DefaultMinMatchPercentage)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestScoreMonotonic(t *testing.T) {
	base := skills.MustNew("Python", "Git")
	for _, e := range DefaultCatalog().entries {
		before := Score(base, e.profile)
		for _, add := range append(append([]string{}, e.profile.RequiredSkills...), e.profile.PreferredSkills...) {
			extended := skills.MustNew(append(base.Names(), add)...)
			assert.GreaterOrEqual(t, Score(extended, e.profile), before,
				"adding %q must not lower %q", add, e.profile.Title)
		}
	}
}

func TestScoreIsCaseInsensitive(t *testing.T) {
	p := Profile{Title: "x", RequiredSkills: []string{"REST API"}, PreferredSkills: []string{"GraphQL"}}
	assert.InDelta(t, 100.0, Score(skills.MustNew("rest api", "graphql"), p), 1e-9)
}

func TestFindMatchesDeterministic(t *testing.T) {
	m := NewMatcher(nil)
	s := skills.MustNew("Python", "SQL", "JavaScript", "HTML", "CSS", "Agile", "Excel")

	first, err := json.Marshal(m.FindMatches(s, 0))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(m.FindMatches(s, 0))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestRecommend(t *testing.T) {
	m := NewMatcher(nil)
	s := skills.MustNew("Python", "SQL", "JavaScript", "HTML", "CSS", "REST API", "Excel", "Data Analysis", "Agile")

	all := m.FindMatches(s, DefaultMinMatchPercentage)
	require.Greater(t, len(all), 2)

	assert.Equal(t, all[:2], m.Recommend(s, 2))
	assert.Len(t, m.Recommend(s, 0), min(len(all), DefaultRecommendationLimit))
}

func TestSkillGaps(t *testing.T) {
	m := NewMatcher(nil)

	gaps, ok := m.SkillGaps(skills.MustNew("Docker", "AWS"), "DevOps Engineer")
	require.True(t, ok)
	assert.Equal(t, []string{"Kubernetes", "Git", "Jenkins"}, gaps.Required)
	assert.Equal(t, []string{"Azure", "Google Cloud", "Terraform", "Ansible", "Linux"}, gaps.Preferred)

	_, ok = m.SkillGaps(skills.MustNew("Docker"), "Nonexistent Title")
	assert.False(t, ok)
}

func TestAllJobsAndTitles(t *testing.T) {
	m := NewMatcher(nil)

	all := m.AllJobs()
	require.Len(t, all, 15)
	assert.Equal(t, "Frontend Developer", all[0].Title)
	assert.Equal(t, "Software Development", all[0].Category)
	assert.Equal(t, "Engineering Manager", all[len(all)-1].Title)

	titles := m.Titles()
	assert.Len(t, titles, 4)
	assert.Equal(t, []string{"UI/UX Designer", "Graphic Designer", "Product Designer"}, titles["Design & Creative"])
	assert.Equal(t, []string{"Software Development", "Data & Analytics", "Design & Creative", "Management"},
		m.Catalog().CategoryNames())
}

func TestNewCatalogRejectsDuplicateTitles(t *testing.T) {
	_, err := NewCatalog([]Category{
		{Name: "A", Profiles: []Profile{{Title: "Engineer", RequiredSkills: []string{"Go"}}}},
		{Name: "B", Profiles: []Profile{{Title: "Engineer", RequiredSkills: []string{"Rust"}}}},
	})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
	assert.Contains(t, err.Error(), "duplicate job title")

	_, err = NewCatalog([]Category{{Name: "A", Profiles: []Profile{{Title: " "}}}})
	assert.Error(t, err)
}

func TestCatalogCopiesInput(t *testing.T) {
	cats := []Category{{Name: "A", Profiles: []Profile{{Title: "Engineer", RequiredSkills: []string{"Go"}}}}}
	c, err := NewCatalog(cats)
	require.NoError(t, err)

	cats[0].Profiles[0].RequiredSkills[0] = "Rust"
	p, category, ok := c.Lookup("Engineer")
	require.True(t, ok)
	assert.Equal(t, "A", category)
	assert.Equal(t, []string{"Go"}, p.RequiredSkills)
}
