package jobs

import (
	"math"
	"sort"

	"resumatch/internal/skills"
	"resumatch/internal/types"
)

const (
	// DefaultMinMatchPercentage is the qualifying score when none is given.
	DefaultMinMatchPercentage = 30.0
	// DefaultRecommendationLimit caps Recommend when limit is not positive.
	DefaultRecommendationLimit = 5

	requiredWeight  = 70.0
	preferredWeight = 30.0
)

// Matcher scores skill sets against a catalog. It is safe for concurrent use.
type Matcher struct {
	catalog *Catalog
}

// NewMatcher returns a Matcher over catalog, or over the built-in catalog
// when catalog is nil.
func NewMatcher(catalog *Catalog) *Matcher {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Matcher{catalog: catalog}
}

// Catalog returns the catalog the matcher scores against.
func (m *Matcher) Catalog() *Catalog {
	return m.catalog
}

// Score computes the weighted overlap score of s against one profile.
// Required skills carry 70 points and preferred skills 30; a profile with no
// required skills scores 0.
func Score(s skills.Set, p Profile) float64 {
	required := skills.FromTrusted(p.RequiredSkills...)
	if required.Len() == 0 {
		return 0
	}
	preferred := skills.FromTrusted(p.PreferredSkills...)

	score := float64(len(s.Intersect(required.Names()))) / float64(required.Len()) * requiredWeight
	if preferred.Len() > 0 {
		score += float64(len(s.Intersect(preferred.Names()))) / float64(preferred.Len()) * preferredWeight
	}
	return math.Min(100, score)
}

// FindMatches returns every job scoring at least minScore, best first. Equal
// scores keep catalog order.
func (m *Matcher) FindMatches(s skills.Set, minScore float64) []types.JobMatch {
	matches := []types.JobMatch{}
	for _, e := range m.catalog.entries {
		if !hasRequired(e.profile) {
			continue
		}
		score := Score(s, e.profile)
		if score < minScore {
			continue
		}
		matches = append(matches, buildMatch(s, e, score))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches
}

// Recommend returns the top limit matches at the default threshold.
func (m *Matcher) Recommend(s skills.Set, limit int) []types.JobMatch {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	matches := m.FindMatches(s, DefaultMinMatchPercentage)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// SkillGaps returns the required and preferred skills of the named job that
// s lacks. The boolean is false when no job has that title.
func (m *Matcher) SkillGaps(s skills.Set, title string) (types.SkillGapSet, bool) {
	p, _, ok := m.catalog.Lookup(title)
	if !ok {
		return types.SkillGapSet{}, false
	}
	return missing(s, p), true
}

// AllJobs lists every job in catalog order.
func (m *Matcher) AllJobs() []types.JobSummary {
	return m.catalog.Summaries()
}

// Titles maps each category to its job titles.
func (m *Matcher) Titles() map[string][]string {
	return m.catalog.Titles()
}

func hasRequired(p Profile) bool {
	return len(p.RequiredSkills) > 0
}

func buildMatch(s skills.Set, e entry, score float64) types.JobMatch {
	p := e.profile
	return types.JobMatch{
		Title:           p.Title,
		Category:        e.category,
		MatchScore:      score,
		RequiredSkills:  append([]string(nil), p.RequiredSkills...),
		PreferredSkills: append([]string(nil), p.PreferredSkills...),
		ExperienceLevel: p.ExperienceLevel,
		SalaryRange:     p.SalaryRange,
		Description:     p.Description,
		MatchedSkills: types.SkillGapSet{
			Required:  s.Intersect(p.RequiredSkills),
			Preferred: s.Intersect(p.PreferredSkills),
		},
		MissingSkills: missing(s, p),
	}
}

func missing(s skills.Set, p Profile) types.SkillGapSet {
	return types.SkillGapSet{
		Required:  s.Missing(p.RequiredSkills),
		Preferred: s.Missing(p.PreferredSkills),
	}
}
