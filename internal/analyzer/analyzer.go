// Package analyzer turns an extracted skill set into categories, demand
// counts, development recommendations, gap warnings and market trends.
package analyzer

import (
	"math"

	"resumatch/internal/skills"
	"resumatch/internal/types"
)

const (
	baseSkillPoints     = 10
	highDemandBonus     = 20
	mediumDemandBonus   = 15
	emergingBonus       = 25
	maxPointsPerSkill   = 35
	highDemandReason    = "These skills are in high demand and can significantly boost your career prospects."
	emergingTechReason  = "These emerging technologies can give you a competitive edge in the future."
	highDemandRecType   = "High Demand Skills"
	emergingTechRecType = "Emerging Technologies"
)

// Analyzer is stateless apart from its tables and is safe for concurrent use.
type Analyzer struct {
	t Tables

	high     skills.Set
	medium   skills.Set
	emerging skills.Set
	hot      []string
}

// New builds an Analyzer over tables.
func New(tables Tables) *Analyzer {
	a := &Analyzer{
		t:        tables,
		high:     skills.FromTrusted(tables.HighDemand...),
		medium:   skills.FromTrusted(tables.MediumDemand...),
		emerging: skills.FromTrusted(tables.Emerging...),
	}
	a.hot = a.emerging.Intersect(tables.HighDemand)
	return a
}

// Analyze computes the full analysis. An empty set yields a zero-valued
// analysis with empty, non-nil collections.
func (a *Analyzer) Analyze(s skills.Set) types.SkillsAnalysis {
	if s.Len() == 0 {
		return types.SkillsAnalysis{
			Categories:      map[string][]string{},
			CategoryOrder:   []string{},
			DemandAnalysis:  map[string]int{},
			Recommendations: []types.Recommendation{},
			SkillGaps:       []types.SkillGap{},
			MarketTrends:    map[string][]string{},
		}
	}

	categories, order := a.categorize(s)
	return types.SkillsAnalysis{
		TotalSkills:     s.Len(),
		Categories:      categories,
		CategoryOrder:   order,
		DemandAnalysis:  a.demand(s),
		Recommendations: a.recommendations(s),
		SkillGaps:       a.gaps(s),
		MarketTrends:    a.trends(s),
	}
}

// categorize places each skill in the first category that lists it. The
// returned order follows the category table with Other last.
func (a *Analyzer) categorize(s skills.Set) (map[string][]string, []string) {
	out := make(map[string][]string)
	var other []string

	for _, skill := range s.Names() {
		placed := false
		for _, c := range a.t.Categories {
			if containsFold(c.Skills, skill) {
				out[c.Name] = append(out[c.Name], skill)
				placed = true
				break
			}
		}
		if !placed {
			other = append(other, skill)
		}
	}

	order := make([]string, 0, len(out)+1)
	for _, c := range a.t.Categories {
		if _, ok := out[c.Name]; ok {
			order = append(order, c.Name)
		}
	}
	if len(other) > 0 {
		out[OtherCategory] = other
		order = append(order, OtherCategory)
	}
	return out, order
}

func (a *Analyzer) demand(s skills.Set) map[string]int {
	counts := map[string]int{
		TierHigh:     0,
		TierMedium:   0,
		TierEmerging: 0,
		TierStandard: 0,
	}
	for _, skill := range s.Names() {
		counts[a.tier(skill)]++
	}
	return counts
}

func (a *Analyzer) tier(skill string) string {
	switch {
	case a.high.Contains(skill):
		return TierHigh
	case a.medium.Contains(skill):
		return TierMedium
	case a.emerging.Contains(skill):
		return TierEmerging
	default:
		return TierStandard
	}
}

func (a *Analyzer) recommendations(s skills.Set) []types.Recommendation {
	recs := []types.Recommendation{}

	if missing := s.Missing(a.t.HighDemand); len(missing) > 0 {
		recs = append(recs, types.Recommendation{
			Type:     highDemandRecType,
			Skills:   head(missing, a.t.HighDemandPick),
			Priority: "High",
			Reason:   highDemandReason,
		})
	}

	if missing := s.Missing(a.t.Emerging); len(missing) > 0 {
		recs = append(recs, types.Recommendation{
			Type:     emergingTechRecType,
			Skills:   head(missing, a.t.EmergingPick),
			Priority: "Medium",
			Reason:   emergingTechReason,
		})
	}

	for _, rule := range a.t.Complements {
		if len(s.Intersect(rule.Has)) != len(rule.Has) || s.Contains(rule.Lacks) {
			continue
		}
		recs = append(recs, types.Recommendation{
			Type:     rule.Type,
			Skills:   append([]string(nil), rule.Suggest...),
			Priority: rule.Priority,
			Reason:   rule.Reason,
		})
	}
	return recs
}

func (a *Analyzer) gaps(s skills.Set) []types.SkillGap {
	gaps := []types.SkillGap{}

	hasFrontend := s.ContainsAny(a.t.Frontend.Indicators...)
	hasBackend := s.ContainsAny(a.t.Backend.Indicators...)
	switch {
	case hasFrontend && !hasBackend:
		gaps = append(gaps, gapFor(a.t.Backend))
	case hasBackend && !hasFrontend:
		gaps = append(gaps, gapFor(a.t.Frontend))
	}

	if !s.ContainsAny(a.t.DevOps.Indicators...) {
		gaps = append(gaps, gapFor(a.t.DevOps))
	}
	return gaps
}

func (a *Analyzer) trends(s skills.Set) map[string][]string {
	return map[string][]string{
		TrendHot:       inSetOrder(s, a.hot),
		TrendGrowing:   inSetOrder(s, a.t.Growing),
		TrendStable:    inSetOrder(s, a.t.Stable),
		TrendDeclining: {},
	}
}

// Score rates a skill set from 0 to 100. Each skill earns base points plus a
// bonus for its demand tier, out of a fixed maximum per skill.
func (a *Analyzer) Score(s skills.Set) float64 {
	if s.Len() == 0 {
		return 0
	}
	score := 0
	for _, skill := range s.Names() {
		score += baseSkillPoints
		switch a.tier(skill) {
		case TierHigh:
			score += highDemandBonus
		case TierMedium:
			score += mediumDemandBonus
		case TierEmerging:
			score += emergingBonus
		}
	}
	possible := s.Len() * maxPointsPerSkill
	return math.Min(100, float64(score)/float64(possible)*100)
}

// Breakdown buckets skills by kind. Anything not listed as a language, tool
// or soft skill counts as technical.
func (a *Analyzer) Breakdown(s skills.Set) types.SkillBreakdown {
	b := types.SkillBreakdown{
		TechnicalSkills: []string{},
		SoftSkills:      []string{},
		Tools:           []string{},
		Languages:       []string{},
	}
	for _, skill := range s.Names() {
		switch {
		case containsFold(a.t.BreakdownLanguages, skill):
			b.Languages = append(b.Languages, skill)
		case containsFold(a.t.BreakdownTools, skill):
			b.Tools = append(b.Tools, skill)
		case containsFold(a.t.BreakdownSoftSkills, skill):
			b.SoftSkills = append(b.SoftSkills, skill)
		default:
			b.TechnicalSkills = append(b.TechnicalSkills, skill)
		}
	}
	return b
}

func gapFor(r GapRule) types.SkillGap {
	return types.SkillGap{
		Area:    r.Area,
		Missing: append([]string(nil), r.Missing...),
		Impact:  r.Impact,
	}
}

// inSetOrder returns the members of s that appear in table, in s order.
func inSetOrder(s skills.Set, table []string) []string {
	t := skills.FromTrusted(table...)
	out := []string{}
	for _, skill := range s.Names() {
		if t.Contains(skill) {
			out = append(out, skill)
		}
	}
	return out
}

func containsFold(list []string, name string) bool {
	key := skills.Key(name)
	for _, item := range list {
		if skills.Key(item) == key {
			return true
		}
	}
	return false
}

func head(list []string, n int) []string {
	if n >= 0 && len(list) > n {
		return list[:n]
	}
	return list
}
