// Package jobs holds the job-profile catalog and scores skill sets against it.
package jobs

import (
	"fmt"
	"strings"

	"resumatch/internal/errors"
	"resumatch/internal/types"
)

// Profile is one immutable catalog entry.
type Profile struct {
	Title           string
	RequiredSkills  []string
	PreferredSkills []string
	ExperienceLevel string
	SalaryRange     string
	Description     string
}

// Category groups profiles under a name. Order is significant: it is the
// tie-break order for equal match scores.
type Category struct {
	Name     string
	Profiles []Profile
}

type entry struct {
	category string
	profile  Profile
}

// Catalog is a validated, read-only job catalog with unique titles.
type Catalog struct {
	categories []Category
	entries    []entry
	byTitle    map[string]int
}

// NewCatalog validates categories and builds a Catalog. Titles must be
// non-empty and unique across the whole catalog.
func NewCatalog(categories []Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		byTitle:    make(map[string]int),
	}

	for _, cat := range categories {
		if strings.TrimSpace(cat.Name) == "" {
			return nil, errors.NewConfigError(errors.ErrCodeInvalidCatalog, "job category has no name", nil)
		}
		copied := Category{Name: cat.Name, Profiles: make([]Profile, 0, len(cat.Profiles))}
		for _, p := range cat.Profiles {
			if strings.TrimSpace(p.Title) == "" {
				return nil, errors.NewConfigError(errors.ErrCodeInvalidCatalog,
					fmt.Sprintf("job in category %q has no title", cat.Name), nil)
			}
			if prev, dup := c.byTitle[p.Title]; dup {
				return nil, errors.NewConfigError(errors.ErrCodeInvalidCatalog,
					fmt.Sprintf("duplicate job title %q in categories %q and %q",
						p.Title, c.entries[prev].category, cat.Name), nil)
			}
			p.RequiredSkills = append([]string(nil), p.RequiredSkills...)
			p.PreferredSkills = append([]string(nil), p.PreferredSkills...)

			c.byTitle[p.Title] = len(c.entries)
			c.entries = append(c.entries, entry{category: cat.Name, profile: p})
			copied.Profiles = append(copied.Profiles, p)
		}
		c.categories = append(c.categories, copied)
	}
	return c, nil
}

// Len returns the number of job profiles.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup finds a profile by exact title.
func (c *Catalog) Lookup(title string) (Profile, string, bool) {
	i, ok := c.byTitle[title]
	if !ok {
		return Profile{}, "", false
	}
	e := c.entries[i]
	return e.profile, e.category, true
}

// Summaries lists every job in catalog order.
func (c *Catalog) Summaries() []types.JobSummary {
	out := make([]types.JobSummary, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, types.JobSummary{
			Title:           e.profile.Title,
			Category:        e.category,
			Description:     e.profile.Description,
			ExperienceLevel: e.profile.ExperienceLevel,
			SalaryRange:     e.profile.SalaryRange,
		})
	}
	return out
}

// Titles maps each category to its job titles.
func (c *Catalog) Titles() map[string][]string {
	out := make(map[string][]string, len(c.categories))
	for _, cat := range c.categories {
		titles := make([]string, 0, len(cat.Profiles))
		for _, p := range cat.Profiles {
			titles = append(titles, p.Title)
		}
		out[cat.Name] = titles
	}
	return out
}

// CategoryNames returns category names in catalog order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}
