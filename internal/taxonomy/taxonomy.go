// Package taxonomy defines the skills taxonomy: canonical skill names and the
// lowercase surface variants that count as evidence for them.
package taxonomy

import (
	"fmt"
	"strings"

	"resumatch/internal/errors"
)

// Entry is one canonical skill and its variants, checked in order.
type Entry struct {
	Canonical string   `json:"canonical" yaml:"canonical"`
	Variants  []string `json:"variants" yaml:"variants"`
}

// Taxonomy is an immutable, ordered skills taxonomy. Build it once and share
// it read-only.
type Taxonomy struct {
	entries []Entry
}

// Overlap records a variant of one skill that is a substring of a variant of
// another. Under substring matching, text containing Outer also yields Inner.
type Overlap struct {
	InnerSkill   string `json:"inner_skill"`
	InnerVariant string `json:"inner_variant"`
	OuterSkill   string `json:"outer_skill"`
	OuterVariant string `json:"outer_variant"`
}

func (o Overlap) String() string {
	return fmt.Sprintf("%q (%s) is contained in %q (%s)", o.InnerVariant, o.InnerSkill, o.OuterVariant, o.OuterSkill)
}

// New validates entries and returns a Taxonomy. Canonical names must be
// unique case-insensitively, every entry needs at least one variant, and
// variants are stored lowercased.
func New(entries []Entry) (*Taxonomy, error) {
	seen := make(map[string]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))

	for i, e := range entries {
		name := strings.TrimSpace(e.Canonical)
		if name == "" {
			return nil, errors.NewConfigError(errors.ErrCodeInvalidTaxonomy,
				fmt.Sprintf("taxonomy entry %d has no canonical name", i), nil)
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return nil, errors.NewConfigError(errors.ErrCodeInvalidTaxonomy,
				fmt.Sprintf("duplicate canonical skill %q", name), nil)
		}
		seen[key] = struct{}{}

		variants := make([]string, 0, len(e.Variants))
		for _, v := range e.Variants {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != "" {
				variants = append(variants, v)
			}
		}
		if len(variants) == 0 {
			return nil, errors.NewConfigError(errors.ErrCodeInvalidTaxonomy,
				fmt.Sprintf("skill %q has no variants", name), nil)
		}
		out = append(out, Entry{Canonical: name, Variants: variants})
	}

	return &Taxonomy{entries: out}, nil
}

// Entries returns a copy of the taxonomy in order.
func (t *Taxonomy) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{Canonical: e.Canonical, Variants: append([]string(nil), e.Variants...)}
	}
	return out
}

// Names returns canonical skill names in taxonomy order.
func (t *Taxonomy) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Canonical
	}
	return names
}

// Len returns the number of canonical skills.
func (t *Taxonomy) Len() int {
	return len(t.entries)
}

// Each calls fn for every entry in order without copying.
func (t *Taxonomy) Each(fn func(canonical string, variants []string)) {
	for _, e := range t.entries {
		fn(e.Canonical, e.Variants)
	}
}

// Overlaps lists every cross-skill variant containment. Variants of the same
// skill are not reported since they resolve to the same canonical name.
func (t *Taxonomy) Overlaps() []Overlap {
	var out []Overlap
	for i, inner := range t.entries {
		for j, outer := range t.entries {
			if i == j {
				continue
			}
			for _, iv := range inner.Variants {
				for _, ov := range outer.Variants {
					if strings.Contains(ov, iv) {
						out = append(out, Overlap{
							InnerSkill:   inner.Canonical,
							InnerVariant: iv,
							OuterSkill:   outer.Canonical,
							OuterVariant: ov,
						})
					}
				}
			}
		}
	}
	return out
}
