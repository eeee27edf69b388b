// Package skills holds the canonical skill-set type shared by the extractor,
// the analyzer and the job matcher.
package skills

import (
	"fmt"
	"strings"

	"resumatch/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Set is an insertion-ordered set of canonical skill names. Membership is
// case-insensitive; the first spelling added is the one kept.
type Set struct {
	names []string
	index map[string]int
}

// New validates names and builds a Set. Blank entries are rejected with an
// InvalidSkillSet error rather than silently dropped.
func New(names ...string) (Set, error) {
	if err := validate.Var(names, "dive,required,notblank"); err != nil {
		return Set{}, errors.NewInvalidSkillSetError(describe(names), err)
	}
	return FromTrusted(names...), nil
}

// MustNew is New for static tables and tests.
func MustNew(names ...string) Set {
	s, err := New(names...)
	if err != nil {
		panic(err)
	}
	return s
}

// FromTrusted builds a Set without validation. Callers must only pass
// canonical names produced by the taxonomy.
func FromTrusted(names ...string) Set {
	s := Set{
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
	}
	for _, name := range names {
		s.add(name)
	}
	return s
}

func (s *Set) add(name string) {
	key := Key(name)
	if _, exists := s.index[key]; exists {
		return
	}
	s.index[key] = len(s.names)
	s.names = append(s.names, name)
}

// Key is the comparison form of a skill name.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Len returns the number of distinct skills.
func (s Set) Len() int {
	return len(s.names)
}

// Contains reports case-insensitive membership.
func (s Set) Contains(name string) bool {
	_, ok := s.index[Key(name)]
	return ok
}

// ContainsAny reports whether at least one of names is in the set.
func (s Set) ContainsAny(names ...string) bool {
	for _, name := range names {
		if s.Contains(name) {
			return true
		}
	}
	return false
}

// Names returns a copy of the skills in insertion order.
func (s Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Intersect returns the members of candidates present in s, in candidate order.
func (s Set) Intersect(candidates []string) []string {
	out := []string{}
	for _, c := range candidates {
		if s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// Missing returns the members of candidates absent from s, in candidate order.
func (s Set) Missing(candidates []string) []string {
	out := []string{}
	for _, c := range candidates {
		if !s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

func describe(names []string) string {
	for i, name := range names {
		if strings.TrimSpace(name) == "" {
			return fmt.Sprintf("skill at index %d is empty", i)
		}
	}
	return "skill set failed validation"
}
