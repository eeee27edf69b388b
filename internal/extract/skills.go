// Package extract pulls skills and entities out of normalized résumé text.
package extract

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"resumatch/internal/skills"
	"resumatch/internal/taxonomy"
)

// MatchMode selects how a taxonomy variant must appear in text to count.
type MatchMode string

const (
	// MatchSubstring accepts a variant anywhere in the text, including inside
	// longer tokens glued together by PDF extraction.
	MatchSubstring MatchMode = "substring"
	// MatchBoundary requires the variant not to be flanked by a letter or digit.
	MatchBoundary MatchMode = "boundary"
)

// ParseMatchMode maps a config value to a MatchMode. Empty means substring.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchBoundary:
		return MatchBoundary, nil
	default:
		return "", fmt.Errorf("unknown match mode %q (want substring or boundary)", s)
	}
}

// SkillExtractor finds canonical skills in normalized text. It holds an
// immutable taxonomy and is safe for concurrent use.
type SkillExtractor struct {
	tax  *taxonomy.Taxonomy
	mode MatchMode
}

// NewSkillExtractor returns an extractor over tax. A nil taxonomy uses the
// built-in default.
func NewSkillExtractor(tax *taxonomy.Taxonomy, mode MatchMode) *SkillExtractor {
	if tax == nil {
		tax = taxonomy.Default()
	}
	if mode == "" {
		mode = MatchSubstring
	}
	return &SkillExtractor{tax: tax, mode: mode}
}

// Taxonomy returns the taxonomy the extractor was built with.
func (e *SkillExtractor) Taxonomy() *taxonomy.Taxonomy {
	return e.tax
}

// Mode returns the match mode.
func (e *SkillExtractor) Mode() MatchMode {
	return e.mode
}

// Extract returns the canonical skills with at least one variant present in
// text, in taxonomy order. Only the first matching variant of a skill is
// looked for; mentions are not counted.
func (e *SkillExtractor) Extract(text string) skills.Set {
	var found []string
	e.tax.Each(func(canonical string, variants []string) {
		for _, v := range variants {
			if e.contains(text, v) {
				found = append(found, canonical)
				return
			}
		}
	})
	return skills.FromTrusted(found...)
}

func (e *SkillExtractor) contains(text, variant string) bool {
	if e.mode != MatchBoundary {
		return strings.Contains(text, variant)
	}
	for offset := 0; offset < len(text); {
		i := strings.Index(text[offset:], variant)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(variant)
		if !wordRuneBefore(text, start) && !wordRuneAt(text, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}
	return false
}

func wordRuneBefore(s string, i int) bool {
	if i == 0 {
		return false
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return isWordRune(r)
}

func wordRuneAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
