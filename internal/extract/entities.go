package extract

import (
	"regexp"

	"resumatch/internal/types"
)

var (
	educationPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(bachelor|master|phd|bsc|msc|mba)\s+.*?(?:in|of)\s+([^,\n]+)`),
		regexp.MustCompile(`(?i)(university|college|school)\s+of\s+([^,\n]+)`),
		regexp.MustCompile(`(?i)([^,\n]+)\s+university`),
		regexp.MustCompile(`(?i)([^,\n]+)\s+college`),
	}

	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\s+(?:years?|yrs?)\s+(?:of\s+)?experience`),
		regexp.MustCompile(`(?i)(senior|junior|lead|manager|director)\s+([^,\n]+)`),
		regexp.MustCompile(`(?i)(\d+)\s+(?:months?|mos?)\s+(?:of\s+)?experience`),
	}

	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// EntityExtractor pulls education, experience and contact mentions out of
// text. The zero value is ready to use.
type EntityExtractor struct{}

// NewEntityExtractor returns an EntityExtractor.
func NewEntityExtractor() *EntityExtractor {
	return &EntityExtractor{}
}

// Education returns every distinct education mention, in order of first
// appearance across the pattern families.
func (EntityExtractor) Education(text string) []string {
	return findAll(text, educationPatterns)
}

// Experience returns every distinct experience mention.
func (EntityExtractor) Experience(text string) []string {
	return findAll(text, experiencePatterns)
}

// Contact returns the first email and the first phone number in text. A
// field that is not found is left empty.
func (EntityExtractor) Contact(text string) types.Contact {
	return types.Contact{
		Email: emailPattern.FindString(text),
		Phone: phonePattern.FindString(text),
	}
}

func findAll(text string, patterns []*regexp.Regexp) []string {
	out := []string{}
	seen := make(map[string]struct{})
	for _, re := range patterns {
		for _, m := range re.FindAllString(text, -1) {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out
}
