package nlp

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "lowercases",
			input:    "Python SQL",
			expected: "python sql",
		},
		{
			name:     "collapses whitespace",
			input:    "go\t\tand\n\nrust   ",
			expected: "go and rust",
		},
		{
			name:     "keeps allowed punctuation",
			input:    "node.js c++ jane@example.com +1-555-123-4567",
			expected: "node.js c++ jane@example.com +1-555-123-4567",
		},
		{
			name:     "replaces disallowed punctuation with space",
			input:    "C#, Java; (Spring)",
			expected: "c   java   spring",
		},
		{
			name:     "keeps underscore and digits",
			input:    "snake_case 2024",
			expected: "snake_case 2024",
		},
		{
			name:     "keeps accented letters",
			input:    "Universidad Politécnica",
			expected: "universidad politécnica",
		},
		{
			name:     "composes decomposed accents",
			input:    "München",
			expected: "münchen",
		},
		{
			name:     "slash becomes space",
			input:    "CI/CD",
			expected: "ci cd",
		},
		{
			name:     "only punctuation",
			input:    "!!!",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	input := "Senior Engineer at ACME, 5 years of experience (Go/Python)"
	expected := "senior engineer at acme  5 years of experience  go python"

	for range 3 {
		if got := Normalize(input); got != expected {
			t.Fatalf("Normalize(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func BenchmarkNormalize(b *testing.B) {
	text := "Experienced Python and SQL developer, 5 years experience, contact jane@example.com. " +
		"Skills: Docker; Kubernetes; AWS (EC2, S3); React/Node.js"
	for b.Loop() {
		Normalize(text)
	}
}
