package skills

import (
	"testing"

	"resumatch/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBlankEntries(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		reject bool
	}{
		{name: "valid skills", input: []string{"Python", "SQL"}},
		{name: "empty set is valid", input: []string{}},
		{name: "nil set is valid", input: nil},
		{name: "empty string", input: []string{"Python", ""}, reject: true},
		{name: "whitespace only", input: []string{"   ", "Go"}, reject: true},
		{name: "tab only", input: []string{"\t"}, reject: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.input...)
			if !tt.reject {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidSkillSet))
		})
	}
}

func TestSetIsCaseInsensitive(t *testing.T) {
	s := MustNew("Python", "python", "SQL", "Sql")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"Python", "SQL"}, s.Names())
	assert.True(t, s.Contains("PYTHON"))
	assert.True(t, s.Contains(" sql "))
	assert.False(t, s.Contains("Java"))
}

func TestIntersectAndMissingKeepCandidateOrder(t *testing.T) {
	s := MustNew("sql", "Python")
	candidates := []string{"Python", "Java", "SQL", "Go"}

	assert.Equal(t, []string{"Python", "SQL"}, s.Intersect(candidates))
	assert.Equal(t, []string{"Java", "Go"}, s.Missing(candidates))
}

func TestNamesReturnsCopy(t *testing.T) {
	s := MustNew("Go")
	names := s.Names()
	names[0] = "Rust"

	assert.Equal(t, []string{"Go"}, s.Names())
}

func TestZeroSet(t *testing.T) {
	var s Set

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Contains("Go"))
	assert.Empty(t, s.Names())
	assert.Equal(t, []string{"Go"}, s.Missing([]string{"Go"}))
}
