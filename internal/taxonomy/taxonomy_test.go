package taxonomy

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"resumatch/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaxonomy(t *testing.T) {
	tax := Default()

	assert.Equal(t, len(defaultEntries), tax.Len())
	names := tax.Names()
	assert.Equal(t, "Python", names[0])
	assert.Contains(t, names, "REST API")
	assert.Contains(t, names, "Google Cloud")
	assert.Contains(t, names, "Adobe Photoshop")
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr bool
	}{
		{
			name:    "valid",
			entries: []Entry{{Canonical: "Go", Variants: []string{"Go", " golang "}}},
		},
		{
			name:    "missing canonical",
			entries: []Entry{{Canonical: " ", Variants: []string{"x"}}},
			wantErr: true,
		},
		{
			name: "duplicate canonical ignoring case",
			entries: []Entry{
				{Canonical: "SQL", Variants: []string{"sql"}},
				{Canonical: "sql", Variants: []string{"mysql"}},
			},
			wantErr: true,
		},
		{
			name:    "no usable variants",
			entries: []Entry{{Canonical: "Go", Variants: []string{"", "  "}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax, err := New(tt.entries)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"go", "golang"}, tax.Entries()[0].Variants)
		})
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	tax := Default()
	entries := tax.Entries()
	entries[0].Variants[0] = "changed"

	assert.Equal(t, "python", tax.Entries()[0].Variants[0])
}

func TestOverlaps(t *testing.T) {
	tax, err := New([]Entry{
		{Canonical: "Java", Variants: []string{"java"}},
		{Canonical: "JavaScript", Variants: []string{"javascript", "js"}},
		{Canonical: "Node", Variants: []string{"node.js"}},
	})
	require.NoError(t, err)

	overlaps := tax.Overlaps()
	assert.ElementsMatch(t, []Overlap{
		{InnerSkill: "Java", InnerVariant: "java", OuterSkill: "JavaScript", OuterVariant: "javascript"},
		{InnerSkill: "JavaScript", InnerVariant: "js", OuterSkill: "Node", OuterVariant: "node.js"},
	}, overlaps)
}

func TestDefaultTaxonomyKnownOverlaps(t *testing.T) {
	overlaps := Default().Overlaps()

	find := func(inner, outer string) bool {
		for _, o := range overlaps {
			if o.InnerVariant == inner && o.OuterVariant == outer {
				return true
			}
		}
		return false
	}

	// These collisions are inherent to substring matching with the built-in
	// variant lists; boundary mode avoids them.
	assert.True(t, find("java", "javascript"))
	assert.True(t, find("ml", "html"))
	assert.True(t, find("react", "react native"))
	assert.False(t, find("sql", "mysql"), "variants of the same skill are not reported")
}

func TestParseMergeAndReplace(t *testing.T) {
	t.Run("replace", func(t *testing.T) {
		tax, err := Parse([]byte(`
skills:
  - canonical: terraform
    variants: [terraform, hcl]
`))
		require.NoError(t, err)
		assert.Equal(t, []string{"Terraform"}, tax.Names())
	})

	t.Run("merge keeps position of overridden entries", func(t *testing.T) {
		tax, err := Parse([]byte(`
merge: true
skills:
  - canonical: Go
    variants: [golang]
  - canonical: Terraform
    variants: [terraform]
`))
		require.NoError(t, err)
		names := tax.Names()
		assert.Equal(t, len(defaultEntries)+1, len(names))
		assert.Equal(t, "Terraform", names[len(names)-1])

		for _, e := range tax.Entries() {
			if e.Canonical == "Go" {
				assert.Equal(t, []string{"golang"}, e.Variants)
			}
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("skills: [unterminated"))
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
	})
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeIO))
}

func TestWatcherReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "taxonomy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skills:\n  - canonical: Go\n    variants: [golang]\n"), 0600))

	reloaded := make(chan *Taxonomy, 1)
	w := NewWatcher(path, 20*time.Millisecond, func(tax *Taxonomy) {
		select {
		case reloaded <- tax:
		default:
		}
	}, nil)
	require.NoError(t, w.Start())
	defer func() { _ = w.Stop() }()
	assert.True(t, w.IsRunning())

	require.NoError(t, os.WriteFile(path, []byte("skills:\n  - canonical: Rust\n    variants: [rust, cargo]\n"), 0600))

	select {
	case tax := <-reloaded:
		assert.Equal(t, []string{"Rust"}, tax.Names())
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for taxonomy reload")
	}

	require.NoError(t, w.Stop())
	assert.False(t, w.IsRunning())
	assert.NoError(t, w.Stop())
}
