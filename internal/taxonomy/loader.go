package taxonomy

import (
	"fmt"
	"os"
	"strings"

	"resumatch/internal/errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk taxonomy override.
//
//	merge: true
//	skills:
//	  - canonical: Terraform
//	    variants: [terraform, hcl]
type fileFormat struct {
	Merge  bool    `yaml:"merge"`
	Skills []Entry `yaml:"skills"`
}

// LoadFile reads a YAML taxonomy. With merge enabled, entries replace the
// built-in entry of the same canonical name (keeping its position) or are
// appended; otherwise the file is the whole taxonomy. Canonical names written
// entirely in lowercase are title-cased.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read taxonomy file: %s", path), err)
	}
	return Parse(data)
}

// Parse decodes a YAML taxonomy document. See LoadFile.
func Parse(data []byte) (*Taxonomy, error) {
	var doc fileFormat
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeInvalidTaxonomy, "invalid taxonomy YAML", err)
	}

	caser := cases.Title(language.English)
	for i := range doc.Skills {
		name := strings.TrimSpace(doc.Skills[i].Canonical)
		if name != "" && name == strings.ToLower(name) {
			doc.Skills[i].Canonical = caser.String(name)
		}
	}

	if !doc.Merge {
		return New(doc.Skills)
	}
	return New(merge(defaultEntries, doc.Skills))
}

func merge(base, overrides []Entry) []Entry {
	out := make([]Entry, len(base))
	copy(out, base)

	pos := make(map[string]int, len(out))
	for i, e := range out {
		pos[strings.ToLower(e.Canonical)] = i
	}
	for _, e := range overrides {
		key := strings.ToLower(strings.TrimSpace(e.Canonical))
		if i, ok := pos[key]; ok {
			out[i] = e
			continue
		}
		pos[key] = len(out)
		out = append(out, e)
	}
	return out
}
