package pattern

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLCatalog is the on-disk structure of a pattern catalogue file.
type YAMLCatalog struct {
	Patterns []YAMLPattern `yaml:"patterns"`
}

// YAMLPattern is one catalogue entry. Cells hold the pattern in plaintext
// format, usually as a YAML block scalar.
type YAMLPattern struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind,omitempty"`
	Period   int      `yaml:"period,omitempty"`
	Comments []string `yaml:"comments,omitempty"`
	Cells    string   `yaml:"cells"`
}

// ParseYAML parses a catalogue file into patterns, preserving file order.
func ParseYAML(data []byte) ([]Pattern, error) {
	var cat YAMLCatalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("pattern: yaml unmarshal: %w", err)
	}

	out := make([]Pattern, 0, len(cat.Patterns))
	seen := make(map[string]bool, len(cat.Patterns))
	for i, yp := range cat.Patterns {
		if yp.ID == "" {
			return nil, fmt.Errorf("pattern: entry %d has no id", i)
		}
		if seen[yp.ID] {
			return nil, fmt.Errorf("pattern: duplicate id %q", yp.ID)
		}
		seen[yp.ID] = true

		p, err := ParsePlaintext(yp.Cells)
		if err != nil {
			return nil, fmt.Errorf("pattern: entry %q: %w", yp.ID, err)
		}
		p.ID = yp.ID
		if yp.Name != "" {
			p.Name = yp.Name
		}
		if p.Name == "" {
			p.Name = yp.ID
		}
		p.Kind = parseKind(yp.Kind)
		p.Period = yp.Period
		p.Comments = append(p.Comments, yp.Comments...)
		out = append(out, p)
	}
	return out, nil
}

// MarshalYAML encodes patterns as a catalogue file.
func MarshalYAML(patterns []Pattern) ([]byte, error) {
	cat := YAMLCatalog{Patterns: make([]YAMLPattern, 0, len(patterns))}
	for _, p := range patterns {
		cat.Patterns = append(cat.Patterns, YAMLPattern{
			ID:       p.ID,
			Name:     p.Name,
			Kind:     string(p.Kind),
			Period:   p.Period,
			Comments: p.Comments,
			Cells:    FormatCells(p.Cells),
		})
	}
	data, err := yaml.Marshal(cat)
	if err != nil {
		return nil, fmt.Errorf("pattern: yaml marshal: %w", err)
	}
	return data, nil
}

func parseKind(s string) Kind {
	switch k := Kind(s); k {
	case KindStillLife, KindOscillator, KindSpaceship, KindGun, KindMethuselah:
		return k
	default:
		return KindOther
	}
}
