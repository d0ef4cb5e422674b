package pattern

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads patterns from a plaintext (.cells, .txt) or catalogue
// (.yaml, .yml) file. Plaintext patterns without a !Name line are named
// after the file.
func LoadFile(path string) ([]Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pattern: read %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		ps, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("pattern: %s: %w", path, err)
		}
		return ps, nil
	case ".cells", ".txt", "":
		p, err := ParsePlaintext(string(data))
		if err != nil {
			return nil, fmt.Errorf("pattern: %s: %w", path, err)
		}
		p.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if p.Name == "" {
			p.Name = p.ID
		}
		p.Kind = KindOther
		return []Pattern{p}, nil
	default:
		return nil, fmt.Errorf("pattern: unsupported file type %q", ext)
	}
}

// Resolve finds a pattern by built-in ID or, failing that, by file path.
// A file holding several patterns yields the first one.
func Resolve(ref string) (Pattern, error) {
	if p, err := Builtin(ref); err == nil {
		return p, nil
	}
	if _, err := os.Stat(ref); err != nil {
		return Pattern{}, fmt.Errorf("pattern: %q is neither a built-in nor a readable file", ref)
	}
	ps, err := LoadFile(ref)
	if err != nil {
		return Pattern{}, err
	}
	if len(ps) == 0 {
		return Pattern{}, fmt.Errorf("pattern: %s contains no patterns", ref)
	}
	return ps[0], nil
}
