package pattern

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"
)

//go:embed catalog.yaml
var catalogYAML []byte

var (
	builtinOnce sync.Once
	builtins    []Pattern
	builtinByID map[string]Pattern
	builtinErr  error
)

func loadBuiltins() {
	builtins, builtinErr = ParseYAML(catalogYAML)
	builtinByID = make(map[string]Pattern, len(builtins))
	for _, p := range builtins {
		builtinByID[p.ID] = p
	}
}

// Builtins returns the embedded pattern catalogue sorted by ID.
func Builtins() []Pattern {
	builtinOnce.Do(loadBuiltins)
	out := append([]Pattern(nil), builtins...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Builtin returns the embedded pattern with the given ID.
func Builtin(id string) (Pattern, error) {
	builtinOnce.Do(loadBuiltins)
	if builtinErr != nil {
		return Pattern{}, builtinErr
	}
	p, ok := builtinByID[id]
	if !ok {
		return Pattern{}, fmt.Errorf("pattern: unknown pattern %q", id)
	}
	return p, nil
}
