package assoc

import (
	"fmt"
	"os"

	"github.com/sunholo/assocprove/internal/ir"
	"github.com/sunholo/assocprove/internal/surface"
	"gopkg.in/yaml.v3"
)

// patternFile is the on-disk shape of a supplementary pattern table: a
// list of entries, each naming the per-index operator/identity template
// as surface-syntax text over the wildcards x0..x_{N-1}/y0..y_{N-1}.
type patternFile struct {
	Patterns []patternEntry `yaml:"patterns"`
}

type patternEntry struct {
	Name          string   `yaml:"name"`
	Ops           []string `yaml:"ops"`
	Identities    []string `yaml:"identities"`
	IsCommutative bool     `yaml:"commutative"`
}

// LoadPatternConfig parses a YAML document of supplementary
// AssociativePatterns, intended for Options.ExtraPatterns. Each entry's
// Ops/Identities are parsed with the same surface-syntax grammar the CLI
// and REPL accept, so a user can extend the built-in table without
// touching Go source.
func LoadPatternConfig(data []byte) ([]AssociativePattern, error) {
	var pf patternFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("assoc: parsing pattern config: %w", err)
	}

	out := make([]AssociativePattern, 0, len(pf.Patterns))
	for _, entry := range pf.Patterns {
		if len(entry.Ops) != len(entry.Identities) {
			return nil, fmt.Errorf("assoc: pattern %q: %d ops but %d identities", entry.Name, len(entry.Ops), len(entry.Identities))
		}
		pattern := AssociativePattern{
			Name:          entry.Name,
			Ops:           make([]ir.Expr, len(entry.Ops)),
			Identities:    make([]ir.Expr, len(entry.Identities)),
			IsCommutative: entry.IsCommutative,
		}
		for i, text := range entry.Ops {
			e, errs := surface.ParseExpr(text, "")
			if len(errs) > 0 {
				return nil, fmt.Errorf("assoc: pattern %q op[%d]: %v", entry.Name, i, errs[0])
			}
			pattern.Ops[i] = e
		}
		for i, text := range entry.Identities {
			e, errs := surface.ParseExpr(text, "")
			if len(errs) > 0 {
				return nil, fmt.Errorf("assoc: pattern %q identity[%d]: %v", entry.Name, i, errs[0])
			}
			pattern.Identities[i] = e
		}
		out = append(out, pattern)
	}
	return out, nil
}

// LoadPatternConfigFile reads and parses path as a supplementary pattern
// table. Callers typically assign the result to Options.ExtraPatterns.
func LoadPatternConfigFile(path string) ([]AssociativePattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assoc: reading pattern config %s: %w", path, err)
	}
	return LoadPatternConfig(data)
}
