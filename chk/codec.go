package chk

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Encode renders the group tree as YAML.
// Returns ErrNilGroup when g is nil.
func Encode(g *Group) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGroup
	}

	return yaml.Marshal(g)
}

// Decode parses YAML bytes into a group tree and validates every table in
// it, so callers can index tables without re-checking shapes.
func Decode(data []byte) (*Group, error) {
	g := NewGroup()
	if err := yaml.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("chk: decode: %w", err)
	}
	if err := validateTree(g); err != nil {
		return nil, err
	}

	return g, nil
}

// validateTree normalizes nil subgroups (a YAML "name: null" entry) to
// empty ones and validates every table reachable from g.
func validateTree(g *Group) error {
	for name, t := range g.Tables {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("table %q: %w", name, err)
		}
	}
	for name, sub := range g.Groups {
		if sub == nil {
			sub = NewGroup()
			g.Groups[name] = sub
		}
		if err := validateTree(sub); err != nil {
			return fmt.Errorf("group %q: %w", name, err)
		}
	}

	return nil
}

// Save encodes g and writes it to path with 0644 permissions.
func Save(path string, g *Group) error {
	data, err := Encode(g)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("chk: save %s: %w", path, err)
	}

	return nil
}

// Load reads path and decodes it into a group tree.
func Load(path string) (*Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("chk: load %s: %w", path, err)
	}

	return Decode(data)
}
