package scan

import "slices"

// Ecosystem describes one package universe and the manifest formats it uses.
// Exactly one ecosystem is active per scan; classification only considers the
// active ecosystem's extractors, so an ambiguous filename like setup.py is
// simply unrecognized while scanning the other ecosystem.
type Ecosystem struct {
	// Name is the canonical ecosystem name (e.g., "python").
	Name string
	// Aliases are accepted short names (e.g., "py").
	Aliases []string
	// Normalize canonicalizes a dependency name for comparison.
	Normalize func(string) string
	// Extractors builds the extractor set for a scan.
	Extractors func(opts Options) []Extractor
}

// Matches reports whether name refers to this ecosystem.
func (e *Ecosystem) Matches(name string) bool {
	return name == e.Name || slices.Contains(e.Aliases, name)
}

// FindEcosystem returns the ecosystem matching name, or nil.
func FindEcosystem(name string, all []*Ecosystem) *Ecosystem {
	for _, e := range all {
		if e.Matches(name) {
			return e
		}
	}
	return nil
}
