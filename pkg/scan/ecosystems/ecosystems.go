// Package ecosystems provides the complete list of supported package
// ecosystems.
//
// This package exists to break import cycles: the per-ecosystem packages
// (python, javascript) import pkg/scan, so pkg/scan cannot import them back.
// Consumers that need the full ecosystem list import this package instead.
package ecosystems

import (
	"strings"

	"github.com/matzehuels/depscout/pkg/scan"
	"github.com/matzehuels/depscout/pkg/scan/javascript"
	"github.com/matzehuels/depscout/pkg/scan/python"
)

// All is the canonical list of supported package ecosystems.
var All = []*scan.Ecosystem{
	python.Ecosystem,
	javascript.Ecosystem,
}

// Find returns the ecosystem matching name or an alias, or nil.
func Find(name string) *scan.Ecosystem {
	return scan.FindEcosystem(name, All)
}

// Names lists the canonical ecosystem names.
func Names() []string {
	names := make([]string, len(All))
	for i, e := range All {
		names[i] = e.Name
	}
	return names
}

// Usage returns the ecosystem names joined for help text, aliases included.
func Usage() string {
	var parts []string
	for _, e := range All {
		parts = append(parts, e.Name)
		parts = append(parts, e.Aliases...)
	}
	return strings.Join(parts, "|")
}
