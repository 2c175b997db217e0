// Package javascript provides the JavaScript manifest extractors:
// package.json, npm lockfiles, and Deno config files.
package javascript

import (
	"strings"

	"github.com/matzehuels/depscout/pkg/scan"
)

// Ecosystem is the JavaScript package universe, searched across npm and Deno
// manifests. npm names are already lowercase, so normalization only folds
// case and trims whitespace.
var Ecosystem = &scan.Ecosystem{
	Name:       "javascript",
	Aliases:    []string{"js"},
	Normalize:  Normalize,
	Extractors: extractors,
}

func extractors(opts scan.Options) []scan.Extractor {
	return []scan.Extractor{
		&PackageJSON{},
		&PackageLock{},
		&DenoJSON{},
	}
}

// Normalize canonicalizes a JavaScript package name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
