// Package python provides the Python manifest extractors: pyproject.toml,
// setup.cfg, setup.py, pip requirements files, poetry.lock, and inline script
// metadata blocks.
package python

import (
	"regexp"
	"strings"

	"github.com/matzehuels/depscout/pkg/scan"
)

// Ecosystem is the Python package universe, searched across PyPI-style
// manifests. Dependency names are compared under PEP 503 normalization.
var Ecosystem = &scan.Ecosystem{
	Name:       "python",
	Aliases:    []string{"py"},
	Normalize:  Normalize,
	Extractors: extractors,
}

func extractors(opts scan.Options) []scan.Extractor {
	return []scan.Extractor{
		&Pyproject{},
		&SetupCfg{},
		&SetupPy{},
		&Requirements{Names: opts.PipReqNames},
		&PoetryLock{},
		&Script{},
	}
}

// depSpecRE captures the leading package name of a PEP 508 dependency
// specifier, tolerating extras, version constraints, URL specs, and
// environment markers after it.
// https://packaging.python.org/en/latest/specifications/dependency-specifiers/#grammar
var depSpecRE = regexp.MustCompile(`^\s*([a-zA-Z0-9](?:[a-zA-Z0-9._-]*[a-zA-Z0-9])?)\b\s*(\[[^\[\]]*\])?\s*(?:@.+|([(<>=!~][^;]*)?)`)

// depName extracts the package name from a PEP 508 dependency specifier.
func depName(spec string) (string, bool) {
	m := depSpecRE.FindStringSubmatch(spec)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// specNames applies depName to a list of dependency specifiers, keeping order.
func specNames(specs []string) []string {
	var names []string
	for _, spec := range specs {
		if name, ok := depName(spec); ok {
			names = append(names, name)
		}
	}
	return names
}

var canonicalRE = regexp.MustCompile(`[-_.]+`)

// Normalize canonicalizes a Python package name per PEP 503: lowercase with
// runs of ".", "-", and "_" collapsed to a single hyphen.
func Normalize(name string) string {
	return canonicalRE.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
