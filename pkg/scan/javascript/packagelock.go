package javascript

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/depscout/pkg/scan"
)

// PackageLock parses package-lock.json and npm-shrinkwrap.json files. Modern
// locks carry a flat packages map whose entries each declare their own
// dependency sections; v1 locks nest everything under a recursive top-level
// dependencies tree, which the shared spec walk picks up.
// https://docs.npmjs.com/cli/v10/configuring-npm/package-lock-json
type PackageLock struct{}

func (p *PackageLock) Kind() scan.Kind { return scan.KindPackageLock }

func (p *PackageLock) Supports(name string) bool {
	return strings.EqualFold(name, "package-lock.json") ||
		strings.EqualFold(name, "npm-shrinkwrap.json")
}

func (p *PackageLock) Extract(path string, content []byte) (*scan.Extraction, error) {
	var lock struct {
		Packages map[string]packageSpec `json:"packages"`
	}
	if err := json.Unmarshal(content, &lock); err != nil {
		return nil, err
	}

	c := newCollector()
	for _, pkg := range lock.Packages {
		c.spec(&pkg)
	}

	// v1 lockfile layout: a nested dependencies tree at the top level.
	var root packageSpec
	if err := json.Unmarshal(content, &root); err == nil {
		c.spec(&root)
	}

	return &scan.Extraction{Names: c.names}, nil
}
