package javascript

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/depscout/pkg/scan"
)

// PackageJSON parses package.json files. It reads every dependency section:
// dependencies (recursing into legacy nested objects), devDependencies,
// peerDependencies, optionalDependencies, bundle(d)Dependencies, and the
// keys of the overrides table.
// https://docs.npmjs.com/cli/v11/configuring-npm/package-json#dependencies
type PackageJSON struct{}

func (p *PackageJSON) Kind() scan.Kind { return scan.KindPackageJSON }

func (p *PackageJSON) Supports(name string) bool {
	return strings.EqualFold(name, "package.json")
}

func (p *PackageJSON) Extract(path string, content []byte) (*scan.Extraction, error) {
	var pkg packageSpec
	if err := json.Unmarshal(content, &pkg); err != nil {
		return nil, err
	}

	c := newCollector()
	c.spec(&pkg)
	return &scan.Extraction{Names: c.names}, nil
}

// packageSpec is the dependency-bearing subset of a package object. The same
// shape appears at the top of package.json, in lockfile package entries, and
// nested under legacy lockfile dependency trees.
type packageSpec struct {
	Dependencies         map[string]json.RawMessage `json:"dependencies"`
	DevDependencies      map[string]json.RawMessage `json:"devDependencies"`
	PeerDependencies     map[string]json.RawMessage `json:"peerDependencies"`
	OptionalDependencies map[string]json.RawMessage `json:"optionalDependencies"`
	BundleDependencies   []string                   `json:"bundleDependencies"`
	BundledDependencies  []string                   `json:"bundledDependencies"`
	Overrides            map[string]json.RawMessage `json:"overrides"`
}

// collector accumulates dependency names, collapsing duplicates while
// keeping first-seen order.
type collector struct {
	names []string
	seen  map[string]bool
}

func newCollector() *collector {
	return &collector{seen: make(map[string]bool)}
}

func (c *collector) add(name string) {
	if name == "" || c.seen[name] {
		return
	}
	c.seen[name] = true
	c.names = append(c.names, name)
}

func (c *collector) spec(pkg *packageSpec) {
	c.nested(pkg.Dependencies)
	for name := range pkg.DevDependencies {
		c.add(name)
	}
	for name := range pkg.PeerDependencies {
		c.add(name)
	}
	for name := range pkg.OptionalDependencies {
		c.add(name)
	}
	for _, name := range pkg.BundleDependencies {
		c.add(name)
	}
	for _, name := range pkg.BundledDependencies {
		c.add(name)
	}
	c.overrides(pkg.Overrides)
}

// nested walks a dependencies object. Values are version strings in source
// manifests but full package objects in legacy lockfile trees, so each value
// is probed for further nesting.
func (c *collector) nested(deps map[string]json.RawMessage) {
	for name, raw := range deps {
		c.add(name)
		var sub packageSpec
		if err := json.Unmarshal(raw, &sub); err == nil {
			c.nested(sub.Dependencies)
		}
	}
}

// overrides collects the package names keyed in an overrides table,
// descending into nested override objects.
func (c *collector) overrides(overrides map[string]json.RawMessage) {
	for name, raw := range overrides {
		c.add(name)
		var sub map[string]json.RawMessage
		if err := json.Unmarshal(raw, &sub); err == nil {
			c.overrides(sub)
		}
	}
}
