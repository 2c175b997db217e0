package python

import (
	"github.com/BurntSushi/toml"

	"github.com/matzehuels/depscout/pkg/scan"
)

// PoetryLock parses poetry.lock files. The lock lists the full transitive
// closure, so every [[package]] entry counts as a declared dependency.
type PoetryLock struct{}

func (p *PoetryLock) Kind() scan.Kind           { return scan.KindPoetryLock }
func (p *PoetryLock) Supports(name string) bool { return name == "poetry.lock" }

type poetryLockFile struct {
	Packages []struct {
		Name string `toml:"name"`
	} `toml:"package"`
}

func (p *PoetryLock) Extract(path string, content []byte) (*scan.Extraction, error) {
	var lock poetryLockFile
	if err := toml.Unmarshal(content, &lock); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(lock.Packages))
	for _, pkg := range lock.Packages {
		if pkg.Name != "" {
			names = append(names, pkg.Name)
		}
	}
	return &scan.Extraction{Names: names}, nil
}
