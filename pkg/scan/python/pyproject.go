package python

import (
	"github.com/BurntSushi/toml"

	"github.com/matzehuels/depscout/pkg/scan"
)

// Pyproject parses pyproject.toml files. It reads PEP 621 project
// dependencies, optional dependency groups, PEP 735 dependency groups,
// build-system requirements, and Poetry's tool tables.
// https://packaging.python.org/en/latest/specifications/pyproject-toml
type Pyproject struct{}

func (p *Pyproject) Kind() scan.Kind           { return scan.KindPyproject }
func (p *Pyproject) Supports(name string) bool { return name == "pyproject.toml" }

type pyprojectFile struct {
	Project struct {
		Dependencies         []string            `toml:"dependencies"`
		OptionalDependencies map[string][]string `toml:"optional-dependencies"`
	} `toml:"project"`
	// PEP 735 group entries may be tables (group includes) rather than
	// dependency specifiers, so they decode loosely.
	DependencyGroups map[string][]any `toml:"dependency-groups"`
	BuildSystem      struct {
		Requires []string `toml:"requires"`
	} `toml:"build-system"`
	Tool struct {
		Poetry struct {
			Dependencies    map[string]any `toml:"dependencies"`
			DevDependencies map[string]any `toml:"dev-dependencies"`
			Group           map[string]struct {
				Dependencies map[string]any `toml:"dependencies"`
			} `toml:"group"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func (p *Pyproject) Extract(path string, content []byte) (*scan.Extraction, error) {
	var file pyprojectFile
	if err := toml.Unmarshal(content, &file); err != nil {
		return nil, err
	}

	var names []string
	names = append(names, specNames(file.Project.Dependencies)...)
	for _, group := range file.Project.OptionalDependencies {
		names = append(names, specNames(group)...)
	}
	for _, group := range file.DependencyGroups {
		for _, entry := range group {
			// Tables in a dependency group are group includes, not deps.
			// https://packaging.python.org/en/latest/specifications/dependency-groups/#dependency-group-include
			spec, ok := entry.(string)
			if !ok {
				continue
			}
			if name, ok := depName(spec); ok {
				names = append(names, name)
			}
		}
	}
	names = append(names, specNames(file.BuildSystem.Requires)...)

	names = append(names, poetryNames(file.Tool.Poetry.Dependencies)...)
	names = append(names, poetryNames(file.Tool.Poetry.DevDependencies)...)
	for _, group := range file.Tool.Poetry.Group {
		names = append(names, poetryNames(group.Dependencies)...)
	}

	return &scan.Extraction{Names: names}, nil
}

// poetryNames returns the dependency names of a Poetry dependency table.
// Keys are already bare package names; "python" is an interpreter constraint,
// not a dependency.
func poetryNames(deps map[string]any) []string {
	var names []string
	for name := range deps {
		if name == "python" {
			continue
		}
		names = append(names, name)
	}
	return names
}
