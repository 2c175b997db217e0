package python

import (
	"slices"
	"testing"
)

func TestPyproject_Supports(t *testing.T) {
	parser := &Pyproject{}
	if !parser.Supports("pyproject.toml") {
		t.Error("Supports(pyproject.toml) = false, want true")
	}
	if parser.Supports("poetry.lock") {
		t.Error("Supports(poetry.lock) = true, want false")
	}
}

func TestPyproject_Extract(t *testing.T) {
	content := `
[build-system]
requires = ["hatchling"]

[project]
name = "demo"
dependencies = [
    "requests>=2.28",
    "click",
]

[project.optional-dependencies]
docs = ["sphinx"]

[dependency-groups]
dev = [
    "pytest>=8",
    {include-group = "docs"},
]
`
	got, err := (&Pyproject{}).Extract("/p/pyproject.toml", []byte(content))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	for _, want := range []string{"requests", "click", "sphinx", "pytest", "hatchling"} {
		if !slices.Contains(got.Names, want) {
			t.Errorf("Names = %v, missing %q", got.Names, want)
		}
	}
	if slices.Contains(got.Names, "include-group") {
		t.Errorf("Names = %v, group include leaked in", got.Names)
	}
	if len(got.Refs) != 0 {
		t.Errorf("Refs = %v, want none", got.Refs)
	}
}

func TestPyproject_ExtractPoetryTables(t *testing.T) {
	content := `
[tool.poetry.dependencies]
python = "^3.11"
fastapi = "^0.100"
uvicorn = { version = "^0.23", extras = ["standard"] }

[tool.poetry.dev-dependencies]
ruff = "*"

[tool.poetry.group.test.dependencies]
pytest = "^8"
`
	got, err := (&Pyproject{}).Extract("/p/pyproject.toml", []byte(content))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	for _, want := range []string{"fastapi", "uvicorn", "ruff", "pytest"} {
		if !slices.Contains(got.Names, want) {
			t.Errorf("Names = %v, missing %q", got.Names, want)
		}
	}
	if slices.Contains(got.Names, "python") {
		t.Errorf("Names = %v, interpreter constraint leaked in", got.Names)
	}
}

func TestPyproject_ExtractMalformed(t *testing.T) {
	if _, err := (&Pyproject{}).Extract("/p/pyproject.toml", []byte("[project\n")); err == nil {
		t.Error("Extract of malformed TOML succeeded, want error")
	}
}
