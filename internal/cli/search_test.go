package cli

import (
	"slices"
	"testing"
)

func TestScanExcludes_KeepsDefaults(t *testing.T) {
	got := scanExcludes([]string{"build", "dist"})

	for _, name := range []string{"Trash", "node_modules", ".git", "build", "dist"} {
		if !slices.Contains(got, name) {
			t.Errorf("scanExcludes = %v, missing %q", got, name)
		}
	}
}

func TestScanExcludes_NoExtras(t *testing.T) {
	if got := scanExcludes(nil); !slices.Equal(got, defaultExcludes) {
		t.Errorf("scanExcludes(nil) = %v, want %v", got, defaultExcludes)
	}
}

func TestScanExcludes_DoesNotMutateDefaults(t *testing.T) {
	before := slices.Clone(defaultExcludes)
	scanExcludes([]string{"venv"})

	if !slices.Equal(defaultExcludes, before) {
		t.Errorf("defaultExcludes changed to %v", defaultExcludes)
	}
}
