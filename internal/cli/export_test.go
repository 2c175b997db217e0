package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/matzehuels/depscout/pkg/scan"
)

func TestWriteJSON(t *testing.T) {
	index := scan.NewIndex(nil)
	index.Record("react", "/repo/package.json")
	index.Record("react", "/repo/app/package.json")
	index.Finalize()

	report := &scan.Report{
		Index:        index,
		FilesScanned: 10,
		FilesParsed:  2,
		Warnings:     1,
	}
	deps := []string{"react", "vue"}

	var buf bytes.Buffer
	if err := writeJSON(&buf, deps, index.Lookup(deps), report); err != nil {
		t.Fatalf("writeJSON failed: %v", err)
	}

	var got jsonReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(got.Results) != 2 {
		t.Fatalf("Results = %d entries, want 2", len(got.Results))
	}
	if got.Results[0].Name != "react" || len(got.Results[0].Files) != 2 {
		t.Errorf("react result = %+v, want 2 files", got.Results[0])
	}
	if got.Results[1].Name != "vue" || got.Results[1].Files == nil || len(got.Results[1].Files) != 0 {
		t.Errorf("vue result = %+v, want empty non-nil file list", got.Results[1])
	}
	if got.Stats.FilesScanned != 10 || got.Stats.ManifestsParsed != 2 ||
		got.Stats.Dependencies != 1 || got.Stats.Warnings != 1 {
		t.Errorf("Stats = %+v", got.Stats)
	}
}
