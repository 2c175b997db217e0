package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matzehuels/depscout/pkg/scan"
)

type jsonReport struct {
	Query   []string     `json:"query"`
	Results []jsonResult `json:"results"`
	Stats   jsonStats    `json:"stats"`
}

type jsonResult struct {
	Name  string   `json:"name"`
	Files []string `json:"files"`
}

type jsonStats struct {
	FilesScanned    int `json:"files_scanned"`
	ManifestsParsed int `json:"manifests_parsed"`
	Dependencies    int `json:"dependencies"`
	Warnings        int `json:"warnings"`
}

// writeJSON encodes the query results and scan statistics as indented JSON
// and writes them to w. Queried names with no matches appear with an empty
// file list so consumers see every requested name.
func writeJSON(w io.Writer, deps []string, matches map[string][]string, report *scan.Report) error {
	out := jsonReport{
		Query:   deps,
		Results: make([]jsonResult, len(deps)),
		Stats: jsonStats{
			FilesScanned:    report.FilesScanned,
			ManifestsParsed: report.FilesParsed,
			Dependencies:    report.Index.Len(),
			Warnings:        report.Warnings,
		},
	}

	for i, dep := range deps {
		files := matches[dep]
		if files == nil {
			files = []string{}
		}
		out.Results[i] = jsonResult{Name: dep, Files: files}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
