// Package pkg provides the core libraries for depscout dependency searching.
//
// # Overview
//
// Depscout walks a directory tree, parses every package manifest it
// recognizes, and answers which files declare a given dependency. The pkg
// directory is organized into three areas:
//
//  1. [scan] - Scanning engine (extractors, concurrent scanner, name index)
//  2. [errors] - Coded errors and input validation
//  3. [buildinfo] - Version metadata injected at build time
//
// # Architecture
//
// The typical data flow through depscout:
//
//	Directory walk
//	         ↓
//	    [scan] package (classify files, run extractors, follow references)
//	         ↓
//	    [scan.Index] (normalized name → declaring files)
//	         ↓
//	    CLI output (styled text, JSON, or interactive browser)
//
// # Quick Start
//
// Scan a tree and look up a dependency:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/depscout/pkg/scan"
//	    "github.com/matzehuels/depscout/pkg/scan/python"
//	)
//
//	scanner := scan.NewScanner(python.Ecosystem, scan.Options{})
//	candidates := make(chan scan.Candidate)
//	go func() {
//	    defer close(candidates)
//	    candidates <- scan.Candidate{Path: "/repo/pyproject.toml"}
//	}()
//	report, err := scanner.Run(context.Background(), candidates)
//	if err != nil {
//	    return err
//	}
//	files := report.Index.Files("requests")
//
// # Ecosystems
//
// Each supported ecosystem lives in its own subpackage of [scan] and exports
// an [scan.Ecosystem] value bundling its name normalization rules with its
// manifest extractors:
//
//   - [scan/python] - pyproject.toml, setup.cfg, setup.py, pip requirements,
//     poetry.lock, and inline script metadata
//   - [scan/javascript] - package.json, npm lockfiles, and Deno config files
//
// The [scan/ecosystems] package registers them all for the CLI.
package pkg
