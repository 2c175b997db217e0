package scan_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/depscout/pkg/scan"
	"github.com/matzehuels/depscout/pkg/scan/javascript"
	"github.com/matzehuels/depscout/pkg/scan/python"
)

// runScan writes the given files into a temp dir, feeds them to a scanner
// for eco, and returns the report plus the absolute path of each file.
func runScan(t *testing.T, eco *scan.Ecosystem, opts scan.Options, files map[string]string) (*scan.Report, map[string]string) {
	t.Helper()

	dir := t.TempDir()
	paths := make(map[string]string, len(files))
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		paths[name] = path
	}

	candidates := make(chan scan.Candidate, len(files))
	for name := range files {
		candidates <- scan.Candidate{Path: paths[name]}
	}
	close(candidates)

	report, err := scan.NewScanner(eco, opts).Run(context.Background(), candidates)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return report, paths
}

func TestScanner_PythonRequirements(t *testing.T) {
	report, paths := runScan(t, python.Ecosystem, scan.Options{}, map[string]string{
		"requirements-dev.txt": "mypy==1.8\nblack\n",
	})

	got := report.Index.Lookup([]string{"mypy", "pytest"})
	if want := []string{paths["requirements-dev.txt"]}; !reflect.DeepEqual(got["mypy"], want) {
		t.Errorf("mypy = %v, want %v", got["mypy"], want)
	}
	if len(got["pytest"]) != 0 {
		t.Errorf("pytest = %v, want empty", got["pytest"])
	}
	if report.FilesParsed != 1 {
		t.Errorf("FilesParsed = %d, want 1", report.FilesParsed)
	}
}

func TestScanner_DeduplicatesAcrossFiles(t *testing.T) {
	report, _ := runScan(t, javascript.Ecosystem, scan.Options{}, map[string]string{
		"app/package.json":      `{"dependencies": {"react": "^18.0.0"}}`,
		"app/package-lock.json": `{"packages": {"node_modules/react": {"dependencies": {"react": "18.2.0"}}}}`,
	})

	if got := report.Index.Len(); got != 1 {
		t.Fatalf("unique dependencies = %d, want 1", got)
	}
	if got := len(report.Index.Files("react")); got != 2 {
		t.Errorf("react matched %d files, want 2", got)
	}
}

func TestScanner_FollowsReferences(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "requirements.txt")
	ci := filepath.Join(dir, "requirements-ci.txt")
	if err := os.WriteFile(main, []byte("-r requirements-ci.txt\nrequests\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ci, []byte("pytest\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	candidates := make(chan scan.Candidate, 1)
	candidates <- scan.Candidate{Path: main}
	close(candidates)

	report, err := scan.NewScanner(python.Ecosystem, scan.Options{}).Run(context.Background(), candidates)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if got := report.Index.Files("pytest"); !reflect.DeepEqual(got, []string{ci}) {
		t.Errorf("pytest = %v, want %v", got, []string{ci})
	}
	if report.FilesParsed != 2 {
		t.Errorf("FilesParsed = %d, want 2", report.FilesParsed)
	}
}

func TestScanner_ReferenceCycleTerminates(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "requirements.txt")
	b := filepath.Join(dir, "requirements-dev.txt")
	if err := os.WriteFile(a, []byte("-r requirements-dev.txt\nmypy\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, []byte("-r requirements.txt\nblack\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	candidates := make(chan scan.Candidate, 1)
	candidates <- scan.Candidate{Path: a}
	close(candidates)

	report, err := scan.NewScanner(python.Ecosystem, scan.Options{}).Run(context.Background(), candidates)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.FilesParsed != 2 {
		t.Errorf("FilesParsed = %d, want 2 (each file visited once)", report.FilesParsed)
	}
	for _, name := range []string{"mypy", "black"} {
		if got := len(report.Index.Files(name)); got != 1 {
			t.Errorf("%s matched %d files, want 1", name, got)
		}
	}
}

func TestScanner_DanglingReferenceWarns(t *testing.T) {
	var warnings []string
	opts := scan.Options{
		Logger: func(msg string, args ...any) { warnings = append(warnings, msg) },
	}

	report, _ := runScan(t, python.Ecosystem, opts, map[string]string{
		"requirements.txt": "-r missing.txt\nrequests\n",
	})

	if report.Warnings != 1 {
		t.Errorf("Warnings = %d, want 1", report.Warnings)
	}
	if len(warnings) != 1 {
		t.Errorf("logger called %d times, want 1", len(warnings))
	}
	if got := len(report.Index.Files("requests")); got != 1 {
		t.Errorf("requests matched %d files, want 1 (scan must continue)", got)
	}
}

func TestScanner_UnrecognizedPathsCounted(t *testing.T) {
	report, _ := runScan(t, javascript.Ecosystem, scan.Options{}, map[string]string{
		"README.md":    "# nothing",
		"setup.py":     "install_requires=['requests']", // python-only name
		"package.json": `{"dependencies": {"react": "1"}}`,
	})

	if report.FilesScanned != 3 {
		t.Errorf("FilesScanned = %d, want 3", report.FilesScanned)
	}
	if report.FilesParsed != 1 {
		t.Errorf("FilesParsed = %d, want 1", report.FilesParsed)
	}
	if got := len(report.Index.Files("requests")); got != 0 {
		t.Errorf("requests matched %d files, want 0 under javascript", got)
	}
}

func TestScanner_ForcedKindOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deps.list")
	if err := os.WriteFile(path, []byte("httpx>=0.27\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	candidates := make(chan scan.Candidate, 1)
	candidates <- scan.Candidate{Path: path, Kind: scan.KindRequirements}
	close(candidates)

	report, err := scan.NewScanner(python.Ecosystem, scan.Options{}).Run(context.Background(), candidates)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got := report.Index.Files("httpx"); !reflect.DeepEqual(got, []string{path}) {
		t.Errorf("httpx = %v, want %v", got, []string{path})
	}
}

func TestScanner_ReproducibleFileOrder(t *testing.T) {
	dir := t.TempDir()
	padding := strings.Repeat("# filler\n", 20000)

	var want []string
	for i := 0; i < 24; i++ {
		content := "mypy\n"
		if i%2 == 0 {
			// Alternate tiny and large files so workers finish out of order.
			content = padding + content
		}
		path := filepath.Join(dir, fmt.Sprintf("requirements-%02d.txt", i))
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		want = append(want, path)
	}

	for run := 0; run < 3; run++ {
		candidates := make(chan scan.Candidate, len(want))
		for _, path := range want {
			candidates <- scan.Candidate{Path: path}
		}
		close(candidates)

		report, err := scan.NewScanner(python.Ecosystem, scan.Options{}).Run(context.Background(), candidates)
		if err != nil {
			t.Fatalf("run %d: Run failed: %v", run, err)
		}
		if got := report.Index.Files("mypy"); !slices.Equal(got, want) {
			t.Fatalf("run %d: Files(mypy) ordered %v, want feed order %v", run, got, want)
		}
	}
}

func TestScanner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	candidates := make(chan scan.Candidate)
	defer close(candidates)

	_, err := scan.NewScanner(python.Ecosystem, scan.Options{}).Run(ctx, candidates)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run error = %v, want context.Canceled", err)
	}
}

func TestScanner_UnreadableFileWarns(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}

	dir := t.TempDir()
	locked := filepath.Join(dir, "requirements.txt")
	if err := os.WriteFile(locked, []byte("mypy\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatal(err)
	}
	open := filepath.Join(dir, "requirements-dev.txt")
	if err := os.WriteFile(open, []byte("black\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	candidates := make(chan scan.Candidate, 2)
	candidates <- scan.Candidate{Path: locked}
	candidates <- scan.Candidate{Path: open}
	close(candidates)

	report, err := scan.NewScanner(python.Ecosystem, scan.Options{}).Run(context.Background(), candidates)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if report.Warnings != 1 {
		t.Errorf("Warnings = %d, want 1", report.Warnings)
	}
	if report.FilesParsed != 1 {
		t.Errorf("FilesParsed = %d, want 1", report.FilesParsed)
	}
	if got := len(report.Index.Files("black")); got != 1 {
		t.Errorf("black matched %d files, want 1 (scan must continue)", got)
	}
	if got := len(report.Index.Files("mypy")); got != 0 {
		t.Errorf("mypy matched %d files, want 0", got)
	}
}

func TestScanner_PlainScriptsNotCountedAsManifests(t *testing.T) {
	report, _ := runScan(t, python.Ecosystem, scan.Options{}, map[string]string{
		"tool.py":          "import os\nprint(os.getcwd())\n",
		"fetch.py":         "# /// script\n# dependencies = [\"httpx\"]\n# ///\nimport httpx\n",
		"requirements.txt": "mypy\n",
	})

	if report.FilesScanned != 3 {
		t.Errorf("FilesScanned = %d, want 3", report.FilesScanned)
	}
	if report.FilesParsed != 2 {
		t.Errorf("FilesParsed = %d, want 2 (plain scripts are not manifests)", report.FilesParsed)
	}
	if got := len(report.Index.Files("httpx")); got != 1 {
		t.Errorf("httpx matched %d files, want 1", got)
	}
}

func TestScanner_EmptyInput(t *testing.T) {
	candidates := make(chan scan.Candidate)
	close(candidates)

	report, err := scan.NewScanner(python.Ecosystem, scan.Options{}).Run(context.Background(), candidates)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if report.FilesScanned != 0 || report.Index.Len() != 0 {
		t.Errorf("expected empty report, got %+v", report)
	}
}
