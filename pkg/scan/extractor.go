package scan

import "path/filepath"

// Kind identifies a supported manifest format.
type Kind string

// Manifest kinds, each handled by exactly one Extractor.
const (
	KindPyproject    Kind = "pyproject.toml"
	KindSetupCfg     Kind = "setup.cfg"
	KindSetupPy      Kind = "setup.py"
	KindRequirements Kind = "requirements"
	KindPoetryLock   Kind = "poetry.lock"
	KindScript       Kind = "python-script"
	KindPackageJSON  Kind = "package.json"
	KindPackageLock  Kind = "package-lock.json"
	KindDenoJSON     Kind = "deno.json"
)

// Extractor reads dependency names from one manifest format.
type Extractor interface {
	// Kind returns the manifest format this extractor handles.
	Kind() Kind
	// Supports reports whether this extractor handles the given filename.
	Supports(filename string) bool
	// Extract parses content and returns the dependency names and file
	// references it declares. It must never execute code found in the file.
	// A nil Extraction with a nil error reports a supported filename that
	// holds no manifest content; such files are not counted as parsed.
	Extract(path string, content []byte) (*Extraction, error)
}

// Extraction holds the result of parsing one manifest file.
type Extraction struct {
	Names []string    // raw dependency names, in declaration order where the format has one
	Refs  []Reference // other manifest files this one includes
	// Partial marks a best-effort result: some dependency declarations could
	// not be statically read (e.g., a computed install_requires value).
	Partial bool
}

// Reference is a manifest's pointer to another manifest file that should be
// scanned as well, such as a pip "-r other.txt" include line.
type Reference struct {
	From   string // path of the referencing file
	Target string // target as written, relative to From's directory
}

// Classify finds the extractor that supports the given file path.
// It is a pure function of the file's base name; paths matching no extractor
// return ok=false and are expected to be skipped silently.
func Classify(path string, extractors []Extractor) (Extractor, bool) {
	name := filepath.Base(path)
	for _, e := range extractors {
		if e.Supports(name) {
			return e, true
		}
	}
	return nil, false
}

// ByKind returns the extractor with the given kind, if present.
func ByKind(kind Kind, extractors []Extractor) (Extractor, bool) {
	for _, e := range extractors {
		if e.Kind() == kind {
			return e, true
		}
	}
	return nil, false
}
