package scan

import (
	"slices"
	"sync"
)

// Index maps normalized dependency names to the files that declare them.
// Insertion is safe for concurrent writers; duplicate (name, file) pairs
// collapse to one entry, and both names and file paths keep first-seen order
// so repeated scans over the same tree produce identical output.
type Index struct {
	normalize func(string) string

	mu     sync.Mutex
	closed bool
	order  []string
	files  map[string][]string
	seen   map[string]map[string]bool
}

// NewIndex creates an empty index. Names are passed through normalize before
// insertion and lookup; a nil normalize means names are used verbatim.
func NewIndex(normalize func(string) string) *Index {
	if normalize == nil {
		normalize = func(s string) string { return s }
	}
	return &Index{
		normalize: normalize,
		files:     make(map[string][]string),
		seen:      make(map[string]map[string]bool),
	}
}

// Record inserts one dependency occurrence. Inserts after Finalize are
// dropped.
func (ix *Index) Record(name, path string) {
	name = ix.normalize(name)
	if name == "" {
		return
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()
	if ix.closed {
		return
	}

	paths, known := ix.seen[name]
	if !known {
		paths = make(map[string]bool)
		ix.seen[name] = paths
		ix.order = append(ix.order, name)
	}
	if !paths[path] {
		paths[path] = true
		ix.files[name] = append(ix.files[name], path)
	}
}

// Finalize closes the index to further writes.
func (ix *Index) Finalize() {
	ix.mu.Lock()
	ix.closed = true
	ix.mu.Unlock()
}

// Files returns the file paths that declare name, in discovery order.
// Unknown names yield nil.
func (ix *Index) Files(name string) []string {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return slices.Clone(ix.files[ix.normalize(name)])
}

// Lookup reports, for each requested name, the files that declare it.
// Requested names are normalized before comparison; names with no matches map
// to an empty slice rather than an error.
func (ix *Index) Lookup(names []string) map[string][]string {
	out := make(map[string][]string, len(names))
	for _, name := range names {
		out[name] = ix.Files(name)
	}
	return out
}

// Names returns all indexed dependency names in discovery order.
func (ix *Index) Names() []string {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return slices.Clone(ix.order)
}

// Len returns the number of unique dependency names in the index.
func (ix *Index) Len() int {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return len(ix.order)
}
