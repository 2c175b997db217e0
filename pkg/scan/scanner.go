package scan

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/matzehuels/depscout/pkg/errors"
)

// Candidate is one file offered to the scanner. Kind, when set, forces the
// extractor selection regardless of the file's name (the --pip-req override).
type Candidate struct {
	Path string
	Kind Kind
}

// Report is the outcome of a completed scan.
type Report struct {
	Index        *Index
	FilesScanned int // candidates offered, recognized or not
	FilesParsed  int // candidates that matched a format, parsed cleanly, and held manifest content
	Warnings     int // per-file issues encountered and skipped
}

// Scanner runs the extraction pipeline for one ecosystem. Candidates are
// classified and parsed by a pool of workers while a single collector records
// occurrences and follows manifest references. Outcomes are replayed in
// discovery order, so the index's name and file ordering depends only on the
// candidate feed, never on worker scheduling.
type Scanner struct {
	eco        *Ecosystem
	opts       Options
	extractors []Extractor
	index      *Index

	jobs    chan job
	results chan outcome
	done    chan struct{}
	wg      sync.WaitGroup

	mu      sync.Mutex
	visited map[string]bool
	seq     int64

	pending  int64
	scanned  int64
	parsed   int32
	warnings int32

	// Collector state, touched only from Run's goroutine.
	feeding bool
	refs    []Reference
}

// job is a queued parse stamped with its discovery sequence number.
type job struct {
	Candidate
	seq int64
}

type outcome struct {
	job
	extraction *Extraction
	err        error
}

// NewScanner creates a scanner for the given ecosystem.
func NewScanner(eco *Ecosystem, opts Options) *Scanner {
	opts = opts.WithDefaults()
	return &Scanner{
		eco:        eco,
		opts:       opts,
		extractors: eco.Extractors(opts),
		index:      NewIndex(eco.Normalize),
		jobs:       make(chan job, opts.Workers*2),
		results:    make(chan outcome, opts.Workers*2),
		done:       make(chan struct{}),
		visited:    make(map[string]bool),
	}
}

// Run drains candidates, including any references discovered along the way,
// and returns the finalized report. It returns an error only when ctx is
// cancelled; every per-file failure is a warning.
func (s *Scanner) Run(ctx context.Context, candidates <-chan Candidate) (*Report, error) {
	s.feeding = true
	for i := 0; i < s.opts.Workers; i++ {
		s.wg.Add(1)
		go s.worker(ctx)
	}

	fed := make(chan struct{})
	go func() {
		defer close(fed)
		for c := range candidates {
			s.enqueue(c)
		}
	}()

	if err := s.collect(ctx, fed); err != nil {
		// Cancelled: release the workers and any queued senders, and wait
		// for the pool to unwind before abandoning the run.
		close(s.done)
		s.wg.Wait()
		return nil, err
	}

	close(s.jobs)
	s.wg.Wait()

	s.index.Finalize()
	return &Report{
		Index:        s.index,
		FilesScanned: int(atomic.LoadInt64(&s.scanned)),
		FilesParsed:  int(atomic.LoadInt32(&s.parsed)),
		Warnings:     int(atomic.LoadInt32(&s.warnings)),
	}, nil
}

func (s *Scanner) worker(ctx context.Context) {
	defer s.wg.Done()
	for {
		var j job
		var ok bool
		select {
		case j, ok = <-s.jobs:
			if !ok {
				return
			}
		case <-s.done:
			return
		}

		select {
		case s.results <- s.process(ctx, j):
		case <-s.done:
			return
		}
	}
}

func (s *Scanner) process(ctx context.Context, j job) outcome {
	if ctx.Err() != nil {
		return outcome{job: j}
	}
	ext, ok := s.classify(j.Candidate)
	if !ok {
		// Forced kind names an extractor the ecosystem doesn't have.
		return outcome{job: j}
	}
	content, err := os.ReadFile(j.Path)
	if err != nil {
		return outcome{job: j, err: errors.Wrap(errors.ErrCodeFileNotFound, err, "reading manifest")}
	}
	extraction, err := ext.Extract(j.Path, content)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeParse, err, "parsing manifest")
	}
	return outcome{job: j, extraction: extraction, err: err}
}

func (s *Scanner) classify(c Candidate) (Extractor, bool) {
	if c.Kind != "" {
		return ByKind(c.Kind, s.extractors)
	}
	return Classify(c.Path, s.extractors)
}

// enqueue registers a candidate, dropping paths already visited this run and
// paths no extractor recognizes. Queued jobs carry the next sequence number,
// so the collector can restore discovery order. It reports whether a parse
// job was queued.
func (s *Scanner) enqueue(c Candidate) bool {
	path := c.Path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	c.Path = filepath.Clean(path)

	s.mu.Lock()
	if s.visited[c.Path] {
		s.mu.Unlock()
		return false
	}
	s.visited[c.Path] = true
	s.mu.Unlock()

	atomic.AddInt64(&s.scanned, 1)

	if _, ok := s.classify(c); !ok {
		return false
	}

	s.mu.Lock()
	j := job{Candidate: c, seq: s.seq}
	s.seq++
	s.mu.Unlock()

	atomic.AddInt64(&s.pending, 1)
	go func() {
		select {
		case s.jobs <- j:
		case <-s.done:
		}
	}()
	return true
}

// collect receives worker outcomes and replays them in sequence order, so
// workers may finish in any order without that order leaking into the index.
func (s *Scanner) collect(ctx context.Context, fed <-chan struct{}) error {
	next := int64(0)
	held := make(map[int64]outcome)
	for {
		if !s.feeding && atomic.LoadInt64(&s.pending) == 0 {
			return nil
		}
		select {
		case r := <-s.results:
			held[r.seq] = r
			for {
				o, ok := held[next]
				if !ok {
					break
				}
				delete(held, next)
				next++
				s.handle(o)
			}
			if atomic.AddInt64(&s.pending, -1) == 0 && !s.feeding {
				return nil
			}
		case <-fed:
			fed = nil
			s.feeding = false
			s.flushRefs()
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) handle(r outcome) {
	if r.err != nil {
		s.warn("skipping %s: %v", r.Path, r.err)
		return
	}
	if r.extraction == nil {
		// Supported filename, but no manifest content (a Python file
		// without an inline metadata block). Not a parsed manifest.
		return
	}

	atomic.AddInt32(&s.parsed, 1)
	if r.extraction.Partial {
		s.warn("could not fully read the dependency list in %s", r.Path)
	}
	for _, name := range r.extraction.Names {
		s.index.Record(name, r.Path)
	}
	for _, ref := range r.extraction.Refs {
		s.follow(ref)
	}
}

// follow queues a manifest reference. While the candidate feed is still open
// the reference is held back, so reference jobs always take sequence numbers
// after the whole feed and discovery order stays deterministic. Once feeding
// ends, references resolve immediately.
func (s *Scanner) follow(ref Reference) {
	if s.feeding {
		s.refs = append(s.refs, ref)
		return
	}
	s.resolve(ref)
}

func (s *Scanner) flushRefs() {
	refs := s.refs
	s.refs = nil
	for _, ref := range refs {
		s.resolve(ref)
	}
}

// resolve resolves a manifest reference against the referencing file's
// directory and re-injects it as a pip requirements candidate. The shared
// visited set bounds circular includes.
func (s *Scanner) resolve(ref Reference) {
	target := ref.Target
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(ref.From), target)
	}
	if _, err := os.Stat(target); err != nil {
		s.warn("skipping reference %s from %s: %v", ref.Target, ref.From,
			errors.Wrap(errors.ErrCodeFileNotFound, err, "resolving include"))
		return
	}
	s.enqueue(Candidate{Path: target, Kind: KindRequirements})
}

func (s *Scanner) warn(format string, args ...any) {
	atomic.AddInt32(&s.warnings, 1)
	s.opts.Logger(format, args...)
}
