package cli

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/matzehuels/depscout/pkg/scan"
)

// walk traverses the tree under root and feeds every regular file to the
// scanner as a candidate. Directories and files whose base name appears in
// excludes are pruned. Unreadable directories are logged and skipped; only
// context cancellation stops the walk.
func walk(ctx context.Context, root string, excludes []string, out chan<- scan.Candidate, logf func(string, ...any)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			logf("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if slices.Contains(excludes, d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		select {
		case out <- scan.Candidate{Path: path}:
		case <-ctx.Done():
			return ctx.Err()
		}
		return nil
	})
}
