package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	scouterr "github.com/matzehuels/depscout/pkg/errors"
	"github.com/matzehuels/depscout/pkg/scan"
)

// defaultExcludes are always pruned from the walk; --exclude adds to them.
var defaultExcludes = []string{"Trash", "node_modules", ".git"}

// scanExcludes merges user-supplied exclude names with the built-in set.
func scanExcludes(extra []string) []string {
	return append(slices.Clone(defaultExcludes), extra...)
}

// searchOpts holds the command-line flags for an ecosystem search command.
type searchOpts struct {
	root        string   // directory to scan (default: user home)
	excludes    []string // file/directory names to skip, on top of defaultExcludes
	pipReqs     []string // pip requirements file names to recognize
	interactive bool     // browse results in a TUI
	jsonOut     bool     // machine-readable output on stdout
}

// searchCmd creates the search command for one ecosystem, e.g.
// "depscout python mypy pytest".
func searchCmd(eco *scan.Ecosystem) *cobra.Command {
	opts := searchOpts{
		pipReqs: scan.DefaultPipReqNames,
	}

	cmd := &cobra.Command{
		Use:     fmt.Sprintf("%s <dependency>...", eco.Name),
		Aliases: eco.Aliases,
		Short:   fmt.Sprintf("Search %s dependency lists", eco.Name),
		Args:    cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runSearch(c.Context(), eco, &opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.root, "root", "", "directory to scan (default: your home directory)")
	cmd.Flags().StringArrayVar(&opts.excludes, "exclude", nil,
		fmt.Sprintf("file or directory name to skip, in addition to %v (repeatable)", defaultExcludes))
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse results interactively")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print results as JSON")
	cmd.MarkFlagsMutuallyExclusive("interactive", "json")
	if eco.Name == "python" {
		cmd.Flags().StringArrayVar(&opts.pipReqs, "pip-req", opts.pipReqs, "pip requirements file name to search for (repeatable)")
	}

	return cmd
}

func runSearch(ctx context.Context, eco *scan.Ecosystem, opts *searchOpts, deps []string) error {
	logger := loggerFromContext(ctx)

	root := opts.root
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return scouterr.Wrap(scouterr.ErrCodeInvalidPath, err, "no scan root given and home directory unknown")
		}
		root = home
	}
	if err := scouterr.ValidateScanRoot(root); err != nil {
		return err
	}
	for _, name := range opts.pipReqs {
		if err := scouterr.ValidatePipReqName(name); err != nil {
			return err
		}
	}

	scanner := scan.NewScanner(eco, scan.Options{
		PipReqNames: opts.pipReqs,
		Logger:      func(msg string, args ...any) { logger.Warnf(msg, args...) },
	})

	logger.Infof("Searching %s manifests under %s", eco.Name, root)
	prog := newProgress(logger)

	candidates := make(chan scan.Candidate, scan.DefaultWorkers*2)
	walkErr := make(chan error, 1)
	go func() {
		err := walk(ctx, root, scanExcludes(opts.excludes), candidates, logger.Debugf)
		close(candidates)
		walkErr <- err
	}()

	report, err := scanner.Run(ctx, candidates)
	if err != nil {
		return err
	}
	if err := <-walkErr; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	prog.done(fmt.Sprintf("Scanned %d files", report.FilesScanned))

	matches := report.Index.Lookup(deps)
	switch {
	case opts.jsonOut:
		return writeJSON(os.Stdout, deps, matches, report)
	case opts.interactive:
		if err := browseResults(deps, matches); err != nil {
			return err
		}
	default:
		renderResults(deps, matches)
	}
	renderSummary(report)
	return nil
}
