package cli

import (
	"context"
	"errors"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depscout/pkg/buildinfo"
	scouterr "github.com/matzehuels/depscout/pkg/errors"
	"github.com/matzehuels/depscout/pkg/scan/ecosystems"
)

// Execute runs the depscout CLI and returns an error if any command fails.
//
// The root command gets one search subcommand per supported ecosystem, built
// from the ecosystem registry. Logging defaults to info level on stderr;
// --verbose (-v) switches to debug. The logger is attached to the context
// and accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:           "depscout",
		Short:         "Depscout finds which projects on your disk depend on a package",
		Long:          `Depscout scans a directory tree for dependency manifests (package.json, pyproject.toml, requirements files, lockfiles, ...) and reports, for each requested package, the files that declare it.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	for _, eco := range ecosystems.All {
		root.AddCommand(searchCmd(eco))
	}

	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		printError("%s", scouterr.UserMessage(err))
	}
	return err
}
