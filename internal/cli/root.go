package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/cfglink/internal/version"
	"github.com/arthur-debert/cfglink/pkg/config"
	"github.com/arthur-debert/cfglink/pkg/errors"
	"github.com/arthur-debert/cfglink/pkg/filesystem"
	"github.com/arthur-debert/cfglink/pkg/linker"
	"github.com/arthur-debert/cfglink/pkg/logging"
	"github.com/arthur-debert/cfglink/pkg/output"
	"github.com/arthur-debert/cfglink/pkg/paths"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
		quiet     bool
	)

	rootCmd := &cobra.Command{
		Use:   "cfglink",
		Short: "Publish a configuration directory as a symlink tree",
		Long: `cfglink walks a source directory and recreates its structure as symbolic
links under a per-user target directory, so a config repository can be
published into place without copying files.

Configuration variables (read once at startup, overridden by flags):
  CFGLINK_SOURCE_ROOT  directory to publish (default: the executable's directory)
  CFGLINK_TARGET_ROOT  directory receiving the links (default: $XDG_CONFIG_HOME/<source name>)
  CFGLINK_DRY_RUN      dry-run default (default: false)
  CFGLINK_VERBOSE      verbose default (default: true)
  CFGLINK_EXCLUDE      comma-separated entry names to skip (default: .git)

Existing files and symlinks at a target path are replaced; directories are
not. Links whose source file has since been deleted are left untouched.`,
		Version: version.Version,
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// Flags force their setting, overriding the env-derived default.
			if dryRun {
				cfg.DryRun = true
			}
			if quiet {
				cfg.Verbose = false
			}

			p, err := paths.New("", "")
			if err != nil {
				return err
			}

			printer := output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Verbose)
			summary, err := linker.Run(linker.Options{
				SourceRoot: p.SourceRoot(),
				TargetRoot: p.TargetRoot(),
				Exclude:    cfg.Exclude,
				DryRun:     cfg.DryRun,
				FS:         filesystem.NewOS(),
				Reporter:   printer,
			})
			if err != nil {
				return err
			}

			if summary.Failed > 0 {
				return errors.Newf(errors.ErrPartialFailure,
					"%d of %d links failed", summary.Failed, summary.Processed)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Preview links without touching the filesystem")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	// Surface flag parse errors with a stable code so main can decide to
	// print usage for them and not for runtime failures.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid arguments")
	})

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cfglink version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}
