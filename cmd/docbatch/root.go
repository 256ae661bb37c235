package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/docbatch/internal/batch"
	"github.com/raphi011/docbatch/internal/config"
	"github.com/raphi011/docbatch/internal/format"
	"github.com/raphi011/docbatch/internal/history"
	"github.com/raphi011/docbatch/internal/log"
	"github.com/raphi011/docbatch/internal/output"
	"github.com/raphi011/docbatch/internal/ui/prompt"
	"github.com/raphi011/docbatch/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// rootOptions holds the global flags.
type rootOptions struct {
	verbose   bool
	quiet     bool
	outputDir string
	format    string
	dryRun    bool
	noHistory bool
}

// rootEnv carries what Execute resolves before flags are parsed.
type rootEnv struct {
	cfgErr      error  // config load failure, reported as a warning
	historyPath string // empty disables history
}

// newRootCmd builds the command tree.
func newRootCmd(env rootEnv) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "docbatch",
		Short: "Batch-create empty documents from a naming template",
		Long: `docbatch creates numbered copies of an empty document.

It asks for a naming template, a file type and a number of copies, then
writes the files to <output-dir>/<ext>/. The last number in the template
is incremented and zero-padded for each copy:

  Report-7-Draft x 3  ->  Report-08-Draft, Report-09-Draft, Report-10-Draft

A number directly after an underscore is kept as-is. Without a number the
counter is appended: Notes x 2 -> Notes1, Notes2.

When stdin is not a terminal, answers are read line by line.`,
		Example: `  docbatch                       # Interactive session
  docbatch -f xlsx               # Skip the file type menu
  docbatch -o ~/Desktop/out      # Write below another directory
  docbatch --dry-run             # Show the paths without creating files
  printf 'Scan0003\n6\n2\nn\n' | docbatch`,
		Args:                       cobra.NoArgs,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose && opts.quiet {
				return fmt.Errorf("--verbose and --quiet are mutually exclusive")
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			l := log.New(terminalWriter(cmd.ErrOrStderr()), opts.verbose, opts.quiet)
			ctx = log.WithLogger(ctx, l)
			ctx = output.WithPrinter(ctx, terminalWriter(cmd.OutOrStdout()))
			cmd.SetContext(ctx)

			if env.cfgErr != nil {
				l.Warnf("%v (using defaults)", env.cfgErr)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)

			outputDir := cfg.OutputDir
			if cmd.Flags().Changed("output-dir") {
				outputDir = opts.outputDir
			}
			log.FromContext(ctx).Debug("session", "output_dir", outputDir, "sheet", cfg.SheetName, "dry_run", opts.dryRun)

			sessionOpts := batch.Options{
				OutputDir: outputDir,
				Format:    opts.format,
				DryRun:    opts.dryRun,
				Writer:    format.Writer{SheetName: cfg.SheetName},
			}
			if env.historyPath != "" && !opts.noHistory {
				if h, err := history.Load(env.historyPath); err == nil {
					sessionOpts.Placeholder = h.MostRecent()
				}
				sessionOpts.Record = func(template, ext string, count int) error {
					return history.Record(env.historyPath, template, ext, count)
				}
			}

			return batch.New(newPrompter(cmd), sessionOpts).Run(ctx)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every state change and created file")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress all log output except errors")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", config.DefaultOutputDir, "Root directory for generated files")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "File type (extension or fuzzy name); skips the menu")
	cmd.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "Print planned paths without creating anything")
	cmd.Flags().BoolVar(&opts.noHistory, "no-history", false, "Do not read or record recent templates")
	cmd.RegisterFlagCompletionFunc("format", completeFormats)
	cmd.MarkFlagDirname("output-dir")

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)
	cmd.AddCommand(newFormatsCmd())
	cmd.AddCommand(newHistoryCmd(env.historyPath))
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// newPrompter picks the bubbletea prompter for an interactive stdin and
// the line prompter for everything else.
func newPrompter(cmd *cobra.Command) prompt.Prompter {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		if out, ok := cmd.OutOrStdout().(*os.File); ok {
			return prompt.New(f, out)
		}
	}
	return prompt.NewLine(in, cmd.OutOrStdout())
}

// terminalWriter downsamples colors for real files and passes other
// writers through.
func terminalWriter(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok {
		return output.TerminalWriter(f)
	}
	return w
}

// Execute loads the configuration, runs the root command and exits with
// status 1 on any error.
func Execute() {
	cfg, cfgErr := config.Load()
	styles.Init(cfg.Theme)

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx = config.WithConfig(ctx, &cfg)

	env := rootEnv{cfgErr: cfgErr}
	if path, err := history.DefaultPath(); err == nil {
		env.historyPath = path
	}

	rootCmd := newRootCmd(env)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.New(output.TerminalWriter(os.Stderr), false, false).Errorf("%v", err)
		cancel()
		os.Exit(1)
	}
}
