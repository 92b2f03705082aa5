package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdspan/internal/logging"
	"github.com/yaklabco/mdspan/pkg/config"
	"github.com/yaklabco/mdspan/pkg/reporter"
	"github.com/yaklabco/mdspan/pkg/runner"
)

// stdinPath is the path argument that reads standard input.
const stdinPath = "-"

type renderFlags struct {
	format         string
	jobs           int
	width          int
	ignore         []string
	detectLanguage bool
	followSymlinks bool
	summary        bool
	compact        bool
}

func newRenderCommand() *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render [paths...]",
		Short: "Render Markdown files",
		Long:  renderLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, ranges, json, reference")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().IntVarP(&flags.width, "width", "w", 0, "wrap width for previews (0 = terminal width, -1 = no wrap)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.detectLanguage, "detect-language", false, "guess languages of untagged code blocks")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "descend into symlinked directories")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a one-line summary to stderr")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")

	return cmd
}

const renderLongDescription = `Render Markdown files into styled text.

By default, renders all .md and .markdown files in the current directory
and subdirectories. Pass "-" to read a single document from standard input.

Examples:
  mdspan render README.md               # Preview a file in the terminal
  mdspan render docs/ --format ranges   # Show the styled ranges of every file
  mdspan render --format json > out.json
  cat notes.md | mdspan render -        # Render standard input
  mdspan render README.md --format reference  # Compare with a full renderer`

func runRender(cmd *cobra.Command, args []string, flags *renderFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	cliCfg := &config.Config{
		Format:         config.OutputFormat(flags.format),
		Jobs:           flags.jobs,
		Width:          flags.width,
		Ignore:         flags.ignore,
		DetectLanguage: flags.detectLanguage,
	}

	loadResult, workDir, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}
	cfg := loadResult.Config

	sheet, err := styleSheet(cfg)
	if err != nil {
		return err
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	var result *runner.Result
	if slices.Contains(args, stdinPath) {
		if len(args) != 1 {
			return fmt.Errorf("%w: %q cannot be combined with other paths", errUsage, stdinPath)
		}
		result, err = runner.RenderReader("<stdin>", cmd.InOrStdin(), sheet, renderOptions(cfg)...)
	} else {
		logger.Debug("starting render run", logging.FieldPaths, args, logging.FieldJobs, cfg.Jobs)
		result, err = runner.New().Run(ctx, runner.Options{
			Paths:          args,
			WorkingDir:     workDir,
			Ignore:         cfg.Ignore,
			FollowSymlinks: flags.followSymlinks,
			Jobs:           cfg.Jobs,
			Sheet:          sheet,
			Render:         renderOptions(cfg),
		})
	}
	if err != nil {
		return fmt.Errorf("render run failed: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       string(cfg.Color),
		Width:       cfg.Width,
		ShowSummary: flags.summary,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.Failed() {
		return ErrRenderFailures
	}
	return nil
}
