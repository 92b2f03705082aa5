package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdspan/internal/logging"
	"github.com/yaklabco/mdspan/pkg/config"
	"github.com/yaklabco/mdspan/pkg/fsutil"
	"github.com/yaklabco/mdspan/pkg/reporter"
	"github.com/yaklabco/mdspan/pkg/runner"
)

type exportFlags struct {
	output         string
	compact        bool
	detectLanguage bool
}

func newExportCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the rendered text and ranges of a file as JSON",
		Long: `Render one Markdown file and write its text, styled ranges and live links
as JSON. The output file is replaced atomically and left untouched when the
content is unchanged. Use "-" to read standard input.

Examples:
  mdspan export README.md -o readme.json
  mdspan export - < notes.md`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: standard output)")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "write compact JSON")
	cmd.Flags().BoolVar(&flags.detectLanguage, "detect-language", false, "guess languages of untagged code blocks")

	return cmd
}

func runExport(cmd *cobra.Command, path string, flags *exportFlags) error {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	loadResult, _, err := loadConfig(cmd, &config.Config{DetectLanguage: flags.detectLanguage})
	if err != nil {
		return err
	}
	cfg := loadResult.Config

	sheet, err := styleSheet(cfg)
	if err != nil {
		return err
	}

	var content []byte
	if path == stdinPath {
		path = "<stdin>"
		content, err = io.ReadAll(cmd.InOrStdin())
	} else {
		content, err = fsutil.ReadFile(ctx, path)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	outcome := runner.RenderSource(path, content, sheet, renderOptions(cfg)...)
	doc := reporter.ExportFile(outcome)

	var buf bytes.Buffer
	if err := reporter.EncodeJSON(&buf, doc, flags.compact); err != nil {
		return err
	}

	if flags.output == "" {
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, flags.output, buf.Bytes(), 0)
	if err != nil {
		return fmt.Errorf("write %s: %w", flags.output, err)
	}
	logger.Info("exported",
		logging.FieldPath, path,
		logging.FieldOutput, flags.output,
		logging.FieldRanges, len(doc.Ranges),
		"changed", written,
	)
	return nil
}
