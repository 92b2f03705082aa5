package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdspan/internal/configloader"
	"github.com/yaklabco/mdspan/internal/logging"
	"github.com/yaklabco/mdspan/pkg/config"
	"github.com/yaklabco/mdspan/pkg/render"
	"github.com/yaklabco/mdspan/pkg/style"
)

// commandContext returns the command's context, never nil.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// loadConfig resolves the configuration for cmd. cliCfg carries only the
// flags the user set.
func loadConfig(cmd *cobra.Command, cliCfg *config.Config) (*configloader.LoadResult, string, error) {
	ctx := commandContext(cmd)
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}
	if cmd.Flags().Changed("color") {
		color, _ := cmd.Flags().GetString("color")
		cliCfg.Color = config.ColorMode(color)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", errors.Join(errors.New("failed to load configuration"), err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	logger.Debug("configuration loaded",
		logging.FieldConfig, loadResult.LoadedFrom,
		logging.FieldFormat, loadResult.Config.Format,
		logging.FieldJobs, loadResult.Config.Jobs,
	)

	return loadResult, workDir, nil
}

// styleSheet configures the style sheet described by cfg.
func styleSheet(cfg *config.Config) (*style.StyleSheet, error) {
	opts, err := cfg.Style.ToStyleOptions()
	if err != nil {
		return nil, err
	}
	sheet, err := style.Configure(opts)
	if err != nil {
		return nil, fmt.Errorf("configure style: %w", err)
	}
	return sheet, nil
}

func renderOptions(cfg *config.Config) []render.Option {
	if cfg.DetectLanguage {
		return []render.Option{render.WithLanguageDetection()}
	}
	return nil
}
