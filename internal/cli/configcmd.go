package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdspan/internal/configloader"
	"github.com/yaklabco/mdspan/pkg/config"
)

func newConfigCommand() *cobra.Command {
	var listEnv bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long: `Print the configuration after merging the user and project files, the
--config file and MDSPAN_* environment variables, as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if listEnv {
				return printEnvVars(cmd)
			}
			return runConfig(cmd)
		},
	}

	cmd.Flags().BoolVar(&listEnv, "env", false, "list the supported environment variables")

	return cmd
}

func runConfig(cmd *cobra.Command) error {
	loadResult, _, err := loadConfig(cmd, &config.Config{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(loadResult.LoadedFrom) == 0 {
		fmt.Fprintln(out, "# no configuration files found; showing defaults")
	}
	for _, path := range loadResult.LoadedFrom {
		fmt.Fprintf(out, "# loaded from %s\n", path)
	}

	data, err := loadResult.Config.ToYAML()
	if err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	_, err = out.Write(data)
	return err
}

func printEnvVars(cmd *cobra.Command) error {
	vars := configloader.ListEnvVars()
	width := 0
	for _, v := range vars {
		width = max(width, len(v[0]))
	}

	var b strings.Builder
	for _, v := range vars {
		fmt.Fprintf(&b, "%s  %s\n", rpad(v[0], width), v[1])
	}
	_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
	return err
}
