package configcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/semantic-editor/internal/config"
	"github.com/open-cli-collective/semantic-editor/internal/document"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current semed configuration with source indicators.`,
		Example: `  # Show current config
  semed config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			noColor, _ := cmd.Flags().GetBool("no-color")
			configPath, _ := cmd.Flags().GetString("config")
			return runShow(cmd.OutOrStdout(), config.PathOrDefault(configPath), noColor)
		},
	}

	return cmd
}

func runShow(w io.Writer, configPath string, noColor bool) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	cfg, _ := config.LoadWithEnv(configPath)

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Fprintf(w, "%-10s", label+":")
		if value == "" {
			_, _ = dim.Fprintln(w, "-")
			return
		}

		fmt.Fprint(w, value)

		source := "config"
		if v := os.Getenv(envVar); v != "" && strings.EqualFold(v, value) {
			source = envVar
		} else if fileErr != nil || fileValue != value {
			source = "-"
		}

		_, _ = dim.Fprintf(w, "  (source: %s)\n", source)
	}

	printField("Catalog", cfg.Catalog, fileCfg.Catalog, "SEMED_CATALOG")
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, "SEMED_OUTPUT_FORMAT")
	printField("Input", cfg.InputFormat, fileCfg.InputFormat, "SEMED_INPUT_FORMAT")

	_, _ = bold.Fprintf(w, "%-10s", "Blocks:")
	if reg, err := document.Registry(cfg); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(w, "catalog error: %v\n", err)
	} else {
		fmt.Fprintf(w, "%d", reg.Len())
		if cfg.Catalog == "" {
			_, _ = dim.Fprint(w, "  (built-in)")
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}
