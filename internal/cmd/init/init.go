// Package init provides the init command for semed.
package init

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/semantic-editor/internal/config"
	"github.com/open-cli-collective/semantic-editor/pkg/schema"
)

// ErrConfigExists is returned when a config file is present and may not be
// overwritten.
var ErrConfigExists = errors.New("configuration already exists")

type initOptions struct {
	catalog    string
	output     string
	input      string
	noPrompt   bool
	force      bool
	configPath string
	out        io.Writer // injectable for testing
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize semed configuration",
		Long: `Initialize semed with a block catalog and default formats.

This command will guide you through choosing a catalog file and the
default input and output formats. The configuration will be saved to
~/.config/semed/config.yml.

Leave the catalog empty to use the built-in block types. Run
"semed catalog export --builtin" to get a starting point for your own.`,
		Example: `  # Interactive setup
  semed init

  # Pre-populate the catalog
  semed init --catalog ~/.config/semed/blocks.yml

  # Non-interactive
  semed init --no-prompt --output markdown --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.out = cmd.OutOrStdout()
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.catalog, "catalog", "", "Path to a YAML block catalog")
	cmd.Flags().StringVar(&opts.output, "output-format", "", "Default output format (html, markdown, json)")
	cmd.Flags().StringVar(&opts.input, "input-format", "", "Default input format (auto, html, markdown)")
	cmd.Flags().BoolVar(&opts.noPrompt, "no-prompt", false, "Save the flag values without prompting")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing configuration")

	return cmd
}

func runInit(opts *initOptions) error {
	configPath := config.PathOrDefault(opts.configPath)
	out := opts.out
	if out == nil {
		out = os.Stdout
	}

	if _, err := os.Stat(configPath); err == nil && !opts.force {
		if opts.noPrompt {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, configPath)
		}
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(out, "Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		Catalog:      opts.catalog,
		OutputFormat: opts.output,
		InputFormat:  opts.input,
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = config.FormatHTML
	}
	if cfg.InputFormat == "" {
		cfg.InputFormat = config.FormatAuto
	}

	if !opts.noPrompt {
		if err := buildForm(cfg).Run(); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validateCatalog(cfg); err != nil {
		return err
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(out, "\nYou're all set! Try running:")
	fmt.Fprintln(out, "  semed catalog list")
	fmt.Fprintln(out, "  semed edit page.html --step 'focus 1' --step 'key enter'")

	return nil
}

func buildForm(cfg *config.Config) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Block catalog (optional)").
				Description("YAML catalog file; empty uses the built-in block types").
				Placeholder("~/.config/semed/blocks.yml").
				Value(&cfg.Catalog).
				Validate(func(s string) error {
					return validateCatalog(&config.Config{Catalog: s})
				}),

			huh.NewSelect[string]().
				Title("Output format").
				Description("Format edited documents are written in").
				Options(huh.NewOptions(config.FormatHTML, config.FormatMarkdown, config.FormatJSON)...).
				Value(&cfg.OutputFormat),

			huh.NewSelect[string]().
				Title("Input format").
				Description("How documents are read; auto picks by file extension").
				Options(huh.NewOptions(config.FormatAuto, config.FormatHTML, config.FormatMarkdown)...).
				Value(&cfg.InputFormat),
		),
	)
}

// validateCatalog loads the configured catalog, if any, so a broken file is
// caught before it is saved.
func validateCatalog(cfg *config.Config) error {
	if cfg.Catalog == "" {
		return nil
	}
	if _, err := schema.LoadCatalogFile(cfg.CatalogPath()); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}
