// Package catalog provides commands to inspect the block catalog.
package catalog

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/semantic-editor/internal/config"
	"github.com/open-cli-collective/semantic-editor/internal/document"
	"github.com/open-cli-collective/semantic-editor/internal/view"
	"github.com/open-cli-collective/semantic-editor/pkg/schema"
)

type catalogOptions struct {
	output     string
	noColor    bool
	builtin    bool
	configPath string
	out        io.Writer // injectable for testing
}

// NewCmdCatalog creates the catalog command.
func NewCmdCatalog() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the block catalog",
		Long: `Commands for listing and exporting the catalog of block types the editor
binds. The catalog comes from the config file, SEMED_CATALOG, or the
built-in default.`,
	}

	cmd.AddCommand(newCmdList())
	cmd.AddCommand(newCmdExport())

	return cmd
}

func bindOptions(cmd *cobra.Command, opts *catalogOptions) {
	opts.output, _ = cmd.Flags().GetString("output")
	opts.noColor, _ = cmd.Flags().GetBool("no-color")
	opts.configPath, _ = cmd.Flags().GetString("config")
	opts.out = cmd.OutOrStdout()
}

func newCmdList() *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List block types",
		Example: `  # List the active catalog
  semed catalog list

  # As JSON
  semed catalog list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindOptions(cmd, opts)
			return runList(opts)
		},
	}
	cmd.Flags().BoolVar(&opts.builtin, "builtin", false, "Use the built-in catalog")

	return cmd
}

func newCmdExport() *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the catalog as YAML",
		Example: `  # Start a custom catalog from the built-in one
  semed catalog export --builtin > ~/.config/semed/blocks.yml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindOptions(cmd, opts)
			return runExport(opts)
		},
	}
	cmd.Flags().BoolVar(&opts.builtin, "builtin", false, "Use the built-in catalog")

	return cmd
}

func loadRegistry(opts *catalogOptions) (*schema.Registry, error) {
	if opts.builtin {
		return schema.Default(), nil
	}
	cfg, err := config.LoadWithEnv(config.PathOrDefault(opts.configPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	reg, err := document.Registry(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return reg, nil
}

func runList(opts *catalogOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}
	reg, err := loadRegistry(opts)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}

	headers := []string{"TAG", "PARENTS", "ROOT", "INSERTABLE", "EDITABLE", "ENTER"}
	rows := make([][]string, 0, reg.Len())
	for _, d := range reg.Descriptors() {
		parents := strings.Join(d.ValidParents, ",")
		if parents == "" {
			parents = "-"
		}
		enter := "-"
		if d.Editable {
			enter = d.EnterTag()
		}
		rows = append(rows, []string{
			d.TagName,
			parents,
			strconv.FormatBool(d.RootAllowed),
			strconv.FormatBool(d.Insertable),
			strconv.FormatBool(d.Editable),
			enter,
		})
	}
	renderer.RenderTable(headers, rows)
	return nil
}

func runExport(opts *catalogOptions) error {
	reg, err := loadRegistry(opts)
	if err != nil {
		return err
	}
	out := opts.out
	if out == nil {
		out = os.Stdout
	}
	return schema.EncodeCatalog(out, reg)
}
