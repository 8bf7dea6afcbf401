// Package root provides the root command for the semed CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/semantic-editor/internal/cmd/catalog"
	"github.com/open-cli-collective/semantic-editor/internal/cmd/check"
	"github.com/open-cli-collective/semantic-editor/internal/cmd/completion"
	"github.com/open-cli-collective/semantic-editor/internal/cmd/configcmd"
	"github.com/open-cli-collective/semantic-editor/internal/cmd/edit"
	initcmd "github.com/open-cli-collective/semantic-editor/internal/cmd/init"
	"github.com/open-cli-collective/semantic-editor/internal/version"
)

// NewCmdRoot creates the root command for semed.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "semed",
		Short: "A semantic block editor for HTML and markdown documents",
		Long: `semed edits documents as a tree of semantic blocks: headings, paragraphs,
lists, quotes and definition lists.

It binds every block of a document against a catalog of block types, replays
keyboard and toolbar steps on it, and writes the result as HTML, markdown
or a JSON outline.

Get started by running: semed init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/semed/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Set version template
	cmd.SetVersionTemplate("semed version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(edit.NewCmdEdit())
	cmd.AddCommand(check.NewCmdCheck())
	cmd.AddCommand(catalog.NewCmdCatalog())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
