// Package edit provides the edit command.
package edit

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/semantic-editor/internal/config"
	"github.com/open-cli-collective/semantic-editor/internal/document"
	"github.com/open-cli-collective/semantic-editor/internal/session"
	"github.com/open-cli-collective/semantic-editor/pkg/editor"
)

type editOptions struct {
	steps      []string
	script     string
	format     string
	input      string
	raw        bool
	configPath string
	out        io.Writer // injectable for testing
	errOut     io.Writer
}

// NewCmdEdit creates the edit command.
func NewCmdEdit() *cobra.Command {
	opts := &editOptions{}

	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Mount the editor on a document and replay input",
		Long: `Load an HTML or markdown document, mount the block editor on it, replay
a session of input steps and print the resulting document.

Steps come from --step flags and from a --script file, script first.
One step per line:

  focus <n>               focus the n-th editable block
  key enter|backspace|delete
  type <text>
  insert <tag>            insert a block after the focused one
  click <tag>             press a toolbar button
  caret start|end
  next | prev | blur`,
		Example: `  # Add a paragraph after the first block
  semed edit notes.md --step "focus 1" --step "key enter" --step "type Hello"

  # Replay a script and print markdown
  semed edit page.html --script steps.txt --format markdown

  # Show the live tree with editor markers
  semed edit page.html --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.out = cmd.OutOrStdout()
			opts.errOut = cmd.ErrOrStderr()
			return runEdit(args[0], opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.steps, "step", "s", nil, "Input step to replay (repeatable)")
	cmd.Flags().StringVar(&opts.script, "script", "", "File with one input step per line")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Document output format: html, markdown, json")
	cmd.Flags().StringVar(&opts.input, "input", "", "Document input format: auto, html, markdown")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Keep the toolbar and editor markers in html output")

	return cmd
}

func runEdit(path string, opts *editOptions) error {
	if opts.out == nil {
		opts.out = os.Stdout
	}
	if opts.errOut == nil {
		opts.errOut = os.Stderr
	}

	cfg, err := config.LoadWithEnv(config.PathOrDefault(opts.configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.format != "" {
		cfg.OutputFormat = opts.format
	}
	if opts.input != "" {
		cfg.InputFormat = opts.input
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	steps, err := loadSteps(opts)
	if err != nil {
		return err
	}

	reg, err := document.Registry(cfg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	src, err := document.Load(path, cfg.Input())
	if err != nil {
		return err
	}

	ed, err := editor.New(src.Doc, src.Root,
		editor.WithRegistry(reg),
		editor.WithLogger(log.New(opts.errOut, "semed: ", 0)),
	)
	if err != nil {
		return fmt.Errorf("failed to mount editor: %w", err)
	}

	if err := session.NewRunner(ed).Run(steps); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}

	return document.Write(opts.out, ed, cfg.Output(), opts.raw)
}

func loadSteps(opts *editOptions) ([]session.Step, error) {
	var steps []session.Step
	if opts.script != "" {
		f, err := os.Open(opts.script)
		if err != nil {
			return nil, fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()

		steps, err = session.Parse(f)
		if err != nil {
			return nil, fmt.Errorf("invalid script: %w", err)
		}
	}

	extra, err := session.ParseAll(opts.steps)
	if err != nil {
		return nil, fmt.Errorf("invalid --step: %w", err)
	}
	return append(steps, extra...), nil
}
