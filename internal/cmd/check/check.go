// Package check provides the check command.
package check

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/open-cli-collective/semantic-editor/internal/config"
	"github.com/open-cli-collective/semantic-editor/internal/document"
	"github.com/open-cli-collective/semantic-editor/internal/view"
	"github.com/open-cli-collective/semantic-editor/pkg/editor"
	"github.com/open-cli-collective/semantic-editor/pkg/hostdom"
)

const textWidth = 24

// ErrUnbound is returned in strict mode when elements match no block.
var ErrUnbound = errors.New("document has elements outside the catalog")

type checkOptions struct {
	strict     bool
	input      string
	output     string
	noColor    bool
	configPath string
	out        io.Writer // injectable for testing
	errOut     io.Writer
}

// NewCmdCheck creates the check command.
func NewCmdCheck() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Show how a document maps onto the block catalog",
		Long: `Mount the editor on a document and list every element under the root
together with the catalog rule that bound it.`,
		Example: `  # Inspect a document
  semed check page.html

  # Fail when an element matches no block
  semed check page.html --strict`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.output, _ = cmd.Flags().GetString("output")
			opts.noColor, _ = cmd.Flags().GetBool("no-color")
			opts.configPath, _ = cmd.Flags().GetString("config")
			opts.out = cmd.OutOrStdout()
			opts.errOut = cmd.ErrOrStderr()
			return runCheck(args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when any element matches no block")
	cmd.Flags().StringVar(&opts.input, "input", "", "Document input format: auto, html, markdown")

	return cmd
}

func runCheck(path string, opts *checkOptions) error {
	if err := view.ValidateFormat(opts.output); err != nil {
		return err
	}

	cfg, err := config.LoadWithEnv(config.PathOrDefault(opts.configPath))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if opts.input != "" {
		cfg.InputFormat = opts.input
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	reg, err := document.Registry(cfg)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	src, err := document.Load(path, cfg.Input())
	if err != nil {
		return err
	}

	// Repeated-binding diagnostics are noise here.
	ed, err := editor.New(src.Doc, src.Root,
		editor.WithRegistry(reg),
		editor.WithLogger(log.New(&bytes.Buffer{}, "", 0)),
	)
	if err != nil {
		return fmt.Errorf("failed to mount editor: %w", err)
	}

	renderer := view.NewRenderer(view.Format(opts.output), opts.noColor)
	if opts.out != nil {
		renderer.SetWriter(opts.out)
	}
	if opts.errOut != nil {
		renderer.SetErrWriter(opts.errOut)
	}

	headers := []string{"TAG", "RULE", "EDITABLE", "STATUS", "TEXT"}
	var rows [][]string
	unbound := 0
	for _, el := range hostdom.Elements(src.Root) {
		rule, status := "-", "bound"
		if d := ed.Classify(el); d != nil {
			if s, err := editor.BuildSelector(d); err == nil {
				rule = s.String()
			}
		}
		if !editor.Bound(el) {
			status = "unbound"
			unbound++
		}
		rows = append(rows, []string{
			el.Data,
			rule,
			strconv.FormatBool(hostdom.IsContentEditable(el)),
			status,
			excerpt(el),
		})
	}
	renderer.RenderTable(headers, rows)

	if unbound > 0 {
		renderer.Warning(fmt.Sprintf("%d element(s) match no block", unbound))
		if opts.strict {
			return fmt.Errorf("%w: %d unbound", ErrUnbound, unbound)
		}
	}
	return nil
}

// excerpt returns the text of el on one line, cut to textWidth runes.
func excerpt(el *html.Node) string {
	text := strings.Join(strings.Fields(hostdom.TextContent(el)), " ")
	if text == "" {
		return "-"
	}
	return view.Truncate(text, textWidth)
}
