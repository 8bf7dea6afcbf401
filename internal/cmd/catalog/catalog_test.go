package catalog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/semantic-editor/pkg/schema"
)

func newOpts(t *testing.T, output string) (*catalogOptions, *bytes.Buffer) {
	t.Helper()
	t.Setenv("SEMED_CATALOG", "")
	out := &bytes.Buffer{}
	return &catalogOptions{
		output:     output,
		noColor:    true,
		configPath: filepath.Join(t.TempDir(), "config.yml"),
		out:        out,
	}, out
}

func TestRunList_Default(t *testing.T) {
	opts, out := newOpts(t, "plain")
	require.NoError(t, runList(opts))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 14)
	assert.Equal(t, "blockquote\t-\ttrue\ttrue\tfalse\t-", lines[0])
	assert.Equal(t, "dd\tdl\tfalse\tfalse\ttrue\tdt", lines[1])
	assert.Equal(t, "li\tol,ul\tfalse\tfalse\ttrue\tli", lines[10])
	assert.Equal(t, "p\tli\ttrue\ttrue\ttrue\tp", lines[12])
}

func TestRunList_JSON(t *testing.T) {
	opts, out := newOpts(t, "json")
	require.NoError(t, runList(opts))

	var rows []map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
	assert.Len(t, rows, schema.Default().Len())
	assert.Equal(t, "blockquote", rows[0]["tag"])
}

func TestRunList_ConfiguredCatalog(t *testing.T) {
	opts, out := newOpts(t, "plain")
	path := filepath.Join(t.TempDir(), "blocks.yml")
	require.NoError(t, os.WriteFile(path, []byte("blocks:\n  - tag: h1\n    root_allowed: true\n"), 0644))
	t.Setenv("SEMED_CATALOG", path)

	require.NoError(t, runList(opts))
	assert.Equal(t, "h1\t-\ttrue\tfalse\tfalse\t-\n", out.String())

	out.Reset()
	opts.builtin = true
	require.NoError(t, runList(opts))
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), 14)
}

func TestRunList_BadCatalog(t *testing.T) {
	opts, _ := newOpts(t, "plain")
	t.Setenv("SEMED_CATALOG", filepath.Join(t.TempDir(), "missing.yml"))

	err := runList(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load catalog")
}

func TestRunExport_LoadsBack(t *testing.T) {
	opts, out := newOpts(t, "")
	opts.builtin = true
	require.NoError(t, runExport(opts))

	reg, err := schema.LoadCatalog(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	require.Equal(t, schema.Default().Len(), reg.Len())
	assert.Equal(t, []string{"dt", "dd"}, reg.Lookup("dl").Children)
}
