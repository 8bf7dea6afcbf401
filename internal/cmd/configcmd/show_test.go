package configcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/semantic-editor/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range envVars {
		t.Setenv(v, "")
	}
}

func TestRunShow_WithConfigFile(t *testing.T) {
	clearEnv(t)
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yml")
	catalog := filepath.Join(tmpDir, "blocks.yml")
	require.NoError(t, os.WriteFile(catalog, []byte("blocks:\n  - tag: h1\n    root_allowed: true\n  - tag: p\n    root_allowed: true\n"), 0644))

	cfg := &config.Config{Catalog: catalog, OutputFormat: "markdown"}
	require.NoError(t, cfg.Save(configPath))

	var out bytes.Buffer
	require.NoError(t, runShow(&out, configPath, true))

	s := out.String()
	assert.Contains(t, s, "Catalog:  "+catalog+"  (source: config)")
	assert.Contains(t, s, "Output:   markdown  (source: config)")
	assert.Contains(t, s, "Input:    -")
	assert.Contains(t, s, "Blocks:   2\n")
	assert.Contains(t, s, "Config file: "+configPath)
	assert.NotContains(t, s, "file not found")
}

func TestRunShow_EnvOverride(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, (&config.Config{OutputFormat: "html"}).Save(configPath))
	t.Setenv("SEMED_OUTPUT_FORMAT", "JSON")

	var out bytes.Buffer
	require.NoError(t, runShow(&out, configPath, true))
	assert.Contains(t, out.String(), "Output:   json  (source: SEMED_OUTPUT_FORMAT)")
}

func TestRunShow_NoConfigFile(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")

	var out bytes.Buffer
	require.NoError(t, runShow(&out, configPath, true))

	s := out.String()
	assert.Contains(t, s, "Catalog:  -")
	assert.Contains(t, s, "Blocks:   14  (built-in)")
	assert.Contains(t, s, "(file not found)")
}

func TestRunShow_BrokenCatalog(t *testing.T) {
	clearEnv(t)
	t.Setenv("SEMED_CATALOG", filepath.Join(t.TempDir(), "missing.yml"))

	var out bytes.Buffer
	require.NoError(t, runShow(&out, filepath.Join(t.TempDir(), "config.yml"), true))
	assert.Contains(t, out.String(), "(source: SEMED_CATALOG)")
	assert.Contains(t, out.String(), "catalog error: failed to open catalog")
}
