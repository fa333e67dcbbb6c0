package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "oas2rust.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
spec: ./api/openapi.json
targets:
  - type: rust
    outDir: ./generated/rust
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.Spec), "relative spec paths are absolutized")
	require.Len(t, cfg.Targets, 1)
	assert.Equal(t, "rust", cfg.Targets[0].Type)
	assert.True(t, filepath.IsAbs(cfg.Targets[0].OutDir))
}

func TestLoadDefaultsTargetType(t *testing.T) {
	path := writeConfig(t, `
spec: ./openapi.yaml
targets:
  - outDir: ./out
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rust", cfg.Targets[0].Type)
}

func TestLoadKeepsSpecURL(t *testing.T) {
	path := writeConfig(t, `
spec: https://example.com/openapi.json
targets:
  - outDir: ./out
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/openapi.json", cfg.Spec)
}

func TestLoadMissingSpec(t *testing.T) {
	path := writeConfig(t, `
targets:
  - outDir: ./out
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "config.spec is required")
}

func TestLoadMissingTargets(t *testing.T) {
	path := writeConfig(t, `
spec: ./openapi.yaml
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "at least one target")
}

func TestLoadMissingOutDir(t *testing.T) {
	path := writeConfig(t, `
spec: ./openapi.yaml
targets:
  - type: rust
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "outDir")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
