package openapi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const specJSON = `{
	"openapi": "3.0.0",
	"info": {"title": "Test API", "version": "1.0.0"},
	"paths": {}
}`

const specYAML = `openapi: 3.0.0
info:
  title: Test API
  version: 1.0.0
paths: {}
`

func writeSpec(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDocumentJSON(t *testing.T) {
	doc, err := LoadDocument(writeSpec(t, "openapi.json", specJSON))
	require.NoError(t, err)
	assert.Equal(t, "Test API", doc.Info.Title)
}

func TestLoadDocumentYAML(t *testing.T) {
	doc, err := LoadDocument(writeSpec(t, "openapi.yaml", specYAML))
	require.NoError(t, err)
	assert.Equal(t, "Test API", doc.Info.Title)
}

func TestLoadDocumentMissingFile(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestValidateDocument(t *testing.T) {
	assert.NoError(t, ValidateDocument(writeSpec(t, "openapi.json", specJSON)))
}

func TestValidateDocumentRejectsBrokenSpec(t *testing.T) {
	// Valid JSON, but not a valid document: info is required.
	broken := `{"openapi": "3.0.0", "paths": {}}`
	assert.Error(t, ValidateDocument(writeSpec(t, "openapi.json", broken)))
}
