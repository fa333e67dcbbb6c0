package rust

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typefold/oas2rust/pkg/config"
	"github.com/typefold/oas2rust/pkg/ir"
)

func TestGenerateWritesTargetFiles(t *testing.T) {
	outDir := t.TempDir()
	doc := ir.IR{
		Models: []ir.Model{
			ir.StructModel{Name: "Pet", Fields: []ir.Field{
				{Name: "name", Type: "String", Required: true},
			}},
			ir.EnumModel{Name: "Status", Variants: []string{"available", "sold"}},
		},
		Requests: []ir.Request{
			{Name: "CreatePetRequest", ContentType: "application/json", Schema: "Pet"},
		},
	}

	g := NewGenerator()
	require.Equal(t, "rust", g.Kind())
	require.NoError(t, g.Generate(config.Target{Type: "rust", OutDir: outDir}, doc))

	models, err := os.ReadFile(filepath.Join(outDir, "models.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(models), "pub struct Pet {")
	assert.Contains(t, string(models), "pub enum Status {")
	assert.Contains(t, string(models), "pub struct CreatePetRequest {")

	mod, err := os.ReadFile(filepath.Join(outDir, "mod.rs"))
	require.NoError(t, err)
	assert.Equal(t, "pub mod models;", string(mod))

	readme, err := os.ReadFile(filepath.Join(outDir, "README.md"))
	require.NoError(t, err)
	assert.Contains(t, string(readme), "2 models")
	assert.Contains(t, string(readme), "1 request envelope")
	assert.Contains(t, string(readme), "| `Pet` | StructModel |")
	assert.Contains(t, string(readme), "| `Status` | EnumModel |")
}

func TestGenerateCreatesOutputDirectory(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "nested", "generated")

	g := NewGenerator()
	require.NoError(t, g.Generate(config.Target{Type: "rust", OutDir: outDir}, ir.IR{}))

	_, err := os.Stat(filepath.Join(outDir, "models.rs"))
	assert.NoError(t, err)
}
