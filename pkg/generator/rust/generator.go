package rust

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/typefold/oas2rust/pkg/config"
	"github.com/typefold/oas2rust/pkg/ir"
	"github.com/typefold/oas2rust/pkg/utils"
)

//go:embed templates/*
var templatesFS embed.FS

// Generator writes the rendered Rust sources for one target directory.
type Generator struct{}

// NewGenerator creates a new Rust generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Kind returns the generator type identifier used in target configs.
func (g *Generator) Kind() string {
	return "rust"
}

// Generate renders the IR and writes models.rs, the re-exporting mod.rs and
// a README into the target's output directory.
func (g *Generator) Generate(target config.Target, doc ir.IR) error {
	if err := os.MkdirAll(target.OutDir, 0o755); err != nil {
		return err
	}

	renderer := &Renderer{}
	code := strings.TrimSpace(renderer.Render(doc))
	if err := os.WriteFile(filepath.Join(target.OutDir, "models.rs"), []byte(code), 0o644); err != nil {
		return fmt.Errorf("failed to write models.rs: %w", err)
	}
	if err := os.WriteFile(filepath.Join(target.OutDir, "mod.rs"), []byte(strings.TrimSpace(renderer.RenderModule())), 0o644); err != nil {
		return fmt.Errorf("failed to write mod.rs: %w", err)
	}

	data := map[string]any{
		"Target":    target,
		"Models":    doc.Models,
		"Requests":  doc.Requests,
		"Responses": doc.Responses,
	}
	return renderFile("README.md.gotmpl", filepath.Join(target.OutDir, "README.md"), data)
}

// renderFile renders an embedded template to the target path.
func renderFile(templateName, targetPath string, data map[string]any) error {
	funcMap := template.FuncMap{
		"pascal": utils.ToPascalCase,
		"snake":  utils.ToSnakeCase,
	}
	for k, v := range sprig.TxtFuncMap() {
		funcMap[k] = v
	}

	content, err := templatesFS.ReadFile("templates/" + templateName)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", templateName, err)
	}
	tmpl, err := template.New(templateName).Funcs(funcMap).Parse(string(content))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	file, err := os.Create(targetPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", targetPath, err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return nil
}
