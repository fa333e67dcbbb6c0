// Package generator builds the IR from a parsed OpenAPI document and
// orchestrates the registered emitters. The builder is the core of the
// tool: reference resolution, composition algebra, type mapping and model
// deduplication all live here.
package generator

import (
	"fmt"
	"path/filepath"

	"github.com/typefold/oas2rust/pkg/config"
	"github.com/typefold/oas2rust/pkg/generator/rust"
	"github.com/typefold/oas2rust/pkg/ir"
	"github.com/typefold/oas2rust/pkg/openapi"
)

// Generator is the interface emitters implement.
type Generator interface {
	// Kind returns the type identifier used in target configs (e.g. "rust").
	Kind() string
	// Generate writes the rendered output for one target.
	Generate(target config.Target, doc ir.IR) error
}

// Registry manages available generators.
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates an empty generator registry.
func NewRegistry() *Registry {
	return &Registry{generators: make(map[string]Generator)}
}

// Register adds a generator to the registry.
func (r *Registry) Register(gen Generator) {
	r.generators[gen.Kind()] = gen
}

// Get retrieves a generator by kind.
func (r *Registry) Get(kind string) (Generator, bool) {
	gen, exists := r.generators[kind]
	return gen, exists
}

// Kinds returns all registered generator kinds.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.generators))
	for k := range r.generators {
		kinds = append(kinds, k)
	}
	return kinds
}

// Service provides high-level generation: load, build, emit.
type Service struct {
	registry *Registry
}

// NewService creates a generator service with the built-in Rust generator
// registered.
func NewService() *Service {
	registry := NewRegistry()
	registry.Register(rust.NewGenerator())
	return &Service{registry: registry}
}

// NewServiceWithRegistry creates a generator service with a custom registry.
func NewServiceWithRegistry(registry *Registry) *Service {
	return &Service{registry: registry}
}

// Registry returns the generator registry.
func (s *Service) Registry() *Registry {
	return s.registry
}

// Run loads the document, builds the IR once, and emits every configured
// target from it. Loading is the only fatal stage; once the document has
// parsed, the builder degrades unsupported constructs locally instead of
// failing the run.
func (s *Service) Run(cfg *config.Config) error {
	doc, err := openapi.LoadDocument(cfg.Spec)
	if err != nil {
		return err
	}

	build := Build(doc)

	for _, target := range cfg.Targets {
		gen, exists := s.registry.Get(target.Type)
		if !exists {
			return fmt.Errorf("unsupported target type: %s", target.Type)
		}
		if err := gen.Generate(target, build); err != nil {
			return err
		}
		fmt.Printf("Models generated successfully to %s\n", filepath.Join(target.OutDir, "models.rs"))
	}
	return nil
}
