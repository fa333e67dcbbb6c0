// Package oas2rust generates Rust model declarations from OpenAPI
// documents. This file exposes the convenience entry points; the pipeline
// itself lives in pkg/generator.
package oas2rust

import (
	"path/filepath"

	"github.com/typefold/oas2rust/pkg/config"
	"github.com/typefold/oas2rust/pkg/generator"
	"github.com/typefold/oas2rust/pkg/openapi"
)

// Generate renders Rust models for the given spec (file path or URL) into
// outDir.
func Generate(spec, outDir string) error {
	if !filepath.IsAbs(outDir) {
		abs, err := filepath.Abs(outDir)
		if err != nil {
			return err
		}
		outDir = abs
	}
	cfg := &config.Config{
		Spec:    spec,
		Targets: []config.Target{{Type: "rust", OutDir: outDir}},
	}
	return generator.NewService().Run(cfg)
}

// GenerateFromConfig runs every target of a config file.
func GenerateFromConfig(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	return generator.NewService().Run(cfg)
}

// ValidateSpec validates an OpenAPI specification.
func ValidateSpec(spec string) error {
	return openapi.ValidateDocument(spec)
}
