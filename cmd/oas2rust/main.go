package main

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/typefold/oas2rust/pkg/config"
	"github.com/typefold/oas2rust/pkg/generator"
	"github.com/typefold/oas2rust/pkg/openapi"
)

func main() {
	root := &cobra.Command{
		Use:   "oas2rust",
		Short: "Generate Rust model declarations from OpenAPI specs",
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var configPath string
	var input string
	var outDir string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Rust models",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath, input, outDir)
			if err != nil {
				return err
			}
			return generator.NewService().Run(cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to oas2rust.yaml config")
	cmd.Flags().StringVarP(&input, "input", "i", "", "OpenAPI spec file (yaml/json) or URL")
	cmd.Flags().StringVarP(&outDir, "out", "o", "./generated", "Output directory")

	return cmd
}

// resolveConfig picks between a config file and the single-target flag
// fallback.
func resolveConfig(configPath, input, outDir string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	if input == "" {
		return nil, errors.New("either --config or --input must be provided")
	}
	if !filepath.IsAbs(outDir) {
		abs, err := filepath.Abs(outDir)
		if err != nil {
			return nil, err
		}
		outDir = abs
	}
	return &config.Config{
		Spec:    input,
		Targets: []config.Target{{Type: "rust", OutDir: outDir}},
	}, nil
}

func newValidateCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an OpenAPI spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			return openapi.ValidateDocument(input)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "OpenAPI spec file (yaml/json)")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
