package project

import (
	"fmt"
	"os"
	"path/filepath"
)

// File and directory names fixed by the frontend project layout
const (
	// SpecFileName is the OpenAPI document expected at the project root
	SpecFileName = "openapi.json"

	// ConfigFileName is the generator configuration kept inside the generated directory
	ConfigFileName = "config.json"

	// GeneratedDirPath is the output directory for the generated client, relative to the project root
	GeneratedDirPath = "src/api/generated"
)

// Layout holds the absolute paths the generator invocation is built from.
// Everything derives from the project root, which in turn derives from the
// location of the tool binary, never from the working directory.
type Layout struct {
	// Root is the project root, the parent of the directory holding the tool
	Root string

	// SpecFile is the OpenAPI document read by the generator
	SpecFile string

	// OutputDir receives the generated TypeScript client
	OutputDir string

	// ConfigFile is the generator configuration, referenced but never written by this tool
	ConfigFile string
}

// LayoutFrom derives the layout from the path of the tool binary. The root
// is the parent of the binary's own directory; nothing depends on the
// working directory.
func LayoutFrom(executable string) Layout {
	root := filepath.Dir(filepath.Dir(executable))
	outputDir := filepath.Join(root, filepath.FromSlash(GeneratedDirPath))

	return Layout{
		Root:       root,
		SpecFile:   filepath.Join(root, SpecFileName),
		OutputDir:  outputDir,
		ConfigFile: filepath.Join(outputDir, ConfigFileName),
	}
}

// Locate resolves the running binary to an absolute path and derives the
// layout from it.
func Locate() (Layout, error) {
	executable, err := os.Executable()
	if err != nil {
		return Layout{}, fmt.Errorf("failed to locate executable: %w", err)
	}

	absolute, err := filepath.Abs(executable)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to resolve executable path: %w", err)
	}

	return LayoutFrom(absolute), nil
}
