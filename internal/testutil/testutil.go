package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to dir/name, creating parent directories, and
// returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}

	return path
}

// ProjectTree lays out a minimal frontend project in a fresh temp directory:
// an OpenAPI document at the root and a generator config inside the output
// directory. Returns the project root.
func ProjectTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	WriteFile(t, root, "openapi.json", `{"openapi":"3.0.0","info":{"title":"runciv","version":"1.0.0"},"paths":{}}`)
	WriteFile(t, root, filepath.Join("src", "api", "generated", "config.json"), `{"npmName":"runciv-api"}`)

	return root
}

// ExecStub drops an executable shell script named name into dir that prints
// output and exits with status. Returns the full path.
func ExecStub(t *testing.T, dir, name, output string, status int) string {
	t.Helper()

	script := fmt.Sprintf("#!/bin/sh\necho %q\nexit %d\n", output, status)

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write stub %s: %v", path, err)
	}

	return path
}
