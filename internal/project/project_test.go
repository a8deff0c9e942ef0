package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLayoutFrom(t *testing.T) {
	tests := []struct {
		name       string
		executable string
		wantRoot   string
	}{
		{
			name:       "tool in scripts directory",
			executable: "/home/dev/frontend/scripts/genapi",
			wantRoot:   "/home/dev/frontend",
		},
		{
			name:       "tool in tools directory",
			executable: "/srv/runciv/tools/genapi",
			wantRoot:   "/srv/runciv",
		},
		{
			name:       "renamed binary",
			executable: "/srv/runciv/bin/regen-client",
			wantRoot:   "/srv/runciv",
		},
		{
			name:       "close to the filesystem root",
			executable: "/opt/genapi",
			wantRoot:   "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := LayoutFrom(tt.executable)

			if layout.Root != tt.wantRoot {
				t.Errorf("Expected root %s, got %s", tt.wantRoot, layout.Root)
			}

			wantSpec := filepath.Join(tt.wantRoot, "openapi.json")
			if layout.SpecFile != wantSpec {
				t.Errorf("Expected spec file %s, got %s", wantSpec, layout.SpecFile)
			}

			wantOutput := filepath.Join(tt.wantRoot, "src", "api", "generated")
			if layout.OutputDir != wantOutput {
				t.Errorf("Expected output dir %s, got %s", wantOutput, layout.OutputDir)
			}

			wantConfig := filepath.Join(wantOutput, "config.json")
			if layout.ConfigFile != wantConfig {
				t.Errorf("Expected config file %s, got %s", wantConfig, layout.ConfigFile)
			}
		})
	}
}

func TestLayoutFromIgnoresWorkingDirectory(t *testing.T) {
	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	defer os.Chdir(originalDir)

	before := LayoutFrom("/home/dev/frontend/scripts/genapi")

	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Failed to change working directory: %v", err)
	}

	after := LayoutFrom("/home/dev/frontend/scripts/genapi")

	if before != after {
		t.Errorf("Expected layout to ignore the working directory, got %+v and %+v", before, after)
	}
}

func TestLocate(t *testing.T) {
	layout, err := Locate()
	if err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}

	if !filepath.IsAbs(layout.Root) {
		t.Errorf("Expected absolute root, got %s", layout.Root)
	}

	executable, err := os.Executable()
	if err != nil {
		t.Fatalf("Failed to resolve test binary: %v", err)
	}

	absolute, err := filepath.Abs(executable)
	if err != nil {
		t.Fatalf("Failed to absolutize test binary path: %v", err)
	}

	if want := LayoutFrom(absolute); layout != want {
		t.Errorf("Expected layout %+v, got %+v", want, layout)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "openapi.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if !FileExists(path) {
		t.Error("Expected existing file to be reported")
	}

	if FileExists(filepath.Join(dir, "missing.json")) {
		t.Error("Expected missing file not to be reported")
	}

	if FileExists(dir) {
		t.Error("Expected directory not to be reported as a file")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()

	if !DirExists(dir) {
		t.Error("Expected existing directory to be reported")
	}

	if DirExists(filepath.Join(dir, "missing")) {
		t.Error("Expected missing directory not to be reported")
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if DirExists(path) {
		t.Error("Expected file not to be reported as a directory")
	}
}
