package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"tassls/internal/project"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, project.ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[assembler]
case_sensitive = true
include_dirs = ["lib", "/abs/inc"]

[diagnostics]
max_diagnostics = 25
`)
	cfg, err := project.LoadFrom(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Assembler.CaseSensitive {
		t.Error("case_sensitive not read")
	}
	if cfg.Diagnostics.MaxDiagnostics != 25 {
		t.Errorf("max_diagnostics = %d", cfg.Diagnostics.MaxDiagnostics)
	}
	if len(cfg.Assembler.IncludeDirs) != 2 {
		t.Fatalf("include_dirs = %v", cfg.Assembler.IncludeDirs)
	}
	if want := filepath.Join(dir, "lib"); cfg.Assembler.IncludeDirs[0] != want {
		t.Errorf("relative dir = %q, want %q", cfg.Assembler.IncludeDirs[0], want)
	}
	if cfg.Assembler.IncludeDirs[1] != "/abs/inc" {
		t.Errorf("absolute dir = %q", cfg.Assembler.IncludeDirs[1])
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[assembler]\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	path, ok, err := project.Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find = %q %v %v", path, ok, err)
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want file in %q", path, root)
	}
}

func TestMissingConfigYieldsDefaults(t *testing.T) {
	cfg, err := project.LoadFrom(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Assembler.CaseSensitive {
		t.Error("default must be case-insensitive")
	}
	if cfg.Diagnostics.MaxDiagnostics != 100 {
		t.Errorf("default max = %d, want 100", cfg.Diagnostics.MaxDiagnostics)
	}
}
