// Package project loads tass.toml, the per-project configuration file.
// The file is optional; everything has a default and CLI flags override
// whatever the file says.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the manifest looked up from a source file's
// directory upward.
const ConfigFileName = "tass.toml"

// Config is the parsed tass.toml.
type Config struct {
	Assembler   AssemblerConfig   `toml:"assembler"`
	Diagnostics DiagnosticsConfig `toml:"diagnostics"`

	// Dir is the directory the config was loaded from, "" for defaults.
	Dir string `toml:"-"`
}

// AssemblerConfig configures indexing.
type AssemblerConfig struct {
	// CaseSensitive switches symbol comparison; the dialect default is
	// case-insensitive.
	CaseSensitive bool `toml:"case_sensitive"`
	// IncludeDirs are extra include search directories, relative paths
	// resolved against the config file's directory.
	IncludeDirs []string `toml:"include_dirs"`
}

// DiagnosticsConfig configures reporting.
type DiagnosticsConfig struct {
	// MaxDiagnostics caps the findings reported per document.
	MaxDiagnostics int `toml:"max_diagnostics"`
}

// Default returns the configuration used when no tass.toml exists.
func Default() Config {
	return Config{
		Diagnostics: DiagnosticsConfig{MaxDiagnostics: 100},
	}
}

// Load parses one tass.toml.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", path, err)
	}
	cfg.Dir = filepath.Dir(path)
	for i, dir := range cfg.Assembler.IncludeDirs {
		if !filepath.IsAbs(dir) {
			cfg.Assembler.IncludeDirs[i] = filepath.Join(cfg.Dir, dir)
		}
	}
	if cfg.Diagnostics.MaxDiagnostics <= 0 {
		cfg.Diagnostics.MaxDiagnostics = Default().Diagnostics.MaxDiagnostics
	}
	return cfg, nil
}

// Find walks up from startDir to locate tass.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadFrom locates and loads the config governing startDir, falling
// back to defaults when no tass.toml exists anywhere above it.
func LoadFrom(startDir string) (Config, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Default(), err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}
