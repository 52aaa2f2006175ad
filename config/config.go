// Package config handles glad-fortran.toml generator configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up by FindAndLoad.
const FileName = "glad-fortran.toml"

// Config represents a glad-fortran.toml configuration.
type Config struct {
	Generator string   `toml:"generator"`
	Output    string   `toml:"output"`
	Apple     bool     `toml:"apple"`
	Makefile  bool     `toml:"makefile"`
	Types     Types    `toml:"types"`
	Compiler  Compiler `toml:"compiler"`

	// Path is the file the configuration was read from (set at load time).
	Path string `toml:"-"`
}

// Types extends the built-in type mapping tables. Kind maps associate a C
// type name with the ISO_C_BINDING kind used for its kind parameter.
type Types struct {
	Integer         map[string]string `toml:"integer"`
	Real            map[string]string `toml:"real"`
	Character       map[string]string `toml:"character"`
	Boolean         map[string]string `toml:"boolean"`
	TypedefPointer  []string          `toml:"typedef_pointer"`
	FunctionPointer []string          `toml:"function_pointer"`
	CLPointer       []string          `toml:"cl_pointer"`
}

// Compiler configures the optional syntax check of generated sources.
type Compiler struct {
	Path  string   `toml:"path"`
	Flags []string `toml:"flags"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Generator: "fortran",
		Output:    "./generated",
	}
}

// Load parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	if err := cfg.Types.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.Path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	if cfg.Generator == "" {
		cfg.Generator = "fortran"
	}
	if cfg.Output == "" {
		cfg.Output = "./generated"
	}

	return cfg, nil
}

// check rejects kind map entries with no ISO_C_BINDING kind.
func (t Types) check() error {
	tables := []struct {
		name  string
		kinds map[string]string
	}{
		{"integer", t.Integer},
		{"real", t.Real},
		{"character", t.Character},
		{"boolean", t.Boolean},
	}
	for _, table := range tables {
		for name, kind := range table.kinds {
			if strings.TrimSpace(kind) == "" {
				return fmt.Errorf("[types.%s] %s: empty kind", table.name, name)
			}
		}
	}
	return nil
}

// FindAndLoad walks up from startDir to find a glad-fortran.toml file,
// then loads and returns it. Returns the default configuration if none is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// CompilerFlags returns the flags for the syntax check, defaulting to a
// gfortran-compatible syntax-only run.
func (c *Config) CompilerFlags() []string {
	if len(c.Compiler.Flags) > 0 {
		return c.Compiler.Flags
	}
	return []string{"-fsyntax-only", "-std=f2008"}
}
