package gen

import (
	"github.com/benn-herrera/gladfortran/config"
	"github.com/benn-herrera/gladfortran/model"
)

// Context holds everything a generator needs to produce output.
type Context struct {
	Spec       string
	FeatureSet *model.FeatureSet
	Config     *config.Config
	Version    string // generator version stamped into output
	OutputDir  string
	DefPath    string // path of the feature-set dump (for Makefile regeneration)
	Verbose    bool
	DryRun     bool
}

// NewContext creates a new generation context. A nil cfg selects the defaults.
func NewContext(def *model.Definition, cfg *config.Config, version string, outputDir string) *Context {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Context{
		Spec:       def.Spec,
		FeatureSet: &def.FeatureSet,
		Config:     cfg,
		Version:    version,
		OutputDir:  outputDir,
	}
}

// TypeTable returns the default tables extended by the configuration.
func (c *Context) TypeTable() *TypeTable {
	tt := DefaultTypeTable()
	tt.Merge(c.Config.Types)
	return tt
}

// Formatter returns a declaration formatter for the configured platform.
func (c *Context) Formatter() *Formatter {
	return NewFormatter(c.TypeTable(), c.Config.Apple)
}
