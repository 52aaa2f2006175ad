package cmd

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/benn-herrera/gladfortran/config"
	"github.com/benn-herrera/gladfortran/gen"
	"github.com/benn-herrera/gladfortran/loader"
	"github.com/benn-herrera/gladfortran/validate"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

func generateFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	f := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	f.StringSliceP("generator", "g", nil, "")
	f.StringP("output", "o", "./generated", "")
	f.Bool("apple", false, "")
	f.Bool("makefile", false, "")
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	return f
}

func TestApplyOverrides(t *testing.T) {
	c := &config.Config{Generator: "fortran", Output: "out", Apple: true}

	if err := applyOverrides(generateFlags(t), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Output != "out" || !c.Apple {
		t.Errorf("unset flags changed config: %+v", c)
	}

	if err := applyOverrides(generateFlags(t, "-o", "build", "--apple=false", "--makefile"), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Output != "build" {
		t.Errorf("Output = %q, want %q", c.Output, "build")
	}
	if c.Apple {
		t.Error("--apple=false should override config")
	}
	if !c.Makefile {
		t.Error("--makefile should enable the Makefile")
	}
}

func TestGeneratorNames(t *testing.T) {
	tests := []struct {
		args []string
		cfg  config.Config
		want []string
	}{
		{nil, config.Config{}, []string{"fortran"}},
		{nil, config.Config{Generator: "fortran", Makefile: true}, []string{"fortran", "fortran_makefile"}},
		{[]string{"-g", "fortran_makefile"}, config.Config{Generator: "fortran"}, []string{"fortran_makefile"}},
		{[]string{"-g", "fortran,fortran_makefile"}, config.Config{Makefile: true}, []string{"fortran", "fortran_makefile"}},
	}
	for _, tt := range tests {
		c := tt.cfg
		got, err := generatorNames(generateFlags(t, tt.args...), &c)
		if err != nil {
			t.Errorf("generatorNames(%v) error: %v", tt.args, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("generatorNames(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestWriteFiles_ScaffoldPreserved(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "gl", "Makefile")
	if err := os.MkdirAll(filepath.Dir(existing), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(existing, []byte("custom\n"), 0644); err != nil {
		t.Fatal(err)
	}

	files := []*gen.OutputFile{
		{Path: "gl/src/gl.f90", Content: []byte("module glad_gl\nend module glad_gl\n")},
		{Path: "gl/Makefile", Content: []byte("generated\n"), Scaffold: true},
	}
	written, skipped, sources, err := writeFiles(files, dir)
	if err != nil {
		t.Fatalf("writeFiles: %v", err)
	}
	if written != 1 || skipped != 1 {
		t.Errorf("written=%d skipped=%d, want 1 and 1", written, skipped)
	}
	if want := []string{filepath.Join(dir, "gl", "src", "gl.f90")}; !reflect.DeepEqual(sources, want) {
		t.Errorf("sources = %v, want %v", sources, want)
	}

	data, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "custom\n" {
		t.Errorf("scaffold overwritten: %q", data)
	}
}

func TestStarterDefinition_Generates(t *testing.T) {
	data, err := yaml.Marshal(starterDefinition("gl"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := loader.ValidateSchema(data); err != nil {
		t.Fatalf("starter dump fails schema validation: %v", err)
	}
	def, err := loader.LoadDefinitionNoValidate(data)
	if err != nil {
		t.Fatalf("loading starter dump: %v", err)
	}

	ctx := gen.NewContext(def, nil, "test", "generated")
	if result := validate.Validate(def, ctx.Formatter()); !result.IsValid() {
		t.Fatalf("starter dump invalid:\n%s", result.Error())
	}
	g, _ := gen.Get("fortran")
	if _, err := g.Generate(ctx); err != nil {
		t.Errorf("generating starter dump: %v", err)
	}
}

func TestStarterConfig_Parses(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte(starterConfig), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("loading starter config: %v", err)
	}
	if c.Generator != "fortran" || !c.Makefile {
		t.Errorf("unexpected starter config: %+v", c)
	}
	if got := c.CompilerFlags(); !reflect.DeepEqual(got, []string{"-fsyntax-only", "-std=f2008"}) {
		t.Errorf("CompilerFlags() = %v", got)
	}
}
