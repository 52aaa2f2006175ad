package gen

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

func init() {
	Register("fortran_makefile", func() Generator { return &FortranMakefileGenerator{} })
}

// FortranMakefileGenerator produces a scaffold Makefile that compiles the
// generated module into a static library.
type FortranMakefileGenerator struct{}

func (g *FortranMakefileGenerator) Name() string { return "fortran_makefile" }

func (g *FortranMakefileGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	fsName := ctx.FeatureSet.Name
	module := ModuleName(ctx.Spec)

	var b strings.Builder

	fmt.Fprintf(&b, "# Scaffold Makefile for %s (feature set %s).\n", module, fsName)
	fmt.Fprintf(&b, "# Generated by glad-fortran %s. Edit freely; it is not overwritten.\n\n", ctx.Version)

	b.WriteString("GLAD_FORTRAN ?= glad-fortran\n")
	if ctx.DefPath != "" {
		fmt.Fprintf(&b, "FEATURE_SET  := %s\n", DefRelPath(ctx))
	}
	b.WriteString("FC           ?= gfortran\n")
	b.WriteString("FFLAGS       ?= -O2 -std=f2008\n")
	b.WriteString("AR           ?= ar\n\n")

	fmt.Fprintf(&b, "MODULE    := %s\n", module)
	b.WriteString("BUILD_DIR := build\n")
	fmt.Fprintf(&b, "SRC       := src/%s.f90\n", ctx.Spec)
	fmt.Fprintf(&b, "OBJ       := $(BUILD_DIR)/%s.o\n", ctx.Spec)
	b.WriteString("LIB       := $(BUILD_DIR)/lib$(MODULE).a\n\n")

	b.WriteString(".PHONY: all clean")
	if ctx.DefPath != "" {
		b.WriteString(" regenerate")
	}
	b.WriteString("\n\n")

	b.WriteString("all: $(LIB)\n\n")

	b.WriteString("$(LIB): $(OBJ)\n")
	b.WriteString("\t$(AR) rcs $@ $^\n\n")

	b.WriteString("$(OBJ): $(SRC)\n")
	b.WriteString("\t@mkdir -p $(BUILD_DIR)\n")
	b.WriteString("\t$(FC) $(FFLAGS) -J$(BUILD_DIR) -c -o $@ $<\n\n")

	if ctx.DefPath != "" {
		b.WriteString("regenerate:\n")
		b.WriteString("\t$(GLAD_FORTRAN) generate -o .. $(FEATURE_SET)\n\n")
	}

	b.WriteString("clean:\n")
	b.WriteString("\trm -rf $(BUILD_DIR)\n")

	return []*OutputFile{
		{Path: path.Join(fsName, "Makefile"), Content: []byte(b.String()), Scaffold: true},
	}, nil
}

// DefRelPath computes the path of the feature-set dump relative to the
// directory holding the generated Makefile.
func DefRelPath(ctx *Context) string {
	base := filepath.Join(ctx.OutputDir, ctx.FeatureSet.Name)
	rel, err := filepath.Rel(base, ctx.DefPath)
	if err != nil {
		return ctx.DefPath
	}
	return rel
}
