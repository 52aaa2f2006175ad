package gen

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/benn-herrera/gladfortran/model"
	"github.com/benn-herrera/gladfortran/resolver"
)

//go:embed templates/*.f90
var templateFS embed.FS

func init() {
	Register("fortran", func() Generator { return &FortranGenerator{} })
}

// FortranGenerator renders a Fortran 2008 module of ISO_C_BINDING interfaces,
// procedure pointers and wrappers for a feature set.
type FortranGenerator struct{}

func (g *FortranGenerator) Name() string { return "fortran" }

// TemplateOutput pairs a template with the path it renders to.
type TemplateOutput struct {
	Template string
	Path     string
}

// TemplateData is the root value passed to the templates.
type TemplateData struct {
	Spec       string
	FeatureSet *model.FeatureSet
	Version    string
	Aliases    map[string][]string
	ModuleName string
	LoaderName string
	Kinds      []KindParameter
	Apple      bool
}

// ModifyFeatureSet prunes empty enum types before rendering. It returns the
// names of the removed types.
func (g *FortranGenerator) ModifyFeatureSet(fs *model.FeatureSet) []string {
	removed := resolver.RemoveEmptyEnums(fs)
	if len(removed) > 0 {
		log.Infof("removed %d empty enum type(s) from %s: %v", len(removed), fs.Name, removed)
	}
	return removed
}

// TemplateArguments builds the template root value.
func (g *FortranGenerator) TemplateArguments(ctx *Context, tt *TypeTable) *TemplateData {
	aliases := resolver.CollectAliases(ctx.FeatureSet.Commands)
	log.Debugf("collected aliases for %d command(s)", len(aliases))
	return &TemplateData{
		Spec:       ctx.Spec,
		FeatureSet: ctx.FeatureSet,
		Version:    ctx.Version,
		Aliases:    aliases,
		ModuleName: ModuleName(ctx.Spec),
		LoaderName: LoaderName(ctx.Spec),
		Kinds:      tt.KindParameters(),
		Apple:      ctx.Config.Apple,
	}
}

// Templates lists the templates rendered for a feature set.
func (g *FortranGenerator) Templates(ctx *Context) []TemplateOutput {
	return []TemplateOutput{
		{Template: "base_template.f90", Path: SourcePath(ctx.FeatureSet.Name, ctx.Spec)},
	}
}

func (g *FortranGenerator) Generate(ctx *Context) ([]*OutputFile, error) {
	g.ModifyFeatureSet(ctx.FeatureSet)

	tt := ctx.TypeTable()
	f := NewFormatter(tt, ctx.Config.Apple)
	data := g.TemplateArguments(ctx, tt)

	var files []*OutputFile
	for _, out := range g.Templates(ctx) {
		tmpl, err := template.New(out.Template).Funcs(FuncMap(f)).ParseFS(templateFS, "templates/"+out.Template)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", out.Template, err)
		}

		var b bytes.Buffer
		if err := tmpl.Execute(&b, data); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", out.Path, err)
		}
		files = append(files, &OutputFile{Path: out.Path, Content: b.Bytes()})
	}
	return files, nil
}
