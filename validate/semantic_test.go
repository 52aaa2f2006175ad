package validate

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/benn-herrera/gladfortran/gen"
	"github.com/benn-herrera/gladfortran/loader"
	"github.com/benn-herrera/gladfortran/model"
)

func formatter() *gen.Formatter {
	return gen.NewFormatter(gen.DefaultTypeTable(), false)
}

func minimalDef() *model.Definition {
	return &model.Definition{
		Spec: "gl",
		FeatureSet: model.FeatureSet{
			Name: "gl",
			API:  "gl",
			Types: []model.Type{
				{Name: "ClearBufferMask", Category: "enum", Members: []string{"GL_COLOR_BUFFER_BIT"}},
			},
			Enums: []model.Enum{
				{Name: "GL_COLOR_BUFFER_BIT", Value: "0x00004000"},
			},
			Commands: []model.Command{
				{
					Name:   "glClear",
					Return: model.ParseType("void"),
					Params: []model.Param{{Name: "mask", Type: model.ParseType("GLbitfield")}},
				},
			},
		},
	}
}

func hasErrorAt(result *ValidationResult, path string) bool {
	for _, e := range result.Errors {
		if e.Path == path {
			return true
		}
	}
	return false
}

func TestValidate_ValidMinimal(t *testing.T) {
	result := Validate(minimalDef(), formatter())
	if !result.IsValid() {
		t.Errorf("expected valid, got errors:\n%s", result.Error())
	}
	if result.Error() != "" {
		t.Errorf("Error() on valid result = %q, want empty", result.Error())
	}
}

func TestValidate_TestdataFiles(t *testing.T) {
	for _, name := range []string{"minimal.yaml", "full.yaml"} {
		def, err := loader.LoadDefinition(filepath.Join("..", "testdata", name))
		if err != nil {
			t.Fatalf("loading %s: %v", name, err)
		}
		result := Validate(def, formatter())
		if !result.IsValid() {
			t.Errorf("%s: expected valid, got errors:\n%s", name, result.Error())
		}
	}
}

func TestValidate_MissingNames(t *testing.T) {
	def := minimalDef()
	def.Spec = ""
	def.FeatureSet.Name = ""

	result := Validate(def, formatter())
	for _, path := range []string{"spec", "feature_set.name"} {
		if !hasErrorAt(result, path) {
			t.Errorf("expected error at %s, got:\n%s", path, result.Error())
		}
	}
}

func TestValidate_DuplicateNames(t *testing.T) {
	def := minimalDef()
	fs := &def.FeatureSet
	fs.Types = append(fs.Types, fs.Types[0])
	fs.Enums = append(fs.Enums, fs.Enums[0])
	fs.Commands = append(fs.Commands, fs.Commands[0])

	result := Validate(def, formatter())
	for _, path := range []string{
		"feature_set.types[1].name",
		"feature_set.enums[1].name",
		"feature_set.commands[1].name",
	} {
		if !hasErrorAt(result, path) {
			t.Errorf("expected error at %s, got:\n%s", path, result.Error())
		}
	}
}

func TestValidate_DuplicateParamName(t *testing.T) {
	def := minimalDef()
	cmd := &def.FeatureSet.Commands[0]
	cmd.Params = append(cmd.Params, cmd.Params[0])

	result := Validate(def, formatter())
	if !hasErrorAt(result, "feature_set.commands[0].params[1].name") {
		t.Errorf("expected duplicate parameter error, got:\n%s", result.Error())
	}
}

func TestValidate_UnsupportedParamType(t *testing.T) {
	def := minimalDef()
	def.FeatureSet.Commands = append(def.FeatureSet.Commands, model.Command{
		Name:   "glMystery",
		Return: model.ParseType("void"),
		Params: []model.Param{
			{Name: "ok", Type: model.ParseType("GLint")},
			{Name: "thing", Type: model.ParseType("GLmystery *")},
		},
	})

	result := Validate(def, formatter())
	if !hasErrorAt(result, "feature_set.commands[1].params[1].type") {
		t.Fatalf("expected error at params[1].type, got:\n%s", result.Error())
	}
	if !strings.Contains(result.Error(), "unsupported type") {
		t.Errorf("error should mention unsupported type: %s", result.Error())
	}
}

func TestValidate_TooDeepPointer(t *testing.T) {
	def := minimalDef()
	def.FeatureSet.Commands[0].Params[0].Type = model.ParseType("GLint ***")

	result := Validate(def, formatter())
	if !hasErrorAt(result, "feature_set.commands[0].params[0].type") {
		t.Errorf("expected error for pointer depth 3, got:\n%s", result.Error())
	}
}

func TestValidate_UnsupportedReturn(t *testing.T) {
	def := minimalDef()
	def.FeatureSet.Commands = append(def.FeatureSet.Commands, model.Command{
		Name:   "glGetChar",
		Return: model.ParseType("GLchar"),
	})

	result := Validate(def, formatter())
	if !hasErrorAt(result, "feature_set.commands[1].returns") {
		t.Errorf("expected return type error, got:\n%s", result.Error())
	}
}

func TestValidate_EnumValues(t *testing.T) {
	def := minimalDef()
	def.FeatureSet.Enums = append(def.FeatureSet.Enums,
		model.Enum{Name: "GL_ALL_ONES", Value: "~0"},
		model.Enum{Name: "EGL_NO_CONTEXT", Value: "((EGLContext)0)"},
		model.Enum{Name: "GL_EMPTY"},
	)

	result := Validate(def, formatter())
	for _, path := range []string{
		"feature_set.enums[1].value",
		"feature_set.enums[2].value",
		"feature_set.enums[3].value",
	} {
		if !hasErrorAt(result, path) {
			t.Errorf("expected error at %s, got:\n%s", path, result.Error())
		}
	}
}

func TestValidate_Aliases(t *testing.T) {
	def := minimalDef()
	fs := &def.FeatureSet
	fs.Types = append(fs.Types,
		model.Type{Name: "ClearBufferMaskEXT", Category: "enum", Alias: "ClearBufferMask"},
		model.Type{Name: "Orphan", Category: "enum", Alias: "Missing"},
		model.Type{Name: "Loop", Category: "enum", Alias: "Loop"},
	)
	fs.Commands = append(fs.Commands, model.Command{
		Name:   "glClearARB",
		Return: model.ParseType("void"),
		Alias:  "glClearNotHere",
	})

	result := Validate(def, formatter())
	if !hasErrorAt(result, "feature_set.types[3].alias") {
		t.Errorf("expected self-alias error, got:\n%s", result.Error())
	}
	if hasErrorAt(result, "feature_set.types[1].alias") {
		t.Error("valid alias reported as error")
	}

	warned := map[string]bool{}
	for _, w := range result.Warnings {
		warned[w.Path] = true
	}
	for _, path := range []string{"feature_set.types[2].alias", "feature_set.commands[1].alias"} {
		if !warned[path] {
			t.Errorf("expected warning at %s, got %v", path, result.Warnings)
		}
	}
}

func TestValidate_MembersOnNonEnum(t *testing.T) {
	def := minimalDef()
	def.FeatureSet.Types = append(def.FeatureSet.Types, model.Type{
		Name: "GLbitfield", Category: "basetype", Members: []string{"GL_COLOR_BUFFER_BIT"},
	})

	result := Validate(def, formatter())
	if !hasErrorAt(result, "feature_set.types[1].members") {
		t.Errorf("expected members error, got:\n%s", result.Error())
	}
}

func TestValidate_AppleHandle(t *testing.T) {
	def := minimalDef()
	def.FeatureSet.Commands = append(def.FeatureSet.Commands, model.Command{
		Name:   "glUseProgramObjectARB",
		Return: model.ParseType("void"),
		Params: []model.Param{{Name: "programObj", Type: model.ParseType("GLhandleARB")}},
	})

	for _, apple := range []bool{false, true} {
		result := Validate(def, gen.NewFormatter(gen.DefaultTypeTable(), apple))
		if !result.IsValid() {
			t.Errorf("apple=%v: expected valid, got:\n%s", apple, result.Error())
		}
	}
}
