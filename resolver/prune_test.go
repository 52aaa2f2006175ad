package resolver

import (
	"reflect"
	"testing"

	"github.com/benn-herrera/gladfortran/model"
)

func typeNames(fs *model.FeatureSet) []string {
	var names []string
	for _, t := range fs.Types {
		names = append(names, t.Name)
	}
	return names
}

func TestRemoveEmptyEnums(t *testing.T) {
	fs := &model.FeatureSet{
		Types: []model.Type{
			{Name: "GLenum", Category: "basetype"},
			{Name: "PolygonMode", Category: "enum", Members: []string{"GL_POINT", "GL_LINE"}},
			{Name: "PolygonModeEXT", Category: "enum", Alias: "PolygonMode"},
			{Name: "Empty", Category: "enum"},
			{Name: "EmptyEXT", Category: "enum", Alias: "Empty"},
			{Name: "Unresolved", Category: "enum", Members: []string{"GL_NOT_IN_SET"}},
		},
		Enums: []model.Enum{
			{Name: "GL_POINT", Value: "0x1B00"},
		},
	}

	removed := RemoveEmptyEnums(fs)

	wantRemoved := []string{"Empty", "EmptyEXT", "Unresolved"}
	if !reflect.DeepEqual(removed, wantRemoved) {
		t.Errorf("removed = %v, want %v", removed, wantRemoved)
	}
	wantKept := []string{"GLenum", "PolygonMode", "PolygonModeEXT"}
	if got := typeNames(fs); !reflect.DeepEqual(got, wantKept) {
		t.Errorf("kept = %v, want %v", got, wantKept)
	}
}

func TestRemoveEmptyEnums_AliasChain(t *testing.T) {
	fs := &model.FeatureSet{
		Types: []model.Type{
			{Name: "ModeOES", Category: "enum", Alias: "ModeEXT"},
			{Name: "ModeEXT", Category: "enum", Alias: "Mode"},
			{Name: "Mode", Category: "enum"},
		},
	}

	removed := RemoveEmptyEnums(fs)
	if len(removed) != 3 {
		t.Errorf("expected whole alias chain removed, got %v", removed)
	}
	if len(fs.Types) != 0 {
		t.Errorf("expected no types left, got %v", typeNames(fs))
	}
}

func TestRemoveEmptyEnums_NonEnumUntouched(t *testing.T) {
	fs := &model.FeatureSet{
		Types: []model.Type{
			{Name: "GLsync", Category: "basetype"},
			{Name: "GLDEBUGPROC", Category: "funcpointer"},
		},
	}
	if removed := RemoveEmptyEnums(fs); removed != nil {
		t.Errorf("expected nothing removed, got %v", removed)
	}
	if len(fs.Types) != 2 {
		t.Errorf("expected 2 types kept, got %d", len(fs.Types))
	}
}

func TestRemoveEmptyEnums_AliasedEnumWithoutMembersKept(t *testing.T) {
	// An alias carries no members of its own; it lives or dies with its target.
	fs := &model.FeatureSet{
		Types: []model.Type{
			{Name: "Mode", Category: "enum", Members: []string{"GL_FILL"}},
			{Name: "ModeEXT", Category: "enum", Alias: "Mode"},
		},
		Enums: []model.Enum{{Name: "GL_FILL", Value: "0x1B02"}},
	}
	if removed := RemoveEmptyEnums(fs); removed != nil {
		t.Errorf("expected nothing removed, got %v", removed)
	}
}
