package gen

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/benn-herrera/gladfortran/config"
	"github.com/benn-herrera/gladfortran/model"
)

var (
	// ErrNotImplemented marks constructs the mapping knows about but does not handle.
	ErrNotImplemented = errors.New("not implemented")
	// ErrUnsupportedType marks type shapes missing from the mapping tables.
	ErrUnsupportedType = errors.New("unsupported type")
)

func unsupported(t model.ParsedType) error {
	return fmt.Errorf("%w: %s pointer %d", ErrUnsupportedType, t.Name, t.Pointer)
}

func notImplemented(what string, t model.ParsedType) error {
	return fmt.Errorf("%w: %s (%s)", ErrNotImplemented, what, t)
}

// Category is the mapping class of a C base type.
type Category int

const (
	CategoryVoid Category = iota
	CategoryInteger
	CategoryBoolean
	CategoryReal
	CategoryCharacter
	CategoryTypedefPointer
	CategoryFunctionPointer
	CategoryCLPointer
	CategoryHandle
)

func (c Category) String() string {
	switch c {
	case CategoryVoid:
		return "void"
	case CategoryInteger:
		return "integer"
	case CategoryBoolean:
		return "boolean"
	case CategoryReal:
		return "real"
	case CategoryCharacter:
		return "character"
	case CategoryTypedefPointer:
		return "typedef pointer"
	case CategoryFunctionPointer:
		return "function pointer"
	case CategoryCLPointer:
		return "OpenCL pointer"
	case CategoryHandle:
		return "handle"
	default:
		return "unknown"
	}
}

// TypeTable holds the fixed type-name sets used for classification.
// Kind maps pair each type with the ISO_C_BINDING kind its kind parameter aliases.
type TypeTable struct {
	Integer         map[string]string
	Boolean         map[string]string
	Real            map[string]string
	Character       map[string]string
	TypedefPointer  map[string]bool
	FunctionPointer map[string]bool
	CLPointer       map[string]bool
	Handle          string
	Void            map[string]bool
}

// DefaultTypeTable returns the OpenGL family tables.
func DefaultTypeTable() *TypeTable {
	return &TypeTable{
		Integer: map[string]string{
			"GLbyte":           "c_signed_char",
			"GLubyte":          "c_signed_char",
			"GLshort":          "c_short",
			"GLushort":         "c_short",
			"GLint":            "c_int",
			"GLuint":           "c_int",
			"GLint64":          "c_int64_t",
			"GLuint64":         "c_int64_t",
			"GLint64EXT":       "c_int64_t",
			"GLuint64EXT":      "c_int64_t",
			"GLintptr":         "c_intptr_t",
			"GLsizeiptr":       "c_intptr_t",
			"GLintptrARB":      "c_intptr_t",
			"GLsizeiptrARB":    "c_intptr_t",
			"GLsizei":          "c_int",
			"GLclampx":         "c_int32_t",
			"GLfixed":          "c_int32_t",
			"GLhalf":           "c_short",
			"GLhalfNV":         "c_short",
			"GLhalfARB":        "c_short",
			"GLenum":           "c_int",
			"GLbitfield":       "c_int",
			"GLvdpauSurfaceNV": "c_intptr_t",
		},
		Boolean: map[string]string{
			"GLboolean": "c_signed_char",
		},
		Real: map[string]string{
			"GLfloat":  "c_float",
			"GLdouble": "c_double",
			"GLclampf": "c_float",
			"GLclampd": "c_double",
		},
		Character: map[string]string{
			"GLchar":    "c_char",
			"GLcharARB": "c_char",
		},
		TypedefPointer: setOf("GLsync", "GLeglClientBufferEXT", "GLeglImageOES"),
		FunctionPointer: setOf(
			"GLDEBUGPROC", "GLDEBUGPROCARB", "GLDEBUGPROCKHR", "GLDEBUGPROCAMD",
			"GLVULKANPROCNV",
		),
		CLPointer: setOf("_cl_context", "_cl_event"),
		Handle:    "GLhandleARB",
		Void:      setOf("void", "GLvoid"),
	}
}

func setOf(names ...string) map[string]bool {
	s := make(map[string]bool, len(names))
	for _, n := range names {
		s[n] = true
	}
	return s
}

// Merge adds configured type names to the tables.
func (tt *TypeTable) Merge(types config.Types) {
	mergeKinds(tt.Integer, types.Integer, "integer")
	mergeKinds(tt.Boolean, types.Boolean, "boolean")
	mergeKinds(tt.Real, types.Real, "real")
	mergeKinds(tt.Character, types.Character, "character")
	for _, name := range types.TypedefPointer {
		tt.TypedefPointer[name] = true
	}
	for _, name := range types.FunctionPointer {
		tt.FunctionPointer[name] = true
	}
	for _, name := range types.CLPointer {
		tt.CLPointer[name] = true
	}
}

// mergeKinds copies kind entries, skipping names with no kind.
func mergeKinds(dst, src map[string]string, table string) {
	for name, kind := range src {
		if strings.TrimSpace(kind) == "" {
			log.Warningf("ignoring %s type %s: empty kind", table, name)
			continue
		}
		dst[name] = kind
	}
}

// Classify categorizes a type by exact base-name membership.
func (tt *TypeTable) Classify(t model.ParsedType) (Category, error) {
	if t.Pointer > 2 {
		return 0, notImplemented("pointer depth greater than 2", t)
	}

	// OpenCL struct names sometimes carry stray blanks.
	name := strings.TrimSpace(t.Name)

	switch {
	case tt.Void[name]:
		return CategoryVoid, nil
	case tt.Integer[name] != "":
		return CategoryInteger, nil
	case tt.Boolean[name] != "":
		return CategoryBoolean, nil
	case tt.Real[name] != "":
		return CategoryReal, nil
	case tt.Character[name] != "":
		return CategoryCharacter, nil
	case tt.TypedefPointer[name]:
		return CategoryTypedefPointer, nil
	case tt.FunctionPointer[name]:
		return CategoryFunctionPointer, nil
	case tt.CLPointer[name]:
		return CategoryCLPointer, nil
	case name == tt.Handle:
		return CategoryHandle, nil
	default:
		return 0, unsupported(t)
	}
}

// KindParameter is a named kind constant declared by the generated module.
type KindParameter struct {
	Name string
	Kind string
}

// KindParameters lists the kind constants for every integer, boolean, real and
// character type, sorted by name.
func (tt *TypeTable) KindParameters() []KindParameter {
	var params []KindParameter
	for _, m := range []map[string]string{tt.Integer, tt.Boolean, tt.Real, tt.Character} {
		for name, kind := range m {
			params = append(params, KindParameter{Name: name, Kind: kind})
		}
	}
	sort.Slice(params, func(i, j int) bool { return params[i].Name < params[j].Name })
	return params
}
