package gen

import (
	"fmt"

	"github.com/benn-herrera/gladfortran/model"
)

// Role is the position a declaration occupies in the generated source.
type Role int

const (
	// RoleParameterInterface is a dummy argument of a bind(c) abstract interface.
	RoleParameterInterface Role = iota
	// RoleParameterImpl is a dummy argument of the Fortran wrapper procedure.
	RoleParameterImpl
	// RoleField is a component of a derived type.
	RoleField
)

// stringReturning lists entry points whose native char pointer result is
// decoded into a Fortran string.
var stringReturning = map[string]bool{
	"glGetString":  true,
	"glGetStringi": true,
}

// Formatter renders Fortran declarations for one target platform.
type Formatter struct {
	Apple bool
	Types *TypeTable
}

// NewFormatter creates a formatter over the given tables.
func NewFormatter(types *TypeTable, apple bool) *Formatter {
	return &Formatter{Apple: apple, Types: types}
}

// HandleType returns the representation of the platform handle type.
func (f *Formatter) HandleType() string {
	if f.Apple {
		return "type(c_ptr)"
	}
	return "integer(kind=c_int)"
}

// Declaration dispatches on the role of the declaration.
func (f *Formatter) Declaration(t model.ParsedType, role Role) (string, error) {
	switch role {
	case RoleParameterInterface:
		return f.TypeInterface(t)
	case RoleParameterImpl:
		return f.TypeImpl(t)
	case RoleField:
		return f.FieldType(t)
	default:
		return "", fmt.Errorf("unknown declaration role %d", role)
	}
}

// classifyUsable classifies a type that must carry a value: void without
// indirection is rejected.
func (f *Formatter) classifyUsable(t model.ParsedType) (Category, error) {
	cat, err := f.Types.Classify(t)
	if err != nil {
		return 0, err
	}
	if cat == CategoryVoid && t.Pointer == 0 {
		return 0, notImplemented("void used as a value", t)
	}
	return cat, nil
}

// scalar renders the integer/real/handle declarations shared by every role.
func (f *Formatter) scalar(t model.ParsedType, cat Category) (string, bool) {
	switch cat {
	case CategoryInteger, CategoryBoolean:
		return fmt.Sprintf("integer(kind=%s)", t.Name), true
	case CategoryReal:
		return fmt.Sprintf("real(kind=%s)", t.Name), true
	case CategoryHandle:
		return f.HandleType(), true
	}
	return "", false
}

func isOpaquePointer(t model.ParsedType, cat Category) bool {
	return cat == CategoryTypedefPointer || cat == CategoryCLPointer ||
		(cat == CategoryVoid && t.Pointer > 0)
}

// TypeInterface renders a parameter declaration for a bind(c) interface.
func (f *Formatter) TypeInterface(t model.ParsedType) (string, error) {
	cat, err := f.classifyUsable(t)
	if err != nil {
		return "", err
	}

	var decl string
	switch {
	case t.Pointer == 2:
		decl = "type(c_ptr), dimension(*)"
	case cat == CategoryCharacter:
		if t.Pointer != 1 {
			return "", unsupported(t)
		}
		decl = fmt.Sprintf("character(len=1,kind=%s), dimension(*)", t.Name)
	case isOpaquePointer(t, cat):
		decl = "type(c_ptr)"
	case cat == CategoryFunctionPointer:
		decl = "type(c_funptr)"
	default:
		s, ok := f.scalar(t, cat)
		if !ok {
			return "", unsupported(t)
		}
		decl = s
	}

	byValue := t.Pointer == 0 ||
		(t.Pointer == 1 && cat == CategoryVoid) ||
		cat == CategoryFunctionPointer ||
		cat == CategoryTypedefPointer ||
		cat == CategoryCLPointer ||
		(cat == CategoryHandle && f.Apple)

	switch {
	case byValue:
		decl += ", value"
	case t.Pointer > 0:
		decl += ", optional"
	}

	// value and intent(in) are mutually exclusive.
	if t.Const && !byValue {
		decl += ", intent(in)"
	}
	return decl, nil
}

// TypeImpl renders a parameter declaration for the wrapper procedure.
func (f *Formatter) TypeImpl(t model.ParsedType) (string, error) {
	cat, err := f.classifyUsable(t)
	if err != nil {
		return "", err
	}

	var decl string
	switch {
	case cat == CategoryCharacter:
		switch t.Pointer {
		case 1:
			decl = fmt.Sprintf("character(len=*,kind=%s), target", t.Name)
		case 2:
			decl = fmt.Sprintf("character(len=:,kind=%s), dimension(:), pointer", t.Name)
		default:
			return "", unsupported(t)
		}
	case t.Pointer == 2:
		decl = "type(c_ptr), dimension(:)"
	case isOpaquePointer(t, cat):
		decl = "type(c_ptr)"
	case cat == CategoryFunctionPointer:
		decl = "type(c_funptr)"
	default:
		s, ok := f.scalar(t, cat)
		if !ok {
			return "", unsupported(t)
		}
		decl = s
	}

	if t.Pointer > 0 {
		decl += ", optional"
	}
	if t.Const {
		decl += ", intent(in)"
	}
	return decl, nil
}

// FieldType renders a derived-type component declaration.
func (f *Formatter) FieldType(t model.ParsedType) (string, error) {
	cat, err := f.classifyUsable(t)
	if err != nil {
		return "", err
	}

	switch {
	case t.Pointer > 0 || cat == CategoryTypedefPointer || cat == CategoryCLPointer:
		return "type(c_ptr)", nil
	case cat == CategoryFunctionPointer:
		return "type(c_funptr)", nil
	case cat == CategoryCharacter:
		return fmt.Sprintf("character(len=1,kind=%s)", t.Name), nil
	}
	if s, ok := f.scalar(t, cat); ok {
		return s, nil
	}
	return "", unsupported(t)
}

// ReturnTypeInterface renders the result declaration of a bind(c) interface.
func (f *Formatter) ReturnTypeInterface(cmd *model.Command) (string, error) {
	t := cmd.Return
	cat, err := f.classifyUsable(t)
	if err != nil {
		return "", fmt.Errorf("%s: %w", cmd.Name, err)
	}

	switch {
	case t.Pointer > 0 || cat == CategoryTypedefPointer || cat == CategoryCLPointer:
		return "type(c_ptr)", nil
	case cat == CategoryFunctionPointer:
		return "type(c_funptr)", nil
	}
	if s, ok := f.scalar(t, cat); ok {
		return s, nil
	}
	return "", fmt.Errorf("%s: %w", cmd.Name, notImplemented("return type", t))
}

// ReturnTypeImpl renders the result declaration of the wrapper function.
func (f *Formatter) ReturnTypeImpl(cmd *model.Command) (string, error) {
	t := cmd.Return
	cat, err := f.classifyUsable(t)
	if err != nil {
		return "", fmt.Errorf("%s: %w", cmd.Name, err)
	}

	switch {
	case stringReturning[cmd.Name]:
		return "character(len=:, kind=c_char), pointer", nil
	case t.Pointer > 0 || cat == CategoryTypedefPointer || cat == CategoryCLPointer:
		return "type(c_ptr)", nil
	case cat == CategoryFunctionPointer:
		return fmt.Sprintf("procedure(%s), pointer", t.Name), nil
	}
	if s, ok := f.scalar(t, cat); ok {
		return s, nil
	}
	return "", fmt.Errorf("%s: %w", cmd.Name, notImplemented("return type", t))
}

// IntVar declares the auxiliary buffer pair a string-array parameter needs.
func (f *Formatter) IntVar(p model.Param) (string, error) {
	if !f.IsRequiringIntVar(p) {
		return "", unsupported(p.Type)
	}
	name := IntIdentifier(p.Name)
	return fmt.Sprintf("character(len=:,kind=%s), dimension(:), allocatable, target :: %sstr\n%s", p.Type.Name, name, bodyIndent) +
		fmt.Sprintf("type(c_ptr), dimension(:), allocatable :: %s", name), nil
}

// IsStringArray reports whether the type is a character pointer of depth 2.
func (f *Formatter) IsStringArray(t model.ParsedType) bool {
	cat, err := f.Types.Classify(t)
	return err == nil && cat == CategoryCharacter && t.Pointer == 2
}

// IsString reports whether the type is a character pointer of depth 1.
func (f *Formatter) IsString(t model.ParsedType) bool {
	cat, err := f.Types.Classify(t)
	return err == nil && cat == CategoryCharacter && t.Pointer == 1
}

// IsFunctionPointer reports whether the type is a function-pointer typedef.
func (f *Formatter) IsFunctionPointer(t model.ParsedType) bool {
	cat, err := f.Types.Classify(t)
	return err == nil && cat == CategoryFunctionPointer
}
