package model

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Definition is the top-level structure of a feature-set dump: a feature set
// already resolved by the specification front end, plus the name of the
// specification it was selected from (e.g. "gl", "gles2").
type Definition struct {
	Spec       string     `yaml:"spec"`
	FeatureSet FeatureSet `yaml:"feature_set"`
}

// FeatureSet is the resolved collection of commands, types and enums selected
// for one API version, profile and extension list.
type FeatureSet struct {
	Name       string    `yaml:"name"`
	API        string    `yaml:"api"`
	Version    string    `yaml:"version,omitempty"`
	Profile    string    `yaml:"profile,omitempty"`
	Extensions []string  `yaml:"extensions,omitempty"`
	Types      []Type    `yaml:"types,omitempty"`
	Enums      []Enum    `yaml:"enums,omitempty"`
	Commands   []Command `yaml:"commands,omitempty"`
}

// Type is a named type declaration. Enum types (Category "enum") list the
// enumerants declared for them by the specification in Members.
type Type struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category,omitempty"`
	Alias    string   `yaml:"alias,omitempty"`
	Members  []string `yaml:"members,omitempty"`
}

// IsEnum reports whether the type is an enum group.
func (t *Type) IsEnum() bool {
	return t.Category == "enum"
}

// Enum is a single enumerant with its literal value as written in the specification.
type Enum struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
	Type  string `yaml:"type,omitempty"`
	Alias string `yaml:"alias,omitempty"`
}

// Command is a single API entry point.
type Command struct {
	Name   string     `yaml:"name"`
	Return ParsedType `yaml:"returns"`
	Params []Param    `yaml:"params,omitempty"`
	Alias  string     `yaml:"alias,omitempty"`
}

// Param is a named command parameter.
type Param struct {
	Name string     `yaml:"name"`
	Type ParsedType `yaml:"type"`
}

// ParsedType is a C type reduced to the three properties the mapping tables
// care about.
type ParsedType struct {
	Name    string
	Pointer int
	Const   bool
}

// ParseType parses a C type declaration such as "const GLchar *const*",
// "struct _cl_context *" or "GLuint[2]". Array brackets count as pointer depth.
func ParseType(decl string) ParsedType {
	var pt ParsedType
	pt.Pointer = strings.Count(decl, "*") + strings.Count(decl, "[")

	var words []string
	for _, w := range strings.FieldsFunc(decl, func(r rune) bool {
		return r == '*' || r == ' ' || r == '\t' || r == '[' || r == ']'
	}) {
		switch {
		case w == "const":
			pt.Const = true
		case w == "struct":
		case isArrayLength(w):
		default:
			words = append(words, w)
		}
	}
	pt.Name = strings.Join(words, " ")
	return pt
}

func isArrayLength(w string) bool {
	for _, r := range w {
		if r < '0' || r > '9' {
			return false
		}
	}
	return w != ""
}

// String renders the type in canonical C spelling.
func (t ParsedType) String() string {
	var b strings.Builder
	if t.Const {
		b.WriteString("const ")
	}
	b.WriteString(t.Name)
	if t.Pointer > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Repeat("*", t.Pointer))
	}
	return b.String()
}

// IsVoid reports whether the base type is void.
func (t ParsedType) IsVoid() bool {
	return t.Name == "void" || t.Name == "GLvoid"
}

// UnmarshalYAML decodes a C declaration string into a ParsedType.
func (t *ParsedType) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: type must be a C declaration string", value.Line)
	}
	*t = ParseType(value.Value)
	return nil
}

// MarshalYAML encodes the type as its C spelling.
func (t ParsedType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// EnumsFor returns the enumerants of an enum type that resolve inside the
// feature set, in declaration order.
func (fs *FeatureSet) EnumsFor(t *Type) []Enum {
	if len(t.Members) == 0 {
		return nil
	}
	members := make(map[string]bool, len(t.Members))
	for _, m := range t.Members {
		members[m] = true
	}
	var result []Enum
	for _, e := range fs.Enums {
		if members[e.Name] {
			result = append(result, e)
		}
	}
	return result
}

// TypeByName looks up a type declaration by name.
func (fs *FeatureSet) TypeByName(name string) *Type {
	for i := range fs.Types {
		if fs.Types[i].Name == name {
			return &fs.Types[i]
		}
	}
	return nil
}

// EnumByName looks up an enumerant by name.
func (fs *FeatureSet) EnumByName(name string) *Enum {
	for i := range fs.Enums {
		if fs.Enums[i].Name == name {
			return &fs.Enums[i]
		}
	}
	return nil
}

// CommandByName looks up a command by name.
func (fs *FeatureSet) CommandByName(name string) *Command {
	for i := range fs.Commands {
		if fs.Commands[i].Name == name {
			return &fs.Commands[i]
		}
	}
	return nil
}
