package validate

import (
	"fmt"
	"strings"

	"github.com/benn-herrera/gladfortran/gen"
	"github.com/benn-herrera/gladfortran/model"
)

// ValidationError represents a single semantic validation error.
type ValidationError struct {
	Path    string // e.g., "feature_set.commands[3].params[1].type"
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationResult holds all validation errors and warnings.
// Warnings never make a result invalid.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

func (r *ValidationResult) addError(path, message string) {
	r.Errors = append(r.Errors, ValidationError{Path: path, Message: message})
}

func (r *ValidationResult) addWarning(path, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Path: path, Message: message})
}

func (r *ValidationResult) IsValid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) Error() string {
	if r.IsValid() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

// Validate performs semantic validation on a parsed feature-set dump. Every
// declaration the Fortran generator would render is formatted with f, so a
// valid result means generation cannot fail on a type or enumerant.
func Validate(def *model.Definition, f *gen.Formatter) *ValidationResult {
	result := &ValidationResult{}
	fs := &def.FeatureSet

	if def.Spec == "" {
		result.addError("spec", "specification name is required")
	}
	if fs.Name == "" {
		result.addError("feature_set.name", "feature set name is required")
	}

	validateTypes(result, fs)
	validateEnums(result, fs)
	validateCommands(result, fs, f)

	return result
}

func validateTypes(result *ValidationResult, fs *model.FeatureSet) {
	seen := make(map[string]bool)
	for i, t := range fs.Types {
		path := fmt.Sprintf("feature_set.types[%d]", i)
		if seen[t.Name] {
			result.addError(path+".name", fmt.Sprintf("duplicate type name %q", t.Name))
		}
		seen[t.Name] = true

		if t.Alias != "" {
			if t.Alias == t.Name {
				result.addError(path+".alias", fmt.Sprintf("type %q aliases itself", t.Name))
			} else if fs.TypeByName(t.Alias) == nil {
				result.addWarning(path+".alias", fmt.Sprintf("alias target %q not in feature set", t.Alias))
			}
		}
		if len(t.Members) > 0 && !t.IsEnum() {
			result.addError(path+".members", fmt.Sprintf("type %q lists members but is not an enum", t.Name))
		}
	}
}

func validateEnums(result *ValidationResult, fs *model.FeatureSet) {
	seen := make(map[string]bool)
	for i := range fs.Enums {
		e := &fs.Enums[i]
		path := fmt.Sprintf("feature_set.enums[%d]", i)
		if seen[e.Name] {
			result.addError(path+".name", fmt.Sprintf("duplicate enum name %q", e.Name))
		}
		seen[e.Name] = true

		if e.Value == "" {
			result.addError(path+".value", fmt.Sprintf("enum %q has no value", e.Name))
			continue
		}
		if _, err := gen.EnumType(e); err != nil {
			result.addError(path+".value", err.Error())
			continue
		}
		if _, err := gen.EnumValue(e); err != nil {
			result.addError(path+".value", err.Error())
		}
	}
}

func validateCommands(result *ValidationResult, fs *model.FeatureSet, f *gen.Formatter) {
	seen := make(map[string]bool)
	for i := range fs.Commands {
		cmd := &fs.Commands[i]
		path := fmt.Sprintf("feature_set.commands[%d]", i)
		if seen[cmd.Name] {
			result.addError(path+".name", fmt.Sprintf("duplicate command name %q", cmd.Name))
		}
		seen[cmd.Name] = true

		if cmd.Alias != "" && cmd.Alias != cmd.Name && fs.CommandByName(cmd.Alias) == nil {
			result.addWarning(path+".alias", fmt.Sprintf("alias target %q not in feature set", cmd.Alias))
		}

		if gen.IsReturning(cmd) {
			if _, err := f.ReturnTypeInterface(cmd); err != nil {
				result.addError(path+".returns", err.Error())
			} else if _, err := f.ReturnTypeImpl(cmd); err != nil {
				result.addError(path+".returns", err.Error())
			}
		}

		validateParams(result, path, cmd, f)
	}
}

func validateParams(result *ValidationResult, path string, cmd *model.Command, f *gen.Formatter) {
	names := make(map[string]bool)
	for j, p := range cmd.Params {
		paramPath := fmt.Sprintf("%s.params[%d]", path, j)
		if names[p.Name] {
			result.addError(paramPath+".name", fmt.Sprintf("duplicate parameter name %q in command %q", p.Name, cmd.Name))
		}
		names[p.Name] = true

		if _, err := f.TypeInterface(p.Type); err != nil {
			result.addError(paramPath+".type", err.Error())
			continue
		}
		if _, err := f.TypeImpl(p.Type); err != nil {
			result.addError(paramPath+".type", err.Error())
		}
	}
}
