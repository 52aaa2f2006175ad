package gen

import (
	"text/template"

	"github.com/benn-herrera/gladfortran/model"
)

// FuncMap returns the template filters and tests backed by f. Filters that can
// fail return an error, which aborts template execution.
func FuncMap(f *Formatter) template.FuncMap {
	return template.FuncMap{
		// filters
		"enum_type":             EnumType,
		"enum_value":            EnumValue,
		"proc_type":             ProcType,
		"return_type_interface": f.ReturnTypeInterface,
		"return_type_impl":      f.ReturnTypeImpl,
		"type_interface":        f.TypeInterface,
		"type_impl":             f.TypeImpl,
		"format_result":         f.FormatResult,
		"int_var":               f.IntVar,
		"args":                  FormatArgs,
		"int_args":              f.FormatIntArgs,
		"identifier":            Identifier,
		"int_identifier":        IntIdentifier,
		"preprocess":            f.Preprocess,
		"proc_pointer":          ProcPointer,
		"proc_interface":        ProcInterface,
		"proc_impl":             ProcImpl,
		"handle_type":           f.HandleType,

		// tests
		"returning":            IsReturning,
		"requiring_int_var":    f.IsRequiringIntVar,
		"requiring_preprocess": f.IsRequiringPreprocess,
		"optional":             IsOptional,
		"has_aliases": func(aliases map[string][]string, cmd *model.Command) bool {
			return len(aliases[cmd.Name]) > 0
		},
	}
}
