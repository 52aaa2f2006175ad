package gen

import (
	"fmt"
	"strings"

	"github.com/benn-herrera/gladfortran/model"
)

// Free-form Fortran caps lines at 132 characters, so argument lists put one
// argument per continuation line.
const (
	argIndent   = "                "
	closeIndent = "            "
	bodyIndent  = "        "
)

// forceCString lists entry points whose non-const char pointer parameters
// still carry input strings and must be null-terminated.
var forceCString = map[string]bool{
	"glGetPerfQueryIdByNameINTEL": true,
}

// Identifier returns the Fortran dummy argument name of a parameter.
func Identifier(name string) string {
	return name
}

// IntIdentifier returns the name of the auxiliary native buffer for a parameter.
func IntIdentifier(name string) string {
	return "c" + Identifier(name)
}

// ProcInterface returns the abstract interface name of a command.
func ProcInterface(name string) string {
	return "c_" + name + "Proc"
}

// ProcImpl returns the public wrapper name of a command.
func ProcImpl(name string) string {
	return name
}

// ProcPointer returns the procedure pointer name a command is loaded into.
func ProcPointer(name string) string {
	return "glad_" + name
}

// IsReturning reports whether a command produces a result.
func IsReturning(cmd *model.Command) bool {
	return !(cmd.Return.Pointer == 0 && cmd.Return.IsVoid())
}

// ProcType returns "function" or "subroutine".
func ProcType(cmd *model.Command) string {
	if IsReturning(cmd) {
		return "function"
	}
	return "subroutine"
}

// IsOptional reports whether a parameter may be omitted by the caller.
func IsOptional(p model.Param) bool {
	return p.Type.Pointer > 0
}

// IsRequiringIntVar reports whether a parameter needs an auxiliary buffer pair.
func (f *Formatter) IsRequiringIntVar(p model.Param) bool {
	return f.IsStringArray(p.Type)
}

// IsRequiringPreprocess reports whether a parameter must be converted before the native call.
func (f *Formatter) IsRequiringPreprocess(p model.Param) bool {
	return f.IsStringArray(p.Type)
}

// ForwardArg renders the actual argument passed to the native entry point.
func (f *Formatter) ForwardArg(cmd *model.Command, p model.Param) string {
	switch {
	case f.IsString(p.Type):
		if p.Type.Const || forceCString[cmd.Name] {
			return fmt.Sprintf("f_c_str(%s)", Identifier(p.Name))
		}
		return Identifier(p.Name)
	case f.IsRequiringIntVar(p):
		return IntIdentifier(p.Name)
	default:
		return Identifier(p.Name)
	}
}

// Preprocess renders the statement that materializes the native pointer array
// for a string-array parameter.
func (f *Formatter) Preprocess(p model.Param) (string, error) {
	if !f.IsRequiringPreprocess(p) {
		return "", unsupported(p.Type)
	}
	name := Identifier(p.Name)
	cname := IntIdentifier(p.Name)
	return fmt.Sprintf("call f_c_strarray(%s, %sstr, %s)", name, cname, cname), nil
}

func continuationList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "&\n" + argIndent + strings.Join(items, ",&\n"+argIndent) + "&\n" + closeIndent
}

// FormatArgs renders the dummy argument list of a command.
func FormatArgs(cmd *model.Command) string {
	names := make([]string, len(cmd.Params))
	for i, p := range cmd.Params {
		names[i] = Identifier(p.Name)
	}
	return continuationList(names)
}

// FormatIntArgs renders the actual argument list forwarded to the native call.
func (f *Formatter) FormatIntArgs(cmd *model.Command) string {
	args := make([]string, len(cmd.Params))
	for i, p := range cmd.Params {
		args[i] = f.ForwardArg(cmd, p)
	}
	return continuationList(args)
}

// FormatResult renders the statement that calls the native entry point and
// stores its result in res.
func (f *Formatter) FormatResult(cmd *model.Command) string {
	call := ProcPointer(cmd.Name) + "(" + f.FormatIntArgs(cmd) + ")"
	switch {
	case stringReturning[cmd.Name]:
		return "call glad_c_f_strpointer(" + call + ", res)"
	case f.IsFunctionPointer(cmd.Return):
		return "call c_f_procpointer(" + call + ", res)"
	default:
		return "res = " + call
	}
}
