package gen

import (
	"path"

	"github.com/golang-cz/textcase"
)

// ModuleName returns the Fortran module name for a specification,
// e.g. "gl" → "glad_gl".
func ModuleName(spec string) string {
	return "glad_" + textcase.SnakeCase(spec)
}

// LoaderName returns the name of the loader subroutine for a specification,
// e.g. "gl" → "gladLoadGl".
func LoaderName(spec string) string {
	return "gladLoad" + textcase.PascalCase(spec)
}

// SourcePath returns the output path of the generated module:
// <feature-set-name>/src/<spec-name>.f90.
func SourcePath(featureSet, spec string) string {
	return path.Join(featureSet, "src", spec+".f90")
}
