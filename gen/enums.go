package gen

import (
	"fmt"
	"strings"

	"github.com/benn-herrera/gladfortran/model"
)

// cTypeKinds maps C and registry shorthand type names to ISO_C_BINDING kinds.
// Used for the declared type of enumerants whose literal gives no hint.
var cTypeKinds = map[string]string{
	"char":     "c_char",
	"uchar":    "c_char",
	"float":    "c_float",
	"double":   "c_double",
	"int":      "c_int",
	"long":     "c_long",
	"int8_t":   "c_int8_t",
	"uint8_t":  "c_int8_t",
	"int16_t":  "c_int16_t",
	"uint16_t": "c_int16_t",
	"int32_t":  "c_int32_t",
	"uint32_t": "c_int32_t",
	"int64_t":  "c_int64_t",
	"uint64_t": "c_int64_t",
	"size_t":   "c_size_t",
	"u":        "c_int",
	"ull":      "c_int64_t",
}

var (
	intKinds = setOf(
		"c_short", "c_int", "c_long", "c_long_long",
		"c_signed_char", "c_size_t", "c_intptr_t",
		"c_int8_t", "c_int16_t", "c_int32_t", "c_int64_t",
	)
	realKinds = setOf("c_float", "c_double", "c_long_double")
	charKinds = setOf("c_char")
)

// booleanEnums are enumerants declared with the GLboolean kind.
var booleanEnums = setOf("GL_TRUE", "GL_FALSE")

// hexDigits returns the digits of a 0x literal without its integer suffix.
func hexDigits(value string) string {
	return strings.TrimRight(value[2:], "uUlL")
}

// EnumKind infers the ISO_C_BINDING kind of an enumerant from its literal.
func EnumKind(e *model.Enum) (string, error) {
	value := e.Value
	switch {
	case strings.HasPrefix(value, "0x"):
		if len(hexDigits(value)) > 8 {
			return "c_int64_t", nil
		}
		return "c_int", nil
	case booleanEnums[e.Name]:
		return "c_signed_char", nil
	case strings.HasPrefix(value, "-"):
		return "c_int", nil
	case strings.HasSuffix(value, "f") || strings.HasSuffix(value, "F"):
		return "c_float", nil
	case strings.HasPrefix(value, `"`):
		return "c_char", nil
	case strings.HasPrefix(value, "(("):
		return "", fmt.Errorf("%w: cast in value of %s: %s", ErrNotImplemented, e.Name, value)
	case strings.HasPrefix(value, "EGL_CAST"):
		return "", fmt.Errorf("%w: EGL_CAST in value of %s: %s", ErrNotImplemented, e.Name, value)
	case e.Type != "":
		if kind, ok := cTypeKinds[e.Type]; ok {
			return kind, nil
		}
		return "c_int", nil
	default:
		return "c_int", nil
	}
}

// EnumType renders the parameter declaration type of an enumerant.
func EnumType(e *model.Enum) (string, error) {
	kind, err := EnumKind(e)
	if err != nil {
		return "", err
	}

	switch {
	case intKinds[kind]:
		return fmt.Sprintf("integer(kind=%s)", kind), nil
	case realKinds[kind]:
		return fmt.Sprintf("real(kind=%s)", kind), nil
	case charKinds[kind]:
		return fmt.Sprintf("character(len=*,kind=%s)", kind), nil
	default:
		return "integer(kind=c_int)", nil
	}
}

// isRealLiteral reports whether a decimal literal carries a fraction,
// exponent or float suffix.
func isRealLiteral(value string) bool {
	digits := strings.TrimPrefix(value, "-")
	if digits == "" || digits[0] < '0' || digits[0] > '9' {
		return false
	}
	return strings.ContainsAny(digits, ".fFeE")
}

var integerLiteralReplacer = strings.NewReplacer("(", "", ")", "", "U", "", "L", "", "u", "", "l", "")

// EnumValue converts an enumerant literal into a Fortran constant expression.
func EnumValue(e *model.Enum) (string, error) {
	kind, err := EnumKind(e)
	if err != nil {
		return "", err
	}
	value := e.Value

	if strings.Contains(value, "~") {
		return "", fmt.Errorf("%w: bitwise not in value of %s: %s", ErrNotImplemented, e.Name, value)
	}

	if strings.HasPrefix(value, "0x") {
		digits := hexDigits(value)
		if len(digits) > 16 {
			return "", fmt.Errorf("%w: hex value of %s wider than 64 bits: %s", ErrUnsupportedType, e.Name, value)
		}
		width := 8
		if len(digits) > 8 {
			width = 16
		}
		return fmt.Sprintf("int(Z'%s%s', kind=%s)", strings.Repeat("0", width-len(digits)), digits, kind), nil
	}

	switch {
	case realKinds[kind]:
		if strings.HasSuffix(value, "f") || strings.HasSuffix(value, "F") {
			value = value[:len(value)-1]
		}
		return value, nil
	case charKinds[kind]:
		return value, nil
	default:
		if isRealLiteral(value) {
			return "", fmt.Errorf("%w: real literal in integer value of %s: %s", ErrNotImplemented, e.Name, value)
		}
		return integerLiteralReplacer.Replace(value), nil
	}
}
