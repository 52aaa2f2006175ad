package gen

import (
	"errors"
	"testing"

	"github.com/benn-herrera/gladfortran/model"
)

func TestEnumTypeAndValue(t *testing.T) {
	tests := []struct {
		enum      model.Enum
		wantType  string
		wantValue string
	}{
		{model.Enum{Name: "GL_POINT", Value: "0x1B00"},
			"integer(kind=c_int)", "int(Z'00001B00', kind=c_int)"},
		{model.Enum{Name: "GL_CURRENT_BIT", Value: "0x00000001"},
			"integer(kind=c_int)", "int(Z'00000001', kind=c_int)"},
		{model.Enum{Name: "GL_INVALID_INDEX", Value: "0xFFFFFFFFu"},
			"integer(kind=c_int)", "int(Z'FFFFFFFF', kind=c_int)"},
		{model.Enum{Name: "GL_TIMEOUT_IGNORED", Value: "0xFFFFFFFFFFFFFFFFull"},
			"integer(kind=c_int64_t)", "int(Z'FFFFFFFFFFFFFFFF', kind=c_int64_t)"},
		{model.Enum{Name: "GL_ALL_BITS_64", Value: "0xFFFFFFFFFFFFFFFF"},
			"integer(kind=c_int64_t)", "int(Z'FFFFFFFFFFFFFFFF', kind=c_int64_t)"},
		{model.Enum{Name: "GL_WIDE", Value: "0x100000000"},
			"integer(kind=c_int64_t)", "int(Z'0000000100000000', kind=c_int64_t)"},
		{model.Enum{Name: "GL_TRUE", Value: "1"},
			"integer(kind=c_signed_char)", "1"},
		{model.Enum{Name: "GL_FALSE", Value: "0"},
			"integer(kind=c_signed_char)", "0"},
		{model.Enum{Name: "GL_NEGATIVE_ONE_EXT", Value: "-1"},
			"integer(kind=c_int)", "-1"},
		{model.Enum{Name: "GL_ONE", Value: "1.0f"},
			"real(kind=c_float)", "1.0"},
		{model.Enum{Name: "GL_ONE_HALF", Value: "0.5f"},
			"real(kind=c_float)", "0.5"},
		{model.Enum{Name: "GL_PI", Value: "3.14159", Type: "double"},
			"real(kind=c_double)", "3.14159"},
		{model.Enum{Name: "GL_VENDOR_NAME", Value: `"khronos"`},
			"character(len=*,kind=c_char)", `"khronos"`},
		{model.Enum{Name: "GL_LAYOUT_DEFAULT_INTEL", Value: "0", Type: "u"},
			"integer(kind=c_int)", "0"},
		{model.Enum{Name: "GL_BIG", Value: "17", Type: "ull"},
			"integer(kind=c_int64_t)", "17"},
		{model.Enum{Name: "GL_PAREN", Value: "(1U)"},
			"integer(kind=c_int)", "1"},
		{model.Enum{Name: "GL_ODD_TYPE", Value: "4", Type: "mystery_t"},
			"integer(kind=c_int)", "4"},
	}
	for _, tc := range tests {
		gotType, err := EnumType(&tc.enum)
		if err != nil {
			t.Errorf("EnumType(%s) error: %v", tc.enum.Name, err)
		} else if gotType != tc.wantType {
			t.Errorf("EnumType(%s) = %q, want %q", tc.enum.Name, gotType, tc.wantType)
		}

		gotValue, err := EnumValue(&tc.enum)
		if err != nil {
			t.Errorf("EnumValue(%s) error: %v", tc.enum.Name, err)
		} else if gotValue != tc.wantValue {
			t.Errorf("EnumValue(%s) = %q, want %q", tc.enum.Name, gotValue, tc.wantValue)
		}
	}
}

func TestEnumKind_Errors(t *testing.T) {
	tests := []model.Enum{
		{Name: "EGL_NO_CONTEXT", Value: "((EGLContext)0)"},
		{Name: "EGL_DONT_CARE", Value: "EGL_CAST(EGLint,-1)"},
	}
	for _, e := range tests {
		if _, err := EnumKind(&e); !errors.Is(err, ErrNotImplemented) {
			t.Errorf("EnumKind(%s) error = %v, want %v", e.Name, err, ErrNotImplemented)
		}
		if _, err := EnumType(&e); !errors.Is(err, ErrNotImplemented) {
			t.Errorf("EnumType(%s) error = %v, want %v", e.Name, err, ErrNotImplemented)
		}
	}
}

func TestEnumValue_Errors(t *testing.T) {
	tests := []struct {
		enum model.Enum
		want error
	}{
		{model.Enum{Name: "GL_ALL_ONES", Value: "~0"}, ErrNotImplemented},
		{model.Enum{Name: "GL_TOO_WIDE", Value: "0x1FFFFFFFFFFFFFFFF"}, ErrUnsupportedType},
		{model.Enum{Name: "EGL_NO_DISPLAY", Value: "((EGLDisplay)0)"}, ErrNotImplemented},
		{model.Enum{Name: "GL_MINUS_ONE_F", Value: "-1.0f"}, ErrNotImplemented},
		{model.Enum{Name: "GL_MINUS_HALF", Value: "-0.5"}, ErrNotImplemented},
	}
	for _, tc := range tests {
		if _, err := EnumValue(&tc.enum); !errors.Is(err, tc.want) {
			t.Errorf("EnumValue(%s) error = %v, want %v", tc.enum.Name, err, tc.want)
		}
	}
}

func TestEnumKind_NegativeRealIsInteger(t *testing.T) {
	e := model.Enum{Name: "GL_MINUS_ONE_F", Value: "-1.0f"}
	kind, err := EnumKind(&e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != "c_int" {
		t.Errorf("EnumKind(%q) = %q, want %q", e.Value, kind, "c_int")
	}
}
