package resolver

import (
	"fmt"
	"os"
	"os/exec"
)

// CompilerEnv names the environment variable consulted for the Fortran compiler.
const CompilerEnv = "GLAD_FORTRAN_FC"

// defaultCompilers are searched in PATH in order.
var defaultCompilers = []string{"gfortran", "flang-new", "flang", "ifx"}

// ResolveCompiler finds a Fortran compiler using the resolution order:
// 1. Explicit flag or config path (if non-empty)
// 2. GLAD_FORTRAN_FC environment variable
// 3. gfortran, flang-new, flang, ifx in PATH
func ResolveCompiler(flagPath string) (string, error) {
	if flagPath != "" {
		if _, err := os.Stat(flagPath); err != nil {
			return "", fmt.Errorf("Fortran compiler not found at specified path: %s", flagPath)
		}
		return flagPath, nil
	}

	if envPath := os.Getenv(CompilerEnv); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("Fortran compiler not found at %s: %s", CompilerEnv, envPath)
		}
		return envPath, nil
	}

	for _, name := range defaultCompilers {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no Fortran compiler found in PATH; set --fc flag or %s environment variable", CompilerEnv)
}
