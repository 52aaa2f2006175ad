package gen

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// CheckConfig holds configuration for compiling generated sources as a syntax check.
type CheckConfig struct {
	CompilerPath string   // resolved compiler binary path
	Flags        []string // e.g. -fsyntax-only -std=f2008
	Files        []string // generated .f90 sources
	DryRun       bool
	Verbose      bool
	Quiet        bool
}

// CompilerArgs builds the compiler argument list for one source file.
// Module files are written to modDir so the output tree stays clean.
func CompilerArgs(flags []string, modDir, file string) []string {
	args := append([]string{}, flags...)
	if modDir != "" {
		args = append(args, "-J", modDir)
	}
	return append(args, file)
}

// RunSyntaxCheck invokes the compiler once per source file.
// Returns the number of compiler invocations run.
func RunSyntaxCheck(cfg *CheckConfig) (int, error) {
	if len(cfg.Files) == 0 {
		return 0, nil
	}

	modDir := ""
	if !cfg.DryRun {
		dir, err := os.MkdirTemp("", "glad-fortran-mod-")
		if err != nil {
			return 0, fmt.Errorf("creating module directory: %w", err)
		}
		defer os.RemoveAll(dir)
		modDir = dir
	}

	count := 0
	for _, file := range cfg.Files {
		args := CompilerArgs(cfg.Flags, modDir, file)

		if cfg.DryRun {
			fmt.Printf("  Would run: %s %s\n", cfg.CompilerPath, strings.Join(args, " "))
			continue
		}

		if cfg.Verbose {
			fmt.Printf("  Running: %s %s\n", cfg.CompilerPath, strings.Join(args, " "))
		}
		log.Debugf("checking %s with %s", file, cfg.CompilerPath)

		cmd := exec.Command(cfg.CompilerPath, args...)
		output, err := cmd.CombinedOutput()
		if err != nil {
			return count, fmt.Errorf("%s failed on %s: %w\n%s", cfg.CompilerPath, file, err, string(output))
		}

		if !cfg.Quiet && len(output) > 0 {
			fmt.Print(string(output))
		}
		count++
	}

	return count, nil
}
