package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/benn-herrera/gladfortran/config"
	"github.com/benn-herrera/gladfortran/gen"
	"github.com/benn-herrera/gladfortran/loader"
	"github.com/benn-herrera/gladfortran/resolver"
	"github.com/benn-herrera/gladfortran/validate"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	genDryRun bool
	genCheck  bool
	genFC     string
)

var generateCmd = &cobra.Command{
	Use:   "generate [feature-set.yaml]",
	Short: "Generate the Fortran loader module for a feature set",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringSliceP("generator", "g", nil, "Generators to run (default from config, else fortran)")
	f.StringP("output", "o", "./generated", "Output directory")
	f.Bool("apple", false, "Represent GLhandleARB as a pointer (macOS)")
	f.Bool("makefile", false, "Also write a scaffold Makefile")
	f.BoolVar(&genDryRun, "dry-run", false, "Show what would be generated without writing")
	f.BoolVar(&genCheck, "check", false, "Compile generated sources with a Fortran compiler as a syntax check")
	f.StringVar(&genFC, "fc", "", "Path to Fortran compiler used by --check")
	rootCmd.AddCommand(generateCmd)
}

// applyOverrides copies explicitly set flags over the configuration.
// Unset flags leave config values alone.
func applyOverrides(flags *pflag.FlagSet, c *config.Config) error {
	if flags.Changed("output") {
		v, err := flags.GetString("output")
		if err != nil {
			return err
		}
		c.Output = v
	}
	if flags.Changed("apple") {
		v, err := flags.GetBool("apple")
		if err != nil {
			return err
		}
		c.Apple = v
	}
	if flags.Changed("makefile") {
		v, err := flags.GetBool("makefile")
		if err != nil {
			return err
		}
		c.Makefile = v
	}
	return nil
}

// generatorNames decides which generators run: --generator wins, then the
// configured generator; --makefile or makefile = true adds fortran_makefile.
func generatorNames(flags *pflag.FlagSet, c *config.Config) ([]string, error) {
	var names []string
	if flags.Changed("generator") {
		v, err := flags.GetStringSlice("generator")
		if err != nil {
			return nil, err
		}
		names = v
	} else {
		name := c.Generator
		if name == "" {
			name = "fortran"
		}
		names = []string{name}
	}
	if c.Makefile {
		names = appendUnique(names, "fortran_makefile")
	}
	return names, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	defPath := args[0]

	if err := applyOverrides(cmd.Flags(), cfg); err != nil {
		return err
	}
	outputDir := cfg.Output

	if !quiet {
		fmt.Printf("Generating from %s\n", defPath)
	}

	def, err := loader.LoadDefinition(defPath)
	if err != nil {
		return fmt.Errorf("loading feature set: %w", err)
	}

	ctx := gen.NewContext(def, cfg, Version, outputDir)
	ctx.DefPath = defPath
	ctx.Verbose = verbose
	ctx.DryRun = genDryRun

	// Preflight so every unsupported declaration is reported, not just the first.
	result := validate.Validate(def, ctx.Formatter())
	for _, w := range result.Warnings {
		log.Warningf("%s", w.Error())
	}
	if !result.IsValid() {
		return fmt.Errorf("validation failed:\n%s", result.Error())
	}

	names, err := generatorNames(cmd.Flags(), cfg)
	if err != nil {
		return err
	}

	var allFiles []*gen.OutputFile
	for _, name := range names {
		g, ok := gen.Get(name)
		if !ok {
			return fmt.Errorf("unknown generator %q (available: %s)", name, strings.Join(gen.All(), ", "))
		}

		if verbose {
			fmt.Printf("  Running generator: %s\n", g.Name())
		}

		files, err := g.Generate(ctx)
		if err != nil {
			return fmt.Errorf("generator %s failed: %w", name, err)
		}
		allFiles = append(allFiles, files...)
	}

	written, skipped, sources, err := writeFiles(allFiles, outputDir)
	if err != nil {
		return err
	}

	var checked int
	if genCheck {
		checked, err = checkSources(sources)
		if err != nil {
			return err
		}
	}

	if !quiet {
		skippedMsg := ""
		if skipped > 0 {
			skippedMsg = fmt.Sprintf(", %d scaffold file(s) preserved", skipped)
		}
		if checked > 0 {
			fmt.Printf("Generated %d files in %s (syntax checked %d source(s)%s)\n", written, outputDir, checked, skippedMsg)
		} else {
			fmt.Printf("Generated %d files in %s%s\n", written, outputDir, skippedMsg)
		}
	}
	return nil
}

// writeFiles writes generated output below outputDir. Scaffold files are
// only written when absent. It returns the counts and the paths of the
// Fortran sources produced.
func writeFiles(files []*gen.OutputFile, outputDir string) (written, skipped int, sources []string, err error) {
	for _, f := range files {
		base := outputDir
		if f.ProjectFile {
			base = filepath.Dir(outputDir)
		}
		outPath := filepath.Join(base, f.Path)

		if f.Scaffold {
			if _, statErr := os.Stat(outPath); statErr == nil {
				skipped++
				if verbose {
					fmt.Printf("  Scaffold exists, skipped: %s\n", outPath)
				}
				continue
			}
		}

		if strings.HasSuffix(outPath, ".f90") {
			sources = append(sources, outPath)
		}

		if genDryRun {
			fmt.Printf("  Would write: %s\n", outPath)
			continue
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return written, skipped, sources, fmt.Errorf("creating directory for %s: %w", outPath, err)
		}
		if err := os.WriteFile(outPath, f.Content, 0644); err != nil {
			return written, skipped, sources, fmt.Errorf("writing %s: %w", outPath, err)
		}

		written++
		log.Debugf("wrote %s (%d bytes)", outPath, len(f.Content))
		if verbose {
			fmt.Printf("  Wrote: %s\n", outPath)
		}
	}
	return written, skipped, sources, nil
}

func checkSources(sources []string) (int, error) {
	fcPath := genFC
	if fcPath == "" {
		fcPath = cfg.Compiler.Path
	}
	compiler, err := resolver.ResolveCompiler(fcPath)
	if err != nil {
		return 0, fmt.Errorf("--check needs a Fortran compiler: %w", err)
	}

	n, err := gen.RunSyntaxCheck(&gen.CheckConfig{
		CompilerPath: compiler,
		Flags:        cfg.CompilerFlags(),
		Files:        sources,
		DryRun:       genDryRun,
		Verbose:      verbose,
		Quiet:        quiet,
	})
	if err != nil {
		return n, fmt.Errorf("syntax check: %w", err)
	}
	return n, nil
}

func appendUnique(slice []string, s string) []string {
	for _, existing := range slice {
		if existing == s {
			return slice
		}
	}
	return append(slice, s)
}
