package cmd

import (
	"fmt"

	"github.com/benn-herrera/gladfortran/gen"
	"github.com/benn-herrera/gladfortran/loader"
	"github.com/benn-herrera/gladfortran/validate"
	"github.com/spf13/cobra"
)

var valApple bool

var validateCmd = &cobra.Command{
	Use:   "validate [feature-set.yaml]",
	Short: "Check that every declaration of a feature set can be mapped, without generating",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&valApple, "apple", false, "Validate with the macOS handle representation")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	defPath := args[0]

	if !quiet {
		fmt.Printf("Validating %s\n", defPath)
	}

	def, err := loader.LoadDefinition(defPath)
	if err != nil {
		return fmt.Errorf("loading feature set: %w", err)
	}

	fs := &def.FeatureSet
	if verbose {
		fmt.Printf("  Spec: %s\n", def.Spec)
		fmt.Printf("  Feature set: %s (%s %s %s)\n", fs.Name, fs.API, fs.Version, fs.Profile)
		fmt.Printf("  Extensions: %d\n", len(fs.Extensions))
		fmt.Printf("  Types: %d\n", len(fs.Types))
		fmt.Printf("  Enums: %d\n", len(fs.Enums))
		fmt.Printf("  Commands: %d\n", len(fs.Commands))
	}

	apple := cfg.Apple
	if cmd.Flags().Changed("apple") {
		apple = valApple
	}
	tt := gen.DefaultTypeTable()
	tt.Merge(cfg.Types)

	result := validate.Validate(def, gen.NewFormatter(tt, apple))
	if !quiet {
		for _, w := range result.Warnings {
			fmt.Printf("  warning: %s\n", w.Error())
		}
	}
	if !result.IsValid() {
		return fmt.Errorf("semantic validation failed:\n%s", result.Error())
	}

	if !quiet {
		fmt.Println("Validation passed.")
	}
	return nil
}
