package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/benn-herrera/gladfortran/config"
	"github.com/benn-herrera/gladfortran/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	initName   string
	initOutput string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a starter feature-set dump and " + config.FileName,
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initName, "name", "n", "gl", "Feature set name")
	initCmd.Flags().StringVarP(&initOutput, "output", "o", ".", "Output directory")
	rootCmd.AddCommand(initCmd)
}

// starterDefinition is a small GL 1.0 style feature set that generates cleanly.
func starterDefinition(name string) *model.Definition {
	return &model.Definition{
		Spec: "gl",
		FeatureSet: model.FeatureSet{
			Name:    name,
			API:     "gl",
			Version: "1.0",
			Profile: "compatibility",
			Types: []model.Type{
				{Name: "GLenum", Category: "basetype"},
				{Name: "GLbitfield", Category: "basetype"},
				{Name: "ClearBufferMask", Category: "enum", Members: []string{
					"GL_COLOR_BUFFER_BIT", "GL_DEPTH_BUFFER_BIT",
				}},
			},
			Enums: []model.Enum{
				{Name: "GL_COLOR_BUFFER_BIT", Value: "0x00004000"},
				{Name: "GL_DEPTH_BUFFER_BIT", Value: "0x00000100"},
				{Name: "GL_VERSION", Value: "0x1F02"},
			},
			Commands: []model.Command{
				{
					Name:   "glClear",
					Return: model.ParseType("void"),
					Params: []model.Param{{Name: "mask", Type: model.ParseType("GLbitfield")}},
				},
				{
					Name:   "glClearColor",
					Return: model.ParseType("void"),
					Params: []model.Param{
						{Name: "red", Type: model.ParseType("GLfloat")},
						{Name: "green", Type: model.ParseType("GLfloat")},
						{Name: "blue", Type: model.ParseType("GLfloat")},
						{Name: "alpha", Type: model.ParseType("GLfloat")},
					},
				},
				{
					Name:   "glGetString",
					Return: model.ParseType("const GLubyte *"),
					Params: []model.Param{{Name: "name", Type: model.ParseType("GLenum")}},
				},
			},
		},
	}
}

const starterConfig = `# glad-fortran configuration
generator = "fortran"
output = "./generated"
apple = false
makefile = true

# Extra C types, mapped to ISO_C_BINDING kinds.
[types.integer]
# GLclampi = "c_int"

[compiler]
# path = "/usr/bin/gfortran"
flags = ["-fsyntax-only", "-std=f2008"]
`

func runInit(cmd *cobra.Command, args []string) error {
	if !quiet {
		fmt.Printf("Initializing feature set %s in %s\n", initName, initOutput)
	}

	if err := os.MkdirAll(initOutput, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	defPath := filepath.Join(initOutput, initName+".yaml")
	data, err := yaml.Marshal(starterDefinition(initName))
	if err != nil {
		return fmt.Errorf("encoding starter feature set: %w", err)
	}
	if err := os.WriteFile(defPath, data, 0644); err != nil {
		return fmt.Errorf("writing feature set: %w", err)
	}

	created := []string{defPath}
	configFile := filepath.Join(initOutput, config.FileName)
	if _, err := os.Stat(configFile); err == nil {
		log.Noticef("%s exists, left unchanged", configFile)
	} else {
		if err := os.WriteFile(configFile, []byte(starterConfig), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", config.FileName, err)
		}
		created = append(created, configFile)
	}

	if !quiet {
		fmt.Printf("Created:\n")
		for _, p := range created {
			fmt.Printf("  %s\n", p)
		}
		fmt.Printf("\nNext: glad-fortran generate %s\n", defPath)
	}
	return nil
}
