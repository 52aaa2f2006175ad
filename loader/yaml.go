package loader

import (
	"fmt"
	"os"

	"github.com/benn-herrera/gladfortran/model"
	"gopkg.in/yaml.v3"
)

// LoadDefinition reads and parses a feature-set dump file.
// It validates the YAML against the JSON Schema before unmarshalling.
func LoadDefinition(path string) (*model.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading feature set: %w", err)
	}

	if err := ValidateSchema(data); err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	return LoadDefinitionNoValidate(data)
}

// LoadDefinitionNoValidate parses a dump without schema validation.
// Used when schema validation has already been performed.
func LoadDefinitionNoValidate(data []byte) (*model.Definition, error) {
	var def model.Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing feature set: %w", err)
	}
	return &def, nil
}
