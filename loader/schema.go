package loader

import (
	"encoding/json"
	"fmt"

	"github.com/janpfeifer/must"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// schemaJSON is the JSON Schema for feature-set dump files.
var schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://gladfortran.dev/schemas/feature-set/v1",
  "title": "glad-fortran feature set dump",
  "description": "A feature set resolved from an API specification, ready for code generation.",
  "type": "object",
  "required": ["spec", "feature_set"],
  "additionalProperties": false,
  "properties": {
    "spec": { "type": "string", "pattern": "^[a-z][a-z0-9_]*$" },
    "feature_set": { "$ref": "#/$defs/feature_set" }
  },
  "$defs": {
    "identifier": { "type": "string", "pattern": "^[A-Za-z_][A-Za-z0-9_]*$" },
    "c_type": { "type": "string", "pattern": "^[A-Za-z_][A-Za-z0-9_ *\\[\\]]*$" },
    "feature_set": {
      "type": "object",
      "required": ["name", "api"],
      "additionalProperties": false,
      "properties": {
        "name": { "type": "string", "pattern": "^[A-Za-z0-9_.-]+$" },
        "api": { "type": "string", "pattern": "^[a-z][a-z0-9]*$" },
        "version": { "type": "string", "pattern": "^\\d+\\.\\d+$" },
        "profile": { "type": "string", "enum": ["core", "compatibility", "common", "common-lite"] },
        "extensions": {
          "type": "array",
          "items": { "$ref": "#/$defs/identifier" },
          "uniqueItems": true
        },
        "types": {
          "type": "array",
          "items": { "$ref": "#/$defs/type_definition" }
        },
        "enums": {
          "type": "array",
          "items": { "$ref": "#/$defs/enum_definition" }
        },
        "commands": {
          "type": "array",
          "items": { "$ref": "#/$defs/command_definition" }
        }
      }
    },
    "type_definition": {
      "type": "object",
      "required": ["name"],
      "additionalProperties": false,
      "properties": {
        "name": { "$ref": "#/$defs/identifier" },
        "category": { "type": "string", "enum": ["basetype", "enum", "bitmask", "funcpointer", "handle", "define"] },
        "alias": { "$ref": "#/$defs/identifier" },
        "members": {
          "type": "array",
          "items": { "$ref": "#/$defs/identifier" }
        }
      }
    },
    "enum_definition": {
      "type": "object",
      "required": ["name", "value"],
      "additionalProperties": false,
      "properties": {
        "name": { "$ref": "#/$defs/identifier" },
        "value": { "type": "string", "minLength": 1 },
        "type": { "type": "string" },
        "alias": { "$ref": "#/$defs/identifier" }
      }
    },
    "command_definition": {
      "type": "object",
      "required": ["name", "returns"],
      "additionalProperties": false,
      "properties": {
        "name": { "$ref": "#/$defs/identifier" },
        "returns": { "$ref": "#/$defs/c_type" },
        "alias": { "$ref": "#/$defs/identifier" },
        "params": {
          "type": "array",
          "items": { "$ref": "#/$defs/param_definition" }
        }
      }
    },
    "param_definition": {
      "type": "object",
      "required": ["name", "type"],
      "additionalProperties": false,
      "properties": {
        "name": { "$ref": "#/$defs/identifier" },
        "type": { "$ref": "#/$defs/c_type" }
      }
    }
  }
}`

var compiledSchema *jsonschema.Schema

func init() {
	var schemaDoc interface{}
	must.M(json.Unmarshal([]byte(schemaJSON), &schemaDoc))

	c := jsonschema.NewCompiler()
	must.M(c.AddResource("schema.json", schemaDoc))
	compiledSchema = must.M1(c.Compile("schema.json"))
}

// SchemaJSON returns the feature-set dump JSON Schema text.
func SchemaJSON() string {
	return schemaJSON
}

// ValidateSchema validates raw YAML bytes against the feature-set dump JSON Schema.
func ValidateSchema(yamlData []byte) error {
	var raw interface{}
	if err := yaml.Unmarshal(yamlData, &raw); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	converted := convertYAMLToJSON(raw)

	if err := compiledSchema.Validate(converted); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// convertYAMLToJSON converts YAML-parsed values to JSON-compatible types.
// Enum values such as 1 or 0x8B30 may be written unquoted, so scalars under
// "value" keys are normalized to strings before validation.
func convertYAMLToJSON(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for k, val := range v {
			if k == "value" || k == "version" {
				if s, ok := scalarString(val); ok {
					result[k] = s
					continue
				}
			}
			result[k] = convertYAMLToJSON(val)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, val := range v {
			result[i] = convertYAMLToJSON(val)
		}
		return result
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return v
	}
}

func scalarString(v interface{}) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case int, int64, uint64, float64, bool:
		return fmt.Sprint(v), true
	default:
		return "", false
	}
}

// ValidateSchemaJSON validates a JSON document against the schema (for testing).
func ValidateSchemaJSON(jsonData []byte) error {
	var raw interface{}
	if err := json.Unmarshal(jsonData, &raw); err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}
	if err := compiledSchema.Validate(raw); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
