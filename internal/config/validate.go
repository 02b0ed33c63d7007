package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// configSchema constrains the shape of the loaded configuration. Catching a
// bad config here beats a confusing failure mid-run.
const configSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"data": {
			"type": "object",
			"properties": {
				"dir": {"type": "string", "minLength": 1},
				"e2e_dir": {"type": "string", "minLength": 1}
			},
			"required": ["dir", "e2e_dir"]
		},
		"lint": {
			"type": "object",
			"properties": {
				"allowed_extensions": {
					"type": "array",
					"items": {"type": "string", "pattern": "^\\.[^.]+$"}
				}
			}
		},
		"frontend": {
			"type": "object",
			"properties": {
				"dir": {"type": "string", "minLength": 1},
				"install_attempts": {"type": "integer", "minimum": 1}
			},
			"required": ["dir", "install_attempts"]
		}
	},
	"required": ["data", "lint", "frontend"]
}`

// Validate checks a loaded config against the embedded JSON schema.
func Validate(cfg *Config) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("config.json", strings.NewReader(configSchema)); err != nil {
		return fmt.Errorf("failed to load config schema: %w", err)
	}
	schema, err := compiler.Compile("config.json")
	if err != nil {
		return fmt.Errorf("failed to compile config schema: %w", err)
	}

	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config for validation: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to decode config for validation: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
