package openai

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// MaxTitleLength caps the suggested title before sanitization. Anything
// longer is a runaway completion, not a filename.
const MaxTitleLength = 120

// buildTitleJSONSchema returns the JSON-Schema (draft 2020-12 subset) for the
// model's response: a single-field object holding the suggested filename.
func buildTitleJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"filename": map[string]any{
				"type":      "string",
				"minLength": 1,
				"maxLength": MaxTitleLength,
			},
		},
		"required": []string{"filename"},
	}
}

// validateJSONAgainstSchema validates "data" against "schemaMap".
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
