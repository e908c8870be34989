package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/propscan/propscan/constants"
)

// rulesFile is the on-disk shape of a rule-set override.
type rulesFile struct {
	Patterns map[string][]string `json:"patterns"`
	Keywords map[string][]string `json:"keywords"`
}

// buildRulesJSONSchema returns the JSON-Schema for rule-set override files as
// a generic map. Field names are constrained to the five record fields.
func buildRulesJSONSchema() map[string]any {
	perField := func() map[string]any {
		props := map[string]any{}
		for _, f := range constants.FieldNames {
			props[f] = map[string]any{
				"type":     "array",
				"minItems": 1,
				"items":    map[string]any{"type": "string", "minLength": 1},
			}
		}
		return map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties":           props,
		}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"patterns": perField(),
			"keywords": perField(),
		},
	}
}

func validateRulesJSON(data []byte) error {
	b, err := json.Marshal(buildRulesJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("rules.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("rules.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal rules: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("rules file does not match schema: %w", err)
	}
	return nil
}

// LoadRuleSet reads a JSON rules file and merges it over the built-in rules:
// a field listed in the file replaces that field's default patterns or
// keywords, unlisted fields keep the defaults.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	if err := validateRulesJSON(data); err != nil {
		return nil, err
	}
	var rf rulesFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("decode rules file: %w", err)
	}

	patterns := make(map[string][]string, len(defaultPatterns))
	for f, srcs := range defaultPatterns {
		patterns[f] = srcs
	}
	for f, srcs := range rf.Patterns {
		patterns[f] = srcs
	}
	keywords := make(map[string][]string, len(defaultKeywords))
	for f, kws := range defaultKeywords {
		keywords[f] = kws
	}
	for f, kws := range rf.Keywords {
		keywords[f] = kws
	}
	return NewRuleSet(patterns, keywords)
}
