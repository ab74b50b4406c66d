package intake

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/mkiplagat/bursary-intake/constants"
)

// submissionSchema validates the shape of a raw intake payload before any
// field-level parsing happens. Cross-field invariants (amount vs fee,
// siblings bounds) are enforced separately after decoding.
var submissionSchema = map[string]any{
	"type":     "object",
	"required": []any{"profile", "application"},
	"properties": map[string]any{
		"profile": map[string]any{
			"type":     "object",
			"required": []any{"full_name", "id_number", "county"},
			"properties": map[string]any{
				"full_name":     map[string]any{"type": "string", "minLength": 1},
				"id_number":     map[string]any{"type": "string", "pattern": `^\d{7,9}$`},
				"phone_number":  map[string]any{"type": "string"},
				"email":         map[string]any{"type": "string"},
				"date_of_birth": map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
				"county":        map[string]any{"type": "string", "minLength": 1},
				"sub_county":    map[string]any{"type": "string"},
				"ward":          map[string]any{"type": "string"},
				"village":       map[string]any{"type": "string"},
			},
		},
		"application": map[string]any{
			"type":     "object",
			"required": []any{"student_name", "institution_name", "annual_family_income", "tuition_fee", "amount_requested"},
			"properties": map[string]any{
				"student_name":               map[string]any{"type": "string", "minLength": 1},
				"institution_name":           map[string]any{"type": "string", "minLength": 1},
				"education_level":            map[string]any{"type": "string"},
				"annual_family_income":       map[string]any{"type": "number", "minimum": 0},
				"tuition_fee":                map[string]any{"type": "number", "minimum": 0},
				"amount_requested":           map[string]any{"type": "number", "minimum": 0},
				"number_of_siblings":         map[string]any{"type": "integer", "minimum": 0},
				"siblings_in_school":         map[string]any{"type": "integer", "minimum": 0},
				"is_orphan":                  map[string]any{"type": "boolean"},
				"has_disability":             map[string]any{"type": "boolean"},
				"is_single_parent":           map[string]any{"type": "boolean"},
				"previous_bursary_recipient": map[string]any{"type": "boolean"},
				"reason_for_application":     map[string]any{"type": "string"},
			},
		},
		"documents": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"document_type", "source_path"},
				"properties": map[string]any{
					"document_type": map[string]any{"type": "string", "enum": toAnySlice(constants.DocumentTypes)},
					"source_path":   map[string]any{"type": "string", "minLength": 1},
					"description":   map[string]any{"type": "string"},
				},
			},
		},
	},
}

func toAnySlice(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// ValidatePayload validates a raw submission against the intake schema.
func ValidatePayload(data []byte) error {
	b, err := json.Marshal(submissionSchema)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("submission.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("submission.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match schema: %w", err)
	}
	return nil
}
