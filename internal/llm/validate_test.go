package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

// daySchema mirrors the shape of a planned day, the smallest real schema
// the planner sends.
func daySchema() *Schema {
	return &Schema{
		Name:        "planned-day",
		Description: "One day of a study week",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title":             map[string]any{"type": "string"},
				"day_of_week":       map[string]any{"type": "integer", "minimum": 0, "maximum": 6},
				"foundation_weight": map[string]any{"type": "number"},
				"strategy":          map[string]any{"type": "string", "enum": []any{"foundation-first", "balanced"}},
			},
			"required": []any{"title", "day_of_week"},
		},
	}
}

func TestValidateJSONAccepts(t *testing.T) {
	raw := json.RawMessage(`{"title":"Listening drills","day_of_week":2,"strategy":"balanced"}`)
	if err := validateJSON(daySchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateJSONOptionalFieldsOmitted(t *testing.T) {
	raw := json.RawMessage(`{"title":"Mock exam","day_of_week":6}`)
	if err := validateJSON(daySchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateJSONMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title":"Listening drills"}`)
	err := validateJSON(daySchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateJSONWrongType(t *testing.T) {
	raw := json.RawMessage(`{"title":"Listening drills","day_of_week":"tuesday"}`)
	err := validateJSON(daySchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateJSONInvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"title":"Mock exam","day_of_week":6,"strategy":"cramming"}`)
	err := validateJSON(daySchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateJSONMalformed(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateJSON(daySchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateJSONEmptyPayload(t *testing.T) {
	if err := validateJSON(daySchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestValidateJSONNilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateJSON(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateJSONNestedDocument(t *testing.T) {
	schema := &Schema{
		Name:        "week-remainder",
		Description: "Replacement days for the rest of a week",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"week": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
					},
					"required": []any{"title"},
				},
				"day_numbers": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"week", "day_numbers"},
		},
	}

	valid := json.RawMessage(`{"week":{"title":"Catch-up"},"day_numbers":[4,5]}`)
	if err := validateJSON(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"week":{"title":"Catch-up"},"day_numbers":["four","five"]}`)
	if err := validateJSON(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
