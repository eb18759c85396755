package llm

import (
	"testing"
)

func TestGeminiModelNames(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // exact IDs pass through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchemaTranslation(t *testing.T) {
	// A cut-down version of the week-replacement schema, which covers
	// every construct the translation has to handle.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"days": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"day_of_week":   map[string]any{"type": "integer"},
						"title":         map[string]any{"type": "string"},
						"is_critical":   map[string]any{"type": "boolean"},
						"target_skills": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					},
					"required": []any{"day_of_week", "title"},
				},
			},
			"strategy": map[string]any{"type": "string", "enum": []any{"foundation-first", "balanced", "intensive"}},
		},
		"required": []any{"days"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("root type = %s, want OBJECT", schema.Type)
	}
	days := schema.Properties["days"]
	if days == nil || days.Type != "ARRAY" {
		t.Fatalf("days = %+v, want ARRAY", days)
	}
	day := days.Items
	if day.Type != "OBJECT" || len(day.Properties) != 4 {
		t.Fatalf("day item = %+v", day)
	}
	if day.Properties["day_of_week"].Type != "INTEGER" {
		t.Errorf("day_of_week type = %s", day.Properties["day_of_week"].Type)
	}
	if day.Properties["is_critical"].Type != "BOOLEAN" {
		t.Errorf("is_critical type = %s", day.Properties["is_critical"].Type)
	}
	if day.Properties["target_skills"].Items.Type != "STRING" {
		t.Errorf("target_skills items type = %s", day.Properties["target_skills"].Items.Type)
	}
	if len(day.Required) != 2 {
		t.Errorf("day required = %v", day.Required)
	}
	if len(schema.Properties["strategy"].Enum) != 3 {
		t.Errorf("strategy enum = %v", schema.Properties["strategy"].Enum)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "days" {
		t.Errorf("root required = %v", schema.Required)
	}
}
