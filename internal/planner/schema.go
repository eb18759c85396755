package planner

import "github.com/abhisek/prepmap/internal/llm"

// dayPlanSchema is the shared definition for one planned day.
var dayPlanSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"day_of_week": map[string]any{
			"type":        "integer",
			"description": "Weekday index, 0=Sunday through 6=Saturday",
		},
		"title": map[string]any{
			"type":        "string",
			"description": "Short title for the day's focus (3-8 words)",
		},
		"target_skills": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Skill keys this day works on",
		},
		"target_domains": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Broader domains (e.g. listening, grammar)",
		},
		"estimated_minutes": map[string]any{
			"type":        "integer",
			"description": "Expected study time for the day",
		},
		"foundation_weight": map[string]any{
			"type":        "number",
			"description": "Relative importance 0-1, used only for content generation",
		},
		"is_critical": map[string]any{
			"type":        "boolean",
			"description": "True if the week must not advance past this day unfinished",
		},
	},
	"required": []any{
		"day_of_week", "title", "target_skills", "target_domains",
		"estimated_minutes", "foundation_weight", "is_critical",
	},
	"additionalProperties": false,
}

// RoadmapSchema defines the JSON schema for full roadmap generation.
var RoadmapSchema = &llm.Schema{
	Name:        "study-roadmap",
	Description: "A multi-week study roadmap with weekly focuses and daily plans",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"total_weeks": map[string]any{
				"type":        "integer",
				"description": "Number of weeks in the roadmap",
			},
			"learning_strategy": map[string]any{
				"type":        "string",
				"description": "2-4 sentence strategy summary for the whole plan",
			},
			"weeks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"week_number": map[string]any{
							"type":        "integer",
							"description": "1-based week index",
						},
						"title": map[string]any{
							"type":        "string",
							"description": "Short title for the week (3-8 words)",
						},
						"summary": map[string]any{
							"type":        "string",
							"description": "2-3 sentence summary of the week's focus",
						},
						"target_skills": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"target_domains": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"days": map[string]any{
							"type":  "array",
							"items": dayPlanSchema,
						},
					},
					"required": []any{
						"week_number", "title", "summary",
						"target_skills", "target_domains", "days",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"total_weeks", "learning_strategy", "weeks"},
		"additionalProperties": false,
	},
}

// DayActivitiesSchema defines the JSON schema for one day's activities.
var DayActivitiesSchema = &llm.Schema{
	Name:        "day-activities",
	Description: "The concrete activities for one study session",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"activities": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Short activity title",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "What to do, 1-3 sentences",
						},
						"activity_type": map[string]any{
							"type": "string",
							"enum": []any{"review", "drill", "reading", "listening", "writing", "speaking"},
						},
						"estimated_mins": map[string]any{
							"type": "integer",
						},
						"resources": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"title": map[string]any{"type": "string"},
									"url":   map[string]any{"type": "string"},
								},
								"required":             []any{"title", "url"},
								"additionalProperties": false,
							},
						},
						"drills": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"prompt": map[string]any{"type": "string"},
									"skill":  map[string]any{"type": "string"},
								},
								"required":             []any{"prompt", "skill"},
								"additionalProperties": false,
							},
						},
					},
					"required": []any{
						"title", "description", "activity_type",
						"estimated_mins", "resources", "drills",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"activities"},
		"additionalProperties": false,
	},
}

// WeekReplacementSchema defines the JSON schema for week regeneration.
var WeekReplacementSchema = &llm.Schema{
	Name:        "week-replacement",
	Description: "Replacement daily plans for the uncompleted remainder of a week",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"days": map[string]any{
				"type":  "array",
				"items": dayPlanSchema,
			},
		},
		"required":             []any{"days"},
		"additionalProperties": false,
	},
}
