package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GenerationEvent is the audit record for one planner/LLM call.
type GenerationEvent struct {
	ent.Schema
}

func (GenerationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("purpose").
			NotEmpty().
			Comment("roadmap-gen, day-gen, week-regen, or unknown"),
		field.String("provider").
			Default(""),
		field.String("model").
			Default(""),
		field.Int64("latency_ms").
			Default(0),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Bool("success"),
		field.String("error_message").
			Default(""),
		field.Text("request_body").
			Default(""),
		field.Text("response_body").
			Default(""),
	}
}

func (GenerationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("purpose"),
	}
}
