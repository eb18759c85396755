package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Learner holds the learner profile: study preferences and the diagnosed
// competency snapshot consumed at roadmap-generation time.
type Learner struct {
	ent.Schema
}

// WeaknessDoc is the serialized form of one diagnosed weakness.
type WeaknessDoc struct {
	SkillKey  string  `json:"skill_key"`
	SkillName string  `json:"skill_name"`
	Severity  string  `json:"severity"`
	Category  string  `json:"category"`
	Accuracy  float64 `json:"accuracy"`
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			Unique().
			NotEmpty().
			Comment("Stable UUID for the learner"),
		field.String("name").
			Default("").
			Comment("Display name"),
		field.Float("target_score").
			Default(0).
			Comment("Goal score the plan works toward"),
		field.Int("daily_minutes").
			Default(30).
			Comment("Minutes available per study day"),
		field.JSON("study_days", []int{}).
			Optional().
			Comment("Weekday indices (0=Sunday) the learner actually studies"),
		field.JSON("competency", map[string]float64{}).
			Optional().
			Comment("Per-skill competency snapshot, 0-1"),
		field.JSON("weaknesses", []WeaknessDoc{}).
			Optional().
			Comment("Diagnosed weaknesses from the last assessment"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Learner) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
	}
}
