package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudySession is the materialized unit of work for one calendar day.
// The unique (learner_id, date) index makes creation an atomic
// insert-if-absent: a losing concurrent writer hits the constraint and
// re-reads the winner's row.
type StudySession struct {
	ent.Schema
}

// ItemDoc is the serialized form of one plan item inside a session.
type ItemDoc struct {
	ItemID         string        `json:"item_id"`
	Priority       int           `json:"priority"`
	TargetWeakness string        `json:"target_weakness"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	ActivityType   string        `json:"activity_type"`
	EstimatedMins  int           `json:"estimated_mins"`
	Resources      []ResourceDoc `json:"resources,omitempty"`
	Drills         []DrillDoc    `json:"drills,omitempty"`
	Progress       int           `json:"progress"`
	Status         string        `json:"status"`
	StartedAt      *time.Time    `json:"started_at,omitempty"`
	CompletedAt    *time.Time    `json:"completed_at,omitempty"`
}

// ResourceDoc is a study resource attached to a plan item.
type ResourceDoc struct {
	ResourceID string `json:"resource_id"`
	Title      string `json:"title"`
	URL        string `json:"url,omitempty"`
	Completed  bool   `json:"completed"`
}

// DrillDoc is a practice drill attached to a plan item.
type DrillDoc struct {
	DrillID   string `json:"drill_id"`
	Prompt    string `json:"prompt"`
	Skill     string `json:"skill"`
	Completed bool   `json:"completed"`
}

func (StudySession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty(),
		field.String("learner_id").
			NotEmpty(),
		field.Time("date").
			Comment("Calendar day, truncated to midnight UTC"),
		field.String("roadmap_id").
			Default("").
			Comment("Weak reference to the owning roadmap"),
		field.Int("week_number").
			Default(0),
		field.Int("day_number").
			Default(0),
		field.String("title").
			Default(""),
		field.JSON("target_skills", []string{}).
			Optional(),
		field.JSON("items", []ItemDoc{}),
		field.Int("progress").
			Default(0).
			Comment("0-100, derived from item completion"),
		field.String("status").
			Default("upcoming").
			Comment("upcoming, in-progress, or completed"),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Int("total_time_spent").
			Default(0).
			Comment("Accumulated seconds reported by the learner"),
		field.Int64("version").
			Default(1),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (StudySession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "date").
			Unique(),
		index.Fields("session_id"),
		index.Fields("roadmap_id"),
	}
}
