package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Roadmap is the aggregate root for one learning goal: the full week/day
// schedule is embedded as JSON and written back whole, guarded by the
// version column.
type Roadmap struct {
	ent.Schema
}

// WeekDoc is the serialized form of one planned week.
type WeekDoc struct {
	WeekNumber        int      `json:"week_number"`
	Title             string   `json:"title"`
	Summary           string   `json:"summary"`
	TargetSkills      []string `json:"target_skills"`
	TargetDomains     []string `json:"target_domains"`
	Days              []DayDoc `json:"days"`
	TotalSessions     int      `json:"total_sessions"`
	SessionsCompleted int      `json:"sessions_completed"`
	Status            string   `json:"status"`
}

// DayDoc is the serialized form of one planned day.
type DayDoc struct {
	DayNumber        int      `json:"day_number"`
	DayOfWeek        int      `json:"day_of_week"`
	Title            string   `json:"title"`
	TargetSkills     []string `json:"target_skills"`
	TargetDomains    []string `json:"target_domains"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	FoundationWeight float64  `json:"foundation_weight"`
	IsCritical       bool     `json:"is_critical"`
	Status           string   `json:"status"`
}

func (Roadmap) Fields() []ent.Field {
	return []ent.Field{
		field.String("roadmap_id").
			Unique().
			NotEmpty().
			Comment("Stable UUID for the roadmap"),
		field.String("learner_id").
			NotEmpty(),
		field.String("goal").
			Default(""),
		field.String("status").
			Default("draft").
			Comment("draft, active, or completed"),
		field.Time("start_date"),
		field.Int("total_weeks"),
		field.Int("study_days_per_week"),
		field.Int("daily_minutes"),
		field.String("learning_strategy").
			Default("").
			Comment("Strategy summary from the planner"),
		field.Int("active_week").
			Default(1).
			Comment("Week currently being worked; only ever advances"),
		field.Int("sessions_completed").
			Default(0),
		field.Int("total_sessions").
			Default(0),
		field.Int("overall_progress").
			Default(0).
			Comment("0-100, derived"),
		field.JSON("weeks", []WeekDoc{}).
			Comment("Full embedded week/day schedule"),
		field.Int64("version").
			Default(1).
			Comment("Optimistic concurrency guard for whole-document writes"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Roadmap) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("roadmap_id"),
		index.Fields("learner_id", "status"),
	}
}
