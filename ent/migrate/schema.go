// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GenerationEventsColumns holds the columns for the "generation_events" table.
	GenerationEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "purpose", Type: field.TypeString},
		{Name: "provider", Type: field.TypeString, Default: ""},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// GenerationEventsTable holds the schema information for the "generation_events" table.
	GenerationEventsTable = &schema.Table{
		Name:       "generation_events",
		Columns:    GenerationEventsColumns,
		PrimaryKey: []*schema.Column{GenerationEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "generationevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[1]},
			},
			{
				Name:    "generationevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{GenerationEventsColumns[2]},
			},
		},
	}
	// LearnersColumns holds the columns for the "learners" table.
	LearnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "learner_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "target_score", Type: field.TypeFloat64, Default: 0},
		{Name: "daily_minutes", Type: field.TypeInt, Default: 30},
		{Name: "study_days", Type: field.TypeJSON, Nullable: true},
		{Name: "competency", Type: field.TypeJSON, Nullable: true},
		{Name: "weaknesses", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearnersTable holds the schema information for the "learners" table.
	LearnersTable = &schema.Table{
		Name:       "learners",
		Columns:    LearnersColumns,
		PrimaryKey: []*schema.Column{LearnersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learner_learner_id",
				Unique:  false,
				Columns: []*schema.Column{LearnersColumns[1]},
			},
		},
	}
	// RoadmapsColumns holds the columns for the "roadmaps" table.
	RoadmapsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "roadmap_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "goal", Type: field.TypeString, Default: ""},
		{Name: "status", Type: field.TypeString, Default: "draft"},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "total_weeks", Type: field.TypeInt},
		{Name: "study_days_per_week", Type: field.TypeInt},
		{Name: "daily_minutes", Type: field.TypeInt},
		{Name: "learning_strategy", Type: field.TypeString, Default: ""},
		{Name: "active_week", Type: field.TypeInt, Default: 1},
		{Name: "sessions_completed", Type: field.TypeInt, Default: 0},
		{Name: "total_sessions", Type: field.TypeInt, Default: 0},
		{Name: "overall_progress", Type: field.TypeInt, Default: 0},
		{Name: "weeks", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// RoadmapsTable holds the schema information for the "roadmaps" table.
	RoadmapsTable = &schema.Table{
		Name:       "roadmaps",
		Columns:    RoadmapsColumns,
		PrimaryKey: []*schema.Column{RoadmapsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "roadmap_roadmap_id",
				Unique:  false,
				Columns: []*schema.Column{RoadmapsColumns[1]},
			},
			{
				Name:    "roadmap_learner_id_status",
				Unique:  false,
				Columns: []*schema.Column{RoadmapsColumns[2], RoadmapsColumns[4]},
			},
		},
	}
	// StudySessionsColumns holds the columns for the "study_sessions" table.
	StudySessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "learner_id", Type: field.TypeString},
		{Name: "date", Type: field.TypeTime},
		{Name: "roadmap_id", Type: field.TypeString, Default: ""},
		{Name: "week_number", Type: field.TypeInt, Default: 0},
		{Name: "day_number", Type: field.TypeInt, Default: 0},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "target_skills", Type: field.TypeJSON, Nullable: true},
		{Name: "items", Type: field.TypeJSON},
		{Name: "progress", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "upcoming"},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "total_time_spent", Type: field.TypeInt, Default: 0},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
	}
	// StudySessionsTable holds the schema information for the "study_sessions" table.
	StudySessionsTable = &schema.Table{
		Name:       "study_sessions",
		Columns:    StudySessionsColumns,
		PrimaryKey: []*schema.Column{StudySessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studysession_learner_id_date",
				Unique:  true,
				Columns: []*schema.Column{StudySessionsColumns[2], StudySessionsColumns[3]},
			},
			{
				Name:    "studysession_session_id",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[1]},
			},
			{
				Name:    "studysession_roadmap_id",
				Unique:  false,
				Columns: []*schema.Column{StudySessionsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GenerationEventsTable,
		LearnersTable,
		RoadmapsTable,
		StudySessionsTable,
	}
)

func init() {
}
