// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmap/ent/roadmap"
	"github.com/abhisek/prepmap/ent/schema"
)

// Roadmap is the model entity for the Roadmap schema.
type Roadmap struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable UUID for the roadmap
	RoadmapID string `json:"roadmap_id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// Goal holds the value of the "goal" field.
	Goal string `json:"goal,omitempty"`
	// draft, active, or completed
	Status string `json:"status,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate time.Time `json:"start_date,omitempty"`
	// TotalWeeks holds the value of the "total_weeks" field.
	TotalWeeks int `json:"total_weeks,omitempty"`
	// StudyDaysPerWeek holds the value of the "study_days_per_week" field.
	StudyDaysPerWeek int `json:"study_days_per_week,omitempty"`
	// DailyMinutes holds the value of the "daily_minutes" field.
	DailyMinutes int `json:"daily_minutes,omitempty"`
	// Strategy summary from the planner
	LearningStrategy string `json:"learning_strategy,omitempty"`
	// Week currently being worked; only ever advances
	ActiveWeek int `json:"active_week,omitempty"`
	// SessionsCompleted holds the value of the "sessions_completed" field.
	SessionsCompleted int `json:"sessions_completed,omitempty"`
	// TotalSessions holds the value of the "total_sessions" field.
	TotalSessions int `json:"total_sessions,omitempty"`
	// 0-100, derived
	OverallProgress int `json:"overall_progress,omitempty"`
	// Full embedded week/day schedule
	Weeks []schema.WeekDoc `json:"weeks,omitempty"`
	// Optimistic concurrency guard for whole-document writes
	Version int64 `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Roadmap) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case roadmap.FieldWeeks:
			values[i] = new([]byte)
		case roadmap.FieldID, roadmap.FieldTotalWeeks, roadmap.FieldStudyDaysPerWeek, roadmap.FieldDailyMinutes, roadmap.FieldActiveWeek, roadmap.FieldSessionsCompleted, roadmap.FieldTotalSessions, roadmap.FieldOverallProgress, roadmap.FieldVersion:
			values[i] = new(sql.NullInt64)
		case roadmap.FieldRoadmapID, roadmap.FieldLearnerID, roadmap.FieldGoal, roadmap.FieldStatus, roadmap.FieldLearningStrategy:
			values[i] = new(sql.NullString)
		case roadmap.FieldStartDate, roadmap.FieldCreatedAt, roadmap.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Roadmap fields.
func (_m *Roadmap) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case roadmap.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case roadmap.FieldRoadmapID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field roadmap_id", values[i])
			} else if value.Valid {
				_m.RoadmapID = value.String
			}
		case roadmap.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case roadmap.FieldGoal:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal", values[i])
			} else if value.Valid {
				_m.Goal = value.String
			}
		case roadmap.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case roadmap.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.Time
			}
		case roadmap.FieldTotalWeeks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_weeks", values[i])
			} else if value.Valid {
				_m.TotalWeeks = int(value.Int64)
			}
		case roadmap.FieldStudyDaysPerWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field study_days_per_week", values[i])
			} else if value.Valid {
				_m.StudyDaysPerWeek = int(value.Int64)
			}
		case roadmap.FieldDailyMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_minutes", values[i])
			} else if value.Valid {
				_m.DailyMinutes = int(value.Int64)
			}
		case roadmap.FieldLearningStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_strategy", values[i])
			} else if value.Valid {
				_m.LearningStrategy = value.String
			}
		case roadmap.FieldActiveWeek:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field active_week", values[i])
			} else if value.Valid {
				_m.ActiveWeek = int(value.Int64)
			}
		case roadmap.FieldSessionsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sessions_completed", values[i])
			} else if value.Valid {
				_m.SessionsCompleted = int(value.Int64)
			}
		case roadmap.FieldTotalSessions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_sessions", values[i])
			} else if value.Valid {
				_m.TotalSessions = int(value.Int64)
			}
		case roadmap.FieldOverallProgress:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_progress", values[i])
			} else if value.Valid {
				_m.OverallProgress = int(value.Int64)
			}
		case roadmap.FieldWeeks:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weeks", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Weeks); err != nil {
					return fmt.Errorf("unmarshal field weeks: %w", err)
				}
			}
		case roadmap.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case roadmap.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case roadmap.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Roadmap.
// This includes values selected through modifiers, order, etc.
func (_m *Roadmap) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Roadmap.
// Note that you need to call Roadmap.Unwrap() before calling this method if this Roadmap
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Roadmap) Update() *RoadmapUpdateOne {
	return NewRoadmapClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Roadmap entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Roadmap) Unwrap() *Roadmap {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Roadmap is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Roadmap) String() string {
	var builder strings.Builder
	builder.WriteString("Roadmap(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("roadmap_id=")
	builder.WriteString(_m.RoadmapID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("goal=")
	builder.WriteString(_m.Goal)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("total_weeks=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalWeeks))
	builder.WriteString(", ")
	builder.WriteString("study_days_per_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudyDaysPerWeek))
	builder.WriteString(", ")
	builder.WriteString("daily_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyMinutes))
	builder.WriteString(", ")
	builder.WriteString("learning_strategy=")
	builder.WriteString(_m.LearningStrategy)
	builder.WriteString(", ")
	builder.WriteString("active_week=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActiveWeek))
	builder.WriteString(", ")
	builder.WriteString("sessions_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionsCompleted))
	builder.WriteString(", ")
	builder.WriteString("total_sessions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSessions))
	builder.WriteString(", ")
	builder.WriteString("overall_progress=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallProgress))
	builder.WriteString(", ")
	builder.WriteString("weeks=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weeks))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Roadmaps is a parsable slice of Roadmap.
type Roadmaps []*Roadmap
