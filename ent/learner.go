// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmap/ent/learner"
	"github.com/abhisek/prepmap/ent/schema"
)

// Learner is the model entity for the Learner schema.
type Learner struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable UUID for the learner
	LearnerID string `json:"learner_id,omitempty"`
	// Display name
	Name string `json:"name,omitempty"`
	// Goal score the plan works toward
	TargetScore float64 `json:"target_score,omitempty"`
	// Minutes available per study day
	DailyMinutes int `json:"daily_minutes,omitempty"`
	// Weekday indices (0=Sunday) the learner actually studies
	StudyDays []int `json:"study_days,omitempty"`
	// Per-skill competency snapshot, 0-1
	Competency map[string]float64 `json:"competency,omitempty"`
	// Diagnosed weaknesses from the last assessment
	Weaknesses []schema.WeaknessDoc `json:"weaknesses,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Learner) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learner.FieldStudyDays, learner.FieldCompetency, learner.FieldWeaknesses:
			values[i] = new([]byte)
		case learner.FieldTargetScore:
			values[i] = new(sql.NullFloat64)
		case learner.FieldID, learner.FieldDailyMinutes:
			values[i] = new(sql.NullInt64)
		case learner.FieldLearnerID, learner.FieldName:
			values[i] = new(sql.NullString)
		case learner.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Learner fields.
func (_m *Learner) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learner.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learner.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case learner.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case learner.FieldTargetScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field target_score", values[i])
			} else if value.Valid {
				_m.TargetScore = value.Float64
			}
		case learner.FieldDailyMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field daily_minutes", values[i])
			} else if value.Valid {
				_m.DailyMinutes = int(value.Int64)
			}
		case learner.FieldStudyDays:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field study_days", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.StudyDays); err != nil {
					return fmt.Errorf("unmarshal field study_days: %w", err)
				}
			}
		case learner.FieldCompetency:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field competency", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Competency); err != nil {
					return fmt.Errorf("unmarshal field competency: %w", err)
				}
			}
		case learner.FieldWeaknesses:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weaknesses", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Weaknesses); err != nil {
					return fmt.Errorf("unmarshal field weaknesses: %w", err)
				}
			}
		case learner.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Learner.
// This includes values selected through modifiers, order, etc.
func (_m *Learner) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Learner.
// Note that you need to call Learner.Unwrap() before calling this method if this Learner
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Learner) Update() *LearnerUpdateOne {
	return NewLearnerClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Learner entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Learner) Unwrap() *Learner {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Learner is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Learner) String() string {
	var builder strings.Builder
	builder.WriteString("Learner(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("target_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.TargetScore))
	builder.WriteString(", ")
	builder.WriteString("daily_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.DailyMinutes))
	builder.WriteString(", ")
	builder.WriteString("study_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.StudyDays))
	builder.WriteString(", ")
	builder.WriteString("competency=")
	builder.WriteString(fmt.Sprintf("%v", _m.Competency))
	builder.WriteString(", ")
	builder.WriteString("weaknesses=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weaknesses))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Learners is a parsable slice of Learner.
type Learners []*Learner
