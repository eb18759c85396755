// Code generated by ent, DO NOT EDIT.

package learner

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learner type in the database.
	Label = "learner"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTargetScore holds the string denoting the target_score field in the database.
	FieldTargetScore = "target_score"
	// FieldDailyMinutes holds the string denoting the daily_minutes field in the database.
	FieldDailyMinutes = "daily_minutes"
	// FieldStudyDays holds the string denoting the study_days field in the database.
	FieldStudyDays = "study_days"
	// FieldCompetency holds the string denoting the competency field in the database.
	FieldCompetency = "competency"
	// FieldWeaknesses holds the string denoting the weaknesses field in the database.
	FieldWeaknesses = "weaknesses"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learner in the database.
	Table = "learners"
)

// Columns holds all SQL columns for learner fields.
var Columns = []string{
	FieldID,
	FieldLearnerID,
	FieldName,
	FieldTargetScore,
	FieldDailyMinutes,
	FieldStudyDays,
	FieldCompetency,
	FieldWeaknesses,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// DefaultName holds the default value on creation for the "name" field.
	DefaultName string
	// DefaultTargetScore holds the default value on creation for the "target_score" field.
	DefaultTargetScore float64
	// DefaultDailyMinutes holds the default value on creation for the "daily_minutes" field.
	DefaultDailyMinutes int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Learner queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTargetScore orders the results by the target_score field.
func ByTargetScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetScore, opts...).ToFunc()
}

// ByDailyMinutes orders the results by the daily_minutes field.
func ByDailyMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyMinutes, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
