// Code generated by ent, DO NOT EDIT.

package roadmap

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the roadmap type in the database.
	Label = "roadmap"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRoadmapID holds the string denoting the roadmap_id field in the database.
	FieldRoadmapID = "roadmap_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldGoal holds the string denoting the goal field in the database.
	FieldGoal = "goal"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldTotalWeeks holds the string denoting the total_weeks field in the database.
	FieldTotalWeeks = "total_weeks"
	// FieldStudyDaysPerWeek holds the string denoting the study_days_per_week field in the database.
	FieldStudyDaysPerWeek = "study_days_per_week"
	// FieldDailyMinutes holds the string denoting the daily_minutes field in the database.
	FieldDailyMinutes = "daily_minutes"
	// FieldLearningStrategy holds the string denoting the learning_strategy field in the database.
	FieldLearningStrategy = "learning_strategy"
	// FieldActiveWeek holds the string denoting the active_week field in the database.
	FieldActiveWeek = "active_week"
	// FieldSessionsCompleted holds the string denoting the sessions_completed field in the database.
	FieldSessionsCompleted = "sessions_completed"
	// FieldTotalSessions holds the string denoting the total_sessions field in the database.
	FieldTotalSessions = "total_sessions"
	// FieldOverallProgress holds the string denoting the overall_progress field in the database.
	FieldOverallProgress = "overall_progress"
	// FieldWeeks holds the string denoting the weeks field in the database.
	FieldWeeks = "weeks"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the roadmap in the database.
	Table = "roadmaps"
)

// Columns holds all SQL columns for roadmap fields.
var Columns = []string{
	FieldID,
	FieldRoadmapID,
	FieldLearnerID,
	FieldGoal,
	FieldStatus,
	FieldStartDate,
	FieldTotalWeeks,
	FieldStudyDaysPerWeek,
	FieldDailyMinutes,
	FieldLearningStrategy,
	FieldActiveWeek,
	FieldSessionsCompleted,
	FieldTotalSessions,
	FieldOverallProgress,
	FieldWeeks,
	FieldVersion,
	FieldCreatedAt,
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
	// RoadmapIDValidator is a validator for the "roadmap_id" field. It is called by the builders before save.
	RoadmapIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// DefaultGoal holds the default value on creation for the "goal" field.
	DefaultGoal string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultLearningStrategy holds the default value on creation for the "learning_strategy" field.
	DefaultLearningStrategy string
	// DefaultActiveWeek holds the default value on creation for the "active_week" field.
	DefaultActiveWeek int
	// DefaultSessionsCompleted holds the default value on creation for the "sessions_completed" field.
	DefaultSessionsCompleted int
	// DefaultTotalSessions holds the default value on creation for the "total_sessions" field.
	DefaultTotalSessions int
	// DefaultOverallProgress holds the default value on creation for the "overall_progress" field.
	DefaultOverallProgress int
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Roadmap queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRoadmapID orders the results by the roadmap_id field.
func ByRoadmapID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoadmapID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByGoal orders the results by the goal field.
func ByGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoal, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByTotalWeeks orders the results by the total_weeks field.
func ByTotalWeeks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalWeeks, opts...).ToFunc()
}

// ByStudyDaysPerWeek orders the results by the study_days_per_week field.
func ByStudyDaysPerWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudyDaysPerWeek, opts...).ToFunc()
}

// ByDailyMinutes orders the results by the daily_minutes field.
func ByDailyMinutes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDailyMinutes, opts...).ToFunc()
}

// ByLearningStrategy orders the results by the learning_strategy field.
func ByLearningStrategy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningStrategy, opts...).ToFunc()
}

// ByActiveWeek orders the results by the active_week field.
func ByActiveWeek(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveWeek, opts...).ToFunc()
}

// BySessionsCompleted orders the results by the sessions_completed field.
func BySessionsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionsCompleted, opts...).ToFunc()
}

// ByTotalSessions orders the results by the total_sessions field.
func ByTotalSessions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSessions, opts...).ToFunc()
}

// ByOverallProgress orders the results by the overall_progress field.
func ByOverallProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallProgress, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
