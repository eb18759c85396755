// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the studysession type in the database.
	Label = "study_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldRoadmapID holds the string denoting the roadmap_id field in the database.
	FieldRoadmapID = "roadmap_id"
	// FieldWeekNumber holds the string denoting the week_number field in the database.
	FieldWeekNumber = "week_number"
	// FieldDayNumber holds the string denoting the day_number field in the database.
	FieldDayNumber = "day_number"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldTargetSkills holds the string denoting the target_skills field in the database.
	FieldTargetSkills = "target_skills"
	// FieldItems holds the string denoting the items field in the database.
	FieldItems = "items"
	// FieldProgress holds the string denoting the progress field in the database.
	FieldProgress = "progress"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldTotalTimeSpent holds the string denoting the total_time_spent field in the database.
	FieldTotalTimeSpent = "total_time_spent"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the studysession in the database.
	Table = "study_sessions"
)

// Columns holds all SQL columns for studysession fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldLearnerID,
	FieldDate,
	FieldRoadmapID,
	FieldWeekNumber,
	FieldDayNumber,
	FieldTitle,
	FieldTargetSkills,
	FieldItems,
	FieldProgress,
	FieldStatus,
	FieldStartedAt,
	FieldCompletedAt,
	FieldTotalTimeSpent,
	FieldVersion,
	FieldCreatedAt,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// LearnerIDValidator is a validator for the "learner_id" field. It is called by the builders before save.
	LearnerIDValidator func(string) error
	// DefaultRoadmapID holds the default value on creation for the "roadmap_id" field.
	DefaultRoadmapID string
	// DefaultWeekNumber holds the default value on creation for the "week_number" field.
	DefaultWeekNumber int
	// DefaultDayNumber holds the default value on creation for the "day_number" field.
	DefaultDayNumber int
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// DefaultProgress holds the default value on creation for the "progress" field.
	DefaultProgress int
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// DefaultTotalTimeSpent holds the default value on creation for the "total_time_spent" field.
	DefaultTotalTimeSpent int
	// DefaultVersion holds the default value on creation for the "version" field.
	DefaultVersion int64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the StudySession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByRoadmapID orders the results by the roadmap_id field.
func ByRoadmapID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoadmapID, opts...).ToFunc()
}

// ByWeekNumber orders the results by the week_number field.
func ByWeekNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekNumber, opts...).ToFunc()
}

// ByDayNumber orders the results by the day_number field.
func ByDayNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDayNumber, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByProgress orders the results by the progress field.
func ByProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgress, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByTotalTimeSpent orders the results by the total_time_spent field.
func ByTotalTimeSpent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTimeSpent, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
