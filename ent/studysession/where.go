// Code generated by ent, DO NOT EDIT.

package studysession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldSessionID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldLearnerID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDate, v))
}

// RoadmapID applies equality check predicate on the "roadmap_id" field. It's identical to RoadmapIDEQ.
func RoadmapID(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldRoadmapID, v))
}

// WeekNumber applies equality check predicate on the "week_number" field. It's identical to WeekNumberEQ.
func WeekNumber(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldWeekNumber, v))
}

// DayNumber applies equality check predicate on the "day_number" field. It's identical to DayNumberEQ.
func DayNumber(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDayNumber, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldTitle, v))
}

// Progress applies equality check predicate on the "progress" field. It's identical to ProgressEQ.
func Progress(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldProgress, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldStatus, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCompletedAt, v))
}

// TotalTimeSpent applies equality check predicate on the "total_time_spent" field. It's identical to TotalTimeSpentEQ.
func TotalTimeSpent(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldTotalTimeSpent, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldSessionID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldLearnerID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldDate, v))
}

// RoadmapIDEQ applies the EQ predicate on the "roadmap_id" field.
func RoadmapIDEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldRoadmapID, v))
}

// RoadmapIDNEQ applies the NEQ predicate on the "roadmap_id" field.
func RoadmapIDNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldRoadmapID, v))
}

// RoadmapIDIn applies the In predicate on the "roadmap_id" field.
func RoadmapIDIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldRoadmapID, vs...))
}

// RoadmapIDNotIn applies the NotIn predicate on the "roadmap_id" field.
func RoadmapIDNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldRoadmapID, vs...))
}

// RoadmapIDGT applies the GT predicate on the "roadmap_id" field.
func RoadmapIDGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldRoadmapID, v))
}

// RoadmapIDGTE applies the GTE predicate on the "roadmap_id" field.
func RoadmapIDGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldRoadmapID, v))
}

// RoadmapIDLT applies the LT predicate on the "roadmap_id" field.
func RoadmapIDLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldRoadmapID, v))
}

// RoadmapIDLTE applies the LTE predicate on the "roadmap_id" field.
func RoadmapIDLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldRoadmapID, v))
}

// RoadmapIDContains applies the Contains predicate on the "roadmap_id" field.
func RoadmapIDContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldRoadmapID, v))
}

// RoadmapIDHasPrefix applies the HasPrefix predicate on the "roadmap_id" field.
func RoadmapIDHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldRoadmapID, v))
}

// RoadmapIDHasSuffix applies the HasSuffix predicate on the "roadmap_id" field.
func RoadmapIDHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldRoadmapID, v))
}

// RoadmapIDEqualFold applies the EqualFold predicate on the "roadmap_id" field.
func RoadmapIDEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldRoadmapID, v))
}

// RoadmapIDContainsFold applies the ContainsFold predicate on the "roadmap_id" field.
func RoadmapIDContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldRoadmapID, v))
}

// WeekNumberEQ applies the EQ predicate on the "week_number" field.
func WeekNumberEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldWeekNumber, v))
}

// WeekNumberNEQ applies the NEQ predicate on the "week_number" field.
func WeekNumberNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldWeekNumber, v))
}

// WeekNumberIn applies the In predicate on the "week_number" field.
func WeekNumberIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldWeekNumber, vs...))
}

// WeekNumberNotIn applies the NotIn predicate on the "week_number" field.
func WeekNumberNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldWeekNumber, vs...))
}

// WeekNumberGT applies the GT predicate on the "week_number" field.
func WeekNumberGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldWeekNumber, v))
}

// WeekNumberGTE applies the GTE predicate on the "week_number" field.
func WeekNumberGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldWeekNumber, v))
}

// WeekNumberLT applies the LT predicate on the "week_number" field.
func WeekNumberLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldWeekNumber, v))
}

// WeekNumberLTE applies the LTE predicate on the "week_number" field.
func WeekNumberLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldWeekNumber, v))
}

// DayNumberEQ applies the EQ predicate on the "day_number" field.
func DayNumberEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldDayNumber, v))
}

// DayNumberNEQ applies the NEQ predicate on the "day_number" field.
func DayNumberNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldDayNumber, v))
}

// DayNumberIn applies the In predicate on the "day_number" field.
func DayNumberIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldDayNumber, vs...))
}

// DayNumberNotIn applies the NotIn predicate on the "day_number" field.
func DayNumberNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldDayNumber, vs...))
}

// DayNumberGT applies the GT predicate on the "day_number" field.
func DayNumberGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldDayNumber, v))
}

// DayNumberGTE applies the GTE predicate on the "day_number" field.
func DayNumberGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldDayNumber, v))
}

// DayNumberLT applies the LT predicate on the "day_number" field.
func DayNumberLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldDayNumber, v))
}

// DayNumberLTE applies the LTE predicate on the "day_number" field.
func DayNumberLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldDayNumber, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldTitle, v))
}

// TargetSkillsIsNil applies the IsNil predicate on the "target_skills" field.
func TargetSkillsIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldTargetSkills))
}

// TargetSkillsNotNil applies the NotNil predicate on the "target_skills" field.
func TargetSkillsNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldTargetSkills))
}

// ProgressEQ applies the EQ predicate on the "progress" field.
func ProgressEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldProgress, v))
}

// ProgressNEQ applies the NEQ predicate on the "progress" field.
func ProgressNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldProgress, v))
}

// ProgressIn applies the In predicate on the "progress" field.
func ProgressIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldProgress, vs...))
}

// ProgressNotIn applies the NotIn predicate on the "progress" field.
func ProgressNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldProgress, vs...))
}

// ProgressGT applies the GT predicate on the "progress" field.
func ProgressGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldProgress, v))
}

// ProgressGTE applies the GTE predicate on the "progress" field.
func ProgressGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldProgress, v))
}

// ProgressLT applies the LT predicate on the "progress" field.
func ProgressLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldProgress, v))
}

// ProgressLTE applies the LTE predicate on the "progress" field.
func ProgressLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldProgress, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.StudySession {
	return predicate.StudySession(sql.FieldContainsFold(FieldStatus, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.StudySession {
	return predicate.StudySession(sql.FieldNotNull(FieldCompletedAt))
}

// TotalTimeSpentEQ applies the EQ predicate on the "total_time_spent" field.
func TotalTimeSpentEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldTotalTimeSpent, v))
}

// TotalTimeSpentNEQ applies the NEQ predicate on the "total_time_spent" field.
func TotalTimeSpentNEQ(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldTotalTimeSpent, v))
}

// TotalTimeSpentIn applies the In predicate on the "total_time_spent" field.
func TotalTimeSpentIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldTotalTimeSpent, vs...))
}

// TotalTimeSpentNotIn applies the NotIn predicate on the "total_time_spent" field.
func TotalTimeSpentNotIn(vs ...int) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldTotalTimeSpent, vs...))
}

// TotalTimeSpentGT applies the GT predicate on the "total_time_spent" field.
func TotalTimeSpentGT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldTotalTimeSpent, v))
}

// TotalTimeSpentGTE applies the GTE predicate on the "total_time_spent" field.
func TotalTimeSpentGTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldTotalTimeSpent, v))
}

// TotalTimeSpentLT applies the LT predicate on the "total_time_spent" field.
func TotalTimeSpentLT(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldTotalTimeSpent, v))
}

// TotalTimeSpentLTE applies the LTE predicate on the "total_time_spent" field.
func TotalTimeSpentLTE(v int) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldTotalTimeSpent, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StudySession {
	return predicate.StudySession(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudySession) predicate.StudySession {
	return predicate.StudySession(sql.NotPredicates(p))
}
