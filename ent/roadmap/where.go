// Code generated by ent, DO NOT EDIT.

package roadmap

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldID, id))
}

// RoadmapID applies equality check predicate on the "roadmap_id" field. It's identical to RoadmapIDEQ.
func RoadmapID(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldRoadmapID, v))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldLearnerID, v))
}

// Goal applies equality check predicate on the "goal" field. It's identical to GoalEQ.
func Goal(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldGoal, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldStatus, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldStartDate, v))
}

// TotalWeeks applies equality check predicate on the "total_weeks" field. It's identical to TotalWeeksEQ.
func TotalWeeks(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldTotalWeeks, v))
}

// StudyDaysPerWeek applies equality check predicate on the "study_days_per_week" field. It's identical to StudyDaysPerWeekEQ.
func StudyDaysPerWeek(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldStudyDaysPerWeek, v))
}

// DailyMinutes applies equality check predicate on the "daily_minutes" field. It's identical to DailyMinutesEQ.
func DailyMinutes(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldDailyMinutes, v))
}

// LearningStrategy applies equality check predicate on the "learning_strategy" field. It's identical to LearningStrategyEQ.
func LearningStrategy(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldLearningStrategy, v))
}

// ActiveWeek applies equality check predicate on the "active_week" field. It's identical to ActiveWeekEQ.
func ActiveWeek(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldActiveWeek, v))
}

// SessionsCompleted applies equality check predicate on the "sessions_completed" field. It's identical to SessionsCompletedEQ.
func SessionsCompleted(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldSessionsCompleted, v))
}

// TotalSessions applies equality check predicate on the "total_sessions" field. It's identical to TotalSessionsEQ.
func TotalSessions(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldTotalSessions, v))
}

// OverallProgress applies equality check predicate on the "overall_progress" field. It's identical to OverallProgressEQ.
func OverallProgress(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldOverallProgress, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldUpdatedAt, v))
}

// RoadmapIDEQ applies the EQ predicate on the "roadmap_id" field.
func RoadmapIDEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldRoadmapID, v))
}

// RoadmapIDNEQ applies the NEQ predicate on the "roadmap_id" field.
func RoadmapIDNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldRoadmapID, v))
}

// RoadmapIDIn applies the In predicate on the "roadmap_id" field.
func RoadmapIDIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldRoadmapID, vs...))
}

// RoadmapIDNotIn applies the NotIn predicate on the "roadmap_id" field.
func RoadmapIDNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldRoadmapID, vs...))
}

// RoadmapIDGT applies the GT predicate on the "roadmap_id" field.
func RoadmapIDGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldRoadmapID, v))
}

// RoadmapIDGTE applies the GTE predicate on the "roadmap_id" field.
func RoadmapIDGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldRoadmapID, v))
}

// RoadmapIDLT applies the LT predicate on the "roadmap_id" field.
func RoadmapIDLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldRoadmapID, v))
}

// RoadmapIDLTE applies the LTE predicate on the "roadmap_id" field.
func RoadmapIDLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldRoadmapID, v))
}

// RoadmapIDContains applies the Contains predicate on the "roadmap_id" field.
func RoadmapIDContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldRoadmapID, v))
}

// RoadmapIDHasPrefix applies the HasPrefix predicate on the "roadmap_id" field.
func RoadmapIDHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldRoadmapID, v))
}

// RoadmapIDHasSuffix applies the HasSuffix predicate on the "roadmap_id" field.
func RoadmapIDHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldRoadmapID, v))
}

// RoadmapIDEqualFold applies the EqualFold predicate on the "roadmap_id" field.
func RoadmapIDEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldRoadmapID, v))
}

// RoadmapIDContainsFold applies the ContainsFold predicate on the "roadmap_id" field.
func RoadmapIDContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldRoadmapID, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldLearnerID, v))
}

// GoalEQ applies the EQ predicate on the "goal" field.
func GoalEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldGoal, v))
}

// GoalNEQ applies the NEQ predicate on the "goal" field.
func GoalNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldGoal, v))
}

// GoalIn applies the In predicate on the "goal" field.
func GoalIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldGoal, vs...))
}

// GoalNotIn applies the NotIn predicate on the "goal" field.
func GoalNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldGoal, vs...))
}

// GoalGT applies the GT predicate on the "goal" field.
func GoalGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldGoal, v))
}

// GoalGTE applies the GTE predicate on the "goal" field.
func GoalGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldGoal, v))
}

// GoalLT applies the LT predicate on the "goal" field.
func GoalLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldGoal, v))
}

// GoalLTE applies the LTE predicate on the "goal" field.
func GoalLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldGoal, v))
}

// GoalContains applies the Contains predicate on the "goal" field.
func GoalContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldGoal, v))
}

// GoalHasPrefix applies the HasPrefix predicate on the "goal" field.
func GoalHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldGoal, v))
}

// GoalHasSuffix applies the HasSuffix predicate on the "goal" field.
func GoalHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldGoal, v))
}

// GoalEqualFold applies the EqualFold predicate on the "goal" field.
func GoalEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldGoal, v))
}

// GoalContainsFold applies the ContainsFold predicate on the "goal" field.
func GoalContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldGoal, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldStatus, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldStartDate, v))
}

// TotalWeeksEQ applies the EQ predicate on the "total_weeks" field.
func TotalWeeksEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldTotalWeeks, v))
}

// TotalWeeksNEQ applies the NEQ predicate on the "total_weeks" field.
func TotalWeeksNEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldTotalWeeks, v))
}

// TotalWeeksIn applies the In predicate on the "total_weeks" field.
func TotalWeeksIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldTotalWeeks, vs...))
}

// TotalWeeksNotIn applies the NotIn predicate on the "total_weeks" field.
func TotalWeeksNotIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldTotalWeeks, vs...))
}

// TotalWeeksGT applies the GT predicate on the "total_weeks" field.
func TotalWeeksGT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldTotalWeeks, v))
}

// TotalWeeksGTE applies the GTE predicate on the "total_weeks" field.
func TotalWeeksGTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldTotalWeeks, v))
}

// TotalWeeksLT applies the LT predicate on the "total_weeks" field.
func TotalWeeksLT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldTotalWeeks, v))
}

// TotalWeeksLTE applies the LTE predicate on the "total_weeks" field.
func TotalWeeksLTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldTotalWeeks, v))
}

// StudyDaysPerWeekEQ applies the EQ predicate on the "study_days_per_week" field.
func StudyDaysPerWeekEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldStudyDaysPerWeek, v))
}

// StudyDaysPerWeekNEQ applies the NEQ predicate on the "study_days_per_week" field.
func StudyDaysPerWeekNEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldStudyDaysPerWeek, v))
}

// StudyDaysPerWeekIn applies the In predicate on the "study_days_per_week" field.
func StudyDaysPerWeekIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldStudyDaysPerWeek, vs...))
}

// StudyDaysPerWeekNotIn applies the NotIn predicate on the "study_days_per_week" field.
func StudyDaysPerWeekNotIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldStudyDaysPerWeek, vs...))
}

// StudyDaysPerWeekGT applies the GT predicate on the "study_days_per_week" field.
func StudyDaysPerWeekGT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldStudyDaysPerWeek, v))
}

// StudyDaysPerWeekGTE applies the GTE predicate on the "study_days_per_week" field.
func StudyDaysPerWeekGTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldStudyDaysPerWeek, v))
}

// StudyDaysPerWeekLT applies the LT predicate on the "study_days_per_week" field.
func StudyDaysPerWeekLT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldStudyDaysPerWeek, v))
}

// StudyDaysPerWeekLTE applies the LTE predicate on the "study_days_per_week" field.
func StudyDaysPerWeekLTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldStudyDaysPerWeek, v))
}

// DailyMinutesEQ applies the EQ predicate on the "daily_minutes" field.
func DailyMinutesEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldDailyMinutes, v))
}

// DailyMinutesNEQ applies the NEQ predicate on the "daily_minutes" field.
func DailyMinutesNEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldDailyMinutes, v))
}

// DailyMinutesIn applies the In predicate on the "daily_minutes" field.
func DailyMinutesIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldDailyMinutes, vs...))
}

// DailyMinutesNotIn applies the NotIn predicate on the "daily_minutes" field.
func DailyMinutesNotIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldDailyMinutes, vs...))
}

// DailyMinutesGT applies the GT predicate on the "daily_minutes" field.
func DailyMinutesGT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldDailyMinutes, v))
}

// DailyMinutesGTE applies the GTE predicate on the "daily_minutes" field.
func DailyMinutesGTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldDailyMinutes, v))
}

// DailyMinutesLT applies the LT predicate on the "daily_minutes" field.
func DailyMinutesLT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldDailyMinutes, v))
}

// DailyMinutesLTE applies the LTE predicate on the "daily_minutes" field.
func DailyMinutesLTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldDailyMinutes, v))
}

// LearningStrategyEQ applies the EQ predicate on the "learning_strategy" field.
func LearningStrategyEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldLearningStrategy, v))
}

// LearningStrategyNEQ applies the NEQ predicate on the "learning_strategy" field.
func LearningStrategyNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldLearningStrategy, v))
}

// LearningStrategyIn applies the In predicate on the "learning_strategy" field.
func LearningStrategyIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldLearningStrategy, vs...))
}

// LearningStrategyNotIn applies the NotIn predicate on the "learning_strategy" field.
func LearningStrategyNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldLearningStrategy, vs...))
}

// LearningStrategyGT applies the GT predicate on the "learning_strategy" field.
func LearningStrategyGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldLearningStrategy, v))
}

// LearningStrategyGTE applies the GTE predicate on the "learning_strategy" field.
func LearningStrategyGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldLearningStrategy, v))
}

// LearningStrategyLT applies the LT predicate on the "learning_strategy" field.
func LearningStrategyLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldLearningStrategy, v))
}

// LearningStrategyLTE applies the LTE predicate on the "learning_strategy" field.
func LearningStrategyLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldLearningStrategy, v))
}

// LearningStrategyContains applies the Contains predicate on the "learning_strategy" field.
func LearningStrategyContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldLearningStrategy, v))
}

// LearningStrategyHasPrefix applies the HasPrefix predicate on the "learning_strategy" field.
func LearningStrategyHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldLearningStrategy, v))
}

// LearningStrategyHasSuffix applies the HasSuffix predicate on the "learning_strategy" field.
func LearningStrategyHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldLearningStrategy, v))
}

// LearningStrategyEqualFold applies the EqualFold predicate on the "learning_strategy" field.
func LearningStrategyEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldLearningStrategy, v))
}

// LearningStrategyContainsFold applies the ContainsFold predicate on the "learning_strategy" field.
func LearningStrategyContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldLearningStrategy, v))
}

// ActiveWeekEQ applies the EQ predicate on the "active_week" field.
func ActiveWeekEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldActiveWeek, v))
}

// ActiveWeekNEQ applies the NEQ predicate on the "active_week" field.
func ActiveWeekNEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldActiveWeek, v))
}

// ActiveWeekIn applies the In predicate on the "active_week" field.
func ActiveWeekIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldActiveWeek, vs...))
}

// ActiveWeekNotIn applies the NotIn predicate on the "active_week" field.
func ActiveWeekNotIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldActiveWeek, vs...))
}

// ActiveWeekGT applies the GT predicate on the "active_week" field.
func ActiveWeekGT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldActiveWeek, v))
}

// ActiveWeekGTE applies the GTE predicate on the "active_week" field.
func ActiveWeekGTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldActiveWeek, v))
}

// ActiveWeekLT applies the LT predicate on the "active_week" field.
func ActiveWeekLT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldActiveWeek, v))
}

// ActiveWeekLTE applies the LTE predicate on the "active_week" field.
func ActiveWeekLTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldActiveWeek, v))
}

// SessionsCompletedEQ applies the EQ predicate on the "sessions_completed" field.
func SessionsCompletedEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldSessionsCompleted, v))
}

// SessionsCompletedNEQ applies the NEQ predicate on the "sessions_completed" field.
func SessionsCompletedNEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldSessionsCompleted, v))
}

// SessionsCompletedIn applies the In predicate on the "sessions_completed" field.
func SessionsCompletedIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldSessionsCompleted, vs...))
}

// SessionsCompletedNotIn applies the NotIn predicate on the "sessions_completed" field.
func SessionsCompletedNotIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldSessionsCompleted, vs...))
}

// SessionsCompletedGT applies the GT predicate on the "sessions_completed" field.
func SessionsCompletedGT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldSessionsCompleted, v))
}

// SessionsCompletedGTE applies the GTE predicate on the "sessions_completed" field.
func SessionsCompletedGTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldSessionsCompleted, v))
}

// SessionsCompletedLT applies the LT predicate on the "sessions_completed" field.
func SessionsCompletedLT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldSessionsCompleted, v))
}

// SessionsCompletedLTE applies the LTE predicate on the "sessions_completed" field.
func SessionsCompletedLTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldSessionsCompleted, v))
}

// TotalSessionsEQ applies the EQ predicate on the "total_sessions" field.
func TotalSessionsEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldTotalSessions, v))
}

// TotalSessionsNEQ applies the NEQ predicate on the "total_sessions" field.
func TotalSessionsNEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldTotalSessions, v))
}

// TotalSessionsIn applies the In predicate on the "total_sessions" field.
func TotalSessionsIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldTotalSessions, vs...))
}

// TotalSessionsNotIn applies the NotIn predicate on the "total_sessions" field.
func TotalSessionsNotIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldTotalSessions, vs...))
}

// TotalSessionsGT applies the GT predicate on the "total_sessions" field.
func TotalSessionsGT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldTotalSessions, v))
}

// TotalSessionsGTE applies the GTE predicate on the "total_sessions" field.
func TotalSessionsGTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldTotalSessions, v))
}

// TotalSessionsLT applies the LT predicate on the "total_sessions" field.
func TotalSessionsLT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldTotalSessions, v))
}

// TotalSessionsLTE applies the LTE predicate on the "total_sessions" field.
func TotalSessionsLTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldTotalSessions, v))
}

// OverallProgressEQ applies the EQ predicate on the "overall_progress" field.
func OverallProgressEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldOverallProgress, v))
}

// OverallProgressNEQ applies the NEQ predicate on the "overall_progress" field.
func OverallProgressNEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldOverallProgress, v))
}

// OverallProgressIn applies the In predicate on the "overall_progress" field.
func OverallProgressIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldOverallProgress, vs...))
}

// OverallProgressNotIn applies the NotIn predicate on the "overall_progress" field.
func OverallProgressNotIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldOverallProgress, vs...))
}

// OverallProgressGT applies the GT predicate on the "overall_progress" field.
func OverallProgressGT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldOverallProgress, v))
}

// OverallProgressGTE applies the GTE predicate on the "overall_progress" field.
func OverallProgressGTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldOverallProgress, v))
}

// OverallProgressLT applies the LT predicate on the "overall_progress" field.
func OverallProgressLT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldOverallProgress, v))
}

// OverallProgressLTE applies the LTE predicate on the "overall_progress" field.
func OverallProgressLTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldOverallProgress, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Roadmap) predicate.Roadmap {
	return predicate.Roadmap(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Roadmap) predicate.Roadmap {
	return predicate.Roadmap(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Roadmap) predicate.Roadmap {
	return predicate.Roadmap(sql.NotPredicates(p))
}
