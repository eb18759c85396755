// Code generated by ent, DO NOT EDIT.

package learner

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmap/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldID, id))
}

// LearnerID applies equality check predicate on the "learner_id" field. It's identical to LearnerIDEQ.
func LearnerID(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldLearnerID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldName, v))
}

// TargetScore applies equality check predicate on the "target_score" field. It's identical to TargetScoreEQ.
func TargetScore(v float64) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldTargetScore, v))
}

// DailyMinutes applies equality check predicate on the "daily_minutes" field. It's identical to DailyMinutesEQ.
func DailyMinutes(v int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldDailyMinutes, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldUpdatedAt, v))
}

// LearnerIDEQ applies the EQ predicate on the "learner_id" field.
func LearnerIDEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldLearnerID, v))
}

// LearnerIDNEQ applies the NEQ predicate on the "learner_id" field.
func LearnerIDNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldLearnerID, v))
}

// LearnerIDIn applies the In predicate on the "learner_id" field.
func LearnerIDIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldLearnerID, vs...))
}

// LearnerIDNotIn applies the NotIn predicate on the "learner_id" field.
func LearnerIDNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldLearnerID, vs...))
}

// LearnerIDGT applies the GT predicate on the "learner_id" field.
func LearnerIDGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldLearnerID, v))
}

// LearnerIDGTE applies the GTE predicate on the "learner_id" field.
func LearnerIDGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldLearnerID, v))
}

// LearnerIDLT applies the LT predicate on the "learner_id" field.
func LearnerIDLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldLearnerID, v))
}

// LearnerIDLTE applies the LTE predicate on the "learner_id" field.
func LearnerIDLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldLearnerID, v))
}

// LearnerIDContains applies the Contains predicate on the "learner_id" field.
func LearnerIDContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldLearnerID, v))
}

// LearnerIDHasPrefix applies the HasPrefix predicate on the "learner_id" field.
func LearnerIDHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldLearnerID, v))
}

// LearnerIDHasSuffix applies the HasSuffix predicate on the "learner_id" field.
func LearnerIDHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldLearnerID, v))
}

// LearnerIDEqualFold applies the EqualFold predicate on the "learner_id" field.
func LearnerIDEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldLearnerID, v))
}

// LearnerIDContainsFold applies the ContainsFold predicate on the "learner_id" field.
func LearnerIDContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldLearnerID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Learner {
	return predicate.Learner(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Learner {
	return predicate.Learner(sql.FieldContainsFold(FieldName, v))
}

// TargetScoreEQ applies the EQ predicate on the "target_score" field.
func TargetScoreEQ(v float64) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldTargetScore, v))
}

// TargetScoreNEQ applies the NEQ predicate on the "target_score" field.
func TargetScoreNEQ(v float64) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldTargetScore, v))
}

// TargetScoreIn applies the In predicate on the "target_score" field.
func TargetScoreIn(vs ...float64) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldTargetScore, vs...))
}

// TargetScoreNotIn applies the NotIn predicate on the "target_score" field.
func TargetScoreNotIn(vs ...float64) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldTargetScore, vs...))
}

// TargetScoreGT applies the GT predicate on the "target_score" field.
func TargetScoreGT(v float64) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldTargetScore, v))
}

// TargetScoreGTE applies the GTE predicate on the "target_score" field.
func TargetScoreGTE(v float64) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldTargetScore, v))
}

// TargetScoreLT applies the LT predicate on the "target_score" field.
func TargetScoreLT(v float64) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldTargetScore, v))
}

// TargetScoreLTE applies the LTE predicate on the "target_score" field.
func TargetScoreLTE(v float64) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldTargetScore, v))
}

// DailyMinutesEQ applies the EQ predicate on the "daily_minutes" field.
func DailyMinutesEQ(v int) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldDailyMinutes, v))
}

// DailyMinutesNEQ applies the NEQ predicate on the "daily_minutes" field.
func DailyMinutesNEQ(v int) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldDailyMinutes, v))
}

// DailyMinutesIn applies the In predicate on the "daily_minutes" field.
func DailyMinutesIn(vs ...int) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldDailyMinutes, vs...))
}

// DailyMinutesNotIn applies the NotIn predicate on the "daily_minutes" field.
func DailyMinutesNotIn(vs ...int) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldDailyMinutes, vs...))
}

// DailyMinutesGT applies the GT predicate on the "daily_minutes" field.
func DailyMinutesGT(v int) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldDailyMinutes, v))
}

// DailyMinutesGTE applies the GTE predicate on the "daily_minutes" field.
func DailyMinutesGTE(v int) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldDailyMinutes, v))
}

// DailyMinutesLT applies the LT predicate on the "daily_minutes" field.
func DailyMinutesLT(v int) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldDailyMinutes, v))
}

// DailyMinutesLTE applies the LTE predicate on the "daily_minutes" field.
func DailyMinutesLTE(v int) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldDailyMinutes, v))
}

// StudyDaysIsNil applies the IsNil predicate on the "study_days" field.
func StudyDaysIsNil() predicate.Learner {
	return predicate.Learner(sql.FieldIsNull(FieldStudyDays))
}

// StudyDaysNotNil applies the NotNil predicate on the "study_days" field.
func StudyDaysNotNil() predicate.Learner {
	return predicate.Learner(sql.FieldNotNull(FieldStudyDays))
}

// CompetencyIsNil applies the IsNil predicate on the "competency" field.
func CompetencyIsNil() predicate.Learner {
	return predicate.Learner(sql.FieldIsNull(FieldCompetency))
}

// CompetencyNotNil applies the NotNil predicate on the "competency" field.
func CompetencyNotNil() predicate.Learner {
	return predicate.Learner(sql.FieldNotNull(FieldCompetency))
}

// WeaknessesIsNil applies the IsNil predicate on the "weaknesses" field.
func WeaknessesIsNil() predicate.Learner {
	return predicate.Learner(sql.FieldIsNull(FieldWeaknesses))
}

// WeaknessesNotNil applies the NotNil predicate on the "weaknesses" field.
func WeaknessesNotNil() predicate.Learner {
	return predicate.Learner(sql.FieldNotNull(FieldWeaknesses))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Learner {
	return predicate.Learner(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Learner) predicate.Learner {
	return predicate.Learner(sql.NotPredicates(p))
}
