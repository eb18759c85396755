// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepmap/ent/predicate"
	"github.com/abhisek/prepmap/ent/roadmap"
	"github.com/abhisek/prepmap/ent/schema"
)

// RoadmapUpdate is the builder for updating Roadmap entities.
type RoadmapUpdate struct {
	config
	hooks    []Hook
	mutation *RoadmapMutation
}

// Where appends a list predicates to the RoadmapUpdate builder.
func (_u *RoadmapUpdate) Where(ps ...predicate.Roadmap) *RoadmapUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *RoadmapUpdate) SetRoadmapID(v string) *RoadmapUpdate {
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableRoadmapID(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *RoadmapUpdate) SetLearnerID(v string) *RoadmapUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableLearnerID(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *RoadmapUpdate) SetGoal(v string) *RoadmapUpdate {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableGoal(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RoadmapUpdate) SetStatus(v string) *RoadmapUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableStatus(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *RoadmapUpdate) SetStartDate(v time.Time) *RoadmapUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableStartDate(v *time.Time) *RoadmapUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetTotalWeeks sets the "total_weeks" field.
func (_u *RoadmapUpdate) SetTotalWeeks(v int) *RoadmapUpdate {
	_u.mutation.ResetTotalWeeks()
	_u.mutation.SetTotalWeeks(v)
	return _u
}

// SetNillableTotalWeeks sets the "total_weeks" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableTotalWeeks(v *int) *RoadmapUpdate {
	if v != nil {
		_u.SetTotalWeeks(*v)
	}
	return _u
}

// AddTotalWeeks adds value to the "total_weeks" field.
func (_u *RoadmapUpdate) AddTotalWeeks(v int) *RoadmapUpdate {
	_u.mutation.AddTotalWeeks(v)
	return _u
}

// SetStudyDaysPerWeek sets the "study_days_per_week" field.
func (_u *RoadmapUpdate) SetStudyDaysPerWeek(v int) *RoadmapUpdate {
	_u.mutation.ResetStudyDaysPerWeek()
	_u.mutation.SetStudyDaysPerWeek(v)
	return _u
}

// SetNillableStudyDaysPerWeek sets the "study_days_per_week" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableStudyDaysPerWeek(v *int) *RoadmapUpdate {
	if v != nil {
		_u.SetStudyDaysPerWeek(*v)
	}
	return _u
}

// AddStudyDaysPerWeek adds value to the "study_days_per_week" field.
func (_u *RoadmapUpdate) AddStudyDaysPerWeek(v int) *RoadmapUpdate {
	_u.mutation.AddStudyDaysPerWeek(v)
	return _u
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_u *RoadmapUpdate) SetDailyMinutes(v int) *RoadmapUpdate {
	_u.mutation.ResetDailyMinutes()
	_u.mutation.SetDailyMinutes(v)
	return _u
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableDailyMinutes(v *int) *RoadmapUpdate {
	if v != nil {
		_u.SetDailyMinutes(*v)
	}
	return _u
}

// AddDailyMinutes adds value to the "daily_minutes" field.
func (_u *RoadmapUpdate) AddDailyMinutes(v int) *RoadmapUpdate {
	_u.mutation.AddDailyMinutes(v)
	return _u
}

// SetLearningStrategy sets the "learning_strategy" field.
func (_u *RoadmapUpdate) SetLearningStrategy(v string) *RoadmapUpdate {
	_u.mutation.SetLearningStrategy(v)
	return _u
}

// SetNillableLearningStrategy sets the "learning_strategy" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableLearningStrategy(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetLearningStrategy(*v)
	}
	return _u
}

// SetActiveWeek sets the "active_week" field.
func (_u *RoadmapUpdate) SetActiveWeek(v int) *RoadmapUpdate {
	_u.mutation.ResetActiveWeek()
	_u.mutation.SetActiveWeek(v)
	return _u
}

// SetNillableActiveWeek sets the "active_week" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableActiveWeek(v *int) *RoadmapUpdate {
	if v != nil {
		_u.SetActiveWeek(*v)
	}
	return _u
}

// AddActiveWeek adds value to the "active_week" field.
func (_u *RoadmapUpdate) AddActiveWeek(v int) *RoadmapUpdate {
	_u.mutation.AddActiveWeek(v)
	return _u
}

// SetSessionsCompleted sets the "sessions_completed" field.
func (_u *RoadmapUpdate) SetSessionsCompleted(v int) *RoadmapUpdate {
	_u.mutation.ResetSessionsCompleted()
	_u.mutation.SetSessionsCompleted(v)
	return _u
}

// SetNillableSessionsCompleted sets the "sessions_completed" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableSessionsCompleted(v *int) *RoadmapUpdate {
	if v != nil {
		_u.SetSessionsCompleted(*v)
	}
	return _u
}

// AddSessionsCompleted adds value to the "sessions_completed" field.
func (_u *RoadmapUpdate) AddSessionsCompleted(v int) *RoadmapUpdate {
	_u.mutation.AddSessionsCompleted(v)
	return _u
}

// SetTotalSessions sets the "total_sessions" field.
func (_u *RoadmapUpdate) SetTotalSessions(v int) *RoadmapUpdate {
	_u.mutation.ResetTotalSessions()
	_u.mutation.SetTotalSessions(v)
	return _u
}

// SetNillableTotalSessions sets the "total_sessions" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableTotalSessions(v *int) *RoadmapUpdate {
	if v != nil {
		_u.SetTotalSessions(*v)
	}
	return _u
}

// AddTotalSessions adds value to the "total_sessions" field.
func (_u *RoadmapUpdate) AddTotalSessions(v int) *RoadmapUpdate {
	_u.mutation.AddTotalSessions(v)
	return _u
}

// SetOverallProgress sets the "overall_progress" field.
func (_u *RoadmapUpdate) SetOverallProgress(v int) *RoadmapUpdate {
	_u.mutation.ResetOverallProgress()
	_u.mutation.SetOverallProgress(v)
	return _u
}

// SetNillableOverallProgress sets the "overall_progress" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableOverallProgress(v *int) *RoadmapUpdate {
	if v != nil {
		_u.SetOverallProgress(*v)
	}
	return _u
}

// AddOverallProgress adds value to the "overall_progress" field.
func (_u *RoadmapUpdate) AddOverallProgress(v int) *RoadmapUpdate {
	_u.mutation.AddOverallProgress(v)
	return _u
}

// SetWeeks sets the "weeks" field.
func (_u *RoadmapUpdate) SetWeeks(v []schema.WeekDoc) *RoadmapUpdate {
	_u.mutation.SetWeeks(v)
	return _u
}

// AppendWeeks appends value to the "weeks" field.
func (_u *RoadmapUpdate) AppendWeeks(v []schema.WeekDoc) *RoadmapUpdate {
	_u.mutation.AppendWeeks(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *RoadmapUpdate) SetVersion(v int64) *RoadmapUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableVersion(v *int64) *RoadmapUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *RoadmapUpdate) AddVersion(v int64) *RoadmapUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoadmapUpdate) SetUpdatedAt(v time.Time) *RoadmapUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RoadmapMutation object of the builder.
func (_u *RoadmapUpdate) Mutation() *RoadmapMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoadmapUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoadmapUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoadmapUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoadmapUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoadmapUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := roadmap.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoadmapUpdate) check() error {
	if v, ok := _u.mutation.RoadmapID(); ok {
		if err := roadmap.RoadmapIDValidator(v); err != nil {
			return &ValidationError{Name: "roadmap_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.roadmap_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := roadmap.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RoadmapUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roadmap.Table, roadmap.Columns, sqlgraph.NewFieldSpec(roadmap.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoadmapID(); ok {
		_spec.SetField(roadmap.FieldRoadmapID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(roadmap.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(roadmap.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(roadmap.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(roadmap.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalWeeks(); ok {
		_spec.SetField(roadmap.FieldTotalWeeks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalWeeks(); ok {
		_spec.AddField(roadmap.FieldTotalWeeks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StudyDaysPerWeek(); ok {
		_spec.SetField(roadmap.FieldStudyDaysPerWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudyDaysPerWeek(); ok {
		_spec.AddField(roadmap.FieldStudyDaysPerWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyMinutes(); ok {
		_spec.SetField(roadmap.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyMinutes(); ok {
		_spec.AddField(roadmap.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearningStrategy(); ok {
		_spec.SetField(roadmap.FieldLearningStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActiveWeek(); ok {
		_spec.SetField(roadmap.FieldActiveWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveWeek(); ok {
		_spec.AddField(roadmap.FieldActiveWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionsCompleted(); ok {
		_spec.SetField(roadmap.FieldSessionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsCompleted(); ok {
		_spec.AddField(roadmap.FieldSessionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSessions(); ok {
		_spec.SetField(roadmap.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSessions(); ok {
		_spec.AddField(roadmap.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallProgress(); ok {
		_spec.SetField(roadmap.FieldOverallProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallProgress(); ok {
		_spec.AddField(roadmap.FieldOverallProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Weeks(); ok {
		_spec.SetField(roadmap.FieldWeeks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeeks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roadmap.FieldWeeks, value)
		})
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(roadmap.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(roadmap.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(roadmap.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roadmap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoadmapUpdateOne is the builder for updating a single Roadmap entity.
type RoadmapUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoadmapMutation
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *RoadmapUpdateOne) SetRoadmapID(v string) *RoadmapUpdateOne {
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableRoadmapID(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *RoadmapUpdateOne) SetLearnerID(v string) *RoadmapUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableLearnerID(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetGoal sets the "goal" field.
func (_u *RoadmapUpdateOne) SetGoal(v string) *RoadmapUpdateOne {
	_u.mutation.SetGoal(v)
	return _u
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableGoal(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetGoal(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RoadmapUpdateOne) SetStatus(v string) *RoadmapUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableStatus(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *RoadmapUpdateOne) SetStartDate(v time.Time) *RoadmapUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableStartDate(v *time.Time) *RoadmapUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetTotalWeeks sets the "total_weeks" field.
func (_u *RoadmapUpdateOne) SetTotalWeeks(v int) *RoadmapUpdateOne {
	_u.mutation.ResetTotalWeeks()
	_u.mutation.SetTotalWeeks(v)
	return _u
}

// SetNillableTotalWeeks sets the "total_weeks" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableTotalWeeks(v *int) *RoadmapUpdateOne {
	if v != nil {
		_u.SetTotalWeeks(*v)
	}
	return _u
}

// AddTotalWeeks adds value to the "total_weeks" field.
func (_u *RoadmapUpdateOne) AddTotalWeeks(v int) *RoadmapUpdateOne {
	_u.mutation.AddTotalWeeks(v)
	return _u
}

// SetStudyDaysPerWeek sets the "study_days_per_week" field.
func (_u *RoadmapUpdateOne) SetStudyDaysPerWeek(v int) *RoadmapUpdateOne {
	_u.mutation.ResetStudyDaysPerWeek()
	_u.mutation.SetStudyDaysPerWeek(v)
	return _u
}

// SetNillableStudyDaysPerWeek sets the "study_days_per_week" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableStudyDaysPerWeek(v *int) *RoadmapUpdateOne {
	if v != nil {
		_u.SetStudyDaysPerWeek(*v)
	}
	return _u
}

// AddStudyDaysPerWeek adds value to the "study_days_per_week" field.
func (_u *RoadmapUpdateOne) AddStudyDaysPerWeek(v int) *RoadmapUpdateOne {
	_u.mutation.AddStudyDaysPerWeek(v)
	return _u
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_u *RoadmapUpdateOne) SetDailyMinutes(v int) *RoadmapUpdateOne {
	_u.mutation.ResetDailyMinutes()
	_u.mutation.SetDailyMinutes(v)
	return _u
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableDailyMinutes(v *int) *RoadmapUpdateOne {
	if v != nil {
		_u.SetDailyMinutes(*v)
	}
	return _u
}

// AddDailyMinutes adds value to the "daily_minutes" field.
func (_u *RoadmapUpdateOne) AddDailyMinutes(v int) *RoadmapUpdateOne {
	_u.mutation.AddDailyMinutes(v)
	return _u
}

// SetLearningStrategy sets the "learning_strategy" field.
func (_u *RoadmapUpdateOne) SetLearningStrategy(v string) *RoadmapUpdateOne {
	_u.mutation.SetLearningStrategy(v)
	return _u
}

// SetNillableLearningStrategy sets the "learning_strategy" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableLearningStrategy(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetLearningStrategy(*v)
	}
	return _u
}

// SetActiveWeek sets the "active_week" field.
func (_u *RoadmapUpdateOne) SetActiveWeek(v int) *RoadmapUpdateOne {
	_u.mutation.ResetActiveWeek()
	_u.mutation.SetActiveWeek(v)
	return _u
}

// SetNillableActiveWeek sets the "active_week" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableActiveWeek(v *int) *RoadmapUpdateOne {
	if v != nil {
		_u.SetActiveWeek(*v)
	}
	return _u
}

// AddActiveWeek adds value to the "active_week" field.
func (_u *RoadmapUpdateOne) AddActiveWeek(v int) *RoadmapUpdateOne {
	_u.mutation.AddActiveWeek(v)
	return _u
}

// SetSessionsCompleted sets the "sessions_completed" field.
func (_u *RoadmapUpdateOne) SetSessionsCompleted(v int) *RoadmapUpdateOne {
	_u.mutation.ResetSessionsCompleted()
	_u.mutation.SetSessionsCompleted(v)
	return _u
}

// SetNillableSessionsCompleted sets the "sessions_completed" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableSessionsCompleted(v *int) *RoadmapUpdateOne {
	if v != nil {
		_u.SetSessionsCompleted(*v)
	}
	return _u
}

// AddSessionsCompleted adds value to the "sessions_completed" field.
func (_u *RoadmapUpdateOne) AddSessionsCompleted(v int) *RoadmapUpdateOne {
	_u.mutation.AddSessionsCompleted(v)
	return _u
}

// SetTotalSessions sets the "total_sessions" field.
func (_u *RoadmapUpdateOne) SetTotalSessions(v int) *RoadmapUpdateOne {
	_u.mutation.ResetTotalSessions()
	_u.mutation.SetTotalSessions(v)
	return _u
}

// SetNillableTotalSessions sets the "total_sessions" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableTotalSessions(v *int) *RoadmapUpdateOne {
	if v != nil {
		_u.SetTotalSessions(*v)
	}
	return _u
}

// AddTotalSessions adds value to the "total_sessions" field.
func (_u *RoadmapUpdateOne) AddTotalSessions(v int) *RoadmapUpdateOne {
	_u.mutation.AddTotalSessions(v)
	return _u
}

// SetOverallProgress sets the "overall_progress" field.
func (_u *RoadmapUpdateOne) SetOverallProgress(v int) *RoadmapUpdateOne {
	_u.mutation.ResetOverallProgress()
	_u.mutation.SetOverallProgress(v)
	return _u
}

// SetNillableOverallProgress sets the "overall_progress" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableOverallProgress(v *int) *RoadmapUpdateOne {
	if v != nil {
		_u.SetOverallProgress(*v)
	}
	return _u
}

// AddOverallProgress adds value to the "overall_progress" field.
func (_u *RoadmapUpdateOne) AddOverallProgress(v int) *RoadmapUpdateOne {
	_u.mutation.AddOverallProgress(v)
	return _u
}

// SetWeeks sets the "weeks" field.
func (_u *RoadmapUpdateOne) SetWeeks(v []schema.WeekDoc) *RoadmapUpdateOne {
	_u.mutation.SetWeeks(v)
	return _u
}

// AppendWeeks appends value to the "weeks" field.
func (_u *RoadmapUpdateOne) AppendWeeks(v []schema.WeekDoc) *RoadmapUpdateOne {
	_u.mutation.AppendWeeks(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *RoadmapUpdateOne) SetVersion(v int64) *RoadmapUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableVersion(v *int64) *RoadmapUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *RoadmapUpdateOne) AddVersion(v int64) *RoadmapUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoadmapUpdateOne) SetUpdatedAt(v time.Time) *RoadmapUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RoadmapMutation object of the builder.
func (_u *RoadmapUpdateOne) Mutation() *RoadmapMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoadmapUpdate builder.
func (_u *RoadmapUpdateOne) Where(ps ...predicate.Roadmap) *RoadmapUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoadmapUpdateOne) Select(field string, fields ...string) *RoadmapUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Roadmap entity.
func (_u *RoadmapUpdateOne) Save(ctx context.Context) (*Roadmap, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoadmapUpdateOne) SaveX(ctx context.Context) *Roadmap {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoadmapUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoadmapUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoadmapUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := roadmap.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoadmapUpdateOne) check() error {
	if v, ok := _u.mutation.RoadmapID(); ok {
		if err := roadmap.RoadmapIDValidator(v); err != nil {
			return &ValidationError{Name: "roadmap_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.roadmap_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := roadmap.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *RoadmapUpdateOne) sqlSave(ctx context.Context) (_node *Roadmap, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roadmap.Table, roadmap.Columns, sqlgraph.NewFieldSpec(roadmap.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Roadmap.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roadmap.FieldID)
		for _, f := range fields {
			if !roadmap.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roadmap.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoadmapID(); ok {
		_spec.SetField(roadmap.FieldRoadmapID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(roadmap.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Goal(); ok {
		_spec.SetField(roadmap.FieldGoal, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(roadmap.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(roadmap.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalWeeks(); ok {
		_spec.SetField(roadmap.FieldTotalWeeks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalWeeks(); ok {
		_spec.AddField(roadmap.FieldTotalWeeks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StudyDaysPerWeek(); ok {
		_spec.SetField(roadmap.FieldStudyDaysPerWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudyDaysPerWeek(); ok {
		_spec.AddField(roadmap.FieldStudyDaysPerWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DailyMinutes(); ok {
		_spec.SetField(roadmap.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyMinutes(); ok {
		_spec.AddField(roadmap.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LearningStrategy(); ok {
		_spec.SetField(roadmap.FieldLearningStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActiveWeek(); ok {
		_spec.SetField(roadmap.FieldActiveWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveWeek(); ok {
		_spec.AddField(roadmap.FieldActiveWeek, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionsCompleted(); ok {
		_spec.SetField(roadmap.FieldSessionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionsCompleted(); ok {
		_spec.AddField(roadmap.FieldSessionsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalSessions(); ok {
		_spec.SetField(roadmap.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalSessions(); ok {
		_spec.AddField(roadmap.FieldTotalSessions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OverallProgress(); ok {
		_spec.SetField(roadmap.FieldOverallProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOverallProgress(); ok {
		_spec.AddField(roadmap.FieldOverallProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Weeks(); ok {
		_spec.SetField(roadmap.FieldWeeks, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeeks(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roadmap.FieldWeeks, value)
		})
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(roadmap.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(roadmap.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(roadmap.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Roadmap{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roadmap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
