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
	"github.com/abhisek/prepmap/ent/schema"
	"github.com/abhisek/prepmap/ent/studysession"
)

// StudySessionUpdate is the builder for updating StudySession entities.
type StudySessionUpdate struct {
	config
	hooks    []Hook
	mutation *StudySessionMutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdate) Where(ps ...predicate.StudySession) *StudySessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *StudySessionUpdate) SetSessionID(v string) *StudySessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableSessionID(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *StudySessionUpdate) SetLearnerID(v string) *StudySessionUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableLearnerID(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *StudySessionUpdate) SetDate(v time.Time) *StudySessionUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableDate(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *StudySessionUpdate) SetRoadmapID(v string) *StudySessionUpdate {
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableRoadmapID(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// SetWeekNumber sets the "week_number" field.
func (_u *StudySessionUpdate) SetWeekNumber(v int) *StudySessionUpdate {
	_u.mutation.ResetWeekNumber()
	_u.mutation.SetWeekNumber(v)
	return _u
}

// SetNillableWeekNumber sets the "week_number" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableWeekNumber(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetWeekNumber(*v)
	}
	return _u
}

// AddWeekNumber adds value to the "week_number" field.
func (_u *StudySessionUpdate) AddWeekNumber(v int) *StudySessionUpdate {
	_u.mutation.AddWeekNumber(v)
	return _u
}

// SetDayNumber sets the "day_number" field.
func (_u *StudySessionUpdate) SetDayNumber(v int) *StudySessionUpdate {
	_u.mutation.ResetDayNumber()
	_u.mutation.SetDayNumber(v)
	return _u
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableDayNumber(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetDayNumber(*v)
	}
	return _u
}

// AddDayNumber adds value to the "day_number" field.
func (_u *StudySessionUpdate) AddDayNumber(v int) *StudySessionUpdate {
	_u.mutation.AddDayNumber(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *StudySessionUpdate) SetTitle(v string) *StudySessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableTitle(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTargetSkills sets the "target_skills" field.
func (_u *StudySessionUpdate) SetTargetSkills(v []string) *StudySessionUpdate {
	_u.mutation.SetTargetSkills(v)
	return _u
}

// AppendTargetSkills appends value to the "target_skills" field.
func (_u *StudySessionUpdate) AppendTargetSkills(v []string) *StudySessionUpdate {
	_u.mutation.AppendTargetSkills(v)
	return _u
}

// ClearTargetSkills clears the value of the "target_skills" field.
func (_u *StudySessionUpdate) ClearTargetSkills() *StudySessionUpdate {
	_u.mutation.ClearTargetSkills()
	return _u
}

// SetItems sets the "items" field.
func (_u *StudySessionUpdate) SetItems(v []schema.ItemDoc) *StudySessionUpdate {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *StudySessionUpdate) AppendItems(v []schema.ItemDoc) *StudySessionUpdate {
	_u.mutation.AppendItems(v)
	return _u
}

// SetProgress sets the "progress" field.
func (_u *StudySessionUpdate) SetProgress(v int) *StudySessionUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableProgress(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *StudySessionUpdate) AddProgress(v int) *StudySessionUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudySessionUpdate) SetStatus(v string) *StudySessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableStatus(v *string) *StudySessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StudySessionUpdate) SetStartedAt(v time.Time) *StudySessionUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableStartedAt(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StudySessionUpdate) ClearStartedAt() *StudySessionUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StudySessionUpdate) SetCompletedAt(v time.Time) *StudySessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableCompletedAt(v *time.Time) *StudySessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StudySessionUpdate) ClearCompletedAt() *StudySessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTotalTimeSpent sets the "total_time_spent" field.
func (_u *StudySessionUpdate) SetTotalTimeSpent(v int) *StudySessionUpdate {
	_u.mutation.ResetTotalTimeSpent()
	_u.mutation.SetTotalTimeSpent(v)
	return _u
}

// SetNillableTotalTimeSpent sets the "total_time_spent" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableTotalTimeSpent(v *int) *StudySessionUpdate {
	if v != nil {
		_u.SetTotalTimeSpent(*v)
	}
	return _u
}

// AddTotalTimeSpent adds value to the "total_time_spent" field.
func (_u *StudySessionUpdate) AddTotalTimeSpent(v int) *StudySessionUpdate {
	_u.mutation.AddTotalTimeSpent(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *StudySessionUpdate) SetVersion(v int64) *StudySessionUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *StudySessionUpdate) SetNillableVersion(v *int64) *StudySessionUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *StudySessionUpdate) AddVersion(v int64) *StudySessionUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdate) Mutation() *StudySessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudySessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudySessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := studysession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := studysession.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(studysession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(studysession.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(studysession.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RoadmapID(); ok {
		_spec.SetField(studysession.FieldRoadmapID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeekNumber(); ok {
		_spec.SetField(studysession.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekNumber(); ok {
		_spec.AddField(studysession.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DayNumber(); ok {
		_spec.SetField(studysession.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayNumber(); ok {
		_spec.AddField(studysession.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(studysession.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetSkills(); ok {
		_spec.SetField(studysession.FieldTargetSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studysession.FieldTargetSkills, value)
		})
	}
	if _u.mutation.TargetSkillsCleared() {
		_spec.ClearField(studysession.FieldTargetSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(studysession.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studysession.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(studysession.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(studysession.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(studysession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(studysession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(studysession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(studysession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(studysession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalTimeSpent(); ok {
		_spec.SetField(studysession.FieldTotalTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSpent(); ok {
		_spec.AddField(studysession.FieldTotalTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(studysession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(studysession.FieldVersion, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudySessionUpdateOne is the builder for updating a single StudySession entity.
type StudySessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudySessionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *StudySessionUpdateOne) SetSessionID(v string) *StudySessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableSessionID(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *StudySessionUpdateOne) SetLearnerID(v string) *StudySessionUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableLearnerID(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *StudySessionUpdateOne) SetDate(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableDate(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *StudySessionUpdateOne) SetRoadmapID(v string) *StudySessionUpdateOne {
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableRoadmapID(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// SetWeekNumber sets the "week_number" field.
func (_u *StudySessionUpdateOne) SetWeekNumber(v int) *StudySessionUpdateOne {
	_u.mutation.ResetWeekNumber()
	_u.mutation.SetWeekNumber(v)
	return _u
}

// SetNillableWeekNumber sets the "week_number" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableWeekNumber(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetWeekNumber(*v)
	}
	return _u
}

// AddWeekNumber adds value to the "week_number" field.
func (_u *StudySessionUpdateOne) AddWeekNumber(v int) *StudySessionUpdateOne {
	_u.mutation.AddWeekNumber(v)
	return _u
}

// SetDayNumber sets the "day_number" field.
func (_u *StudySessionUpdateOne) SetDayNumber(v int) *StudySessionUpdateOne {
	_u.mutation.ResetDayNumber()
	_u.mutation.SetDayNumber(v)
	return _u
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableDayNumber(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetDayNumber(*v)
	}
	return _u
}

// AddDayNumber adds value to the "day_number" field.
func (_u *StudySessionUpdateOne) AddDayNumber(v int) *StudySessionUpdateOne {
	_u.mutation.AddDayNumber(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *StudySessionUpdateOne) SetTitle(v string) *StudySessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableTitle(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTargetSkills sets the "target_skills" field.
func (_u *StudySessionUpdateOne) SetTargetSkills(v []string) *StudySessionUpdateOne {
	_u.mutation.SetTargetSkills(v)
	return _u
}

// AppendTargetSkills appends value to the "target_skills" field.
func (_u *StudySessionUpdateOne) AppendTargetSkills(v []string) *StudySessionUpdateOne {
	_u.mutation.AppendTargetSkills(v)
	return _u
}

// ClearTargetSkills clears the value of the "target_skills" field.
func (_u *StudySessionUpdateOne) ClearTargetSkills() *StudySessionUpdateOne {
	_u.mutation.ClearTargetSkills()
	return _u
}

// SetItems sets the "items" field.
func (_u *StudySessionUpdateOne) SetItems(v []schema.ItemDoc) *StudySessionUpdateOne {
	_u.mutation.SetItems(v)
	return _u
}

// AppendItems appends value to the "items" field.
func (_u *StudySessionUpdateOne) AppendItems(v []schema.ItemDoc) *StudySessionUpdateOne {
	_u.mutation.AppendItems(v)
	return _u
}

// SetProgress sets the "progress" field.
func (_u *StudySessionUpdateOne) SetProgress(v int) *StudySessionUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableProgress(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *StudySessionUpdateOne) AddProgress(v int) *StudySessionUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *StudySessionUpdateOne) SetStatus(v string) *StudySessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableStatus(v *string) *StudySessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *StudySessionUpdateOne) SetStartedAt(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableStartedAt(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *StudySessionUpdateOne) ClearStartedAt() *StudySessionUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *StudySessionUpdateOne) SetCompletedAt(v time.Time) *StudySessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableCompletedAt(v *time.Time) *StudySessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *StudySessionUpdateOne) ClearCompletedAt() *StudySessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetTotalTimeSpent sets the "total_time_spent" field.
func (_u *StudySessionUpdateOne) SetTotalTimeSpent(v int) *StudySessionUpdateOne {
	_u.mutation.ResetTotalTimeSpent()
	_u.mutation.SetTotalTimeSpent(v)
	return _u
}

// SetNillableTotalTimeSpent sets the "total_time_spent" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableTotalTimeSpent(v *int) *StudySessionUpdateOne {
	if v != nil {
		_u.SetTotalTimeSpent(*v)
	}
	return _u
}

// AddTotalTimeSpent adds value to the "total_time_spent" field.
func (_u *StudySessionUpdateOne) AddTotalTimeSpent(v int) *StudySessionUpdateOne {
	_u.mutation.AddTotalTimeSpent(v)
	return _u
}

// SetVersion sets the "version" field.
func (_u *StudySessionUpdateOne) SetVersion(v int64) *StudySessionUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *StudySessionUpdateOne) SetNillableVersion(v *int64) *StudySessionUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *StudySessionUpdateOne) AddVersion(v int64) *StudySessionUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// Mutation returns the StudySessionMutation object of the builder.
func (_u *StudySessionUpdateOne) Mutation() *StudySessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudySessionUpdate builder.
func (_u *StudySessionUpdateOne) Where(ps ...predicate.StudySession) *StudySessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudySessionUpdateOne) Select(field string, fields ...string) *StudySessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudySession entity.
func (_u *StudySessionUpdateOne) Save(ctx context.Context) (*StudySession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudySessionUpdateOne) SaveX(ctx context.Context) *StudySession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudySessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudySessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudySessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := studysession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := studysession.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *StudySessionUpdateOne) sqlSave(ctx context.Context) (_node *StudySession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studysession.Table, studysession.Columns, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudySession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studysession.FieldID)
		for _, f := range fields {
			if !studysession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studysession.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(studysession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(studysession.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(studysession.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RoadmapID(); ok {
		_spec.SetField(studysession.FieldRoadmapID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WeekNumber(); ok {
		_spec.SetField(studysession.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeekNumber(); ok {
		_spec.AddField(studysession.FieldWeekNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DayNumber(); ok {
		_spec.SetField(studysession.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDayNumber(); ok {
		_spec.AddField(studysession.FieldDayNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(studysession.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetSkills(); ok {
		_spec.SetField(studysession.FieldTargetSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTargetSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studysession.FieldTargetSkills, value)
		})
	}
	if _u.mutation.TargetSkillsCleared() {
		_spec.ClearField(studysession.FieldTargetSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Items(); ok {
		_spec.SetField(studysession.FieldItems, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedItems(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studysession.FieldItems, value)
		})
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(studysession.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(studysession.FieldProgress, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(studysession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(studysession.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(studysession.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(studysession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(studysession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.TotalTimeSpent(); ok {
		_spec.SetField(studysession.FieldTotalTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalTimeSpent(); ok {
		_spec.AddField(studysession.FieldTotalTimeSpent, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(studysession.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(studysession.FieldVersion, field.TypeInt64, value)
	}
	_node = &StudySession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studysession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
