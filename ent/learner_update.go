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
	"github.com/abhisek/prepmap/ent/learner"
	"github.com/abhisek/prepmap/ent/predicate"
	"github.com/abhisek/prepmap/ent/schema"
)

// LearnerUpdate is the builder for updating Learner entities.
type LearnerUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerMutation
}

// Where appends a list predicates to the LearnerUpdate builder.
func (_u *LearnerUpdate) Where(ps ...predicate.Learner) *LearnerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *LearnerUpdate) SetLearnerID(v string) *LearnerUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableLearnerID(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *LearnerUpdate) SetName(v string) *LearnerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableName(v *string) *LearnerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTargetScore sets the "target_score" field.
func (_u *LearnerUpdate) SetTargetScore(v float64) *LearnerUpdate {
	_u.mutation.ResetTargetScore()
	_u.mutation.SetTargetScore(v)
	return _u
}

// SetNillableTargetScore sets the "target_score" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableTargetScore(v *float64) *LearnerUpdate {
	if v != nil {
		_u.SetTargetScore(*v)
	}
	return _u
}

// AddTargetScore adds value to the "target_score" field.
func (_u *LearnerUpdate) AddTargetScore(v float64) *LearnerUpdate {
	_u.mutation.AddTargetScore(v)
	return _u
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_u *LearnerUpdate) SetDailyMinutes(v int) *LearnerUpdate {
	_u.mutation.ResetDailyMinutes()
	_u.mutation.SetDailyMinutes(v)
	return _u
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_u *LearnerUpdate) SetNillableDailyMinutes(v *int) *LearnerUpdate {
	if v != nil {
		_u.SetDailyMinutes(*v)
	}
	return _u
}

// AddDailyMinutes adds value to the "daily_minutes" field.
func (_u *LearnerUpdate) AddDailyMinutes(v int) *LearnerUpdate {
	_u.mutation.AddDailyMinutes(v)
	return _u
}

// SetStudyDays sets the "study_days" field.
func (_u *LearnerUpdate) SetStudyDays(v []int) *LearnerUpdate {
	_u.mutation.SetStudyDays(v)
	return _u
}

// AppendStudyDays appends value to the "study_days" field.
func (_u *LearnerUpdate) AppendStudyDays(v []int) *LearnerUpdate {
	_u.mutation.AppendStudyDays(v)
	return _u
}

// ClearStudyDays clears the value of the "study_days" field.
func (_u *LearnerUpdate) ClearStudyDays() *LearnerUpdate {
	_u.mutation.ClearStudyDays()
	return _u
}

// SetCompetency sets the "competency" field.
func (_u *LearnerUpdate) SetCompetency(v map[string]float64) *LearnerUpdate {
	_u.mutation.SetCompetency(v)
	return _u
}

// ClearCompetency clears the value of the "competency" field.
func (_u *LearnerUpdate) ClearCompetency() *LearnerUpdate {
	_u.mutation.ClearCompetency()
	return _u
}

// SetWeaknesses sets the "weaknesses" field.
func (_u *LearnerUpdate) SetWeaknesses(v []schema.WeaknessDoc) *LearnerUpdate {
	_u.mutation.SetWeaknesses(v)
	return _u
}

// AppendWeaknesses appends value to the "weaknesses" field.
func (_u *LearnerUpdate) AppendWeaknesses(v []schema.WeaknessDoc) *LearnerUpdate {
	_u.mutation.AppendWeaknesses(v)
	return _u
}

// ClearWeaknesses clears the value of the "weaknesses" field.
func (_u *LearnerUpdate) ClearWeaknesses() *LearnerUpdate {
	_u.mutation.ClearWeaknesses()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerUpdate) SetUpdatedAt(v time.Time) *LearnerUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerMutation object of the builder.
func (_u *LearnerUpdate) Mutation() *LearnerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learner.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerUpdate) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := learner.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Learner.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learner.Table, learner.Columns, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(learner.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(learner.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetScore(); ok {
		_spec.SetField(learner.FieldTargetScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetScore(); ok {
		_spec.AddField(learner.FieldTargetScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DailyMinutes(); ok {
		_spec.SetField(learner.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyMinutes(); ok {
		_spec.AddField(learner.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StudyDays(); ok {
		_spec.SetField(learner.FieldStudyDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStudyDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learner.FieldStudyDays, value)
		})
	}
	if _u.mutation.StudyDaysCleared() {
		_spec.ClearField(learner.FieldStudyDays, field.TypeJSON)
	}
	if value, ok := _u.mutation.Competency(); ok {
		_spec.SetField(learner.FieldCompetency, field.TypeJSON, value)
	}
	if _u.mutation.CompetencyCleared() {
		_spec.ClearField(learner.FieldCompetency, field.TypeJSON)
	}
	if value, ok := _u.mutation.Weaknesses(); ok {
		_spec.SetField(learner.FieldWeaknesses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeaknesses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learner.FieldWeaknesses, value)
		})
	}
	if _u.mutation.WeaknessesCleared() {
		_spec.ClearField(learner.FieldWeaknesses, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learner.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerUpdateOne is the builder for updating a single Learner entity.
type LearnerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *LearnerUpdateOne) SetLearnerID(v string) *LearnerUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableLearnerID(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *LearnerUpdateOne) SetName(v string) *LearnerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableName(v *string) *LearnerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTargetScore sets the "target_score" field.
func (_u *LearnerUpdateOne) SetTargetScore(v float64) *LearnerUpdateOne {
	_u.mutation.ResetTargetScore()
	_u.mutation.SetTargetScore(v)
	return _u
}

// SetNillableTargetScore sets the "target_score" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableTargetScore(v *float64) *LearnerUpdateOne {
	if v != nil {
		_u.SetTargetScore(*v)
	}
	return _u
}

// AddTargetScore adds value to the "target_score" field.
func (_u *LearnerUpdateOne) AddTargetScore(v float64) *LearnerUpdateOne {
	_u.mutation.AddTargetScore(v)
	return _u
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_u *LearnerUpdateOne) SetDailyMinutes(v int) *LearnerUpdateOne {
	_u.mutation.ResetDailyMinutes()
	_u.mutation.SetDailyMinutes(v)
	return _u
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_u *LearnerUpdateOne) SetNillableDailyMinutes(v *int) *LearnerUpdateOne {
	if v != nil {
		_u.SetDailyMinutes(*v)
	}
	return _u
}

// AddDailyMinutes adds value to the "daily_minutes" field.
func (_u *LearnerUpdateOne) AddDailyMinutes(v int) *LearnerUpdateOne {
	_u.mutation.AddDailyMinutes(v)
	return _u
}

// SetStudyDays sets the "study_days" field.
func (_u *LearnerUpdateOne) SetStudyDays(v []int) *LearnerUpdateOne {
	_u.mutation.SetStudyDays(v)
	return _u
}

// AppendStudyDays appends value to the "study_days" field.
func (_u *LearnerUpdateOne) AppendStudyDays(v []int) *LearnerUpdateOne {
	_u.mutation.AppendStudyDays(v)
	return _u
}

// ClearStudyDays clears the value of the "study_days" field.
func (_u *LearnerUpdateOne) ClearStudyDays() *LearnerUpdateOne {
	_u.mutation.ClearStudyDays()
	return _u
}

// SetCompetency sets the "competency" field.
func (_u *LearnerUpdateOne) SetCompetency(v map[string]float64) *LearnerUpdateOne {
	_u.mutation.SetCompetency(v)
	return _u
}

// ClearCompetency clears the value of the "competency" field.
func (_u *LearnerUpdateOne) ClearCompetency() *LearnerUpdateOne {
	_u.mutation.ClearCompetency()
	return _u
}

// SetWeaknesses sets the "weaknesses" field.
func (_u *LearnerUpdateOne) SetWeaknesses(v []schema.WeaknessDoc) *LearnerUpdateOne {
	_u.mutation.SetWeaknesses(v)
	return _u
}

// AppendWeaknesses appends value to the "weaknesses" field.
func (_u *LearnerUpdateOne) AppendWeaknesses(v []schema.WeaknessDoc) *LearnerUpdateOne {
	_u.mutation.AppendWeaknesses(v)
	return _u
}

// ClearWeaknesses clears the value of the "weaknesses" field.
func (_u *LearnerUpdateOne) ClearWeaknesses() *LearnerUpdateOne {
	_u.mutation.ClearWeaknesses()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerUpdateOne) SetUpdatedAt(v time.Time) *LearnerUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerMutation object of the builder.
func (_u *LearnerUpdateOne) Mutation() *LearnerMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerUpdate builder.
func (_u *LearnerUpdateOne) Where(ps ...predicate.Learner) *LearnerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerUpdateOne) Select(field string, fields ...string) *LearnerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Learner entity.
func (_u *LearnerUpdateOne) Save(ctx context.Context) (*Learner, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerUpdateOne) SaveX(ctx context.Context) *Learner {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learner.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearnerUpdateOne) check() error {
	if v, ok := _u.mutation.LearnerID(); ok {
		if err := learner.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Learner.learner_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearnerUpdateOne) sqlSave(ctx context.Context) (_node *Learner, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learner.Table, learner.Columns, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Learner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learner.FieldID)
		for _, f := range fields {
			if !learner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learner.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(learner.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(learner.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TargetScore(); ok {
		_spec.SetField(learner.FieldTargetScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetScore(); ok {
		_spec.AddField(learner.FieldTargetScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DailyMinutes(); ok {
		_spec.SetField(learner.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDailyMinutes(); ok {
		_spec.AddField(learner.FieldDailyMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StudyDays(); ok {
		_spec.SetField(learner.FieldStudyDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedStudyDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learner.FieldStudyDays, value)
		})
	}
	if _u.mutation.StudyDaysCleared() {
		_spec.ClearField(learner.FieldStudyDays, field.TypeJSON)
	}
	if value, ok := _u.mutation.Competency(); ok {
		_spec.SetField(learner.FieldCompetency, field.TypeJSON, value)
	}
	if _u.mutation.CompetencyCleared() {
		_spec.ClearField(learner.FieldCompetency, field.TypeJSON)
	}
	if value, ok := _u.mutation.Weaknesses(); ok {
		_spec.SetField(learner.FieldWeaknesses, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedWeaknesses(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, learner.FieldWeaknesses, value)
		})
	}
	if _u.mutation.WeaknessesCleared() {
		_spec.ClearField(learner.FieldWeaknesses, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learner.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Learner{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
