// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepmap/ent/learner"
	"github.com/abhisek/prepmap/ent/schema"
)

// LearnerCreate is the builder for creating a Learner entity.
type LearnerCreate struct {
	config
	mutation *LearnerMutation
	hooks    []Hook
}

// SetLearnerID sets the "learner_id" field.
func (_c *LearnerCreate) SetLearnerID(v string) *LearnerCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *LearnerCreate) SetName(v string) *LearnerCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableName(v *string) *LearnerCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetTargetScore sets the "target_score" field.
func (_c *LearnerCreate) SetTargetScore(v float64) *LearnerCreate {
	_c.mutation.SetTargetScore(v)
	return _c
}

// SetNillableTargetScore sets the "target_score" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableTargetScore(v *float64) *LearnerCreate {
	if v != nil {
		_c.SetTargetScore(*v)
	}
	return _c
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_c *LearnerCreate) SetDailyMinutes(v int) *LearnerCreate {
	_c.mutation.SetDailyMinutes(v)
	return _c
}

// SetNillableDailyMinutes sets the "daily_minutes" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableDailyMinutes(v *int) *LearnerCreate {
	if v != nil {
		_c.SetDailyMinutes(*v)
	}
	return _c
}

// SetStudyDays sets the "study_days" field.
func (_c *LearnerCreate) SetStudyDays(v []int) *LearnerCreate {
	_c.mutation.SetStudyDays(v)
	return _c
}

// SetCompetency sets the "competency" field.
func (_c *LearnerCreate) SetCompetency(v map[string]float64) *LearnerCreate {
	_c.mutation.SetCompetency(v)
	return _c
}

// SetWeaknesses sets the "weaknesses" field.
func (_c *LearnerCreate) SetWeaknesses(v []schema.WeaknessDoc) *LearnerCreate {
	_c.mutation.SetWeaknesses(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearnerCreate) SetUpdatedAt(v time.Time) *LearnerCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearnerCreate) SetNillableUpdatedAt(v *time.Time) *LearnerCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LearnerMutation object of the builder.
func (_c *LearnerCreate) Mutation() *LearnerMutation {
	return _c.mutation
}

// Save creates the Learner in the database.
func (_c *LearnerCreate) Save(ctx context.Context) (*Learner, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerCreate) SaveX(ctx context.Context) *Learner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerCreate) defaults() {
	if _, ok := _c.mutation.Name(); !ok {
		v := learner.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.TargetScore(); !ok {
		v := learner.DefaultTargetScore
		_c.mutation.SetTargetScore(v)
	}
	if _, ok := _c.mutation.DailyMinutes(); !ok {
		v := learner.DefaultDailyMinutes
		_c.mutation.SetDailyMinutes(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learner.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerCreate) check() error {
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Learner.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := learner.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Learner.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Learner.name"`)}
	}
	if _, ok := _c.mutation.TargetScore(); !ok {
		return &ValidationError{Name: "target_score", err: errors.New(`ent: missing required field "Learner.target_score"`)}
	}
	if _, ok := _c.mutation.DailyMinutes(); !ok {
		return &ValidationError{Name: "daily_minutes", err: errors.New(`ent: missing required field "Learner.daily_minutes"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Learner.updated_at"`)}
	}
	return nil
}

func (_c *LearnerCreate) sqlSave(ctx context.Context) (*Learner, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LearnerCreate) createSpec() (*Learner, *sqlgraph.CreateSpec) {
	var (
		_node = &Learner{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learner.Table, sqlgraph.NewFieldSpec(learner.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(learner.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(learner.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.TargetScore(); ok {
		_spec.SetField(learner.FieldTargetScore, field.TypeFloat64, value)
		_node.TargetScore = value
	}
	if value, ok := _c.mutation.DailyMinutes(); ok {
		_spec.SetField(learner.FieldDailyMinutes, field.TypeInt, value)
		_node.DailyMinutes = value
	}
	if value, ok := _c.mutation.StudyDays(); ok {
		_spec.SetField(learner.FieldStudyDays, field.TypeJSON, value)
		_node.StudyDays = value
	}
	if value, ok := _c.mutation.Competency(); ok {
		_spec.SetField(learner.FieldCompetency, field.TypeJSON, value)
		_node.Competency = value
	}
	if value, ok := _c.mutation.Weaknesses(); ok {
		_spec.SetField(learner.FieldWeaknesses, field.TypeJSON, value)
		_node.Weaknesses = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learner.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LearnerCreateBulk is the builder for creating many Learner entities in bulk.
type LearnerCreateBulk struct {
	config
	err      error
	builders []*LearnerCreate
}

// Save creates the Learner entities in the database.
func (_c *LearnerCreateBulk) Save(ctx context.Context) ([]*Learner, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Learner, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LearnerCreateBulk) SaveX(ctx context.Context) []*Learner {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
