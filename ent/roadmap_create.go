// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepmap/ent/roadmap"
	"github.com/abhisek/prepmap/ent/schema"
)

// RoadmapCreate is the builder for creating a Roadmap entity.
type RoadmapCreate struct {
	config
	mutation *RoadmapMutation
	hooks    []Hook
}

// SetRoadmapID sets the "roadmap_id" field.
func (_c *RoadmapCreate) SetRoadmapID(v string) *RoadmapCreate {
	_c.mutation.SetRoadmapID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *RoadmapCreate) SetLearnerID(v string) *RoadmapCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetGoal sets the "goal" field.
func (_c *RoadmapCreate) SetGoal(v string) *RoadmapCreate {
	_c.mutation.SetGoal(v)
	return _c
}

// SetNillableGoal sets the "goal" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableGoal(v *string) *RoadmapCreate {
	if v != nil {
		_c.SetGoal(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *RoadmapCreate) SetStatus(v string) *RoadmapCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableStatus(v *string) *RoadmapCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *RoadmapCreate) SetStartDate(v time.Time) *RoadmapCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetTotalWeeks sets the "total_weeks" field.
func (_c *RoadmapCreate) SetTotalWeeks(v int) *RoadmapCreate {
	_c.mutation.SetTotalWeeks(v)
	return _c
}

// SetStudyDaysPerWeek sets the "study_days_per_week" field.
func (_c *RoadmapCreate) SetStudyDaysPerWeek(v int) *RoadmapCreate {
	_c.mutation.SetStudyDaysPerWeek(v)
	return _c
}

// SetDailyMinutes sets the "daily_minutes" field.
func (_c *RoadmapCreate) SetDailyMinutes(v int) *RoadmapCreate {
	_c.mutation.SetDailyMinutes(v)
	return _c
}

// SetLearningStrategy sets the "learning_strategy" field.
func (_c *RoadmapCreate) SetLearningStrategy(v string) *RoadmapCreate {
	_c.mutation.SetLearningStrategy(v)
	return _c
}

// SetNillableLearningStrategy sets the "learning_strategy" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableLearningStrategy(v *string) *RoadmapCreate {
	if v != nil {
		_c.SetLearningStrategy(*v)
	}
	return _c
}

// SetActiveWeek sets the "active_week" field.
func (_c *RoadmapCreate) SetActiveWeek(v int) *RoadmapCreate {
	_c.mutation.SetActiveWeek(v)
	return _c
}

// SetNillableActiveWeek sets the "active_week" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableActiveWeek(v *int) *RoadmapCreate {
	if v != nil {
		_c.SetActiveWeek(*v)
	}
	return _c
}

// SetSessionsCompleted sets the "sessions_completed" field.
func (_c *RoadmapCreate) SetSessionsCompleted(v int) *RoadmapCreate {
	_c.mutation.SetSessionsCompleted(v)
	return _c
}

// SetNillableSessionsCompleted sets the "sessions_completed" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableSessionsCompleted(v *int) *RoadmapCreate {
	if v != nil {
		_c.SetSessionsCompleted(*v)
	}
	return _c
}

// SetTotalSessions sets the "total_sessions" field.
func (_c *RoadmapCreate) SetTotalSessions(v int) *RoadmapCreate {
	_c.mutation.SetTotalSessions(v)
	return _c
}

// SetNillableTotalSessions sets the "total_sessions" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableTotalSessions(v *int) *RoadmapCreate {
	if v != nil {
		_c.SetTotalSessions(*v)
	}
	return _c
}

// SetOverallProgress sets the "overall_progress" field.
func (_c *RoadmapCreate) SetOverallProgress(v int) *RoadmapCreate {
	_c.mutation.SetOverallProgress(v)
	return _c
}

// SetNillableOverallProgress sets the "overall_progress" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableOverallProgress(v *int) *RoadmapCreate {
	if v != nil {
		_c.SetOverallProgress(*v)
	}
	return _c
}

// SetWeeks sets the "weeks" field.
func (_c *RoadmapCreate) SetWeeks(v []schema.WeekDoc) *RoadmapCreate {
	_c.mutation.SetWeeks(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *RoadmapCreate) SetVersion(v int64) *RoadmapCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableVersion(v *int64) *RoadmapCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoadmapCreate) SetCreatedAt(v time.Time) *RoadmapCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableCreatedAt(v *time.Time) *RoadmapCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RoadmapCreate) SetUpdatedAt(v time.Time) *RoadmapCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableUpdatedAt(v *time.Time) *RoadmapCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the RoadmapMutation object of the builder.
func (_c *RoadmapCreate) Mutation() *RoadmapMutation {
	return _c.mutation
}

// Save creates the Roadmap in the database.
func (_c *RoadmapCreate) Save(ctx context.Context) (*Roadmap, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoadmapCreate) SaveX(ctx context.Context) *Roadmap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoadmapCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoadmapCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoadmapCreate) defaults() {
	if _, ok := _c.mutation.Goal(); !ok {
		v := roadmap.DefaultGoal
		_c.mutation.SetGoal(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := roadmap.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LearningStrategy(); !ok {
		v := roadmap.DefaultLearningStrategy
		_c.mutation.SetLearningStrategy(v)
	}
	if _, ok := _c.mutation.ActiveWeek(); !ok {
		v := roadmap.DefaultActiveWeek
		_c.mutation.SetActiveWeek(v)
	}
	if _, ok := _c.mutation.SessionsCompleted(); !ok {
		v := roadmap.DefaultSessionsCompleted
		_c.mutation.SetSessionsCompleted(v)
	}
	if _, ok := _c.mutation.TotalSessions(); !ok {
		v := roadmap.DefaultTotalSessions
		_c.mutation.SetTotalSessions(v)
	}
	if _, ok := _c.mutation.OverallProgress(); !ok {
		v := roadmap.DefaultOverallProgress
		_c.mutation.SetOverallProgress(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := roadmap.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := roadmap.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := roadmap.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoadmapCreate) check() error {
	if _, ok := _c.mutation.RoadmapID(); !ok {
		return &ValidationError{Name: "roadmap_id", err: errors.New(`ent: missing required field "Roadmap.roadmap_id"`)}
	}
	if v, ok := _c.mutation.RoadmapID(); ok {
		if err := roadmap.RoadmapIDValidator(v); err != nil {
			return &ValidationError{Name: "roadmap_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.roadmap_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "Roadmap.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := roadmap.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Goal(); !ok {
		return &ValidationError{Name: "goal", err: errors.New(`ent: missing required field "Roadmap.goal"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Roadmap.status"`)}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "Roadmap.start_date"`)}
	}
	if _, ok := _c.mutation.TotalWeeks(); !ok {
		return &ValidationError{Name: "total_weeks", err: errors.New(`ent: missing required field "Roadmap.total_weeks"`)}
	}
	if _, ok := _c.mutation.StudyDaysPerWeek(); !ok {
		return &ValidationError{Name: "study_days_per_week", err: errors.New(`ent: missing required field "Roadmap.study_days_per_week"`)}
	}
	if _, ok := _c.mutation.DailyMinutes(); !ok {
		return &ValidationError{Name: "daily_minutes", err: errors.New(`ent: missing required field "Roadmap.daily_minutes"`)}
	}
	if _, ok := _c.mutation.LearningStrategy(); !ok {
		return &ValidationError{Name: "learning_strategy", err: errors.New(`ent: missing required field "Roadmap.learning_strategy"`)}
	}
	if _, ok := _c.mutation.ActiveWeek(); !ok {
		return &ValidationError{Name: "active_week", err: errors.New(`ent: missing required field "Roadmap.active_week"`)}
	}
	if _, ok := _c.mutation.SessionsCompleted(); !ok {
		return &ValidationError{Name: "sessions_completed", err: errors.New(`ent: missing required field "Roadmap.sessions_completed"`)}
	}
	if _, ok := _c.mutation.TotalSessions(); !ok {
		return &ValidationError{Name: "total_sessions", err: errors.New(`ent: missing required field "Roadmap.total_sessions"`)}
	}
	if _, ok := _c.mutation.OverallProgress(); !ok {
		return &ValidationError{Name: "overall_progress", err: errors.New(`ent: missing required field "Roadmap.overall_progress"`)}
	}
	if _, ok := _c.mutation.Weeks(); !ok {
		return &ValidationError{Name: "weeks", err: errors.New(`ent: missing required field "Roadmap.weeks"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Roadmap.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Roadmap.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Roadmap.updated_at"`)}
	}
	return nil
}

func (_c *RoadmapCreate) sqlSave(ctx context.Context) (*Roadmap, error) {
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

func (_c *RoadmapCreate) createSpec() (*Roadmap, *sqlgraph.CreateSpec) {
	var (
		_node = &Roadmap{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roadmap.Table, sqlgraph.NewFieldSpec(roadmap.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RoadmapID(); ok {
		_spec.SetField(roadmap.FieldRoadmapID, field.TypeString, value)
		_node.RoadmapID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(roadmap.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Goal(); ok {
		_spec.SetField(roadmap.FieldGoal, field.TypeString, value)
		_node.Goal = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(roadmap.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(roadmap.FieldStartDate, field.TypeTime, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.TotalWeeks(); ok {
		_spec.SetField(roadmap.FieldTotalWeeks, field.TypeInt, value)
		_node.TotalWeeks = value
	}
	if value, ok := _c.mutation.StudyDaysPerWeek(); ok {
		_spec.SetField(roadmap.FieldStudyDaysPerWeek, field.TypeInt, value)
		_node.StudyDaysPerWeek = value
	}
	if value, ok := _c.mutation.DailyMinutes(); ok {
		_spec.SetField(roadmap.FieldDailyMinutes, field.TypeInt, value)
		_node.DailyMinutes = value
	}
	if value, ok := _c.mutation.LearningStrategy(); ok {
		_spec.SetField(roadmap.FieldLearningStrategy, field.TypeString, value)
		_node.LearningStrategy = value
	}
	if value, ok := _c.mutation.ActiveWeek(); ok {
		_spec.SetField(roadmap.FieldActiveWeek, field.TypeInt, value)
		_node.ActiveWeek = value
	}
	if value, ok := _c.mutation.SessionsCompleted(); ok {
		_spec.SetField(roadmap.FieldSessionsCompleted, field.TypeInt, value)
		_node.SessionsCompleted = value
	}
	if value, ok := _c.mutation.TotalSessions(); ok {
		_spec.SetField(roadmap.FieldTotalSessions, field.TypeInt, value)
		_node.TotalSessions = value
	}
	if value, ok := _c.mutation.OverallProgress(); ok {
		_spec.SetField(roadmap.FieldOverallProgress, field.TypeInt, value)
		_node.OverallProgress = value
	}
	if value, ok := _c.mutation.Weeks(); ok {
		_spec.SetField(roadmap.FieldWeeks, field.TypeJSON, value)
		_node.Weeks = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(roadmap.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(roadmap.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(roadmap.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// RoadmapCreateBulk is the builder for creating many Roadmap entities in bulk.
type RoadmapCreateBulk struct {
	config
	err      error
	builders []*RoadmapCreate
}

// Save creates the Roadmap entities in the database.
func (_c *RoadmapCreateBulk) Save(ctx context.Context) ([]*Roadmap, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Roadmap, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoadmapMutation)
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
func (_c *RoadmapCreateBulk) SaveX(ctx context.Context) []*Roadmap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoadmapCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoadmapCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
