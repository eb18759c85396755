// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/prepmap/ent/schema"
	"github.com/abhisek/prepmap/ent/studysession"
)

// StudySessionCreate is the builder for creating a StudySession entity.
type StudySessionCreate struct {
	config
	mutation *StudySessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *StudySessionCreate) SetSessionID(v string) *StudySessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetLearnerID sets the "learner_id" field.
func (_c *StudySessionCreate) SetLearnerID(v string) *StudySessionCreate {
	_c.mutation.SetLearnerID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *StudySessionCreate) SetDate(v time.Time) *StudySessionCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetRoadmapID sets the "roadmap_id" field.
func (_c *StudySessionCreate) SetRoadmapID(v string) *StudySessionCreate {
	_c.mutation.SetRoadmapID(v)
	return _c
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableRoadmapID(v *string) *StudySessionCreate {
	if v != nil {
		_c.SetRoadmapID(*v)
	}
	return _c
}

// SetWeekNumber sets the "week_number" field.
func (_c *StudySessionCreate) SetWeekNumber(v int) *StudySessionCreate {
	_c.mutation.SetWeekNumber(v)
	return _c
}

// SetNillableWeekNumber sets the "week_number" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableWeekNumber(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetWeekNumber(*v)
	}
	return _c
}

// SetDayNumber sets the "day_number" field.
func (_c *StudySessionCreate) SetDayNumber(v int) *StudySessionCreate {
	_c.mutation.SetDayNumber(v)
	return _c
}

// SetNillableDayNumber sets the "day_number" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableDayNumber(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetDayNumber(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *StudySessionCreate) SetTitle(v string) *StudySessionCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableTitle(v *string) *StudySessionCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetTargetSkills sets the "target_skills" field.
func (_c *StudySessionCreate) SetTargetSkills(v []string) *StudySessionCreate {
	_c.mutation.SetTargetSkills(v)
	return _c
}

// SetItems sets the "items" field.
func (_c *StudySessionCreate) SetItems(v []schema.ItemDoc) *StudySessionCreate {
	_c.mutation.SetItems(v)
	return _c
}

// SetProgress sets the "progress" field.
func (_c *StudySessionCreate) SetProgress(v int) *StudySessionCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableProgress(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *StudySessionCreate) SetStatus(v string) *StudySessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableStatus(v *string) *StudySessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *StudySessionCreate) SetStartedAt(v time.Time) *StudySessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableStartedAt(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *StudySessionCreate) SetCompletedAt(v time.Time) *StudySessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableCompletedAt(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetTotalTimeSpent sets the "total_time_spent" field.
func (_c *StudySessionCreate) SetTotalTimeSpent(v int) *StudySessionCreate {
	_c.mutation.SetTotalTimeSpent(v)
	return _c
}

// SetNillableTotalTimeSpent sets the "total_time_spent" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableTotalTimeSpent(v *int) *StudySessionCreate {
	if v != nil {
		_c.SetTotalTimeSpent(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *StudySessionCreate) SetVersion(v int64) *StudySessionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableVersion(v *int64) *StudySessionCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudySessionCreate) SetCreatedAt(v time.Time) *StudySessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudySessionCreate) SetNillableCreatedAt(v *time.Time) *StudySessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the StudySessionMutation object of the builder.
func (_c *StudySessionCreate) Mutation() *StudySessionMutation {
	return _c.mutation
}

// Save creates the StudySession in the database.
func (_c *StudySessionCreate) Save(ctx context.Context) (*StudySession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudySessionCreate) SaveX(ctx context.Context) *StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudySessionCreate) defaults() {
	if _, ok := _c.mutation.RoadmapID(); !ok {
		v := studysession.DefaultRoadmapID
		_c.mutation.SetRoadmapID(v)
	}
	if _, ok := _c.mutation.WeekNumber(); !ok {
		v := studysession.DefaultWeekNumber
		_c.mutation.SetWeekNumber(v)
	}
	if _, ok := _c.mutation.DayNumber(); !ok {
		v := studysession.DefaultDayNumber
		_c.mutation.SetDayNumber(v)
	}
	if _, ok := _c.mutation.Title(); !ok {
		v := studysession.DefaultTitle
		_c.mutation.SetTitle(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := studysession.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := studysession.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalTimeSpent(); !ok {
		v := studysession.DefaultTotalTimeSpent
		_c.mutation.SetTotalTimeSpent(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := studysession.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studysession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudySessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "StudySession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := studysession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "StudySession.learner_id"`)}
	}
	if v, ok := _c.mutation.LearnerID(); ok {
		if err := studysession.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "StudySession.learner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "StudySession.date"`)}
	}
	if _, ok := _c.mutation.RoadmapID(); !ok {
		return &ValidationError{Name: "roadmap_id", err: errors.New(`ent: missing required field "StudySession.roadmap_id"`)}
	}
	if _, ok := _c.mutation.WeekNumber(); !ok {
		return &ValidationError{Name: "week_number", err: errors.New(`ent: missing required field "StudySession.week_number"`)}
	}
	if _, ok := _c.mutation.DayNumber(); !ok {
		return &ValidationError{Name: "day_number", err: errors.New(`ent: missing required field "StudySession.day_number"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "StudySession.title"`)}
	}
	if _, ok := _c.mutation.Items(); !ok {
		return &ValidationError{Name: "items", err: errors.New(`ent: missing required field "StudySession.items"`)}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "StudySession.progress"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "StudySession.status"`)}
	}
	if _, ok := _c.mutation.TotalTimeSpent(); !ok {
		return &ValidationError{Name: "total_time_spent", err: errors.New(`ent: missing required field "StudySession.total_time_spent"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "StudySession.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StudySession.created_at"`)}
	}
	return nil
}

func (_c *StudySessionCreate) sqlSave(ctx context.Context) (*StudySession, error) {
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

func (_c *StudySessionCreate) createSpec() (*StudySession, *sqlgraph.CreateSpec) {
	var (
		_node = &StudySession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studysession.Table, sqlgraph.NewFieldSpec(studysession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(studysession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.LearnerID(); ok {
		_spec.SetField(studysession.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(studysession.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.RoadmapID(); ok {
		_spec.SetField(studysession.FieldRoadmapID, field.TypeString, value)
		_node.RoadmapID = value
	}
	if value, ok := _c.mutation.WeekNumber(); ok {
		_spec.SetField(studysession.FieldWeekNumber, field.TypeInt, value)
		_node.WeekNumber = value
	}
	if value, ok := _c.mutation.DayNumber(); ok {
		_spec.SetField(studysession.FieldDayNumber, field.TypeInt, value)
		_node.DayNumber = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(studysession.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.TargetSkills(); ok {
		_spec.SetField(studysession.FieldTargetSkills, field.TypeJSON, value)
		_node.TargetSkills = value
	}
	if value, ok := _c.mutation.Items(); ok {
		_spec.SetField(studysession.FieldItems, field.TypeJSON, value)
		_node.Items = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(studysession.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(studysession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(studysession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(studysession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.TotalTimeSpent(); ok {
		_spec.SetField(studysession.FieldTotalTimeSpent, field.TypeInt, value)
		_node.TotalTimeSpent = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(studysession.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studysession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// StudySessionCreateBulk is the builder for creating many StudySession entities in bulk.
type StudySessionCreateBulk struct {
	config
	err      error
	builders []*StudySessionCreate
}

// Save creates the StudySession entities in the database.
func (_c *StudySessionCreateBulk) Save(ctx context.Context) ([]*StudySession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudySession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudySessionMutation)
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
func (_c *StudySessionCreateBulk) SaveX(ctx context.Context) []*StudySession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudySessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudySessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
