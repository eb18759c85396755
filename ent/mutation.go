// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/prepmap/ent/generationevent"
	"github.com/abhisek/prepmap/ent/learner"
	"github.com/abhisek/prepmap/ent/predicate"
	"github.com/abhisek/prepmap/ent/roadmap"
	"github.com/abhisek/prepmap/ent/schema"
	"github.com/abhisek/prepmap/ent/studysession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeGenerationEvent = "GenerationEvent"
	TypeLearner         = "Learner"
	TypeRoadmap         = "Roadmap"
	TypeStudySession    = "StudySession"
)

// GenerationEventMutation represents an operation that mutates the GenerationEvent nodes in the graph.
type GenerationEventMutation struct {
	config
	op               Op
	typ              string
	id               *int
	timestamp        *time.Time
	purpose          *string
	provider         *string
	model            *string
	latency_ms       *int64
	addlatency_ms    *int64
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	success          *bool
	error_message    *string
	request_body     *string
	response_body    *string
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*GenerationEvent, error)
	predicates       []predicate.GenerationEvent
}

var _ ent.Mutation = (*GenerationEventMutation)(nil)

// generationeventOption allows management of the mutation configuration using functional options.
type generationeventOption func(*GenerationEventMutation)

// newGenerationEventMutation creates new mutation for the GenerationEvent entity.
func newGenerationEventMutation(c config, op Op, opts ...generationeventOption) *GenerationEventMutation {
	m := &GenerationEventMutation{
		config:        c,
		op:            op,
		typ:           TypeGenerationEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGenerationEventID sets the ID field of the mutation.
func withGenerationEventID(id int) generationeventOption {
	return func(m *GenerationEventMutation) {
		var (
			err   error
			once  sync.Once
			value *GenerationEvent
		)
		m.oldValue = func(ctx context.Context) (*GenerationEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GenerationEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGenerationEvent sets the old GenerationEvent of the mutation.
func withGenerationEvent(node *GenerationEvent) generationeventOption {
	return func(m *GenerationEventMutation) {
		m.oldValue = func(context.Context) (*GenerationEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GenerationEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GenerationEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GenerationEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GenerationEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GenerationEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTimestamp sets the "timestamp" field.
func (m *GenerationEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *GenerationEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *GenerationEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetPurpose sets the "purpose" field.
func (m *GenerationEventMutation) SetPurpose(s string) {
	m.purpose = &s
}

// Purpose returns the value of the "purpose" field in the mutation.
func (m *GenerationEventMutation) Purpose() (r string, exists bool) {
	v := m.purpose
	if v == nil {
		return
	}
	return *v, true
}

// OldPurpose returns the old "purpose" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldPurpose(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurpose is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurpose requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurpose: %w", err)
	}
	return oldValue.Purpose, nil
}

// ResetPurpose resets all changes to the "purpose" field.
func (m *GenerationEventMutation) ResetPurpose() {
	m.purpose = nil
}

// SetProvider sets the "provider" field.
func (m *GenerationEventMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *GenerationEventMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *GenerationEventMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *GenerationEventMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *GenerationEventMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *GenerationEventMutation) ResetModel() {
	m.model = nil
}

// SetLatencyMs sets the "latency_ms" field.
func (m *GenerationEventMutation) SetLatencyMs(i int64) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *GenerationEventMutation) LatencyMs() (r int64, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldLatencyMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *GenerationEventMutation) AddLatencyMs(i int64) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *GenerationEventMutation) AddedLatencyMs() (r int64, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *GenerationEventMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *GenerationEventMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *GenerationEventMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *GenerationEventMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *GenerationEventMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *GenerationEventMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *GenerationEventMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *GenerationEventMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *GenerationEventMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *GenerationEventMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *GenerationEventMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetSuccess sets the "success" field.
func (m *GenerationEventMutation) SetSuccess(b bool) {
	m.success = &b
}

// Success returns the value of the "success" field in the mutation.
func (m *GenerationEventMutation) Success() (r bool, exists bool) {
	v := m.success
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccess returns the old "success" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldSuccess(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccess: %w", err)
	}
	return oldValue.Success, nil
}

// ResetSuccess resets all changes to the "success" field.
func (m *GenerationEventMutation) ResetSuccess() {
	m.success = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *GenerationEventMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *GenerationEventMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *GenerationEventMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetRequestBody sets the "request_body" field.
func (m *GenerationEventMutation) SetRequestBody(s string) {
	m.request_body = &s
}

// RequestBody returns the value of the "request_body" field in the mutation.
func (m *GenerationEventMutation) RequestBody() (r string, exists bool) {
	v := m.request_body
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestBody returns the old "request_body" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldRequestBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestBody: %w", err)
	}
	return oldValue.RequestBody, nil
}

// ResetRequestBody resets all changes to the "request_body" field.
func (m *GenerationEventMutation) ResetRequestBody() {
	m.request_body = nil
}

// SetResponseBody sets the "response_body" field.
func (m *GenerationEventMutation) SetResponseBody(s string) {
	m.response_body = &s
}

// ResponseBody returns the value of the "response_body" field in the mutation.
func (m *GenerationEventMutation) ResponseBody() (r string, exists bool) {
	v := m.response_body
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseBody returns the old "response_body" field's value of the GenerationEvent entity.
// If the GenerationEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GenerationEventMutation) OldResponseBody(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseBody: %w", err)
	}
	return oldValue.ResponseBody, nil
}

// ResetResponseBody resets all changes to the "response_body" field.
func (m *GenerationEventMutation) ResetResponseBody() {
	m.response_body = nil
}

// Where appends a list predicates to the GenerationEventMutation builder.
func (m *GenerationEventMutation) Where(ps ...predicate.GenerationEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GenerationEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GenerationEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GenerationEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GenerationEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GenerationEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GenerationEvent).
func (m *GenerationEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GenerationEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.timestamp != nil {
		fields = append(fields, generationevent.FieldTimestamp)
	}
	if m.purpose != nil {
		fields = append(fields, generationevent.FieldPurpose)
	}
	if m.provider != nil {
		fields = append(fields, generationevent.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, generationevent.FieldModel)
	}
	if m.latency_ms != nil {
		fields = append(fields, generationevent.FieldLatencyMs)
	}
	if m.input_tokens != nil {
		fields = append(fields, generationevent.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, generationevent.FieldOutputTokens)
	}
	if m.success != nil {
		fields = append(fields, generationevent.FieldSuccess)
	}
	if m.error_message != nil {
		fields = append(fields, generationevent.FieldErrorMessage)
	}
	if m.request_body != nil {
		fields = append(fields, generationevent.FieldRequestBody)
	}
	if m.response_body != nil {
		fields = append(fields, generationevent.FieldResponseBody)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GenerationEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case generationevent.FieldTimestamp:
		return m.Timestamp()
	case generationevent.FieldPurpose:
		return m.Purpose()
	case generationevent.FieldProvider:
		return m.Provider()
	case generationevent.FieldModel:
		return m.Model()
	case generationevent.FieldLatencyMs:
		return m.LatencyMs()
	case generationevent.FieldInputTokens:
		return m.InputTokens()
	case generationevent.FieldOutputTokens:
		return m.OutputTokens()
	case generationevent.FieldSuccess:
		return m.Success()
	case generationevent.FieldErrorMessage:
		return m.ErrorMessage()
	case generationevent.FieldRequestBody:
		return m.RequestBody()
	case generationevent.FieldResponseBody:
		return m.ResponseBody()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GenerationEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case generationevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case generationevent.FieldPurpose:
		return m.OldPurpose(ctx)
	case generationevent.FieldProvider:
		return m.OldProvider(ctx)
	case generationevent.FieldModel:
		return m.OldModel(ctx)
	case generationevent.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case generationevent.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case generationevent.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case generationevent.FieldSuccess:
		return m.OldSuccess(ctx)
	case generationevent.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case generationevent.FieldRequestBody:
		return m.OldRequestBody(ctx)
	case generationevent.FieldResponseBody:
		return m.OldResponseBody(ctx)
	}
	return nil, fmt.Errorf("unknown GenerationEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case generationevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case generationevent.FieldPurpose:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurpose(v)
		return nil
	case generationevent.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case generationevent.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case generationevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case generationevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case generationevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case generationevent.FieldSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccess(v)
		return nil
	case generationevent.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case generationevent.FieldRequestBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestBody(v)
		return nil
	case generationevent.FieldResponseBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseBody(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GenerationEventMutation) AddedFields() []string {
	var fields []string
	if m.addlatency_ms != nil {
		fields = append(fields, generationevent.FieldLatencyMs)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, generationevent.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, generationevent.FieldOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GenerationEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case generationevent.FieldLatencyMs:
		return m.AddedLatencyMs()
	case generationevent.FieldInputTokens:
		return m.AddedInputTokens()
	case generationevent.FieldOutputTokens:
		return m.AddedOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GenerationEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case generationevent.FieldLatencyMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case generationevent.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case generationevent.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown GenerationEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GenerationEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GenerationEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GenerationEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown GenerationEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GenerationEventMutation) ResetField(name string) error {
	switch name {
	case generationevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case generationevent.FieldPurpose:
		m.ResetPurpose()
		return nil
	case generationevent.FieldProvider:
		m.ResetProvider()
		return nil
	case generationevent.FieldModel:
		m.ResetModel()
		return nil
	case generationevent.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case generationevent.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case generationevent.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case generationevent.FieldSuccess:
		m.ResetSuccess()
		return nil
	case generationevent.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case generationevent.FieldRequestBody:
		m.ResetRequestBody()
		return nil
	case generationevent.FieldResponseBody:
		m.ResetResponseBody()
		return nil
	}
	return fmt.Errorf("unknown GenerationEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GenerationEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GenerationEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GenerationEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GenerationEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GenerationEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GenerationEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GenerationEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GenerationEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GenerationEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GenerationEvent edge %s", name)
}

// LearnerMutation represents an operation that mutates the Learner nodes in the graph.
type LearnerMutation struct {
	config
	op               Op
	typ              string
	id               *int
	learner_id       *string
	name             *string
	target_score     *float64
	addtarget_score  *float64
	daily_minutes    *int
	adddaily_minutes *int
	study_days       *[]int
	appendstudy_days []int
	competency       *map[string]float64
	weaknesses       *[]schema.WeaknessDoc
	appendweaknesses []schema.WeaknessDoc
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Learner, error)
	predicates       []predicate.Learner
}

var _ ent.Mutation = (*LearnerMutation)(nil)

// learnerOption allows management of the mutation configuration using functional options.
type learnerOption func(*LearnerMutation)

// newLearnerMutation creates new mutation for the Learner entity.
func newLearnerMutation(c config, op Op, opts ...learnerOption) *LearnerMutation {
	m := &LearnerMutation{
		config:        c,
		op:            op,
		typ:           TypeLearner,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerID sets the ID field of the mutation.
func withLearnerID(id int) learnerOption {
	return func(m *LearnerMutation) {
		var (
			err   error
			once  sync.Once
			value *Learner
		)
		m.oldValue = func(ctx context.Context) (*Learner, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Learner.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearner sets the old Learner of the mutation.
func withLearner(node *Learner) learnerOption {
	return func(m *LearnerMutation) {
		m.oldValue = func(context.Context) (*Learner, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Learner.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLearnerID sets the "learner_id" field.
func (m *LearnerMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *LearnerMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *LearnerMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetName sets the "name" field.
func (m *LearnerMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LearnerMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LearnerMutation) ResetName() {
	m.name = nil
}

// SetTargetScore sets the "target_score" field.
func (m *LearnerMutation) SetTargetScore(f float64) {
	m.target_score = &f
	m.addtarget_score = nil
}

// TargetScore returns the value of the "target_score" field in the mutation.
func (m *LearnerMutation) TargetScore() (r float64, exists bool) {
	v := m.target_score
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetScore returns the old "target_score" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldTargetScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetScore: %w", err)
	}
	return oldValue.TargetScore, nil
}

// AddTargetScore adds f to the "target_score" field.
func (m *LearnerMutation) AddTargetScore(f float64) {
	if m.addtarget_score != nil {
		*m.addtarget_score += f
	} else {
		m.addtarget_score = &f
	}
}

// AddedTargetScore returns the value that was added to the "target_score" field in this mutation.
func (m *LearnerMutation) AddedTargetScore() (r float64, exists bool) {
	v := m.addtarget_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetTargetScore resets all changes to the "target_score" field.
func (m *LearnerMutation) ResetTargetScore() {
	m.target_score = nil
	m.addtarget_score = nil
}

// SetDailyMinutes sets the "daily_minutes" field.
func (m *LearnerMutation) SetDailyMinutes(i int) {
	m.daily_minutes = &i
	m.adddaily_minutes = nil
}

// DailyMinutes returns the value of the "daily_minutes" field in the mutation.
func (m *LearnerMutation) DailyMinutes() (r int, exists bool) {
	v := m.daily_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyMinutes returns the old "daily_minutes" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldDailyMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyMinutes: %w", err)
	}
	return oldValue.DailyMinutes, nil
}

// AddDailyMinutes adds i to the "daily_minutes" field.
func (m *LearnerMutation) AddDailyMinutes(i int) {
	if m.adddaily_minutes != nil {
		*m.adddaily_minutes += i
	} else {
		m.adddaily_minutes = &i
	}
}

// AddedDailyMinutes returns the value that was added to the "daily_minutes" field in this mutation.
func (m *LearnerMutation) AddedDailyMinutes() (r int, exists bool) {
	v := m.adddaily_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyMinutes resets all changes to the "daily_minutes" field.
func (m *LearnerMutation) ResetDailyMinutes() {
	m.daily_minutes = nil
	m.adddaily_minutes = nil
}

// SetStudyDays sets the "study_days" field.
func (m *LearnerMutation) SetStudyDays(i []int) {
	m.study_days = &i
	m.appendstudy_days = nil
}

// StudyDays returns the value of the "study_days" field in the mutation.
func (m *LearnerMutation) StudyDays() (r []int, exists bool) {
	v := m.study_days
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyDays returns the old "study_days" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldStudyDays(ctx context.Context) (v []int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyDays: %w", err)
	}
	return oldValue.StudyDays, nil
}

// AppendStudyDays adds i to the "study_days" field.
func (m *LearnerMutation) AppendStudyDays(i []int) {
	m.appendstudy_days = append(m.appendstudy_days, i...)
}

// AppendedStudyDays returns the list of values that were appended to the "study_days" field in this mutation.
func (m *LearnerMutation) AppendedStudyDays() ([]int, bool) {
	if len(m.appendstudy_days) == 0 {
		return nil, false
	}
	return m.appendstudy_days, true
}

// ClearStudyDays clears the value of the "study_days" field.
func (m *LearnerMutation) ClearStudyDays() {
	m.study_days = nil
	m.appendstudy_days = nil
	m.clearedFields[learner.FieldStudyDays] = struct{}{}
}

// StudyDaysCleared returns if the "study_days" field was cleared in this mutation.
func (m *LearnerMutation) StudyDaysCleared() bool {
	_, ok := m.clearedFields[learner.FieldStudyDays]
	return ok
}

// ResetStudyDays resets all changes to the "study_days" field.
func (m *LearnerMutation) ResetStudyDays() {
	m.study_days = nil
	m.appendstudy_days = nil
	delete(m.clearedFields, learner.FieldStudyDays)
}

// SetCompetency sets the "competency" field.
func (m *LearnerMutation) SetCompetency(value map[string]float64) {
	m.competency = &value
}

// Competency returns the value of the "competency" field in the mutation.
func (m *LearnerMutation) Competency() (r map[string]float64, exists bool) {
	v := m.competency
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetency returns the old "competency" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldCompetency(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetency: %w", err)
	}
	return oldValue.Competency, nil
}

// ClearCompetency clears the value of the "competency" field.
func (m *LearnerMutation) ClearCompetency() {
	m.competency = nil
	m.clearedFields[learner.FieldCompetency] = struct{}{}
}

// CompetencyCleared returns if the "competency" field was cleared in this mutation.
func (m *LearnerMutation) CompetencyCleared() bool {
	_, ok := m.clearedFields[learner.FieldCompetency]
	return ok
}

// ResetCompetency resets all changes to the "competency" field.
func (m *LearnerMutation) ResetCompetency() {
	m.competency = nil
	delete(m.clearedFields, learner.FieldCompetency)
}

// SetWeaknesses sets the "weaknesses" field.
func (m *LearnerMutation) SetWeaknesses(sd []schema.WeaknessDoc) {
	m.weaknesses = &sd
	m.appendweaknesses = nil
}

// Weaknesses returns the value of the "weaknesses" field in the mutation.
func (m *LearnerMutation) Weaknesses() (r []schema.WeaknessDoc, exists bool) {
	v := m.weaknesses
	if v == nil {
		return
	}
	return *v, true
}

// OldWeaknesses returns the old "weaknesses" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldWeaknesses(ctx context.Context) (v []schema.WeaknessDoc, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeaknesses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeaknesses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeaknesses: %w", err)
	}
	return oldValue.Weaknesses, nil
}

// AppendWeaknesses adds sd to the "weaknesses" field.
func (m *LearnerMutation) AppendWeaknesses(sd []schema.WeaknessDoc) {
	m.appendweaknesses = append(m.appendweaknesses, sd...)
}

// AppendedWeaknesses returns the list of values that were appended to the "weaknesses" field in this mutation.
func (m *LearnerMutation) AppendedWeaknesses() ([]schema.WeaknessDoc, bool) {
	if len(m.appendweaknesses) == 0 {
		return nil, false
	}
	return m.appendweaknesses, true
}

// ClearWeaknesses clears the value of the "weaknesses" field.
func (m *LearnerMutation) ClearWeaknesses() {
	m.weaknesses = nil
	m.appendweaknesses = nil
	m.clearedFields[learner.FieldWeaknesses] = struct{}{}
}

// WeaknessesCleared returns if the "weaknesses" field was cleared in this mutation.
func (m *LearnerMutation) WeaknessesCleared() bool {
	_, ok := m.clearedFields[learner.FieldWeaknesses]
	return ok
}

// ResetWeaknesses resets all changes to the "weaknesses" field.
func (m *LearnerMutation) ResetWeaknesses() {
	m.weaknesses = nil
	m.appendweaknesses = nil
	delete(m.clearedFields, learner.FieldWeaknesses)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearnerMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearnerMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Learner entity.
// If the Learner object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LearnerMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearnerMutation builder.
func (m *LearnerMutation) Where(ps ...predicate.Learner) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Learner, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Learner).
func (m *LearnerMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.learner_id != nil {
		fields = append(fields, learner.FieldLearnerID)
	}
	if m.name != nil {
		fields = append(fields, learner.FieldName)
	}
	if m.target_score != nil {
		fields = append(fields, learner.FieldTargetScore)
	}
	if m.daily_minutes != nil {
		fields = append(fields, learner.FieldDailyMinutes)
	}
	if m.study_days != nil {
		fields = append(fields, learner.FieldStudyDays)
	}
	if m.competency != nil {
		fields = append(fields, learner.FieldCompetency)
	}
	if m.weaknesses != nil {
		fields = append(fields, learner.FieldWeaknesses)
	}
	if m.updated_at != nil {
		fields = append(fields, learner.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learner.FieldLearnerID:
		return m.LearnerID()
	case learner.FieldName:
		return m.Name()
	case learner.FieldTargetScore:
		return m.TargetScore()
	case learner.FieldDailyMinutes:
		return m.DailyMinutes()
	case learner.FieldStudyDays:
		return m.StudyDays()
	case learner.FieldCompetency:
		return m.Competency()
	case learner.FieldWeaknesses:
		return m.Weaknesses()
	case learner.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learner.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case learner.FieldName:
		return m.OldName(ctx)
	case learner.FieldTargetScore:
		return m.OldTargetScore(ctx)
	case learner.FieldDailyMinutes:
		return m.OldDailyMinutes(ctx)
	case learner.FieldStudyDays:
		return m.OldStudyDays(ctx)
	case learner.FieldCompetency:
		return m.OldCompetency(ctx)
	case learner.FieldWeaknesses:
		return m.OldWeaknesses(ctx)
	case learner.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Learner field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learner.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case learner.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case learner.FieldTargetScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetScore(v)
		return nil
	case learner.FieldDailyMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyMinutes(v)
		return nil
	case learner.FieldStudyDays:
		v, ok := value.([]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyDays(v)
		return nil
	case learner.FieldCompetency:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetency(v)
		return nil
	case learner.FieldWeaknesses:
		v, ok := value.([]schema.WeaknessDoc)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeaknesses(v)
		return nil
	case learner.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Learner field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerMutation) AddedFields() []string {
	var fields []string
	if m.addtarget_score != nil {
		fields = append(fields, learner.FieldTargetScore)
	}
	if m.adddaily_minutes != nil {
		fields = append(fields, learner.FieldDailyMinutes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learner.FieldTargetScore:
		return m.AddedTargetScore()
	case learner.FieldDailyMinutes:
		return m.AddedDailyMinutes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learner.FieldTargetScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTargetScore(v)
		return nil
	case learner.FieldDailyMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyMinutes(v)
		return nil
	}
	return fmt.Errorf("unknown Learner numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learner.FieldStudyDays) {
		fields = append(fields, learner.FieldStudyDays)
	}
	if m.FieldCleared(learner.FieldCompetency) {
		fields = append(fields, learner.FieldCompetency)
	}
	if m.FieldCleared(learner.FieldWeaknesses) {
		fields = append(fields, learner.FieldWeaknesses)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerMutation) ClearField(name string) error {
	switch name {
	case learner.FieldStudyDays:
		m.ClearStudyDays()
		return nil
	case learner.FieldCompetency:
		m.ClearCompetency()
		return nil
	case learner.FieldWeaknesses:
		m.ClearWeaknesses()
		return nil
	}
	return fmt.Errorf("unknown Learner nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerMutation) ResetField(name string) error {
	switch name {
	case learner.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case learner.FieldName:
		m.ResetName()
		return nil
	case learner.FieldTargetScore:
		m.ResetTargetScore()
		return nil
	case learner.FieldDailyMinutes:
		m.ResetDailyMinutes()
		return nil
	case learner.FieldStudyDays:
		m.ResetStudyDays()
		return nil
	case learner.FieldCompetency:
		m.ResetCompetency()
		return nil
	case learner.FieldWeaknesses:
		m.ResetWeaknesses()
		return nil
	case learner.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Learner field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Learner unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Learner edge %s", name)
}

// RoadmapMutation represents an operation that mutates the Roadmap nodes in the graph.
type RoadmapMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	roadmap_id             *string
	learner_id             *string
	goal                   *string
	status                 *string
	start_date             *time.Time
	total_weeks            *int
	addtotal_weeks         *int
	study_days_per_week    *int
	addstudy_days_per_week *int
	daily_minutes          *int
	adddaily_minutes       *int
	learning_strategy      *string
	active_week            *int
	addactive_week         *int
	sessions_completed     *int
	addsessions_completed  *int
	total_sessions         *int
	addtotal_sessions      *int
	overall_progress       *int
	addoverall_progress    *int
	weeks                  *[]schema.WeekDoc
	appendweeks            []schema.WeekDoc
	version                *int64
	addversion             *int64
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Roadmap, error)
	predicates             []predicate.Roadmap
}

var _ ent.Mutation = (*RoadmapMutation)(nil)

// roadmapOption allows management of the mutation configuration using functional options.
type roadmapOption func(*RoadmapMutation)

// newRoadmapMutation creates new mutation for the Roadmap entity.
func newRoadmapMutation(c config, op Op, opts ...roadmapOption) *RoadmapMutation {
	m := &RoadmapMutation{
		config:        c,
		op:            op,
		typ:           TypeRoadmap,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoadmapID sets the ID field of the mutation.
func withRoadmapID(id int) roadmapOption {
	return func(m *RoadmapMutation) {
		var (
			err   error
			once  sync.Once
			value *Roadmap
		)
		m.oldValue = func(ctx context.Context) (*Roadmap, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Roadmap.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoadmap sets the old Roadmap of the mutation.
func withRoadmap(node *Roadmap) roadmapOption {
	return func(m *RoadmapMutation) {
		m.oldValue = func(context.Context) (*Roadmap, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoadmapMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoadmapMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoadmapMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoadmapMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Roadmap.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRoadmapID sets the "roadmap_id" field.
func (m *RoadmapMutation) SetRoadmapID(s string) {
	m.roadmap_id = &s
}

// RoadmapID returns the value of the "roadmap_id" field in the mutation.
func (m *RoadmapMutation) RoadmapID() (r string, exists bool) {
	v := m.roadmap_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoadmapID returns the old "roadmap_id" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldRoadmapID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoadmapID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoadmapID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoadmapID: %w", err)
	}
	return oldValue.RoadmapID, nil
}

// ResetRoadmapID resets all changes to the "roadmap_id" field.
func (m *RoadmapMutation) ResetRoadmapID() {
	m.roadmap_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *RoadmapMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *RoadmapMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *RoadmapMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetGoal sets the "goal" field.
func (m *RoadmapMutation) SetGoal(s string) {
	m.goal = &s
}

// Goal returns the value of the "goal" field in the mutation.
func (m *RoadmapMutation) Goal() (r string, exists bool) {
	v := m.goal
	if v == nil {
		return
	}
	return *v, true
}

// OldGoal returns the old "goal" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldGoal(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoal: %w", err)
	}
	return oldValue.Goal, nil
}

// ResetGoal resets all changes to the "goal" field.
func (m *RoadmapMutation) ResetGoal() {
	m.goal = nil
}

// SetStatus sets the "status" field.
func (m *RoadmapMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *RoadmapMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *RoadmapMutation) ResetStatus() {
	m.status = nil
}

// SetStartDate sets the "start_date" field.
func (m *RoadmapMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *RoadmapMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldStartDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *RoadmapMutation) ResetStartDate() {
	m.start_date = nil
}

// SetTotalWeeks sets the "total_weeks" field.
func (m *RoadmapMutation) SetTotalWeeks(i int) {
	m.total_weeks = &i
	m.addtotal_weeks = nil
}

// TotalWeeks returns the value of the "total_weeks" field in the mutation.
func (m *RoadmapMutation) TotalWeeks() (r int, exists bool) {
	v := m.total_weeks
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalWeeks returns the old "total_weeks" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldTotalWeeks(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalWeeks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalWeeks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalWeeks: %w", err)
	}
	return oldValue.TotalWeeks, nil
}

// AddTotalWeeks adds i to the "total_weeks" field.
func (m *RoadmapMutation) AddTotalWeeks(i int) {
	if m.addtotal_weeks != nil {
		*m.addtotal_weeks += i
	} else {
		m.addtotal_weeks = &i
	}
}

// AddedTotalWeeks returns the value that was added to the "total_weeks" field in this mutation.
func (m *RoadmapMutation) AddedTotalWeeks() (r int, exists bool) {
	v := m.addtotal_weeks
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalWeeks resets all changes to the "total_weeks" field.
func (m *RoadmapMutation) ResetTotalWeeks() {
	m.total_weeks = nil
	m.addtotal_weeks = nil
}

// SetStudyDaysPerWeek sets the "study_days_per_week" field.
func (m *RoadmapMutation) SetStudyDaysPerWeek(i int) {
	m.study_days_per_week = &i
	m.addstudy_days_per_week = nil
}

// StudyDaysPerWeek returns the value of the "study_days_per_week" field in the mutation.
func (m *RoadmapMutation) StudyDaysPerWeek() (r int, exists bool) {
	v := m.study_days_per_week
	if v == nil {
		return
	}
	return *v, true
}

// OldStudyDaysPerWeek returns the old "study_days_per_week" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldStudyDaysPerWeek(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudyDaysPerWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudyDaysPerWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudyDaysPerWeek: %w", err)
	}
	return oldValue.StudyDaysPerWeek, nil
}

// AddStudyDaysPerWeek adds i to the "study_days_per_week" field.
func (m *RoadmapMutation) AddStudyDaysPerWeek(i int) {
	if m.addstudy_days_per_week != nil {
		*m.addstudy_days_per_week += i
	} else {
		m.addstudy_days_per_week = &i
	}
}

// AddedStudyDaysPerWeek returns the value that was added to the "study_days_per_week" field in this mutation.
func (m *RoadmapMutation) AddedStudyDaysPerWeek() (r int, exists bool) {
	v := m.addstudy_days_per_week
	if v == nil {
		return
	}
	return *v, true
}

// ResetStudyDaysPerWeek resets all changes to the "study_days_per_week" field.
func (m *RoadmapMutation) ResetStudyDaysPerWeek() {
	m.study_days_per_week = nil
	m.addstudy_days_per_week = nil
}

// SetDailyMinutes sets the "daily_minutes" field.
func (m *RoadmapMutation) SetDailyMinutes(i int) {
	m.daily_minutes = &i
	m.adddaily_minutes = nil
}

// DailyMinutes returns the value of the "daily_minutes" field in the mutation.
func (m *RoadmapMutation) DailyMinutes() (r int, exists bool) {
	v := m.daily_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldDailyMinutes returns the old "daily_minutes" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldDailyMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDailyMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDailyMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDailyMinutes: %w", err)
	}
	return oldValue.DailyMinutes, nil
}

// AddDailyMinutes adds i to the "daily_minutes" field.
func (m *RoadmapMutation) AddDailyMinutes(i int) {
	if m.adddaily_minutes != nil {
		*m.adddaily_minutes += i
	} else {
		m.adddaily_minutes = &i
	}
}

// AddedDailyMinutes returns the value that was added to the "daily_minutes" field in this mutation.
func (m *RoadmapMutation) AddedDailyMinutes() (r int, exists bool) {
	v := m.adddaily_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetDailyMinutes resets all changes to the "daily_minutes" field.
func (m *RoadmapMutation) ResetDailyMinutes() {
	m.daily_minutes = nil
	m.adddaily_minutes = nil
}

// SetLearningStrategy sets the "learning_strategy" field.
func (m *RoadmapMutation) SetLearningStrategy(s string) {
	m.learning_strategy = &s
}

// LearningStrategy returns the value of the "learning_strategy" field in the mutation.
func (m *RoadmapMutation) LearningStrategy() (r string, exists bool) {
	v := m.learning_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningStrategy returns the old "learning_strategy" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldLearningStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningStrategy: %w", err)
	}
	return oldValue.LearningStrategy, nil
}

// ResetLearningStrategy resets all changes to the "learning_strategy" field.
func (m *RoadmapMutation) ResetLearningStrategy() {
	m.learning_strategy = nil
}

// SetActiveWeek sets the "active_week" field.
func (m *RoadmapMutation) SetActiveWeek(i int) {
	m.active_week = &i
	m.addactive_week = nil
}

// ActiveWeek returns the value of the "active_week" field in the mutation.
func (m *RoadmapMutation) ActiveWeek() (r int, exists bool) {
	v := m.active_week
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveWeek returns the old "active_week" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldActiveWeek(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveWeek is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveWeek requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveWeek: %w", err)
	}
	return oldValue.ActiveWeek, nil
}

// AddActiveWeek adds i to the "active_week" field.
func (m *RoadmapMutation) AddActiveWeek(i int) {
	if m.addactive_week != nil {
		*m.addactive_week += i
	} else {
		m.addactive_week = &i
	}
}

// AddedActiveWeek returns the value that was added to the "active_week" field in this mutation.
func (m *RoadmapMutation) AddedActiveWeek() (r int, exists bool) {
	v := m.addactive_week
	if v == nil {
		return
	}
	return *v, true
}

// ResetActiveWeek resets all changes to the "active_week" field.
func (m *RoadmapMutation) ResetActiveWeek() {
	m.active_week = nil
	m.addactive_week = nil
}

// SetSessionsCompleted sets the "sessions_completed" field.
func (m *RoadmapMutation) SetSessionsCompleted(i int) {
	m.sessions_completed = &i
	m.addsessions_completed = nil
}

// SessionsCompleted returns the value of the "sessions_completed" field in the mutation.
func (m *RoadmapMutation) SessionsCompleted() (r int, exists bool) {
	v := m.sessions_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionsCompleted returns the old "sessions_completed" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldSessionsCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionsCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionsCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionsCompleted: %w", err)
	}
	return oldValue.SessionsCompleted, nil
}

// AddSessionsCompleted adds i to the "sessions_completed" field.
func (m *RoadmapMutation) AddSessionsCompleted(i int) {
	if m.addsessions_completed != nil {
		*m.addsessions_completed += i
	} else {
		m.addsessions_completed = &i
	}
}

// AddedSessionsCompleted returns the value that was added to the "sessions_completed" field in this mutation.
func (m *RoadmapMutation) AddedSessionsCompleted() (r int, exists bool) {
	v := m.addsessions_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionsCompleted resets all changes to the "sessions_completed" field.
func (m *RoadmapMutation) ResetSessionsCompleted() {
	m.sessions_completed = nil
	m.addsessions_completed = nil
}

// SetTotalSessions sets the "total_sessions" field.
func (m *RoadmapMutation) SetTotalSessions(i int) {
	m.total_sessions = &i
	m.addtotal_sessions = nil
}

// TotalSessions returns the value of the "total_sessions" field in the mutation.
func (m *RoadmapMutation) TotalSessions() (r int, exists bool) {
	v := m.total_sessions
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalSessions returns the old "total_sessions" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldTotalSessions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalSessions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalSessions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalSessions: %w", err)
	}
	return oldValue.TotalSessions, nil
}

// AddTotalSessions adds i to the "total_sessions" field.
func (m *RoadmapMutation) AddTotalSessions(i int) {
	if m.addtotal_sessions != nil {
		*m.addtotal_sessions += i
	} else {
		m.addtotal_sessions = &i
	}
}

// AddedTotalSessions returns the value that was added to the "total_sessions" field in this mutation.
func (m *RoadmapMutation) AddedTotalSessions() (r int, exists bool) {
	v := m.addtotal_sessions
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalSessions resets all changes to the "total_sessions" field.
func (m *RoadmapMutation) ResetTotalSessions() {
	m.total_sessions = nil
	m.addtotal_sessions = nil
}

// SetOverallProgress sets the "overall_progress" field.
func (m *RoadmapMutation) SetOverallProgress(i int) {
	m.overall_progress = &i
	m.addoverall_progress = nil
}

// OverallProgress returns the value of the "overall_progress" field in the mutation.
func (m *RoadmapMutation) OverallProgress() (r int, exists bool) {
	v := m.overall_progress
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallProgress returns the old "overall_progress" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldOverallProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallProgress: %w", err)
	}
	return oldValue.OverallProgress, nil
}

// AddOverallProgress adds i to the "overall_progress" field.
func (m *RoadmapMutation) AddOverallProgress(i int) {
	if m.addoverall_progress != nil {
		*m.addoverall_progress += i
	} else {
		m.addoverall_progress = &i
	}
}

// AddedOverallProgress returns the value that was added to the "overall_progress" field in this mutation.
func (m *RoadmapMutation) AddedOverallProgress() (r int, exists bool) {
	v := m.addoverall_progress
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallProgress resets all changes to the "overall_progress" field.
func (m *RoadmapMutation) ResetOverallProgress() {
	m.overall_progress = nil
	m.addoverall_progress = nil
}

// SetWeeks sets the "weeks" field.
func (m *RoadmapMutation) SetWeeks(sd []schema.WeekDoc) {
	m.weeks = &sd
	m.appendweeks = nil
}

// Weeks returns the value of the "weeks" field in the mutation.
func (m *RoadmapMutation) Weeks() (r []schema.WeekDoc, exists bool) {
	v := m.weeks
	if v == nil {
		return
	}
	return *v, true
}

// OldWeeks returns the old "weeks" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldWeeks(ctx context.Context) (v []schema.WeekDoc, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeeks is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeeks requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeeks: %w", err)
	}
	return oldValue.Weeks, nil
}

// AppendWeeks adds sd to the "weeks" field.
func (m *RoadmapMutation) AppendWeeks(sd []schema.WeekDoc) {
	m.appendweeks = append(m.appendweeks, sd...)
}

// AppendedWeeks returns the list of values that were appended to the "weeks" field in this mutation.
func (m *RoadmapMutation) AppendedWeeks() ([]schema.WeekDoc, bool) {
	if len(m.appendweeks) == 0 {
		return nil, false
	}
	return m.appendweeks, true
}

// ResetWeeks resets all changes to the "weeks" field.
func (m *RoadmapMutation) ResetWeeks() {
	m.weeks = nil
	m.appendweeks = nil
}

// SetVersion sets the "version" field.
func (m *RoadmapMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *RoadmapMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *RoadmapMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *RoadmapMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *RoadmapMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RoadmapMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoadmapMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoadmapMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RoadmapMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RoadmapMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Roadmap entity.
// If the Roadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoadmapMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RoadmapMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the RoadmapMutation builder.
func (m *RoadmapMutation) Where(ps ...predicate.Roadmap) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoadmapMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoadmapMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Roadmap, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoadmapMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoadmapMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Roadmap).
func (m *RoadmapMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoadmapMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.roadmap_id != nil {
		fields = append(fields, roadmap.FieldRoadmapID)
	}
	if m.learner_id != nil {
		fields = append(fields, roadmap.FieldLearnerID)
	}
	if m.goal != nil {
		fields = append(fields, roadmap.FieldGoal)
	}
	if m.status != nil {
		fields = append(fields, roadmap.FieldStatus)
	}
	if m.start_date != nil {
		fields = append(fields, roadmap.FieldStartDate)
	}
	if m.total_weeks != nil {
		fields = append(fields, roadmap.FieldTotalWeeks)
	}
	if m.study_days_per_week != nil {
		fields = append(fields, roadmap.FieldStudyDaysPerWeek)
	}
	if m.daily_minutes != nil {
		fields = append(fields, roadmap.FieldDailyMinutes)
	}
	if m.learning_strategy != nil {
		fields = append(fields, roadmap.FieldLearningStrategy)
	}
	if m.active_week != nil {
		fields = append(fields, roadmap.FieldActiveWeek)
	}
	if m.sessions_completed != nil {
		fields = append(fields, roadmap.FieldSessionsCompleted)
	}
	if m.total_sessions != nil {
		fields = append(fields, roadmap.FieldTotalSessions)
	}
	if m.overall_progress != nil {
		fields = append(fields, roadmap.FieldOverallProgress)
	}
	if m.weeks != nil {
		fields = append(fields, roadmap.FieldWeeks)
	}
	if m.version != nil {
		fields = append(fields, roadmap.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, roadmap.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, roadmap.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoadmapMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case roadmap.FieldRoadmapID:
		return m.RoadmapID()
	case roadmap.FieldLearnerID:
		return m.LearnerID()
	case roadmap.FieldGoal:
		return m.Goal()
	case roadmap.FieldStatus:
		return m.Status()
	case roadmap.FieldStartDate:
		return m.StartDate()
	case roadmap.FieldTotalWeeks:
		return m.TotalWeeks()
	case roadmap.FieldStudyDaysPerWeek:
		return m.StudyDaysPerWeek()
	case roadmap.FieldDailyMinutes:
		return m.DailyMinutes()
	case roadmap.FieldLearningStrategy:
		return m.LearningStrategy()
	case roadmap.FieldActiveWeek:
		return m.ActiveWeek()
	case roadmap.FieldSessionsCompleted:
		return m.SessionsCompleted()
	case roadmap.FieldTotalSessions:
		return m.TotalSessions()
	case roadmap.FieldOverallProgress:
		return m.OverallProgress()
	case roadmap.FieldWeeks:
		return m.Weeks()
	case roadmap.FieldVersion:
		return m.Version()
	case roadmap.FieldCreatedAt:
		return m.CreatedAt()
	case roadmap.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoadmapMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case roadmap.FieldRoadmapID:
		return m.OldRoadmapID(ctx)
	case roadmap.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case roadmap.FieldGoal:
		return m.OldGoal(ctx)
	case roadmap.FieldStatus:
		return m.OldStatus(ctx)
	case roadmap.FieldStartDate:
		return m.OldStartDate(ctx)
	case roadmap.FieldTotalWeeks:
		return m.OldTotalWeeks(ctx)
	case roadmap.FieldStudyDaysPerWeek:
		return m.OldStudyDaysPerWeek(ctx)
	case roadmap.FieldDailyMinutes:
		return m.OldDailyMinutes(ctx)
	case roadmap.FieldLearningStrategy:
		return m.OldLearningStrategy(ctx)
	case roadmap.FieldActiveWeek:
		return m.OldActiveWeek(ctx)
	case roadmap.FieldSessionsCompleted:
		return m.OldSessionsCompleted(ctx)
	case roadmap.FieldTotalSessions:
		return m.OldTotalSessions(ctx)
	case roadmap.FieldOverallProgress:
		return m.OldOverallProgress(ctx)
	case roadmap.FieldWeeks:
		return m.OldWeeks(ctx)
	case roadmap.FieldVersion:
		return m.OldVersion(ctx)
	case roadmap.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case roadmap.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Roadmap field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoadmapMutation) SetField(name string, value ent.Value) error {
	switch name {
	case roadmap.FieldRoadmapID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoadmapID(v)
		return nil
	case roadmap.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case roadmap.FieldGoal:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoal(v)
		return nil
	case roadmap.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case roadmap.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case roadmap.FieldTotalWeeks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalWeeks(v)
		return nil
	case roadmap.FieldStudyDaysPerWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudyDaysPerWeek(v)
		return nil
	case roadmap.FieldDailyMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDailyMinutes(v)
		return nil
	case roadmap.FieldLearningStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningStrategy(v)
		return nil
	case roadmap.FieldActiveWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveWeek(v)
		return nil
	case roadmap.FieldSessionsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionsCompleted(v)
		return nil
	case roadmap.FieldTotalSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalSessions(v)
		return nil
	case roadmap.FieldOverallProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallProgress(v)
		return nil
	case roadmap.FieldWeeks:
		v, ok := value.([]schema.WeekDoc)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeeks(v)
		return nil
	case roadmap.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case roadmap.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case roadmap.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Roadmap field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoadmapMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_weeks != nil {
		fields = append(fields, roadmap.FieldTotalWeeks)
	}
	if m.addstudy_days_per_week != nil {
		fields = append(fields, roadmap.FieldStudyDaysPerWeek)
	}
	if m.adddaily_minutes != nil {
		fields = append(fields, roadmap.FieldDailyMinutes)
	}
	if m.addactive_week != nil {
		fields = append(fields, roadmap.FieldActiveWeek)
	}
	if m.addsessions_completed != nil {
		fields = append(fields, roadmap.FieldSessionsCompleted)
	}
	if m.addtotal_sessions != nil {
		fields = append(fields, roadmap.FieldTotalSessions)
	}
	if m.addoverall_progress != nil {
		fields = append(fields, roadmap.FieldOverallProgress)
	}
	if m.addversion != nil {
		fields = append(fields, roadmap.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoadmapMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case roadmap.FieldTotalWeeks:
		return m.AddedTotalWeeks()
	case roadmap.FieldStudyDaysPerWeek:
		return m.AddedStudyDaysPerWeek()
	case roadmap.FieldDailyMinutes:
		return m.AddedDailyMinutes()
	case roadmap.FieldActiveWeek:
		return m.AddedActiveWeek()
	case roadmap.FieldSessionsCompleted:
		return m.AddedSessionsCompleted()
	case roadmap.FieldTotalSessions:
		return m.AddedTotalSessions()
	case roadmap.FieldOverallProgress:
		return m.AddedOverallProgress()
	case roadmap.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoadmapMutation) AddField(name string, value ent.Value) error {
	switch name {
	case roadmap.FieldTotalWeeks:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalWeeks(v)
		return nil
	case roadmap.FieldStudyDaysPerWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudyDaysPerWeek(v)
		return nil
	case roadmap.FieldDailyMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDailyMinutes(v)
		return nil
	case roadmap.FieldActiveWeek:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActiveWeek(v)
		return nil
	case roadmap.FieldSessionsCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionsCompleted(v)
		return nil
	case roadmap.FieldTotalSessions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalSessions(v)
		return nil
	case roadmap.FieldOverallProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallProgress(v)
		return nil
	case roadmap.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Roadmap numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoadmapMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoadmapMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoadmapMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Roadmap nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoadmapMutation) ResetField(name string) error {
	switch name {
	case roadmap.FieldRoadmapID:
		m.ResetRoadmapID()
		return nil
	case roadmap.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case roadmap.FieldGoal:
		m.ResetGoal()
		return nil
	case roadmap.FieldStatus:
		m.ResetStatus()
		return nil
	case roadmap.FieldStartDate:
		m.ResetStartDate()
		return nil
	case roadmap.FieldTotalWeeks:
		m.ResetTotalWeeks()
		return nil
	case roadmap.FieldStudyDaysPerWeek:
		m.ResetStudyDaysPerWeek()
		return nil
	case roadmap.FieldDailyMinutes:
		m.ResetDailyMinutes()
		return nil
	case roadmap.FieldLearningStrategy:
		m.ResetLearningStrategy()
		return nil
	case roadmap.FieldActiveWeek:
		m.ResetActiveWeek()
		return nil
	case roadmap.FieldSessionsCompleted:
		m.ResetSessionsCompleted()
		return nil
	case roadmap.FieldTotalSessions:
		m.ResetTotalSessions()
		return nil
	case roadmap.FieldOverallProgress:
		m.ResetOverallProgress()
		return nil
	case roadmap.FieldWeeks:
		m.ResetWeeks()
		return nil
	case roadmap.FieldVersion:
		m.ResetVersion()
		return nil
	case roadmap.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case roadmap.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Roadmap field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoadmapMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoadmapMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoadmapMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoadmapMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoadmapMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoadmapMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoadmapMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Roadmap unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoadmapMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Roadmap edge %s", name)
}

// StudySessionMutation represents an operation that mutates the StudySession nodes in the graph.
type StudySessionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	session_id          *string
	learner_id          *string
	date                *time.Time
	roadmap_id          *string
	week_number         *int
	addweek_number      *int
	day_number          *int
	addday_number       *int
	title               *string
	target_skills       *[]string
	appendtarget_skills []string
	items               *[]schema.ItemDoc
	appenditems         []schema.ItemDoc
	progress            *int
	addprogress         *int
	status              *string
	started_at          *time.Time
	completed_at        *time.Time
	total_time_spent    *int
	addtotal_time_spent *int
	version             *int64
	addversion          *int64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*StudySession, error)
	predicates          []predicate.StudySession
}

var _ ent.Mutation = (*StudySessionMutation)(nil)

// studysessionOption allows management of the mutation configuration using functional options.
type studysessionOption func(*StudySessionMutation)

// newStudySessionMutation creates new mutation for the StudySession entity.
func newStudySessionMutation(c config, op Op, opts ...studysessionOption) *StudySessionMutation {
	m := &StudySessionMutation{
		config:        c,
		op:            op,
		typ:           TypeStudySession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudySessionID sets the ID field of the mutation.
func withStudySessionID(id int) studysessionOption {
	return func(m *StudySessionMutation) {
		var (
			err   error
			once  sync.Once
			value *StudySession
		)
		m.oldValue = func(ctx context.Context) (*StudySession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudySession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudySession sets the old StudySession of the mutation.
func withStudySession(node *StudySession) studysessionOption {
	return func(m *StudySessionMutation) {
		m.oldValue = func(context.Context) (*StudySession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudySessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudySessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudySessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudySessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudySession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *StudySessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *StudySessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *StudySessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetLearnerID sets the "learner_id" field.
func (m *StudySessionMutation) SetLearnerID(s string) {
	m.learner_id = &s
}

// LearnerID returns the value of the "learner_id" field in the mutation.
func (m *StudySessionMutation) LearnerID() (r string, exists bool) {
	v := m.learner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLearnerID returns the old "learner_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldLearnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearnerID: %w", err)
	}
	return oldValue.LearnerID, nil
}

// ResetLearnerID resets all changes to the "learner_id" field.
func (m *StudySessionMutation) ResetLearnerID() {
	m.learner_id = nil
}

// SetDate sets the "date" field.
func (m *StudySessionMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *StudySessionMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *StudySessionMutation) ResetDate() {
	m.date = nil
}

// SetRoadmapID sets the "roadmap_id" field.
func (m *StudySessionMutation) SetRoadmapID(s string) {
	m.roadmap_id = &s
}

// RoadmapID returns the value of the "roadmap_id" field in the mutation.
func (m *StudySessionMutation) RoadmapID() (r string, exists bool) {
	v := m.roadmap_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRoadmapID returns the old "roadmap_id" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldRoadmapID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRoadmapID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRoadmapID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRoadmapID: %w", err)
	}
	return oldValue.RoadmapID, nil
}

// ResetRoadmapID resets all changes to the "roadmap_id" field.
func (m *StudySessionMutation) ResetRoadmapID() {
	m.roadmap_id = nil
}

// SetWeekNumber sets the "week_number" field.
func (m *StudySessionMutation) SetWeekNumber(i int) {
	m.week_number = &i
	m.addweek_number = nil
}

// WeekNumber returns the value of the "week_number" field in the mutation.
func (m *StudySessionMutation) WeekNumber() (r int, exists bool) {
	v := m.week_number
	if v == nil {
		return
	}
	return *v, true
}

// OldWeekNumber returns the old "week_number" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldWeekNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeekNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeekNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeekNumber: %w", err)
	}
	return oldValue.WeekNumber, nil
}

// AddWeekNumber adds i to the "week_number" field.
func (m *StudySessionMutation) AddWeekNumber(i int) {
	if m.addweek_number != nil {
		*m.addweek_number += i
	} else {
		m.addweek_number = &i
	}
}

// AddedWeekNumber returns the value that was added to the "week_number" field in this mutation.
func (m *StudySessionMutation) AddedWeekNumber() (r int, exists bool) {
	v := m.addweek_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeekNumber resets all changes to the "week_number" field.
func (m *StudySessionMutation) ResetWeekNumber() {
	m.week_number = nil
	m.addweek_number = nil
}

// SetDayNumber sets the "day_number" field.
func (m *StudySessionMutation) SetDayNumber(i int) {
	m.day_number = &i
	m.addday_number = nil
}

// DayNumber returns the value of the "day_number" field in the mutation.
func (m *StudySessionMutation) DayNumber() (r int, exists bool) {
	v := m.day_number
	if v == nil {
		return
	}
	return *v, true
}

// OldDayNumber returns the old "day_number" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldDayNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDayNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDayNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDayNumber: %w", err)
	}
	return oldValue.DayNumber, nil
}

// AddDayNumber adds i to the "day_number" field.
func (m *StudySessionMutation) AddDayNumber(i int) {
	if m.addday_number != nil {
		*m.addday_number += i
	} else {
		m.addday_number = &i
	}
}

// AddedDayNumber returns the value that was added to the "day_number" field in this mutation.
func (m *StudySessionMutation) AddedDayNumber() (r int, exists bool) {
	v := m.addday_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetDayNumber resets all changes to the "day_number" field.
func (m *StudySessionMutation) ResetDayNumber() {
	m.day_number = nil
	m.addday_number = nil
}

// SetTitle sets the "title" field.
func (m *StudySessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *StudySessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *StudySessionMutation) ResetTitle() {
	m.title = nil
}

// SetTargetSkills sets the "target_skills" field.
func (m *StudySessionMutation) SetTargetSkills(s []string) {
	m.target_skills = &s
	m.appendtarget_skills = nil
}

// TargetSkills returns the value of the "target_skills" field in the mutation.
func (m *StudySessionMutation) TargetSkills() (r []string, exists bool) {
	v := m.target_skills
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetSkills returns the old "target_skills" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldTargetSkills(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetSkills: %w", err)
	}
	return oldValue.TargetSkills, nil
}

// AppendTargetSkills adds s to the "target_skills" field.
func (m *StudySessionMutation) AppendTargetSkills(s []string) {
	m.appendtarget_skills = append(m.appendtarget_skills, s...)
}

// AppendedTargetSkills returns the list of values that were appended to the "target_skills" field in this mutation.
func (m *StudySessionMutation) AppendedTargetSkills() ([]string, bool) {
	if len(m.appendtarget_skills) == 0 {
		return nil, false
	}
	return m.appendtarget_skills, true
}

// ClearTargetSkills clears the value of the "target_skills" field.
func (m *StudySessionMutation) ClearTargetSkills() {
	m.target_skills = nil
	m.appendtarget_skills = nil
	m.clearedFields[studysession.FieldTargetSkills] = struct{}{}
}

// TargetSkillsCleared returns if the "target_skills" field was cleared in this mutation.
func (m *StudySessionMutation) TargetSkillsCleared() bool {
	_, ok := m.clearedFields[studysession.FieldTargetSkills]
	return ok
}

// ResetTargetSkills resets all changes to the "target_skills" field.
func (m *StudySessionMutation) ResetTargetSkills() {
	m.target_skills = nil
	m.appendtarget_skills = nil
	delete(m.clearedFields, studysession.FieldTargetSkills)
}

// SetItems sets the "items" field.
func (m *StudySessionMutation) SetItems(sd []schema.ItemDoc) {
	m.items = &sd
	m.appenditems = nil
}

// Items returns the value of the "items" field in the mutation.
func (m *StudySessionMutation) Items() (r []schema.ItemDoc, exists bool) {
	v := m.items
	if v == nil {
		return
	}
	return *v, true
}

// OldItems returns the old "items" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldItems(ctx context.Context) (v []schema.ItemDoc, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldItems: %w", err)
	}
	return oldValue.Items, nil
}

// AppendItems adds sd to the "items" field.
func (m *StudySessionMutation) AppendItems(sd []schema.ItemDoc) {
	m.appenditems = append(m.appenditems, sd...)
}

// AppendedItems returns the list of values that were appended to the "items" field in this mutation.
func (m *StudySessionMutation) AppendedItems() ([]schema.ItemDoc, bool) {
	if len(m.appenditems) == 0 {
		return nil, false
	}
	return m.appenditems, true
}

// ResetItems resets all changes to the "items" field.
func (m *StudySessionMutation) ResetItems() {
	m.items = nil
	m.appenditems = nil
}

// SetProgress sets the "progress" field.
func (m *StudySessionMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *StudySessionMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *StudySessionMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *StudySessionMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *StudySessionMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetStatus sets the "status" field.
func (m *StudySessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *StudySessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *StudySessionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *StudySessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *StudySessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *StudySessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[studysession.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *StudySessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[studysession.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *StudySessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, studysession.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *StudySessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *StudySessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *StudySessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[studysession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *StudySessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[studysession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *StudySessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, studysession.FieldCompletedAt)
}

// SetTotalTimeSpent sets the "total_time_spent" field.
func (m *StudySessionMutation) SetTotalTimeSpent(i int) {
	m.total_time_spent = &i
	m.addtotal_time_spent = nil
}

// TotalTimeSpent returns the value of the "total_time_spent" field in the mutation.
func (m *StudySessionMutation) TotalTimeSpent() (r int, exists bool) {
	v := m.total_time_spent
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTimeSpent returns the old "total_time_spent" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldTotalTimeSpent(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTimeSpent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTimeSpent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTimeSpent: %w", err)
	}
	return oldValue.TotalTimeSpent, nil
}

// AddTotalTimeSpent adds i to the "total_time_spent" field.
func (m *StudySessionMutation) AddTotalTimeSpent(i int) {
	if m.addtotal_time_spent != nil {
		*m.addtotal_time_spent += i
	} else {
		m.addtotal_time_spent = &i
	}
}

// AddedTotalTimeSpent returns the value that was added to the "total_time_spent" field in this mutation.
func (m *StudySessionMutation) AddedTotalTimeSpent() (r int, exists bool) {
	v := m.addtotal_time_spent
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTimeSpent resets all changes to the "total_time_spent" field.
func (m *StudySessionMutation) ResetTotalTimeSpent() {
	m.total_time_spent = nil
	m.addtotal_time_spent = nil
}

// SetVersion sets the "version" field.
func (m *StudySessionMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *StudySessionMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *StudySessionMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *StudySessionMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *StudySessionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StudySessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudySessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StudySession entity.
// If the StudySession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudySessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudySessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the StudySessionMutation builder.
func (m *StudySessionMutation) Where(ps ...predicate.StudySession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudySessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudySessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudySession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudySessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudySessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudySession).
func (m *StudySessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudySessionMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.session_id != nil {
		fields = append(fields, studysession.FieldSessionID)
	}
	if m.learner_id != nil {
		fields = append(fields, studysession.FieldLearnerID)
	}
	if m.date != nil {
		fields = append(fields, studysession.FieldDate)
	}
	if m.roadmap_id != nil {
		fields = append(fields, studysession.FieldRoadmapID)
	}
	if m.week_number != nil {
		fields = append(fields, studysession.FieldWeekNumber)
	}
	if m.day_number != nil {
		fields = append(fields, studysession.FieldDayNumber)
	}
	if m.title != nil {
		fields = append(fields, studysession.FieldTitle)
	}
	if m.target_skills != nil {
		fields = append(fields, studysession.FieldTargetSkills)
	}
	if m.items != nil {
		fields = append(fields, studysession.FieldItems)
	}
	if m.progress != nil {
		fields = append(fields, studysession.FieldProgress)
	}
	if m.status != nil {
		fields = append(fields, studysession.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, studysession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, studysession.FieldCompletedAt)
	}
	if m.total_time_spent != nil {
		fields = append(fields, studysession.FieldTotalTimeSpent)
	}
	if m.version != nil {
		fields = append(fields, studysession.FieldVersion)
	}
	if m.created_at != nil {
		fields = append(fields, studysession.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudySessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldSessionID:
		return m.SessionID()
	case studysession.FieldLearnerID:
		return m.LearnerID()
	case studysession.FieldDate:
		return m.Date()
	case studysession.FieldRoadmapID:
		return m.RoadmapID()
	case studysession.FieldWeekNumber:
		return m.WeekNumber()
	case studysession.FieldDayNumber:
		return m.DayNumber()
	case studysession.FieldTitle:
		return m.Title()
	case studysession.FieldTargetSkills:
		return m.TargetSkills()
	case studysession.FieldItems:
		return m.Items()
	case studysession.FieldProgress:
		return m.Progress()
	case studysession.FieldStatus:
		return m.Status()
	case studysession.FieldStartedAt:
		return m.StartedAt()
	case studysession.FieldCompletedAt:
		return m.CompletedAt()
	case studysession.FieldTotalTimeSpent:
		return m.TotalTimeSpent()
	case studysession.FieldVersion:
		return m.Version()
	case studysession.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudySessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studysession.FieldSessionID:
		return m.OldSessionID(ctx)
	case studysession.FieldLearnerID:
		return m.OldLearnerID(ctx)
	case studysession.FieldDate:
		return m.OldDate(ctx)
	case studysession.FieldRoadmapID:
		return m.OldRoadmapID(ctx)
	case studysession.FieldWeekNumber:
		return m.OldWeekNumber(ctx)
	case studysession.FieldDayNumber:
		return m.OldDayNumber(ctx)
	case studysession.FieldTitle:
		return m.OldTitle(ctx)
	case studysession.FieldTargetSkills:
		return m.OldTargetSkills(ctx)
	case studysession.FieldItems:
		return m.OldItems(ctx)
	case studysession.FieldProgress:
		return m.OldProgress(ctx)
	case studysession.FieldStatus:
		return m.OldStatus(ctx)
	case studysession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case studysession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case studysession.FieldTotalTimeSpent:
		return m.OldTotalTimeSpent(ctx)
	case studysession.FieldVersion:
		return m.OldVersion(ctx)
	case studysession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudySession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case studysession.FieldLearnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearnerID(v)
		return nil
	case studysession.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case studysession.FieldRoadmapID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRoadmapID(v)
		return nil
	case studysession.FieldWeekNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeekNumber(v)
		return nil
	case studysession.FieldDayNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDayNumber(v)
		return nil
	case studysession.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case studysession.FieldTargetSkills:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetSkills(v)
		return nil
	case studysession.FieldItems:
		v, ok := value.([]schema.ItemDoc)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetItems(v)
		return nil
	case studysession.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case studysession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case studysession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case studysession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case studysession.FieldTotalTimeSpent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTimeSpent(v)
		return nil
	case studysession.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case studysession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudySessionMutation) AddedFields() []string {
	var fields []string
	if m.addweek_number != nil {
		fields = append(fields, studysession.FieldWeekNumber)
	}
	if m.addday_number != nil {
		fields = append(fields, studysession.FieldDayNumber)
	}
	if m.addprogress != nil {
		fields = append(fields, studysession.FieldProgress)
	}
	if m.addtotal_time_spent != nil {
		fields = append(fields, studysession.FieldTotalTimeSpent)
	}
	if m.addversion != nil {
		fields = append(fields, studysession.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudySessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studysession.FieldWeekNumber:
		return m.AddedWeekNumber()
	case studysession.FieldDayNumber:
		return m.AddedDayNumber()
	case studysession.FieldProgress:
		return m.AddedProgress()
	case studysession.FieldTotalTimeSpent:
		return m.AddedTotalTimeSpent()
	case studysession.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudySessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studysession.FieldWeekNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeekNumber(v)
		return nil
	case studysession.FieldDayNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDayNumber(v)
		return nil
	case studysession.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case studysession.FieldTotalTimeSpent:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTimeSpent(v)
		return nil
	case studysession.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown StudySession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudySessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studysession.FieldTargetSkills) {
		fields = append(fields, studysession.FieldTargetSkills)
	}
	if m.FieldCleared(studysession.FieldStartedAt) {
		fields = append(fields, studysession.FieldStartedAt)
	}
	if m.FieldCleared(studysession.FieldCompletedAt) {
		fields = append(fields, studysession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudySessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudySessionMutation) ClearField(name string) error {
	switch name {
	case studysession.FieldTargetSkills:
		m.ClearTargetSkills()
		return nil
	case studysession.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case studysession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown StudySession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudySessionMutation) ResetField(name string) error {
	switch name {
	case studysession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case studysession.FieldLearnerID:
		m.ResetLearnerID()
		return nil
	case studysession.FieldDate:
		m.ResetDate()
		return nil
	case studysession.FieldRoadmapID:
		m.ResetRoadmapID()
		return nil
	case studysession.FieldWeekNumber:
		m.ResetWeekNumber()
		return nil
	case studysession.FieldDayNumber:
		m.ResetDayNumber()
		return nil
	case studysession.FieldTitle:
		m.ResetTitle()
		return nil
	case studysession.FieldTargetSkills:
		m.ResetTargetSkills()
		return nil
	case studysession.FieldItems:
		m.ResetItems()
		return nil
	case studysession.FieldProgress:
		m.ResetProgress()
		return nil
	case studysession.FieldStatus:
		m.ResetStatus()
		return nil
	case studysession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case studysession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case studysession.FieldTotalTimeSpent:
		m.ResetTotalTimeSpent()
		return nil
	case studysession.FieldVersion:
		m.ResetVersion()
		return nil
	case studysession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown StudySession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudySessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudySessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudySessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudySessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudySessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudySessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudySessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudySession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudySessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudySession edge %s", name)
}
