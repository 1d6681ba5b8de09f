// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sotaro-w/pfdojo/ent/answerevent"
)

// AnswerEventCreate is the builder for creating a AnswerEvent entity.
type AnswerEventCreate struct {
	config
	mutation *AnswerEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnswerEventCreate) SetSequence(v int64) *AnswerEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnswerEventCreate) SetTimestamp(v time.Time) *AnswerEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimestamp(v *time.Time) *AnswerEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AnswerEventCreate) SetSessionID(v string) *AnswerEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetScenarioKey sets the "scenario_key" field.
func (_c *AnswerEventCreate) SetScenarioKey(v string) *AnswerEventCreate {
	_c.mutation.SetScenarioKey(v)
	return _c
}

// SetScenarioType sets the "scenario_type" field.
func (_c *AnswerEventCreate) SetScenarioType(v string) *AnswerEventCreate {
	_c.mutation.SetScenarioType(v)
	return _c
}

// SetHand sets the "hand" field.
func (_c *AnswerEventCreate) SetHand(v string) *AnswerEventCreate {
	_c.mutation.SetHand(v)
	return _c
}

// SetUserAction sets the "user_action" field.
func (_c *AnswerEventCreate) SetUserAction(v string) *AnswerEventCreate {
	_c.mutation.SetUserAction(v)
	return _c
}

// SetCorrectAction sets the "correct_action" field.
func (_c *AnswerEventCreate) SetCorrectAction(v string) *AnswerEventCreate {
	_c.mutation.SetCorrectAction(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *AnswerEventCreate) SetLevel(v string) *AnswerEventCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetAcceptable sets the "acceptable" field.
func (_c *AnswerEventCreate) SetAcceptable(v bool) *AnswerEventCreate {
	_c.mutation.SetAcceptable(v)
	return _c
}

// SetEarned sets the "earned" field.
func (_c *AnswerEventCreate) SetEarned(v float64) *AnswerEventCreate {
	_c.mutation.SetEarned(v)
	return _c
}

// SetNillableEarned sets the "earned" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableEarned(v *float64) *AnswerEventCreate {
	if v != nil {
		_c.SetEarned(*v)
	}
	return _c
}

// SetMaxPossible sets the "max_possible" field.
func (_c *AnswerEventCreate) SetMaxPossible(v float64) *AnswerEventCreate {
	_c.mutation.SetMaxPossible(v)
	return _c
}

// SetNillableMaxPossible sets the "max_possible" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableMaxPossible(v *float64) *AnswerEventCreate {
	if v != nil {
		_c.SetMaxPossible(*v)
	}
	return _c
}

// SetTimeMs sets the "time_ms" field.
func (_c *AnswerEventCreate) SetTimeMs(v int) *AnswerEventCreate {
	_c.mutation.SetTimeMs(v)
	return _c
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_c *AnswerEventCreate) SetNillableTimeMs(v *int) *AnswerEventCreate {
	if v != nil {
		_c.SetTimeMs(*v)
	}
	return _c
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_c *AnswerEventCreate) Mutation() *AnswerEventMutation {
	return _c.mutation
}

// Save creates the AnswerEvent in the database.
func (_c *AnswerEventCreate) Save(ctx context.Context) (*AnswerEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnswerEventCreate) SaveX(ctx context.Context) *AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnswerEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := answerevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Earned(); !ok {
		v := answerevent.DefaultEarned
		_c.mutation.SetEarned(v)
	}
	if _, ok := _c.mutation.MaxPossible(); !ok {
		v := answerevent.DefaultMaxPossible
		_c.mutation.SetMaxPossible(v)
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		v := answerevent.DefaultTimeMs
		_c.mutation.SetTimeMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnswerEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnswerEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnswerEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AnswerEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScenarioKey(); !ok {
		return &ValidationError{Name: "scenario_key", err: errors.New(`ent: missing required field "AnswerEvent.scenario_key"`)}
	}
	if v, ok := _c.mutation.ScenarioKey(); ok {
		if err := answerevent.ScenarioKeyValidator(v); err != nil {
			return &ValidationError{Name: "scenario_key", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.scenario_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ScenarioType(); !ok {
		return &ValidationError{Name: "scenario_type", err: errors.New(`ent: missing required field "AnswerEvent.scenario_type"`)}
	}
	if v, ok := _c.mutation.ScenarioType(); ok {
		if err := answerevent.ScenarioTypeValidator(v); err != nil {
			return &ValidationError{Name: "scenario_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.scenario_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hand(); !ok {
		return &ValidationError{Name: "hand", err: errors.New(`ent: missing required field "AnswerEvent.hand"`)}
	}
	if v, ok := _c.mutation.Hand(); ok {
		if err := answerevent.HandValidator(v); err != nil {
			return &ValidationError{Name: "hand", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.hand": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserAction(); !ok {
		return &ValidationError{Name: "user_action", err: errors.New(`ent: missing required field "AnswerEvent.user_action"`)}
	}
	if v, ok := _c.mutation.UserAction(); ok {
		if err := answerevent.UserActionValidator(v); err != nil {
			return &ValidationError{Name: "user_action", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectAction(); !ok {
		return &ValidationError{Name: "correct_action", err: errors.New(`ent: missing required field "AnswerEvent.correct_action"`)}
	}
	if v, ok := _c.mutation.CorrectAction(); ok {
		if err := answerevent.CorrectActionValidator(v); err != nil {
			return &ValidationError{Name: "correct_action", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.correct_action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "AnswerEvent.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := answerevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Acceptable(); !ok {
		return &ValidationError{Name: "acceptable", err: errors.New(`ent: missing required field "AnswerEvent.acceptable"`)}
	}
	if _, ok := _c.mutation.Earned(); !ok {
		return &ValidationError{Name: "earned", err: errors.New(`ent: missing required field "AnswerEvent.earned"`)}
	}
	if _, ok := _c.mutation.MaxPossible(); !ok {
		return &ValidationError{Name: "max_possible", err: errors.New(`ent: missing required field "AnswerEvent.max_possible"`)}
	}
	if _, ok := _c.mutation.TimeMs(); !ok {
		return &ValidationError{Name: "time_ms", err: errors.New(`ent: missing required field "AnswerEvent.time_ms"`)}
	}
	return nil
}

func (_c *AnswerEventCreate) sqlSave(ctx context.Context) (*AnswerEvent, error) {
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

func (_c *AnswerEventCreate) createSpec() (*AnswerEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnswerEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(answerevent.Table, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(answerevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(answerevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ScenarioKey(); ok {
		_spec.SetField(answerevent.FieldScenarioKey, field.TypeString, value)
		_node.ScenarioKey = value
	}
	if value, ok := _c.mutation.ScenarioType(); ok {
		_spec.SetField(answerevent.FieldScenarioType, field.TypeString, value)
		_node.ScenarioType = value
	}
	if value, ok := _c.mutation.Hand(); ok {
		_spec.SetField(answerevent.FieldHand, field.TypeString, value)
		_node.Hand = value
	}
	if value, ok := _c.mutation.UserAction(); ok {
		_spec.SetField(answerevent.FieldUserAction, field.TypeString, value)
		_node.UserAction = value
	}
	if value, ok := _c.mutation.CorrectAction(); ok {
		_spec.SetField(answerevent.FieldCorrectAction, field.TypeString, value)
		_node.CorrectAction = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(answerevent.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Acceptable(); ok {
		_spec.SetField(answerevent.FieldAcceptable, field.TypeBool, value)
		_node.Acceptable = value
	}
	if value, ok := _c.mutation.Earned(); ok {
		_spec.SetField(answerevent.FieldEarned, field.TypeFloat64, value)
		_node.Earned = value
	}
	if value, ok := _c.mutation.MaxPossible(); ok {
		_spec.SetField(answerevent.FieldMaxPossible, field.TypeFloat64, value)
		_node.MaxPossible = value
	}
	if value, ok := _c.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
		_node.TimeMs = value
	}
	return _node, _spec
}

// AnswerEventCreateBulk is the builder for creating many AnswerEvent entities in bulk.
type AnswerEventCreateBulk struct {
	config
	err      error
	builders []*AnswerEventCreate
}

// Save creates the AnswerEvent entities in the database.
func (_c *AnswerEventCreateBulk) Save(ctx context.Context) ([]*AnswerEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnswerEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnswerEventMutation)
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
func (_c *AnswerEventCreateBulk) SaveX(ctx context.Context) []*AnswerEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnswerEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnswerEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
