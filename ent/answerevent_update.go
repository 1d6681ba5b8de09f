// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sotaro-w/pfdojo/ent/answerevent"
	"github.com/sotaro-w/pfdojo/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdate) SetSessionID(v string) *AnswerEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableSessionID(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetScenarioKey sets the "scenario_key" field.
func (_u *AnswerEventUpdate) SetScenarioKey(v string) *AnswerEventUpdate {
	_u.mutation.SetScenarioKey(v)
	return _u
}

// SetNillableScenarioKey sets the "scenario_key" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableScenarioKey(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetScenarioKey(*v)
	}
	return _u
}

// SetScenarioType sets the "scenario_type" field.
func (_u *AnswerEventUpdate) SetScenarioType(v string) *AnswerEventUpdate {
	_u.mutation.SetScenarioType(v)
	return _u
}

// SetNillableScenarioType sets the "scenario_type" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableScenarioType(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetScenarioType(*v)
	}
	return _u
}

// SetHand sets the "hand" field.
func (_u *AnswerEventUpdate) SetHand(v string) *AnswerEventUpdate {
	_u.mutation.SetHand(v)
	return _u
}

// SetNillableHand sets the "hand" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableHand(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetHand(*v)
	}
	return _u
}

// SetUserAction sets the "user_action" field.
func (_u *AnswerEventUpdate) SetUserAction(v string) *AnswerEventUpdate {
	_u.mutation.SetUserAction(v)
	return _u
}

// SetNillableUserAction sets the "user_action" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableUserAction(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetUserAction(*v)
	}
	return _u
}

// SetCorrectAction sets the "correct_action" field.
func (_u *AnswerEventUpdate) SetCorrectAction(v string) *AnswerEventUpdate {
	_u.mutation.SetCorrectAction(v)
	return _u
}

// SetNillableCorrectAction sets the "correct_action" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableCorrectAction(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetCorrectAction(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AnswerEventUpdate) SetLevel(v string) *AnswerEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableLevel(v *string) *AnswerEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetAcceptable sets the "acceptable" field.
func (_u *AnswerEventUpdate) SetAcceptable(v bool) *AnswerEventUpdate {
	_u.mutation.SetAcceptable(v)
	return _u
}

// SetNillableAcceptable sets the "acceptable" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableAcceptable(v *bool) *AnswerEventUpdate {
	if v != nil {
		_u.SetAcceptable(*v)
	}
	return _u
}

// SetEarned sets the "earned" field.
func (_u *AnswerEventUpdate) SetEarned(v float64) *AnswerEventUpdate {
	_u.mutation.ResetEarned()
	_u.mutation.SetEarned(v)
	return _u
}

// SetNillableEarned sets the "earned" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableEarned(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetEarned(*v)
	}
	return _u
}

// AddEarned adds value to the "earned" field.
func (_u *AnswerEventUpdate) AddEarned(v float64) *AnswerEventUpdate {
	_u.mutation.AddEarned(v)
	return _u
}

// SetMaxPossible sets the "max_possible" field.
func (_u *AnswerEventUpdate) SetMaxPossible(v float64) *AnswerEventUpdate {
	_u.mutation.ResetMaxPossible()
	_u.mutation.SetMaxPossible(v)
	return _u
}

// SetNillableMaxPossible sets the "max_possible" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableMaxPossible(v *float64) *AnswerEventUpdate {
	if v != nil {
		_u.SetMaxPossible(*v)
	}
	return _u
}

// AddMaxPossible adds value to the "max_possible" field.
func (_u *AnswerEventUpdate) AddMaxPossible(v float64) *AnswerEventUpdate {
	_u.mutation.AddMaxPossible(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdate) SetTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdate) SetNillableTimeMs(v *int) *AnswerEventUpdate {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdate) AddTimeMs(v int) *AnswerEventUpdate {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScenarioKey(); ok {
		if err := answerevent.ScenarioKeyValidator(v); err != nil {
			return &ValidationError{Name: "scenario_key", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.scenario_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScenarioType(); ok {
		if err := answerevent.ScenarioTypeValidator(v); err != nil {
			return &ValidationError{Name: "scenario_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.scenario_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hand(); ok {
		if err := answerevent.HandValidator(v); err != nil {
			return &ValidationError{Name: "hand", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.hand": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAction(); ok {
		if err := answerevent.UserActionValidator(v); err != nil {
			return &ValidationError{Name: "user_action", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAction(); ok {
		if err := answerevent.CorrectActionValidator(v); err != nil {
			return &ValidationError{Name: "correct_action", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.correct_action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := answerevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioKey(); ok {
		_spec.SetField(answerevent.FieldScenarioKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioType(); ok {
		_spec.SetField(answerevent.FieldScenarioType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hand(); ok {
		_spec.SetField(answerevent.FieldHand, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAction(); ok {
		_spec.SetField(answerevent.FieldUserAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAction(); ok {
		_spec.SetField(answerevent.FieldCorrectAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(answerevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Acceptable(); ok {
		_spec.SetField(answerevent.FieldAcceptable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Earned(); ok {
		_spec.SetField(answerevent.FieldEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEarned(); ok {
		_spec.AddField(answerevent.FieldEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxPossible(); ok {
		_spec.SetField(answerevent.FieldMaxPossible, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxPossible(); ok {
		_spec.AddField(answerevent.FieldMaxPossible, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AnswerEventUpdateOne) SetSessionID(v string) *AnswerEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableSessionID(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetScenarioKey sets the "scenario_key" field.
func (_u *AnswerEventUpdateOne) SetScenarioKey(v string) *AnswerEventUpdateOne {
	_u.mutation.SetScenarioKey(v)
	return _u
}

// SetNillableScenarioKey sets the "scenario_key" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableScenarioKey(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetScenarioKey(*v)
	}
	return _u
}

// SetScenarioType sets the "scenario_type" field.
func (_u *AnswerEventUpdateOne) SetScenarioType(v string) *AnswerEventUpdateOne {
	_u.mutation.SetScenarioType(v)
	return _u
}

// SetNillableScenarioType sets the "scenario_type" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableScenarioType(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetScenarioType(*v)
	}
	return _u
}

// SetHand sets the "hand" field.
func (_u *AnswerEventUpdateOne) SetHand(v string) *AnswerEventUpdateOne {
	_u.mutation.SetHand(v)
	return _u
}

// SetNillableHand sets the "hand" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableHand(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetHand(*v)
	}
	return _u
}

// SetUserAction sets the "user_action" field.
func (_u *AnswerEventUpdateOne) SetUserAction(v string) *AnswerEventUpdateOne {
	_u.mutation.SetUserAction(v)
	return _u
}

// SetNillableUserAction sets the "user_action" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableUserAction(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetUserAction(*v)
	}
	return _u
}

// SetCorrectAction sets the "correct_action" field.
func (_u *AnswerEventUpdateOne) SetCorrectAction(v string) *AnswerEventUpdateOne {
	_u.mutation.SetCorrectAction(v)
	return _u
}

// SetNillableCorrectAction sets the "correct_action" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableCorrectAction(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetCorrectAction(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AnswerEventUpdateOne) SetLevel(v string) *AnswerEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableLevel(v *string) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetAcceptable sets the "acceptable" field.
func (_u *AnswerEventUpdateOne) SetAcceptable(v bool) *AnswerEventUpdateOne {
	_u.mutation.SetAcceptable(v)
	return _u
}

// SetNillableAcceptable sets the "acceptable" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableAcceptable(v *bool) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetAcceptable(*v)
	}
	return _u
}

// SetEarned sets the "earned" field.
func (_u *AnswerEventUpdateOne) SetEarned(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetEarned()
	_u.mutation.SetEarned(v)
	return _u
}

// SetNillableEarned sets the "earned" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableEarned(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetEarned(*v)
	}
	return _u
}

// AddEarned adds value to the "earned" field.
func (_u *AnswerEventUpdateOne) AddEarned(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddEarned(v)
	return _u
}

// SetMaxPossible sets the "max_possible" field.
func (_u *AnswerEventUpdateOne) SetMaxPossible(v float64) *AnswerEventUpdateOne {
	_u.mutation.ResetMaxPossible()
	_u.mutation.SetMaxPossible(v)
	return _u
}

// SetNillableMaxPossible sets the "max_possible" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableMaxPossible(v *float64) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetMaxPossible(*v)
	}
	return _u
}

// AddMaxPossible adds value to the "max_possible" field.
func (_u *AnswerEventUpdateOne) AddMaxPossible(v float64) *AnswerEventUpdateOne {
	_u.mutation.AddMaxPossible(v)
	return _u
}

// SetTimeMs sets the "time_ms" field.
func (_u *AnswerEventUpdateOne) SetTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.ResetTimeMs()
	_u.mutation.SetTimeMs(v)
	return _u
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (_u *AnswerEventUpdateOne) SetNillableTimeMs(v *int) *AnswerEventUpdateOne {
	if v != nil {
		_u.SetTimeMs(*v)
	}
	return _u
}

// AddTimeMs adds value to the "time_ms" field.
func (_u *AnswerEventUpdateOne) AddTimeMs(v int) *AnswerEventUpdateOne {
	_u.mutation.AddTimeMs(v)
	return _u
}

// Mutation returns the AnswerEventMutation object of the builder.
func (_u *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (_u *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnswerEvent entity.
func (_u *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnswerEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScenarioKey(); ok {
		if err := answerevent.ScenarioKeyValidator(v); err != nil {
			return &ValidationError{Name: "scenario_key", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.scenario_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ScenarioType(); ok {
		if err := answerevent.ScenarioTypeValidator(v); err != nil {
			return &ValidationError{Name: "scenario_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.scenario_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Hand(); ok {
		if err := answerevent.HandValidator(v); err != nil {
			return &ValidationError{Name: "hand", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.hand": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserAction(); ok {
		if err := answerevent.UserActionValidator(v); err != nil {
			return &ValidationError{Name: "user_action", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.user_action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectAction(); ok {
		if err := answerevent.CorrectActionValidator(v); err != nil {
			return &ValidationError{Name: "correct_action", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.correct_action": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := answerevent.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
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
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioKey(); ok {
		_spec.SetField(answerevent.FieldScenarioKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.ScenarioType(); ok {
		_spec.SetField(answerevent.FieldScenarioType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Hand(); ok {
		_spec.SetField(answerevent.FieldHand, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAction(); ok {
		_spec.SetField(answerevent.FieldUserAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAction(); ok {
		_spec.SetField(answerevent.FieldCorrectAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(answerevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Acceptable(); ok {
		_spec.SetField(answerevent.FieldAcceptable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Earned(); ok {
		_spec.SetField(answerevent.FieldEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEarned(); ok {
		_spec.AddField(answerevent.FieldEarned, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxPossible(); ok {
		_spec.SetField(answerevent.FieldMaxPossible, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxPossible(); ok {
		_spec.AddField(answerevent.FieldMaxPossible, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &AnswerEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
