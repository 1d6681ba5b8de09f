// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/sotaro-w/pfdojo/ent/predicate"
	"github.com/sotaro-w/pfdojo/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *SessionEventUpdate) SetQuestions(v int) *SessionEventUpdate {
	_u.mutation.ResetQuestions()
	_u.mutation.SetQuestions(v)
	return _u
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableQuestions(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetQuestions(*v)
	}
	return _u
}

// AddQuestions adds value to the "questions" field.
func (_u *SessionEventUpdate) AddQuestions(v int) *SessionEventUpdate {
	_u.mutation.AddQuestions(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SessionEventUpdate) SetCorrect(v int) *SessionEventUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableCorrect(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *SessionEventUpdate) AddCorrect(v int) *SessionEventUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetWeightedScore sets the "weighted_score" field.
func (_u *SessionEventUpdate) SetWeightedScore(v float64) *SessionEventUpdate {
	_u.mutation.ResetWeightedScore()
	_u.mutation.SetWeightedScore(v)
	return _u
}

// SetNillableWeightedScore sets the "weighted_score" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableWeightedScore(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetWeightedScore(*v)
	}
	return _u
}

// AddWeightedScore adds value to the "weighted_score" field.
func (_u *SessionEventUpdate) AddWeightedScore(v float64) *SessionEventUpdate {
	_u.mutation.AddWeightedScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *SessionEventUpdate) SetMaxScore(v float64) *SessionEventUpdate {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableMaxScore(v *float64) *SessionEventUpdate {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *SessionEventUpdate) AddMaxScore(v float64) *SessionEventUpdate {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetLevelCounts sets the "level_counts" field.
func (_u *SessionEventUpdate) SetLevelCounts(v map[string]int) *SessionEventUpdate {
	_u.mutation.SetLevelCounts(v)
	return _u
}

// ClearLevelCounts clears the value of the "level_counts" field.
func (_u *SessionEventUpdate) ClearLevelCounts() *SessionEventUpdate {
	_u.mutation.ClearLevelCounts()
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(sessionevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestions(); ok {
		_spec.AddField(sessionevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(sessionevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(sessionevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeightedScore(); ok {
		_spec.SetField(sessionevent.FieldWeightedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightedScore(); ok {
		_spec.AddField(sessionevent.FieldWeightedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(sessionevent.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(sessionevent.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelCounts(); ok {
		_spec.SetField(sessionevent.FieldLevelCounts, field.TypeJSON, value)
	}
	if _u.mutation.LevelCountsCleared() {
		_spec.ClearField(sessionevent.FieldLevelCounts, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *SessionEventUpdateOne) SetQuestions(v int) *SessionEventUpdateOne {
	_u.mutation.ResetQuestions()
	_u.mutation.SetQuestions(v)
	return _u
}

// SetNillableQuestions sets the "questions" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableQuestions(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetQuestions(*v)
	}
	return _u
}

// AddQuestions adds value to the "questions" field.
func (_u *SessionEventUpdateOne) AddQuestions(v int) *SessionEventUpdateOne {
	_u.mutation.AddQuestions(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SessionEventUpdateOne) SetCorrect(v int) *SessionEventUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableCorrect(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *SessionEventUpdateOne) AddCorrect(v int) *SessionEventUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetWeightedScore sets the "weighted_score" field.
func (_u *SessionEventUpdateOne) SetWeightedScore(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetWeightedScore()
	_u.mutation.SetWeightedScore(v)
	return _u
}

// SetNillableWeightedScore sets the "weighted_score" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableWeightedScore(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetWeightedScore(*v)
	}
	return _u
}

// AddWeightedScore adds value to the "weighted_score" field.
func (_u *SessionEventUpdateOne) AddWeightedScore(v float64) *SessionEventUpdateOne {
	_u.mutation.AddWeightedScore(v)
	return _u
}

// SetMaxScore sets the "max_score" field.
func (_u *SessionEventUpdateOne) SetMaxScore(v float64) *SessionEventUpdateOne {
	_u.mutation.ResetMaxScore()
	_u.mutation.SetMaxScore(v)
	return _u
}

// SetNillableMaxScore sets the "max_score" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableMaxScore(v *float64) *SessionEventUpdateOne {
	if v != nil {
		_u.SetMaxScore(*v)
	}
	return _u
}

// AddMaxScore adds value to the "max_score" field.
func (_u *SessionEventUpdateOne) AddMaxScore(v float64) *SessionEventUpdateOne {
	_u.mutation.AddMaxScore(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// SetLevelCounts sets the "level_counts" field.
func (_u *SessionEventUpdateOne) SetLevelCounts(v map[string]int) *SessionEventUpdateOne {
	_u.mutation.SetLevelCounts(v)
	return _u
}

// ClearLevelCounts clears the value of the "level_counts" field.
func (_u *SessionEventUpdateOne) ClearLevelCounts() *SessionEventUpdateOne {
	_u.mutation.ClearLevelCounts()
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(sessionevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestions(); ok {
		_spec.AddField(sessionevent.FieldQuestions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(sessionevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(sessionevent.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WeightedScore(); ok {
		_spec.SetField(sessionevent.FieldWeightedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWeightedScore(); ok {
		_spec.AddField(sessionevent.FieldWeightedScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxScore(); ok {
		_spec.SetField(sessionevent.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxScore(); ok {
		_spec.AddField(sessionevent.FieldMaxScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LevelCounts(); ok {
		_spec.SetField(sessionevent.FieldLevelCounts, field.TypeJSON, value)
	}
	if _u.mutation.LevelCountsCleared() {
		_spec.ClearField(sessionevent.FieldLevelCounts, field.TypeJSON)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
