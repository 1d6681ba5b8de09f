// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/sotaro-w/pfdojo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSessionID, v))
}

// ScenarioKey applies equality check predicate on the "scenario_key" field. It's identical to ScenarioKeyEQ.
func ScenarioKey(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldScenarioKey, v))
}

// ScenarioType applies equality check predicate on the "scenario_type" field. It's identical to ScenarioTypeEQ.
func ScenarioType(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldScenarioType, v))
}

// Hand applies equality check predicate on the "hand" field. It's identical to HandEQ.
func Hand(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldHand, v))
}

// UserAction applies equality check predicate on the "user_action" field. It's identical to UserActionEQ.
func UserAction(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldUserAction, v))
}

// CorrectAction applies equality check predicate on the "correct_action" field. It's identical to CorrectActionEQ.
func CorrectAction(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldCorrectAction, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldLevel, v))
}

// Acceptable applies equality check predicate on the "acceptable" field. It's identical to AcceptableEQ.
func Acceptable(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldAcceptable, v))
}

// Earned applies equality check predicate on the "earned" field. It's identical to EarnedEQ.
func Earned(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldEarned, v))
}

// MaxPossible applies equality check predicate on the "max_possible" field. It's identical to MaxPossibleEQ.
func MaxPossible(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldMaxPossible, v))
}

// TimeMs applies equality check predicate on the "time_ms" field. It's identical to TimeMsEQ.
func TimeMs(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTimeMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ScenarioKeyEQ applies the EQ predicate on the "scenario_key" field.
func ScenarioKeyEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldScenarioKey, v))
}

// ScenarioKeyNEQ applies the NEQ predicate on the "scenario_key" field.
func ScenarioKeyNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldScenarioKey, v))
}

// ScenarioKeyIn applies the In predicate on the "scenario_key" field.
func ScenarioKeyIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldScenarioKey, vs...))
}

// ScenarioKeyNotIn applies the NotIn predicate on the "scenario_key" field.
func ScenarioKeyNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldScenarioKey, vs...))
}

// ScenarioKeyGT applies the GT predicate on the "scenario_key" field.
func ScenarioKeyGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldScenarioKey, v))
}

// ScenarioKeyGTE applies the GTE predicate on the "scenario_key" field.
func ScenarioKeyGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldScenarioKey, v))
}

// ScenarioKeyLT applies the LT predicate on the "scenario_key" field.
func ScenarioKeyLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldScenarioKey, v))
}

// ScenarioKeyLTE applies the LTE predicate on the "scenario_key" field.
func ScenarioKeyLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldScenarioKey, v))
}

// ScenarioKeyContains applies the Contains predicate on the "scenario_key" field.
func ScenarioKeyContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldScenarioKey, v))
}

// ScenarioKeyHasPrefix applies the HasPrefix predicate on the "scenario_key" field.
func ScenarioKeyHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldScenarioKey, v))
}

// ScenarioKeyHasSuffix applies the HasSuffix predicate on the "scenario_key" field.
func ScenarioKeyHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldScenarioKey, v))
}

// ScenarioKeyEqualFold applies the EqualFold predicate on the "scenario_key" field.
func ScenarioKeyEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldScenarioKey, v))
}

// ScenarioKeyContainsFold applies the ContainsFold predicate on the "scenario_key" field.
func ScenarioKeyContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldScenarioKey, v))
}

// ScenarioTypeEQ applies the EQ predicate on the "scenario_type" field.
func ScenarioTypeEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldScenarioType, v))
}

// ScenarioTypeNEQ applies the NEQ predicate on the "scenario_type" field.
func ScenarioTypeNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldScenarioType, v))
}

// ScenarioTypeIn applies the In predicate on the "scenario_type" field.
func ScenarioTypeIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldScenarioType, vs...))
}

// ScenarioTypeNotIn applies the NotIn predicate on the "scenario_type" field.
func ScenarioTypeNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldScenarioType, vs...))
}

// ScenarioTypeGT applies the GT predicate on the "scenario_type" field.
func ScenarioTypeGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldScenarioType, v))
}

// ScenarioTypeGTE applies the GTE predicate on the "scenario_type" field.
func ScenarioTypeGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldScenarioType, v))
}

// ScenarioTypeLT applies the LT predicate on the "scenario_type" field.
func ScenarioTypeLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldScenarioType, v))
}

// ScenarioTypeLTE applies the LTE predicate on the "scenario_type" field.
func ScenarioTypeLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldScenarioType, v))
}

// ScenarioTypeContains applies the Contains predicate on the "scenario_type" field.
func ScenarioTypeContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldScenarioType, v))
}

// ScenarioTypeHasPrefix applies the HasPrefix predicate on the "scenario_type" field.
func ScenarioTypeHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldScenarioType, v))
}

// ScenarioTypeHasSuffix applies the HasSuffix predicate on the "scenario_type" field.
func ScenarioTypeHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldScenarioType, v))
}

// ScenarioTypeEqualFold applies the EqualFold predicate on the "scenario_type" field.
func ScenarioTypeEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldScenarioType, v))
}

// ScenarioTypeContainsFold applies the ContainsFold predicate on the "scenario_type" field.
func ScenarioTypeContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldScenarioType, v))
}

// HandEQ applies the EQ predicate on the "hand" field.
func HandEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldHand, v))
}

// HandNEQ applies the NEQ predicate on the "hand" field.
func HandNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldHand, v))
}

// HandIn applies the In predicate on the "hand" field.
func HandIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldHand, vs...))
}

// HandNotIn applies the NotIn predicate on the "hand" field.
func HandNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldHand, vs...))
}

// HandGT applies the GT predicate on the "hand" field.
func HandGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldHand, v))
}

// HandGTE applies the GTE predicate on the "hand" field.
func HandGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldHand, v))
}

// HandLT applies the LT predicate on the "hand" field.
func HandLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldHand, v))
}

// HandLTE applies the LTE predicate on the "hand" field.
func HandLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldHand, v))
}

// HandContains applies the Contains predicate on the "hand" field.
func HandContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldHand, v))
}

// HandHasPrefix applies the HasPrefix predicate on the "hand" field.
func HandHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldHand, v))
}

// HandHasSuffix applies the HasSuffix predicate on the "hand" field.
func HandHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldHand, v))
}

// HandEqualFold applies the EqualFold predicate on the "hand" field.
func HandEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldHand, v))
}

// HandContainsFold applies the ContainsFold predicate on the "hand" field.
func HandContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldHand, v))
}

// UserActionEQ applies the EQ predicate on the "user_action" field.
func UserActionEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldUserAction, v))
}

// UserActionNEQ applies the NEQ predicate on the "user_action" field.
func UserActionNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldUserAction, v))
}

// UserActionIn applies the In predicate on the "user_action" field.
func UserActionIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldUserAction, vs...))
}

// UserActionNotIn applies the NotIn predicate on the "user_action" field.
func UserActionNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldUserAction, vs...))
}

// UserActionGT applies the GT predicate on the "user_action" field.
func UserActionGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldUserAction, v))
}

// UserActionGTE applies the GTE predicate on the "user_action" field.
func UserActionGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldUserAction, v))
}

// UserActionLT applies the LT predicate on the "user_action" field.
func UserActionLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldUserAction, v))
}

// UserActionLTE applies the LTE predicate on the "user_action" field.
func UserActionLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldUserAction, v))
}

// UserActionContains applies the Contains predicate on the "user_action" field.
func UserActionContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldUserAction, v))
}

// UserActionHasPrefix applies the HasPrefix predicate on the "user_action" field.
func UserActionHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldUserAction, v))
}

// UserActionHasSuffix applies the HasSuffix predicate on the "user_action" field.
func UserActionHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldUserAction, v))
}

// UserActionEqualFold applies the EqualFold predicate on the "user_action" field.
func UserActionEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldUserAction, v))
}

// UserActionContainsFold applies the ContainsFold predicate on the "user_action" field.
func UserActionContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldUserAction, v))
}

// CorrectActionEQ applies the EQ predicate on the "correct_action" field.
func CorrectActionEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldCorrectAction, v))
}

// CorrectActionNEQ applies the NEQ predicate on the "correct_action" field.
func CorrectActionNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldCorrectAction, v))
}

// CorrectActionIn applies the In predicate on the "correct_action" field.
func CorrectActionIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldCorrectAction, vs...))
}

// CorrectActionNotIn applies the NotIn predicate on the "correct_action" field.
func CorrectActionNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldCorrectAction, vs...))
}

// CorrectActionGT applies the GT predicate on the "correct_action" field.
func CorrectActionGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldCorrectAction, v))
}

// CorrectActionGTE applies the GTE predicate on the "correct_action" field.
func CorrectActionGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldCorrectAction, v))
}

// CorrectActionLT applies the LT predicate on the "correct_action" field.
func CorrectActionLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldCorrectAction, v))
}

// CorrectActionLTE applies the LTE predicate on the "correct_action" field.
func CorrectActionLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldCorrectAction, v))
}

// CorrectActionContains applies the Contains predicate on the "correct_action" field.
func CorrectActionContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldCorrectAction, v))
}

// CorrectActionHasPrefix applies the HasPrefix predicate on the "correct_action" field.
func CorrectActionHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldCorrectAction, v))
}

// CorrectActionHasSuffix applies the HasSuffix predicate on the "correct_action" field.
func CorrectActionHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldCorrectAction, v))
}

// CorrectActionEqualFold applies the EqualFold predicate on the "correct_action" field.
func CorrectActionEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldCorrectAction, v))
}

// CorrectActionContainsFold applies the ContainsFold predicate on the "correct_action" field.
func CorrectActionContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldCorrectAction, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldLevel, v))
}

// LevelContains applies the Contains predicate on the "level" field.
func LevelContains(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContains(FieldLevel, v))
}

// LevelHasPrefix applies the HasPrefix predicate on the "level" field.
func LevelHasPrefix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasPrefix(FieldLevel, v))
}

// LevelHasSuffix applies the HasSuffix predicate on the "level" field.
func LevelHasSuffix(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldHasSuffix(FieldLevel, v))
}

// LevelEqualFold applies the EqualFold predicate on the "level" field.
func LevelEqualFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEqualFold(FieldLevel, v))
}

// LevelContainsFold applies the ContainsFold predicate on the "level" field.
func LevelContainsFold(v string) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldContainsFold(FieldLevel, v))
}

// AcceptableEQ applies the EQ predicate on the "acceptable" field.
func AcceptableEQ(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldAcceptable, v))
}

// AcceptableNEQ applies the NEQ predicate on the "acceptable" field.
func AcceptableNEQ(v bool) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldAcceptable, v))
}

// EarnedEQ applies the EQ predicate on the "earned" field.
func EarnedEQ(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldEarned, v))
}

// EarnedNEQ applies the NEQ predicate on the "earned" field.
func EarnedNEQ(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldEarned, v))
}

// EarnedIn applies the In predicate on the "earned" field.
func EarnedIn(vs ...float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldEarned, vs...))
}

// EarnedNotIn applies the NotIn predicate on the "earned" field.
func EarnedNotIn(vs ...float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldEarned, vs...))
}

// EarnedGT applies the GT predicate on the "earned" field.
func EarnedGT(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldEarned, v))
}

// EarnedGTE applies the GTE predicate on the "earned" field.
func EarnedGTE(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldEarned, v))
}

// EarnedLT applies the LT predicate on the "earned" field.
func EarnedLT(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldEarned, v))
}

// EarnedLTE applies the LTE predicate on the "earned" field.
func EarnedLTE(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldEarned, v))
}

// MaxPossibleEQ applies the EQ predicate on the "max_possible" field.
func MaxPossibleEQ(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldMaxPossible, v))
}

// MaxPossibleNEQ applies the NEQ predicate on the "max_possible" field.
func MaxPossibleNEQ(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldMaxPossible, v))
}

// MaxPossibleIn applies the In predicate on the "max_possible" field.
func MaxPossibleIn(vs ...float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldMaxPossible, vs...))
}

// MaxPossibleNotIn applies the NotIn predicate on the "max_possible" field.
func MaxPossibleNotIn(vs ...float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldMaxPossible, vs...))
}

// MaxPossibleGT applies the GT predicate on the "max_possible" field.
func MaxPossibleGT(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldMaxPossible, v))
}

// MaxPossibleGTE applies the GTE predicate on the "max_possible" field.
func MaxPossibleGTE(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldMaxPossible, v))
}

// MaxPossibleLT applies the LT predicate on the "max_possible" field.
func MaxPossibleLT(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldMaxPossible, v))
}

// MaxPossibleLTE applies the LTE predicate on the "max_possible" field.
func MaxPossibleLTE(v float64) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldMaxPossible, v))
}

// TimeMsEQ applies the EQ predicate on the "time_ms" field.
func TimeMsEQ(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldEQ(FieldTimeMs, v))
}

// TimeMsNEQ applies the NEQ predicate on the "time_ms" field.
func TimeMsNEQ(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNEQ(FieldTimeMs, v))
}

// TimeMsIn applies the In predicate on the "time_ms" field.
func TimeMsIn(vs ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldIn(FieldTimeMs, vs...))
}

// TimeMsNotIn applies the NotIn predicate on the "time_ms" field.
func TimeMsNotIn(vs ...int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldNotIn(FieldTimeMs, vs...))
}

// TimeMsGT applies the GT predicate on the "time_ms" field.
func TimeMsGT(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGT(FieldTimeMs, v))
}

// TimeMsGTE applies the GTE predicate on the "time_ms" field.
func TimeMsGTE(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldGTE(FieldTimeMs, v))
}

// TimeMsLT applies the LT predicate on the "time_ms" field.
func TimeMsLT(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLT(FieldTimeMs, v))
}

// TimeMsLTE applies the LTE predicate on the "time_ms" field.
func TimeMsLTE(v int) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.FieldLTE(FieldTimeMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AnswerEvent) predicate.AnswerEvent {
	return predicate.AnswerEvent(sql.NotPredicates(p))
}
