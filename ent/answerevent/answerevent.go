// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldScenarioKey holds the string denoting the scenario_key field in the database.
	FieldScenarioKey = "scenario_key"
	// FieldScenarioType holds the string denoting the scenario_type field in the database.
	FieldScenarioType = "scenario_type"
	// FieldHand holds the string denoting the hand field in the database.
	FieldHand = "hand"
	// FieldUserAction holds the string denoting the user_action field in the database.
	FieldUserAction = "user_action"
	// FieldCorrectAction holds the string denoting the correct_action field in the database.
	FieldCorrectAction = "correct_action"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldAcceptable holds the string denoting the acceptable field in the database.
	FieldAcceptable = "acceptable"
	// FieldEarned holds the string denoting the earned field in the database.
	FieldEarned = "earned"
	// FieldMaxPossible holds the string denoting the max_possible field in the database.
	FieldMaxPossible = "max_possible"
	// FieldTimeMs holds the string denoting the time_ms field in the database.
	FieldTimeMs = "time_ms"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldScenarioKey,
	FieldScenarioType,
	FieldHand,
	FieldUserAction,
	FieldCorrectAction,
	FieldLevel,
	FieldAcceptable,
	FieldEarned,
	FieldMaxPossible,
	FieldTimeMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ScenarioKeyValidator is a validator for the "scenario_key" field. It is called by the builders before save.
	ScenarioKeyValidator func(string) error
	// ScenarioTypeValidator is a validator for the "scenario_type" field. It is called by the builders before save.
	ScenarioTypeValidator func(string) error
	// HandValidator is a validator for the "hand" field. It is called by the builders before save.
	HandValidator func(string) error
	// UserActionValidator is a validator for the "user_action" field. It is called by the builders before save.
	UserActionValidator func(string) error
	// CorrectActionValidator is a validator for the "correct_action" field. It is called by the builders before save.
	CorrectActionValidator func(string) error
	// LevelValidator is a validator for the "level" field. It is called by the builders before save.
	LevelValidator func(string) error
	// DefaultEarned holds the default value on creation for the "earned" field.
	DefaultEarned float64
	// DefaultMaxPossible holds the default value on creation for the "max_possible" field.
	DefaultMaxPossible float64
	// DefaultTimeMs holds the default value on creation for the "time_ms" field.
	DefaultTimeMs int
)

// OrderOption defines the ordering options for the AnswerEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByScenarioKey orders the results by the scenario_key field.
func ByScenarioKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioKey, opts...).ToFunc()
}

// ByScenarioType orders the results by the scenario_type field.
func ByScenarioType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScenarioType, opts...).ToFunc()
}

// ByHand orders the results by the hand field.
func ByHand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHand, opts...).ToFunc()
}

// ByUserAction orders the results by the user_action field.
func ByUserAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserAction, opts...).ToFunc()
}

// ByCorrectAction orders the results by the correct_action field.
func ByCorrectAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAction, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByAcceptable orders the results by the acceptable field.
func ByAcceptable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcceptable, opts...).ToFunc()
}

// ByEarned orders the results by the earned field.
func ByEarned(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEarned, opts...).ToFunc()
}

// ByMaxPossible orders the results by the max_possible field.
func ByMaxPossible(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxPossible, opts...).ToFunc()
}

// ByTimeMs orders the results by the time_ms field.
func ByTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeMs, opts...).ToFunc()
}
