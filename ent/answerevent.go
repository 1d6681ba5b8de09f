// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/sotaro-w/pfdojo/ent/answerevent"
)

// AnswerEvent is the model entity for the AnswerEvent schema.
type AnswerEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Seat for opens, e.g. UTG; pairing for vsOpen, e.g. BB_vs_BTN
	ScenarioKey string `json:"scenario_key,omitempty"`
	// open or vsOpen
	ScenarioType string `json:"scenario_type,omitempty"`
	// Canonical hand class, e.g. AKs
	Hand string `json:"hand,omitempty"`
	// What the player chose
	UserAction string `json:"user_action,omitempty"`
	// The reference action
	CorrectAction string `json:"correct_action,omitempty"`
	// Verdict tier: obvious, correct, borderline, wrong, critical_mistake
	Level string `json:"level,omitempty"`
	// Whether the answer counts toward accuracy
	Acceptable bool `json:"acceptable,omitempty"`
	// Weighted score delta
	Earned float64 `json:"earned,omitempty"`
	// Weighted score ceiling delta
	MaxPossible float64 `json:"max_possible,omitempty"`
	// Milliseconds to answer
	TimeMs       int `json:"time_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnswerEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answerevent.FieldAcceptable:
			values[i] = new(sql.NullBool)
		case answerevent.FieldEarned, answerevent.FieldMaxPossible:
			values[i] = new(sql.NullFloat64)
		case answerevent.FieldID, answerevent.FieldSequence, answerevent.FieldTimeMs:
			values[i] = new(sql.NullInt64)
		case answerevent.FieldSessionID, answerevent.FieldScenarioKey, answerevent.FieldScenarioType, answerevent.FieldHand, answerevent.FieldUserAction, answerevent.FieldCorrectAction, answerevent.FieldLevel:
			values[i] = new(sql.NullString)
		case answerevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnswerEvent fields.
func (_m *AnswerEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answerevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case answerevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case answerevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case answerevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case answerevent.FieldScenarioKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_key", values[i])
			} else if value.Valid {
				_m.ScenarioKey = value.String
			}
		case answerevent.FieldScenarioType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scenario_type", values[i])
			} else if value.Valid {
				_m.ScenarioType = value.String
			}
		case answerevent.FieldHand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hand", values[i])
			} else if value.Valid {
				_m.Hand = value.String
			}
		case answerevent.FieldUserAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_action", values[i])
			} else if value.Valid {
				_m.UserAction = value.String
			}
		case answerevent.FieldCorrectAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_action", values[i])
			} else if value.Valid {
				_m.CorrectAction = value.String
			}
		case answerevent.FieldLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field level", values[i])
			} else if value.Valid {
				_m.Level = value.String
			}
		case answerevent.FieldAcceptable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field acceptable", values[i])
			} else if value.Valid {
				_m.Acceptable = value.Bool
			}
		case answerevent.FieldEarned:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field earned", values[i])
			} else if value.Valid {
				_m.Earned = value.Float64
			}
		case answerevent.FieldMaxPossible:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_possible", values[i])
			} else if value.Valid {
				_m.MaxPossible = value.Float64
			}
		case answerevent.FieldTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_ms", values[i])
			} else if value.Valid {
				_m.TimeMs = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnswerEvent.
// This includes values selected through modifiers, order, etc.
func (_m *AnswerEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AnswerEvent.
// Note that you need to call AnswerEvent.Unwrap() before calling this method if this AnswerEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnswerEvent) Update() *AnswerEventUpdateOne {
	return NewAnswerEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnswerEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnswerEvent) Unwrap() *AnswerEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnswerEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnswerEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnswerEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("scenario_key=")
	builder.WriteString(_m.ScenarioKey)
	builder.WriteString(", ")
	builder.WriteString("scenario_type=")
	builder.WriteString(_m.ScenarioType)
	builder.WriteString(", ")
	builder.WriteString("hand=")
	builder.WriteString(_m.Hand)
	builder.WriteString(", ")
	builder.WriteString("user_action=")
	builder.WriteString(_m.UserAction)
	builder.WriteString(", ")
	builder.WriteString("correct_action=")
	builder.WriteString(_m.CorrectAction)
	builder.WriteString(", ")
	builder.WriteString("level=")
	builder.WriteString(_m.Level)
	builder.WriteString(", ")
	builder.WriteString("acceptable=")
	builder.WriteString(fmt.Sprintf("%v", _m.Acceptable))
	builder.WriteString(", ")
	builder.WriteString("earned=")
	builder.WriteString(fmt.Sprintf("%v", _m.Earned))
	builder.WriteString(", ")
	builder.WriteString("max_possible=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxPossible))
	builder.WriteString(", ")
	builder.WriteString("time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TimeMs))
	builder.WriteByte(')')
	return builder.String()
}

// AnswerEvents is a parsable slice of AnswerEvent.
type AnswerEvents []*AnswerEvent
