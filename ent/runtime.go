// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/sotaro-w/pfdojo/ent/answerevent"
	"github.com/sotaro-w/pfdojo/ent/llmrequestevent"
	"github.com/sotaro-w/pfdojo/ent/schema"
	"github.com/sotaro-w/pfdojo/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescScenarioKey is the schema descriptor for scenario_key field.
	answereventDescScenarioKey := answereventFields[1].Descriptor()
	// answerevent.ScenarioKeyValidator is a validator for the "scenario_key" field. It is called by the builders before save.
	answerevent.ScenarioKeyValidator = answereventDescScenarioKey.Validators[0].(func(string) error)
	// answereventDescScenarioType is the schema descriptor for scenario_type field.
	answereventDescScenarioType := answereventFields[2].Descriptor()
	// answerevent.ScenarioTypeValidator is a validator for the "scenario_type" field. It is called by the builders before save.
	answerevent.ScenarioTypeValidator = answereventDescScenarioType.Validators[0].(func(string) error)
	// answereventDescHand is the schema descriptor for hand field.
	answereventDescHand := answereventFields[3].Descriptor()
	// answerevent.HandValidator is a validator for the "hand" field. It is called by the builders before save.
	answerevent.HandValidator = answereventDescHand.Validators[0].(func(string) error)
	// answereventDescUserAction is the schema descriptor for user_action field.
	answereventDescUserAction := answereventFields[4].Descriptor()
	// answerevent.UserActionValidator is a validator for the "user_action" field. It is called by the builders before save.
	answerevent.UserActionValidator = answereventDescUserAction.Validators[0].(func(string) error)
	// answereventDescCorrectAction is the schema descriptor for correct_action field.
	answereventDescCorrectAction := answereventFields[5].Descriptor()
	// answerevent.CorrectActionValidator is a validator for the "correct_action" field. It is called by the builders before save.
	answerevent.CorrectActionValidator = answereventDescCorrectAction.Validators[0].(func(string) error)
	// answereventDescLevel is the schema descriptor for level field.
	answereventDescLevel := answereventFields[6].Descriptor()
	// answerevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	answerevent.LevelValidator = answereventDescLevel.Validators[0].(func(string) error)
	// answereventDescEarned is the schema descriptor for earned field.
	answereventDescEarned := answereventFields[8].Descriptor()
	// answerevent.DefaultEarned holds the default value on creation for the earned field.
	answerevent.DefaultEarned = answereventDescEarned.Default.(float64)
	// answereventDescMaxPossible is the schema descriptor for max_possible field.
	answereventDescMaxPossible := answereventFields[9].Descriptor()
	// answerevent.DefaultMaxPossible holds the default value on creation for the max_possible field.
	answerevent.DefaultMaxPossible = answereventDescMaxPossible.Default.(float64)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[10].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescQuestions is the schema descriptor for questions field.
	sessioneventDescQuestions := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultQuestions holds the default value on creation for the questions field.
	sessionevent.DefaultQuestions = sessioneventDescQuestions.Default.(int)
	// sessioneventDescCorrect is the schema descriptor for correct field.
	sessioneventDescCorrect := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrect holds the default value on creation for the correct field.
	sessionevent.DefaultCorrect = sessioneventDescCorrect.Default.(int)
	// sessioneventDescWeightedScore is the schema descriptor for weighted_score field.
	sessioneventDescWeightedScore := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultWeightedScore holds the default value on creation for the weighted_score field.
	sessionevent.DefaultWeightedScore = sessioneventDescWeightedScore.Default.(float64)
	// sessioneventDescMaxScore is the schema descriptor for max_score field.
	sessioneventDescMaxScore := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultMaxScore holds the default value on creation for the max_score field.
	sessionevent.DefaultMaxScore = sessioneventDescMaxScore.Default.(float64)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
