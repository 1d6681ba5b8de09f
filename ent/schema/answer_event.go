package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded answer within a training session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("scenario_key").
			NotEmpty().
			Comment("Seat for opens, e.g. UTG; pairing for vsOpen, e.g. BB_vs_BTN"),
		field.String("scenario_type").
			NotEmpty().
			Comment("open or vsOpen"),
		field.String("hand").
			NotEmpty().
			Comment("Canonical hand class, e.g. AKs"),
		field.String("user_action").
			NotEmpty().
			Comment("What the player chose"),
		field.String("correct_action").
			NotEmpty().
			Comment("The reference action"),
		field.String("level").
			NotEmpty().
			Comment("Verdict tier: obvious, correct, borderline, wrong, critical_mistake"),
		field.Bool("acceptable").
			Comment("Whether the answer counts toward accuracy"),
		field.Float("earned").
			Default(0).
			Comment("Weighted score delta"),
		field.Float("max_possible").
			Default(0).
			Comment("Weighted score ceiling delta"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("scenario_key"),
		index.Fields("acceptable"),
	}
}
