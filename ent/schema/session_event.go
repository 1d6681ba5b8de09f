package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle events (start/end).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start or end"),
		field.Int("questions").
			Default(0).
			Comment("Total answers (on end only)"),
		field.Int("correct").
			Default(0).
			Comment("Acceptable answers (on end only)"),
		field.Float("weighted_score").
			Default(0).
			Comment("Weighted score earned (on end only)"),
		field.Float("max_score").
			Default(0).
			Comment("Weighted score ceiling (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual duration in seconds (on end only)"),
		field.JSON("level_counts", map[string]int{}).
			Optional().
			Comment("Answers per verdict tier (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
