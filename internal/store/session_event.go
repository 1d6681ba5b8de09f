package store

import (
	"context"
	"fmt"

	"github.com/sotaro-w/pfdojo/ent"
	"github.com/sotaro-w/pfdojo/ent/sessionevent"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetQuestions(data.Questions).
		SetCorrect(data.Correct).
		SetWeightedScore(data.WeightedScore).
		SetMaxScore(data.MaxScore).
		SetDurationSecs(data.DurationSecs)

	if len(data.LevelCounts) > 0 {
		builder = builder.SetLevelCounts(data.LevelCounts)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action("end")).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	out := make([]SessionSummary, len(events))
	for i, e := range events {
		out[i] = SessionSummary{
			SessionID:     e.SessionID,
			EndedAt:       e.Timestamp,
			Questions:     e.Questions,
			Correct:       e.Correct,
			WeightedScore: e.WeightedScore,
			MaxScore:      e.MaxScore,
			DurationSecs:  e.DurationSecs,
		}
	}
	return out, nil
}
