package store

import (
	"context"
	"fmt"

	"github.com/sotaro-w/pfdojo/ent"
	"github.com/sotaro-w/pfdojo/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetScenarioKey(data.ScenarioKey).
		SetScenarioType(data.ScenarioType).
		SetHand(data.Hand).
		SetUserAction(data.UserAction).
		SetCorrectAction(data.CorrectAction).
		SetLevel(data.Level).
		SetAcceptable(data.Acceptable).
		SetEarned(data.Earned).
		SetMaxPossible(data.MaxPossible).
		SetTimeMs(data.TimeMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) OverallStats(ctx context.Context) (OverallStats, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return OverallStats{}, fmt.Errorf("query answers: %w", err)
	}

	stats := OverallStats{LevelCounts: make(map[string]int)}
	for _, e := range events {
		stats.Total++
		if e.Acceptable {
			stats.Correct++
		}
		stats.WeightedScore += e.Earned
		stats.MaxScore += e.MaxPossible
		stats.LevelCounts[e.Level]++
	}
	return stats, nil
}

func (r *eventRepo) ScenarioStats(ctx context.Context) ([]ScenarioStats, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}

	byKey := make(map[string]*ScenarioStats)
	var order []string
	for _, e := range events {
		s, ok := byKey[e.ScenarioKey]
		if !ok {
			s = &ScenarioStats{ScenarioKey: e.ScenarioKey}
			byKey[e.ScenarioKey] = s
			order = append(order, e.ScenarioKey)
		}
		s.Total++
		if e.Acceptable {
			s.Correct++
		}
	}

	out := make([]ScenarioStats, 0, len(order))
	for _, k := range order {
		out = append(out, *byKey[k])
	}
	// Weakest spots first, so the player sees what to work on.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Accuracy() < out[j-1].Accuracy(); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (r *eventRepo) RecentAnswers(ctx context.Context, limit int) ([]AnswerRow, error) {
	q := r.client.AnswerEvent.Query().
		Order(ent.Desc(answerevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent answers: %w", err)
	}

	out := make([]AnswerRow, len(events))
	for i, e := range events {
		out[i] = AnswerRow{
			AnswerEventData: AnswerEventData{
				SessionID:     e.SessionID,
				ScenarioKey:   e.ScenarioKey,
				ScenarioType:  e.ScenarioType,
				Hand:          e.Hand,
				UserAction:    e.UserAction,
				CorrectAction: e.CorrectAction,
				Level:         e.Level,
				Acceptable:    e.Acceptable,
				Earned:        e.Earned,
				MaxPossible:   e.MaxPossible,
				TimeMs:        e.TimeMs,
			},
			Timestamp: e.Timestamp,
		}
	}
	return out, nil
}
