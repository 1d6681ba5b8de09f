package store

import (
	"context"
	"fmt"

	"github.com/sotaro-w/pfdojo/ent"
	"github.com/sotaro-w/pfdojo/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) LLMUsage(ctx context.Context) ([]LLMUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM requests: %w", err)
	}

	byModel := make(map[string]*LLMUsage)
	var order []string
	for _, e := range events {
		u, ok := byModel[e.Model]
		if !ok {
			u = &LLMUsage{Model: e.Model}
			byModel[e.Model] = u
			order = append(order, e.Model)
		}
		u.Requests++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
	}

	out := make([]LLMUsage, 0, len(order))
	for _, m := range order {
		out = append(out, *byModel[m])
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM requests: %w", err)
	}

	byPurpose := make(map[string]*LLMPurposeUsage)
	totalLatency := make(map[string]int64)
	var order []string
	for _, e := range events {
		u, ok := byPurpose[e.Purpose]
		if !ok {
			u = &LLMPurposeUsage{Purpose: e.Purpose}
			byPurpose[e.Purpose] = u
			order = append(order, e.Purpose)
		}
		u.Requests++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		totalLatency[e.Purpose] += e.LatencyMs
	}

	out := make([]LLMPurposeUsage, 0, len(order))
	for _, p := range order {
		u := *byPurpose[p]
		u.AvgLatencyMs = totalLatency[p] / int64(u.Requests)
		out = append(out, u)
	}
	return out, nil
}

func (r *eventRepo) RecentLLMEvents(ctx context.Context, limit int) ([]LLMEventRow, error) {
	events, err := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM requests: %w", err)
	}

	out := make([]LLMEventRow, 0, len(events))
	for _, e := range events {
		out = append(out, llmEventRow(e))
	}
	return out, nil
}

func (r *eventRepo) LLMEventByID(ctx context.Context, id int) (*LLMEventRow, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM request %d: %w", id, err)
	}
	row := llmEventRow(e)
	return &row, nil
}

func llmEventRow(e *ent.LLMRequestEvent) LLMEventRow {
	return LLMEventRow{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
