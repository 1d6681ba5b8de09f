package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAppendAnswerAndOverallStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", ScenarioKey: "UTG", ScenarioType: "open", Hand: "AA",
			UserAction: "Raise", CorrectAction: "Raise", Level: "obvious",
			Acceptable: true, Earned: 0.5, MaxPossible: 0.5, TimeMs: 1200},
		{SessionID: "s1", ScenarioKey: "UTG", ScenarioType: "open", Hand: "K9s",
			UserAction: "Raise", CorrectAction: "Fold", Level: "wrong",
			Acceptable: false, Earned: 0, MaxPossible: 1, TimeMs: 2100},
		{SessionID: "s1", ScenarioKey: "BB_vs_BTN", ScenarioType: "vsOpen", Hand: "KQs",
			UserAction: "Call", CorrectAction: "3-Bet", Level: "borderline",
			Acceptable: true, Earned: 1, MaxPossible: 1, TimeMs: 3400},
	}
	for _, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	stats, err := repo.OverallStats(ctx)
	if err != nil {
		t.Fatalf("overall stats: %v", err)
	}
	if stats.Total != 3 || stats.Correct != 2 {
		t.Errorf("totals = %+v", stats)
	}
	if stats.WeightedScore != 1.5 || stats.MaxScore != 2.5 {
		t.Errorf("weighted = %v/%v", stats.WeightedScore, stats.MaxScore)
	}
	if stats.LevelCounts["borderline"] != 1 || stats.LevelCounts["wrong"] != 1 {
		t.Errorf("level counts = %v", stats.LevelCounts)
	}
}

func TestScenarioStatsWeakestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	add := func(key string, acceptable bool) {
		t.Helper()
		err := repo.AppendAnswer(ctx, AnswerEventData{
			SessionID: "s1", ScenarioKey: key, ScenarioType: "open", Hand: "AA",
			UserAction: "Raise", CorrectAction: "Raise", Level: "correct",
			Acceptable: acceptable, MaxPossible: 1,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	add("UTG", true)
	add("UTG", true)
	add("BTN", false)
	add("BTN", true)

	stats, err := repo.ScenarioStats(ctx)
	if err != nil {
		t.Fatalf("scenario stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d scenario rows", len(stats))
	}
	if stats[0].ScenarioKey != "BTN" || stats[1].ScenarioKey != "UTG" {
		t.Errorf("order = %v, want weakest first", stats)
	}
}

func TestRecentAnswersNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, h := range []string{"AA", "KK", "QQ"} {
		err := repo.AppendAnswer(ctx, AnswerEventData{
			SessionID: "s1", ScenarioKey: "UTG", ScenarioType: "open", Hand: h,
			UserAction: "Raise", CorrectAction: "Raise", Level: "obvious",
			Acceptable: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	rows, err := repo.RecentAnswers(ctx, 2)
	if err != nil {
		t.Fatalf("recent answers: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Hand != "QQ" || rows[1].Hand != "KK" {
		t.Errorf("order = %s, %s; want newest first", rows[0].Hand, rows[1].Hand)
	}
}

func TestSessionLifecycleAndRecentSessions(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSession(ctx, SessionEventData{SessionID: "s1", Action: "start"}); err != nil {
		t.Fatalf("append start: %v", err)
	}
	err := repo.AppendSession(ctx, SessionEventData{
		SessionID: "s1", Action: "end",
		Questions: 10, Correct: 7,
		WeightedScore: 6.5, MaxScore: 9,
		DurationSecs: 300,
		LevelCounts:  map[string]int{"correct": 5, "borderline": 2, "wrong": 3},
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	sessions, err := repo.RecentSessions(ctx, 10)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	// Start events are lifecycle markers, not summaries.
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	got := sessions[0]
	if got.SessionID != "s1" || got.Questions != 10 || got.Correct != 7 {
		t.Errorf("session = %+v", got)
	}
	if got.WeightedScore != 6.5 || got.MaxScore != 9 || got.DurationSecs != 300 {
		t.Errorf("session totals = %+v", got)
	}
}

func TestLLMUsageAggregatesPerModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "explain",
			InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "chat",
			InputTokens: 200, OutputTokens: 80, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "analyze",
			InputTokens: 300, OutputTokens: 120, Success: false, ErrorMessage: "boom"},
	}
	for _, r := range reqs {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append llm request: %v", err)
		}
	}

	usage, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("llm usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d usage rows", len(usage))
	}
	for _, u := range usage {
		switch u.Model {
		case "claude-haiku-4-5-20251001":
			if u.Requests != 2 || u.InputTokens != 300 || u.OutputTokens != 130 {
				t.Errorf("haiku usage = %+v", u)
			}
		case "gpt-4o-mini":
			if u.Requests != 1 || u.InputTokens != 300 {
				t.Errorf("gpt usage = %+v", u)
			}
		default:
			t.Errorf("unexpected model %q", u.Model)
		}
	}
}

func TestLLMEventInspection(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "mock", Model: "mock-1", Purpose: "explain",
			InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true,
			RequestBody: "why fold", ResponseBody: "because range"},
		{Provider: "mock", Model: "mock-1", Purpose: "explain",
			InputTokens: 20, OutputTokens: 10, LatencyMs: 300, Success: true},
		{Provider: "mock", Model: "mock-1", Purpose: "chat",
			InputTokens: 30, OutputTokens: 15, LatencyMs: 200, Success: false, ErrorMessage: "boom"},
	}
	for _, r := range reqs {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	rows, err := repo.RecentLLMEvents(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(rows) != 2 || rows[0].Purpose != "chat" {
		t.Errorf("recent rows = %+v, want newest first", rows)
	}

	got, err := repo.LLMEventByID(ctx, rows[1].ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got == nil || got.InputTokens != 20 {
		t.Errorf("row = %+v", got)
	}

	missing, err := repo.LLMEventByID(ctx, 99999)
	if err != nil {
		t.Fatalf("by id missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown id, got %+v", missing)
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d purpose rows", len(usage))
	}
	for _, u := range usage {
		if u.Purpose == "explain" {
			if u.Requests != 2 || u.InputTokens != 30 || u.AvgLatencyMs != 200 {
				t.Errorf("explain usage = %+v", u)
			}
		}
	}
}

func TestSequenceMonotonicAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64 = -1
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}
