package coach

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sotaro-w/pfdojo/internal/grading"
	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/llm"
	"github.com/sotaro-w/pfdojo/internal/session"
	"github.com/sotaro-w/pfdojo/internal/store"
)

func testRecord() session.Record {
	return session.Record{
		Summary:       "BB vs BTN",
		ScenarioKey:   "BB_vs_BTN",
		Hand:          "KQs",
		UserAction:    "Call",
		CorrectAction: "3-Bet",
		Level:         grading.Borderline,
		Acceptable:    true,
	}
}

func TestExplainBuildsPromptFromRecord(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"3-betting denies equity and builds the pot in position disadvantage."`)},
	)
	c := New(mock, i18n.En)

	got, err := c.Explain(context.Background(), testRecord(), "KQs is inside the 3-bet range.")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if !strings.Contains(got, "denies equity") {
		t.Errorf("explain text = %q", got)
	}

	prompt := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"KQs", "BB vs BTN", "Call", "3-Bet", "inside the 3-bet range"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if mock.Calls[0].Schema != nil {
		t.Error("explain must not request structured output")
	}
}

func TestExplainPlainTextResponse(t *testing.T) {
	// Providers without schema may hand back unquoted text.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`Just fold here.`)},
	)
	c := New(mock, i18n.En)
	got, err := c.Explain(context.Background(), testRecord(), "")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if got != "Just fold here." {
		t.Errorf("explain text = %q", got)
	}
}

func TestAnalyzeRequiresHistory(t *testing.T) {
	c := New(llm.NewMockProvider(), i18n.En)
	rows := make([]store.AnswerRow, MinAnswersForAnalysis-1)
	_, err := c.Analyze(context.Background(), rows)
	if !errors.Is(err, ErrNotEnoughData) {
		t.Fatalf("err = %v, want ErrNotEnoughData", err)
	}
}

func TestAnalyzeParsesLeakReport(t *testing.T) {
	report := `{"leaks":[{"pattern":"folding borderline 3-bet hands vs BTN","severity":"medium","advice":"defend wider from the BB"}],"summary":"Over-folding versus late-position opens."}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(report)},
	)
	c := New(mock, i18n.En)

	rows := make([]store.AnswerRow, MinAnswersForAnalysis)
	for i := range rows {
		rows[i] = store.AnswerRow{AnswerEventData: store.AnswerEventData{
			ScenarioKey: "BB_vs_BTN", Hand: "KQs",
			UserAction: "Fold", CorrectAction: "3-Bet", Level: "wrong",
		}}
	}

	got, err := c.Analyze(context.Background(), rows)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(got.Leaks) != 1 || got.Leaks[0].Severity != "medium" {
		t.Errorf("report = %+v", got)
	}
	if got.Summary == "" {
		t.Error("report missing summary")
	}

	if mock.Calls[0].Schema == nil || mock.Calls[0].Schema.Name != "leak-report" {
		t.Error("analyze must request the leak-report schema")
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "BB_vs_BTN KQs") {
		t.Errorf("prompt missing history rows:\n%s", mock.Calls[0].Messages[0].Content)
	}
}

func TestChatCarriesHistoryAndAnchor(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"Because the button opens wide."`)},
	)
	c := New(mock, i18n.En)

	history := []llm.Message{
		{Role: llm.RoleUser, Content: "Why not call?"},
		{Role: llm.RoleAssistant, Content: "Calling caps your range."},
	}
	got, err := c.Chat(context.Background(), testRecord(), history, "And why 3-bet so wide?")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got != "Because the button opens wide." {
		t.Errorf("chat text = %q", got)
	}

	msgs := mock.Calls[0].Messages
	if len(msgs) != 4 {
		t.Fatalf("got %d messages, want anchor + history + question", len(msgs))
	}
	if !strings.Contains(msgs[0].Content, "KQs") {
		t.Errorf("anchor missing hand: %q", msgs[0].Content)
	}
	if msgs[3].Content != "And why 3-bet so wide?" {
		t.Errorf("last message = %q", msgs[3].Content)
	}
}

func TestPromptsLocalized(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`"わかりました"`)},
	)
	c := New(mock, i18n.Ja)
	if _, err := c.Explain(context.Background(), testRecord(), ""); err != nil {
		t.Fatalf("explain: %v", err)
	}
	if !strings.Contains(mock.Calls[0].System, "コーチ") {
		t.Errorf("ja system prompt = %q", mock.Calls[0].System)
	}
}
