package trainer

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/sotaro-w/pfdojo/internal/dealer"
	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	answerEvents  []store.AnswerEventData
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) OverallStats(_ context.Context) (store.OverallStats, error) {
	return store.OverallStats{}, nil
}
func (m *mockEventRepo) ScenarioStats(_ context.Context) ([]store.ScenarioStats, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentAnswers(_ context.Context, _ int) ([]store.AnswerRow, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentSessions(_ context.Context, _ int) ([]store.SessionSummary, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsage(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) RecentLLMEvents(_ context.Context, _ int) ([]store.LLMEventRow, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMEventByID(_ context.Context, _ int) (*store.LLMEventRow, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testTrainer() (*TrainerScreen, *mockEventRepo) {
	rng := rand.New(rand.NewPCG(7, 7))
	gen := dealer.New(rng, i18n.En)
	repo := &mockEventRepo{}
	return New(gen, repo, nil, i18n.En), repo
}

// dealQuestion runs Init and delivers the generated situation.
func dealQuestion(t *testing.T, tr *TrainerScreen) *TrainerScreen {
	t.Helper()
	cmd := tr.Init()
	if cmd == nil {
		t.Fatal("Init returned no command")
	}
	msg := cmd()
	ready, ok := msg.(questionReadyMsg)
	if !ok {
		t.Fatalf("Init command produced %T, want questionReadyMsg", msg)
	}
	if ready.Err != nil {
		t.Fatalf("generate: %v", ready.Err)
	}
	scr, _ := tr.Update(ready)
	return scr.(*TrainerScreen)
}

func TestTrainerInitStartsSession(t *testing.T) {
	tr, repo := testTrainer()
	dealQuestion(t, tr)

	if len(repo.sessionEvents) != 1 || repo.sessionEvents[0].Action != "start" {
		t.Errorf("session events = %+v, want one start", repo.sessionEvents)
	}
	if tr.current == nil {
		t.Fatal("expected a dealt situation")
	}
	if len(tr.current.Options) < 2 {
		t.Errorf("options = %v", tr.current.Options)
	}
}

func TestTrainerNumberKeySubmits(t *testing.T) {
	tr, repo := testTrainer()
	tr = dealQuestion(t, tr)

	scr, _ := tr.Update(keyPress('1'))
	tr = scr.(*TrainerScreen)

	if !tr.showingFeedback {
		t.Error("expected feedback after answering")
	}
	st := tr.tracker.Stats()
	if st.Total != 1 {
		t.Errorf("tracker total = %d, want 1", st.Total)
	}
	if len(repo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answerEvents))
	}
	ev := repo.answerEvents[0]
	if ev.Hand != string(tr.lastRecord.Hand) || ev.Level != string(tr.lastRecord.Level) {
		t.Errorf("persisted event %+v does not match record %+v", ev, tr.lastRecord)
	}
}

func TestTrainerFeedbackAnyKeyDealsNext(t *testing.T) {
	tr, _ := testTrainer()
	tr = dealQuestion(t, tr)

	scr, _ := tr.Update(keyPress('1'))
	tr = scr.(*TrainerScreen)

	_, cmd := tr.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected a next-question command")
	}
	msg := cmd()
	if _, ok := msg.(questionReadyMsg); !ok {
		t.Errorf("got %T, want questionReadyMsg", msg)
	}
}

func TestTrainerOutOfRangeNumberIgnored(t *testing.T) {
	tr, _ := testTrainer()
	tr = dealQuestion(t, tr)

	n := len(tr.current.Options)
	scr, _ := tr.Update(keyPress(rune('1' + n)))
	tr = scr.(*TrainerScreen)

	if tr.showingFeedback {
		t.Error("out-of-range number key must not submit")
	}
	if tr.tracker.Stats().Total != 0 {
		t.Error("tracker must stay empty")
	}
}

func TestTrainerQuitConfirm(t *testing.T) {
	tr, repo := testTrainer()
	tr = dealQuestion(t, tr)

	scr, _ := tr.Update(specialKey(tea.KeyEscape))
	tr = scr.(*TrainerScreen)
	if !tr.showingQuitConfirm {
		t.Fatal("expected quit confirmation")
	}

	scr, _ = tr.Update(keyPress('n'))
	tr = scr.(*TrainerScreen)
	if tr.showingQuitConfirm {
		t.Fatal("expected quit confirmation dismissed")
	}

	scr, _ = tr.Update(specialKey(tea.KeyEscape))
	tr = scr.(*TrainerScreen)
	_, cmd := tr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected end-session command")
	}
	if _, ok := cmd().(sessionEndMsg); !ok {
		t.Error("expected sessionEndMsg")
	}

	scr, cmd = tr.Update(sessionEndMsg{})
	if cmd == nil {
		t.Fatal("expected summary navigation command")
	}
	_ = scr
	if len(repo.sessionEvents) != 2 || repo.sessionEvents[1].Action != "end" {
		t.Errorf("session events = %+v, want start then end", repo.sessionEvents)
	}
}

func TestTrainerSessionEndPersistsTotals(t *testing.T) {
	tr, repo := testTrainer()
	tr = dealQuestion(t, tr)

	scr, _ := tr.Update(keyPress('1'))
	tr = scr.(*TrainerScreen)

	tr.Update(sessionEndMsg{})

	end := repo.sessionEvents[len(repo.sessionEvents)-1]
	if end.Action != "end" || end.Questions != 1 {
		t.Errorf("end event = %+v", end)
	}
	if len(end.LevelCounts) != 1 {
		t.Errorf("level counts = %v", end.LevelCounts)
	}
	st := tr.tracker.Stats()
	if end.WeightedScore != st.WeightedScore || end.MaxScore != st.MaxPossibleScore {
		t.Errorf("end totals %+v do not match tracker %+v", end, st)
	}
}

func TestTrainerViewShowsOptions(t *testing.T) {
	tr, _ := testTrainer()
	tr = dealQuestion(t, tr)

	view := tr.View(80, 24)
	for _, opt := range tr.current.Options {
		if !strings.Contains(view, string(opt)) {
			t.Errorf("view missing option %q", opt)
		}
	}
	if !strings.Contains(view, string(tr.current.Hand.First.Rank)) {
		t.Error("view missing hole cards")
	}
}

func TestTrainerFeedbackShowsVerdict(t *testing.T) {
	tr, _ := testTrainer()
	tr = dealQuestion(t, tr)

	scr, _ := tr.Update(keyPress('1'))
	tr = scr.(*TrainerScreen)

	view := tr.View(80, 24)
	verdict := i18n.T(i18n.En, "verdict."+string(tr.lastRecord.Level), nil)
	if !strings.Contains(view, verdict) {
		t.Errorf("view missing verdict %q:\n%s", verdict, view)
	}
}

func TestTrainerStatusLine(t *testing.T) {
	tr, _ := testTrainer()
	tr = dealQuestion(t, tr)

	if got := tr.Status(); got != "Q 1" {
		t.Errorf("fresh status = %q", got)
	}

	scr, _ := tr.Update(keyPress('1'))
	tr = scr.(*TrainerScreen)
	if got := tr.Status(); !strings.Contains(got, "Q 2") {
		t.Errorf("status after one answer = %q", got)
	}
}
