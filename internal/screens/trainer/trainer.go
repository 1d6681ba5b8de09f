package trainer

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/sotaro-w/pfdojo/internal/coach"
	"github.com/sotaro-w/pfdojo/internal/dealer"
	"github.com/sotaro-w/pfdojo/internal/grading"
	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/llm"
	"github.com/sotaro-w/pfdojo/internal/router"
	"github.com/sotaro-w/pfdojo/internal/screen"
	"github.com/sotaro-w/pfdojo/internal/screens/history"
	"github.com/sotaro-w/pfdojo/internal/screens/summary"
	sess "github.com/sotaro-w/pfdojo/internal/session"
	"github.com/sotaro-w/pfdojo/internal/store"
	"github.com/sotaro-w/pfdojo/internal/ui/components"
	"github.com/sotaro-w/pfdojo/internal/ui/layout"
)

// TrainerScreen runs the quiz loop: deal a spot, grade the answer, show
// feedback, repeat. Difficulty follows the running accuracy, so the next
// deal is always computed from the tracker's current totals.
type TrainerScreen struct {
	gen    *dealer.Generator
	repo   store.EventRepo
	ai     *coach.Coach
	locale i18n.Locale

	tracker       *sess.Tracker
	current       *dealer.Situation
	selector      components.ActionSelect
	questionStart time.Time

	lastRecord         sess.Record
	showingFeedback    bool
	showingQuitConfirm bool

	coachText   string
	coachBusy   bool
	chatActive  bool
	chatInput   components.TextInput
	chatHistory []llm.Message

	errMsg string
}

var _ screen.Screen = (*TrainerScreen)(nil)
var _ screen.KeyHintProvider = (*TrainerScreen)(nil)
var _ screen.StatusProvider = (*TrainerScreen)(nil)
var _ screen.EscCapturer = (*TrainerScreen)(nil)

// New creates a TrainerScreen. The coach is optional; without it the
// AI explain and chat keys are hidden.
func New(gen *dealer.Generator, repo store.EventRepo, ai *coach.Coach, locale i18n.Locale) *TrainerScreen {
	return &TrainerScreen{
		gen:       gen,
		repo:      repo,
		ai:        ai,
		locale:    locale,
		tracker:   sess.NewTracker(),
		chatInput: components.NewTextInput("Ask the coach...", 120),
	}
}

func (t *TrainerScreen) Init() tea.Cmd {
	if t.repo != nil {
		_ = t.repo.AppendSession(context.Background(), store.SessionEventData{
			SessionID: t.tracker.ID().String(),
			Action:    "start",
		})
	}
	return t.nextQuestion()
}

func (t *TrainerScreen) Title() string {
	return "Train"
}

// CaptureEsc keeps Esc on this screen so it can confirm before ending the
// session instead of popping straight back.
func (t *TrainerScreen) CaptureEsc() bool {
	return t.errMsg == ""
}

// Status feeds the header: question count, accuracy and weighted score.
func (t *TrainerScreen) Status() string {
	st := t.tracker.Stats()
	if st.Total == 0 {
		return "Q 1"
	}
	return statusLine(st)
}

func (t *TrainerScreen) KeyHints() []layout.KeyHint {
	if t.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if t.chatActive {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Send"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if t.showingFeedback {
		hints := []layout.KeyHint{}
		if t.ai != nil {
			hints = append(hints,
				layout.KeyHint{Key: "E", Description: "Coach"},
				layout.KeyHint{Key: "C", Description: "Chat"},
			)
		}
		return append(hints,
			layout.KeyHint{Key: "H", Description: "Answer log"},
			layout.KeyHint{Key: "any key", Description: "Next hand"},
		)
	}
	return []layout.KeyHint{
		{Key: "1-3", Description: "Answer"},
		{Key: "H", Description: "Answer log"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (t *TrainerScreen) View(width, height int) string {
	if t.errMsg != "" {
		return renderError(width, t.errMsg)
	}
	if t.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if t.current == nil {
		return renderLoading(width)
	}
	if t.showingFeedback {
		return t.renderFeedback(width)
	}
	return t.renderQuestion(width)
}

func (t *TrainerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return t.handleQuestionReady(msg)
	case coachReplyMsg:
		return t.handleCoachReply(msg)
	case sessionEndMsg:
		return t.handleSessionEnd()
	case tea.KeyMsg:
		return t.handleKey(msg)
	}

	if t.chatActive {
		var cmd tea.Cmd
		t.chatInput, cmd = t.chatInput.Update(msg)
		return t, cmd
	}

	return t, nil
}

func (t *TrainerScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		t.errMsg = msg.Err.Error()
		return t, nil
	}
	sit := msg.Sit
	t.current = &sit

	opts := make([]string, len(sit.Options))
	for i, a := range sit.Options {
		opts[i] = string(a)
	}
	t.selector = components.NewActionSelect("", opts, -1)
	t.questionStart = time.Now()
	t.showingFeedback = false
	t.coachText = ""
	t.coachBusy = false
	t.chatHistory = nil
	return t, nil
}

func (t *TrainerScreen) handleCoachReply(msg coachReplyMsg) (screen.Screen, tea.Cmd) {
	t.coachBusy = false
	if msg.Err != nil {
		t.coachText = "Coach unavailable: " + msg.Err.Error()
		return t, nil
	}
	t.coachText = msg.Text
	t.chatHistory = append(t.chatHistory, llm.Message{Role: llm.RoleAssistant, Content: msg.Text})
	return t, nil
}

func (t *TrainerScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	stats := t.tracker.Stats()
	records := t.tracker.Records()

	if t.repo != nil {
		levelCounts := make(map[string]int)
		for _, r := range records {
			levelCounts[string(r.Level)]++
		}
		_ = t.repo.AppendSession(context.Background(), store.SessionEventData{
			SessionID:     t.tracker.ID().String(),
			Action:        "end",
			Questions:     stats.Total,
			Correct:       stats.Correct,
			WeightedScore: stats.WeightedScore,
			MaxScore:      stats.MaxPossibleScore,
			DurationSecs:  int(t.tracker.Duration().Seconds()),
			LevelCounts:   levelCounts,
		})
	}

	sum := summary.New(stats, records, t.tracker.Duration(), t.locale, t.ai)
	return t, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sum}
	}
}

func (t *TrainerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if t.errMsg != "" {
		return t, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if t.showingQuitConfirm {
		switch key {
		case "y", "Y":
			t.showingQuitConfirm = false
			return t, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			t.showingQuitConfirm = false
		}
		return t, nil
	}

	if t.chatActive {
		switch key {
		case "esc":
			t.chatActive = false
			return t, nil
		case "enter":
			question := t.chatInput.Value()
			if question == "" || t.coachBusy {
				return t, nil
			}
			t.chatInput.Reset()
			return t, t.askCoach(question)
		}
		var cmd tea.Cmd
		t.chatInput, cmd = t.chatInput.Update(msg)
		return t, cmd
	}

	if t.showingFeedback {
		switch key {
		case "e", "E":
			if t.ai != nil && !t.coachBusy {
				return t, t.explainLast()
			}
			return t, nil
		case "c", "C":
			if t.ai != nil {
				t.chatActive = true
				return t, t.chatInput.Init()
			}
			return t, nil
		case "h", "H":
			return t, t.pushLog()
		}
		return t, t.nextQuestion()
	}

	if t.current == nil {
		return t, nil
	}

	switch key {
	case "esc":
		t.showingQuitConfirm = true
		return t, nil
	case "enter":
		return t.submit(t.selector.Selected)
	case "h", "H":
		return t, t.pushLog()
	case "up", "k", "down", "j":
		var cmd tea.Cmd
		t.selector, cmd = t.selector.Update(msg)
		return t, cmd
	}

	if idx := t.selector.IndexForKey(key); idx >= 0 {
		return t.submit(idx)
	}

	return t, nil
}

// submit grades the chosen action, records it and switches to feedback.
func (t *TrainerScreen) submit(idx int) (screen.Screen, tea.Cmd) {
	if t.current == nil || idx < 0 || idx >= len(t.current.Options) {
		return t, nil
	}

	timeMs := int(time.Since(t.questionStart).Milliseconds())
	rec := sess.Grade(*t.current, t.current.Options[idx])
	t.tracker.Add(rec)

	correctIdx := -1
	for i, a := range t.current.Options {
		if a == rec.CorrectAction {
			correctIdx = i
		}
	}
	t.selector.CorrectIndex = correctIdx
	t.selector.Submit(idx, rec.Acceptable)

	if t.repo != nil {
		_ = t.repo.AppendAnswer(context.Background(), store.AnswerEventData{
			SessionID:     t.tracker.ID().String(),
			ScenarioKey:   rec.ScenarioKey,
			ScenarioType:  string(rec.ScenarioType),
			Hand:          string(rec.Hand),
			UserAction:    string(rec.UserAction),
			CorrectAction: string(rec.CorrectAction),
			Level:         string(rec.Level),
			Acceptable:    rec.Acceptable,
			Earned:        rec.Earned,
			MaxPossible:   rec.MaxPossible,
			TimeMs:        timeMs,
		})
	}

	t.lastRecord = rec
	t.showingFeedback = true
	return t, nil
}

// nextQuestion deals the next spot using the current running accuracy.
func (t *TrainerScreen) nextQuestion() tea.Cmd {
	accuracy := t.tracker.Stats().Accuracy()
	return func() tea.Msg {
		sit, err := t.gen.Generate(accuracy)
		return questionReadyMsg{Sit: sit, Err: err}
	}
}

// explainLast asks the coach for a note on the last graded answer.
func (t *TrainerScreen) explainLast() tea.Cmd {
	rec := t.lastRecord
	note := grading.Explanation(*t.current, rec.CorrectAction, t.locale)
	t.coachBusy = true
	return func() tea.Msg {
		text, err := t.ai.Explain(context.Background(), rec, note)
		return coachReplyMsg{Text: text, Err: err}
	}
}

// askCoach continues the chat about the last graded answer.
func (t *TrainerScreen) askCoach(question string) tea.Cmd {
	rec := t.lastRecord
	hist := make([]llm.Message, len(t.chatHistory))
	copy(hist, t.chatHistory)
	t.chatHistory = append(t.chatHistory, llm.Message{Role: llm.RoleUser, Content: question})
	t.coachBusy = true
	return func() tea.Msg {
		text, err := t.ai.Chat(context.Background(), rec, hist, question)
		return coachReplyMsg{Text: text, Err: err}
	}
}

// pushLog opens the session answer log over the trainer.
func (t *TrainerScreen) pushLog() tea.Cmd {
	tracker := t.tracker
	locale := t.locale
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: history.New(tracker, locale)}
	}
}
