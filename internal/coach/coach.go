// Package coach turns graded answers into LLM-backed feedback: one-off
// explanations of a spot, a leak report over recent history, and free-form
// chat about the last hand.
package coach

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/llm"
	"github.com/sotaro-w/pfdojo/internal/session"
	"github.com/sotaro-w/pfdojo/internal/store"
)

// MinAnswersForAnalysis is the smallest history a leak report is built from.
// Fewer answers produce noise, not patterns.
const MinAnswersForAnalysis = 5

// ErrNotEnoughData signals that the answer history is too short to analyze.
var ErrNotEnoughData = errors.New("not enough answers to analyze")

// Coach wraps an LLM provider with poker-specific prompting.
type Coach struct {
	provider llm.Provider
	locale   i18n.Locale
}

// New creates a Coach speaking the given locale.
func New(provider llm.Provider, locale i18n.Locale) *Coach {
	return &Coach{provider: provider, locale: locale}
}

// Explain asks for a short coaching note on one graded answer. The static
// range explanation is passed along so the model extends it instead of
// contradicting it.
func (c *Coach) Explain(ctx context.Context, rec session.Record, rangeNote string) (string, error) {
	ctx = llm.WithPurpose(ctx, "explain")

	var b strings.Builder
	fmt.Fprintf(&b, "Spot: %s\n", rec.Summary)
	fmt.Fprintf(&b, "Hand: %s\n", rec.Hand)
	fmt.Fprintf(&b, "Player chose: %s\n", rec.UserAction)
	fmt.Fprintf(&b, "Reference action: %s\n", rec.CorrectAction)
	fmt.Fprintf(&b, "Verdict: %s\n", rec.Level)
	if rangeNote != "" {
		fmt.Fprintf(&b, "Range note: %s\n", rangeNote)
	}
	b.WriteString(explainInstruction(c.locale))

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      systemPrompt(c.locale),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		MaxTokens:   512,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("explain: %w", err)
	}
	return textContent(resp.Content), nil
}

// Leak is one recurring mistake pattern found in the history.
type Leak struct {
	Pattern  string `json:"pattern"`
	Severity string `json:"severity"`
	Advice   string `json:"advice"`
}

// LeakReport is the structured result of a history analysis.
type LeakReport struct {
	Leaks   []Leak `json:"leaks"`
	Summary string `json:"summary"`
}

// Analyze builds a leak report from the player's recent answers.
func (c *Coach) Analyze(ctx context.Context, rows []store.AnswerRow) (*LeakReport, error) {
	if len(rows) < MinAnswersForAnalysis {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughData, len(rows), MinAnswersForAnalysis)
	}
	ctx = llm.WithPurpose(ctx, "analyze")

	var b strings.Builder
	b.WriteString("Recent answers, newest first:\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "- %s %s: chose %s, reference %s, verdict %s\n",
			r.ScenarioKey, r.Hand, r.UserAction, r.CorrectAction, r.Level)
	}
	b.WriteString(analyzeInstruction(c.locale))

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      systemPrompt(c.locale),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:      leakReportSchema,
		MaxTokens:   1024,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	var report LeakReport
	if err := json.Unmarshal(resp.Content, &report); err != nil {
		return nil, fmt.Errorf("parse leak report: %w", err)
	}
	return &report, nil
}

// Chat continues a conversation about the last graded answer. The history
// carries prior turns; the record anchors the model to the spot discussed.
func (c *Coach) Chat(ctx context.Context, rec session.Record, history []llm.Message, question string) (string, error) {
	ctx = llm.WithPurpose(ctx, "chat")

	anchor := fmt.Sprintf("Context: %s, hand %s, player chose %s, reference action %s.",
		rec.Summary, rec.Hand, rec.UserAction, rec.CorrectAction)

	msgs := make([]llm.Message, 0, len(history)+2)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: anchor})
	msgs = append(msgs, history...)
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: question})

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:      systemPrompt(c.locale),
		Messages:    msgs,
		MaxTokens:   512,
		Temperature: 0.5,
	})
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}
	return textContent(resp.Content), nil
}

// textContent renders a no-schema response as plain text. Providers return
// raw text in Content; it may or may not be a quoted JSON string.
func textContent(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
