package coach

import (
	"github.com/sotaro-w/pfdojo/internal/i18n"
	"github.com/sotaro-w/pfdojo/internal/llm"
)

func systemPrompt(loc i18n.Locale) string {
	if loc == i18n.Ja {
		return "あなたは6-maxノーリミットホールデムのプリフロップ専門コーチです。" +
			"GTOの参照レンジに基づいて、簡潔で実戦的なアドバイスを日本語で返してください。" +
			"専門用語は最小限にし、初中級者にも伝わる言葉を選んでください。"
	}
	return "You are a preflop coach for 6-max no-limit hold'em. " +
		"Ground every answer in the GTO reference ranges, keep advice short and practical, " +
		"and write for an intermediate player."
}

func explainInstruction(loc i18n.Locale) string {
	if loc == i18n.Ja {
		return "\nこのスポットの判断理由を3文以内で説明してください。"
	}
	return "\nExplain the reasoning for this spot in at most three sentences."
}

func analyzeInstruction(loc i18n.Locale) string {
	if loc == i18n.Ja {
		return "\n繰り返し出ているミスのパターン（リーク）を特定し、改善アドバイスを返してください。"
	}
	return "\nIdentify recurring mistake patterns (leaks) and give advice for each."
}

// leakReportSchema constrains Analyze responses to a parseable report.
var leakReportSchema = &llm.Schema{
	Name:        "leak-report",
	Description: "Recurring preflop mistakes found in a player's answer history",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"leaks": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"pattern":  map[string]any{"type": "string"},
						"severity": map[string]any{"type": "string", "enum": []any{"low", "medium", "high"}},
						"advice":   map[string]any{"type": "string"},
					},
					"required":             []any{"pattern", "severity", "advice"},
					"additionalProperties": false,
				},
			},
			"summary": map[string]any{"type": "string"},
		},
		"required":             []any{"leaks", "summary"},
		"additionalProperties": false,
	},
}
