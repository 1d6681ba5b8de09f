package i18n

var tables = map[Locale]map[string]string{
	En: {
		"open.desc.UTG": "UTG. First to act.",
		"open.desc.HJ":  "HJ. UTG folds.",
		"open.desc.CO":  "CO. UTG and HJ fold.",
		"open.desc.BTN": "BTN. Folds to you.",
		"open.desc.SB":  "SB. Everyone folds to you.",
		"vsopen.desc":   "{hero}. {villain} opens to 2.5bb.",

		"explain.open.raise":            "{hand} is inside the opening range from {position}.",
		"explain.open.raise.suited_ace": "\nSuited aces carry flush and straight potential plus blocker value.",
		"explain.open.raise.pair":       "\nPocket pairs have set-mining value.",
		"explain.open.fold":             "{hand} is too weak to open from {position}.",
		"explain.open.fold.early":       "\nEarly position calls for a tighter range.",
		"explain.vsopen.threebet":       "{hand} can 3-bet against a {villain} open.",
		"explain.vsopen.threebet.bluff": "\nSmall suited aces also work as 3-bet bluffs (blocker plus nut potential).",
		"explain.vsopen.call":           "{hand} is best played as a call.\nToo weak to 3-bet, too good to fold.",
		"explain.vsopen.fold":           "{hand} should be folded here.\nContinuing is hard to justify on expectation.",

		"verdict.critical_mistake": "Burn this one in!",
		"verdict.wrong":            "Incorrect",
		"verdict.borderline":       "Close call",
		"verdict.correct":          "Correct!",
		"verdict.obvious":          "Perfect!",
		"verdict.borderline.note":  "This hand is borderline: either line is defensible depending on the spot.",
	},
	Ja: {
		"open.desc.UTG": "UTG。最初のアクション。",
		"open.desc.HJ":  "HJ。UTGがフォールド。",
		"open.desc.CO":  "CO。UTG、HJがフォールド。",
		"open.desc.BTN": "BTN。UTG〜COがフォールド。",
		"open.desc.SB":  "SB。全員フォールドで回ってきた。",
		"vsopen.desc":   "{hero}。{villain}が2.5bbオープン。",

		"explain.open.raise":            "{hand}は{position}からのオープンレンジに含まれます。",
		"explain.open.raise.suited_ace": "\nスーテッドAは、フラッシュ・ストレートのポテンシャルとブロッカー効果があります。",
		"explain.open.raise.pair":       "\nポケットペアはセットマイニングの価値があります。",
		"explain.open.fold":             "{hand}は{position}からのオープンには弱いです。",
		"explain.open.fold.early":       "\nアーリーポジションでは、よりタイトなレンジでプレイします。",
		"explain.vsopen.threebet":       "{hand}はvs {villain}で3-betできるハンドです。",
		"explain.vsopen.threebet.bluff": "\n小さいスーテッドAはブラフ3-betとしても使えます（ブロッカー＋ナッツポテンシャル）。",
		"explain.vsopen.call":           "{hand}はコールに適したハンドです。\n3-betするには弱く、フォールドするにはもったいないレンジです。",
		"explain.vsopen.fold":           "{hand}はここではフォールドが推奨されます。\n期待値的にプレイを続けるのが難しいハンドです。",

		"verdict.critical_mistake": "これは覚えよう！",
		"verdict.wrong":            "不正解",
		"verdict.borderline":       "微妙なライン",
		"verdict.correct":          "正解！",
		"verdict.obvious":          "完璧！",
		"verdict.borderline.note":  "※ このハンドはボーダーラインです。状況によってはどちらの選択もありえます。",
	},
}
