package grading

// Weight is the scoring contribution of one verdict tier. Correct is added
// to the earned score when the tier applies on a correct answer, Wrong when
// it applies on an incorrect one, and MaxPossible always accrues.
type Weight struct {
	Correct     float64
	Wrong       float64
	MaxPossible float64
}

// ScoreWeights drives the weighted session score. Obvious answers earn half
// credit because they prove little; borderline answers earn full credit
// either way; critical mistakes cost points outright.
var ScoreWeights = map[AnswerLevel]Weight{
	Obvious:         {Correct: 0.5, Wrong: 0, MaxPossible: 0.5},
	Correct:         {Correct: 1.0, Wrong: 0, MaxPossible: 1.0},
	Borderline:      {Correct: 1.0, Wrong: 1.0, MaxPossible: 1.0},
	Wrong:           {Correct: 0, Wrong: 0, MaxPossible: 1.0},
	CriticalMistake: {Correct: 0, Wrong: -0.5, MaxPossible: 1.0},
}

// Score returns the earned and maximum-possible score delta for one graded
// answer. The verdict tier already encodes whether the answer was correct:
// Obvious and Correct only occur on correct answers, Wrong and
// CriticalMistake only on incorrect ones, and Borderline pays out the same
// either way.
func Score(level AnswerLevel) (earned, maxPossible float64) {
	w, ok := ScoreWeights[level]
	if !ok {
		return 0, 0
	}
	switch level {
	case Obvious, Correct, Borderline:
		return w.Correct, w.MaxPossible
	default:
		return w.Wrong, w.MaxPossible
	}
}
