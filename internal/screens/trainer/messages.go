package trainer

import "github.com/sotaro-w/pfdojo/internal/dealer"

// questionReadyMsg delivers the next generated situation.
type questionReadyMsg struct {
	Sit dealer.Situation
	Err error
}

// coachReplyMsg delivers an LLM coach response for the last graded answer.
type coachReplyMsg struct {
	Text string
	Err  error
}

// sessionEndMsg requests ending the drill and showing the summary.
type sessionEndMsg struct{}
