package tui

import "github.com/caffeinepub/financewise-ai-personal-finance-education-platform-sub001/internal/model"

// answerMsg carries the result of asking a question.
type answerMsg struct {
	exchange *model.Exchange
	err      error
	seq      int
}

// revealMsg ends the typing indicator for question seq.
type revealMsg struct {
	seq int
}
