// Package oracle supplies trivia questions and grades submitted answers.
//
// Both operations are network-bound and fallible. Callers must never invoke
// them while holding a game's state lock: generate or grade first, then
// apply the result in a separately locked mutation.
package oracle

import (
	"context"

	"github.com/parkerc/last-quiz-standing/internal/models"
)

// Oracle is the question source and answer judge for the engine
type Oracle interface {
	// GenerateQuestion returns a fresh question for the given age bracket,
	// avoiding anything in pastQuestions. An empty bracket means a general
	// audience (round 3 open questions).
	GenerateQuestion(ctx context.Context, ageBracket string, pastQuestions []string) (*models.Question, error)

	// ValidateAnswer leniently judges a submitted answer against the
	// correct one, tolerating minor typos and paraphrase.
	ValidateAnswer(ctx context.Context, questionText, correctAnswer, submitted string) (bool, error)
}
