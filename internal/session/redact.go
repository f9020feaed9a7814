package session

import (
	"github.com/parkerc/last-quiz-standing/internal/models"
)

// RedactFor strips what the given role may not see from a snapshot before
// transmission. Only the presenter sees the correct answer of the question
// in flight; contestants and spectators get everything else unchanged.
func RedactFor(role models.Role, snap models.Snapshot) models.Snapshot {
	if role == models.RolePresenter {
		return snap
	}
	if snap.CurrentQuestion != nil {
		q := *snap.CurrentQuestion
		q.CorrectAnswer = ""
		snap.CurrentQuestion = &q
	}
	return snap
}
