package game

import (
	"github.com/parkerc/last-quiz-standing/internal/models"
)

// round3Policy is the buzzer finale for the last survivors. Questions open
// with no turn holder; the first eligible buzz claims the answer. Scoring
// and elimination mirror round 2. The game ends with a single survivor or
// an explicit presenter ruling.
type round3Policy struct {
	outOfPlay
}

func (round3Policy) Buzz(g *models.Game, actorID string) error {
	if g.CurrentQuestion == nil {
		return ErrNoQuestion
	}
	if g.ActivePlayerID != "" {
		return ErrAlreadyBuzzed
	}
	c, ok := g.Contestants[actorID]
	if !ok || c.Eliminated || !c.Online {
		return ErrEliminated
	}
	g.ActivePlayerID = actorID
	return nil
}

func (round3Policy) ResolveAnswer(g *models.Game, actorID string, correct bool) error {
	if g.CurrentQuestion == nil {
		return ErrNoQuestion
	}
	if g.ActivePlayerID == "" || actorID != g.ActivePlayerID {
		return ErrNotYourTurn
	}
	c, ok := g.Contestants[actorID]
	if !ok || c.Eliminated {
		return ErrEliminated
	}

	if correct {
		AwardPoints(g, actorID, PointsPerCorrect)
	} else {
		DeductLife(g, actorID)
		CheckElimination(g, actorID)
	}
	ClearQuestion(g)
	g.ActivePlayerID = "" // next question is open to buzzes again

	switch CountSurvivors(g) {
	case 0, 1:
		finishGame(g)
	case DecisionSurvivors:
		g.DecisionPending = true
	}
	return nil
}

func (round3Policy) Decide(g *models.Game, choice, targetID string) error {
	switch choice {
	case DecisionContinue:
		g.DecisionPending = false
		return nil
	case DecisionFinish:
		if targetID != "" {
			t, ok := g.Contestants[targetID]
			if !ok || t.Eliminated {
				return ErrInvalidTarget
			}
			// The ruling crowns a winner: everyone else is out.
			for id, c := range g.Contestants {
				if id != targetID {
					c.Eliminated = true
				}
			}
		} else if CountSurvivors(g) > 1 {
			return ErrInvalidTarget
		}
		finishGame(g)
		return nil
	default:
		return ErrUnknownDecision
	}
}
