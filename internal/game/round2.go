package game

import (
	"github.com/parkerc/last-quiz-standing/internal/models"
)

// round2Policy runs the pointing chain. The turn holder nominates who
// answers next; a correct answerer wins the right to point, a wrong answer
// hands the turn back to the previous pointer. The round ends once three or
// fewer survivors remain.
type round2Policy struct {
	outOfPlay
}

func (round2Policy) Point(g *models.Game, actorID, targetID string) error {
	if g.ActivePlayerID == "" || actorID != g.ActivePlayerID {
		return ErrNotYourTurn
	}
	if g.CurrentQuestion != nil {
		return ErrQuestionInFlight
	}
	t, ok := g.Contestants[targetID]
	if !ok || t.Eliminated || !t.Online || targetID == actorID {
		return ErrInvalidTarget
	}
	g.LastPointerID = actorID
	g.ActivePlayerID = targetID
	return nil
}

func (round2Policy) ResolveAnswer(g *models.Game, actorID string, correct bool) error {
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
		ClearQuestion(g)
		// The winner becomes the next pointer, not the next answerer.
		g.LastPointerID = actorID
		g.ActivePlayerID = actorID
	} else {
		DeductLife(g, actorID)
		CheckElimination(g, actorID)
		ClearQuestion(g)
		prev, ok := g.Contestants[g.LastPointerID]
		if ok && !prev.Eliminated && prev.Online {
			g.ActivePlayerID = g.LastPointerID
		} else {
			pick := RandomActive(g)
			g.ActivePlayerID = pick
			g.LastPointerID = pick
		}
	}

	if CountSurvivors(g) <= Round3Threshold {
		enterRound3(g)
	}
	return nil
}
