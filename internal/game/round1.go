package game

import (
	"github.com/parkerc/last-quiz-standing/internal/models"
)

// round1Policy rotates through contestants in join order. Everyone faces up
// to two questions; two misses force elimination no matter how many lives
// remain. The round ends once nobody eligible is under the question cap.
type round1Policy struct {
	outOfPlay
}

func (round1Policy) ResolveAnswer(g *models.Game, actorID string, correct bool) error {
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
		c.Round1Misses++
		DeductLife(g, actorID)
		if c.Round1Misses >= Round1MissLimit {
			// Harder, round-specific threshold: eliminates even with lives left.
			c.Eliminated = true
		} else {
			CheckElimination(g, actorID)
		}
	}
	c.Round1Questions++
	ClearQuestion(g)

	next := NextPlayer(g, actorID, models.Round1)
	if next == "" {
		// Everyone eligible hit the cap (or nobody is left): round complete.
		enterRound2(g)
		return nil
	}
	g.ActivePlayerID = next
	return nil
}
