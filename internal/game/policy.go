package game

import (
	"github.com/parkerc/last-quiz-standing/internal/models"
)

// Policy is one round's rule set. Every method is called with the game's
// write lock held and either applies its mutation in full or returns an
// error leaving the state untouched. The session router resolves identity
// and role before calling in; policies only judge round legality and turn
// ownership.
type Policy interface {
	// ResolveAnswer applies an already-graded answer for the actor.
	ResolveAnswer(g *models.Game, actorID string, correct bool) error
	// Point nominates the next answerer (round 2 only).
	Point(g *models.Game, actorID, targetID string) error
	// Buzz claims the open question (round 3 only).
	Buzz(g *models.Game, actorID string) error
	// Decide applies a presenter ruling (round 3 only).
	Decide(g *models.Game, choice, targetID string) error
}

// PolicyFor selects the rule set for the given round tag
func PolicyFor(r models.Round) Policy {
	switch r {
	case models.Round1:
		return round1Policy{}
	case models.Round2:
		return round2Policy{}
	case models.Round3:
		return round3Policy{}
	default:
		return outOfPlay{}
	}
}

// outOfPlay rejects everything; it doubles as the default for methods a
// round does not support.
type outOfPlay struct{}

func (outOfPlay) ResolveAnswer(*models.Game, string, bool) error { return ErrWrongRound }
func (outOfPlay) Point(*models.Game, string, string) error       { return ErrWrongRound }
func (outOfPlay) Buzz(*models.Game, string) error                { return ErrWrongRound }
func (outOfPlay) Decide(*models.Game, string, string) error      { return ErrWrongRound }

// enterRound2 clears round 1 turn state and seeds the first pointer at
// random. The seed also becomes the fallback pointer until someone answers.
func enterRound2(g *models.Game) {
	g.Round = models.Round2
	g.DecisionPending = false
	first := RandomActive(g)
	g.ActivePlayerID = first
	g.LastPointerID = first
}

// enterRound3 starts the finale: turn state is wiped and every survivor
// gets a clean life pool regardless of round 2 attrition. If attrition
// already left a single survivor the game ends immediately.
func enterRound3(g *models.Game) {
	g.Round = models.Round3
	g.ActivePlayerID = ""
	g.LastPointerID = ""
	g.DecisionPending = false
	for _, id := range SurvivorIDs(g) {
		g.Contestants[id].Lives = Round3Lives
	}
	switch CountSurvivors(g) {
	case 0, 1:
		finishGame(g)
	case DecisionSurvivors:
		g.DecisionPending = true
	}
}

// finishGame is terminal: after this only ResetGame mutates the state
func finishGame(g *models.Game) {
	g.Round = models.RoundFinished
	g.ActivePlayerID = ""
	g.LastPointerID = ""
	g.DecisionPending = false
	ClearQuestion(g)
}
