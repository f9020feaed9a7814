package game

import (
	"time"

	"github.com/parkerc/last-quiz-standing/internal/models"
)

// AwardPoints adds to a contestant's score; no-op if the ID is unknown
func AwardPoints(g *models.Game, id string, amount int) {
	if c, ok := g.Contestants[id]; ok {
		c.Score += amount
	}
}

// DeductLife removes one life, saturating at zero
func DeductLife(g *models.Game, id string) {
	c, ok := g.Contestants[id]
	if !ok {
		return
	}
	if c.Lives > 0 {
		c.Lives--
	}
}

// CheckElimination flips the eliminated flag once lives run out. Returns
// true only on the flip itself; re-checking an eliminated contestant is a
// no-op.
func CheckElimination(g *models.Game, id string) bool {
	c, ok := g.Contestants[id]
	if !ok || c.Eliminated {
		return false
	}
	if c.Lives <= 0 {
		c.Eliminated = true
		return true
	}
	return false
}

// ClearQuestion drops the in-flight question and its timer together.
// The two are set and cleared strictly as a pair.
func ClearQuestion(g *models.Game) {
	g.CurrentQuestion = nil
	g.TimerStart = time.Time{}
}

// CountSurvivors counts non-eliminated contestants. Connection status is
// irrelevant here: a disconnected survivor still counts for round
// transitions.
func CountSurvivors(g *models.Game) int {
	n := 0
	for _, c := range g.Contestants {
		if !c.Eliminated {
			n++
		}
	}
	return n
}

// SurvivorIDs lists non-eliminated contestants in join order
func SurvivorIDs(g *models.Game) []string {
	ids := make([]string, 0, len(g.Contestants))
	for _, id := range g.JoinOrder {
		if c, ok := g.Contestants[id]; ok && !c.Eliminated {
			ids = append(ids, id)
		}
	}
	return ids
}

// ActiveIDs lists contestants eligible to act right now: non-eliminated and
// online, in join order
func ActiveIDs(g *models.Game) []string {
	ids := make([]string, 0, len(g.Contestants))
	for _, id := range g.JoinOrder {
		if c, ok := g.Contestants[id]; ok && !c.Eliminated && c.Online {
			ids = append(ids, id)
		}
	}
	return ids
}
