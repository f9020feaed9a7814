package game

import (
	"github.com/parkerc/last-quiz-standing/internal/models"
)

// NextPlayer computes whose turn comes after currentID for rounds that use a
// deterministic rotation. Only round 1 rotates: eligible contestants (online,
// not eliminated, under the question cap) are walked in join order with
// wrap-around. An empty result signals round completion to the caller.
// Rounds 2 and 3 assign turns by pointing and buzzing, never by rotation.
// Pure read; callers hold at least the read lock.
func NextPlayer(g *models.Game, currentID string, round models.Round) string {
	if round != models.Round1 {
		return ""
	}
	var pool []string
	for _, id := range g.JoinOrder {
		c := g.Contestants[id]
		if c == nil || c.Eliminated || !c.Online {
			continue
		}
		if c.Round1Questions >= Round1QuestionCap {
			continue
		}
		pool = append(pool, id)
	}
	if len(pool) == 0 {
		return ""
	}
	if currentID != "" {
		for i, id := range pool {
			if id == currentID {
				return pool[(i+1)%len(pool)]
			}
		}
	}
	return pool[0]
}

// RandomActive uniformly picks one online, non-eliminated contestant using
// the game's injected RNG. Empty when nobody is eligible.
func RandomActive(g *models.Game) string {
	ids := ActiveIDs(g)
	if len(ids) == 0 {
		return ""
	}
	return ids[g.Rng.Intn(len(ids))]
}
