package session

import (
	"context"
	"log"
	"time"

	"github.com/parkerc/last-quiz-standing/internal/game"
	"github.com/parkerc/last-quiz-standing/internal/models"
)

// questionTarget reports whether a fresh question is due and for whom.
// Round 1 and 2 questions are pitched at the answerer's age bracket; a
// round 2 turn holder who equals the last pointer is pointing, not
// answering. Round 3 questions are open to the whole buzzer pool, paused
// while a host decision is outstanding. Read lock held by the caller.
func questionTarget(g *models.Game) (forID, age string, ok bool) {
	if g.CurrentQuestion != nil {
		return "", "", false
	}
	switch g.Round {
	case models.Round1:
		if g.ActivePlayerID == "" {
			return "", "", false
		}
		return g.ActivePlayerID, g.Contestants[g.ActivePlayerID].Age, true
	case models.Round2:
		if g.ActivePlayerID == "" || g.ActivePlayerID == g.LastPointerID {
			return "", "", false
		}
		return g.ActivePlayerID, g.Contestants[g.ActivePlayerID].Age, true
	case models.Round3:
		if g.ActivePlayerID != "" || g.DecisionPending {
			return "", "", false
		}
		return "", "", true
	}
	return "", "", false
}

// maybeAskQuestion generates the next question when the game is waiting on
// one. Generation runs off the lock; the result is installed through
// BeginQuestion, which drops it if the turn moved on meanwhile.
func (rt *Router) maybeAskQuestion(g *models.Game) {
	g.RLock()
	forID, age, ok := questionTarget(g)
	round := g.Round
	past := append([]string(nil), g.PastQuestions...)
	g.RUnlock()
	if !ok {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), rt.oracleTimeout)
		q, err := rt.oracle.GenerateQuestion(ctx, age, past)
		cancel()
		if err != nil || q == nil {
			// Degrade to "no question available"; the next action retries.
			log.Printf("session: room=%s question generation failed: %v", g.Code, err)
			return
		}

		started := time.Now()
		g.Lock()
		err = game.BeginQuestion(g, round, forID, q, started)
		var snap models.Snapshot
		if err == nil {
			snap = g.Snapshot()
		}
		g.Unlock()
		if err != nil {
			if debug {
				log.Printf("session: room=%s dropped stale question: %v", g.Code, err)
			}
			return
		}

		rt.broadcast(g, snap)
		rt.scheduleTimeout(g, started)
	}()
}

// scheduleTimeout resolves a question as a wrong answer once the deadline
// passes, unless it already resolved or was replaced. A round 3 question
// nobody buzzed on retires without penalty.
func (rt *Router) scheduleTimeout(g *models.Game, started time.Time) {
	if rt.questionTimeout <= 0 {
		return
	}
	time.AfterFunc(rt.questionTimeout, func() {
		g.Lock()
		if g.CurrentQuestion == nil || !g.TimerStart.Equal(started) {
			g.Unlock()
			return
		}
		var err error
		if actor := g.ActivePlayerID; actor != "" {
			err = game.PolicyFor(g.Round).ResolveAnswer(g, actor, false)
		} else {
			game.ClearQuestion(g)
		}
		snap := g.Snapshot()
		g.Unlock()
		if err != nil {
			log.Printf("session: room=%s timeout resolution failed: %v", g.Code, err)
			return
		}
		rt.broadcast(g, snap)
		rt.maybeAskQuestion(g)
	})
}
