package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/parkerc/last-quiz-standing/internal/models"
)

// Lifecycle operations sit outside any single round: joining, readiness,
// starting, resetting, connection tracking and installing oracle questions.
// All of them require the game's write lock.

// JoinPresenter claims the presenter seat for the given session. A second
// presenter join from a different session is rejected, never merged; the
// same session re-joining just comes back online.
func JoinPresenter(g *models.Game, sessionID string) error {
	if g.PresenterID != "" && g.PresenterSession != sessionID {
		return ErrPresenterTaken
	}
	if g.PresenterID == "" {
		g.PresenterID = uuid.New().String()
		g.PresenterSession = sessionID
	}
	g.PresenterOnline = true
	return nil
}

// JoinContestant registers a new contestant in the lobby. Joining again
// with the same session token is idempotent and marks the contestant
// online. Joins after the game started are rejected.
func JoinContestant(g *models.Game, sessionID, name, age string) (*models.Contestant, error) {
	if id, ok := g.BySession[sessionID]; ok {
		c := g.Contestants[id]
		c.Online = true
		return c, nil
	}
	if g.Round != models.RoundLobby {
		return nil, ErrGameInProgress
	}
	c := &models.Contestant{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Name:      name,
		Age:       age,
		Online:    true,
	}
	g.Contestants[c.ID] = c
	g.JoinOrder = append(g.JoinOrder, c.ID)
	g.BySession[sessionID] = c.ID
	return c, nil
}

// ToggleReady flips a contestant's lobby ready flag
func ToggleReady(g *models.Game, contestantID string) error {
	if g.Round != models.RoundLobby {
		return ErrWrongRound
	}
	c, ok := g.Contestants[contestantID]
	if !ok {
		return ErrUnknownSession
	}
	c.Ready = !c.Ready
	return nil
}

// StartGame moves the lobby into round 1. It needs enough contestants and
// every online contestant ready; scores, lives and round 1 counters are
// reset and the first turn goes to the head of the join-order rotation.
func StartGame(g *models.Game) error {
	if g.Round != models.RoundLobby {
		return ErrGameInProgress
	}
	online := 0
	for _, c := range g.Contestants {
		if c.Online {
			online++
			if !c.Ready {
				return ErrNotEnoughPlayers
			}
		}
	}
	if online < MinContestants {
		return ErrNotEnoughPlayers
	}
	for _, c := range g.Contestants {
		c.Score = 0
		c.Lives = StartingLives
		c.Round1Misses = 0
		c.Round1Questions = 0
		c.Eliminated = false
	}
	g.Round = models.Round1
	g.ActivePlayerID = NextPlayer(g, "", models.Round1)
	g.LastPointerID = ""
	g.DecisionPending = false
	g.PastQuestions = nil
	ClearQuestion(g)
	return nil
}

// ResetGame returns to an empty lobby from any state. The contestant map is
// cleared; old session tokens stop resolving, so previously joined players
// must join again. The presenter keeps the seat.
func ResetGame(g *models.Game) {
	g.Contestants = make(map[string]*models.Contestant)
	g.JoinOrder = nil
	g.BySession = make(map[string]string)
	g.Round = models.RoundLobby
	g.ActivePlayerID = ""
	g.LastPointerID = ""
	g.DecisionPending = false
	g.PastQuestions = nil
	ClearQuestion(g)
}

// Disconnect marks the identity behind a session offline. Score, lives and
// elimination status are untouched; the contestant stays in the registry
// for reconnects.
func Disconnect(g *models.Game, sessionID string) {
	if sessionID == "" {
		return
	}
	if g.PresenterSession == sessionID {
		g.PresenterOnline = false
		return
	}
	if id, ok := g.BySession[sessionID]; ok {
		g.Contestants[id].Online = false
	}
}

// Reconnect restores the identity behind a session token and reports its
// role. Spectators (unknown tokens) come back as spectators.
func Reconnect(g *models.Game, sessionID string) (models.Role, string) {
	if sessionID == g.PresenterSession && g.PresenterID != "" {
		g.PresenterOnline = true
		return models.RolePresenter, ""
	}
	if id, ok := g.BySession[sessionID]; ok {
		g.Contestants[id].Online = true
		return models.RoleContestant, id
	}
	return models.RoleSpectator, ""
}

// BeginQuestion installs an oracle question generated for a specific turn.
// The oracle ran outside the lock, so the turn may have moved on since; a
// stale install is rejected and the question dropped.
func BeginQuestion(g *models.Game, round models.Round, forID string, q *models.Question, now time.Time) error {
	if g.Round != round || !g.Round.InPlay() {
		return ErrStaleTurn
	}
	if g.CurrentQuestion != nil {
		return ErrQuestionInFlight
	}
	if g.ActivePlayerID != forID {
		return ErrStaleTurn
	}
	g.CurrentQuestion = q
	g.TimerStart = now
	g.PastQuestions = append(g.PastQuestions, q.Text)
	return nil
}
