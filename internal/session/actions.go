package session

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/parkerc/last-quiz-standing/internal/game"
	"github.com/parkerc/last-quiz-standing/internal/models"
)

// handleIdentify binds the connection to a reconnect token. Known tokens
// restore their identity (presenter or contestant) and come back online;
// unknown tokens watch as spectators until they join.
func (rt *Router) handleIdentify(c *client, raw json.RawMessage) {
	var p models.IdentifyPayload
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p); err != nil {
			c.sendError("malformed identify payload")
			return
		}
	}
	sid := strings.TrimSpace(p.SessionID)
	if sid == "" {
		// First visit: hand out a token the client keeps for reconnects.
		sid = uuid.New().String()
	}

	g := c.game
	g.Lock()
	role, cid := game.Reconnect(g, sid)
	c.sessionID = sid
	c.role = role
	c.contestantID = cid
	g.SetClientInfo(c.send, models.ClientInfo{SessionID: sid, Role: role})
	snap := g.Snapshot()
	g.Unlock()

	c.sendWelcome()
	if role == models.RoleSpectator {
		c.sendState(snap)
		return
	}
	// A reconnect flipped an online flag; everyone should see it.
	rt.broadcast(g, snap)
}

func (rt *Router) handleJoinPresenter(c *client) {
	g := c.game
	g.Lock()
	err := game.JoinPresenter(g, c.sessionID)
	var snap models.Snapshot
	if err == nil {
		c.role = models.RolePresenter
		c.contestantID = ""
		g.SetClientInfo(c.send, models.ClientInfo{SessionID: c.sessionID, Role: c.role})
		snap = g.Snapshot()
	}
	g.Unlock()

	if err != nil {
		c.sendError(err.Error())
		return
	}
	c.sendWelcome()
	rt.broadcast(g, snap)
}

func (rt *Router) handleJoinContestant(c *client, raw json.RawMessage) {
	var p models.JoinContestantPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.sendError("malformed join payload")
		return
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		c.sendError("name is required")
		return
	}

	g := c.game
	g.Lock()
	contestant, err := game.JoinContestant(g, c.sessionID, name, strings.TrimSpace(p.Age))
	var snap models.Snapshot
	if err == nil {
		c.role = models.RoleContestant
		c.contestantID = contestant.ID
		g.SetClientInfo(c.send, models.ClientInfo{SessionID: c.sessionID, Role: c.role})
		snap = g.Snapshot()
	}
	g.Unlock()

	if err != nil {
		c.sendError(err.Error())
		return
	}
	c.sendWelcome()
	rt.broadcast(g, snap)
}

func (rt *Router) handleGetState(c *client) {
	g := c.game
	g.RLock()
	snap := g.Snapshot()
	g.RUnlock()
	c.sendState(snap)
}

func (rt *Router) handleToggleReady(c *client) {
	if c.role != models.RoleContestant {
		c.sendError("join as a contestant first")
		return
	}
	g := c.game
	g.Lock()
	cid, bound := g.BySession[c.sessionID]
	var err error
	if !bound {
		err = game.ErrUnknownSession
	} else {
		err = game.ToggleReady(g, cid)
	}
	var snap models.Snapshot
	if err == nil {
		snap = g.Snapshot()
	}
	g.Unlock()

	if err != nil {
		c.sendError(err.Error())
		return
	}
	rt.broadcast(g, snap)
}

func (rt *Router) handleStartGame(c *client) {
	if c.role != models.RolePresenter {
		c.sendError(game.ErrNotPresenter.Error())
		return
	}
	g := c.game
	g.Lock()
	err := game.StartGame(g)
	var snap models.Snapshot
	if err == nil {
		snap = g.Snapshot()
	}
	g.Unlock()

	if err != nil {
		c.sendError(err.Error())
		return
	}
	log.Printf("session: room=%s game started", g.Code)
	rt.broadcast(g, snap)
	rt.maybeAskQuestion(g)
}

func (rt *Router) handleResetGame(c *client) {
	if c.role != models.RolePresenter {
		c.sendError(game.ErrNotPresenter.Error())
		return
	}
	g := c.game
	g.Lock()
	game.ResetGame(g)
	snap := g.Snapshot()
	g.Unlock()

	log.Printf("session: room=%s game reset", g.Code)
	rt.broadcast(g, snap)
}

// handleSubmitAnswer grades outside the lock, then applies the outcome in a
// second locked mutation. The timer-start capture detects the question
// being swapped out (expiry plus regeneration) while the oracle was busy.
func (rt *Router) handleSubmitAnswer(c *client, raw json.RawMessage) {
	if c.role != models.RoleContestant {
		c.sendError("join as a contestant first")
		return
	}
	var p models.SubmitAnswerPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.sendError("malformed answer payload")
		return
	}

	g := c.game
	g.RLock()
	cid, bound := g.BySession[c.sessionID]
	active := g.ActivePlayerID
	q := g.CurrentQuestion
	started := g.TimerStart
	var qText, qAnswer string
	if q != nil {
		qText, qAnswer = q.Text, q.CorrectAnswer
	}
	g.RUnlock()

	switch {
	case !bound:
		c.sendError(game.ErrUnknownSession.Error())
		return
	case q == nil:
		c.sendError(game.ErrNoQuestion.Error())
		return
	case active != cid:
		c.sendError(game.ErrNotYourTurn.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), rt.oracleTimeout)
	correct, err := rt.oracle.ValidateAnswer(ctx, qText, qAnswer, p.Answer)
	cancel()
	if err != nil {
		// Oracle failure never crashes a game; the answer just counts wrong.
		log.Printf("session: room=%s answer grading failed, marking incorrect: %v", g.Code, err)
		correct = false
	}

	g.Lock()
	if g.CurrentQuestion == nil || !g.TimerStart.Equal(started) {
		g.Unlock()
		c.sendError(game.ErrQuestionExpired.Error())
		return
	}
	err = game.PolicyFor(g.Round).ResolveAnswer(g, cid, correct)
	var snap models.Snapshot
	if err == nil {
		snap = g.Snapshot()
	}
	g.Unlock()

	if err != nil {
		c.sendError(err.Error())
		return
	}
	rt.broadcast(g, snap)
	rt.maybeAskQuestion(g)
}

func (rt *Router) handlePoint(c *client, raw json.RawMessage) {
	if c.role != models.RoleContestant {
		c.sendError("join as a contestant first")
		return
	}
	var p models.PointPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.sendError("malformed point payload")
		return
	}

	g := c.game
	g.Lock()
	cid, bound := g.BySession[c.sessionID]
	var err error
	if !bound {
		err = game.ErrUnknownSession
	} else {
		err = game.PolicyFor(g.Round).Point(g, cid, p.TargetID)
	}
	var snap models.Snapshot
	if err == nil {
		snap = g.Snapshot()
	}
	g.Unlock()

	if err != nil {
		c.sendError(err.Error())
		return
	}
	rt.broadcast(g, snap)
	rt.maybeAskQuestion(g)
}

func (rt *Router) handleBuzz(c *client) {
	if c.role != models.RoleContestant {
		c.sendError("join as a contestant first")
		return
	}
	g := c.game
	g.Lock()
	cid, bound := g.BySession[c.sessionID]
	var err error
	if !bound {
		err = game.ErrUnknownSession
	} else {
		err = game.PolicyFor(g.Round).Buzz(g, cid)
	}
	var snap models.Snapshot
	if err == nil {
		snap = g.Snapshot()
	}
	g.Unlock()

	if err != nil {
		c.sendError(err.Error())
		return
	}
	rt.broadcast(g, snap)
}

func (rt *Router) handleDecision(c *client, raw json.RawMessage) {
	if c.role != models.RolePresenter {
		c.sendError(game.ErrNotPresenter.Error())
		return
	}
	var p models.DecisionPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		c.sendError("malformed decision payload")
		return
	}

	g := c.game
	g.Lock()
	err := game.PolicyFor(g.Round).Decide(g, p.Choice, p.TargetID)
	var snap models.Snapshot
	if err == nil {
		snap = g.Snapshot()
	}
	g.Unlock()

	if err != nil {
		c.sendError(err.Error())
		return
	}
	rt.broadcast(g, snap)
	rt.maybeAskQuestion(g)
}
