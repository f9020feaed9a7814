// Package session maps websocket connections to game roles and identities,
// decodes inbound client messages, funnels them through the game's exclusive
// lock, and fans post-mutation snapshots back out to every session in the
// room. It also owns question timing: policies only resolve already-decided
// outcomes, the router decides when an unanswered question expires.
package session

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/parkerc/last-quiz-standing/internal/game"
	"github.com/parkerc/last-quiz-standing/internal/models"
	"github.com/parkerc/last-quiz-standing/internal/oracle"
	"github.com/parkerc/last-quiz-standing/internal/store"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Router is the boundary adapter between websocket transport and the game
// engine. One Router serves every room in the store.
type Router struct {
	store           *store.GameStore
	oracle          oracle.Oracle
	questionTimeout time.Duration // auto-resolve deadline; 0 disables
	oracleTimeout   time.Duration
	upgrader        websocket.Upgrader
}

// NewRouter wires the session router to its room store and question oracle
func NewRouter(st *store.GameStore, o oracle.Oracle, questionTimeout, oracleTimeout time.Duration) *Router {
	return &Router{
		store:           st,
		oracle:          o,
		questionTimeout: questionTimeout,
		oracleTimeout:   oracleTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// HandleWS upgrades /ws/{code} to the game websocket and serves it until
// the connection drops
func (rt *Router) HandleWS(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimPrefix(r.URL.Path, "/ws/"))
	g, exists := rt.store.Get(code)
	if !exists {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	conn, err := rt.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("session: upgrade failed for room %s: %v", code, err)
		return
	}

	c := newClient(conn, g)

	g.Lock()
	g.AddClient(c.send, models.ClientInfo{Role: models.RoleSpectator})
	g.Unlock()

	go c.writePump()
	rt.readLoop(c)

	// Connection gone: unregister and mark the identity offline. The
	// contestant record stays for reconnects.
	g.Lock()
	g.RemoveClient(c.send)
	game.Disconnect(g, c.sessionID)
	snap := g.Snapshot()
	remaining := g.ClientCount()
	g.Unlock()
	close(c.done)
	conn.Close()

	if c.sessionID != "" && c.role != models.RoleSpectator {
		rt.broadcast(g, snap)
	}
	if debug {
		log.Printf("session: room=%s session=%s disconnected, %d connected", code, c.sessionID, remaining)
	}
}

func (rt *Router) readLoop(c *client) {
	for {
		var env models.Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			if debug {
				log.Printf("session: read loop ended: %v", err)
			}
			return
		}
		rt.dispatch(c, env)
	}
}

func (rt *Router) dispatch(c *client, env models.Envelope) {
	if c.sessionID == "" && env.Type != models.MsgIdentify {
		c.sendError("identify first")
		return
	}
	switch env.Type {
	case models.MsgIdentify:
		rt.handleIdentify(c, env.Payload)
	case models.MsgJoinPresenter:
		rt.handleJoinPresenter(c)
	case models.MsgJoinContestant:
		rt.handleJoinContestant(c, env.Payload)
	case models.MsgStartGame:
		rt.handleStartGame(c)
	case models.MsgResetGame:
		rt.handleResetGame(c)
	case models.MsgGetState:
		rt.handleGetState(c)
	case models.MsgToggleReady:
		rt.handleToggleReady(c)
	case models.MsgSubmitAnswer:
		rt.handleSubmitAnswer(c, env.Payload)
	case models.MsgPointToPlayer:
		rt.handlePoint(c, env.Payload)
	case models.MsgBuzzIn:
		rt.handleBuzz(c)
	case models.MsgMakeDecision:
		rt.handleDecision(c, env.Payload)
	default:
		c.sendError("unknown message type: " + env.Type)
	}
}

// broadcast fans one snapshot out to every session in the room, redacted
// per role. The lock is released before sending; a skipped slow consumer
// self-heals on the next broadcast because every frame is a full snapshot.
func (rt *Router) broadcast(g *models.Game, snap models.Snapshot) {
	g.RLock()
	clients := g.Clients()
	g.RUnlock()

	public, err := models.NewEnvelope(models.MsgState, RedactFor(models.RoleSpectator, snap))
	if err != nil {
		log.Printf("session: encode snapshot: %v", err)
		return
	}
	full, err := models.NewEnvelope(models.MsgState, snap)
	if err != nil {
		log.Printf("session: encode snapshot: %v", err)
		return
	}

	for ch, info := range clients {
		env := public
		if info.Role == models.RolePresenter {
			env = full
		}
		select {
		case ch <- env:
		case <-time.After(sendTimeout):
			if debug {
				log.Printf("session: room=%s dropped frame for slow session %s", g.Code, info.SessionID)
			}
		}
	}
}
