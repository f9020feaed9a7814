package session

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/parkerc/last-quiz-standing/internal/models"
)

const (
	// sendBuffer is the outbound queue per connection
	sendBuffer = 16

	// sendTimeout bounds how long a broadcast waits on one slow consumer
	sendTimeout = 1 * time.Second

	// writeWait is the websocket write deadline
	writeWait = 10 * time.Second
)

// client is one websocket connection bound to a room. Role and identity are
// established by identify/join messages; until then it is a spectator.
type client struct {
	conn *websocket.Conn
	game *models.Game

	send chan models.Envelope
	done chan struct{}

	sessionID    string
	role         models.Role
	contestantID string
}

func newClient(conn *websocket.Conn, g *models.Game) *client {
	return &client{
		conn: conn,
		game: g,
		send: make(chan models.Envelope, sendBuffer),
		done: make(chan struct{}),
		role: models.RoleSpectator,
	}
}

// writePump serializes all writes to the websocket. It exits when the
// connection tears down; the send channel is never closed so concurrent
// broadcasts cannot panic.
func (c *client) writePump() {
	for {
		select {
		case <-c.done:
			return
		case env := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(env); err != nil {
				return
			}
		}
	}
}

// enqueue hands a frame to the write pump, giving up after sendTimeout so
// one stuck connection never blocks the room
func (c *client) enqueue(env models.Envelope) {
	select {
	case c.send <- env:
	case <-time.After(sendTimeout):
	}
}

func (c *client) sendError(msg string) {
	env, err := models.NewEnvelope(models.MsgError, models.ErrorPayload{Message: msg})
	if err != nil {
		return
	}
	c.enqueue(env)
}

func (c *client) sendWelcome() {
	env, err := models.NewEnvelope(models.MsgWelcome, models.WelcomePayload{
		Role:         c.role,
		SessionID:    c.sessionID,
		ContestantID: c.contestantID,
	})
	if err != nil {
		return
	}
	c.enqueue(env)
}

func (c *client) sendState(snap models.Snapshot) {
	env, err := models.NewEnvelope(models.MsgState, RedactFor(c.role, snap))
	if err != nil {
		return
	}
	c.enqueue(env)
}
