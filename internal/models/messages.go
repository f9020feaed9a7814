package models

import "encoding/json"

// Message kinds, client -> engine
const (
	MsgIdentify       = "identify"
	MsgJoinPresenter  = "join_presenter"
	MsgJoinContestant = "join_contestant"
	MsgStartGame      = "start_game"
	MsgResetGame      = "reset_game"
	MsgGetState       = "get_state"
	MsgToggleReady    = "toggle_ready"
	MsgSubmitAnswer   = "submit_answer"
	MsgPointToPlayer  = "point_to_player"
	MsgBuzzIn         = "buzz_in"
	MsgMakeDecision   = "make_decision"
)

// Message kinds, engine -> client
const (
	MsgWelcome = "welcome"
	MsgState   = "state"
	MsgError   = "error"
)

// Envelope is the wire frame for every message in either direction
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewEnvelope wraps a payload value into a wire frame
func NewEnvelope(kind string, payload any) (Envelope, error) {
	if payload == nil {
		return Envelope{Type: kind}, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Type: kind, Payload: raw}, nil
}

// IdentifyPayload binds a connection to a reconnect token
type IdentifyPayload struct {
	SessionID string `json:"session_id"`
}

// JoinContestantPayload registers a new contestant
type JoinContestantPayload struct {
	Name string `json:"name"`
	Age  string `json:"age"`
}

// SubmitAnswerPayload carries a contestant's answer to the current question
type SubmitAnswerPayload struct {
	Answer string `json:"answer"`
}

// PointPayload nominates the next answerer (round 2)
type PointPayload struct {
	TargetID string `json:"target_id"`
}

// DecisionPayload carries a presenter ruling (round 3)
type DecisionPayload struct {
	Choice   string `json:"choice"`
	TargetID string `json:"target_id,omitempty"`
}

// WelcomePayload acknowledges a join or reconnect
type WelcomePayload struct {
	Role         Role   `json:"role"`
	SessionID    string `json:"session_id"`
	ContestantID string `json:"contestant_id,omitempty"`
}

// ErrorPayload carries a rejected-action message back to the actor
type ErrorPayload struct {
	Message string `json:"message"`
}
