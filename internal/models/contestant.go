package models

// Role identifies what a connected session is allowed to do
type Role string

const (
	RolePresenter  Role = "presenter"
	RoleContestant Role = "contestant"
	RoleSpectator  Role = "spectator"
)

// Contestant represents an eliminable, scoring participant.
// Identity fields are set once on join; the rest is mutable game state.
type Contestant struct {
	ID        string `json:"id"`
	SessionID string `json:"-"` // reconnect token, never broadcast
	Name      string `json:"name"`
	Age       string `json:"age"` // free-text bracket, steers question difficulty

	Score           int  `json:"score"`
	Lives           int  `json:"lives"`
	Round1Misses    int  `json:"round1_misses"`
	Round1Questions int  `json:"round1_questions"`
	Eliminated      bool `json:"eliminated"`
	Online          bool `json:"online"`
	Ready           bool `json:"ready"`
}

// Question is a trivia question supplied by the oracle
type Question struct {
	Text          string   `json:"text"`
	CorrectAnswer string   `json:"correct_answer"`
	Options       []string `json:"options,omitempty"`
}
