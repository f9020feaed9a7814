package models

// Round represents the phase the game is in
type Round string

const (
	RoundLobby    Round = "lobby"
	Round1        Round = "round1"
	Round2        Round = "round2"
	Round3        Round = "round3"
	RoundFinished Round = "finished"
)

// InPlay reports whether contestants can act in this round
func (r Round) InPlay() bool {
	return r == Round1 || r == Round2 || r == Round3
}
