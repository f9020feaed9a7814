package models

// QuestionView is the broadcastable shape of an in-flight question. The
// correct answer is only filled in for the presenter; the session router
// strips it before sending to anyone else.
type QuestionView struct {
	Text          string   `json:"text"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
}

// Snapshot is the complete broadcastable view of a game after a mutation.
// Always a full copy, never a diff, so clients resynchronize on any update.
type Snapshot struct {
	HasPresenter    bool          `json:"has_presenter"`
	PresenterOnline bool          `json:"presenter_online"`
	Contestants     []Contestant  `json:"contestants"`
	Round           Round         `json:"round"`
	ActivePlayerID  string        `json:"active_player_id,omitempty"`
	CurrentQuestion *QuestionView `json:"current_question,omitempty"`
	TimerStart      int64         `json:"timer_start,omitempty"` // unix ms, 0 when no question
	DecisionPending bool          `json:"decision_pending"`
}

// Snapshot builds the full state view. Must be called with at least the
// read lock held. Contestants appear in join order so broadcasts are stable.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		HasPresenter:    g.PresenterID != "",
		PresenterOnline: g.PresenterOnline,
		Contestants:     make([]Contestant, 0, len(g.Contestants)),
		Round:           g.Round,
		ActivePlayerID:  g.ActivePlayerID,
		DecisionPending: g.DecisionPending,
	}
	for _, id := range g.JoinOrder {
		if c, ok := g.Contestants[id]; ok {
			snap.Contestants = append(snap.Contestants, *c)
		}
	}
	if g.CurrentQuestion != nil {
		snap.CurrentQuestion = &QuestionView{
			Text:          g.CurrentQuestion.Text,
			Options:       append([]string(nil), g.CurrentQuestion.Options...),
			CorrectAnswer: g.CurrentQuestion.CorrectAnswer,
		}
		snap.TimerStart = g.TimerStart.UnixMilli()
	}
	return snap
}
