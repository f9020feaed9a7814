package game

import (
	"errors"
	"testing"

	"github.com/parkerc/last-quiz-standing/internal/models"
)

// setupRound3 starts a game and forces it into the buzzer finale with the
// given contestants as survivors on fresh lives.
func setupRound3(t *testing.T, names ...string) (*models.Game, []string) {
	t.Helper()
	g, ids := newTestGame(t, names...)
	mustStart(t, g)
	g.Round = models.Round3
	ClearQuestion(g)
	g.ActivePlayerID = ""
	g.LastPointerID = ""
	for _, id := range ids {
		g.Contestants[id].Lives = Round3Lives
	}
	return g, ids
}

func TestRound3BuzzClaimsOpenQuestion(t *testing.T) {
	g, ids := setupRound3(t, "alice", "bob", "carol")
	p := PolicyFor(g.Round)

	if err := p.Buzz(g, ids[0]); !errors.Is(err, ErrNoQuestion) {
		t.Errorf("buzz without question: err = %v, want %v", err, ErrNoQuestion)
	}
	ask(t, g)
	if err := p.Buzz(g, ids[0]); err != nil {
		t.Fatalf("first buzz: %v", err)
	}
	if g.ActivePlayerID != ids[0] {
		t.Errorf("active = %s, want buzzer %s", g.ActivePlayerID, ids[0])
	}
	if err := p.Buzz(g, ids[1]); !errors.Is(err, ErrAlreadyBuzzed) {
		t.Errorf("second buzz: err = %v, want %v", err, ErrAlreadyBuzzed)
	}
}

func TestRound3EliminatedCannotBuzz(t *testing.T) {
	g, ids := setupRound3(t, "alice", "bob", "carol")
	g.Contestants[ids[0]].Eliminated = true
	ask(t, g)

	if err := PolicyFor(g.Round).Buzz(g, ids[0]); !errors.Is(err, ErrEliminated) {
		t.Errorf("eliminated buzz: err = %v, want %v", err, ErrEliminated)
	}
}

func TestRound3AnswerReopensBuzzing(t *testing.T) {
	g, ids := setupRound3(t, "alice", "bob", "carol", "dave")
	p := PolicyFor(g.Round)

	ask(t, g)
	if err := p.Buzz(g, ids[0]); err != nil {
		t.Fatalf("buzz: %v", err)
	}
	resolve(t, g, ids[0], true)

	if g.Contestants[ids[0]].Score != PointsPerCorrect {
		t.Errorf("score = %d, want %d", g.Contestants[ids[0]].Score, PointsPerCorrect)
	}
	if g.ActivePlayerID != "" {
		t.Errorf("active = %q, want cleared for the next buzz race", g.ActivePlayerID)
	}
	if g.CurrentQuestion != nil {
		t.Error("question not cleared")
	}
}

func TestRound3DropToTwoSurvivorsOpensDecision(t *testing.T) {
	g, ids := setupRound3(t, "alice", "bob", "carol")
	p := PolicyFor(g.Round)

	g.Contestants[ids[2]].Lives = 1
	ask(t, g)
	if err := p.Buzz(g, ids[2]); err != nil {
		t.Fatalf("buzz: %v", err)
	}
	resolve(t, g, ids[2], false)

	if !g.Contestants[ids[2]].Eliminated {
		t.Fatal("last life lost but not eliminated")
	}
	if !g.DecisionPending {
		t.Error("two survivors left but no decision pending")
	}
	if g.Round != models.Round3 {
		t.Errorf("round = %s, want %s", g.Round, models.Round3)
	}
}

func TestRound3SingleSurvivorFinishes(t *testing.T) {
	g, ids := setupRound3(t, "alice", "bob")
	p := PolicyFor(g.Round)

	g.Contestants[ids[1]].Lives = 1
	ask(t, g)
	if err := p.Buzz(g, ids[1]); err != nil {
		t.Fatalf("buzz: %v", err)
	}
	resolve(t, g, ids[1], false)

	if g.Round != models.RoundFinished {
		t.Fatalf("round = %s, want %s", g.Round, models.RoundFinished)
	}
	survivors := SurvivorIDs(g)
	if len(survivors) != 1 || survivors[0] != ids[0] {
		t.Errorf("survivors = %v, want [%s]", survivors, ids[0])
	}
}

func TestRound3DecideContinueClearsFlag(t *testing.T) {
	g, _ := setupRound3(t, "alice", "bob")
	g.DecisionPending = true

	if err := PolicyFor(g.Round).Decide(g, DecisionContinue, ""); err != nil {
		t.Fatalf("decide continue: %v", err)
	}
	if g.DecisionPending {
		t.Error("decision flag not cleared")
	}
	if g.Round != models.Round3 {
		t.Errorf("round = %s, want %s", g.Round, models.Round3)
	}
}

func TestRound3DecideFinishCrownsWinner(t *testing.T) {
	g, ids := setupRound3(t, "alice", "bob")
	g.DecisionPending = true

	if err := PolicyFor(g.Round).Decide(g, DecisionFinish, ids[1]); err != nil {
		t.Fatalf("decide finish: %v", err)
	}
	if g.Round != models.RoundFinished {
		t.Fatalf("round = %s, want %s", g.Round, models.RoundFinished)
	}
	survivors := SurvivorIDs(g)
	if len(survivors) != 1 || survivors[0] != ids[1] {
		t.Errorf("survivors = %v, want [%s]", survivors, ids[1])
	}
}

func TestRound3DecideValidation(t *testing.T) {
	g, ids := setupRound3(t, "alice", "bob")
	p := PolicyFor(g.Round)

	if err := p.Decide(g, "punt", ""); !errors.Is(err, ErrUnknownDecision) {
		t.Errorf("unknown choice: err = %v, want %v", err, ErrUnknownDecision)
	}
	if err := p.Decide(g, DecisionFinish, ""); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("finish without target among two survivors: err = %v, want %v", err, ErrInvalidTarget)
	}
	g.Contestants[ids[0]].Eliminated = true
	if err := p.Decide(g, DecisionFinish, ids[0]); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("finish with eliminated target: err = %v, want %v", err, ErrInvalidTarget)
	}
}

func TestFinishedGameRejectsActions(t *testing.T) {
	g, ids := setupRound3(t, "alice", "bob")
	finishGame(g)

	p := PolicyFor(g.Round)
	if err := p.ResolveAnswer(g, ids[0], true); !errors.Is(err, ErrWrongRound) {
		t.Errorf("answer after finish: err = %v, want %v", err, ErrWrongRound)
	}
	if err := p.Buzz(g, ids[0]); !errors.Is(err, ErrWrongRound) {
		t.Errorf("buzz after finish: err = %v, want %v", err, ErrWrongRound)
	}
	if err := p.Decide(g, DecisionContinue, ""); !errors.Is(err, ErrWrongRound) {
		t.Errorf("decide after finish: err = %v, want %v", err, ErrWrongRound)
	}
}
