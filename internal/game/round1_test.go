package game

import (
	"errors"
	"testing"

	"github.com/parkerc/last-quiz-standing/internal/models"
)

func TestRound1CorrectAnswerScoresAndRotates(t *testing.T) {
	g, ids := newTestGame(t, "alice", "bob", "carol")
	mustStart(t, g)

	resolve(t, g, ids[0], true)

	c := g.Contestants[ids[0]]
	if c.Score != PointsPerCorrect {
		t.Errorf("score = %d, want %d", c.Score, PointsPerCorrect)
	}
	if c.Round1Questions != 1 {
		t.Errorf("questions faced = %d, want 1", c.Round1Questions)
	}
	if g.ActivePlayerID != ids[1] {
		t.Errorf("active = %s, want %s", g.ActivePlayerID, ids[1])
	}
	if g.CurrentQuestion != nil {
		t.Error("question not cleared after resolution")
	}
}

func TestRound1WrongAnswerCostsLifeAndCountsMiss(t *testing.T) {
	g, ids := newTestGame(t, "alice", "bob")
	mustStart(t, g)

	resolve(t, g, ids[0], false)

	c := g.Contestants[ids[0]]
	if c.Lives != StartingLives-1 {
		t.Errorf("lives = %d, want %d", c.Lives, StartingLives-1)
	}
	if c.Round1Misses != 1 {
		t.Errorf("misses = %d, want 1", c.Round1Misses)
	}
	if c.Eliminated {
		t.Error("eliminated on first miss")
	}
}

func TestRound1TwoMissesEliminateDespiteLivesLeft(t *testing.T) {
	g, ids := newTestGame(t, "alice", "bob", "carol")
	mustStart(t, g)

	// Alice misses both of her questions; the others answer correctly.
	order := []struct {
		id      string
		correct bool
	}{
		{ids[0], false}, {ids[1], true}, {ids[2], true},
		{ids[0], false},
	}
	for _, turn := range order {
		resolve(t, g, turn.id, turn.correct)
	}

	c := g.Contestants[ids[0]]
	if !c.Eliminated {
		t.Fatal("not eliminated after two misses")
	}
	if c.Lives != StartingLives-2 {
		t.Errorf("lives = %d, want %d (miss limit fires before lives run out)", c.Lives, StartingLives-2)
	}
}

func TestRound1AllCorrectCompletesRound(t *testing.T) {
	g, ids := newTestGame(t, "alice", "bob", "carol")
	mustStart(t, g)

	for g.Round == models.Round1 {
		resolve(t, g, g.ActivePlayerID, true)
	}

	if g.Round != models.Round2 {
		t.Fatalf("round = %s, want %s", g.Round, models.Round2)
	}
	for _, id := range ids {
		c := g.Contestants[id]
		if c.Round1Questions != Round1QuestionCap {
			t.Errorf("%s faced %d questions, want %d", c.Name, c.Round1Questions, Round1QuestionCap)
		}
		if c.Eliminated {
			t.Errorf("%s eliminated with a perfect round", c.Name)
		}
	}
	if g.ActivePlayerID == "" {
		t.Error("no pointer seeded on round 2 entry")
	}
	if g.LastPointerID != g.ActivePlayerID {
		t.Errorf("seed pointer mismatch: active %s, last %s", g.ActivePlayerID, g.LastPointerID)
	}
}

func TestRound1TurnValidation(t *testing.T) {
	g, ids := newTestGame(t, "alice", "bob")
	mustStart(t, g)

	p := PolicyFor(g.Round)
	if err := p.ResolveAnswer(g, ids[0], true); !errors.Is(err, ErrNoQuestion) {
		t.Errorf("no question: err = %v, want %v", err, ErrNoQuestion)
	}
	ask(t, g)
	if err := p.ResolveAnswer(g, ids[1], true); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("out of turn: err = %v, want %v", err, ErrNotYourTurn)
	}
	if err := p.Point(g, ids[0], ids[1]); !errors.Is(err, ErrWrongRound) {
		t.Errorf("point in round 1: err = %v, want %v", err, ErrWrongRound)
	}
	if err := p.Buzz(g, ids[0]); !errors.Is(err, ErrWrongRound) {
		t.Errorf("buzz in round 1: err = %v, want %v", err, ErrWrongRound)
	}
}
