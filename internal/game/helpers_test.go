package game

import (
	"testing"
	"time"

	"github.com/parkerc/last-quiz-standing/internal/models"
)

func TestDeductLifeSaturates(t *testing.T) {
	g, ids := newTestGame(t, "alice")
	c := g.Contestants[ids[0]]
	c.Lives = 1

	DeductLife(g, ids[0])
	if c.Lives != 0 {
		t.Fatalf("lives = %d, want 0", c.Lives)
	}
	DeductLife(g, ids[0])
	if c.Lives != 0 {
		t.Errorf("lives went negative: %d", c.Lives)
	}
}

func TestCheckEliminationFlipsOnce(t *testing.T) {
	g, ids := newTestGame(t, "alice")
	c := g.Contestants[ids[0]]
	c.Lives = 0

	if !CheckElimination(g, ids[0]) {
		t.Error("first check at zero lives did not report elimination")
	}
	if CheckElimination(g, ids[0]) {
		t.Error("second check reported elimination again")
	}
	if !c.Eliminated {
		t.Error("contestant not marked eliminated")
	}
}

func TestAwardPointsUnknownContestant(t *testing.T) {
	g, _ := newTestGame(t, "alice")
	AwardPoints(g, "nobody", PointsPerCorrect) // must not panic
}

func TestClearQuestionPairsQuestionAndTimer(t *testing.T) {
	g, _ := newTestGame(t, "alice", "bob")
	mustStart(t, g)

	q := &models.Question{Text: "q", CorrectAnswer: "a"}
	if err := BeginQuestion(g, g.Round, g.ActivePlayerID, q, time.Now()); err != nil {
		t.Fatalf("begin question: %v", err)
	}
	if g.CurrentQuestion == nil || g.TimerStart.IsZero() {
		t.Fatal("question installed without timer")
	}
	ClearQuestion(g)
	if g.CurrentQuestion != nil || !g.TimerStart.IsZero() {
		t.Error("clear left question or timer behind")
	}
}

func TestCountSurvivorsIgnoresOnline(t *testing.T) {
	g, ids := newTestGame(t, "alice", "bob", "carol")
	g.Contestants[ids[0]].Online = false
	g.Contestants[ids[1]].Eliminated = true

	if got := CountSurvivors(g); got != 2 {
		t.Errorf("survivors = %d, want 2 (offline still counts)", got)
	}
}

func TestActiveIDsExcludesOfflineAndEliminated(t *testing.T) {
	g, ids := newTestGame(t, "alice", "bob", "carol")
	g.Contestants[ids[0]].Online = false
	g.Contestants[ids[1]].Eliminated = true

	got := ActiveIDs(g)
	if len(got) != 1 || got[0] != ids[2] {
		t.Errorf("active ids = %v, want [%s]", got, ids[2])
	}
}
