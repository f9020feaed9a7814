package game

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/parkerc/last-quiz-standing/internal/models"
)

// newTestGame builds a lobby with a presenter and the given contestants
// joined, online and ready, on a fixed RNG seed.
func newTestGame(t *testing.T, names ...string) (*models.Game, []string) {
	t.Helper()
	g := models.NewGame("TEST42", rand.New(rand.NewSource(1)))
	if err := JoinPresenter(g, "host-session"); err != nil {
		t.Fatalf("join presenter: %v", err)
	}
	ids := make([]string, 0, len(names))
	for _, name := range names {
		c, err := JoinContestant(g, "session-"+name, name, "adult")
		if err != nil {
			t.Fatalf("join contestant %s: %v", name, err)
		}
		c.Ready = true
		ids = append(ids, c.ID)
	}
	return g, ids
}

func mustStart(t *testing.T, g *models.Game) {
	t.Helper()
	if err := StartGame(g); err != nil {
		t.Fatalf("start game: %v", err)
	}
}

// ask installs a synthetic question for the current turn
func ask(t *testing.T, g *models.Game) {
	t.Helper()
	q := &models.Question{
		Text:          fmt.Sprintf("question %d", len(g.PastQuestions)+1),
		CorrectAnswer: "42",
	}
	if err := BeginQuestion(g, g.Round, g.ActivePlayerID, q, time.Now()); err != nil {
		t.Fatalf("begin question: %v", err)
	}
}

// resolve installs a question if needed and applies a graded answer
func resolve(t *testing.T, g *models.Game, actorID string, correct bool) {
	t.Helper()
	if g.CurrentQuestion == nil {
		ask(t, g)
	}
	if err := PolicyFor(g.Round).ResolveAnswer(g, actorID, correct); err != nil {
		t.Fatalf("resolve answer for %s (correct=%v): %v", actorID, correct, err)
	}
}
