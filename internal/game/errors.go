package game

import "errors"

// Rejected-action errors. All of these leave the game state untouched and
// are surfaced to the offending client only; nothing here is fatal.
var (
	ErrUnknownSession   = errors.New("unknown session")
	ErrPresenterTaken   = errors.New("presenter seat is already taken")
	ErrNotPresenter     = errors.New("only the presenter can do that")
	ErrGameInProgress   = errors.New("game already in progress")
	ErrNotEnoughPlayers = errors.New("not enough contestants are ready")
	ErrWrongRound       = errors.New("action not allowed in this round")
	ErrNotYourTurn      = errors.New("it is not your turn")
	ErrEliminated       = errors.New("eliminated contestants cannot act")
	ErrInvalidTarget    = errors.New("invalid target contestant")
	ErrNoQuestion       = errors.New("no question in flight")
	ErrQuestionInFlight = errors.New("a question is already in flight")
	ErrAlreadyBuzzed    = errors.New("someone already buzzed in")
	ErrUnknownDecision  = errors.New("unknown decision choice")
	ErrQuestionExpired  = errors.New("the question expired")
	ErrStaleTurn        = errors.New("turn changed before the question arrived")
)
