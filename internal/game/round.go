package game

import (
	"errors"
	"math/rand/v2"
)

const (
	// CodeLength is the fixed length of the secret and of every guess.
	CodeLength = 4

	// GuessBudget is how many guesses a round allows before it is lost.
	GuessBudget = 12
)

// State is the round outcome so far.
type State string

const (
	InProgress State = "in_progress"
	Won        State = "won"
	Lost       State = "lost"
)

var (
	// ErrLengthMismatch is returned by Score when the two sequences
	// differ in length.
	ErrLengthMismatch = errors.New("secret and guess lengths differ")

	// ErrInvalidGuessLength is returned by SubmitGuess for a candidate
	// that is not exactly CodeLength pegs. The round is not touched.
	ErrInvalidGuessLength = errors.New("guess must be exactly 4 pegs")

	// ErrRoundFinished is returned by SubmitGuess once the round has
	// reached won or lost. The round is not touched.
	ErrRoundFinished = errors.New("round already finished")
)

// GuessRecord pairs a submitted guess with its feedback. Ordinal is
// the 1-based submission order. Records are never mutated once
// appended.
type GuessRecord struct {
	Ordinal  int
	Guess    Code
	Feedback Feedback
}

// GuessOutcome is what SubmitGuess hands back so the caller can react
// without poking at round internals.
type GuessOutcome struct {
	Feedback  Feedback
	State     State
	Remaining int
}

// Round is one playthrough: a hidden secret, an append-only guess
// history and a win/loss outcome. The round is the sole owner of the
// secret; it only leaves through Snapshot, and only once the reveal
// flag is set.
//
// A Round is not safe for concurrent use. The game is turn-based and a
// single driver goroutine owns the round.
type Round struct {
	id       string
	secret   Code
	guesses  []GuessRecord
	state    State
	revealed bool
}

// NewRound creates a round with a freshly generated secret. rng may be
// nil to use the process-global source.
func NewRound(id string, rng *rand.Rand) *Round {
	r, _ := NewRoundWithSecret(id, RandomCode(rng, CodeLength))
	return r
}

// NewRoundWithSecret creates a round with a known secret, for tests
// and replays. The secret must be exactly CodeLength pegs.
func NewRoundWithSecret(id string, secret Code) (*Round, error) {
	if len(secret) != CodeLength {
		return nil, errors.New("secret must be exactly 4 pegs")
	}
	return &Round{
		id:     id,
		secret: append(Code(nil), secret...),
		state:  InProgress,
	}, nil
}

func (r *Round) ID() string   { return r.id }
func (r *Round) State() State { return r.state }

// Budget reports the guess budget for the round.
func (r *Round) Budget() int { return GuessBudget }

// Remaining reports how many guesses are left before the round is
// lost.
func (r *Round) Remaining() int { return GuessBudget - len(r.guesses) }

// Reveal allows the secret to be shown (the player's show-answer
// command). Display permission only: state, history and the remaining
// count are untouched.
func (r *Round) Reveal() { r.revealed = true }

// SubmitGuess scores the candidate, appends it to the history and
// applies the terminal transitions: an all-exact guess wins, spending
// the whole budget without one loses. Both terminal states set the
// reveal flag. After won or lost every further call fails with
// ErrRoundFinished and mutates nothing.
func (r *Round) SubmitGuess(guess Code) (GuessOutcome, error) {
	if r.state != InProgress {
		return GuessOutcome{}, ErrRoundFinished
	}
	if len(guess) != CodeLength {
		return GuessOutcome{}, ErrInvalidGuessLength
	}

	fb, err := Score(r.secret, guess)
	if err != nil {
		return GuessOutcome{}, err
	}

	r.guesses = append(r.guesses, GuessRecord{
		Ordinal:  len(r.guesses) + 1,
		Guess:    append(Code(nil), guess...),
		Feedback: fb,
	})

	switch {
	case fb.Exact == CodeLength:
		r.state = Won
		r.revealed = true
	case len(r.guesses) >= GuessBudget:
		r.state = Lost
		r.revealed = true
	}

	return GuessOutcome{Feedback: fb, State: r.state, Remaining: r.Remaining()}, nil
}
