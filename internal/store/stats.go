package store

import (
	"sync"

	"example.com/mastermind/internal/game"
)

// RoundResult is one finished round as recorded for the session recap.
type RoundResult struct {
	RoundID string
	Outcome game.State
	Guesses int
	Secret  game.Code
}

// Summary is a point-in-time copy of the session stats.
type Summary struct {
	Played  int
	Won     int
	Lost    int
	Results []RoundResult
}

// SessionStats accumulates finished rounds for the current run. The
// recap may be taken from a different goroutine than the game loop,
// so access is guarded.
type SessionStats struct {
	mu      sync.Mutex
	results []RoundResult
}

func NewSessionStats() *SessionStats {
	return &SessionStats{}
}

func (s *SessionStats) Record(res RoundResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, res)
}

func (s *SessionStats) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		Played:  len(s.results),
		Results: make([]RoundResult, len(s.results)),
	}
	copy(sum.Results, s.results)
	for _, r := range s.results {
		switch r.Outcome {
		case game.Won:
			sum.Won++
		case game.Lost:
			sum.Lost++
		}
	}
	return sum
}
