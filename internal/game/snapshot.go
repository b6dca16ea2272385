package game

// Snapshot is the read model handed to the renderer and the driver:
// everything they may see, and nothing they may not. Secret stays nil
// until the reveal flag is set.
type Snapshot struct {
	RoundID   string
	State     State
	Budget    int
	Remaining int
	Revealed  bool
	Secret    Code
	Guesses   []GuessRecord
}

// Snapshot copies the visible round state. The history slice is a
// fresh copy; its records are immutable once appended.
func (r *Round) Snapshot() Snapshot {
	snap := Snapshot{
		RoundID:   r.id,
		State:     r.state,
		Budget:    GuessBudget,
		Remaining: r.Remaining(),
		Revealed:  r.revealed,
		Guesses:   append([]GuessRecord(nil), r.guesses...),
	}
	if r.revealed {
		snap.Secret = append(Code(nil), r.secret...)
	}
	return snap
}
