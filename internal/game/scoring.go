package game

// Feedback is the score for one guess against the secret. Exact counts
// right-color right-position matches, ColorOnly counts the remaining
// right-color wrong-position matches. Exact+ColorOnly never exceeds
// the sequence length.
type Feedback struct {
	Exact     int
	ColorOnly int
}

// Score compares guess against secret. The sequences must have equal
// length; the round enforces this at its boundary, but Score guards it
// anyway.
//
// The exact pass must run to completion before the color pass starts:
// every secret and guess position may be consumed at most once, and an
// exact match consumes both sides at its position. The color pass then
// matches leftover guess pegs first-fit against leftover secret pegs,
// left to right, with no backtracking. Interleaving the passes, or
// running them in the other order, miscounts duplicated colors.
func Score(secret, guess Code) (Feedback, error) {
	if len(secret) != len(guess) {
		return Feedback{}, ErrLengthMismatch
	}

	n := len(secret)
	usedS := make([]bool, n)
	usedG := make([]bool, n)

	var fb Feedback

	// exact
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			fb.Exact++
			usedS[i] = true
			usedG[i] = true
		}
	}

	// right color, wrong place
	for i := 0; i < n; i++ {
		if usedG[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if usedS[j] || secret[j] != guess[i] {
				continue
			}
			fb.ColorOnly++
			usedS[j] = true
			break
		}
	}

	return fb, nil
}
