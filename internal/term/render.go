package term

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/TwiN/go-color"
	"github.com/mattn/go-isatty"

	"example.com/mastermind/internal/game"
	"example.com/mastermind/internal/store"
)

//go:embed banner.txt
var banner string

const (
	pegGlyph  = "⬤" // ⬤
	hintGlyph = "◆" // ◆
	ruleWidth = 28
)

var pegColors = [...]string{
	game.Red:    color.Red,
	game.Blue:   color.Blue,
	game.Green:  color.Green,
	game.Yellow: color.Yellow,
	game.Black:  color.Black,
	game.White:  color.White,
}

// ColorsEnabled resolves a COLOR mode (auto|always|never) against the
// output stream. In auto mode color requires a terminal and an unset
// NO_COLOR.
func ColorsEnabled(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Renderer draws the board and game messages. All output goes through
// it so tests can capture a full transcript from a bytes.Buffer.
// Writes are serialized; the interrupt notice may arrive from another
// goroutine than the game loop.
type Renderer struct {
	mu     sync.Mutex
	out    io.Writer
	colors bool
}

func NewRenderer(out io.Writer, colors bool) *Renderer {
	return &Renderer{out: out, colors: colors}
}

func (r *Renderer) Splash() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprint(r.out, banner)
	fmt.Fprintln(r.out, "Starting mastermind!")
}

// Board renders the classic layout: the secret row between starred
// rules, then one row per attempt numbered from the budget down to 1.
// Guesses fill the board bottom-up.
func (r *Renderer) Board(snap game.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var b strings.Builder
	rule := strings.Repeat("*", ruleWidth)

	b.WriteString("Game State\n")
	b.WriteString(rule + "\n")
	b.WriteString("   |  " + r.secretCells(snap) + "  |\n")
	b.WriteString(rule + "\n")

	for num := snap.Budget; num >= 1; num-- {
		if num <= len(snap.Guesses) {
			rec := snap.Guesses[num-1]
			fmt.Fprintf(&b, "%02d |  %s  |  %s\n", num, r.pegCells(rec.Guess), r.hintCells(rec.Feedback))
		} else {
			fmt.Fprintf(&b, "%02d |  %s  |\n", num, strings.Repeat(" ", 2*game.CodeLength))
		}
	}
	fmt.Fprint(r.out, b.String())
}

func (r *Renderer) Prompt(remaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, "(R)ed -- bl(U)e -- (G)reen")
	fmt.Fprintln(r.out, "(Y)ellow -- (B)lack -- (W)hite")
	fmt.Fprintln(r.out, "Example input: RYBU for Red Yellow Black blUe")
	fmt.Fprintf(r.out, "Enter your guess (%d left): ", remaining)
}

func (r *Renderer) Problem(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "%v, try again\n", err)
}

func (r *Renderer) Win() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, "You Won!!!!")
}

func (r *Renderer) Loss() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, "Too bad -- Try again")
}

func (r *Renderer) Interrupted() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, "\nQuitting")
}

func (r *Renderer) PlayAgain() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprint(r.out, "Play again? (y/N): ")
}

// Recap prints the end-of-session summary. It always ends with the
// closing line, even when no round was finished.
func (r *Renderer) Recap(s store.Summary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s.Played > 0 {
		fmt.Fprintf(r.out, "Session summary: %d played, %d won, %d lost\n", s.Played, s.Won, s.Lost)
		for i, res := range s.Results {
			fmt.Fprintf(r.out, "  #%d %-4s in %2d guesses (secret %s)\n", i+1, res.Outcome, res.Guesses, res.Secret)
		}
	}
	fmt.Fprintln(r.out, "Done.")
}

func (r *Renderer) secretCells(snap game.Snapshot) string {
	if snap.Revealed && snap.Secret != nil {
		return r.pegCells(snap.Secret)
	}
	return strings.Repeat(" ", 2*game.CodeLength)
}

func (r *Renderer) pegCells(code game.Code) string {
	var b strings.Builder
	for _, p := range code {
		b.WriteString(r.peg(p))
		b.WriteByte(' ')
	}
	return b.String()
}

func (r *Renderer) peg(p game.Peg) string {
	if !r.colors {
		return string(p.Letter())
	}
	return color.Ize(pegColors[p], pegGlyph)
}

func (r *Renderer) hintCells(fb game.Feedback) string {
	var b strings.Builder
	for i := 0; i < fb.Exact; i++ {
		b.WriteString(r.hint(true))
		b.WriteByte(' ')
	}
	for i := 0; i < fb.ColorOnly; i++ {
		b.WriteString(r.hint(false))
		b.WriteByte(' ')
	}
	return b.String()
}

func (r *Renderer) hint(exact bool) string {
	if !r.colors {
		if exact {
			return "x"
		}
		return "."
	}
	if exact {
		return color.Ize(color.Black, hintGlyph)
	}
	return color.Ize(color.White, hintGlyph)
}
