package app

import (
	"bytes"
	"context"
	"io"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"example.com/mastermind/internal/config"
	"example.com/mastermind/internal/game"
)

func testConfig(seed uint64) config.Config {
	var cfg config.Config
	cfg.Log.Level = "warn"
	cfg.Log.Format = "console"
	cfg.UI.Color = "never"
	cfg.UI.SplashDelay = 0
	cfg.Game.Seed = seed
	return cfg
}

// secretsForSeed replays the generator the app uses for the same seed.
func secretsForSeed(seed uint64, n int) []game.Code {
	rng := rand.New(rand.NewPCG(seed, seed))
	out := make([]game.Code, n)
	for i := range out {
		out[i] = game.RandomCode(rng, game.CodeLength)
	}
	return out
}

func spaced(code game.Code) string {
	var b strings.Builder
	for _, p := range code {
		b.WriteByte(p.Letter())
		b.WriteByte(' ')
	}
	return b.String()
}

func runApp(t *testing.T, seed uint64, script string) string {
	t.Helper()

	var out bytes.Buffer
	a := New(testConfig(seed), zerolog.Nop(), Options{In: strings.NewReader(script), Out: &out})
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestRunWinningSession(t *testing.T) {
	secret := secretsForSeed(7, 1)[0]

	out := runApp(t, 7, secret.String()+"\nn\n")
	for _, want := range []string{
		"Starting mastermind!",
		"Game State",
		"Enter your guess (12 left): ",
		"You Won!!!!",
		"Play again? (y/N): ",
		"Session summary: 1 played, 1 won, 0 lost",
		"Done.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunLosingSession(t *testing.T) {
	secret := secretsForSeed(11, 1)[0]
	wrong := make(game.Code, len(secret))
	for i, p := range secret {
		wrong[i] = (p + 1) % (game.White + 1)
	}

	out := runApp(t, 11, strings.Repeat(wrong.String()+"\n", game.GuessBudget)+"n\n")
	for _, want := range []string{
		"Too bad -- Try again",
		"   |  " + spaced(secret) + "  |", // board reveals the secret
		"Session summary: 1 played, 0 won, 1 lost",
		"Done.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunPlayAgain(t *testing.T) {
	secrets := secretsForSeed(3, 2)

	out := runApp(t, 3, secrets[0].String()+"\ny\n"+secrets[1].String()+"\nn\n")
	if !strings.Contains(out, "Session summary: 2 played, 2 won, 0 lost") {
		t.Fatalf("output missing two-round summary:\n%s", out)
	}
}

func TestRunQuitCommand(t *testing.T) {
	out := runApp(t, 5, "q\n")
	if !strings.Contains(out, "Done.") {
		t.Fatalf("output missing closing line:\n%s", out)
	}
	if strings.Contains(out, "Session summary") {
		t.Fatalf("aborted round must not be recorded:\n%s", out)
	}
}

func TestRunEndOfInput(t *testing.T) {
	out := runApp(t, 5, "")
	if !strings.Contains(out, "Done.") {
		t.Fatalf("output missing closing line:\n%s", out)
	}
}

func TestRunShowCommand(t *testing.T) {
	secret := secretsForSeed(9, 1)[0]

	out := runApp(t, 9, "SHOW\nQUIT\n")
	if !strings.Contains(out, "   |  "+spaced(secret)+"  |") {
		t.Fatalf("show did not reveal the secret:\n%s", out)
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	secret := secretsForSeed(13, 1)[0]

	out := runApp(t, 13, "XXXX\nRYB\n"+secret.String()+"\nn\n")
	for _, want := range []string{
		"X -- invalid color, try again",
		"need exactly 4 colors, got 3, try again",
		"You Won!!!!",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunInterrupted(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	a := New(testConfig(0), zerolog.Nop(), Options{In: pr, Out: &out})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := a.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"Quitting", "Done."} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q:\n%s", want, out.String())
		}
	}
}
