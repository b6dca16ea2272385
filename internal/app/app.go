package app

import (
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"example.com/mastermind/internal/config"
	"example.com/mastermind/internal/game"
	"example.com/mastermind/internal/store"
	"example.com/mastermind/internal/term"
)

// errQuit ends the session from inside the loop: quit command, EOF, or
// declining the play-again prompt.
var errQuit = errors.New("quit")

type App struct {
	cfg config.Config
	log zerolog.Logger

	in    *term.Reader
	out   *term.Renderer
	rng   *rand.Rand
	stats *store.SessionStats
}

// Options overrides the terminal streams, mainly for tests.
type Options struct {
	In  io.Reader
	Out io.Writer
}

func New(cfg config.Config, log zerolog.Logger, opts Options) *App {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	var rng *rand.Rand
	if cfg.Game.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Game.Seed, cfg.Game.Seed))
		log.Warn().Uint64("seed", cfg.Game.Seed).Msg("running with a fixed seed")
	}

	return &App{
		cfg:   cfg,
		log:   log,
		in:    term.NewReader(in),
		out:   term.NewRenderer(out, term.ColorsEnabled(cfg.UI.Color, out)),
		rng:   rng,
		stats: store.NewSessionStats(),
	}
}

// Run drives the session until the player quits, input ends, or ctx is
// cancelled. The recap is printed on every exit path.
func (a *App) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		defer cancel()
		return a.play(gctx)
	})

	// surfaces the interrupt as soon as it lands, not when play unwinds
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() != nil {
			a.out.Interrupted()
		}
		return nil
	})

	err := g.Wait()
	a.out.Recap(a.stats.Summary())

	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) play(ctx context.Context) error {
	a.out.Splash()
	if err := a.pause(ctx, a.cfg.UI.SplashDelay); err != nil {
		return err
	}

	for {
		if err := a.playRound(ctx); err != nil {
			return err
		}
		again, err := a.askPlayAgain(ctx)
		if err != nil {
			return err
		}
		if !again {
			return errQuit
		}
	}
}

func (a *App) playRound(ctx context.Context) error {
	round := game.NewRound(uuid.NewString(), a.rng)
	log := a.log.With().Str("round_id", round.ID()).Logger()
	log.Info().Msg("round started")

	a.out.Board(round.Snapshot())

	for round.State() == game.InProgress {
		guess, err := a.readGuess(ctx, round)
		if err != nil {
			return err
		}

		out, err := round.SubmitGuess(guess)
		if err != nil {
			// the loop guards state and readGuess guards length
			return err
		}
		log.Debug().
			Str("guess", guess.String()).
			Int("exact", out.Feedback.Exact).
			Int("color_only", out.Feedback.ColorOnly).
			Int("remaining", out.Remaining).
			Msg("guess scored")

		a.out.Board(round.Snapshot())
	}

	snap := round.Snapshot()
	switch snap.State {
	case game.Won:
		a.out.Win()
	case game.Lost:
		a.out.Loss()
	}
	log.Info().Str("state", string(snap.State)).Int("guesses", len(snap.Guesses)).Msg("round finished")

	a.stats.Record(store.RoundResult{
		RoundID: snap.RoundID,
		Outcome: snap.State,
		Guesses: len(snap.Guesses),
		Secret:  snap.Secret,
	})
	return nil
}

// readGuess loops until it has a full parsed guess. SHOW and blank
// lines re-prompt; quit commands and EOF end the session.
func (a *App) readGuess(ctx context.Context, round *game.Round) (game.Code, error) {
	for {
		a.out.Prompt(round.Remaining())
		line, err := a.readLine(ctx)
		if err != nil {
			return nil, err
		}

		switch strings.ToUpper(strings.TrimSpace(line)) {
		case "":
			continue
		case "SHOW":
			round.Reveal()
			a.out.Board(round.Snapshot())
			continue
		case "QUIT", "EXIT", "Q":
			return nil, errQuit
		}

		guess, err := term.ParseGuess(line)
		if err != nil {
			a.out.Problem(err)
			continue
		}
		return guess, nil
	}
}

func (a *App) askPlayAgain(ctx context.Context) (bool, error) {
	a.out.PlayAgain()
	line, err := a.readLine(ctx)
	if err != nil {
		return false, err
	}
	switch strings.ToUpper(strings.TrimSpace(line)) {
	case "Y", "YES":
		return true, nil
	}
	return false, nil
}

func (a *App) readLine(ctx context.Context) (string, error) {
	line, err := a.in.ReadLine(ctx)
	if errors.Is(err, io.EOF) {
		return "", errQuit
	}
	return line, err
}

func (a *App) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
