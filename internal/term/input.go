package term

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"example.com/mastermind/internal/game"
)

// Reader pumps lines from an input stream into a channel so that waiting
// for a line can be abandoned on context cancellation. The pump goroutine
// itself stays blocked on the stream until it closes.
type Reader struct {
	src   io.Reader
	lines chan string
	err   error // set before lines is closed

	startOnce sync.Once
}

func NewReader(src io.Reader) *Reader {
	return &Reader{
		src:   src,
		lines: make(chan string, 1),
	}
}

func (r *Reader) start() {
	go func() {
		sc := bufio.NewScanner(r.src)
		for sc.Scan() {
			r.lines <- sc.Text()
		}
		if err := sc.Err(); err != nil {
			r.err = err
		}
		close(r.lines)
	}()
}

// ReadLine returns the next input line without its trailing newline.
// It returns io.EOF once the stream is exhausted and ctx.Err() if the
// context is cancelled first.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	r.startOnce.Do(r.start)

	select {
	case s, ok := <-r.lines:
		if !ok {
			if r.err != nil {
				return "", r.err
			}
			return "", io.EOF
		}
		return s, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// ParseGuess turns a line like "RYBU" into a code. Case and surrounding
// whitespace are ignored. Unknown letters are reported before the length
// check.
func ParseGuess(s string) (game.Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	code := make(game.Code, 0, len(s))
	for _, r := range s {
		p, err := game.ParsePeg(r)
		if err != nil {
			return nil, err
		}
		code = append(code, p)
	}
	if len(code) != game.CodeLength {
		return nil, fmt.Errorf("need exactly %d colors, got %d", game.CodeLength, len(code))
	}
	return code, nil
}
