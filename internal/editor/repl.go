package editor

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// RunOptions controls the read loop.
type RunOptions struct {
	Prompt      string // printed before each line when Interactive is set
	Welcome     string // printed once at start, skipped when empty
	Interactive bool
}

// DefaultRunOptions returns the options used for a terminal on stdin.
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Prompt:      "> ",
		Welcome:     "type ? for help",
		Interactive: true,
	}
}

// Run reads lines from in and executes them in s, writing output and
// error messages to out. It returns nil when the session exits or in is
// exhausted, and ctx.Err() when ctx is cancelled first.
func Run(ctx context.Context, s *Session, in io.Reader, out io.Writer, opts RunOptions) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
		readErr <- scanner.Err()
	}()

	if opts.Welcome != "" {
		fmt.Fprintln(out, opts.Welcome)
	}

	for s.Running() {
		if opts.Interactive {
			fmt.Fprint(out, opts.Prompt)
		}

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok = <-lines:
		}
		if !ok {
			select {
			case err := <-readErr:
				if err != nil {
					return fmt.Errorf("editor: reading input: %w", err)
				}
			default:
			}
			if opts.Interactive {
				fmt.Fprintln(out)
			}
			return nil
		}

		result, err := s.Exec(line)
		if err != nil {
			fmt.Fprintln(out, Message(err))
			continue
		}
		if result.Show {
			fmt.Fprintln(out, result.Text)
		}
	}
	return nil
}
