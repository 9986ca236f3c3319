package editor

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestRunTranscript(t *testing.T) {
	in := strings.NewReader("I 3 2\nL 2 1 K\nS\nI 5 251\nX\nS\n")
	var out bytes.Buffer

	err := Run(context.Background(), NewSession(), in, &out, DefaultRunOptions())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	expected := "type ? for help\n" +
		"> " +
		"> " +
		"> OKO\nOOO\n" +
		"> Bitmap dimension must be between (1,1) and (250,250), got (5,251)\n" +
		"> goodbye!\n"
	if out.String() != expected {
		t.Errorf("transcript mismatch:\nexpected:\n%q\ngot:\n%q", expected, out.String())
	}
}

func TestRunNonInteractive(t *testing.T) {
	in := strings.NewReader("I 2 2\nF 1 1 B\nS\n")
	var out bytes.Buffer

	err := Run(context.Background(), NewSession(), in, &out, RunOptions{})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if out.String() != "BB\nBB\n" {
		t.Errorf("expected only the image, got %q", out.String())
	}
}

func TestRunErrorsDoNotStopLoop(t *testing.T) {
	in := strings.NewReader("S 1\nZ\nL 1 1 A\nI 1 1\nS\n")
	var out bytes.Buffer

	if err := Run(context.Background(), NewSession(), in, &out, RunOptions{}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 output lines, got %d: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "Invalid format") {
		t.Errorf("line 0: expected format error, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Invalid command") {
		t.Errorf("line 1: expected command error, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Bitmap must be created first") {
		t.Errorf("line 2: expected missing bitmap error, got %q", lines[2])
	}
	if lines[3] != "O" {
		t.Errorf("line 3: expected image, got %q", lines[3])
	}
}

func TestRunCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, NewSession(), pr, io.Discard, RunOptions{})
	}()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
