package main

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/chzyer/readline"
)

func newTestShell(t *testing.T, input string) *Interactive {
	t.Helper()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:         "labelprint> ",
		Stdin:          io.NopCloser(strings.NewReader(input)),
		Stdout:         io.Discard,
		Stderr:         io.Discard,
		FuncIsTerminal: func() bool { return false },
		FuncMakeRaw:    func() error { return nil },
		FuncExitRaw:    func() error { return nil },
	})
	if err != nil {
		t.Fatalf("failed to create readline: %v", err)
	}

	return &Interactive{srv: &Server{}, rl: rl}
}

func runShell(t *testing.T, shell *Interactive) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		shell.Run(ctx, cancel)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	return ctx
}

func TestRunReturnsOnEOF(t *testing.T) {
	shell := newTestShell(t, "")
	ctx := runShell(t, shell)

	select {
	case <-ctx.Done():
	default:
		t.Error("Run returned without cancelling the server context")
	}
}

func TestRunQuitCommand(t *testing.T) {
	shell := newTestShell(t, "quit\n")
	ctx := runShell(t, shell)

	select {
	case <-ctx.Done():
	default:
		t.Error("quit did not cancel the server context")
	}
}
