package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/engine"
)

const banner = "    🏰 WELCOME TO THE FOREST ADVENTURE 🏰"

// runPlain drives the engine from a line-oriented reader. It returns when the
// player quits, input ends, or ctx is cancelled.
func runPlain(ctx context.Context, eng *engine.Engine, in io.Reader, out io.Writer, narrationReady bool) {
	fmt.Fprintln(out, "\n"+strings.Repeat("=", 50))
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprintln(out, "Type 'help' for commands or 'quit' to exit")
	fmt.Fprintln(out, "Commands support abbreviations (e.g., 'm n' for 'move north')")
	if !narrationReady {
		fmt.Fprintln(out, "⚠️  Narrator offline: fights will use simple responses")
	}
	fmt.Fprintln(out, strings.Repeat("-", 50))
	fmt.Fprintln(out, eng.Look())

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		fmt.Fprint(out, "\n> ")

		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\n\nGame shutting down gracefully...")
			return
		case l, ok := <-lines:
			if !ok {
				fmt.Fprintln(out)
				return
			}
			line = strings.TrimSpace(l)
		}
		if line == "" {
			continue
		}

		res := eng.Process(ctx, line)
		switch res.Kind {
		case engine.ResultQuit:
			fmt.Fprintln(out, "\nThanks for playing! Goodbye! 👋")
			return
		default:
			fmt.Fprintln(out, res.Text)
		}
	}
}
