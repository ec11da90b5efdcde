package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/engine"
	"github.com/jwebster45206/adventure-engine/pkg/item"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	w, err := world.Default()
	require.NoError(t, err)
	c, err := item.Default()
	require.NoError(t, err)
	p, err := actor.NewPlayer(w.StartRoom())
	require.NoError(t, err)
	return engine.New(w, c, p, nil, engine.Options{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRunPlain(t *testing.T) {
	eng := newTestEngine(t)
	in := strings.NewReader("m n\n\ng berries\nhelp\nquit\nlook\n")
	var out bytes.Buffer

	runPlain(context.Background(), eng, in, &out, false)

	text := out.String()
	assert.Contains(t, text, "WELCOME")
	assert.Contains(t, text, "Narrator offline")
	assert.Contains(t, text, "🏠 Forest Entrance")
	assert.Contains(t, text, "🏠 Forest Path")
	assert.Contains(t, text, "✅ You grabbed the berries!")
	assert.Contains(t, text, "GAME COMMANDS")
	assert.True(t, strings.HasSuffix(text, "Thanks for playing! Goodbye! 👋\n"), text)
	assert.Equal(t, []string{"berries"}, eng.Player().Inventory())
}

func TestRunPlain_EndOfInput(t *testing.T) {
	eng := newTestEngine(t)
	var out bytes.Buffer

	runPlain(context.Background(), eng, strings.NewReader("i\n"), &out, true)

	assert.Contains(t, out.String(), "🎒 Your inventory is empty.")
	assert.NotContains(t, out.String(), "Narrator offline")
}

func TestRunPlain_Cancelled(t *testing.T) {
	eng := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pr, pw := io.Pipe()
	defer pw.Close()

	var out bytes.Buffer
	runPlain(ctx, eng, pr, &out, true)
	assert.Contains(t, out.String(), "shutting down")
}
