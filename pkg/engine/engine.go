package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwebster45206/adventure-engine/internal/logger"
	"github.com/jwebster45206/adventure-engine/internal/metrics"
	"github.com/jwebster45206/adventure-engine/internal/services"
	"github.com/jwebster45206/adventure-engine/pkg/actor"
	"github.com/jwebster45206/adventure-engine/pkg/command"
	"github.com/jwebster45206/adventure-engine/pkg/item"
	"github.com/jwebster45206/adventure-engine/pkg/textfilter"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// ResultKind tells the shell what to do with a Result.
type ResultKind int

const (
	ResultText ResultKind = iota
	ResultQuit
	ResultHelp
)

// Result is the outcome of one line of player input.
type Result struct {
	Kind ResultKind
	Text string
}

// Options tune the combat narration request.
type Options struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DefaultOptions returns the narration settings used when none are configured.
func DefaultOptions() Options {
	return Options{MaxTokens: 150, Temperature: 0.7, Timeout: 30 * time.Second}
}

const (
	msgUnrecognized = "❓ I don't understand that command. Type 'help' for available commands."
	msgError        = "❌ Error executing command: %v"
)

// Rejection is returned by a handler when the player asked for something the
// game refuses. Its message is shown as-is and nothing has changed.
type Rejection struct {
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

func reject(format string, args ...any) error {
	return &Rejection{Message: fmt.Sprintf(format, args...)}
}

// Engine interprets player commands against one world and one player. It is
// not safe for concurrent use; the shell sends one command at a time.
type Engine struct {
	world    *world.World
	catalog  *item.Catalog
	player   *actor.Player
	narrator services.LLMService
	filter   *textfilter.Narration
	opts     Options

	sessionID string
	logger    *slog.Logger
}

// New creates an engine. narrator may be nil, in which case every fight uses
// the fallback narration.
func New(w *world.World, catalog *item.Catalog, player *actor.Player, narrator services.LLMService, opts Options, log *slog.Logger) *Engine {
	defaults := DefaultOptions()
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = defaults.MaxTokens
	}
	if opts.Temperature <= 0 {
		opts.Temperature = defaults.Temperature
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaults.Timeout
	}
	if log == nil {
		log = slog.Default()
	}

	sessionID := uuid.New().String()
	e := &Engine{
		world:     w,
		catalog:   catalog,
		player:    player,
		narrator:  narrator,
		filter:    textfilter.NewNarration(),
		opts:      opts,
		sessionID: sessionID,
		logger:    logger.WithSession(log, sessionID),
	}

	for _, id := range w.RoomIDs() {
		for _, name := range w.Room(id).Items() {
			if !catalog.Exists(name) {
				e.logger.Warn("Room item has no catalog entry", "room", id, "item", name)
			}
		}
	}

	e.logger.Info("Game started", "room", player.Room(), "narration", narrator != nil)
	return e
}

// Process handles one line of input. quit and help are recognised on the
// whole trimmed line before any parsing.
func (e *Engine) Process(ctx context.Context, raw string) Result {
	e.logger.Info("Player input", "input", raw)

	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "quit", "exit", "q":
		e.logger.Info("Game ended", "room", e.player.Room())
		return Result{Kind: ResultQuit}
	case "help", "h", "?":
		return Result{Kind: ResultHelp, Text: HelpText()}
	}

	parsed := command.Parse(raw)
	if !parsed.Recognized() {
		metrics.CommandsTotal.WithLabelValues("none", metrics.OutcomeUnrecognized).Inc()
		return Result{Kind: ResultText, Text: msgUnrecognized}
	}

	return Result{Kind: ResultText, Text: e.dispatch(ctx, parsed)}
}

// dispatch is the single recovery boundary for command handlers.
func (e *Engine) dispatch(ctx context.Context, p command.Parsed) (text string) {
	start := time.Now()
	outcome := metrics.OutcomeOK

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%v", r)
			logger.WithError(e.logger, err).Error("Command panicked", "command", p.Command)
			text = fmt.Sprintf(msgError, err)
			outcome = metrics.OutcomeError
		}
		metrics.CommandsTotal.WithLabelValues(string(p.Command), outcome).Inc()
		metrics.CommandDuration.WithLabelValues(string(p.Command)).Observe(time.Since(start).Seconds())
	}()

	text, err := e.handle(ctx, p)
	if err != nil {
		var rej *Rejection
		if errors.As(err, &rej) {
			outcome = metrics.OutcomeRejected
			return rej.Message
		}
		logger.WithError(e.logger, err).Error("Command execution error", "command", p.Command)
		outcome = metrics.OutcomeError
		return fmt.Sprintf(msgError, err)
	}
	return text
}

func (e *Engine) handle(ctx context.Context, p command.Parsed) (string, error) {
	switch p.Command {
	case command.CmdLook:
		return e.handleLook(p.Direction)
	case command.CmdMove:
		return e.handleMove(p.Direction)
	case command.CmdGrab:
		return e.handleGrab(p.Args)
	case command.CmdInventory:
		return e.handleInventory()
	case command.CmdUse:
		return e.handleUse(p.Args)
	case command.CmdExamine:
		return e.handleExamine(p.Args)
	case command.CmdFight:
		return e.handleFight(ctx, p.Args)
	case command.CmdStatus:
		return e.handleStatus()
	default:
		return "", fmt.Errorf("unknown command: %s", p.Command)
	}
}

// Look renders the player's current room.
func (e *Engine) Look() string {
	text, err := e.handleLook("")
	if err != nil {
		return fmt.Sprintf(msgError, err)
	}
	return text
}

// Player returns the player this engine acts on.
func (e *Engine) Player() *actor.Player {
	return e.player
}

// CurrentRoom returns the room the player is standing in.
func (e *Engine) CurrentRoom() *world.Room {
	return e.world.Room(e.player.Room())
}

// SessionID identifies this game session in logs.
func (e *Engine) SessionID() string {
	return e.sessionID
}
