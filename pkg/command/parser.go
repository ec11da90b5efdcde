package command

import (
	"strings"

	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// Kind is a canonical command name.
type Kind string

const (
	CmdNone      Kind = "" // unrecognized
	CmdLook      Kind = "look"
	CmdMove      Kind = "move"
	CmdGrab      Kind = "grab"
	CmdInventory Kind = "inventory"
	CmdUse       Kind = "use"
	CmdExamine   Kind = "examine"
	CmdFight     Kind = "fight"
	CmdStatus    Kind = "status"
)

var commandAliases = map[Kind][]string{
	CmdLook:      {"look", "l"},
	CmdMove:      {"move", "m", "go"},
	CmdGrab:      {"grab", "g", "take", "get"},
	CmdInventory: {"inventory", "i", "inv"},
	CmdUse:       {"use", "u"},
	CmdExamine:   {"examine", "x", "inspect"},
	CmdFight:     {"fight", "f", "attack", "battle"},
	CmdStatus:    {"status", "st", "stats"},
}

var directionAliases = map[world.Direction][]string{
	world.North: {"north", "n"},
	world.South: {"south", "s"},
	world.East:  {"east", "e"},
	world.West:  {"west", "w"},
}

var (
	commandIndex   = invert(commandAliases)
	directionIndex = invert(directionAliases)
)

// Parsed is the result of parsing one line of input. Direction is set only
// for look and move; any other trailing words end up in Args.
type Parsed struct {
	Command   Kind
	Direction world.Direction
	Args      string
}

// Recognized reports whether the first word named a known command.
func (p Parsed) Recognized() bool {
	return p.Command != CmdNone
}

// Parse splits raw input into a command, an optional direction and optional
// free-text arguments. Input is matched case-insensitively.
func Parse(raw string) Parsed {
	parts := strings.Fields(strings.ToLower(raw))
	if len(parts) == 0 {
		return Parsed{}
	}

	cmd, ok := commandIndex[parts[0]]
	if !ok {
		return Parsed{}
	}

	result := Parsed{Command: cmd}
	if len(parts) == 1 {
		return result
	}

	if dir, ok := ResolveDirection(parts[1]); ok && (cmd == CmdLook || cmd == CmdMove) {
		result.Direction = dir
		return result
	}

	result.Args = strings.Join(parts[1:], " ")
	return result
}

// ResolveCommand maps an alias to its canonical command.
func ResolveCommand(word string) (Kind, bool) {
	cmd, ok := commandIndex[strings.ToLower(word)]
	return cmd, ok
}

// ResolveDirection maps a direction alias to its canonical direction.
func ResolveDirection(word string) (world.Direction, bool) {
	dir, ok := directionIndex[strings.ToLower(word)]
	return dir, ok
}

// Aliases returns the accepted spellings of cmd.
func Aliases(cmd Kind) []string {
	return append([]string(nil), commandAliases[cmd]...)
}

func invert[K ~string](table map[K][]string) map[string]K {
	index := make(map[string]K)
	for canonical, aliases := range table {
		for _, alias := range aliases {
			index[alias] = canonical
		}
	}
	return index
}
