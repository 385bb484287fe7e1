package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownCommand = errors.New("unknown command")

const (
	ActionMove = "move"
	ActionNew  = "new"
	ActionHelp = "help"
	ActionQuit = "quit"
)

const helpText = `commands:
  0-8   mark a cell (0 1 2 / 3 4 5 / 6 7 8)
  new   start a new game
  help  show this message
  quit  leave
`

// Command is one parsed line of user input.
type Command struct {
	Action string
	Cell   int
}

// ParseCommand - turns a line of input into a Command. Numbers are passed through unchecked;
// range checking belongs to the engine.
func ParseCommand(line string) (Command, error) {
	input := strings.ToLower(strings.TrimSpace(line))

	switch input {
	case "new", "n":
		return Command{Action: ActionNew}, nil
	case "help", "h", "?":
		return Command{Action: ActionHelp}, nil
	case "quit", "exit", "q":
		return Command{Action: ActionQuit}, nil
	}

	cell, err := strconv.Atoi(input)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, input)
	}

	return Command{Action: ActionMove, Cell: cell}, nil
}
