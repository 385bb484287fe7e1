package entity

import "strings"

// Cell holds the content of one board position. A marked cell is never cleared.
type Cell string

const (
	Empty   Cell = ""
	MarkedX Cell = "X"
	MarkedO Cell = "O"
)

const (
	BoardSize = 9
	RowSize   = 3
)

const (
	StatusInProgress = "in_progress"
	StatusWon        = "won"
)

// WinCombos lists the rows, columns and diagonals in the order they are checked.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is laid out row-major: indices 0..2 are the top row.
type Board [BoardSize]Cell

// Row - returns a copy of row i (0..2).
func (that Board) Row(i int) [RowSize]Cell {
	var row [RowSize]Cell
	copy(row[:], that[i*RowSize:(i+1)*RowSize])

	return row
}

// IsValidIndex - reports whether cell addresses a position on the board.
func IsValidIndex(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

// Outcome is derived from a Board and never stored.
type Outcome struct {
	Status string `json:"status"`
	Winner Player `json:"winner,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Won(player Player) Outcome {
	return Outcome{Status: StatusWon, Winner: player}
}

func (that Outcome) IsWon() bool {
	return that.Status == StatusWon
}

func (that Outcome) String() string {
	if that.IsWon() {
		return "won(" + string(that.Winner) + ")"
	}
	return that.Status
}

// CalculateOutcome - returns the first completed line's mark as the winner, or InProgress.
// A full board without a line is still InProgress: draws are not detected.
func CalculateOutcome(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != Empty && a == b && b == c {
			return Won(Player(a))
		}
	}

	return InProgress()
}

// Game is the board plus the player to move.
type Game struct {
	Board Board  `json:"board"`
	Turn  Player `json:"turn"`
}

// NewGame - returns an empty board with X to move.
func NewGame() Game {
	return Game{Turn: PlayerX}
}

// Snapshot is the read-only view handed to the presentation layer.
type Snapshot struct {
	Board   Board   `json:"board"`
	Turn    Player  `json:"turn"`
	Outcome Outcome `json:"outcome"`
}

func (that Game) Snapshot() Snapshot {
	return Snapshot{
		Board:   that.Board,
		Turn:    that.Turn,
		Outcome: CalculateOutcome(that.Board),
	}
}

// Status - returns the line shown above the board.
func (that Snapshot) Status() string {
	if that.Outcome.IsWon() {
		return "Winner: " + string(that.Outcome.Winner)
	}
	return "Next player: " + string(that.Turn)
}

func (that Board) String() string {
	var sb strings.Builder

	for i, cell := range that {
		if cell == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteString(string(cell))
		}

		if i%RowSize == RowSize-1 && i != BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
