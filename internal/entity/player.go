package entity

// Player is the side whose mark is placed by an accepted move.
type Player string

const (
	PlayerX Player = "X"
	PlayerO Player = "O"
)

// Next - returns the player who moves after this one.
func (that Player) Next() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Mark - returns the cell value this player writes.
func (that Player) Mark() Cell {
	if that == PlayerX {
		return MarkedX
	}
	return MarkedO
}
