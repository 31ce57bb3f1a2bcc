package domain

// Grid is a 9x9 Sudoku grid; 0 marks an empty cell.
type Grid [9][9]uint8

// Board holds current values and which cells are fixed givens.
type Board struct {
	Values Grid       `json:"board"`
	Fixed  [9][9]bool `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a suggested next move for the UI.
type Hint struct {
	Message string      `json:"message,omitempty"`
	Cells   []CellCoord `json:"cells,omitempty"`
	Digit   uint8       `json:"digit,omitempty"`
}

// Session is one live game: the player's board, the retained solution,
// and where the game is in its lifecycle. The solution never leaves the
// process and is never aliased with Board.Values (Grid is an array type;
// assignment copies).
type Session struct {
	Board    Board        `json:"board"`
	Solution Grid         `json:"-"`
	State    SessionState `json:"state"`
	Seed     int64        `json:"seed,omitempty"`
}
