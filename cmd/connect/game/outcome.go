package game

// Outcome represents the state of a board with regard to the end of a game.
type Outcome int

// Set of outcomes a board can be in.
const (
	Ongoing Outcome = iota
	BlueWins
	RedWins
	Draw
)

// String returns the name of the outcome.
func (o Outcome) String() string {
	switch o {
	case BlueWins:
		return "Blue-Wins"
	case RedWins:
		return "Red-Wins"
	case Draw:
		return "Draw"
	}

	return "Ongoing"
}

// IsOver reports if the outcome ends the game.
func (o Outcome) IsOver() bool {
	return o != Ongoing
}

// Winner returns the player who won. The zero Player is returned for a draw
// or a game still being played.
func (o Outcome) Winner() Player {
	switch o {
	case BlueWins:
		return Players.Blue
	case RedWins:
		return Players.Red
	}

	return Player{}
}

// =============================================================================

// Each direction is a row and column step. Starting from every cell covers
// horizontal, vertical and both diagonal runs.
var directions = [4][2]int{
	{0, 1},  // horizontal
	{1, 0},  // vertical
	{-1, 1}, // SW to NE
	{1, 1},  // NW to SE
}

// Classify checks the board for a winner or a tie. Blue is checked first.
func Classify(b *Board) Outcome {
	switch {
	case b.hasFour(Players.Blue.sign):
		return BlueWins
	case b.hasFour(Players.Red.sign):
		return RedWins
	}

	for col := range Cols {
		if b.cells[0][col] == 0 {
			return Ongoing
		}
	}

	return Draw
}

// WouldWin makes the specified move and checks if the specified player wins
// the game with it. The move is reversed when the function returns.
func WouldWin(b *Board, col int, p Player) bool {
	if p.IsZero() || !b.IsOpen(col) {
		return false
	}

	b.ApplyMove(col, p)
	defer b.UndoMove(col)

	return Classify(b).Winner() == p
}

// hasFour reports if the pieces of the specified sign hold four cells in a
// row in any direction.
func (b *Board) hasFour(sign int8) bool {
	for _, d := range directions {
		for row := range Rows {
			endRow := row + 3*d[0]
			if endRow < 0 || endRow >= Rows {
				continue
			}

			for col := range Cols {
				endCol := col + 3*d[1]
				if endCol >= Cols {
					break
				}

				if b.cells[row][col] == sign &&
					b.cells[row+d[0]][col+d[1]] == sign &&
					b.cells[row+2*d[0]][col+2*d[1]] == sign &&
					b.cells[endRow][endCol] == sign {
					return true
				}
			}
		}
	}

	return false
}
