package game

// weights gives every cell a value for the number of four in a row lines
// that run through it, so central columns and middle rows count the most.
var weights = [Rows][Cols]int{
	{3, 4, 5, 7, 5, 4, 3},
	{4, 6, 8, 10, 8, 6, 4},
	{5, 8, 11, 13, 11, 8, 5},
	{5, 8, 11, 13, 11, 8, 5},
	{4, 6, 8, 10, 8, 6, 4},
	{3, 4, 5, 7, 5, 4, 3},
}

// Evaluate scores a position as the weight of Blue's cells minus the weight
// of Red's cells. It knows nothing about whose turn it is.
func Evaluate(b *Board) int {
	var score int
	for row := range Rows {
		for col := range Cols {
			score += weights[row][col] * int(b.cells[row][col])
		}
	}

	return score
}
