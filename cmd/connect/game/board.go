package game

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Board dimensions.
const (
	Rows = 6
	Cols = 7
)

// Board represents the playing grid. Row 0 is the top of the board and the
// pieces in a column always sit contiguous from the bottom row up. The zero
// value is an empty board.
type Board struct {
	cells [Rows][Cols]int8
}

// Empty returns a board with every cell empty.
func Empty() *Board {
	return &Board{}
}

// Cell returns the player occupying the specified cell. The zero Player is
// returned for an empty cell.
func (b *Board) Cell(row int, col int) Player {
	return playerFromSign(b.cells[row][col])
}

// IsOpen reports if a piece can still be dropped in the column.
func (b *Board) IsOpen(col int) bool {
	if col < 0 || col >= Cols {
		return false
	}

	return b.cells[0][col] == 0
}

// OpenColumns returns the columns that can still take a piece in ascending
// order. An empty list means the board is full.
func (b *Board) OpenColumns() []int {
	open := make([]int, 0, Cols)
	for col := range Cols {
		if b.cells[0][col] == 0 {
			open = append(open, col)
		}
	}

	return open
}

// ApplyMove drops the player's piece into the lowest empty row of the
// column. Nothing happens if the column is full or out of range, callers
// must check OpenColumns first.
func (b *Board) ApplyMove(col int, p Player) {
	if !b.IsOpen(col) {
		return
	}

	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][col] == 0 {
			b.cells[row][col] = p.sign
			return
		}
	}
}

// UndoMove removes the most recently dropped piece in the column. Nothing
// happens if the column is empty. It must only be used to reverse an
// ApplyMove on the same column.
func (b *Board) UndoMove(col int) {
	if col < 0 || col >= Cols {
		return
	}

	for row := range Rows {
		if b.cells[row][col] != 0 {
			b.cells[row][col] = 0
			return
		}
	}
}

// Pieces returns the number of pieces on the board.
func (b *Board) Pieces() int {
	var n int
	for row := range Rows {
		for col := range Cols {
			if b.cells[row][col] != 0 {
				n++
			}
		}
	}

	return n
}

// String returns a row-major dump of the board with 1 for Blue, 2 for Red
// and 0 for an empty cell. It is a debug aid, not a stable format.
func (b *Board) String() string {
	var s strings.Builder

	for row := range Rows {
		for col := range Cols {
			if col > 0 {
				s.WriteByte(' ')
			}

			switch b.cells[row][col] {
			case 1:
				s.WriteByte('1')
			case -1:
				s.WriteByte('2')
			default:
				s.WriteByte('0')
			}
		}
		s.WriteByte('\n')
	}

	return s.String()
}

// =============================================================================

// ParseBoard reads a board in the format produced by String. Blank lines are
// ignored and the cells of a row may be separated by spaces or not at all.
func ParseBoard(data string) (*Board, error) {
	var b Board
	var row int

	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.ReplaceAll(strings.TrimSpace(scanner.Text()), " ", "")
		if line == "" {
			continue
		}

		if row == Rows {
			return nil, fmt.Errorf("too many rows: want %d", Rows)
		}

		if len(line) != Cols {
			return nil, fmt.Errorf("row %d: got %d cells, want %d", row, len(line), Cols)
		}

		for col, r := range line {
			v, err := strconv.Atoi(string(r))
			if err != nil || v < 0 || v > 2 {
				return nil, fmt.Errorf("row %d col %d: invalid cell %q", row, col, r)
			}

			switch v {
			case 1:
				b.cells[row][col] = 1
			case 2:
				b.cells[row][col] = -1
			}
		}

		row++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	if row != Rows {
		return nil, fmt.Errorf("got %d rows, want %d", row, Rows)
	}

	return &b, nil
}
