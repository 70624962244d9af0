package game

import "errors"

// DefaultDepth is the number of plies searched for every AI move.
const DefaultDepth = 7

// Set of errors returned when a move can't be selected.
var (
	ErrGameOver = errors.New("game is over")
	ErrNoMoves  = errors.New("no open columns")
)

// Selector picks the best column for a player by running a fixed depth
// search. There is no iterative deepening and no time budget.
type Selector struct {
	engine Engine
	depth  int
}

// NewSelector constructs a selector that searches the specified number of
// plies. A depth less than 1 uses DefaultDepth.
func NewSelector(depth int, rankAll bool) *Selector {
	if depth < 1 {
		depth = DefaultDepth
	}

	return &Selector{
		engine: Engine{RankAll: rankAll},
		depth:  depth,
	}
}

// Depth returns the number of plies the selector searches.
func (s *Selector) Depth() int {
	return s.depth
}

// SelectMove searches the board for the player and returns the highest
// scoring column. The board is used as scratch space during the search and
// is restored before the call returns.
func (s *Selector) SelectMove(b *Board, p Player) (int, error) {
	if Classify(b).IsOver() {
		return -1, ErrGameOver
	}

	s.engine.Reset()
	s.engine.Search(b, scoreLoss, scoreWin, s.depth, p, true)

	if len(s.engine.results) == 0 {
		return -1, ErrNoMoves
	}

	return s.engine.results[0].Column, nil
}

// Ranking returns the root moves of the last search, best first.
func (s *Selector) Ranking() []MoveScore {
	return s.engine.Results()
}

// Nodes returns the number of positions visited by the last search.
func (s *Selector) Nodes() int {
	return s.engine.Nodes()
}
