package game

import (
	"cmp"
	"math"
	"slices"
)

// Scores for a decided game from the point of view of the side to move.
var (
	scoreWin  = math.Inf(1)
	scoreLoss = math.Inf(-1)
)

// MoveScore pairs a root column with the score the search gave it.
type MoveScore struct {
	Column int     `json:"column"`
	Score  float64 `json:"score"`
}

// Engine performs a depth limited negamax search with alpha-beta pruning.
// The only state it keeps is the ranked list of root moves for the last
// search. An Engine must not be used by more than one search at a time.
type Engine struct {

	// RankAll searches every root move with a full window and disables
	// the cutoff at the root, so Results holds an exact score for every
	// legal move. Deeper plies still prune.
	RankAll bool

	results []MoveScore
	nodes   int
}

// Reset clears the data kept from the previous search.
func (e *Engine) Reset() {
	e.results = e.results[:0]
	e.nodes = 0
}

// Results returns a copy of the root moves sorted by score, best first.
// Moves with equal scores keep ascending column order.
func (e *Engine) Results() []MoveScore {
	return slices.Clone(e.results)
}

// Nodes returns the number of positions visited since the last Reset.
func (e *Engine) Nodes() int {
	return e.nodes
}

// Search returns the score of the board for the player to move. The score
// is always from that player's point of view. When root is true the score
// of every move examined at this level is recorded for Results. The board
// is left as it was found.
func (e *Engine) Search(b *Board, alpha float64, beta float64, depth int, player Player, root bool) float64 {
	e.nodes++

	if outcome := Classify(b); depth == 0 || outcome.IsOver() {
		switch outcome.Winner() {
		case player:
			return scoreWin
		case player.Opponent():
			return scoreLoss
		}

		return float64(player.Sign() * Evaluate(b))
	}

	rankAll := root && e.RankAll

	best := scoreLoss
	for _, col := range b.OpenColumns() {
		childAlpha, childBeta := -beta, -alpha
		if rankAll {
			childAlpha, childBeta = scoreLoss, scoreWin
		}

		score := -e.descend(b, col, player, childAlpha, childBeta, depth-1)

		if root {
			e.results = append(e.results, MoveScore{Column: col, Score: score})
		}

		if score > best {
			best = score
		}

		if best > alpha {
			alpha = best
		}

		if alpha >= beta && !rankAll {
			break
		}
	}

	if root {
		slices.SortStableFunc(e.results, func(a, b MoveScore) int {
			return cmp.Compare(b.Score, a.Score)
		})
	}

	return alpha
}

// descend plays the column for the player, searches the reply for the
// opponent and takes the move back no matter how the search returns.
func (e *Engine) descend(b *Board, col int, player Player, alpha float64, beta float64, depth int) float64 {
	b.ApplyMove(col, player)
	defer b.UndoMove(col)

	return e.Search(b, alpha, beta, depth, player.Opponent(), false)
}
