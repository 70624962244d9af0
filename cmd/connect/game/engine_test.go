package game

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// negamax is the search without pruning. It is the reference the engine
// must agree with.
func negamax(b *Board, depth int, p Player) float64 {
	if outcome := Classify(b); depth == 0 || outcome.IsOver() {
		switch outcome.Winner() {
		case p:
			return math.Inf(1)
		case p.Opponent():
			return math.Inf(-1)
		}

		return float64(p.Sign() * Evaluate(b))
	}

	best := math.Inf(-1)
	for _, col := range b.OpenColumns() {
		b.ApplyMove(col, p)
		best = max(best, -negamax(b, depth-1, p.Opponent()))
		b.UndoMove(col)
	}

	return best
}

func TestSearchMatchesMinimax(t *testing.T) {
	rng := rand.New(rand.NewPCG(2024, 10))

	var tested int
	for tested < 60 {
		b, p := randomBoard(rng, 4+rng.IntN(20))
		if Classify(b).IsOver() {
			continue
		}
		tested++

		for depth := 1; depth <= 4; depth++ {
			want := negamax(b, depth, p)

			var e Engine
			before := *b

			got := e.Search(b, math.Inf(-1), math.Inf(1), depth, p, true)
			if got != want {
				t.Fatalf("depth %d: expected %v, got %v:\n%s", depth, want, got, b)
			}

			if *b != before {
				t.Fatalf("depth %d: search did not restore the board:\n%s", depth, b)
			}

			results := e.Results()
			if len(results) == 0 || results[0].Score != want {
				t.Fatalf("depth %d: expected the top result to score %v, got %v", depth, want, results)
			}
		}
	}
}

func TestSearchTerminalPosition(t *testing.T) {
	b := mustParseBoard(t, `
		0000000
		0000000
		0000000
		0000000
		0000000
		1111222`)

	var e Engine

	if got := e.Search(b, math.Inf(-1), math.Inf(1), 5, Players.Blue, true); !math.IsInf(got, 1) {
		t.Fatalf("expected +Inf for the winner, got %v", got)
	}

	if got := e.Search(b, math.Inf(-1), math.Inf(1), 5, Players.Red, true); !math.IsInf(got, -1) {
		t.Fatalf("expected -Inf for the loser, got %v", got)
	}

	if n := len(e.Results()); n != 0 {
		t.Fatalf("expected no root moves for a finished game, got %d", n)
	}
}

func TestSearchDepthZeroUsesEvaluation(t *testing.T) {
	b := mustParseBoard(t, `
		0000000
		0000000
		0000000
		0000000
		0000000
		0001200`)

	var e Engine

	want := float64(Evaluate(b))
	if got := e.Search(b, math.Inf(-1), math.Inf(1), 0, Players.Blue, false); got != want {
		t.Fatalf("expected %v for Blue, got %v", want, got)
	}

	if got := e.Search(b, math.Inf(-1), math.Inf(1), 0, Players.Red, false); got != -want {
		t.Fatalf("expected %v for Red, got %v", -want, got)
	}
}

func TestSearchRootRanking(t *testing.T) {
	var e Engine
	e.Search(Empty(), math.Inf(-1), math.Inf(1), 1, Players.Red, true)

	want := []MoveScore{
		{Column: 3, Score: 7},
		{Column: 2, Score: 5},
		{Column: 4, Score: 5},
		{Column: 1, Score: 4},
		{Column: 5, Score: 4},
		{Column: 0, Score: 3},
		{Column: 6, Score: 3},
	}

	if diff := cmp.Diff(want, e.Results()); diff != "" {
		t.Fatalf("ranking mismatch (-want +got):\n%s", diff)
	}

	e.Reset()
	if n := len(e.Results()); n != 0 {
		t.Fatalf("expected reset to clear the results, got %d", n)
	}
	if n := e.Nodes(); n != 0 {
		t.Fatalf("expected reset to clear the node count, got %d", n)
	}
}

func TestSearchRankAllScoresEveryMove(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 1))

	var tested int
	for tested < 25 {
		b, p := randomBoard(rng, 6+rng.IntN(14))
		if Classify(b).IsOver() {
			continue
		}
		tested++

		const depth = 3

		e := Engine{RankAll: true}
		got := e.Search(b, math.Inf(-1), math.Inf(1), depth, p, true)

		if want := negamax(b, depth, p); got != want {
			t.Fatalf("expected %v, got %v:\n%s", want, got, b)
		}

		results := e.Results()
		if len(results) != len(b.OpenColumns()) {
			t.Fatalf("expected %d ranked moves, got %d", len(b.OpenColumns()), len(results))
		}

		for _, r := range results {
			b.ApplyMove(r.Column, p)
			want := -negamax(b, depth-1, p.Opponent())
			b.UndoMove(r.Column)

			if r.Score != want {
				t.Fatalf("column %d: expected %v, got %v:\n%s", r.Column, want, r.Score, b)
			}
		}
	}
}

func TestSearchRankAllMirrorsSymmetricBoard(t *testing.T) {
	b := mustParseBoard(t, `
		0000000
		0000000
		0000000
		0000000
		0000000
		0012100`)

	e := Engine{RankAll: true}
	e.Search(b, math.Inf(-1), math.Inf(1), 3, Players.Red, true)

	scores := make(map[int]float64)
	for _, r := range e.Results() {
		scores[r.Column] = r.Score
	}

	for col := range 3 {
		if scores[col] != scores[Cols-1-col] {
			t.Fatalf("expected columns %d and %d to score the same, got %v and %v", col, Cols-1-col, scores[col], scores[Cols-1-col])
		}
	}

	if best := e.Results()[0].Column; best > 3 {
		t.Fatalf("expected the lower of two mirrored columns, got %d", best)
	}
}
