package game

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestGame(t *testing.T, first string, depth int) *Game {
	t.Helper()

	g, err := New(Config{Depth: depth, First: first})
	if err != nil {
		t.Fatalf("new game: %s", err)
	}

	return g
}

// =============================================================================

func TestNewInvalidFirst(t *testing.T) {
	if _, err := New(Config{First: "nobody"}); err == nil {
		t.Fatal("expected an error")
	}
}

func TestNewFirst(t *testing.T) {
	g := newTestGame(t, FirstHuman, 2)
	if g.IsAITurn() {
		t.Fatal("expected the human to go first")
	}

	g = newTestGame(t, FirstAI, 2)
	if !g.IsAITurn() {
		t.Fatal("expected the AI to go first")
	}

	state := g.ToBoardState()
	if state.Human != Players.Blue || state.AI != Players.Red {
		t.Fatalf("expected Blue human and Red AI, got %s and %s", state.Human, state.AI)
	}
	if state.LastMove.Column != -1 {
		t.Fatalf("expected no last move, got column %d", state.LastMove.Column)
	}
}

func TestTurnsAlternate(t *testing.T) {
	g := newTestGame(t, FirstHuman, 3)

	if _, err := g.AITurn(); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected %v, got %v", ErrNotYourTurn, err)
	}

	state, err := g.UserTurn(3)
	if err != nil {
		t.Fatalf("user turn: %s", err)
	}

	want := LastMove{Column: 3, Row: Rows - 1, Player: Players.Blue}
	if diff := cmp.Diff(want, state.LastMove); diff != "" {
		t.Fatalf("last move mismatch (-want +got):\n%s", diff)
	}

	if state.Turn != Players.Red || !g.IsAITurn() {
		t.Fatalf("expected Red to move, got %s", state.Turn)
	}

	if _, err := g.UserTurn(3); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected %v, got %v", ErrNotYourTurn, err)
	}

	state, err = g.AITurn()
	if err != nil {
		t.Fatalf("ai turn: %s", err)
	}

	if state.LastMove.Player != Players.Red {
		t.Fatalf("expected Red to have moved, got %s", state.LastMove.Player)
	}

	if state.Pieces != 2 {
		t.Fatalf("expected 2 pieces, got %d", state.Pieces)
	}

	if state.Feedback != FeedbackNormalGamePlay {
		t.Fatalf("expected %s, got %s", FeedbackNormalGamePlay, state.Feedback)
	}

	if len(state.Ranking) == 0 || state.DebugMessage == "" {
		t.Fatal("expected ranking and debug information from the search")
	}
}

func TestUserTurnRejectsBadColumns(t *testing.T) {
	g := newTestGame(t, FirstHuman, 2)
	g.board = *mustParseBoard(t, `
		2000000
		1000000
		2000000
		1000000
		2000000
		1000000`)

	tests := []struct {
		name   string
		column int
		want   error
	}{
		{"negative", -1, ErrInvalidColumn},
		{"too large", Cols, ErrInvalidColumn},
		{"full", 0, ErrColumnFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := g.UserTurn(tt.column); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if g.board.Pieces() != Rows {
		t.Fatalf("expected the board to be unchanged:\n%s", &g.board)
	}
}

func TestAIWinsGame(t *testing.T) {
	g := newTestGame(t, FirstAI, 3)
	g.board = *mustParseBoard(t, `
		0000000
		0000000
		0000000
		0000000
		0000010
		2220110`)

	state, err := g.AITurn()
	if err != nil {
		t.Fatalf("ai turn: %s", err)
	}

	if !state.GameOver || state.Winner != Players.Red || state.Outcome != RedWins {
		t.Fatalf("expected Red to win, got outcome %s", state.Outcome)
	}

	if state.Feedback != FeedbackWonGame {
		t.Fatalf("expected %s, got %s", FeedbackWonGame, state.Feedback)
	}

	if !strings.Contains(state.GameMessage, "Red") {
		t.Fatalf("expected the game message to name Red, got %q", state.GameMessage)
	}

	if _, err := g.UserTurn(4); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected %v, got %v", ErrGameOver, err)
	}

	if _, err := g.AITurn(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected %v, got %v", ErrGameOver, err)
	}

	sum := g.Summary()
	if sum.GameID != state.GameID || sum.Winner != Players.Red || sum.EndedAt.IsZero() {
		t.Fatalf("unexpected summary: %+v", sum)
	}

	// The winner goes first in the next game.
	oldID := state.GameID
	if err := g.NewGame(); err != nil {
		t.Fatalf("new game: %s", err)
	}

	if !g.IsAITurn() {
		t.Fatal("expected the AI to go first after winning")
	}

	if g.ToBoardState().GameID == oldID {
		t.Fatal("expected a new game id")
	}
}

func TestAIBlocksWin(t *testing.T) {
	g := newTestGame(t, FirstAI, 2)
	g.board = *mustParseBoard(t, `
		0000000
		0000000
		0000000
		1000000
		1000000
		1002200`)

	state, err := g.AITurn()
	if err != nil {
		t.Fatalf("ai turn: %s", err)
	}

	if state.LastMove.Column != 0 {
		t.Fatalf("expected the block in column 0, got %d", state.LastMove.Column)
	}

	if state.Feedback != FeedbackBlockedWin {
		t.Fatalf("expected %s, got %s", FeedbackBlockedWin, state.Feedback)
	}
}

func TestHumanWinsGame(t *testing.T) {
	g := newTestGame(t, FirstHuman, 2)
	g.board = *mustParseBoard(t, `
		0000000
		0000000
		0000000
		0000000
		2200000
		1110200`)

	state, err := g.UserTurn(3)
	if err != nil {
		t.Fatalf("user turn: %s", err)
	}

	if state.Winner != Players.Blue || state.Feedback != FeedbackLostGame {
		t.Fatalf("expected Blue to win with %s, got %s with %s", FeedbackLostGame, state.Winner, state.Feedback)
	}

	sum := g.Summary()
	if diff := cmp.Diff([]LastMove{{Column: 3, Row: Rows - 1, Player: Players.Blue}}, sum.Moves); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
}

func TestBoardStateJSON(t *testing.T) {
	g := newTestGame(t, FirstHuman, 2)

	if _, err := g.UserTurn(2); err != nil {
		t.Fatalf("user turn: %s", err)
	}

	data, err := json.Marshal(g.ToBoardState())
	if err != nil {
		t.Fatalf("marshal: %s", err)
	}

	var got BoardState
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %s", err)
	}

	if got.Turn != Players.Red || got.Cells[Rows-1][2].Player != Players.Blue || !got.Cells[Rows-1][2].HasPiece {
		t.Fatalf("unexpected decoded state: %s", data)
	}
}
