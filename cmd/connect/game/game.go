// Package game provides the connect 4 rules, the search engine that plays
// for the AI and the game session that ties them together.
package game

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Set of errors returned when a move is rejected.
var (
	ErrNotYourTurn   = errors.New("not your turn")
	ErrInvalidColumn = errors.New("invalid column")
	ErrColumnFull    = errors.New("column is full")
)

// Set of options for who goes first in a new game.
const (
	FirstHuman  = "human"
	FirstAI     = "ai"
	FirstRandom = "random"
)

// Feedback describes the last AI move for commentary.
type Feedback string

// Set of feedback values produced by the game.
const (
	FeedbackNormalGamePlay Feedback = "Normal-GamePlay"
	FeedbackBlockedWin     Feedback = "Blocked-Win"
	FeedbackWillWin        Feedback = "Will-Win"
	FeedbackWonGame        Feedback = "Won-Game"
	FeedbackLostGame       Feedback = "Lost-Game"
	FeedbackTieGame        Feedback = "Tie-Game"
)

// Config represents the settings for a game session.
type Config struct {
	Depth   int
	First   string
	Human   Player
	RankAll bool
	Log     *zerolog.Logger
}

// Game represents a session between a human and the AI. It owns the board
// between moves and hands it to the search engine for the AI's turn.
type Game struct {
	log          *zerolog.Logger
	printer      *message.Printer
	selector     *Selector
	first        string
	human        Player
	ai           Player
	id           uuid.UUID
	board        Board
	turn         Player
	moves        []LastMove
	lastMove     LastMove
	outcome      Outcome
	lastWinner   Player
	feedback     Feedback
	gameMessage  string
	debugMessage string
	startedAt    time.Time
	endedAt      time.Time
}

// New constructs a game session ready for the first move.
func New(cfg Config) (*Game, error) {
	switch cfg.First {
	case "":
		cfg.First = FirstRandom
	case FirstHuman, FirstAI, FirstRandom:
	default:
		return nil, fmt.Errorf("invalid first player %q", cfg.First)
	}

	if cfg.Human.IsZero() {
		cfg.Human = Players.Blue
	}

	log := cfg.Log
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	g := Game{
		log:      log,
		printer:  message.NewPrinter(language.English),
		selector: NewSelector(cfg.Depth, cfg.RankAll),
		first:    cfg.First,
		human:    cfg.Human,
		ai:       cfg.Human.Opponent(),
	}

	if err := g.NewGame(); err != nil {
		return nil, err
	}

	return &g, nil
}

// NewGame clears the board for another game. The winner of the previous
// game goes first, otherwise the configured rule decides.
func (g *Game) NewGame() error {
	turn, err := g.goingFirst()
	if err != nil {
		return err
	}

	g.id = uuid.New()
	g.board = Board{}
	g.turn = turn
	g.moves = nil
	g.lastMove = LastMove{Column: -1, Row: -1}
	g.outcome = Ongoing
	g.feedback = ""
	g.gameMessage = ""
	g.debugMessage = ""
	g.startedAt = time.Now().UTC()
	g.endedAt = time.Time{}

	g.log.Info().Str("game", g.id.String()).Str("first", turn.String()).Int("depth", g.selector.Depth()).Msg("new game")

	return nil
}

// IsAITurn reports if the AI is the next to move in a game still being
// played.
func (g *Game) IsAITurn() bool {
	return !g.outcome.IsOver() && g.turn == g.ai
}

// UserTurn plays the user's choice of column.
func (g *Game) UserTurn(column int) (BoardState, error) {
	g.gameMessage = ""
	g.debugMessage = ""
	g.feedback = ""

	switch {
	case g.outcome.IsOver():
		return BoardState{}, ErrGameOver
	case g.turn != g.human:
		return BoardState{}, ErrNotYourTurn
	case column < 0 || column >= Cols:
		return BoardState{}, fmt.Errorf("column %d: %w", column, ErrInvalidColumn)
	case !g.board.IsOpen(column):
		return BoardState{}, fmt.Errorf("column %d: %w", column, ErrColumnFull)
	}

	g.play(column, g.human)

	switch g.outcome {
	case Draw:
		g.feedback = FeedbackTieGame
	case Ongoing:
	default:
		g.feedback = FeedbackLostGame
	}

	return g.ToBoardState(), nil
}

// AITurn searches for the AI's best column and plays it.
func (g *Game) AITurn() (BoardState, error) {
	g.gameMessage = ""
	g.debugMessage = ""
	g.feedback = ""

	switch {
	case g.outcome.IsOver():
		return BoardState{}, ErrGameOver
	case g.turn != g.ai:
		return BoardState{}, ErrNotYourTurn
	}

	start := time.Now()

	column, err := g.selector.SelectMove(&g.board, g.ai)
	if err != nil {
		return BoardState{}, fmt.Errorf("select move: %w", err)
	}

	elapsed := time.Since(start)

	// Did this column stop the human from winning on their next move?
	blocked := WouldWin(&g.board, column, g.human)

	g.play(column, g.ai)

	ranking := g.selector.Ranking()
	score := ranking[0].Score

	switch {
	case g.outcome == Draw:
		g.feedback = FeedbackTieGame
	case g.outcome.IsOver():
		g.feedback = FeedbackWonGame
	case blocked:
		g.feedback = FeedbackBlockedWin
	case math.IsInf(score, 1):
		g.feedback = FeedbackWillWin
	default:
		g.feedback = FeedbackNormalGamePlay
	}

	g.debugMessage = g.printer.Sprintf("CHOICE: %d - DEPTH: %d - NODES: %d - SCORE: %v - TIME: %v", column+1, g.selector.Depth(), g.selector.Nodes(), score, elapsed.Round(time.Millisecond))

	g.log.Debug().
		Str("game", g.id.String()).
		Int("column", column).
		Float64("score", score).
		Int("nodes", g.selector.Nodes()).
		Dur("elapsed", elapsed).
		Msg("ai move")

	return g.ToBoardState(), nil
}

// =============================================================================

// play drops the piece, records the move and updates the outcome.
func (g *Game) play(column int, p Player) {
	row := -1
	for r := Rows - 1; r >= 0; r-- {
		if g.board.Cell(r, column).IsZero() {
			row = r
			break
		}
	}

	g.board.ApplyMove(column, p)

	g.lastMove = LastMove{Column: column, Row: row, Player: p}
	g.moves = append(g.moves, g.lastMove)
	g.turn = p.Opponent()
	g.outcome = Classify(&g.board)

	g.log.Debug().Str("game", g.id.String()).Str("player", p.String()).Int("column", column).Int("row", row).Msg("move")

	if !g.outcome.IsOver() {
		return
	}

	g.endedAt = time.Now().UTC()

	switch winner := g.outcome.Winner(); {
	case winner.IsZero():
		g.gameMessage = "There was a Tie between the Blue and Red player"
	default:
		g.lastWinner = winner
		g.gameMessage = fmt.Sprintf("The %s player has won", winner)
	}

	g.log.Info().Str("game", g.id.String()).Str("outcome", g.outcome.String()).Int("moves", len(g.moves)).Msg("game over")
}

func (g *Game) goingFirst() (Player, error) {
	if !g.lastWinner.IsZero() {
		return g.lastWinner, nil
	}

	switch g.first {
	case FirstHuman:
		return g.human, nil
	case FirstAI:
		return g.ai, nil
	}

	nBig, err := rand.Int(rand.Reader, big.NewInt(100))
	if err != nil {
		return Player{}, fmt.Errorf("random number: %w", err)
	}

	if n := nBig.Int64(); n%2 == 0 {
		return g.ai, nil
	}

	return g.human, nil
}
