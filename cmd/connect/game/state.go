package game

import "time"

// Cell represents a cell in the game board.
type Cell struct {
	HasPiece bool   `json:"hasPiece"`
	Player   Player `json:"player"`
}

// LastMove represents the last move in the game. Column is -1 before the
// first move of a game.
type LastMove struct {
	Column int    `json:"column"`
	Row    int    `json:"row"`
	Player Player `json:"player"`
}

// BoardState represent the state of the board for any UI to display.
type BoardState struct {
	GameID       string           `json:"gameID"`
	Cells        [Rows][Cols]Cell `json:"cells"`
	OpenColumns  []int            `json:"openColumns"`
	LastMove     LastMove         `json:"lastMove"`
	Turn         Player           `json:"turn"`
	Human        Player           `json:"human"`
	AI           Player           `json:"ai"`
	Pieces       int              `json:"pieces"`
	Outcome      Outcome          `json:"outcome"`
	GameOver     bool             `json:"gameOver"`
	Winner       Player           `json:"winner"`
	Feedback     Feedback         `json:"feedback"`
	Ranking      []MoveScore      `json:"-"`
	GameMessage  string           `json:"gameMessage"`
	DebugMessage string           `json:"debugMessage"`
}

// Summary represents a game for storage once it is over.
type Summary struct {
	GameID    string
	Human     Player
	Depth     int
	Moves     []LastMove
	Outcome   Outcome
	Winner    Player
	StartedAt time.Time
	EndedAt   time.Time
}

// ToBoardState represents what we will get from an API.
func (g *Game) ToBoardState() BoardState {
	var cells [Rows][Cols]Cell
	for row := range Rows {
		for col := range Cols {
			p := g.board.Cell(row, col)
			cells[row][col].HasPiece = !p.IsZero()
			cells[row][col].Player = p
		}
	}

	return BoardState{
		GameID:       g.id.String(),
		Cells:        cells,
		OpenColumns:  g.board.OpenColumns(),
		LastMove:     g.lastMove,
		Turn:         g.turn,
		Human:        g.human,
		AI:           g.ai,
		Pieces:       len(g.moves),
		Outcome:      g.outcome,
		GameOver:     g.outcome.IsOver(),
		Winner:       g.outcome.Winner(),
		Feedback:     g.feedback,
		Ranking:      g.selector.Ranking(),
		GameMessage:  g.gameMessage,
		DebugMessage: g.debugMessage,
	}
}

// Summary returns the information needed to store the game.
func (g *Game) Summary() Summary {
	moves := make([]LastMove, len(g.moves))
	copy(moves, g.moves)

	return Summary{
		GameID:    g.id.String(),
		Human:     g.human,
		Depth:     g.selector.Depth(),
		Moves:     moves,
		Outcome:   g.outcome,
		Winner:    g.outcome.Winner(),
		StartedAt: g.startedAt,
		EndedAt:   g.endedAt,
	}
}
