// Package board handles the game board and all interactions.
package board

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ardanlabs/connect4/cmd/connect/ai"
	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog"
)

const (
	cellWidth   = 5
	cellHeight  = 2
	boardWidth  = game.Cols*cellWidth + 1
	boardHeight = game.Rows * cellHeight
	padTop      = 4
	padLeft     = 1
)

const (
	hozTopRune = '━'
	hozBotRune = '▅'
	verRune    = '┃'
	space      = 32
)

const (
	dirLeft  = "left"
	dirRight = "right"
)

const (
	dropDelay = 250 * time.Millisecond
	aiTimeout = 30 * time.Second
)

// Recorder represents the behavior required to store a finished game.
type Recorder interface {
	Record(ctx context.Context, summary game.Summary) error
}

// Config represents what the board needs to play a game.
type Config struct {
	Log       *zerolog.Logger
	Game      *game.Game
	AI        *ai.AI
	Recorder  Recorder
	ImagesDir string
}

// Board represents the game board and all its state.
type Board struct {
	log           *zerolog.Logger
	game          *game.Game
	ai            *ai.AI
	recorder      Recorder
	imagesDir     string
	screen        tcell.Screen
	style         tcell.Style
	delay         time.Duration
	state         game.BoardState
	inputCol      int
	lastWinnerMsg string
	lastAIMsg     string
	modalUp       bool
	mouseDown     bool
}

// New contructs a game board and renders the board.
func New(cfg Config) (*Board, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}

	screen.EnableMouse()

	return newBoard(cfg, screen), nil
}

func newBoard(cfg Config, screen tcell.Screen) *Board {
	log := cfg.Log
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	aiPlayer := cfg.AI
	if aiPlayer == nil {
		aiPlayer = ai.New(log, nil, false)
	}

	style := tcell.StyleDefault
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	board := Board{
		log:       log,
		game:      cfg.Game,
		ai:        aiPlayer,
		recorder:  cfg.Recorder,
		imagesDir: cfg.ImagesDir,
		screen:    screen,
		style:     style,
		delay:     dropDelay,
		state:     cfg.Game.ToBoardState(),
		inputCol:  game.Cols / 2,
	}

	board.drawInit()

	return &board
}

// Shutdown tears down the game board.
func (b *Board) Shutdown() {
	b.screen.Fini()
}

// Run starts a goroutine to handle terminal events. This is a
// blocking call.
func (b *Board) Run() chan struct{} {
	return b.pollEvents()
}

// =============================================================================

func (b *Board) newGame() {
	if err := b.game.NewGame(); err != nil {
		b.log.Error().Err(err).Msg("new game")
		b.lastAIMsg = err.Error()
		b.printAI()
		return
	}

	b.state = b.game.ToBoardState()
	b.inputCol = game.Cols / 2
	b.lastAIMsg = ""
	b.modalUp = false

	b.drawInit()

	if b.game.IsAITurn() {
		b.aiTurn()
	}
}

// userTurn drops the human piece in the selected column and lets the AI
// answer when the game is still going.
func (b *Board) userTurn() {
	if b.state.GameOver || b.game.IsAITurn() {
		b.screen.Beep()
		return
	}

	state, err := b.game.UserTurn(b.inputCol)
	if err != nil {
		b.log.Debug().Err(err).Int("column", b.inputCol).Msg("user turn")
		b.screen.Beep()
		return
	}

	b.state = state
	b.dropPiece(state.LastMove)

	if state.GameOver {
		b.commentary()
		b.finish()
		return
	}

	b.aiTurn()
}

// aiTurn runs the search for the AI and displays the move.
func (b *Board) aiTurn() {
	b.lastAIMsg = "- RUNNING AI"
	b.printAI()

	state, err := b.game.AITurn()
	if err != nil {
		b.log.Error().Err(err).Msg("ai turn")
		b.lastAIMsg = err.Error()
		b.printAI()
		return
	}

	b.state = state
	b.inputCol = state.LastMove.Column
	b.dropPiece(state.LastMove)
	b.printDebug()

	b.commentary()

	if state.GameOver {
		b.finish()
		return
	}

	b.drawMarker()
}

// commentary asks the AI for a remark about the last move.
func (b *Board) commentary() {
	ctx, cancel := context.WithTimeout(context.Background(), aiTimeout)
	defer cancel()

	response, err := b.ai.CreateAIResponse(ctx, b.state)
	if err != nil {
		b.log.Error().Err(err).Msg("ai response")
	}

	b.lastAIMsg = ""
	if response != "" {
		b.lastAIMsg = "- " + response
	}
	b.printAI()

	b.ai.Speak(response)
}

// finish stores the finished game and displays the winner.
func (b *Board) finish() {
	if b.recorder != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := b.recorder.Record(ctx, b.game.Summary()); err != nil {
			b.log.Error().Err(err).Str("game", b.state.GameID).Msg("record game")
		}
	}

	if b.imagesDir != "" {
		if _, err := b.ai.SaveBoardImage(b.imagesDir, b.state); err != nil {
			b.log.Error().Err(err).Str("game", b.state.GameID).Msg("save image")
		}
	}

	b.log.Info().
		Str("game", b.state.GameID).
		Str("outcome", b.state.Outcome.String()).
		Int("pieces", b.state.Pieces).
		Msg("game over")

	b.showWinner(b.state.Winner)
}

// =============================================================================

func (b *Board) drawInit() {
	b.drawEmptyGameBoard()
	b.applyBoardState()
}

func (b *Board) drawEmptyGameBoard() {
	b.screen.Clear()

	width := boardWidth
	height := boardHeight

	style := b.style
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorGrey)

	for h := 0; h <= height; h++ {
		for w := 0; w < width; w++ {

			// Clear the entire line.
			b.screen.SetContent(w+padLeft, h+padTop, space, nil, style)

			if h%cellHeight == 0 {

				// These are the '━' characters creating each row.
				b.screen.SetContent(w+padLeft, h+padTop, hozTopRune, nil, style)

				if h == height {

					// These are the '▅' characters creating the bottom row.
					b.screen.SetContent(w+padLeft, h+padTop, hozBotRune, nil, style)
				}
			}

			if w%cellWidth == 0 {

				// These are the '┃' characters creating each column.
				b.screen.SetContent(w+padLeft, h+padTop, verRune, nil, style)
			}
		}
	}

	b.print(10, 1, "Connect 4 AI Version")
	b.print(0, boardHeight+padTop+1, "   ①    ②    ③    ④    ⑤    ⑥    ⑦")

	b.print(boardWidth+3, padTop-3, "<n> new game      <q> quit game")
	b.print(boardWidth+3, padTop-2, "<s> sound on/off  <mouse> drop piece")
	b.print(boardWidth+3, padTop+1, "Last Winner:                   ")

	screenWidth, _ := b.screen.Size()

	b.drawBox(boardWidth+3, padTop+3, boardWidth+(screenWidth-boardWidth-2), padTop+3+10)
	b.print(boardWidth+4, padTop+3, " AI PLAYER ")
}

// applyBoardState draws the pieces of the current state without animation.
func (b *Board) applyBoardState() {
	for row := range game.Rows {
		for col := range game.Cols {
			cell := b.state.Cells[row][col]
			if !cell.HasPiece {
				continue
			}

			b.print(columnCenter(col), rowCenter(row), disc(cell.Player))
		}
	}

	b.print(boardWidth+3, padTop+1, "Last Winner: "+b.lastWinnerMsg)
	b.printAI()
	b.printDebug()

	if !b.state.GameOver && !b.game.IsAITurn() {
		b.drawMarker()
	}

	b.screen.Show()
}

// drawMarker displays the human piece above the selected column.
func (b *Board) drawMarker() {
	for col := range game.Cols {
		b.print(columnCenter(col), padTop-1, glyphEmpty+glyphEmpty)
	}

	b.print(columnCenter(b.inputCol), padTop-1, disc(b.state.Human))
}

func (b *Board) movePlayerPiece(direction string) {
	if b.state.GameOver {
		return
	}

	switch {
	case direction == dirLeft && b.inputCol == 0:
		return
	case direction == dirRight && b.inputCol == game.Cols-1:
		return
	}

	switch direction {
	case dirLeft:
		b.inputCol--
	case dirRight:
		b.inputCol++
	}

	b.drawMarker()
}

// dropPiece animates the piece falling to the row it landed in.
func (b *Board) dropPiece(move game.LastMove) {
	column := columnCenter(move.Column)
	glyph := disc(move.Player)

	// Clear the marker.
	b.print(column, padTop-1, glyphEmpty+glyphEmpty)

	for row := 0; row <= move.Row; row++ {
		b.print(column, rowCenter(row), glyph)

		if row < move.Row {
			time.Sleep(b.delay)
			b.print(column, rowCenter(row), glyphEmpty+glyphEmpty)
		}
	}
}

// showWinner displays a modal dialog box.
func (b *Board) showWinner(winner game.Player) {
	b.lastWinnerMsg = winnerText(winner)

	b.modalUp = true

	b.screen.HideCursor()
	b.drawBox(5, 8, 33, 13)

	h := 10
	l := runewidth.StringWidth(b.lastWinnerMsg)
	x := 19 - (l / 2)
	b.print(x, h, b.lastWinnerMsg)
}

// closeModal closes the modal dialog box.
func (b *Board) closeModal() {
	b.modalUp = false

	b.drawInit()
}

// drawBox draws an empty box on the screen.
func (b *Board) drawBox(x int, y int, width int, height int) {
	style := b.style
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)

	for h := y; h < height; h++ {
		for w := x; w < width; w++ {
			b.screen.SetContent(w, h, ' ', nil, b.style)
		}
	}

	for h := y; h < height; h++ {
		for w := x; w < width; w++ {
			if h == y {
				b.screen.SetContent(w, h, '▀', nil, style)
			}
			if h == height-1 {
				b.screen.SetContent(w, h, '▄', nil, style)
			}
			if w == x || w == width-1 {
				b.screen.SetContent(w, h, '█', nil, style)
			}
		}
	}

	b.screen.Show()
}

func (b *Board) print(x, y int, str string) {
	for _, c := range str {
		var comb []rune
		w := runewidth.RuneWidth(c)
		if w == 0 {
			comb = []rune{c}
			c = ' '
			w = 1
		}
		b.screen.SetContent(x, y, c, comb, b.style)
		x += w
	}
	b.screen.Show()
}

func (b *Board) printAI() {
	screenWidth, _ := b.screen.Size()
	actWidth := (screenWidth - boardWidth - 9)

	row := boardWidth + 5
	col := padTop + 4

	for range 8 {
		for range actWidth {
			b.print(row, col, " ")
			row++
		}
		row = boardWidth + 5
		col++
	}

	row = boardWidth + 5
	col = padTop + 4

	scanner := bufio.NewScanner(bytes.NewReader([]byte(b.lastAIMsg)))
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := scanner.Text()

		b.print(row, col, word)

		row += runewidth.StringWidth(word) + 1
		if row >= boardWidth+actWidth-4 {
			col++
			row = boardWidth + 5
		}
	}
}

// printDebug shows what the search did for the last AI move.
func (b *Board) printDebug() {
	y := boardHeight + padTop + 3

	screenWidth, _ := b.screen.Size()
	for x := range screenWidth {
		b.screen.SetContent(x, y, space, nil, b.style)
	}

	b.print(padLeft, y, b.state.DebugMessage)
}

// =============================================================================

// columnCenter returns the screen x position where pieces of the column
// are drawn.
func columnCenter(col int) int {
	return padLeft + 2 + cellWidth*col
}

// rowCenter returns the screen y position where pieces of the row are drawn.
func rowCenter(row int) int {
	return padTop + 1 + cellHeight*row
}
