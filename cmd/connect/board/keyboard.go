package board

import (
	"fmt"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// pollEvents starts a goroutine to handle terminal events.
func (b *Board) pollEvents() chan struct{} {
	quit := make(chan struct{})

	if !b.state.GameOver && b.game.IsAITurn() {
		b.aiTurn()
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				b.screen.Clear()
				fmt.Println(r)
				debug.PrintStack()
			}
		}()

		for {
			switch ev := b.screen.PollEvent().(type) {
			case nil:
				return

			case *tcell.EventResize:
				b.screen.Sync()
				b.drawInit()

			case *tcell.EventMouse:
				b.handleMouse(ev)

			case *tcell.EventKey:
				if quitGame := b.handleKey(ev); quitGame {
					close(quit)
					return
				}
			}
		}
	}()

	return quit
}

// handleKey processes a key press. It reports true when the user wants to
// quit the game.
func (b *Board) handleKey(ev *tcell.EventKey) bool {
	keyType := ev.Key()

	// Allow the user to quit the game at any time.
	if keyType == tcell.KeyRune && ev.Rune() == 'q' {
		return true
	}

	if keyType == tcell.KeyRune {
		switch ev.Rune() {
		case 'n':
			b.newGame()
			return false

		case 's':
			on := b.ai.TurnSoundOnOff()
			b.log.Debug().Bool("sound", on).Msg("sound")
			return false
		}
	}

	// Any other key closes the winner dialog.
	if b.modalUp {
		b.closeModal()
		return false
	}

	if b.state.GameOver {
		return false
	}

	switch keyType {
	case tcell.KeyLeft:
		b.movePlayerPiece(dirLeft)

	case tcell.KeyRight:
		b.movePlayerPiece(dirRight)

	case tcell.KeyEnter, tcell.KeyDown:
		b.userTurn()

	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			b.userTurn()
		}
	}

	return false
}

// handleMouse drops a piece in the open column closest to a click.
func (b *Board) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0

	// Holding the button down reports an event for every motion.
	click := pressed && !b.mouseDown
	b.mouseDown = pressed

	if !click {
		return
	}

	if b.modalUp {
		b.closeModal()
		return
	}

	if b.state.GameOver {
		return
	}

	x, _ := ev.Position()

	col, ok := nearestOpenColumn(x, b.state.OpenColumns)
	if !ok {
		b.screen.Beep()
		return
	}

	b.inputCol = col
	b.drawMarker()
	b.userTurn()
}

// nearestOpenColumn returns the open column drawn closest to the screen x
// position. A column must be strictly closer to replace an earlier one, so
// ties go to the lower column.
func nearestOpenColumn(x int, open []int) (int, bool) {
	best := -1
	bestDist := 0

	for _, col := range open {
		dist := x - columnCenter(col)
		if dist < 0 {
			dist = -dist
		}

		if best == -1 || dist < bestDist {
			best = col
			bestDist = dist
		}
	}

	return best, best != -1
}
