package board

import "github.com/ardanlabs/connect4/cmd/connect/game"

// Set of glyphs used to draw the pieces.
const (
	glyphBlue  = "🔵"
	glyphRed   = "🔴"
	glyphEmpty = " "
)

// disc returns the glyph used to draw a piece for the specified player.
func disc(p game.Player) string {
	switch {
	case p.Equal(game.Players.Blue):
		return glyphBlue
	case p.Equal(game.Players.Red):
		return glyphRed
	}

	return glyphEmpty
}

// winnerText returns the text to display for the winner of a game. The zero
// player means the game was a tie.
func winnerText(p game.Player) string {
	if p.IsZero() {
		return "Tie Game"
	}

	return p.String() + " (" + disc(p) + ")"
}
