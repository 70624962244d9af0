package ai

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/fogleman/gg"
)

// SaveBoardImage writes a PNG image of the board to the directory, named
// after the game. The name of the file is returned.
func (ai *AI) SaveBoardImage(dir string, state game.BoardState) (string, error) {
	data, err := generateImage(state)
	if err != nil {
		return "", fmt.Errorf("generate image: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create image directory: %w", err)
	}

	fileName := filepath.Join(dir, state.GameID+".png")
	if err := os.WriteFile(fileName, data, 0644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	ai.writeLog("image", fileName)

	return fileName, nil
}

// =============================================================================

func generateImage(state game.BoardState) ([]byte, error) {
	const width = 190
	const height = 165
	const gap = float64(25)

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	y := float64(20)
	for row := range game.Rows {
		x := float64(20)

		for col := range game.Cols {
			cell := state.Cells[row][col]

			switch {
			case !cell.HasPiece:
				dc.SetRGB(0, 1, 0)
			case cell.Player == game.Players.Blue:
				dc.SetRGB(0, 0, 1)
			default:
				dc.SetRGB(1, 0, 0)
			}

			dc.DrawCircle(x, y, 10)
			dc.Fill()

			x += gap
		}

		y += gap
	}

	var b bytes.Buffer
	if err := dc.EncodePNG(&b); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
