// Package ai provides the AI player's personality: commentary about the game
// from an LLM, speech, and images of the board.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardanlabs/connect4/cmd/connect/game"
	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
)

// AI provides support for commenting on connect 4 games.
type AI struct {
	log   *zerolog.Logger
	chat  Chatter
	sound bool
}

// New construct the AI api for use. The chatter can be nil, in which case
// no commentary is produced.
func New(log *zerolog.Logger, chat Chatter, sound bool) *AI {
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	return &AI{
		log:   log,
		chat:  chat,
		sound: sound,
	}
}

// CreateAIResponse produces a remark about the last move based on the
// feedback the game provided. An empty response is returned when there is
// nothing to say or no LLM to say it.
func (ai *AI) CreateAIResponse(ctx context.Context, state game.BoardState) (string, error) {
	if ai.chat == nil || state.Feedback == "" {
		return "", nil
	}

	prompt := createPrompt(state)

	ai.writeLog("prompt", prompt)

	response, err := ai.chat.Chat(ctx, prompt, llms.WithMaxTokens(5000), llms.WithTemperature(0.8))
	if err != nil {
		return "", fmt.Errorf("call: %w", err)
	}

	ai.writeLog("response", response)

	// I had a situation where the response was marked with these characters.
	response = strings.TrimSpace(response)
	response = strings.Trim(response, "`\"")

	return response, nil
}

// =============================================================================

func createPrompt(state game.BoardState) string {
	var items string

	switch state.Feedback {
	case game.FeedbackBlockedWin:
		items = itemsBlockedWin
	case game.FeedbackWillWin:
		items = itemsWillWin
	case game.FeedbackWonGame:
		items = itemsWonGame
	case game.FeedbackLostGame:
		items = itemsLostGame
	case game.FeedbackTieGame:
		items = itemsTieGame
	default:
		items = itemsNormalGamePlay
	}

	count := countPieces(state)

	return fmt.Sprintf(promptHeader+items+promptContext,
		state.AI,
		state.Human,
		count.ai,
		count.human,
		state.LastMove.Player,
		state.LastMove.Column+1)
}

func countPieces(state game.BoardState) pieceCount {
	var count pieceCount

	for row := range state.Cells {
		for _, cell := range state.Cells[row] {
			switch {
			case !cell.HasPiece:
			case cell.Player == state.AI:
				count.ai++
			default:
				count.human++
			}
		}
	}

	return count
}
