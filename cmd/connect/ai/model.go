package ai

import (
	"context"

	"github.com/tmc/langchaingo/llms"
)

// Chatter represents the behavior needed to ask an LLM for a response.
type Chatter interface {
	Chat(ctx context.Context, prompt string, options ...llms.CallOption) (string, error)
}

// pieceCount represents the number of pieces each side has on the board.
type pieceCount struct {
	ai    int
	human int
}
