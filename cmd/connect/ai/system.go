package ai

import (
	"fmt"

	"github.com/ardanlabs/connect4/cmd/connect/systems/ollama"
)

// Set of systems that can provide an LLM.
const (
	SystemOllama = "ollama"
)

// CreateChatter can create an implementation of the Chatter interface based
// on well known systems.
func CreateChatter(system string, model string) (Chatter, error) {
	switch system {
	case SystemOllama:
		chatter, err := ollama.NewChatter(model)
		if err != nil {
			return nil, err
		}
		return chatter, nil
	}

	return nil, fmt.Errorf("unknown system or model: system %q, model %q", system, model)
}
