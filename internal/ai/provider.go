package ai

import "context"

// Provider is a single generative-AI backend. Generate returns the model's
// text for the prompt, or an error; an empty reply is treated as a failure
// by the chain.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}
