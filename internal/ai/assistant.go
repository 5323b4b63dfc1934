package ai

import "context"

// Generator is the external text-completion collaborator. Implementations
// return the generated text or an error on transport, auth or quota failure.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}
