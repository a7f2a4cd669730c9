// Package narrative renders analysis prompts and invokes the AI text
// collaborator. The model's internals are out of scope: it receives a fully
// formed prompt and returns a single text block.
package narrative

import "context"

// Narrator generates a natural-language analysis from a rendered prompt.
type Narrator interface {
	Generate(ctx context.Context, system, prompt string, maxTokens int) (string, error)
}
