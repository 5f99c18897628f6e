// Package rewriter abstracts the grammar-rewriting model behind a capability
// interface so backends can be swapped without touching the normalizer or
// the guardrail.
package rewriter

import (
	"context"

	"textguard/pkg/options"
)

// promptPrefix is the fixed instruction prepended to the normalized text.
const promptPrefix = "grammar: correct grammar and spelling, keep names and places unchanged: "

// Rewriter generates one or more corrected candidates for a prompt. The call
// is synchronous and may take seconds; failures are surfaced to the caller,
// never retried here. Cancellation is the caller's responsibility via ctx.
type Rewriter interface {
	Generate(ctx context.Context, prompt string, opts ...options.Option) ([]string, error)
}

// BuildPrompt wraps normalized text in the rewrite instruction.
func BuildPrompt(text string) string {
	return promptPrefix + text
}
