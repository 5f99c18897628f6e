package rewriter

import (
	"context"

	"textguard/pkg/options"
)

// Static is a scripted backend for tests and offline runs: it returns its
// candidates truncated to the requested count and records the prompts it
// received.
type Static struct {
	Candidates []string
	Err        error
	Prompts    []string
}

func (s *Static) Generate(ctx context.Context, prompt string, opts ...options.Option) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.Err != nil {
		return nil, s.Err
	}
	s.Prompts = append(s.Prompts, prompt)
	o := options.Resolve(opts...)
	out := s.Candidates
	if o.CandidateCount > 0 && len(out) > o.CandidateCount {
		out = out[:o.CandidateCount]
	}
	return append([]string(nil), out...), nil
}
