// Package corrector wires the correction pipeline end to end: clean →
// normalize and lock → academic rules → grammar rewrite → guardrail → final
// touch-ups.
//
// One request flows through synchronously. The corrector holds only
// read-only state (lexicon, dictionary, config), so a single instance is
// safe for concurrent requests. The rewriter call is the only slow step; its
// failure fails the request, surfaced to the caller without retries.
package corrector

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"textguard/internal/cleaner"
	"textguard/internal/dictionary"
	"textguard/internal/guard"
	"textguard/internal/lexicon"
	"textguard/internal/normalizer"
	"textguard/internal/rewriter"
	"textguard/internal/rules"
	"textguard/pkg/options"
)

// Result is everything one correction produced, including the diagnostic
// surface (lock map and hit counters) for debug display.
type Result struct {
	Original   string             `json:"original"`
	Cleaned    string             `json:"cleaned"`
	Normalized string             `json:"normalized"`
	Candidates []string           `json:"candidates"`
	LockMap    normalizer.LockMap `json:"lock_map,omitempty"`
	Stats      normalizer.Stats   `json:"stats"`
	ElapsedMS  int64              `json:"elapsed_ms"`
}

// Corrector runs the full pipeline.
type Corrector struct {
	cfg  Config
	norm *normalizer.Normalizer
	rw   rewriter.Rewriter
}

// New builds a Corrector. The dictionary and rewriter are required; the
// lexicon may be empty, degrading to dictionary-only correction with no
// locks.
func New(cfg Config, lex *lexicon.Set, dict *dictionary.Dictionary, rw rewriter.Rewriter) (*Corrector, error) {
	if dict == nil || dict.Len() == 0 {
		return nil, fmt.Errorf("corrector: dictionary is required")
	}
	if rw == nil {
		return nil, fmt.Errorf("corrector: rewriter is required")
	}
	if cfg.BeamWidth <= 0 {
		cfg.BeamWidth = DefaultConfig.BeamWidth
	}
	if cfg.MaxNewTokens <= 0 {
		cfg.MaxNewTokens = DefaultConfig.MaxNewTokens
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultConfig.TopK
	}
	return &Corrector{
		cfg: cfg,
		norm: &normalizer.Normalizer{
			Lexicon: lex,
			Dict:    dict,
			Cutoff:  cfg.LexiconCutoff,
		},
		rw: rw,
	}, nil
}

var commaNoSpaceRe = regexp.MustCompile(`,([A-Za-z])`)

// Correct runs text through the pipeline and returns the guarded candidates
// in model rank order, deduplicated by exact string equality.
func (c *Corrector) Correct(ctx context.Context, text string, p Params) (Result, error) {
	start := time.Now()

	topk := p.TopK
	if topk <= 0 {
		topk = c.cfg.TopK
	}
	beams := p.BeamWidth
	if beams <= 0 {
		beams = c.cfg.BeamWidth
	}
	maxTokens := p.MaxNewTokens
	if maxTokens <= 0 {
		maxTokens = c.cfg.MaxNewTokens
	}

	cleaned := cleaner.Clean(text)
	normText, locks, stats := c.norm.Normalize(cleaned)
	normText = rules.PreferStudying(normText)

	opts := []options.Option{
		options.WithBeamWidth(beams),
		options.WithMaxNewTokens(maxTokens),
	}
	if topk > 1 {
		opts = append(opts, options.WithDiverseCandidates(topk))
	} else {
		opts = append(opts, options.WithoutSampling(), options.WithCandidateCount(1))
	}

	raw, err := c.rw.Generate(ctx, rewriter.BuildPrompt(normText), opts...)
	if err != nil {
		return Result{}, fmt.Errorf("rewrite: %w", err)
	}

	candidates := make([]string, 0, topk)
	seen := make(map[string]bool, len(raw))
	for _, cand := range raw {
		if seen[cand] {
			continue
		}
		seen[cand] = true
		guarded := guard.Guard(normText, cand, locks)
		candidates = append(candidates, finalTouchups(guarded))
		if len(candidates) == topk {
			break
		}
	}

	return Result{
		Original:   text,
		Cleaned:    cleaned,
		Normalized: normText,
		Candidates: candidates,
		LockMap:    locks,
		Stats:      stats,
		ElapsedMS:  time.Since(start).Milliseconds(),
	}, nil
}

// finalTouchups fixes comma spacing that survives joining guarded tokens.
func finalTouchups(t string) string {
	return commaNoSpaceRe.ReplaceAllString(t, ", ${1}")
}
