// Package options configures grammar-rewrite generation.
package options

// DefaultOptions mirror the balanced decoding preset: moderate beam search,
// one candidate, sampling off.
var DefaultOptions = GenerationOptions{
	BeamWidth:      6,
	MaxNewTokens:   128,
	CandidateCount: 1,
	Sample:         false,
	Temperature:    0.9,
	NucleusP:       0.92,
}

// GenerationOptions are the decoding parameters passed to a rewriter
// backend. Backends honor what their API can express and ignore the rest.
type GenerationOptions struct {
	BeamWidth      int     // beam search width for deterministic decoding
	MaxNewTokens   int     // generation length cap
	CandidateCount int     // number of diverse candidates requested
	Sample         bool    // sampling on/off; off means deterministic decoding
	Temperature    float64 // sampling temperature, used only when Sample is set
	NucleusP       float64 // nucleus (top-p) mass, used only when Sample is set
}

type Option interface {
	Apply(*GenerationOptions)
}

type funcOption struct {
	fn func(*GenerationOptions)
}

func (f funcOption) Apply(o *GenerationOptions) { f.fn(o) }

func newFuncOption(fn func(*GenerationOptions)) Option { return funcOption{fn: fn} }

// Resolve applies opts on top of the defaults.
func Resolve(opts ...Option) GenerationOptions {
	o := DefaultOptions
	for _, opt := range opts {
		opt.Apply(&o)
	}
	return o
}

func WithBeamWidth(n int) Option {
	return newFuncOption(func(o *GenerationOptions) { o.BeamWidth = n })
}

func WithMaxNewTokens(n int) Option {
	return newFuncOption(func(o *GenerationOptions) { o.MaxNewTokens = n })
}

func WithCandidateCount(n int) Option {
	return newFuncOption(func(o *GenerationOptions) { o.CandidateCount = n })
}

func WithSampling(temperature, nucleusP float64) Option {
	return newFuncOption(func(o *GenerationOptions) {
		o.Sample = true
		o.Temperature = temperature
		o.NucleusP = nucleusP
	})
}

func WithoutSampling() Option {
	return newFuncOption(func(o *GenerationOptions) { o.Sample = false })
}

// WithDiverseCandidates is the preset for top-k suggestion mode: sampling on
// with a slightly raised temperature for variety.
func WithDiverseCandidates(k int) Option {
	return newFuncOption(func(o *GenerationOptions) {
		o.CandidateCount = k
		o.Sample = true
		o.Temperature = 0.95
		o.NucleusP = 0.9
	})
}
