package corrector

// Config are the per-process correction defaults. Request parameters may
// override the decoding fields per call.
type Config struct {
	LexiconCutoff float64 // fuzzy proper-noun cutoff; zero means the matcher default
	BeamWidth     int     // rewriter beam width
	MaxNewTokens  int     // rewriter generation cap
	TopK          int     // candidates requested per correction
}

// DefaultConfig is the balanced preset.
var DefaultConfig = Config{
	LexiconCutoff: 0.94,
	BeamWidth:     6,
	MaxNewTokens:  128,
	TopK:          1,
}

// Params are per-request decoding overrides; zero values fall back to the
// corrector's Config.
type Params struct {
	TopK         int  `json:"topk"`
	BeamWidth    int  `json:"beams"`
	MaxNewTokens int  `json:"max_new_tokens"`
	Debug        bool `json:"debug"`
}
