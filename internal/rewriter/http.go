package rewriter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"textguard/pkg/options"
)

// ClientConfig configures the OpenAI-compatible HTTP backend.
type ClientConfig struct {
	BaseURL        string `yaml:"base_url"`
	Model          string `yaml:"model"`
	APIKeyEnv      string `yaml:"api_key_env"` // environment variable holding the key
	APIKey         string `yaml:"api_key"`     // plaintext key; prefer APIKeyEnv
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (c *ClientConfig) defaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://api.openai.com/v1"
	}
	if c.Model == "" {
		c.Model = "gpt-4.1-mini"
	}
	if c.APIKeyEnv == "" {
		c.APIKeyEnv = "OPENAI_API_KEY"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 60
	}
}

// Client talks to a chat-completions endpoint. Beam width has no equivalent
// in that API and is ignored; candidate count maps to n, sampling to
// temperature and top_p.
type Client struct {
	hc     *http.Client
	url    string
	apiKey string
	model  string
}

// NewClient validates the config and builds a Client. A missing API key is a
// hard configuration failure.
func NewClient(cfg ClientConfig) (*Client, error) {
	cfg.defaults()
	key := cfg.APIKey
	if key == "" {
		key = os.Getenv(cfg.APIKeyEnv)
	}
	if key == "" {
		return nil, fmt.Errorf("rewriter: missing api key (set %s)", cfg.APIKeyEnv)
	}
	return &Client{
		hc:     &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		url:    strings.TrimRight(cfg.BaseURL, "/") + "/chat/completions",
		apiKey: key,
		model:  cfg.Model,
	}, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	N           int           `json:"n,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
	TopP        *float64      `json:"top_p,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate requests CandidateCount completions for prompt and returns their
// contents in API order. Empty choices are dropped; fewer candidates than
// requested is not an error.
func (c *Client) Generate(ctx context.Context, prompt string, opts ...options.Option) ([]string, error) {
	o := options.Resolve(opts...)

	reqBody := chatRequest{
		Model:     c.model,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
		N:         o.CandidateCount,
		MaxTokens: o.MaxNewTokens,
	}
	if o.Sample {
		reqBody.Temperature = &o.Temperature
		reqBody.TopP = &o.NucleusP
	} else {
		zero := 0.0
		reqBody.Temperature = &zero
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("rewriter: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("rewriter: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rewriter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("rewriter: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("rewriter: decode response: %w", err)
	}
	out := make([]string, 0, len(parsed.Choices))
	for _, ch := range parsed.Choices {
		if text := strings.TrimSpace(ch.Message.Content); text != "" {
			out = append(out, text)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("rewriter: response had no usable choices")
	}
	return out, nil
}
