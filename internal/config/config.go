// Package config loads service configuration from an optional YAML file with
// environment variable overrides on top.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"textguard/internal/rewriter"
)

// Config is the full service configuration.
type Config struct {
	HTTPAddr       string `yaml:"http_addr"`
	DictionaryPath string `yaml:"dictionary_path"`

	Lexicon struct {
		StatesPath string  `yaml:"states_path"` // optional CSV layered onto the embedded seed
		CitiesPath string  `yaml:"cities_path"`
		NamesPath  string  `yaml:"names_path"`
		Cutoff     float64 `yaml:"cutoff"`
	} `yaml:"lexicon"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Rewriter rewriter.ClientConfig `yaml:"rewriter"`

	Decoding struct {
		BeamWidth    int `yaml:"beam_width"`
		MaxNewTokens int `yaml:"max_new_tokens"`
		TopK         int `yaml:"topk"`
	} `yaml:"decoding"`
}

func defaults() Config {
	var c Config
	c.HTTPAddr = ":8080"
	c.DictionaryPath = "en_freq.txt"
	c.Lexicon.Cutoff = 0.94
	c.Redis.Addr = "localhost:6379"
	c.Decoding.BeamWidth = 6
	c.Decoding.MaxNewTokens = 128
	c.Decoding.TopK = 1
	return c
}

// Load reads the YAML file at path (skipped when path is empty) and applies
// environment overrides. Unknown YAML keys are rejected.
func Load(path string) (Config, error) {
	c := defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config %s: %w", path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	c.applyEnv()
	return c, nil
}

func (c *Config) applyEnv() {
	c.HTTPAddr = getenv("HTTP_ADDR", c.HTTPAddr)
	c.DictionaryPath = getenv("DICTIONARY_PATH", c.DictionaryPath)
	c.Redis.Addr = getenv("REDIS_ADDR", c.Redis.Addr)
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	c.Redis.DB = getenvInt("REDIS_DB", c.Redis.DB)
	c.Rewriter.BaseURL = getenv("REWRITER_BASE_URL", c.Rewriter.BaseURL)
	c.Rewriter.Model = getenv("REWRITER_MODEL", c.Rewriter.Model)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
