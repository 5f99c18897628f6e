package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want :8080", c.HTTPAddr)
	}
	if c.Lexicon.Cutoff != 0.94 {
		t.Errorf("Cutoff = %v, want 0.94", c.Lexicon.Cutoff)
	}
	if c.Decoding.BeamWidth != 6 || c.Decoding.TopK != 1 {
		t.Errorf("decoding defaults = %+v", c.Decoding)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `http_addr: ":9090"
dictionary_path: "/srv/dict/en_freq.txt.gz"
lexicon:
  cutoff: 0.9
redis:
  addr: "redis:6379"
  db: 2
decoding:
  topk: 3
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.HTTPAddr != ":9090" {
		t.Errorf("HTTPAddr = %q", c.HTTPAddr)
	}
	if c.DictionaryPath != "/srv/dict/en_freq.txt.gz" {
		t.Errorf("DictionaryPath = %q", c.DictionaryPath)
	}
	if c.Lexicon.Cutoff != 0.9 {
		t.Errorf("Cutoff = %v", c.Lexicon.Cutoff)
	}
	if c.Redis.Addr != "redis:6379" || c.Redis.DB != 2 {
		t.Errorf("redis = %+v", c.Redis)
	}
	if c.Decoding.TopK != 3 {
		t.Errorf("TopK = %d", c.Decoding.TopK)
	}
	// untouched keys keep their defaults
	if c.Decoding.BeamWidth != 6 {
		t.Errorf("BeamWidth = %d, want 6", c.Decoding.BeamWidth)
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("no_such_key: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("REDIS_ADDR", "other:6379")
	t.Setenv("REDIS_DB", "5")
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.HTTPAddr != ":7070" {
		t.Errorf("HTTPAddr = %q", c.HTTPAddr)
	}
	if c.Redis.Addr != "other:6379" || c.Redis.DB != 5 {
		t.Errorf("redis = %+v", c.Redis)
	}
}
