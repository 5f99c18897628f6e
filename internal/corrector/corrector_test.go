package corrector

import (
	"context"
	"errors"
	"strings"
	"testing"

	"textguard/internal/dictionary"
	"textguard/internal/lexicon"
	"textguard/internal/rewriter"
)

func testDict() *dictionary.Dictionary {
	return dictionary.NewFromEntries(map[string]int64{
		"i": 9000000, "am": 4000000, "live": 800000, "in": 7000000,
		"from": 3000000, "now": 900000, "staying": 40000, "studying": 50000,
		"college": 90000, "my": 2500000, "name": 300000, "is": 6000000,
		"friend": 150000, "you": 5000000, "please": 600000,
	})
}

func testLexicon(t *testing.T) *lexicon.Set {
	t.Helper()
	lex, err := lexicon.Default()
	if err != nil {
		t.Fatalf("lexicon.Default: %v", err)
	}
	return lex
}

func TestCorrectEndToEnd(t *testing.T) {
	rw := &rewriter.Static{Candidates: []string{"I live in jodhpur now."}}
	c, err := New(DefaultConfig, testLexicon(t), testDict(), rw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := c.Correct(context.Background(), "i live in jodpur", Params{})
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if res.Normalized != "i live in Jodhpur" {
		t.Errorf("normalized = %q, want %q", res.Normalized, "i live in Jodhpur")
	}
	if len(res.Candidates) != 1 || res.Candidates[0] != "I live in Jodhpur now." {
		t.Errorf("candidates = %v, want [I live in Jodhpur now.]", res.Candidates)
	}
	if res.Stats.LexiconHits != 1 {
		t.Errorf("lexicon hits = %d, want 1", res.Stats.LexiconHits)
	}
	if len(res.LockMap) != 1 || res.LockMap[3] != "Jodhpur" {
		t.Errorf("lock map = %v, want {3: Jodhpur}", res.LockMap)
	}
	if len(rw.Prompts) != 1 || !strings.HasSuffix(rw.Prompts[0], "i live in Jodhpur") {
		t.Errorf("prompt = %v", rw.Prompts)
	}
	if !strings.HasPrefix(rw.Prompts[0], "grammar: correct grammar and spelling") {
		t.Errorf("prompt missing instruction prefix: %q", rw.Prompts[0])
	}
}

func TestCorrectTopKDeduplicates(t *testing.T) {
	rw := &rewriter.Static{Candidates: []string{
		"I live in jodhpur.",
		"I live in jodhpur.",
		"I am living in jodhpur.",
	}}
	c, err := New(DefaultConfig, testLexicon(t), testDict(), rw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res, err := c.Correct(context.Background(), "i live in jodhpur", Params{TopK: 3})
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	// two distinct rewrites survive; no padding to the requested three
	if len(res.Candidates) != 2 {
		t.Fatalf("candidates = %v, want 2 distinct", res.Candidates)
	}
	for _, cand := range res.Candidates {
		if !strings.Contains(cand, "Jodhpur") {
			t.Errorf("candidate %q lost the locked proper noun", cand)
		}
	}
}

func TestCorrectAcademicRule(t *testing.T) {
	rw := &rewriter.Static{Candidates: []string{"I am studying in college."}}
	c, err := New(DefaultConfig, testLexicon(t), testDict(), rw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	res, err := c.Correct(context.Background(), "i am staying in college", Params{})
	if err != nil {
		t.Fatalf("Correct: %v", err)
	}
	if res.Normalized != "i am studying in college" {
		t.Errorf("normalized = %q, want academic rewrite applied", res.Normalized)
	}
}

func TestCorrectRewriterFailureSurfaces(t *testing.T) {
	rw := &rewriter.Static{Err: errors.New("model unavailable")}
	c, err := New(DefaultConfig, testLexicon(t), testDict(), rw)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Correct(context.Background(), "i live in jodhpur", Params{}); err == nil {
		t.Error("Correct must surface rewriter failure")
	}
}

func TestNewValidation(t *testing.T) {
	rw := &rewriter.Static{}
	if _, err := New(DefaultConfig, nil, nil, rw); err == nil {
		t.Error("New without dictionary must fail")
	}
	if _, err := New(DefaultConfig, nil, testDict(), nil); err == nil {
		t.Error("New without rewriter must fail")
	}
}
