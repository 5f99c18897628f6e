package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"

	"textguard/internal/config"
	"textguard/internal/corrector"
	"textguard/internal/dictionary"
	"textguard/internal/lexicon"
	"textguard/internal/rewriter"
)

// app owns the live corrector. Lexicon edits rebuild it under the lock so
// in-flight requests keep a consistent snapshot.
type app struct {
	mu    sync.RWMutex
	cor   *corrector.Corrector
	base  *lexicon.Set
	store *lexicon.CustomStore

	cfg  corrector.Config
	dict *dictionary.Dictionary
	rw   rewriter.Rewriter
}

func (a *app) corrector() *corrector.Corrector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cor
}

// rebuild recomposes the lexicon from the base set plus everything in the
// custom store and swaps in a fresh corrector.
func (a *app) rebuild() error {
	entries, err := a.store.All()
	if err != nil {
		return err
	}
	cor, err := corrector.New(a.cfg, a.base.WithEntries(entries), a.dict, a.rw)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.cor = cor
	a.mu.Unlock()
	return nil
}

func (a *app) addEntry(e lexicon.Entry) error {
	if err := a.store.Put(e); err != nil {
		return err
	}
	return a.rebuild()
}

func (a *app) removeEntry(alias string) error {
	if err := a.store.Delete(alias); err != nil {
		return err
	}
	return a.rebuild()
}

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	dict, err := dictionary.Load(cfg.DictionaryPath)
	if err != nil {
		log.Fatalf("dictionary error: %v", err)
	}
	log.Printf("dictionary loaded: %d words", dict.Len())

	lex, err := buildLexicon(cfg)
	if err != nil {
		log.Fatalf("lexicon error: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	store := lexicon.NewCustomStore(client)
	custom, err := store.All()
	if err != nil {
		log.Printf("warning: custom lexicon unavailable: %v", err)
	}
	log.Printf("lexicon loaded: %d entries (%d custom)", lex.Len()+len(custom), len(custom))

	rw, err := rewriter.NewClient(cfg.Rewriter)
	if err != nil {
		log.Fatalf("rewriter error: %v", err)
	}

	corCfg := corrector.Config{
		LexiconCutoff: cfg.Lexicon.Cutoff,
		BeamWidth:     cfg.Decoding.BeamWidth,
		MaxNewTokens:  cfg.Decoding.MaxNewTokens,
		TopK:          cfg.Decoding.TopK,
	}
	cor, err := corrector.New(corCfg, lex.WithEntries(custom), dict, rw)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	a := &app{cor: cor, base: lex, store: store, cfg: corCfg, dict: dict, rw: rw}

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/correct", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Text string `json:"text"`
			corrector.Params
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Text) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		res, err := a.corrector().Correct(r.Context(), req.Text, req.Params)
		if err != nil {
			w.WriteHeader(http.StatusBadGateway)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		resp := map[string]interface{}{
			"original":   res.Original,
			"candidates": res.Candidates,
			"elapsed_ms": res.ElapsedMS,
		}
		if req.Debug {
			resp["cleaned"] = res.Cleaned
			resp["normalized"] = res.Normalized
			resp["lock_map"] = res.LockMap
			resp["stats"] = res.Stats
		}
		json.NewEncoder(w).Encode(resp)
	})

	mux.HandleFunc("/api/v1/lexicon-entry", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		e, ok := decodeEntry(w, r)
		if !ok {
			return
		}
		if err := a.addEntry(e); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/lexicon-entry/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		alias := strings.TrimPrefix(r.URL.Path, "/api/v1/lexicon-entry/")
		if alias == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "alias is required"})
			return
		}
		if err := a.removeEntry(alias); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, mux))
}

// buildLexicon starts from the embedded seed lists and layers any configured
// CSV on top of its category. File entries win on alias collision; seed
// aliases absent from the file stay available.
func buildLexicon(cfg config.Config) (*lexicon.Set, error) {
	set, err := lexicon.Default()
	if err != nil {
		return nil, err
	}
	paths := []struct {
		path string
		cat  lexicon.Category
	}{
		{cfg.Lexicon.StatesPath, lexicon.State},
		{cfg.Lexicon.CitiesPath, lexicon.City},
		{cfg.Lexicon.NamesPath, lexicon.Person},
	}
	for _, p := range paths {
		if p.path == "" {
			continue
		}
		m, err := lexicon.Load(p.path)
		if err != nil {
			return nil, err
		}
		entries := make([]lexicon.Entry, 0, len(m))
		for alias, canonical := range m {
			entries = append(entries, lexicon.Entry{Alias: alias, Canonical: canonical, Category: p.cat})
		}
		set = set.WithEntries(entries)
	}
	return set, nil
}

func decodeEntry(w http.ResponseWriter, r *http.Request) (lexicon.Entry, bool) {
	var req struct {
		Alias     string `json:"alias"`
		Canonical string `json:"canonical"`
		Category  string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil ||
		strings.TrimSpace(req.Alias) == "" || strings.TrimSpace(req.Canonical) == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
		return lexicon.Entry{}, false
	}
	cat := lexicon.Category(req.Category)
	switch cat {
	case lexicon.State, lexicon.City, lexicon.Person:
	case "":
		cat = lexicon.City
	default:
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "unknown category"})
		return lexicon.Entry{}, false
	}
	return lexicon.Entry{Alias: req.Alias, Canonical: req.Canonical, Category: cat}, true
}
