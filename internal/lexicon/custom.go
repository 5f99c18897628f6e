package lexicon

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// CustomStore persists user-added lexicon entries in a Redis hash so they
// survive restarts. Field is the lowercase alias, value is
// "canonical\tcategory".
type CustomStore struct {
	client *redis.Client
	key    string
}

// NewCustomStore creates a CustomStore with the provided Redis client.
func NewCustomStore(client *redis.Client) *CustomStore {
	return &CustomStore{client: client, key: "custom_lexicon"}
}

// Put inserts or replaces an entry.
func (cs *CustomStore) Put(e Entry) error {
	if e.Alias == "" || e.Canonical == "" {
		return fmt.Errorf("custom lexicon: alias and canonical are required")
	}
	val := e.Canonical + "\t" + string(e.Category)
	return cs.client.HSet(context.Background(), cs.key, strings.ToLower(e.Alias), val).Err()
}

// Delete removes an entry by alias.
func (cs *CustomStore) Delete(alias string) error {
	return cs.client.HDel(context.Background(), cs.key, strings.ToLower(alias)).Err()
}

// All returns every stored entry.
func (cs *CustomStore) All() ([]Entry, error) {
	fields, err := cs.client.HGetAll(context.Background(), cs.key).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(fields))
	for alias, val := range fields {
		canonical, cat, _ := strings.Cut(val, "\t")
		if canonical == "" {
			continue
		}
		entries = append(entries, Entry{
			Alias:     alias,
			Canonical: canonical,
			Category:  Category(cat),
		})
	}
	return entries, nil
}
