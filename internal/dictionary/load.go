package dictionary

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edsrzf/mmap-go"
	"github.com/klauspost/compress/gzip"
)

// Load reads a frequency dictionary from path. Each line holds a word and a
// count separated by whitespace; blank and malformed lines are skipped.
// Plain files are memory-mapped; files ending in .gz are decompressed on the
// fly. An empty dictionary is an error: the pipeline cannot spell-check
// without a vocabulary.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	entries := make(map[string]int64)
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gunzip dictionary %s: %w", path, err)
		}
		defer zr.Close()
		if err := scanEntries(bufio.NewScanner(zr), entries); err != nil {
			return nil, fmt.Errorf("read dictionary %s: %w", path, err)
		}
	} else {
		m, err := mmap.Map(f, mmap.RDONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("mmap dictionary %s: %w", path, err)
		}
		defer m.Unmap()
		if err := scanEntries(bufio.NewScanner(bytes.NewReader(m)), entries); err != nil {
			return nil, fmt.Errorf("read dictionary %s: %w", path, err)
		}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("dictionary %s has no entries", path)
	}
	return NewFromEntries(entries), nil
}

func scanEntries(s *bufio.Scanner, entries map[string]int64) error {
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		word := strings.ToLower(parts[0])
		count, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			if fv, err2 := strconv.ParseFloat(parts[1], 64); err2 == nil {
				count = int64(fv)
			} else {
				continue
			}
		}
		if count > entries[word] {
			entries[word] = count
		}
	}
	return s.Err()
}
