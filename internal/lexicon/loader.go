package lexicon

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// likely single-cell header names for seeded category files
var headerCells = map[string]bool{
	"state": true, "city": true, "name": true,
	"canonical": true, "alias": true, "aliases": true,
}

// Load reads a lexicon CSV file into a lowercase alias→canonical map.
// A missing file yields an empty map, not an error: the pipeline degrades to
// dictionary-only correction when no lexicon data is available.
func Load(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("open lexicon %s: %w", path, err)
	}
	defer f.Close()
	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	return m, nil
}

// Parse reads CSV rows into a lowercase alias→canonical map.
//
// Two layouts are supported: a single column of canonical forms (with or
// without a header row), and multi-column rows where the first cell is the
// canonical form and the remaining cells are aliases. Lines whose first
// non-empty cell starts with '#' are comments. A UTF-8 BOM is tolerated.
func Parse(r io.Reader) (map[string]string, error) {
	rd := csv.NewReader(r)
	rd.FieldsPerRecord = -1
	rd.LazyQuotes = true

	var rows [][]string
	first := true
	for {
		record, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if first && len(record) > 0 {
			record[0] = strings.TrimPrefix(record[0], "\uFEFF")
			first = false
		}
		cells := make([]string, 0, len(record))
		for _, c := range record {
			if c = cleanCell(c); c != "" {
				cells = append(cells, c)
			}
		}
		if len(cells) == 0 || strings.HasPrefix(cells[0], "#") {
			continue
		}
		rows = append(rows, cells)
	}

	mapping := make(map[string]string)
	if len(rows) == 0 {
		return mapping, nil
	}
	if headerCells[strings.ToLower(rows[0][0])] {
		rows = rows[1:]
	}
	for _, row := range rows {
		canon := row[0]
		mapping[strings.ToLower(canon)] = canon
		for _, alias := range row[1:] {
			if strings.EqualFold(alias, canon) {
				continue
			}
			mapping[strings.ToLower(alias)] = canon
		}
	}
	return mapping, nil
}

// cleanCell trims whitespace and surrounding quotes and collapses runs of
// inner spaces, so "Jammu  and   Kashmir" loads as "Jammu and Kashmir".
func cleanCell(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	return strings.Join(strings.Fields(s), " ")
}
