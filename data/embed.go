// Package data embeds the seeded proper-noun lexicon files.
package data

import _ "embed"

//go:embed states.csv
var States []byte

//go:embed cities.csv
var Cities []byte

//go:embed names.csv
var Names []byte
