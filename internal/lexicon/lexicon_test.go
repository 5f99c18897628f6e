package lexicon

import (
	"sort"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "empty input",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "single column with header",
			input: "State\nKarnataka\nRajasthan\n",
			want:  map[string]string{"karnataka": "Karnataka", "rajasthan": "Rajasthan"},
		},
		{
			name:  "single column without header",
			input: "Jodhpur\nMysuru\n",
			want:  map[string]string{"jodhpur": "Jodhpur", "mysuru": "Mysuru"},
		},
		{
			name:  "multi column canonical plus aliases",
			input: "Karnataka,karnatka,karanataka\nJodhpur,jodpur\n",
			want: map[string]string{
				"karnataka":  "Karnataka",
				"karnatka":   "Karnataka",
				"karanataka": "Karnataka",
				"jodhpur":    "Jodhpur",
				"jodpur":     "Jodhpur",
			},
		},
		{
			name:  "comment lines skipped",
			input: "# seeded cities\nMumbai\n# trailing comment\n",
			want:  map[string]string{"mumbai": "Mumbai"},
		},
		{
			name:  "bom and quoting tolerated",
			input: "\uFEFF\"Tamil  Nadu\"\n",
			want:  map[string]string{"tamil nadu": "Tamil Nadu"},
		},
		{
			name:  "self alias dropped",
			input: "Delhi,delhi,dehli\n",
			want:  map[string]string{"delhi": "Delhi", "dehli": "Delhi"},
		},
		{
			name:  "blank lines ignored",
			input: "Goa\n\n\nPune\n",
			want:  map[string]string{"goa": "Goa", "pune": "Pune"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Parse = %v, want %v", got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("Parse[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestDefaultSeed(t *testing.T) {
	set, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if set.Len() == 0 {
		t.Fatal("seeded lexicon is empty")
	}
	for _, tc := range []struct {
		alias     string
		canonical string
		cat       Category
	}{
		{"karnataka", "Karnataka", State},
		{"jodhpur", "Jodhpur", City},
		{"raj", "Raj", Person},
		{"jammu and kashmir", "Jammu and Kashmir", State},
	} {
		canon, cat, ok := set.Lookup(tc.alias)
		if !ok || canon != tc.canonical || cat != tc.cat {
			t.Errorf("Lookup(%q) = (%q, %q, %v), want (%q, %q, true)",
				tc.alias, canon, cat, ok, tc.canonical, tc.cat)
		}
	}
}

func TestLookupCategoryPriority(t *testing.T) {
	// delhi is seeded as both a state-level entry and a city; state wins.
	set, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	_, cat, ok := set.Lookup("delhi")
	if !ok || cat != State {
		t.Errorf("Lookup(delhi) category = %q, want %q", cat, State)
	}
}

func TestKeysSortedAndStable(t *testing.T) {
	set := New(
		map[string]string{"zeta": "Zeta"},
		map[string]string{"alpha": "Alpha"},
		map[string]string{"mid": "Mid"},
	)
	keys := set.Keys()
	if !sort.StringsAreSorted(keys) {
		t.Errorf("Keys not sorted: %v", keys)
	}
	if len(keys) != 3 {
		t.Errorf("Keys = %v, want 3 aliases", keys)
	}
}

func TestWithEntries(t *testing.T) {
	base := New(nil, nil, nil)
	ext := base.WithEntries([]Entry{
		{Alias: "Blr", Canonical: "Bengaluru", Category: City},
		{Alias: "", Canonical: "Nothing", Category: City}, // ignored
	})
	if base.Len() != 0 {
		t.Error("WithEntries mutated the receiver")
	}
	canon, cat, ok := ext.Lookup("blr")
	if !ok || canon != "Bengaluru" || cat != City {
		t.Errorf("Lookup(blr) = (%q, %q, %v), want (Bengaluru, city, true)", canon, cat, ok)
	}
}

func TestWithEntriesLayersOverSeed(t *testing.T) {
	base := New(nil, map[string]string{"mumbai": "Mumbai", "pune": "Pune"}, nil)
	ext := base.WithEntries([]Entry{
		{Alias: "mumbai", Canonical: "Greater Mumbai", Category: City},
	})
	if canon, _, _ := ext.Lookup("mumbai"); canon != "Greater Mumbai" {
		t.Errorf("Lookup(mumbai) = %q, want the layered entry to win", canon)
	}
	if _, _, ok := ext.Lookup("pune"); !ok {
		t.Error("untouched seed alias pune dropped by layering")
	}
}
