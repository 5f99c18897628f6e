package rules

import "testing"

func TestPreferStudying(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "academic context rewrites staying in",
			input: "i am staying in college",
			want:  "i am studying in college",
		},
		{
			name:  "academic context rewrites stay in",
			input: "i stay in university",
			want:  "i studying in university",
		},
		{
			name:  "hostel clue suppresses rewrite",
			input: "i am staying in my hostel near college",
			want:  "i am staying in my hostel near college",
		},
		{
			name:  "no academic keyword leaves text alone",
			input: "i am staying in jodhpur",
			want:  "i am staying in jodhpur",
		},
		{
			name:  "room counts as residence clue",
			input: "i am staying in a room near campus",
			want:  "i am staying in a room near campus",
		},
		{
			name:  "at variant",
			input: "i am staying at college",
			want:  "i am studying at college",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreferStudying(tt.input); got != tt.want {
				t.Errorf("PreferStudying(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
