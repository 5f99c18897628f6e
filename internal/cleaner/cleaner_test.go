package cleaner

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   \t ",
			want:  "",
		},
		{
			name:  "collapse spaces",
			input: "hello    world",
			want:  "hello world",
		},
		{
			name:  "curly quotes to ascii",
			input: "“hi” and ‘bye’",
			want:  `"hi" and 'bye'`,
		},
		{
			name:  "em dash spaced as separator",
			input: "one—two",
			want:  "one-two",
		},
		{
			name:  "non-breaking space",
			input: "a b",
			want:  "a b",
		},
		{
			name:  "repeated punctuation collapses",
			input: "really??? yes!!! ok,,",
			want:  "really? yes! ok,",
		},
		{
			name:  "space before comma removed",
			input: "hi , there",
			want:  "hi, there",
		},
		{
			name:  "space inserted after comma",
			input: "hi,there",
			want:  "hi, there",
		},
		{
			name:  "hyphenated word survives",
			input: "a well-known place",
			want:  "a well-known place",
		},
		{
			name:  "standalone dash spaced",
			input: "mumbai - the big city",
			want:  "mumbai-the big city",
		},
		{
			name:  "words unchanged",
			input: "Jodhpur is GREAT",
			want:  "Jodhpur is GREAT",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
