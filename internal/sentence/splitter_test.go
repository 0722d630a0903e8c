package sentence

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "two simple sentences",
			text: "This is first. This is second.",
			want: []string{"This is first.", "This is second."},
		},
		{
			name: "exclamation and question marks",
			text: "Stop! Why did you stop? Because.",
			want: []string{"Stop!", "Why did you stop?", "Because."},
		},
		{
			name: "lowercase after period is not a boundary",
			text: "See clause 4.2 of the agreement. it continues here",
			want: []string{"See clause 4.2 of the agreement. it continues here"},
		},
		{
			name: "digit after period is a boundary",
			text: "Payment is due. 30 days are allowed.",
			want: []string{"Payment is due.", "30 days are allowed."},
		},
		{
			name: "quote after period is a boundary",
			text: `He agreed. "Fine," he said.`,
			want: []string{"He agreed.", `"Fine," he said.`},
		},
		{
			name: "parenthesis after period is a boundary",
			text: "Notice is required. (See section 9.)",
			want: []string{"Notice is required.", "(See section 9.)"},
		},
		{
			name: "newlines treated as spaces",
			text: "First line.\nSecond line.\r\nThird line.",
			want: []string{"First line.", "Second line.", "Third line."},
		},
		{
			name: "no terminal punctuation yields whole text",
			text: "  just a fragment without an ending  ",
			want: []string{"just a fragment without an ending"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "  \n\t ",
			want: nil,
		},
		{
			name: "multiple spaces between sentences",
			text: "One.   Two.",
			want: []string{"One.", "Two."},
		},
		{
			name: "trailing punctuation without following text",
			text: "The end.",
			want: []string{"The end."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// Splitting never loses content: joining the sentences and stripping
// whitespace reconstructs the original text with newlines as spaces.
func TestSplit_PreservesContent(t *testing.T) {
	text := "A shall indemnify B.\nThis is short. Payment is due in 30 days! Is that all?"
	got := Split(text)
	if len(got) == 0 {
		t.Fatal("expected sentences for non-empty text")
	}
	squash := func(s string) string { return strings.Join(strings.Fields(s), " ") }
	if squash(strings.Join(got, " ")) != squash(text) {
		t.Errorf("content not preserved: %q", got)
	}
}
