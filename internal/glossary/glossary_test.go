package glossary

import (
	"strings"
	"testing"
)

func TestAnnotate(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     string
	}{
		{
			name:     "indemnify",
			sentence: "A shall indemnify B.",
			want:     "A shall indemnify (compensation if someone sues you) B.",
		},
		{
			name:     "case insensitive",
			sentence: "FORCE MAJEURE excuses performance.",
			want:     "FORCE MAJEURE (events beyond anyone's control) excuses performance.",
		},
		{
			name:     "inflection matched in full",
			sentence: "Upon termination of this agreement.",
			want:     "Upon termination (ending the agreement) of this agreement.",
		},
		{
			name:     "plural inflection",
			sentence: "All waivers must be written.",
			want:     "All waivers (giving up a right) must be written.",
		},
		{
			name:     "only first occurrence annotated",
			sentence: "Liability here and liability there.",
			want:     "Liability (legal responsibility) here and liability there.",
		},
		{
			name:     "multiple rules in one sentence",
			sentence: "The waiver covers liability.",
			want:     "The waiver (giving up a right) covers liability (legal responsibility).",
		},
		{
			name:     "no match leaves sentence unchanged",
			sentence: "The weather is nice.",
			want:     "The weather is nice.",
		},
		{
			name:     "empty sentence",
			sentence: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Annotate(tt.sentence); got != tt.want {
				t.Errorf("Annotate(%q) = %q, want %q", tt.sentence, got, tt.want)
			}
		})
	}
}

func TestRules_OrderAndCoverage(t *testing.T) {
	wantOrder := []string{
		"force majeure", "indemnify", "waiver", "jurisdiction",
		"notwithstanding", "liability", "confidentiality", "termination",
	}
	got := Rules()
	if len(got) != len(wantOrder) {
		t.Fatalf("got %d rules, want %d", len(got), len(wantOrder))
	}
	for i, term := range wantOrder {
		if got[i].Term != term {
			t.Errorf("rule %d: got %q, want %q", i, got[i].Term, term)
		}
		if !strings.Contains(Annotate(term), got[i].Explanation) {
			t.Errorf("rule %q does not match its own term", term)
		}
	}
}
