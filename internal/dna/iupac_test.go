// internal/dna/iupac_test.go
package dna

import (
	"errors"
	"testing"
)

func TestBaseMatch(t *testing.T) {
	tests := []struct {
		name    string
		subject byte
		pattern byte
		want    bool
	}{
		{"literal match", 'A', 'A', true},
		{"literal mismatch", 'A', 'C', false},
		{"N accepts any", 'G', 'N', true},
		{"W accepts A", 'A', 'W', true},
		{"W accepts T", 'T', 'W', true},
		{"W rejects C", 'C', 'W', false},
		{"R accepts G", 'G', 'R', true},
		{"subject N never matches", 'N', 'N', false},
		{"subject gap never matches", '-', 'N', false},
	}
	for _, tc := range tests {
		if got := BaseMatch(tc.subject, tc.pattern); got != tc.want {
			t.Errorf("%s: BaseMatch(%q,%q)=%v, want %v",
				tc.name, tc.subject, tc.pattern, got, tc.want)
		}
	}
}

func TestCompilePattern(t *testing.T) {
	masks, err := CompilePattern("ccwgg")
	if err != nil {
		t.Fatalf("CompilePattern: %v", err)
	}
	if len(masks) != 5 {
		t.Fatalf("got %d masks, want 5", len(masks))
	}
	if masks[2] != (1 | 8) { // W = A/T
		t.Errorf("W mask = %04b, want %04b", masks[2], 1|8)
	}

	if _, err := CompilePattern("GAXC"); !errors.Is(err, ErrPatternSymbol) {
		t.Errorf("bad symbol: got %v, want ErrPatternSymbol", err)
	}
	if _, err := CompilePattern(""); !errors.Is(err, ErrPatternSymbol) {
		t.Errorf("empty pattern: got %v, want ErrPatternSymbol", err)
	}
}

func TestValidateSubject(t *testing.T) {
	if err := ValidateSubject("ACGTACGT"); err != nil {
		t.Errorf("clean subject: %v", err)
	}
	if err := ValidateSubject("ACGNACGT"); !errors.Is(err, ErrSubjectSymbol) {
		t.Errorf("ambiguous subject: got %v, want ErrSubjectSymbol", err)
	}
}

func TestRevComp(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ACGT", "ACGT"}, // palindrome
		{"GATC", "GATC"},
		{"TGANNNNNNNNTGCT", "AGCANNNNNNNNTCA"},
		{"CCWGG", "CCWGG"}, // W is self-complementary
		{"AACNNNNNNGTGC", "GCACNNNNNNGTT"},
	}
	for _, tc := range tests {
		if got := RevComp(tc.in); got != tc.want {
			t.Errorf("RevComp(%s)=%s, want %s", tc.in, got, tc.want)
		}
	}
	if got := Reverse("ACGT"); got != "TGCA" {
		t.Errorf("Reverse(ACGT)=%s, want TGCA", got)
	}
	if got := Complement("ACGT"); got != "TGCA" {
		t.Errorf("Complement(ACGT)=%s, want TGCA", got)
	}
	if got := Complement("RYKM"); got != "YRMK" {
		t.Errorf("Complement(RYKM)=%s, want YRMK", got)
	}
}
