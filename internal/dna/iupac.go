// internal/dna/iupac.go
package dna

import (
	"errors"
	"fmt"
)

/* -------------------------- IUPAC lookup table -------------------------- */

var iupacMask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) { iupacMask[c] = bits }
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any   (pattern side only)
}

// ErrPatternSymbol and ErrSubjectSymbol are the two alphabet violations.
// Both abort an analysis before any matching work happens.
var (
	ErrPatternSymbol = errors.New("invalid IUPAC pattern symbol")
	ErrSubjectSymbol = errors.New("invalid subject base")
)

/* --------------------------- BaseMatch (FAST) --------------------------- */

// BaseMatch returns true if pattern symbol `p` accepts subject base `g`.
//
// A subject base outside ACGT (including 'N') is a HARD mismatch: ambiguity
// is legal on the pattern side only, so an ambiguous subject can never
// silently satisfy a degenerate pattern.
func BaseMatch(g, p byte) bool {
	if g != 'A' && g != 'C' && g != 'G' && g != 'T' {
		return false
	}
	return iupacMask[p]&iupacMask[g] != 0
}

// SubjectMask returns the 4-bit mask of a subject base, zero for anything
// outside ACGT so unknown bases fail every pattern position.
func SubjectMask(b byte) uint8 {
	switch b {
	case 'A', 'C', 'G', 'T':
		return iupacMask[b]
	}
	return 0
}

// CompilePattern converts an IUPAC recognition string to per-position
// 4-bit masks. Lower-case input is accepted and upper-cased on the fly.
func CompilePattern(site string) ([]uint8, error) {
	if len(site) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrPatternSymbol)
	}
	out := make([]uint8, len(site))
	for i := 0; i < len(site); i++ {
		c := site[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		m := iupacMask[c]
		if m == 0 {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrPatternSymbol, site[i], i)
		}
		out[i] = m
	}
	return out, nil
}

// ValidateSubject rejects any sequence containing bases outside ACGT.
// Subjects are expected upper-cased by the loading layer.
func ValidateSubject(seq string) error {
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return fmt.Errorf("%w: %q at position %d", ErrSubjectSymbol, seq[i], i)
		}
	}
	return nil
}
