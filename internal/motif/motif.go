// internal/motif/motif.go
package motif

import (
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/dna"
)

// Strand is the reading direction of a match.
type Strand string

const (
	Plus  Strand = "+"
	Minus Strand = "-"
)

// Pattern is a compiled degenerate motif. Compile it once, then match it
// against any number of subjects.
type Pattern struct {
	Site  string  // original IUPAC text, upper-cased
	masks []uint8 // per-position 4-bit masks
	rc    []uint8 // masks of the reverse complement
}

// Compile builds a Pattern from an IUPAC string.
func Compile(site string) (Pattern, error) {
	up := upper(site)
	masks, err := dna.CompilePattern(up)
	if err != nil {
		return Pattern{}, err
	}
	rc, err := dna.CompilePattern(dna.RevComp(up))
	if err != nil {
		return Pattern{}, err
	}
	return Pattern{Site: up, masks: masks, rc: rc}, nil
}

// Len is the motif length in bases.
func (p Pattern) Len() int { return len(p.masks) }

func upper(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
