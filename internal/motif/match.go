// internal/motif/match.go
package motif

import "github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/dna"

// Occurrence is one located match. [Start, End) is half-open and always
// expressed in forward subject coordinates, whichever strand matched:
// downstream overlap arithmetic runs in a single coordinate frame.
type Occurrence struct {
	Start  int
	End    int
	Strand Strand
}

// MatchesAt reports whether p matches subject at pos. A window running past
// the end of the subject is false, never a panic.
func MatchesAt(subject string, pos int, p Pattern) bool {
	if pos < 0 || pos+p.Len() > len(subject) {
		return false
	}
	return matches(subject, pos, p.masks)
}

func matches(subject string, pos int, masks []uint8) bool {
	for j, m := range masks {
		if dna.SubjectMask(subject[pos+j])&m == 0 {
			return false
		}
	}
	return true
}

// FindAll locates every occurrence of p in subject on one strand, ascending
// by start. For Minus the reverse-complemented motif is scanned against the
// forward subject, so the reported coordinates need no further mapping.
// An empty result means the motif is absent on that strand.
func FindAll(subject string, p Pattern, strand Strand) []Occurrence {
	masks := p.masks
	if strand == Minus {
		masks = p.rc
	}
	pl := len(masks)
	if pl == 0 || len(subject) < pl {
		return nil
	}

	end := len(subject) - pl
	out := make([]Occurrence, 0, 4)
	for pos := 0; pos <= end; pos++ {
		if matches(subject, pos, masks) {
			out = append(out, Occurrence{Start: pos, End: pos + pl, Strand: strand})
		}
	}
	return out
}
