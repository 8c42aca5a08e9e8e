// internal/methylase/methylase.go
package methylase

import (
	"errors"
	"fmt"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
)

// Scope restricts which strand(s) a methylase's modification is defined on.
type Scope int

const (
	Both Scope = iota
	PlusOnly
	MinusOnly
)

// Methylase is one modification enzyme entry.
//
// IndexPos is the 0-based offset of the modified base counted from the
// motif's own 5' end. IndexNeg is the offset of the base whose complement
// carries the modification on the opposite strand; -1 when the motif is too
// short to define one (single-base entries such as MetC).
type Methylase struct {
	Name     string
	Site     string
	IndexPos int
	IndexNeg int
	Scope    Scope

	pattern motif.Pattern
}

var ErrOffset = errors.New("methylated-base offset out of range")

// New validates and compiles a methylase entry. Pattern and offset errors
// surface here, before any matching begins.
func New(name, site string, indexPos, indexNeg int, scope Scope) (Methylase, error) {
	p, err := motif.Compile(site)
	if err != nil {
		return Methylase{}, fmt.Errorf("methylase %s: %w", name, err)
	}
	if indexPos < 0 || indexPos >= p.Len() {
		return Methylase{}, fmt.Errorf("methylase %s: %w: index_pos %d, site length %d",
			name, ErrOffset, indexPos, p.Len())
	}
	if indexNeg >= p.Len() {
		return Methylase{}, fmt.Errorf("methylase %s: %w: index_neg %d, site length %d",
			name, ErrOffset, indexNeg, p.Len())
	}
	if indexNeg < 0 {
		indexNeg = -1
	}
	return Methylase{
		Name:     name,
		Site:     p.Site,
		IndexPos: indexPos,
		IndexNeg: indexNeg,
		Scope:    scope,
		pattern:  p,
	}, nil
}

// Pattern returns the compiled recognition motif.
func (m Methylase) Pattern() motif.Pattern { return m.pattern }

// MethylatedBase is the modified nucleotide symbol as written in the motif.
func (m Methylase) MethylatedBase() byte { return m.Site[m.IndexPos] }
