// internal/annotate/annotate.go
package annotate

import (
	"fmt"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/dna"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/methylase"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
)

// Feature is one annotation over the subject: a whole methylase site, or a
// single methylated base. Strand refers to the strand carrying the
// modification, which for site features is the strand the motif matched on.
type Feature struct {
	Start  int
	End    int
	Strand motif.Strand
	Type   string // "site" or "base"
	Label  string
	Enzyme string
}

const (
	TypeSite = "site"
	TypeBase = "base"
)

// Run annotates every methylase match in subject with a site feature plus
// one feature per methylated base. Non-palindromic motifs are additionally
// searched as their reverse complement, with the base offsets mirrored and
// the strands swapped. Features come out grouped per enzyme in catalog
// order, sites before their bases, ascending by position.
func Run(subject string, cat *methylase.Catalog) ([]Feature, error) {
	if err := dna.ValidateSubject(subject); err != nil {
		return nil, err
	}

	var out []Feature
	for _, m := range cat.Entries() {
		for _, o := range motif.FindAll(subject, m.Pattern(), motif.Plus) {
			out = append(out, siteFeature(m, o, false))
			out = append(out, baseFeatures(m, o, false)...)
		}
		if m.Site == dna.RevComp(m.Site) {
			continue // palindromic: the forward scan already covers both strands
		}
		for _, o := range motif.FindAll(subject, m.Pattern(), motif.Minus) {
			out = append(out, siteFeature(m, o, true))
			out = append(out, baseFeatures(m, o, true)...)
		}
	}
	return out, nil
}

func siteFeature(m methylase.Methylase, o motif.Occurrence, rc bool) Feature {
	label := fmt.Sprintf("@epijinn(%s)", m.Name)
	if rc {
		label = fmt.Sprintf("@epijinn_rc(%s)", m.Name)
	}
	return Feature{
		Start:  o.Start,
		End:    o.End,
		Strand: o.Strand,
		Type:   TypeSite,
		Label:  label,
		Enzyme: m.Name,
	}
}

// baseFeatures marks the methylated base(s) of one occurrence. IndexPos is
// the base modified on the motif's own strand; IndexNeg (when set) the base
// whose complement is modified on the opposite strand. For a reverse-
// complement occurrence the offsets count back from the interval end and
// the strands swap.
func baseFeatures(m methylase.Methylase, o motif.Occurrence, rc bool) []Feature {
	var out []Feature

	add := func(pos int, base byte, strand motif.Strand) {
		out = append(out, Feature{
			Start:  pos,
			End:    pos + 1,
			Strand: strand,
			Type:   TypeBase,
			Label:  fmt.Sprintf("@epijinn(%c, strand=%s)", base, strandLabel(strand)),
			Enzyme: m.Name,
		})
	}

	if !rc {
		add(o.Start+m.IndexPos, m.Site[m.IndexPos], motif.Plus)
		if m.IndexNeg >= 0 {
			add(o.Start+m.IndexNeg, dna.ComplementBase(m.Site[m.IndexNeg]), motif.Minus)
		}
		return out
	}

	add(o.End-1-m.IndexPos, m.Site[m.IndexPos], motif.Minus)
	if m.IndexNeg >= 0 {
		add(o.End-1-m.IndexNeg, dna.ComplementBase(m.Site[m.IndexNeg]), motif.Plus)
	}
	return out
}

func strandLabel(s motif.Strand) string {
	if s == motif.Minus {
		return "-1"
	}
	return "1"
}
