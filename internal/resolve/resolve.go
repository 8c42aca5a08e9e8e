// internal/resolve/resolve.go
package resolve

import (
	"fmt"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/dna"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/methylase"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
)

// Result is the outcome for one methylase against one subject.
//
// Region is the restriction occurrence the matches were classified against
// (nil when the restriction site is absent from the subject). PlusMatch and
// MinusMatch are methylase occurrences whose interval intersects Region;
// the MethylatedIn* flags additionally require the modified base itself to
// fall inside Region. A region-level match with both flags false means the
// motifs overlap but the modification misses the restriction site, so the
// enzyme still cuts.
type Result struct {
	Methylase methylase.Methylase

	Region     *motif.Occurrence
	PlusMatch  *motif.Occurrence
	MinusMatch *motif.Occurrence

	MethylatedInPlusSite  bool
	MethylatedInMinusSite bool
}

// Blocked reports whether the modification actually lands inside the
// restriction site on either strand.
func (r Result) Blocked() bool {
	return r.MethylatedInPlusSite || r.MethylatedInMinusSite
}

// Resolve matches the restriction site and every catalog methylase against
// subject and classifies their overlaps. The subject must be an upper-case
// ACGT string; the restriction site may use IUPAC ambiguity symbols and is
// searched as given on the plus strand. A subject without the restriction
// site yields a report with every region absent, not an error.
func Resolve(subject, site string, cat *methylase.Catalog) (Report, error) {
	if err := dna.ValidateSubject(subject); err != nil {
		return Report{}, err
	}
	sitePattern, err := motif.Compile(site)
	if err != nil {
		return Report{}, fmt.Errorf("restriction site: %w", err)
	}

	siteOccs := motif.FindAll(subject, sitePattern, motif.Plus)

	results := make([]Result, 0, cat.Len())
	for _, m := range cat.Entries() {
		results = append(results, resolveOne(subject, siteOccs, m))
	}

	return NewReport(subject, sitePattern.Site, siteOccs, cat, results)
}

func resolveOne(subject string, siteOccs []motif.Occurrence, m methylase.Methylase) Result {
	res := Result{Methylase: m}
	if len(siteOccs) == 0 {
		return res
	}

	var plus, minus []motif.Occurrence
	if m.Scope != methylase.MinusOnly {
		plus = motif.FindAll(subject, m.Pattern(), motif.Plus)
	}
	if m.Scope != methylase.PlusOnly {
		minus = motif.FindAll(subject, m.Pattern(), motif.Minus)
	}

	// Restriction occurrences are evaluated in ascending start order; the
	// first one with any overlap is the one reported.
	for i := range siteOccs {
		site := siteOccs[i]
		p, pExact := classify(plus, site, m.IndexPos)
		n, nExact := classify(minus, site, m.IndexPos)
		if p == nil && n == nil {
			continue
		}
		res.Region = &site
		res.PlusMatch = p
		res.MinusMatch = n
		res.MethylatedInPlusSite = pExact
		res.MethylatedInMinusSite = nExact
		return res
	}

	// No overlap anywhere: the first occurrence is the display region.
	res.Region = &siteOccs[0]
	return res
}

// classify picks the occurrence to report against one restriction region:
// the first occurrence whose methylated base lands inside the region, else
// the first whose interval merely intersects it.
func classify(occs []motif.Occurrence, site motif.Occurrence, indexPos int) (*motif.Occurrence, bool) {
	var regionHit *motif.Occurrence
	for i := range occs {
		o := occs[i]
		if o.End <= site.Start || o.Start >= site.End {
			continue
		}
		if pos := methylatedAt(o, indexPos); pos >= site.Start && pos < site.End {
			return &occs[i], true
		}
		if regionHit == nil {
			regionHit = &occs[i]
		}
	}
	return regionHit, false
}

// methylatedAt maps the modified-base offset of a motif occurrence into
// forward subject coordinates. A minus occurrence reads 3'→5' along the
// forward axis, so its offset counts back from the interval end.
func methylatedAt(o motif.Occurrence, indexPos int) int {
	if o.Strand == motif.Minus {
		return o.End - 1 - indexPos
	}
	return o.Start + indexPos
}
