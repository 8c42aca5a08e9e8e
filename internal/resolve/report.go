// internal/resolve/report.go
package resolve

import (
	"errors"
	"fmt"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/methylase"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
)

// Report is the ordered analysis outcome: one Result per catalog entry, in
// catalog order. It is immutable once built and carries enough context
// (subject, site, restriction occurrences) for rendering.
type Report struct {
	Subject string
	Site    string

	SiteOccurrences []motif.Occurrence
	Results         []Result
}

// ErrMismatch signals a resolver defect: the result list does not
// correspond one-to-one with the catalog. It is a programming fault, not a
// runtime condition a caller should handle.
var ErrMismatch = errors.New("report does not match catalog")

// NewReport assembles a Report, verifying the one-result-per-entry
// invariant against the catalog.
func NewReport(subject, site string, siteOccs []motif.Occurrence, cat *methylase.Catalog, results []Result) (Report, error) {
	if len(results) != cat.Len() {
		return Report{}, fmt.Errorf("%w: %d results for %d entries", ErrMismatch, len(results), cat.Len())
	}
	for i, m := range cat.Entries() {
		if results[i].Methylase.Name != m.Name {
			return Report{}, fmt.Errorf("%w: entry %d is %s, want %s", ErrMismatch, i, results[i].Methylase.Name, m.Name)
		}
	}
	return Report{
		Subject:         subject,
		Site:            site,
		SiteOccurrences: siteOccs,
		Results:         results,
	}, nil
}

// SiteFound reports whether the restriction site occurs in the subject.
func (r Report) SiteFound() bool { return len(r.SiteOccurrences) > 0 }

// MatchText returns the subject bases under an occurrence.
func (r Report) MatchText(o motif.Occurrence) string {
	return r.Subject[o.Start:o.End]
}

// Context returns the subject around a result's restriction region, widened
// so that any methylase occurrence reaching into the region is fully
// visible: IndexNeg bases upstream and the bases past the modified one
// downstream, clamped to the subject. Empty when the region is absent.
func (r Report) Context(res Result) string {
	if res.Region == nil {
		return ""
	}
	m := res.Methylase
	left := res.Region.Start
	if m.IndexNeg > 0 {
		left -= m.IndexNeg
	}
	if left < 0 {
		left = 0
	}
	right := res.Region.End + len(m.Site) - (m.IndexPos + 1)
	if right > len(r.Subject) {
		right = len(r.Subject)
	}
	return r.Subject[left:right]
}
