// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/resolve"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/pkg/api"
)

func toAPIMatch(rep resolve.Report, o *motif.Occurrence) *api.MatchV1 {
	if o == nil {
		return nil
	}
	return &api.MatchV1{
		Start:  o.Start,
		End:    o.End,
		Strand: string(o.Strand),
		Seq:    rep.MatchText(*o),
	}
}

// ToAPIReport converts a domain Report to the stable wire schema (v1).
func ToAPIReport(rep resolve.Report, sequenceID string) api.ReportV1 {
	v := api.ReportV1{
		SequenceID:      sequenceID,
		RestrictionSite: rep.Site,
		SiteFound:       rep.SiteFound(),
		Results:         make([]api.OverlapResultV1, 0, len(rep.Results)),
	}
	for i := range rep.SiteOccurrences {
		v.SiteOccurrences = append(v.SiteOccurrences, *toAPIMatch(rep, &rep.SiteOccurrences[i]))
	}
	for _, res := range rep.Results {
		v.Results = append(v.Results, api.OverlapResultV1{
			Methylase:             res.Methylase.Name,
			Site:                  res.Methylase.Site,
			MethylatedIndex:       res.Methylase.IndexPos,
			Region:                toAPIMatch(rep, res.Region),
			PlusMatch:             toAPIMatch(rep, res.PlusMatch),
			MinusMatch:            toAPIMatch(rep, res.MinusMatch),
			MethylatedInPlusSite:  res.MethylatedInPlusSite,
			MethylatedInMinusSite: res.MethylatedInMinusSite,
			Blocked:               res.Blocked(),
		})
	}
	return v
}

// WriteJSON writes one pretty-indented v1 report.
func WriteJSON(w io.Writer, rep resolve.Report, sequenceID string) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToAPIReport(rep, sequenceID))
}
