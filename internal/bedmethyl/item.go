// internal/bedmethyl/item.go
package bedmethyl

import (
	"fmt"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/annotate"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/fasta"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/methylase"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
)

// Item pairs one sample's bedMethyl calls with its reference sequence.
type Item struct {
	Sample    string
	Reference fasta.Record
	Records   []Record

	Results []ModResult // filled by Analyze
}

// ModResult is the analysis of one (methylase, modification code) pair:
// the sample's calls restricted to positions the methylase would modify,
// each call binarized against the cutoffs.
type ModResult struct {
	Modification Code
	Methylase    methylase.Methylase
	Rows         []StatusRecord
}

// StatusRecord is a bedMethyl call plus its binarized status.
type StatusRecord struct {
	Record
	Status string
}

// Analyze runs every requested methylase against every modification code
// present in the sample's calls.
func (it *Item) Analyze(cat *methylase.Catalog, names []string, metCutoff, nonmetCutoff float64) error {
	it.Results = it.Results[:0]
	for _, name := range names {
		m, err := cat.Get(name)
		if err != nil {
			return err
		}
		for _, codeStr := range Codes(it.Records) {
			code, err := LookupCode(codeStr)
			if err != nil {
				return fmt.Errorf("sample %s: %w", it.Sample, err)
			}
			subset, err := it.subsetToPatternMatch(m, subsetToCode(it.Records, codeStr))
			if err != nil {
				return err
			}
			it.Results = append(it.Results, ModResult{
				Modification: code,
				Methylase:    m,
				Rows:         Binarize(subset, metCutoff, nonmetCutoff),
			})
		}
	}
	return nil
}

func subsetToCode(recs []Record, code string) []Record {
	var out []Record
	for _, r := range recs {
		if r.Code == code {
			out = append(out, r)
		}
	}
	return out
}

// subsetToPatternMatch keeps the calls sitting on a base the methylase
// modifies: annotate the reference with this one enzyme, collect the
// methylated-base positions per strand, and filter the calls to them.
func (it *Item) subsetToPatternMatch(m methylase.Methylase, recs []Record) ([]Record, error) {
	single, err := methylase.NewCatalog([]methylase.Methylase{m})
	if err != nil {
		return nil, err
	}
	feats, err := annotate.Run(it.Reference.Seq, single)
	if err != nil {
		return nil, err
	}

	plus := map[int]bool{}
	minus := map[int]bool{}
	for _, f := range feats {
		if f.Type != annotate.TypeBase {
			continue
		}
		if f.Strand == motif.Minus {
			minus[f.Start] = true
		} else {
			plus[f.Start] = true
		}
	}

	var out []Record
	for _, r := range recs {
		switch r.Strand {
		case "+":
			if plus[r.Start] {
				out = append(out, r)
			}
		case "-":
			if minus[r.Start] {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

// Binarize assigns each call a methylation status from its percent_modified:
// methylated at or above metCutoff, unmethylated at or below nonmetCutoff,
// undetermined between. Cutoffs are fractions (0.7 means 70%).
func Binarize(recs []Record, metCutoff, nonmetCutoff float64) []StatusRecord {
	out := make([]StatusRecord, 0, len(recs))
	for _, r := range recs {
		status := StatusUndetermined
		switch {
		case r.Percent >= metCutoff*100:
			status = StatusMethylated
		case r.Percent <= nonmetCutoff*100:
			status = StatusUnmethylated
		}
		out = append(out, StatusRecord{Record: r, Status: status})
	}
	return out
}
