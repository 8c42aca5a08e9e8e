// internal/resolve/resolve_test.go
package resolve

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/dna"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/methylase"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
)

func ecoCatalog(t *testing.T) *methylase.Catalog {
	t.Helper()
	cat, err := methylase.Default().Select([]string{"EcoKDam", "EcoKDcm", "EcoBI", "EcoKI"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	return cat
}

// BsmBI site inside an EcoBI minus-strand occurrence: the methylated
// adenine (forward position 28) lands inside the restriction region.
func TestResolveWorkedExample(t *testing.T) {
	subject := "ATGTCCCCATGCCTAC" + "AGCAAGGC" + "CGTCTC" + "A" + "GGCCCCCCCCCCCCA"
	cat := ecoCatalog(t)

	rep, err := Resolve(subject, "CGTCTC", cat)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if len(rep.SiteOccurrences) != 1 {
		t.Fatalf("restriction site found %d times, want 1", len(rep.SiteOccurrences))
	}
	if r := rep.SiteOccurrences[0]; r.Start != 24 || r.End != 30 {
		t.Fatalf("restriction site at [%d,%d), want [24,30)", r.Start, r.End)
	}

	byName := map[string]Result{}
	for _, res := range rep.Results {
		byName[res.Methylase.Name] = res
	}

	ecoBI := byName["EcoBI"]
	if ecoBI.PlusMatch != nil {
		t.Errorf("EcoBI plus match = %+v, want none", *ecoBI.PlusMatch)
	}
	if ecoBI.MinusMatch == nil {
		t.Fatal("EcoBI minus match absent")
	}
	if ecoBI.MinusMatch.Start != 16 || ecoBI.MinusMatch.End != 31 {
		t.Errorf("EcoBI minus match [%d,%d), want [16,31)",
			ecoBI.MinusMatch.Start, ecoBI.MinusMatch.End)
	}
	if got := rep.MatchText(*ecoBI.MinusMatch); got != "AGCAAGGCCGTCTCA" {
		t.Errorf("EcoBI match text %s, want AGCAAGGCCGTCTCA", got)
	}
	if !ecoBI.MethylatedInMinusSite {
		t.Error("EcoBI methylated base (pos 28) should fall inside the site")
	}
	if ecoBI.MethylatedInPlusSite {
		t.Error("EcoBI plus-strand flag should be false")
	}
	if !ecoBI.Blocked() {
		t.Error("EcoBI should block the site")
	}
	if got := rep.Context(ecoBI); got != "TACAGCAAGGCCGTCTCAGGCCCCCCCCC" {
		t.Errorf("EcoBI context %s", got)
	}

	for _, name := range []string{"EcoKDam", "EcoKDcm", "EcoKI"} {
		res := byName[name]
		if res.PlusMatch != nil || res.MinusMatch != nil {
			t.Errorf("%s: unexpected match", name)
		}
		if res.Blocked() {
			t.Errorf("%s: unexpected methylated-in-site flag", name)
		}
		if res.Region == nil {
			t.Errorf("%s: display region should still be the restriction site", name)
		}
	}
}

// Repeated runs over identical inputs must produce identical reports.
func TestResolveDeterminism(t *testing.T) {
	subject := "ATGTCCCCATGCCTACAGCAAGGCCGTCTCAGGCCCCCCCCCCCCA"
	cat := ecoCatalog(t)

	first, err := Resolve(subject, "CGTCTC", cat)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Resolve(subject, "CGTCTC", cat)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

// Report order must equal catalog order for any permutation.
func TestResolveOrderPreservation(t *testing.T) {
	subject := "TTGATCTTGAATTCTT"
	perms := [][]string{
		{"EcoKDam", "EcoRI", "CpG"},
		{"CpG", "EcoKDam", "EcoRI"},
		{"EcoRI", "CpG", "EcoKDam"},
	}
	for _, names := range perms {
		cat, err := methylase.Default().Select(names)
		if err != nil {
			t.Fatalf("Select: %v", err)
		}
		rep, err := Resolve(subject, "GAATTC", cat)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		for i, res := range rep.Results {
			if res.Methylase.Name != names[i] {
				t.Errorf("perm %v: result %d is %s", names, i, res.Methylase.Name)
			}
		}
	}
}

// Absent restriction site: every region absent, no error.
func TestResolveSiteAbsent(t *testing.T) {
	subject := "TTTTGATCTTTT" // EcoKDam present, BsmBI absent
	cat := ecoCatalog(t)

	rep, err := Resolve(subject, "CGTCTC", cat)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if rep.SiteFound() {
		t.Fatal("site should be absent")
	}
	for _, res := range rep.Results {
		if res.Region != nil || res.PlusMatch != nil || res.MinusMatch != nil || res.Blocked() {
			t.Errorf("%s: non-empty result for absent site: %+v", res.Methylase.Name, res)
		}
	}
}

// Neither pattern present anywhere: absent matches, no error.
func TestResolveNoMatchCompleteness(t *testing.T) {
	cat, err := methylase.Default().Select([]string{"EcoBI"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	rep, err := Resolve("ACACACACACAC", "GGTCTC", cat)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	res := rep.Results[0]
	if res.PlusMatch != nil || res.MinusMatch != nil || res.Blocked() {
		t.Errorf("expected fully absent result, got %+v", res)
	}
}

// Region intersects the site but the methylated base misses it: match
// present, flags false.
func TestResolveRegionWithoutMethylatedBase(t *testing.T) {
	// EcoKDam GATC at [0,4), methylated A at 1. Site GAATTC at [3,9):
	// intervals intersect (base 3) but position 1 is outside the site.
	subject := "GATCAATTCTTT"
	cat, err := methylase.Default().Select([]string{"EcoKDam"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	rep, err := Resolve(subject, "CAATTC", cat)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(rep.SiteOccurrences) != 1 || rep.SiteOccurrences[0].Start != 3 {
		t.Fatalf("site occurrences: %+v", rep.SiteOccurrences)
	}
	res := rep.Results[0]
	if res.PlusMatch == nil {
		t.Fatal("expected region-level plus match")
	}
	if res.MethylatedInPlusSite || res.MethylatedInMinusSite {
		t.Errorf("methylated base (pos 1) lies outside [3,9); flags must be false")
	}
}

// With several restriction occurrences, the first one with an overlap is
// the one reported.
func TestResolveMultipleSiteOccurrences(t *testing.T) {
	// CCGG at [2,6) and [10,14); GATC at [13,17) shares base 13 with the
	// second occurrence only, and its methylated A (pos 14) misses it.
	subject := "TT" + "CCGG" + "TTTT" + "CCGGATC" + "TT"
	cat, err := methylase.Default().Select([]string{"EcoKDam"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	rep, err := Resolve(subject, "CCGG", cat)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(rep.SiteOccurrences) != 2 {
		t.Fatalf("found %d site occurrences, want 2", len(rep.SiteOccurrences))
	}
	res := rep.Results[0]
	if res.Region == nil || res.Region.Start != 10 {
		t.Fatalf("reported region %+v, want start 10", res.Region)
	}
	if res.PlusMatch == nil || res.PlusMatch.Start != 13 {
		t.Fatalf("plus match %+v, want start 13", res.PlusMatch)
	}
	if res.MethylatedInPlusSite {
		t.Error("methylated base at 14 lies outside [10,14)")
	}
}

// An earlier occurrence with a region-only overlap wins over a later one
// where the methylated base would land inside the site: occurrences are
// classified in ascending order and the first overlap is the one reported.
func TestResolveEarlierRegionHitWins(t *testing.T) {
	// GGCC at [3,7) and [9,13); plus-only CCWGG at [0,5) and [11,16).
	// Against [3,7) the first motif occurrence overlaps but its methylated
	// C (pos 1) misses; against [9,13) the second occurrence's methylated
	// C (pos 12) would be an exact hit. The first occurrence is reported.
	subject := "CCAGGCC" + "TT" + "GGCCAGG"
	m, err := methylase.New("Dcm", "CCWGG", 1, -1, methylase.PlusOnly)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cat, err := methylase.NewCatalog([]methylase.Methylase{m})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}

	rep, err := Resolve(subject, "GGCC", cat)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(rep.SiteOccurrences) != 2 {
		t.Fatalf("found %d site occurrences, want 2", len(rep.SiteOccurrences))
	}
	res := rep.Results[0]
	if res.Region == nil || res.Region.Start != 3 {
		t.Fatalf("reported region %+v, want start 3", res.Region)
	}
	if res.PlusMatch == nil || res.PlusMatch.Start != 0 {
		t.Fatalf("plus match %+v, want start 0", res.PlusMatch)
	}
	if res.Blocked() {
		t.Error("the exact hit at the later occurrence must not be reported")
	}
}

func TestResolveInputErrors(t *testing.T) {
	cat := ecoCatalog(t)

	if _, err := Resolve("ACGTNACGT", "GAATTC", cat); !errors.Is(err, dna.ErrSubjectSymbol) {
		t.Errorf("dirty subject: got %v, want ErrSubjectSymbol", err)
	}
	if _, err := Resolve("ACGTACGT", "GAAT?C", cat); !errors.Is(err, dna.ErrPatternSymbol) {
		t.Errorf("dirty site: got %v, want ErrPatternSymbol", err)
	}
}

func TestNewReportMismatch(t *testing.T) {
	cat := ecoCatalog(t)

	if _, err := NewReport("ACGT", "GAATTC", nil, cat, nil); !errors.Is(err, ErrMismatch) {
		t.Errorf("short results: got %v, want ErrMismatch", err)
	}

	// Right length, wrong order.
	results := make([]Result, cat.Len())
	for i, m := range cat.Entries() {
		results[cat.Len()-1-i] = Result{Methylase: m}
	}
	if _, err := NewReport("ACGT", "GAATTC", nil, cat, results); !errors.Is(err, ErrMismatch) {
		t.Errorf("shuffled results: got %v, want ErrMismatch", err)
	}
}

func TestMethylatedAtMinus(t *testing.T) {
	o := motif.Occurrence{Start: 16, End: 31, Strand: motif.Minus}
	if got := methylatedAt(o, 2); got != 28 {
		t.Errorf("methylatedAt = %d, want 28", got)
	}
	p := motif.Occurrence{Start: 10, End: 14, Strand: motif.Plus}
	if got := methylatedAt(p, 1); got != 11 {
		t.Errorf("methylatedAt = %d, want 11", got)
	}
}
