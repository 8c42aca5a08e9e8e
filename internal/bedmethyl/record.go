// internal/bedmethyl/record.go
package bedmethyl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// bedMethyl column layout, per modkit's intro_bedmethyl description.
const columns = 18

// Record is one per-base modification call.
type Record struct {
	Chrom   string
	Start   int
	End     int
	Code    string // modified_base_code_and_motif
	Score   int
	Strand  string
	NValid  int
	Percent float64 // percent_modified
	NMod    int
	NCanon  int
	NOther  int
	NDelete int
	NFail   int
	NDiff   int
	NNocall int
}

// Binarization status symbols; assigned by Binarize.
const (
	StatusMethylated   = "1"
	StatusUnmethylated = "0"
	StatusUndetermined = "U"
)

// ReadFile parses a bedMethyl (modkit) TSV file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses bedMethyl rows from r. Columns 5-9 beyond strand (thickStart,
// thickEnd, color) are carried by the format but unused, so they are only
// checked for presence.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var out []Record
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != columns {
			return nil, fmt.Errorf("bedmethyl line %d: %d columns, want %d", line, len(fields), columns)
		}

		rec := Record{Chrom: fields[0], Code: fields[3], Strand: fields[5]}
		ints := map[int]*int{
			1: &rec.Start, 2: &rec.End, 4: &rec.Score,
			9: &rec.NValid, 11: &rec.NMod, 12: &rec.NCanon, 13: &rec.NOther,
			14: &rec.NDelete, 15: &rec.NFail, 16: &rec.NDiff, 17: &rec.NNocall,
		}
		for col, dst := range ints {
			v, err := strconv.Atoi(fields[col])
			if err != nil {
				return nil, fmt.Errorf("bedmethyl line %d col %d: %w", line, col+1, err)
			}
			*dst = v
		}
		pct, err := strconv.ParseFloat(fields[10], 64)
		if err != nil {
			return nil, fmt.Errorf("bedmethyl line %d percent_modified: %w", line, err)
		}
		rec.Percent = pct
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Codes returns the distinct modification codes in first-seen order.
func Codes(recs []Record) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range recs {
		if !seen[r.Code] {
			seen[r.Code] = true
			out = append(out, r.Code)
		}
	}
	return out
}
