// internal/bedmethyl/codes.go
package bedmethyl

import "fmt"

// Code describes one base-modification code from the SAM MM tag table, as
// emitted in a bedMethyl's modified_base_code_and_motif column.
type Code struct {
	Code         string
	Abbreviation string
	Name         string
	ChEBI        int
	Unmodified   byte
}

var codes = []Code{
	{"m", "5mC", "5-Methylcytosine", 27551, 'C'},
	{"h", "5hmC", "5-Hydroxymethylcytosine", 76792, 'C'},
	{"f", "5fC", "5-Formylcytosine", 76794, 'C'},
	{"c", "5caC", "5-Carboxylcytosine", 76793, 'C'},
	{"g", "5hmU", "5-Hydroxymethyluracil", 16964, 'T'},
	{"e", "5fU", "5-Formyluracil", 80961, 'T'},
	{"b", "5caU", "5-Carboxyluracil", 17477, 'T'},
	{"a", "6mA", "6-Methyladenine", 28871, 'A'},
	{"o", "8oxoG", "8-Oxoguanine", 44605, 'G'},
	{"n", "Xao", "Xanthosine", 18107, 'N'},
}

// LookupCode resolves a modification code such as "m" or "a". Modkit may
// suffix a ChEBI id or motif; only the leading letter is significant here.
func LookupCode(code string) (Code, error) {
	if code == "" {
		return Code{}, fmt.Errorf("empty modification code")
	}
	for _, c := range codes {
		if c.Code == code[:1] {
			return c, nil
		}
	}
	return Code{}, fmt.Errorf("unknown modification code %q", code)
}
