// internal/methylase/defaults.go
package methylase

// Built-in methylase sites. index_pos/index_neg pairs follow REBASE
// conventions for each enzyme's modified base.
type def struct {
	name     string
	site     string
	indexPos int
	indexNeg int
}

// Cytosine methylases first, then adenine, matching catalog authorship
// order; reports print in this order.
var defaults = []def{
	{"AluI", "AGCT", 2, 1},
	{"BamHI", "GGATCC", 4, 1},
	{"CpG", "CG", 0, 1},
	{"EcoKDcm", "CCWGG", 1, 3},
	{"GpC", "GC", 1, 0},
	{"HaeIII", "GGCC", 2, 1},
	{"Hhal", "GCGC", 1, 2},
	{"HpaII", "CCGG", 1, 2},
	{"MetC", "C", 0, -1}, // plain cytosine, not an enzyme
	{"MspI", "CCGG", 0, 3},
	{"EcoBI", "TGANNNNNNNNTGCT", 2, 11},
	{"EcoKDam", "GATC", 1, 2},
	{"EcoKI", "AACNNNNNNGTGC", 1, 10},
	{"EcoRI", "GAATTC", 2, 3},
	{"TaqI", "TCGA", 3, 0},
}

// Dnd-family phosphorothioate modification sites: an alternative catalog for
// sulfur-backbone chemistry, loaded instead of the default when requested.
var dndDefaults = []def{
	{"Dnd_EcoB7A", "GAAC", 0, 3},
	{"Dnd_Sli1326", "GGCC", 0, 3},
	{"Dnd_VciFF75", "CCA", 0, 2},
}

func build(defs []def) *Catalog {
	entries := make([]Methylase, 0, len(defs))
	for _, d := range defs {
		m, err := New(d.name, d.site, d.indexPos, d.indexNeg, Both)
		if err != nil {
			panic(err) // built-in table is validated by tests
		}
		entries = append(entries, m)
	}
	c, err := NewCatalog(entries)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the built-in methylase catalog.
func Default() *Catalog { return build(defaults) }

// Dnd returns the phosphorothioate (Dnd) catalog.
func Dnd() *Catalog { return build(dndDefaults) }
